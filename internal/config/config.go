package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Server   ServerConfig
	Paging   PagingConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int
}

// Supported database drivers
const (
	DriverOracle   = "oracle"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver          string // oracle | postgres | sqlite
	Host            string
	Port            int
	Service         string // oracle service name
	Name            string // postgres database name, sqlite file path
	User            string
	Password        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	IsAutoMigrate   bool // true: 테이블 재생성, false: 마이그레이션 비활성화
}

// AdminConfig holds the single administrator allowed to modify data
type AdminConfig struct {
	Username     string
	PasswordHash string // bcrypt
}

type JWTConfig struct {
	Secret        string
	Expiry        time.Duration
	RefreshExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration
	RequestTimeout  time.Duration
}

type PagingConfig struct {
	DefaultLimit int
	MaxLimit     int
}

func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("환경 변수 로드 실패: %w", err)
	}

	driver := strings.ToLower(envStr("DB_DRIVER", DriverOracle))

	cfg := &Config{
		App: AppConfig{
			Name: envStr("APP_NAME", "member-search-api"),
			Env:  env,
			Port: envInt("APP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Driver:          driver,
			Host:            envStr("DB_HOST", ""),
			Port:            envInt("DB_PORT", defaultPort(driver)),
			Service:         envStr("DB_SERVICE", ""),
			Name:            envStr("DB_NAME", ""),
			User:            envStr("DB_USER", ""),
			Password:        envStr("DB_PASSWORD", ""),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: envDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute),
			IsAutoMigrate:   envBool("DB_AUTO_MIGRATE", false), // 기본값: false (안전)
		},
		Admin: AdminConfig{
			Username:     envStr("ADMIN_USERNAME", "admin"),
			PasswordHash: envStr("ADMIN_PASSWORD_HASH", ""),
		},
		JWT: JWTConfig{
			Secret:        envStr("JWT_SECRET", ""),
			Expiry:        envDuration("JWT_EXPIRY", 24*time.Hour),
			RefreshExpiry: envDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins:   envList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   envList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   envList("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: envBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           envInt("CORS_MAX_AGE", 86400),
		},
		Server: ServerConfig{
			ReadTimeout:     envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    envDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     envDuration("SERVER_IDLE_TIMEOUT", time.Minute),
			GracefulTimeout: envDuration("GRACEFUL_TIMEOUT", 30*time.Second),
			RequestTimeout:  envDuration("REQUEST_TIMEOUT", 30*time.Second),
		},
		Paging: PagingConfig{
			DefaultLimit: envInt("PAGE_DEFAULT_LIMIT", 20),
			MaxLimit:     envInt("PAGE_MAX_LIMIT", 100),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("환경 변수 검증 실패 : %w", err)
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Warn("환경 변수 파일을 찾을 수 없습니다. 시스템 환경 변수를 사용합니다.",
			"file", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("환경 변수 파일 로드 오류: %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("환경 변수 파일 로드", "file", absPath)
	return nil
}

func (c *Config) Validate() error {
	var errors []string

	// App validation
	if c.App.Port < 1 || c.App.Port > 65535 {
		errors = append(errors, "유효하지 않은 포트 번호")
	}

	// Database validation
	errors = append(errors, c.Database.validate()...)

	// Admin validation
	if c.Admin.Username == "" {
		errors = append(errors, "관리자 Username이 필요합니다")
	}
	if c.Admin.PasswordHash == "" {
		errors = append(errors, "관리자 Password Hash가 필요합니다")
	}

	// Paging validation
	if c.Paging.DefaultLimit < 1 {
		errors = append(errors, "PAGE_DEFAULT_LIMIT는 1 이상이어야 합니다")
	}
	if c.Paging.MaxLimit < c.Paging.DefaultLimit {
		errors = append(errors, "PAGE_MAX_LIMIT는 PAGE_DEFAULT_LIMIT 이상이어야 합니다")
	}

	// JWT validation
	if c.JWT.Secret == "" {
		errors = append(errors, "JWT Secret Key가 필요합니다")
	}
	if len(c.JWT.Secret) < 32 {
		errors = append(errors, "JWT Secret Key는 32자 이상이어야 합니다")
	}

	if len(errors) > 0 {
		return fmt.Errorf("유효성 검사 오류: %s", strings.Join(errors, ", "))
	}

	return nil
}

func (d DatabaseConfig) validate() []string {
	var errors []string

	switch d.Driver {
	case DriverOracle:
		if d.Service == "" {
			errors = append(errors, "데이터베이스 Service가 필요합니다")
		}
	case DriverPostgres:
		if d.Name == "" {
			errors = append(errors, "데이터베이스 Name이 필요합니다")
		}
	case DriverSQLite:
		if d.Name == "" {
			errors = append(errors, "SQLite 파일 경로(DB_NAME)가 필요합니다")
		}
		return errors
	default:
		return append(errors, fmt.Sprintf("지원하지 않는 데이터베이스 드라이버: %q", d.Driver))
	}

	if d.Host == "" {
		errors = append(errors, "데이터베이스 Host가 필요합니다")
	}
	if d.User == "" {
		errors = append(errors, "데이터베이스 User가 필요합니다")
	}
	if d.Password == "" {
		errors = append(errors, "데이터베이스 Password가 필요합니다")
	}
	return errors
}

func defaultPort(driver string) int {
	if driver == DriverPostgres {
		return 5432
	}
	return 1521
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}
