package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-minimum-32-chars"

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuu")
}

func TestLoad_SQLite(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_NAME", "members.db")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "members.db", cfg.Database.Name)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 20, cfg.Paging.DefaultLimit)
	assert.Equal(t, 100, cfg.Paging.MaxLimit)
}

func TestLoad_PostgresDefaultPort(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "members")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load("test")
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_PagingFromEnv(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "members.db")
	t.Setenv("PAGE_DEFAULT_LIMIT", "5")
	t.Setenv("PAGE_MAX_LIMIT", "50")

	cfg, err := Load("test")
	require.NoError(t, err)
	assert.Equal(t, PagingConfig{DefaultLimit: 5, MaxLimit: 50}, cfg.Paging)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Port: 8080},
			Database: DatabaseConfig{Driver: DriverSQLite, Name: "members.db"},
			Admin:    AdminConfig{Username: "admin", PasswordHash: "hash"},
			JWT:      JWTConfig{Secret: testSecret},
			Paging:   PagingConfig{DefaultLimit: 20, MaxLimit: 100},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "mysql"},
		{name: "oracle needs service", mutate: func(c *Config) {
			c.Database = DatabaseConfig{Driver: DriverOracle, Host: "h", User: "u", Password: "p"}
		}, wantErr: "Service"},
		{name: "postgres needs host", mutate: func(c *Config) {
			c.Database = DatabaseConfig{Driver: DriverPostgres, Name: "members", User: "u", Password: "p"}
		}, wantErr: "Host"},
		{name: "sqlite needs path", mutate: func(c *Config) { c.Database.Name = "" }, wantErr: "DB_NAME"},
		{name: "admin hash", mutate: func(c *Config) { c.Admin.PasswordHash = "" }, wantErr: "Password Hash"},
		{name: "default limit", mutate: func(c *Config) { c.Paging.DefaultLimit = 0 }, wantErr: "PAGE_DEFAULT_LIMIT"},
		{name: "max below default", mutate: func(c *Config) { c.Paging.MaxLimit = 10 }, wantErr: "PAGE_MAX_LIMIT"},
		{name: "short secret", mutate: func(c *Config) { c.JWT.Secret = "short" }, wantErr: "32자"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_ENV_INT", " 42 ")
	t.Setenv("TEST_ENV_BAD_INT", "forty")
	t.Setenv("TEST_ENV_LIST", "http://a.test, ,http://b.test")
	t.Setenv("TEST_ENV_DURATION", "90s")

	assert.Equal(t, 42, envInt("TEST_ENV_INT", 1))
	assert.Equal(t, 1, envInt("TEST_ENV_BAD_INT", 1))
	assert.Equal(t, 1, envInt("TEST_ENV_UNSET", 1))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, envList("TEST_ENV_LIST", nil))
	assert.Equal(t, 90*time.Second, envDuration("TEST_ENV_DURATION", time.Second))
}
