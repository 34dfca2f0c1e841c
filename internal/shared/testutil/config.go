package testutil

import (
	"testing"
	"time"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin-password"
)

// NewTestConfig creates a configuration backed by an in-memory SQLite database
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash admin password: %v", err)
	}

	return &config.Config{
		App: config.AppConfig{
			Name: "member-search-api-test",
			Env:  "test",
			Port: 8080,
		},
		Database: config.DatabaseConfig{
			Driver:        config.DriverSQLite,
			Name:          ":memory:",
			IsAutoMigrate: true,
		},
		Admin: config.AdminConfig{
			Username:     AdminUsername,
			PasswordHash: string(hash),
		},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        time.Hour,
			RefreshExpiry: 24 * time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			MaxAge:         86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 5 * time.Second,
			RequestTimeout:  5 * time.Second,
		},
		Paging: config.PagingConfig{
			DefaultLimit: 2,
			MaxLimit:     3,
		},
	}
}
