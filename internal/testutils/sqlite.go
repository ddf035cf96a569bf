package testutils

import (
	"fmt"
	"testing"
	"time"

	"showcase-portal-backend/internal/config"
	"showcase-portal-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm/logger"
)

// SetupSQLiteTestSuite opens a private in-memory SQLite database with the full schema.
// Every call gets its own database, so suites never share rows.
func SetupSQLiteTestSuite(t *testing.T) *BaseTestSuite {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
	if err != nil {
		t.Fatalf("failed to initialize sqlite test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &BaseTestSuite{
		DB:     db,
		Config: testConfig(dsn),
	}
}

func testConfig(dsn string) *config.Config {
	return &config.Config{
		DatabaseURL:       dsn,
		Port:              "8080",
		LogLevel:          "debug",
		Environment:       "test",
		JWTSecret:         "test-secret",
		JWTIssuer:         "showcase-portal-test",
		JWTLifetime:       time.Hour,
		NotificationQueue: "showcase.notifications",
		PublicUploadURL:   "http://localhost:8080/uploads",
		MaxImageSize:      2 * 1024 * 1024,
		SiteTitle:         "Test Portal",
		SiteURL:           "http://localhost:8080",
	}
}
