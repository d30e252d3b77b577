package db

import (
	"app/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection and returns *gorm.DB.
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
}
