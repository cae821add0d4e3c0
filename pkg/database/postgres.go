package database

import (
	"fmt"

	"github.com/eventify/eventify-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens the Postgres connection and runs schema migrations.
func New(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Event{},
		&models.Ticket{},
		&models.Banner{},
		&models.Message{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
