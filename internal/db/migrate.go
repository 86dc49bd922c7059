package db

import (
	"github.com/mogzealio/rest-api-v3-heroku/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate creates the users, stores and items tables if they do not
// already exist. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	return db.AutoMigrate(&domain.User{}, &domain.Store{}, &domain.Item{})
}
