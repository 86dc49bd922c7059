package domain

import (
	"errors" // For gorm.ErrRecordNotFound checks

	"gorm.io/gorm" // GORM ORM library
)

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`    // Primary key
	Username string `gorm:"size:80" json:"username"` // Uniqueness enforced by lookup-before-insert, not a constraint
	Password string `gorm:"size:80" json:"-"`        // Bcrypt password hash, never serialized
}

// FindUserByUsername looks up a user by username.
// Returns (nil, nil) when no such user exists.
func FindUserByUsername(db *gorm.DB, username string) (*User, error) {
	var user User
	err := db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Not found is not an error for callers
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByID looks up a user by primary key.
// Returns (nil, nil) when no such user exists.
func FindUserByID(db *gorm.DB, id uint) (*User, error) {
	var user User
	err := db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save inserts the user, assigning its ID.
func (u *User) Save(db *gorm.DB) error {
	return db.Save(u).Error
}
