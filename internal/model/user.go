package model

import "time"

// User is an account that can manage farms and animals.
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// Password holds the bcrypt hash, never the plaintext.
	Password string `gorm:"not null" json:"-"`

	Role string `gorm:"not null;default:user" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
