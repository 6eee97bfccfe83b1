package models

import (
	"time"
)

// Credential is the auth table row for one account. The profile itself
// (names, locations) lives in the user document, not here.
type Credential struct {
	UserID       string    `gorm:"primaryKey;type:varchar(64)" json:"user_id"`
	Email        string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
