package models

import (
	"gorm.io/gorm"
)

// Session model
// Holds the persisted client state for one dashboard login: the backend
// bearer token, the refresh token and a cached snapshot of the
// authenticated user. Cleared wholesale when the backend reports 401.
type Session struct {
	gorm.Model          // Auto includes ID, CreatedAt, UpdatedAt, DeletedAt
	SessionID    string `gorm:"uniqueIndex;not null"`
	Token        string `gorm:"type:text"`
	RefreshToken string `gorm:"type:text"`
	AuthUser     string `gorm:"type:text"` // JSON snapshot of the logged-in user
	IsDeleted    bool   `gorm:"default:false"`
}
