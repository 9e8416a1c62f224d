package models

import (
	"time"

	"gorm.io/gorm"
)

// BulkBatch model
// One row per bulk beneficiary upload pushed to the backend. TransactionID
// is the backend batch id; Status follows PENDING/SUCCESS/FAILED.
type BulkBatch struct {
	gorm.Model           // Auto includes ID, CreatedAt, UpdatedAt, DeletedAt
	TransactionID string `gorm:"uniqueIndex;not null"`
	ReferenceID   string `gorm:"uniqueIndex;not null"` // local upload reference
	FileName      string `gorm:"default:''"`
	TotalRows     int    `gorm:"default:0"`
	Successful    int    `gorm:"default:0"`
	Failed        int    `gorm:"default:0"`
	Status        string `gorm:"default:'PENDING'"`
	DecidedBy     string `gorm:"default:''"`
	DecidedAt     *time.Time
	IsDeleted     bool `gorm:"default:false"`
}
