package models

import (
	"time"

	"gorm.io/gorm"
)

// PayoutOrder model
// Local mirror of orders created through the send-money flow. The status
// poller re-checks rows still in PENDING against the backend.
type PayoutOrder struct {
	gorm.Model              // Auto includes ID, CreatedAt, UpdatedAt, DeletedAt
	OrderID         string  `gorm:"uniqueIndex;not null"`
	BeneficiaryID   string  `gorm:"index"`
	BeneficiaryName string  `gorm:"default:''"`
	Amount          float64 `gorm:"not null"`
	TransferType    string  `gorm:"not null"` // IMPS/NEFT/RTGS
	Comment         string  `gorm:"default:''"`
	Remarks         string  `gorm:"default:''"`
	Status          string  `gorm:"default:'PENDING'"`
	OpeningBalance  string  `gorm:"default:''"`
	LockedAmount    string  `gorm:"default:''"`
	ChargedAmount   string  `gorm:"default:''"`
	LastCheckedAt   *time.Time
	IsDeleted       bool `gorm:"default:false"`
}
