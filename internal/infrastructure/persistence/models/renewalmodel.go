package models

import (
	"time"

	"netbill/internal/shared/constants"
)

// RenewalModel is the persistence model for renewal history rows.
type RenewalModel struct {
	ID             uint      `gorm:"primarykey"`
	SubscriptionID uint      `gorm:"not null;index:idx_subscription_renewal"`
	UserID         uint      `gorm:"not null;index:idx_user_renewal"`
	PackageID      uint      `gorm:"not null"`
	OldPackageID   uint      `gorm:"not null"`
	Amount         uint64    `gorm:"not null"`
	OldAmount      uint64    `gorm:"not null"`
	OldExpiryDate  time.Time `gorm:"not null"`
	NewExpiryDate  time.Time `gorm:"not null"`
	RenewalDate    time.Time `gorm:"not null;index:idx_renewal_date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (RenewalModel) TableName() string {
	return constants.TableRenewals
}
