package models

import (
	"time"

	"netbill/internal/shared/constants"
)

// PaymentModel is the persistence model for billing transactions.
// SubscriptionID carries a unique key: the subscription↔payment link is an
// explicit 1:1, so the administrative edit path can upsert on it atomically.
type PaymentModel struct {
	ID             uint      `gorm:"primarykey"`
	UserID         uint      `gorm:"not null;index:idx_user_payment"`
	PackageID      uint      `gorm:"not null"`
	SubscriptionID *uint     `gorm:"uniqueIndex:uniq_subscription_payment"`
	TransactionID  *string   `gorm:"size:100"`
	Amount         uint64    `gorm:"not null"`
	PaymentMethod  string    `gorm:"not null;size:30"`
	PaymentDate    time.Time `gorm:"not null"`
	Status         string    `gorm:"not null;size:20;default:unpaid"`
	Notes          *string   `gorm:"size:500"`
	Version        int       `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PaymentModel) TableName() string {
	return constants.TablePayments
}
