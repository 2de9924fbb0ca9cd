package models

import (
	"time"

	"gorm.io/gorm"

	"netbill/internal/shared/constants"
)

// SubscriptionModel is the persistence model for subscriptions.
// This is the anti-corruption layer between domain and database.
//
// The MySQL schema additionally carries a generated column
// active_key = IF(status='active',1,NULL) with a unique key on
// (user_id, active_key), guaranteeing at most one active subscription per
// user at the schema level. The column is database-managed and deliberately
// absent from this model.
type SubscriptionModel struct {
	ID         uint      `gorm:"primarykey"`
	UserID     uint      `gorm:"not null;index:idx_user_subscription"`
	PackageID  uint      `gorm:"not null;index:idx_package_subscription"`
	PaymentID  *uint
	Status     string    `gorm:"not null;size:20;index:idx_status"`
	StartDate  time.Time `gorm:"not null"`
	ExpiryDate time.Time `gorm:"not null;index:idx_expiry_date"`
	Version    int       `gorm:"not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
