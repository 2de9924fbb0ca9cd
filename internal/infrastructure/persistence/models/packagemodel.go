package models

import (
	"time"

	"netbill/internal/shared/constants"
)

// PackageModel is the persistence model for service packages.
type PackageModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	Price        uint64 `gorm:"not null"`
	ValidityDays int    `gorm:"not null"`
	Status       string `gorm:"not null;size:20;default:active"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PackageModel) TableName() string {
	return constants.TablePackages
}
