package catalog

import (
	"fmt"
	"time"

	"netbill/internal/shared/biztime"
)

type PackageStatus string

const (
	PackageStatusActive   PackageStatus = "active"
	PackageStatusInactive PackageStatus = "inactive"
)

// Package is a priced service tier with a fixed validity period in days.
// It is reference data for the subscription lifecycle: operations read it,
// never write it.
type Package struct {
	id           uint
	name         string
	price        uint64
	validityDays int
	status       PackageStatus
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPackage(name string, price uint64, validityDays int) (*Package, error) {
	if name == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("package name too long (max 100 characters)")
	}
	if validityDays <= 0 {
		return nil, fmt.Errorf("validity days must be greater than 0")
	}

	now := biztime.NowUTC()
	return &Package{
		name:         name,
		price:        price,
		validityDays: validityDays,
		status:       PackageStatusActive,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPackage(id uint, name string, price uint64, validityDays int,
	status string, version int, createdAt, updatedAt time.Time) (*Package, error) {

	if id == 0 {
		return nil, fmt.Errorf("package ID cannot be zero")
	}

	pkgStatus := PackageStatus(status)
	if pkgStatus != PackageStatusActive && pkgStatus != PackageStatusInactive {
		return nil, fmt.Errorf("invalid package status: %s", status)
	}
	if validityDays <= 0 {
		return nil, fmt.Errorf("validity days must be greater than 0")
	}

	return &Package{
		id:           id,
		name:         name,
		price:        price,
		validityDays: validityDays,
		status:       pkgStatus,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Package) ID() uint {
	return p.id
}

func (p *Package) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("package ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("package ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Package) Name() string {
	return p.name
}

func (p *Package) Price() uint64 {
	return p.price
}

func (p *Package) ValidityDays() int {
	return p.validityDays
}

func (p *Package) Status() PackageStatus {
	return p.status
}

func (p *Package) Version() int {
	return p.version
}

func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Package) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Package) IsActive() bool {
	return p.status == PackageStatusActive
}

// ExpiryFrom computes the expiry date for a period starting at the given date.
func (p *Package) ExpiryFrom(start time.Time) time.Time {
	return biztime.AddDays(start, p.validityDays)
}

func (p *Package) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("package name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("package name too long (max 100 characters)")
	}
	p.name = name
	p.updatedAt = biztime.NowUTC()
	p.version++
	return nil
}

func (p *Package) UpdatePrice(price uint64) {
	p.price = price
	p.updatedAt = biztime.NowUTC()
	p.version++
}

func (p *Package) UpdateValidityDays(days int) error {
	if days <= 0 {
		return fmt.Errorf("validity days must be greater than 0")
	}
	p.validityDays = days
	p.updatedAt = biztime.NowUTC()
	p.version++
	return nil
}

func (p *Package) Activate() {
	if p.status == PackageStatusActive {
		return
	}
	p.status = PackageStatusActive
	p.updatedAt = biztime.NowUTC()
	p.version++
}

func (p *Package) Deactivate() {
	if p.status == PackageStatusInactive {
		return
	}
	p.status = PackageStatusInactive
	p.updatedAt = biztime.NowUTC()
	p.version++
}
