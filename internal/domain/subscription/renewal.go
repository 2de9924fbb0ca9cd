package subscription

import (
	"fmt"
	"time"

	"netbill/internal/shared/biztime"
)

// Renewal is an append-only audit row capturing the before/after state of a
// renew operation. Rows are immutable once written; the only mutation allowed
// is the hard delete performed by a reversal.
type Renewal struct {
	id             uint
	subscriptionID uint
	userID         uint
	packageID      uint
	oldPackageID   uint
	amount         uint64
	oldAmount      uint64
	oldExpiryDate  time.Time
	newExpiryDate  time.Time
	renewalDate    time.Time
	createdAt      time.Time
}

// RenewalParams carries the snapshot captured at renew time.
type RenewalParams struct {
	SubscriptionID uint
	UserID         uint
	PackageID      uint
	OldPackageID   uint
	Amount         uint64
	OldAmount      uint64
	OldExpiryDate  time.Time
	NewExpiryDate  time.Time
}

func NewRenewal(p RenewalParams) (*Renewal, error) {
	if p.SubscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if p.PackageID == 0 {
		return nil, fmt.Errorf("package ID is required")
	}
	if !p.NewExpiryDate.After(p.OldExpiryDate) {
		return nil, fmt.Errorf("new expiry date must be after old expiry date")
	}

	now := biztime.NowUTC()
	return &Renewal{
		subscriptionID: p.SubscriptionID,
		userID:         p.UserID,
		packageID:      p.PackageID,
		oldPackageID:   p.OldPackageID,
		amount:         p.Amount,
		oldAmount:      p.OldAmount,
		oldExpiryDate:  p.OldExpiryDate,
		newExpiryDate:  p.NewExpiryDate,
		renewalDate:    biztime.Today(),
		createdAt:      now,
	}, nil
}

func ReconstructRenewal(id uint, p RenewalParams, renewalDate, createdAt time.Time) (*Renewal, error) {
	if id == 0 {
		return nil, fmt.Errorf("renewal ID cannot be zero")
	}
	if p.SubscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}

	return &Renewal{
		id:             id,
		subscriptionID: p.SubscriptionID,
		userID:         p.UserID,
		packageID:      p.PackageID,
		oldPackageID:   p.OldPackageID,
		amount:         p.Amount,
		oldAmount:      p.OldAmount,
		oldExpiryDate:  p.OldExpiryDate,
		newExpiryDate:  p.NewExpiryDate,
		renewalDate:    renewalDate,
		createdAt:      createdAt,
	}, nil
}

func (r *Renewal) ID() uint {
	return r.id
}

func (r *Renewal) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("renewal ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("renewal ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Renewal) SubscriptionID() uint {
	return r.subscriptionID
}

func (r *Renewal) UserID() uint {
	return r.userID
}

func (r *Renewal) PackageID() uint {
	return r.packageID
}

func (r *Renewal) OldPackageID() uint {
	return r.oldPackageID
}

func (r *Renewal) Amount() uint64 {
	return r.amount
}

func (r *Renewal) OldAmount() uint64 {
	return r.oldAmount
}

func (r *Renewal) OldExpiryDate() time.Time {
	return r.oldExpiryDate
}

func (r *Renewal) NewExpiryDate() time.Time {
	return r.newExpiryDate
}

func (r *Renewal) RenewalDate() time.Time {
	return r.renewalDate
}

func (r *Renewal) CreatedAt() time.Time {
	return r.createdAt
}
