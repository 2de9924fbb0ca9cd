package subscription

import (
	"fmt"
	"time"

	"netbill/internal/shared/biztime"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	// StatusInactive is an administrative parking state. No lifecycle
	// operation assigns it; it exists for manual data fixes only.
	StatusInactive Status = "inactive"
)

var ValidStatuses = map[Status]bool{
	StatusActive:   true,
	StatusExpired:  true,
	StatusInactive: true,
}

func (s Status) String() string {
	return string(s)
}

// Subscription represents one user's enrollment in a package for a bounded
// time window. It is the current-state record; Payment and Renewal rows hang
// off it as dependent history.
type Subscription struct {
	id         uint
	userID     uint
	packageID  uint
	paymentID  *uint
	status     Status
	startDate  time.Time
	expiryDate time.Time
	version    int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewSubscription(userID, packageID uint, startDate, expiryDate time.Time) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if packageID == 0 {
		return nil, fmt.Errorf("package ID is required")
	}
	if expiryDate.Before(startDate) {
		return nil, fmt.Errorf("expiry date must be after start date")
	}

	now := biztime.NowUTC()
	return &Subscription{
		userID:     userID,
		packageID:  packageID,
		status:     StatusActive,
		startDate:  startDate,
		expiryDate: expiryDate,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// SubscriptionReconstructParams carries persisted state back into the aggregate.
type SubscriptionReconstructParams struct {
	ID         uint
	UserID     uint
	PackageID  uint
	PaymentID  *uint
	Status     Status
	StartDate  time.Time
	ExpiryDate time.Time
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructSubscription(p SubscriptionReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if p.PackageID == 0 {
		return nil, fmt.Errorf("package ID is required")
	}
	if !ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}

	return &Subscription{
		id:         p.ID,
		userID:     p.UserID,
		packageID:  p.PackageID,
		paymentID:  p.PaymentID,
		status:     p.Status,
		startDate:  p.StartDate,
		expiryDate: p.ExpiryDate,
		version:    p.Version,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) UserID() uint {
	return s.userID
}

func (s *Subscription) PackageID() uint {
	return s.packageID
}

func (s *Subscription) PaymentID() *uint {
	return s.paymentID
}

func (s *Subscription) Status() Status {
	return s.status
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) ExpiryDate() time.Time {
	return s.expiryDate
}

func (s *Subscription) Version() int {
	return s.version
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// AttachPayment back-links the payment row created alongside the subscription.
func (s *Subscription) AttachPayment(paymentID uint) error {
	if paymentID == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	s.paymentID = &paymentID
	s.updatedAt = biztime.NowUTC()
	s.version++
	return nil
}

// Renew extends the expiry in place. Renewal compounds on the current expiry
// date, so renewing early does not forfeit remaining days; renewing a lapsed
// subscription flips it back to active.
func (s *Subscription) Renew(newExpiry time.Time) error {
	if !newExpiry.After(s.expiryDate) {
		return fmt.Errorf("new expiry date must be after current expiry date")
	}

	s.expiryDate = newExpiry
	if s.status == StatusExpired {
		s.status = StatusActive
	}
	s.updatedAt = biztime.NowUTC()
	s.version++
	return nil
}

// RollBackExpiry restores a prior expiry date when a renewal is reversed.
func (s *Subscription) RollBackExpiry(oldExpiry time.Time) error {
	if oldExpiry.After(s.expiryDate) {
		return fmt.Errorf("rollback target %s is after current expiry %s",
			biztime.FormatDate(oldExpiry), biztime.FormatDate(s.expiryDate))
	}

	s.expiryDate = oldExpiry
	s.updatedAt = biztime.NowUTC()
	s.version++
	return nil
}

// MarkAsExpired supersedes the subscription, e.g. when an upgrade replaces it.
func (s *Subscription) MarkAsExpired() error {
	if s.status == StatusExpired {
		return nil
	}
	if s.status != StatusActive {
		return fmt.Errorf("cannot expire subscription with status %s", s.status)
	}

	s.status = StatusExpired
	s.updatedAt = biztime.NowUTC()
	s.version++
	return nil
}

// ChangePackage repoints the subscription at a different package and
// recomputes its period. Used by the administrative update operation.
func (s *Subscription) ChangePackage(packageID uint, startDate, expiryDate time.Time) error {
	if packageID == 0 {
		return fmt.Errorf("package ID is required")
	}
	if expiryDate.Before(startDate) {
		return fmt.Errorf("expiry date must be after start date")
	}

	s.packageID = packageID
	s.startDate = startDate
	s.expiryDate = expiryDate
	s.updatedAt = biztime.NowUTC()
	s.version++
	return nil
}

// IsLapsed reports whether the expiry date has passed. Status is not flipped
// by the passage of time alone; reads filter on the date instead.
func (s *Subscription) IsLapsed() bool {
	return biztime.Today().After(s.expiryDate)
}

func (s *Subscription) IsActive() bool {
	return s.status == StatusActive && !s.IsLapsed()
}
