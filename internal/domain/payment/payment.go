package payment

import (
	"fmt"
	"time"

	vo "netbill/internal/domain/payment/valueobjects"
	"netbill/internal/shared/biztime"
)

// Payment is one billing transaction. A payment is bound to at most one
// subscription, and a subscription carries at most one payment; the pairing
// is enforced by a unique key on subscriptions' side of the link.
type Payment struct {
	id             uint
	userID         uint
	packageID      uint
	subscriptionID *uint
	transactionID  *string
	amount         uint64
	paymentMethod  vo.PaymentMethod
	paymentDate    time.Time
	status         vo.PaymentStatus
	notes          *string
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPayment(userID, packageID, subscriptionID uint, amount uint64, method vo.PaymentMethod) (*Payment, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if packageID == 0 {
		return nil, fmt.Errorf("package ID is required")
	}
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}

	now := biztime.NowUTC()
	subID := subscriptionID
	return &Payment{
		userID:         userID,
		packageID:      packageID,
		subscriptionID: &subID,
		amount:         amount,
		paymentMethod:  method,
		paymentDate:    biztime.Today(),
		status:         vo.PaymentStatusUnpaid,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// PaymentReconstructParams carries persisted state back into the aggregate.
type PaymentReconstructParams struct {
	ID             uint
	UserID         uint
	PackageID      uint
	SubscriptionID *uint
	TransactionID  *string
	Amount         uint64
	PaymentMethod  vo.PaymentMethod
	PaymentDate    time.Time
	Status         vo.PaymentStatus
	Notes          *string
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructPayment(p PaymentReconstructParams) (*Payment, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", p.Status)
	}
	if !p.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", p.PaymentMethod)
	}

	return &Payment{
		id:             p.ID,
		userID:         p.UserID,
		packageID:      p.PackageID,
		subscriptionID: p.SubscriptionID,
		transactionID:  p.TransactionID,
		amount:         p.Amount,
		paymentMethod:  p.PaymentMethod,
		paymentDate:    p.PaymentDate,
		status:         p.Status,
		notes:          p.Notes,
		version:        p.Version,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func (p *Payment) ID() uint {
	return p.id
}

func (p *Payment) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Payment) UserID() uint {
	return p.userID
}

func (p *Payment) PackageID() uint {
	return p.packageID
}

func (p *Payment) SubscriptionID() *uint {
	return p.subscriptionID
}

func (p *Payment) TransactionID() *string {
	return p.transactionID
}

func (p *Payment) Amount() uint64 {
	return p.amount
}

func (p *Payment) PaymentMethod() vo.PaymentMethod {
	return p.paymentMethod
}

func (p *Payment) PaymentDate() time.Time {
	return p.paymentDate
}

func (p *Payment) Status() vo.PaymentStatus {
	return p.status
}

func (p *Payment) Notes() *string {
	return p.notes
}

func (p *Payment) Version() int {
	return p.version
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Payment) SetTransactionID(transactionID string) {
	if transactionID == "" {
		return
	}
	p.transactionID = &transactionID
	p.updatedAt = biztime.NowUTC()
	p.version++
}

func (p *Payment) MarkAsPaid(transactionID string) error {
	if p.status == vo.PaymentStatusPaid {
		return nil
	}

	now := biztime.NowUTC()
	p.status = vo.PaymentStatusPaid
	if transactionID != "" {
		p.transactionID = &transactionID
	}
	p.paymentDate = biztime.Today()
	p.updatedAt = now
	p.version++
	return nil
}

// UpdateDetails overwrites the mutable billing fields in place. The
// administrative subscription edit uses this rather than creating a second
// payment row for the same subscription.
func (p *Payment) UpdateDetails(amount uint64, method vo.PaymentMethod, transactionID *string,
	paymentDate time.Time, status vo.PaymentStatus, notes *string) error {

	if !method.IsValid() {
		return fmt.Errorf("invalid payment method: %s", method)
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid payment status: %s", status)
	}

	p.amount = amount
	p.paymentMethod = method
	p.transactionID = transactionID
	p.paymentDate = paymentDate
	p.status = status
	p.notes = notes
	p.updatedAt = biztime.NowUTC()
	p.version++
	return nil
}
