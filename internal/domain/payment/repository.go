package payment

import "context"

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Payment, error)
	// GetBySubscriptionID returns the payment linked to a subscription,
	// or nil when none exists. The link is 1:1 by unique key.
	GetBySubscriptionID(ctx context.Context, subscriptionID uint) (*Payment, error)
	Update(ctx context.Context, payment *Payment) error
	// Upsert atomically creates the payment or, when a row for the same
	// subscription already exists, overwrites its billing fields.
	Upsert(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uint) error
}
