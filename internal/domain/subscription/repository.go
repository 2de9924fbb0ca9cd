package subscription

import (
	"context"
	"time"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	GetLatestByUserID(ctx context.Context, userID uint) (*Subscription, error)
	GetActiveByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	// GetActiveByUserIDForUpdate locks the user's active rows for the duration
	// of the surrounding transaction (SELECT ... FOR UPDATE).
	GetActiveByUserIDForUpdate(ctx context.Context, userID uint) ([]*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, id uint) error
}

type RenewalRepository interface {
	Create(ctx context.Context, renewal *Renewal) error
	GetByID(ctx context.Context, id uint) (*Renewal, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Renewal, error)
	// GetLatestBySubscriptionID returns the most recent renewal for a
	// subscription, or nil when none exists.
	GetLatestBySubscriptionID(ctx context.Context, subscriptionID uint) (*Renewal, error)
	Delete(ctx context.Context, id uint) error

	Stats(ctx context.Context, from, to time.Time) (*RenewalStats, error)
}

// RenewalStats aggregates renewal volume over a period.
type RenewalStats struct {
	Count         int64
	TotalRevenue  uint64
	AverageAmount float64
}
