package usecases

import (
	"context"
)

// TransactionManager runs a function inside a database transaction. The
// transaction is carried in the context so repositories share it.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReceiptNotifier delivers a renewal receipt to the user after a successful
// renewal. Delivery failures must not fail the renewal.
type ReceiptNotifier interface {
	NotifyRenewal(ctx context.Context, userID uint, packageName string, amount uint64, newExpiry string)
}
