package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbill/internal/shared/errors"
)

func TestDeleteSubscriptionUseCase_Execute(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	uc := NewDeleteSubscriptionUseCase(subRepo, nopLogger{})
	sub := seedSubscription(t, subRepo, 42, 1, "2024-01-01", "2024-01-31")

	require.NoError(t, uc.Execute(context.Background(), sub.ID()))
	assert.Empty(t, subRepo.subs)

	err := uc.Execute(context.Background(), sub.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteSubscriptionUseCase_Execute_ZeroID(t *testing.T) {
	uc := NewDeleteSubscriptionUseCase(newFakeSubscriptionRepo(), nopLogger{})

	err := uc.Execute(context.Background(), 0)
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteRenewalUseCase_Execute(t *testing.T) {
	renewalRepo := newFakeRenewalRepo()
	uc := NewDeleteRenewalUseCase(renewalRepo, nopLogger{})
	renewal := seedRenewal(t, renewalRepo, 42, 2500, "2024-02-01")

	require.NoError(t, uc.Execute(context.Background(), renewal.ID()))
	assert.Empty(t, renewalRepo.renewals)

	err := uc.Execute(context.Background(), renewal.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeletePaymentUseCase_Execute(t *testing.T) {
	payRepo := newFakePaymentRepo()
	uc := NewDeletePaymentUseCase(payRepo, nopLogger{})
	p := seedPayment(t, payRepo, 42, 1, 1, 2500)

	require.NoError(t, uc.Execute(context.Background(), p.ID()))
	assert.Empty(t, payRepo.payments)

	err := uc.Execute(context.Background(), p.ID())
	assert.True(t, errors.IsNotFoundError(err))
}
