package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbill/internal/domain/subscription"
	"netbill/internal/shared/biztime"
	"netbill/internal/shared/errors"
)

func newUpgradeFixture() (*UpgradeUseCase, *fakeSubscriptionRepo, *fakePaymentRepo, *fakePackageRepo) {
	subRepo := newFakeSubscriptionRepo()
	payRepo := newFakePaymentRepo()
	pkgRepo := newFakePackageRepo()

	uc := NewUpgradeUseCase(subRepo, payRepo, pkgRepo, &fakeTxManager{}, nopLogger{})
	return uc, subRepo, payRepo, pkgRepo
}

func TestUpgradeUseCase_Execute_Success(t *testing.T) {
	uc, subRepo, payRepo, pkgRepo := newUpgradeFixture()
	seedPackage(pkgRepo, 1, "Silver", 1500, 30)
	seedPackage(pkgRepo, 2, "Gold", 2500, 30)
	old := seedSubscription(t, subRepo, 42, 1, "2024-01-01", "2024-01-31")

	result, err := uc.Execute(context.Background(), UpgradeCommand{UserID: 42, PackageID: 2})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Gold", result.PackageName)
	assert.Equal(t, uint(2), result.Subscription.PackageID)
	// Clean slate: the new period starts today at the full price.
	assert.Equal(t, biztime.FormatDate(biztime.Today()), result.Subscription.StartDate)
	assert.Equal(t, uint64(2500), result.Subscription.Payment.Amount)

	// Exactly one active row remains, and it is the new one.
	active, err := subRepo.GetActiveByUserID(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, uint(2), active[0].PackageID())

	oldRow, _ := subRepo.GetByID(context.Background(), old.ID())
	assert.Equal(t, subscription.StatusExpired, oldRow.Status())

	require.Len(t, payRepo.payments, 1)
}

func TestUpgradeUseCase_Execute_NoActiveSubscription(t *testing.T) {
	uc, _, _, pkgRepo := newUpgradeFixture()
	seedPackage(pkgRepo, 2, "Gold", 2500, 30)

	_, err := uc.Execute(context.Background(), UpgradeCommand{UserID: 42, PackageID: 2})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpgradeUseCase_Execute_SamePackageRejected(t *testing.T) {
	uc, subRepo, _, pkgRepo := newUpgradeFixture()
	seedPackage(pkgRepo, 1, "Gold", 2500, 30)
	seedSubscription(t, subRepo, 42, 1, "2024-01-01", "2024-01-31")

	_, err := uc.Execute(context.Background(), UpgradeCommand{UserID: 42, PackageID: 1})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}

func TestUpgradeUseCase_Execute_PackageNotFound(t *testing.T) {
	uc, subRepo, _, _ := newUpgradeFixture()
	seedSubscription(t, subRepo, 42, 1, "2024-01-01", "2024-01-31")

	_, err := uc.Execute(context.Background(), UpgradeCommand{UserID: 42, PackageID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpgradeUseCase_Execute_InactivePackage(t *testing.T) {
	uc, subRepo, _, pkgRepo := newUpgradeFixture()
	seedSubscription(t, subRepo, 42, 1, "2024-01-01", "2024-01-31")
	pkg := seedPackage(pkgRepo, 2, "Gold", 2500, 30)
	pkg.Deactivate()

	_, err := uc.Execute(context.Background(), UpgradeCommand{UserID: 42, PackageID: 2})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}

func TestUpgradeUseCase_Execute_ExpiresAllActiveRows(t *testing.T) {
	uc, subRepo, _, pkgRepo := newUpgradeFixture()
	seedPackage(pkgRepo, 3, "Platinum", 5000, 30)
	// Two active rows can exist in legacy data; upgrade must clear both.
	seedSubscription(t, subRepo, 42, 1, "2024-01-01", "2024-01-31")
	seedSubscription(t, subRepo, 42, 2, "2024-01-15", "2024-02-14")

	_, err := uc.Execute(context.Background(), UpgradeCommand{UserID: 42, PackageID: 3})
	require.NoError(t, err)

	active, err := subRepo.GetActiveByUserID(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, uint(3), active[0].PackageID())
}
