package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"netbill/internal/domain/catalog"
	"netbill/internal/domain/payment"
	vo "netbill/internal/domain/payment/valueobjects"
	"netbill/internal/domain/subscription"
	"netbill/internal/infrastructure/persistence/models"
	"netbill/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.PackageModel{},
		&models.SubscriptionModel{},
		&models.PaymentModel{},
		&models.RenewalModel{},
	)
	require.NoError(t, err)

	return db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}

func newTestSubscription(t *testing.T, userID, packageID uint, start, expiry string) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(userID, packageID, date(t, start), date(t, expiry))
	require.NoError(t, err)
	return sub
}

func TestSubscriptionRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, nopLogger{})
	ctx := context.Background()

	t.Run("create assigns ID", func(t *testing.T) {
		sub := newTestSubscription(t, 1, 1, "2024-01-01", "2024-01-31")

		err := repo.Create(ctx, sub)
		assert.NoError(t, err)
		assert.NotZero(t, sub.ID())
	})

	t.Run("get by ID round-trips all fields", func(t *testing.T) {
		sub := newTestSubscription(t, 2, 3, "2024-01-01", "2024-01-31")
		require.NoError(t, repo.Create(ctx, sub))

		found, err := repo.GetByID(ctx, sub.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint(2), found.UserID())
		assert.Equal(t, uint(3), found.PackageID())
		assert.Equal(t, subscription.StatusActive, found.Status())
		assert.Equal(t, "2024-01-01", found.StartDate().Format("2006-01-02"))
		assert.Equal(t, "2024-01-31", found.ExpiryDate().Format("2006-01-02"))
	})

	t.Run("get by ID returns nil on miss", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestSubscriptionRepository_UserQueries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, nopLogger{})
	ctx := context.Background()

	first := newTestSubscription(t, 7, 1, "2024-01-01", "2024-01-31")
	require.NoError(t, repo.Create(ctx, first))
	first.MarkAsExpired()
	require.NoError(t, repo.Update(ctx, first))

	second := newTestSubscription(t, 7, 2, "2024-02-01", "2024-03-02")
	require.NoError(t, repo.Create(ctx, second))

	other := newTestSubscription(t, 8, 1, "2024-01-01", "2024-01-31")
	require.NoError(t, repo.Create(ctx, other))

	t.Run("get by user returns newest first", func(t *testing.T) {
		subs, err := repo.GetByUserID(ctx, 7)
		require.NoError(t, err)
		require.Len(t, subs, 2)
		assert.Equal(t, second.ID(), subs[0].ID())
		assert.Equal(t, first.ID(), subs[1].ID())
	})

	t.Run("latest by user", func(t *testing.T) {
		latest, err := repo.GetLatestByUserID(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, second.ID(), latest.ID())
	})

	t.Run("latest returns nil for unknown user", func(t *testing.T) {
		latest, err := repo.GetLatestByUserID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("active filters out expired rows", func(t *testing.T) {
		active, err := repo.GetActiveByUserID(ctx, 7)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, second.ID(), active[0].ID())
	})
}

func TestSubscriptionRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, nopLogger{})
	ctx := context.Background()

	sub := newTestSubscription(t, 1, 1, "2024-01-01", "2024-01-31")
	require.NoError(t, repo.Create(ctx, sub))

	require.NoError(t, sub.Renew(date(t, "2024-03-01")))
	require.NoError(t, repo.Update(ctx, sub))

	found, err := repo.GetByID(ctx, sub.ID())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", found.ExpiryDate().Format("2006-01-02"))
	assert.Equal(t, sub.Version(), found.Version())
}

func TestSubscriptionRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, nopLogger{})
	ctx := context.Background()

	sub := newTestSubscription(t, 1, 1, "2024-01-01", "2024-01-31")
	require.NoError(t, repo.Create(ctx, sub))

	require.NoError(t, repo.Delete(ctx, sub.ID()))

	found, err := repo.GetByID(ctx, sub.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Error(t, repo.Delete(ctx, sub.ID()))
}

func newTestRenewal(t *testing.T, subscriptionID, userID uint, amount uint64, oldExpiry, newExpiry string) *subscription.Renewal {
	t.Helper()
	renewal, err := subscription.NewRenewal(subscription.RenewalParams{
		SubscriptionID: subscriptionID,
		UserID:         userID,
		PackageID:      1,
		OldPackageID:   1,
		Amount:         amount,
		OldAmount:      amount,
		OldExpiryDate:  date(t, oldExpiry),
		NewExpiryDate:  date(t, newExpiry),
	})
	require.NoError(t, err)
	return renewal
}

func TestRenewalRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRenewalRepository(db, nopLogger{})
	ctx := context.Background()

	t.Run("create and get by ID", func(t *testing.T) {
		renewal := newTestRenewal(t, 1, 1, 2500, "2024-01-31", "2024-03-01")

		require.NoError(t, repo.Create(ctx, renewal))
		assert.NotZero(t, renewal.ID())

		found, err := repo.GetByID(ctx, renewal.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint64(2500), found.Amount())
		assert.Equal(t, "2024-01-31", found.OldExpiryDate().Format("2006-01-02"))
		assert.Equal(t, "2024-03-01", found.NewExpiryDate().Format("2006-01-02"))
	})

	t.Run("latest by subscription", func(t *testing.T) {
		older := newTestRenewal(t, 5, 1, 2500, "2024-01-31", "2024-03-01")
		require.NoError(t, repo.Create(ctx, older))
		newer := newTestRenewal(t, 5, 1, 2500, "2024-03-01", "2024-03-31")
		require.NoError(t, repo.Create(ctx, newer))

		latest, err := repo.GetLatestBySubscriptionID(ctx, 5)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, newer.ID(), latest.ID())
	})

	t.Run("latest returns nil on miss", func(t *testing.T) {
		latest, err := repo.GetLatestBySubscriptionID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		renewal := newTestRenewal(t, 6, 1, 2500, "2024-01-31", "2024-03-01")
		require.NoError(t, repo.Create(ctx, renewal))

		require.NoError(t, repo.Delete(ctx, renewal.ID()))
		found, err := repo.GetByID(ctx, renewal.ID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestRenewalRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRenewalRepository(db, nopLogger{})
	ctx := context.Background()

	// NewRenewal stamps today's renewal date, so a window around now
	// captures all rows and a historic window captures none.
	require.NoError(t, repo.Create(ctx, newTestRenewal(t, 1, 1, 2500, "2024-01-31", "2024-03-01")))
	require.NoError(t, repo.Create(ctx, newTestRenewal(t, 2, 2, 1500, "2024-01-31", "2024-03-01")))

	now := time.Now().UTC()
	stats, err := repo.Stats(ctx, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Count)
	assert.Equal(t, uint64(4000), stats.TotalRevenue)
	assert.Equal(t, 2000.0, stats.AverageAmount)

	empty, err := repo.Stats(ctx, date(t, "2000-01-01"), date(t, "2000-12-31"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Count)
	assert.Equal(t, uint64(0), empty.TotalRevenue)
	assert.Equal(t, 0.0, empty.AverageAmount)
}

func newTestPayment(t *testing.T, userID, packageID, subscriptionID uint, amount uint64) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(userID, packageID, subscriptionID, amount, vo.PaymentMethodCash)
	require.NoError(t, err)
	return p
}

func TestPaymentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db, nopLogger{})
	ctx := context.Background()

	t.Run("create and get by subscription", func(t *testing.T) {
		p := newTestPayment(t, 1, 1, 10, 2500)
		require.NoError(t, repo.Create(ctx, p))
		assert.NotZero(t, p.ID())

		found, err := repo.GetBySubscriptionID(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint64(2500), found.Amount())
		assert.Equal(t, vo.PaymentStatusUnpaid, found.Status())
	})

	t.Run("upsert overwrites the existing subscription payment", func(t *testing.T) {
		p := newTestPayment(t, 2, 1, 20, 2500)
		require.NoError(t, repo.Create(ctx, p))

		replacement := newTestPayment(t, 2, 1, 20, 3000)
		require.NoError(t, replacement.MarkAsPaid("txn-up"))
		require.NoError(t, repo.Upsert(ctx, replacement))

		found, err := repo.GetBySubscriptionID(ctx, 20)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint64(3000), found.Amount())
		assert.True(t, found.Status().IsPaid())

		var count int64
		require.NoError(t, db.Model(&models.PaymentModel{}).Where("subscription_id = ?", 20).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("get by user", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newTestPayment(t, 9, 1, 30, 100)))
		require.NoError(t, repo.Create(ctx, newTestPayment(t, 9, 1, 31, 200)))

		payments, err := repo.GetByUserID(ctx, 9)
		require.NoError(t, err)
		assert.Len(t, payments, 2)
	})

	t.Run("delete", func(t *testing.T) {
		p := newTestPayment(t, 3, 1, 40, 2500)
		require.NoError(t, repo.Create(ctx, p))

		require.NoError(t, repo.Delete(ctx, p.ID()))
		assert.Error(t, repo.Delete(ctx, p.ID()))
	})
}

func TestPackageRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPackageRepository(db, nopLogger{})
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		pkg, err := catalog.NewPackage("Gold", 2500, 30)
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, pkg))
		assert.NotZero(t, pkg.ID())

		found, err := repo.GetByID(ctx, pkg.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Gold", found.Name())
		assert.Equal(t, uint64(2500), found.Price())
		assert.Equal(t, 30, found.ValidityDays())
	})

	t.Run("active filter", func(t *testing.T) {
		inactive, err := catalog.NewPackage("Legacy", 1000, 30)
		require.NoError(t, err)
		inactive.Deactivate()
		require.NoError(t, repo.Create(ctx, inactive))

		active, err := repo.GetAllActive(ctx)
		require.NoError(t, err)
		for _, pkg := range active {
			assert.True(t, pkg.IsActive())
		}

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Greater(t, len(all), len(active))
	})

	t.Run("count subscriptions", func(t *testing.T) {
		pkg, err := catalog.NewPackage("Counted", 2500, 30)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, pkg))

		count, err := repo.CountSubscriptions(ctx, pkg.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		subRepo := NewSubscriptionRepository(db, nopLogger{})
		sub := newTestSubscription(t, 1, pkg.ID(), "2024-01-01", "2024-01-31")
		require.NoError(t, subRepo.Create(ctx, sub))

		count, err = repo.CountSubscriptions(ctx, pkg.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("update persists edits", func(t *testing.T) {
		pkg, err := catalog.NewPackage("Editable", 2500, 30)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, pkg))

		pkg.UpdatePrice(3000)
		require.NoError(t, repo.Update(ctx, pkg))

		found, err := repo.GetByID(ctx, pkg.ID())
		require.NoError(t, err)
		assert.Equal(t, uint64(3000), found.Price())
	})
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, nopLogger{})
	ctx := context.Background()

	seedModel := models.UserModel{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: "hash",
		Status:       "active",
	}
	require.NoError(t, db.Create(&seedModel).Error)

	t.Run("get by email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Admin", found.Name())
		assert.True(t, found.IsActive())
	})

	t.Run("get by email miss", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("get by ID", func(t *testing.T) {
		found, err := repo.GetByID(ctx, seedModel.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "admin@example.com", found.Email())
	})
}
