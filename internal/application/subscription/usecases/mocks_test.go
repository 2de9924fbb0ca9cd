package usecases

import (
	"context"
	"sort"
	"testing"
	"time"

	"netbill/internal/domain/catalog"
	"netbill/internal/domain/payment"
	vo "netbill/internal/domain/payment/valueobjects"
	"netbill/internal/domain/subscription"
	"netbill/internal/domain/user"
	"netbill/internal/shared/logger"
)

// In-memory fakes backing the use case tests. They mimic the repository
// contracts closely enough for lifecycle semantics: IDs are assigned on
// Create, lookups return (nil, nil) on miss.

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

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

type fakeSubscriptionRepo struct {
	subs   map[uint]*subscription.Subscription
	nextID uint

	createErr error
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[uint]*subscription.Subscription), nextID: 1}
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	if r.createErr != nil {
		return r.createErr
	}
	if sub.ID() == 0 {
		_ = sub.SetID(r.nextID)
		r.nextID++
	}
	r.subs[sub.ID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return r.subs[id], nil
}

func (r *fakeSubscriptionRepo) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	var result []*subscription.Subscription
	for _, id := range r.sortedIDs() {
		if r.subs[id].UserID() == userID {
			result = append(result, r.subs[id])
		}
	}
	return result, nil
}

func (r *fakeSubscriptionRepo) GetLatestByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	var latest *subscription.Subscription
	for _, id := range r.sortedIDs() {
		if r.subs[id].UserID() == userID {
			latest = r.subs[id]
		}
	}
	return latest, nil
}

func (r *fakeSubscriptionRepo) GetActiveByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	var result []*subscription.Subscription
	for _, id := range r.sortedIDs() {
		sub := r.subs[id]
		if sub.UserID() == userID && sub.Status() == subscription.StatusActive {
			result = append(result, sub)
		}
	}
	return result, nil
}

func (r *fakeSubscriptionRepo) GetActiveByUserIDForUpdate(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	return r.GetActiveByUserID(ctx, userID)
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	r.subs[sub.ID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) Delete(ctx context.Context, id uint) error {
	delete(r.subs, id)
	return nil
}

func (r *fakeSubscriptionRepo) sortedIDs() []uint {
	ids := make([]uint, 0, len(r.subs))
	for id := range r.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type fakeRenewalRepo struct {
	renewals map[uint]*subscription.Renewal
	nextID   uint
}

func newFakeRenewalRepo() *fakeRenewalRepo {
	return &fakeRenewalRepo{renewals: make(map[uint]*subscription.Renewal), nextID: 1}
}

func (r *fakeRenewalRepo) Create(ctx context.Context, renewal *subscription.Renewal) error {
	if renewal.ID() == 0 {
		_ = renewal.SetID(r.nextID)
		r.nextID++
	}
	r.renewals[renewal.ID()] = renewal
	return nil
}

func (r *fakeRenewalRepo) GetByID(ctx context.Context, id uint) (*subscription.Renewal, error) {
	return r.renewals[id], nil
}

func (r *fakeRenewalRepo) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Renewal, error) {
	var result []*subscription.Renewal
	for _, id := range r.sortedIDs() {
		if r.renewals[id].UserID() == userID {
			result = append(result, r.renewals[id])
		}
	}
	return result, nil
}

func (r *fakeRenewalRepo) GetLatestBySubscriptionID(ctx context.Context, subscriptionID uint) (*subscription.Renewal, error) {
	var latest *subscription.Renewal
	for _, id := range r.sortedIDs() {
		if r.renewals[id].SubscriptionID() == subscriptionID {
			latest = r.renewals[id]
		}
	}
	return latest, nil
}

func (r *fakeRenewalRepo) Delete(ctx context.Context, id uint) error {
	delete(r.renewals, id)
	return nil
}

func (r *fakeRenewalRepo) Stats(ctx context.Context, from, to time.Time) (*subscription.RenewalStats, error) {
	stats := &subscription.RenewalStats{}
	for _, renewal := range r.renewals {
		d := renewal.RenewalDate()
		if d.Before(from) || d.After(to) {
			continue
		}
		stats.Count++
		stats.TotalRevenue += renewal.Amount()
	}
	if stats.Count > 0 {
		stats.AverageAmount = float64(stats.TotalRevenue) / float64(stats.Count)
	}
	return stats, nil
}

func (r *fakeRenewalRepo) sortedIDs() []uint {
	ids := make([]uint, 0, len(r.renewals))
	for id := range r.renewals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type fakePaymentRepo struct {
	payments map[uint]*payment.Payment
	nextID   uint
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uint]*payment.Payment), nextID: 1}
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	if p.ID() == 0 {
		_ = p.SetID(r.nextID)
		r.nextID++
	}
	r.payments[p.ID()] = p
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	return r.payments[id], nil
}

func (r *fakePaymentRepo) GetByUserID(ctx context.Context, userID uint) ([]*payment.Payment, error) {
	var result []*payment.Payment
	for _, p := range r.payments {
		if p.UserID() == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePaymentRepo) GetBySubscriptionID(ctx context.Context, subscriptionID uint) (*payment.Payment, error) {
	for _, p := range r.payments {
		if p.SubscriptionID() != nil && *p.SubscriptionID() == subscriptionID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, p *payment.Payment) error {
	r.payments[p.ID()] = p
	return nil
}

func (r *fakePaymentRepo) Upsert(ctx context.Context, p *payment.Payment) error {
	if p.SubscriptionID() != nil {
		existing, _ := r.GetBySubscriptionID(ctx, *p.SubscriptionID())
		if existing != nil && existing.ID() != p.ID() {
			r.payments[existing.ID()] = p
			return nil
		}
	}
	return r.Create(ctx, p)
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id uint) error {
	delete(r.payments, id)
	return nil
}

type fakePackageRepo struct {
	packages map[uint]*catalog.Package
	nextID   uint

	subscriptionCount int64
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: make(map[uint]*catalog.Package), nextID: 1}
}

func (r *fakePackageRepo) Create(ctx context.Context, pkg *catalog.Package) error {
	if pkg.ID() == 0 {
		_ = pkg.SetID(r.nextID)
		r.nextID++
	}
	r.packages[pkg.ID()] = pkg
	return nil
}

func (r *fakePackageRepo) GetByID(ctx context.Context, id uint) (*catalog.Package, error) {
	return r.packages[id], nil
}

func (r *fakePackageRepo) GetAllActive(ctx context.Context) ([]*catalog.Package, error) {
	var result []*catalog.Package
	for _, pkg := range r.packages {
		if pkg.IsActive() {
			result = append(result, pkg)
		}
	}
	return result, nil
}

func (r *fakePackageRepo) List(ctx context.Context) ([]*catalog.Package, error) {
	var result []*catalog.Package
	for _, pkg := range r.packages {
		result = append(result, pkg)
	}
	return result, nil
}

func (r *fakePackageRepo) Update(ctx context.Context, pkg *catalog.Package) error {
	r.packages[pkg.ID()] = pkg
	return nil
}

func (r *fakePackageRepo) Delete(ctx context.Context, id uint) error {
	delete(r.packages, id)
	return nil
}

func (r *fakePackageRepo) CountSubscriptions(ctx context.Context, packageID uint) (int64, error) {
	return r.subscriptionCount, nil
}

type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*user.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if u.ID() == 0 {
		_ = u.SetID(r.nextID)
		r.nextID++
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

// Test fixture helpers

func seedUser(repo *fakeUserRepo, id uint) *user.User {
	u, _ := user.ReconstructUser(id, "Test User", "user@example.com", "hash", user.StatusActive, time.Now(), time.Now())
	repo.users[id] = u
	if id >= repo.nextID {
		repo.nextID = id + 1
	}
	return u
}

func seedPackage(repo *fakePackageRepo, id uint, name string, price uint64, validityDays int) *catalog.Package {
	pkg, _ := catalog.ReconstructPackage(id, name, price, validityDays, "active", 1, time.Now(), time.Now())
	repo.packages[id] = pkg
	if id >= repo.nextID {
		repo.nextID = id + 1
	}
	return pkg
}

func seedPayment(t *testing.T, repo *fakePaymentRepo, userID, packageID, subscriptionID uint, amount uint64) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(userID, packageID, subscriptionID, amount, vo.PaymentMethodCash)
	if err != nil {
		panic(err)
	}
	_ = repo.Create(context.Background(), p)
	return p
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
