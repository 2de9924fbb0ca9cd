package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbill/internal/domain/catalog"
	"netbill/internal/shared/errors"
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

func seedPackage(repo *fakePackageRepo, id uint, name string, price uint64, validityDays int) *catalog.Package {
	pkg, _ := catalog.ReconstructPackage(id, name, price, validityDays, "active", 1, time.Now(), time.Now())
	repo.packages[id] = pkg
	if id >= repo.nextID {
		repo.nextID = id + 1
	}
	return pkg
}

func TestCreatePackageUseCase_Execute(t *testing.T) {
	repo := newFakePackageRepo()
	uc := NewCreatePackageUseCase(repo, nopLogger{})

	pkg, err := uc.Execute(context.Background(), CreatePackageCommand{
		Name:         "Gold",
		Price:        2500,
		ValidityDays: 30,
	})

	require.NoError(t, err)
	assert.NotZero(t, pkg.ID())
	assert.Equal(t, "Gold", pkg.Name())
	assert.Equal(t, uint64(2500), pkg.Price())
	assert.Equal(t, 30, pkg.ValidityDays())
	assert.True(t, pkg.IsActive())
	require.Len(t, repo.packages, 1)
}

func TestCreatePackageUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewCreatePackageUseCase(newFakePackageRepo(), nopLogger{})

	_, err := uc.Execute(context.Background(), CreatePackageCommand{Name: "", Price: 2500, ValidityDays: 30})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreatePackageCommand{Name: "Gold", Price: 2500, ValidityDays: 0})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdatePackageUseCase_Execute_PartialEdit(t *testing.T) {
	repo := newFakePackageRepo()
	uc := NewUpdatePackageUseCase(repo, nopLogger{})
	seedPackage(repo, 1, "Gold", 2500, 30)

	price := uint64(3000)
	pkg, err := uc.Execute(context.Background(), UpdatePackageCommand{PackageID: 1, Price: &price})

	require.NoError(t, err)
	assert.Equal(t, uint64(3000), pkg.Price())
	// Untouched fields survive a partial edit.
	assert.Equal(t, "Gold", pkg.Name())
	assert.Equal(t, 30, pkg.ValidityDays())
}

func TestUpdatePackageUseCase_Execute_StatusTransitions(t *testing.T) {
	repo := newFakePackageRepo()
	uc := NewUpdatePackageUseCase(repo, nopLogger{})
	seedPackage(repo, 1, "Gold", 2500, 30)

	inactive := "inactive"
	pkg, err := uc.Execute(context.Background(), UpdatePackageCommand{PackageID: 1, Status: &inactive})
	require.NoError(t, err)
	assert.False(t, pkg.IsActive())

	active := "active"
	pkg, err = uc.Execute(context.Background(), UpdatePackageCommand{PackageID: 1, Status: &active})
	require.NoError(t, err)
	assert.True(t, pkg.IsActive())

	bogus := "archived"
	_, err = uc.Execute(context.Background(), UpdatePackageCommand{PackageID: 1, Status: &bogus})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdatePackageUseCase_Execute_NotFound(t *testing.T) {
	uc := NewUpdatePackageUseCase(newFakePackageRepo(), nopLogger{})

	_, err := uc.Execute(context.Background(), UpdatePackageCommand{PackageID: 99})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdatePackageUseCase_Execute_InvalidName(t *testing.T) {
	repo := newFakePackageRepo()
	uc := NewUpdatePackageUseCase(repo, nopLogger{})
	seedPackage(repo, 1, "Gold", 2500, 30)

	empty := ""
	_, err := uc.Execute(context.Background(), UpdatePackageCommand{PackageID: 1, Name: &empty})
	assert.True(t, errors.IsValidationError(err))
}

func TestDeletePackageUseCase_Execute(t *testing.T) {
	repo := newFakePackageRepo()
	uc := NewDeletePackageUseCase(repo, nopLogger{})
	seedPackage(repo, 1, "Gold", 2500, 30)

	require.NoError(t, uc.Execute(context.Background(), 1))
	assert.Empty(t, repo.packages)
}

func TestDeletePackageUseCase_Execute_ReferencedPackage(t *testing.T) {
	repo := newFakePackageRepo()
	uc := NewDeletePackageUseCase(repo, nopLogger{})
	seedPackage(repo, 1, "Gold", 2500, 30)
	repo.subscriptionCount = 3

	err := uc.Execute(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	// The package must survive a refused delete.
	require.Len(t, repo.packages, 1)
}

func TestDeletePackageUseCase_Execute_NotFound(t *testing.T) {
	uc := NewDeletePackageUseCase(newFakePackageRepo(), nopLogger{})

	err := uc.Execute(context.Background(), 99)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetPackageUseCase_Execute(t *testing.T) {
	repo := newFakePackageRepo()
	uc := NewGetPackageUseCase(repo, nopLogger{})
	seedPackage(repo, 1, "Gold", 2500, 30)

	pkg, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Gold", pkg.Name())

	_, err = uc.Execute(context.Background(), 99)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListPackagesUseCase_Execute(t *testing.T) {
	repo := newFakePackageRepo()
	uc := NewListPackagesUseCase(repo, nopLogger{})
	seedPackage(repo, 1, "Gold", 2500, 30)
	inactive := seedPackage(repo, 2, "Legacy", 1000, 30)
	inactive.Deactivate()

	all, err := uc.Execute(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := uc.Execute(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Gold", active[0].Name())
}
