package catalog

import "context"

type PackageRepository interface {
	Create(ctx context.Context, pkg *Package) error
	GetByID(ctx context.Context, id uint) (*Package, error)
	GetAllActive(ctx context.Context) ([]*Package, error)
	List(ctx context.Context) ([]*Package, error)
	Update(ctx context.Context, pkg *Package) error
	Delete(ctx context.Context, id uint) error

	// CountSubscriptions counts subscriptions referencing the package,
	// used to block deleting a package that is still in use.
	CountSubscriptions(ctx context.Context, packageID uint) (int64, error)
}
