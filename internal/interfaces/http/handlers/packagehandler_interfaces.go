package handlers

import (
	"context"

	"netbill/internal/application/catalog/usecases"
	"netbill/internal/domain/catalog"
)

// Use case interfaces for PackageHandler

type createPackageUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePackageCommand) (*catalog.Package, error)
}

type updatePackageUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePackageCommand) (*catalog.Package, error)
}

type deletePackageUseCase interface {
	Execute(ctx context.Context, packageID uint) error
}

type listPackagesUseCase interface {
	Execute(ctx context.Context, activeOnly bool) ([]*catalog.Package, error)
}

type getPackageUseCase interface {
	Execute(ctx context.Context, packageID uint) (*catalog.Package, error)
}
