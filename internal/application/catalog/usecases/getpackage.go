package usecases

import (
	"context"

	"netbill/internal/domain/catalog"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type GetPackageUseCase struct {
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewGetPackageUseCase(
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *GetPackageUseCase {
	return &GetPackageUseCase{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

func (uc *GetPackageUseCase) Execute(ctx context.Context, packageID uint) (*catalog.Package, error) {
	if packageID == 0 {
		return nil, errors.NewValidationError("package ID is required")
	}

	pkg, err := uc.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		uc.logger.Errorw("failed to get package", "error", err, "package_id", packageID)
		return nil, errors.NewInternalError("failed to get package")
	}
	if pkg == nil {
		return nil, errors.NewNotFoundError("package not found")
	}

	return pkg, nil
}
