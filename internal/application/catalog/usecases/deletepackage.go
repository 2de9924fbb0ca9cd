package usecases

import (
	"context"

	"netbill/internal/domain/catalog"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type DeletePackageUseCase struct {
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewDeletePackageUseCase(
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *DeletePackageUseCase {
	return &DeletePackageUseCase{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// Execute deletes a package unless subscriptions still reference it.
// Referenced packages should be deactivated instead.
func (uc *DeletePackageUseCase) Execute(ctx context.Context, packageID uint) error {
	if packageID == 0 {
		return errors.NewValidationError("package ID is required")
	}

	pkg, err := uc.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		uc.logger.Errorw("failed to get package", "error", err, "package_id", packageID)
		return errors.NewInternalError("failed to get package")
	}
	if pkg == nil {
		return errors.NewNotFoundError("package not found")
	}

	count, err := uc.packageRepo.CountSubscriptions(ctx, packageID)
	if err != nil {
		uc.logger.Errorw("failed to count package subscriptions", "error", err, "package_id", packageID)
		return errors.NewInternalError("failed to count package subscriptions")
	}
	if count > 0 {
		return errors.NewConflictError("package is referenced by existing subscriptions")
	}

	if err := uc.packageRepo.Delete(ctx, packageID); err != nil {
		uc.logger.Errorw("failed to delete package", "error", err, "package_id", packageID)
		return errors.NewInternalError("failed to delete package")
	}

	uc.logger.Infow("package deleted", "package_id", packageID)
	return nil
}
