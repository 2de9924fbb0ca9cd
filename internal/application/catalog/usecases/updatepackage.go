package usecases

import (
	"context"

	"netbill/internal/domain/catalog"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type UpdatePackageCommand struct {
	PackageID    uint
	Name         *string
	Price        *uint64
	ValidityDays *int
	Status       *string
}

type UpdatePackageUseCase struct {
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewUpdatePackageUseCase(
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *UpdatePackageUseCase {
	return &UpdatePackageUseCase{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// Execute edits package reference data. Existing subscriptions keep the
// expiry they were computed with; a new validity only affects future
// subscribe and renew operations.
func (uc *UpdatePackageUseCase) Execute(ctx context.Context, cmd UpdatePackageCommand) (*catalog.Package, error) {
	if cmd.PackageID == 0 {
		return nil, errors.NewValidationError("package ID is required")
	}

	pkg, err := uc.packageRepo.GetByID(ctx, cmd.PackageID)
	if err != nil {
		uc.logger.Errorw("failed to get package", "error", err, "package_id", cmd.PackageID)
		return nil, errors.NewInternalError("failed to get package")
	}
	if pkg == nil {
		return nil, errors.NewNotFoundError("package not found")
	}

	if cmd.Name != nil {
		if err := pkg.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Price != nil {
		pkg.UpdatePrice(*cmd.Price)
	}
	if cmd.ValidityDays != nil {
		if err := pkg.UpdateValidityDays(*cmd.ValidityDays); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		switch *cmd.Status {
		case string(catalog.PackageStatusActive):
			pkg.Activate()
		case string(catalog.PackageStatusInactive):
			pkg.Deactivate()
		default:
			return nil, errors.NewValidationError("invalid package status")
		}
	}

	if err := uc.packageRepo.Update(ctx, pkg); err != nil {
		uc.logger.Errorw("failed to update package", "error", err, "package_id", cmd.PackageID)
		return nil, errors.NewInternalError("failed to update package")
	}

	uc.logger.Infow("package updated", "id", pkg.ID())
	return pkg, nil
}
