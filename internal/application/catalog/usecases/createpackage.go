package usecases

import (
	"context"

	"netbill/internal/domain/catalog"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type CreatePackageCommand struct {
	Name         string
	Price        uint64
	ValidityDays int
}

type CreatePackageUseCase struct {
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewCreatePackageUseCase(
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *CreatePackageUseCase {
	return &CreatePackageUseCase{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

func (uc *CreatePackageUseCase) Execute(ctx context.Context, cmd CreatePackageCommand) (*catalog.Package, error) {
	pkg, err := catalog.NewPackage(cmd.Name, cmd.Price, cmd.ValidityDays)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.packageRepo.Create(ctx, pkg); err != nil {
		uc.logger.Errorw("failed to create package", "error", err, "name", cmd.Name)
		return nil, errors.NewInternalError("failed to create package")
	}

	uc.logger.Infow("package created", "id", pkg.ID(), "name", pkg.Name())
	return pkg, nil
}
