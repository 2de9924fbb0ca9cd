package usecases

import (
	"context"

	"netbill/internal/domain/catalog"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type ListPackagesUseCase struct {
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewListPackagesUseCase(
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *ListPackagesUseCase {
	return &ListPackagesUseCase{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// Execute lists packages, optionally restricted to active ones.
func (uc *ListPackagesUseCase) Execute(ctx context.Context, activeOnly bool) ([]*catalog.Package, error) {
	var packages []*catalog.Package
	var err error

	if activeOnly {
		packages, err = uc.packageRepo.GetAllActive(ctx)
	} else {
		packages, err = uc.packageRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list packages", "error", err)
		return nil, errors.NewInternalError("failed to list packages")
	}

	return packages, nil
}
