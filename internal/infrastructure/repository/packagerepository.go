package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"netbill/internal/domain/catalog"
	"netbill/internal/infrastructure/persistence/mappers"
	"netbill/internal/infrastructure/persistence/models"
	"netbill/internal/shared/db"
	"netbill/internal/shared/logger"
)

type PackageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.PackageMapper
	logger logger.Interface
}

func NewPackageRepository(
	db *gorm.DB,
	logger logger.Interface,
) catalog.PackageRepository {
	return &PackageRepositoryImpl{
		db:     db,
		mapper: mappers.NewPackageMapper(),
		logger: logger,
	}
}

func (r *PackageRepositoryImpl) Create(ctx context.Context, pkg *catalog.Package) error {
	model := r.mapper.ToModel(pkg)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create package in database", "error", err)
		return fmt.Errorf("failed to create package: %w", err)
	}

	if err := pkg.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set package ID: %w", err)
	}

	r.logger.Infow("package created successfully", "id", model.ID, "name", model.Name)
	return nil
}

func (r *PackageRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Package, error) {
	var model models.PackageModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get package by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map package: %w", err)
	}

	return entity, nil
}

func (r *PackageRepositoryImpl) GetAllActive(ctx context.Context) ([]*catalog.Package, error) {
	var modelList []*models.PackageModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", string(catalog.PackageStatusActive)).
		Order("price ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get active packages", "error", err)
		return nil, fmt.Errorf("failed to get active packages: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map packages: %w", err)
	}

	return entities, nil
}

func (r *PackageRepositoryImpl) List(ctx context.Context) ([]*catalog.Package, error) {
	var modelList []*models.PackageModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list packages", "error", err)
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map packages: %w", err)
	}

	return entities, nil
}

func (r *PackageRepositoryImpl) Update(ctx context.Context, pkg *catalog.Package) error {
	model := r.mapper.ToModel(pkg)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"price":         model.Price,
			"validity_days": model.ValidityDays,
			"status":        model.Status,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update package", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update package: %w", result.Error)
	}

	r.logger.Infow("package updated successfully", "id", model.ID)
	return nil
}

func (r *PackageRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PackageModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete package", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete package: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("package not found")
	}

	r.logger.Infow("package deleted successfully", "id", id)
	return nil
}

func (r *PackageRepositoryImpl) CountSubscriptions(ctx context.Context, packageID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("package_id = ?", packageID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count package subscriptions", "package_id", packageID, "error", err)
		return 0, fmt.Errorf("failed to count package subscriptions: %w", err)
	}

	return count, nil
}
