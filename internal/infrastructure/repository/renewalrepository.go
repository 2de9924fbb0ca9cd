package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"netbill/internal/domain/subscription"
	"netbill/internal/infrastructure/persistence/mappers"
	"netbill/internal/infrastructure/persistence/models"
	"netbill/internal/shared/db"
	"netbill/internal/shared/logger"
)

type RenewalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.RenewalMapper
	logger logger.Interface
}

func NewRenewalRepository(
	db *gorm.DB,
	logger logger.Interface,
) subscription.RenewalRepository {
	return &RenewalRepositoryImpl{
		db:     db,
		mapper: mappers.NewRenewalMapper(),
		logger: logger,
	}
}

func (r *RenewalRepositoryImpl) Create(ctx context.Context, renewal *subscription.Renewal) error {
	model := r.mapper.ToModel(renewal)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create renewal in database", "error", err)
		return fmt.Errorf("failed to create renewal: %w", err)
	}

	if err := renewal.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set renewal ID: %w", err)
	}

	r.logger.Infow("renewal recorded successfully",
		"id", model.ID,
		"subscription_id", model.SubscriptionID,
		"new_expiry", model.NewExpiryDate,
	)
	return nil
}

func (r *RenewalRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Renewal, error) {
	var model models.RenewalModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get renewal by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get renewal: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map renewal: %w", err)
	}

	return entity, nil
}

func (r *RenewalRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Renewal, error) {
	var modelList []*models.RenewalModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get renewals by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get renewals: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map renewals: %w", err)
	}

	return entities, nil
}

// GetLatestBySubscriptionID returns the most recent renewal for the
// subscription. Reversal uses it to verify the targeted renewal is still the
// tip of the history before unwinding it.
func (r *RenewalRepositoryImpl) GetLatestBySubscriptionID(ctx context.Context, subscriptionID uint) (*subscription.Renewal, error) {
	var model models.RenewalModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ?", subscriptionID).
		Order("id DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get latest renewal", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to get latest renewal: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map renewal: %w", err)
	}

	return entity, nil
}

func (r *RenewalRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.RenewalModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete renewal", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete renewal: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("renewal not found")
	}

	r.logger.Infow("renewal deleted successfully", "id", id)
	return nil
}

func (r *RenewalRepositoryImpl) Stats(ctx context.Context, from, to time.Time) (*subscription.RenewalStats, error) {
	var row struct {
		Count        int64
		TotalRevenue uint64
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RenewalModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_revenue").
		Where("renewal_date >= ? AND renewal_date <= ?", from, to).
		Scan(&row).Error; err != nil {
		r.logger.Errorw("failed to aggregate renewal stats", "error", err)
		return nil, fmt.Errorf("failed to aggregate renewal stats: %w", err)
	}

	stats := &subscription.RenewalStats{
		Count:        row.Count,
		TotalRevenue: row.TotalRevenue,
	}
	if row.Count > 0 {
		stats.AverageAmount = float64(row.TotalRevenue) / float64(row.Count)
	}

	return stats, nil
}
