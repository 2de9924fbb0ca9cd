package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"netbill/internal/domain/payment"
	"netbill/internal/infrastructure/persistence/mappers"
	"netbill/internal/infrastructure/persistence/models"
	"netbill/internal/shared/db"
	"netbill/internal/shared/logger"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.PaymentMapper
	logger logger.Interface
}

func NewPaymentRepository(
	db *gorm.DB,
	logger logger.Interface,
) payment.Repository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mappers.NewPaymentMapper(),
		logger: logger,
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, paymentEntity *payment.Payment) error {
	model := r.mapper.ToModel(paymentEntity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create payment in database", "error", err)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	if err := paymentEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set payment ID: %w", err)
	}

	r.logger.Infow("payment created successfully",
		"id", model.ID,
		"user_id", model.UserID,
		"amount", model.Amount,
	)
	return nil
}

func (r *PaymentRepositoryImpl) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get payment by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map payment: %w", err)
	}

	return entity, nil
}

func (r *PaymentRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*payment.Payment, error) {
	var modelList []*models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("payment_date DESC, id DESC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get payments by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map payments: %w", err)
	}

	return entities, nil
}

func (r *PaymentRepositoryImpl) GetBySubscriptionID(ctx context.Context, subscriptionID uint) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ?", subscriptionID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get payment by subscription ID", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map payment: %w", err)
	}

	return entity, nil
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, paymentEntity *payment.Payment) error {
	model := r.mapper.ToModel(paymentEntity)

	result := db.GetTxFromContext(ctx, r.db).Model(model).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"user_id":         model.UserID,
			"package_id":      model.PackageID,
			"subscription_id": model.SubscriptionID,
			"transaction_id":  model.TransactionID,
			"amount":          model.Amount,
			"payment_method":  model.PaymentMethod,
			"payment_date":    model.PaymentDate,
			"status":          model.Status,
			"notes":           model.Notes,
			"version":         model.Version,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update payment", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}

	r.logger.Infow("payment updated successfully", "id", model.ID)
	return nil
}

// Upsert creates the payment row or, when one already exists for the same
// subscription, overwrites its billing fields in a single statement. The
// unique key on subscription_id makes the insert-or-update race-free.
func (r *PaymentRepositoryImpl) Upsert(ctx context.Context, paymentEntity *payment.Payment) error {
	model := r.mapper.ToModel(paymentEntity)

	if err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "subscription_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"transaction_id",
				"amount",
				"payment_method",
				"payment_date",
				"status",
				"notes",
				"updated_at",
			}),
		}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to upsert payment", "subscription_id", model.SubscriptionID, "error", err)
		return fmt.Errorf("failed to upsert payment: %w", err)
	}

	if paymentEntity.ID() == 0 && model.ID != 0 {
		if err := paymentEntity.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set payment ID: %w", err)
		}
	}

	r.logger.Infow("payment upserted successfully",
		"id", model.ID,
		"subscription_id", model.SubscriptionID,
	)
	return nil
}

func (r *PaymentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PaymentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete payment", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete payment: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("payment not found")
	}

	r.logger.Infow("payment deleted successfully", "id", id)
	return nil
}
