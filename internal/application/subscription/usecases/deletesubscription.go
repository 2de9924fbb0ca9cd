package usecases

import (
	"context"

	"netbill/internal/domain/subscription"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type DeleteSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewDeleteSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute hard-deletes the subscription. Schema foreign keys cascade the
// renewal history and null out the payment link.
func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, subscriptionID uint) error {
	if subscriptionID == 0 {
		return errors.NewValidationError("subscription ID is required")
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", subscriptionID)
		return errors.NewInternalError("failed to get subscription")
	}
	if sub == nil {
		return errors.NewNotFoundError("subscription not found")
	}

	if err := uc.subscriptionRepo.Delete(ctx, subscriptionID); err != nil {
		uc.logger.Errorw("failed to delete subscription", "error", err, "subscription_id", subscriptionID)
		return errors.NewInternalError("failed to delete subscription")
	}

	uc.logger.Infow("subscription deleted", "subscription_id", subscriptionID)
	return nil
}
