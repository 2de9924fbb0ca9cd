package usecases

import (
	"context"

	"netbill/internal/domain/subscription"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type DeleteRenewalUseCase struct {
	renewalRepo subscription.RenewalRepository
	logger      logger.Interface
}

func NewDeleteRenewalUseCase(
	renewalRepo subscription.RenewalRepository,
	logger logger.Interface,
) *DeleteRenewalUseCase {
	return &DeleteRenewalUseCase{
		renewalRepo: renewalRepo,
		logger:      logger,
	}
}

// Execute removes a renewal history row without touching the subscription.
// Use ReverseRenewal to also roll the expiry back.
func (uc *DeleteRenewalUseCase) Execute(ctx context.Context, renewalID uint) error {
	if renewalID == 0 {
		return errors.NewValidationError("renewal ID is required")
	}

	renewal, err := uc.renewalRepo.GetByID(ctx, renewalID)
	if err != nil {
		uc.logger.Errorw("failed to get renewal", "error", err, "renewal_id", renewalID)
		return errors.NewInternalError("failed to get renewal")
	}
	if renewal == nil {
		return errors.NewNotFoundError("renewal not found")
	}

	if err := uc.renewalRepo.Delete(ctx, renewalID); err != nil {
		uc.logger.Errorw("failed to delete renewal", "error", err, "renewal_id", renewalID)
		return errors.NewInternalError("failed to delete renewal")
	}

	uc.logger.Infow("renewal deleted", "renewal_id", renewalID)
	return nil
}
