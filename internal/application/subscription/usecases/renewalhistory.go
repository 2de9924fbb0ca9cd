package usecases

import (
	"context"

	"netbill/internal/application/subscription/dto"
	"netbill/internal/domain/subscription"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type RenewalHistoryUseCase struct {
	renewalRepo subscription.RenewalRepository
	logger      logger.Interface
}

func NewRenewalHistoryUseCase(
	renewalRepo subscription.RenewalRepository,
	logger logger.Interface,
) *RenewalHistoryUseCase {
	return &RenewalHistoryUseCase{
		renewalRepo: renewalRepo,
		logger:      logger,
	}
}

// Execute returns the user's renewal rows, newest first.
func (uc *RenewalHistoryUseCase) Execute(ctx context.Context, userID uint) ([]*dto.RenewalDTO, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	renewals, err := uc.renewalRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get renewal history", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to get renewal history")
	}

	return dto.ToRenewalDTOList(renewals), nil
}
