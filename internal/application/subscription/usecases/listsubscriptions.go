package usecases

import (
	"context"

	"netbill/internal/application/subscription/dto"
	"netbill/internal/domain/payment"
	"netbill/internal/domain/subscription"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	paymentRepo      payment.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	paymentRepo payment.Repository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		logger:           logger,
	}
}

// Execute lists all of the user's subscriptions, newest first, each with its
// linked payment when one exists.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, userID uint) ([]*dto.SubscriptionDTO, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	subs, err := uc.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get subscriptions", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to get subscriptions")
	}

	payments, err := uc.paymentRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get payments", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to get payments")
	}

	paymentsBySub := make(map[uint]*payment.Payment, len(payments))
	for _, p := range payments {
		if p.SubscriptionID() != nil {
			paymentsBySub[*p.SubscriptionID()] = p
		}
	}

	dtos := dto.ToSubscriptionDTOList(subs)
	for _, d := range dtos {
		if p, ok := paymentsBySub[d.ID]; ok {
			d.Payment = dto.ToPaymentDTO(p)
		}
	}

	return dtos, nil
}
