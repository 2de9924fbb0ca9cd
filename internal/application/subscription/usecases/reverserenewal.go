package usecases

import (
	"context"

	"netbill/internal/application/subscription/dto"
	"netbill/internal/domain/subscription"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type ReverseRenewalCommand struct {
	RenewalID uint
}

type ReverseRenewalUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	renewalRepo      subscription.RenewalRepository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewReverseRenewalUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	renewalRepo subscription.RenewalRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ReverseRenewalUseCase {
	return &ReverseRenewalUseCase{
		subscriptionRepo: subscriptionRepo,
		renewalRepo:      renewalRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute unwinds a renewal: the subscription's expiry rolls back to the
// snapshot taken before the renewal and the history row is deleted. Only the
// most recent renewal of a subscription can be reversed; anything older would
// leave later rows describing an expiry that never happened.
func (uc *ReverseRenewalUseCase) Execute(ctx context.Context, cmd ReverseRenewalCommand) (*dto.SubscriptionDTO, error) {
	if cmd.RenewalID == 0 {
		return nil, errors.NewValidationError("renewal ID is required")
	}

	var sub *subscription.Subscription

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		renewal, err := uc.renewalRepo.GetByID(txCtx, cmd.RenewalID)
		if err != nil {
			return errors.NewInternalError("failed to get renewal")
		}
		if renewal == nil {
			return errors.NewNotFoundError("renewal not found")
		}

		latest, err := uc.renewalRepo.GetLatestBySubscriptionID(txCtx, renewal.SubscriptionID())
		if err != nil {
			return errors.NewInternalError("failed to get latest renewal")
		}
		if latest == nil || latest.ID() != renewal.ID() {
			return errors.NewConflictError("only the most recent renewal can be reversed")
		}

		sub, err = uc.subscriptionRepo.GetByID(txCtx, renewal.SubscriptionID())
		if err != nil {
			return errors.NewInternalError("failed to get subscription")
		}
		if sub == nil {
			return errors.NewNotFoundError("subscription not found")
		}

		if err := sub.RollBackExpiry(renewal.OldExpiryDate()); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return errors.NewInternalError("failed to update subscription")
		}
		if err := uc.renewalRepo.Delete(txCtx, renewal.ID()); err != nil {
			return errors.NewInternalError("failed to delete renewal")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("renewal reversed",
		"renewal_id", cmd.RenewalID,
		"subscription_id", sub.ID(),
	)

	return dto.ToSubscriptionDTO(sub), nil
}
