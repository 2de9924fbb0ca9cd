package usecases

import (
	"context"

	"netbill/internal/application/subscription/dto"
	"netbill/internal/domain/catalog"
	"netbill/internal/domain/subscription"
	"netbill/internal/shared/biztime"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type RenewCommand struct {
	UserID uint
}

type RenewUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	renewalRepo      subscription.RenewalRepository
	packageRepo      catalog.PackageRepository
	txManager        TransactionManager
	notifier         ReceiptNotifier
	logger           logger.Interface
}

func NewRenewUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	renewalRepo subscription.RenewalRepository,
	packageRepo catalog.PackageRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *RenewUseCase {
	return &RenewUseCase{
		subscriptionRepo: subscriptionRepo,
		renewalRepo:      renewalRepo,
		packageRepo:      packageRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// SetReceiptNotifier sets the receipt notifier (optional).
func (uc *RenewUseCase) SetReceiptNotifier(notifier ReceiptNotifier) {
	uc.notifier = notifier
}

func (uc *RenewUseCase) Execute(ctx context.Context, cmd RenewCommand) (*dto.RenewalDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	var renewal *subscription.Renewal
	var pkg *catalog.Package

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subscriptionRepo.GetLatestByUserID(txCtx, cmd.UserID)
		if err != nil {
			return errors.NewInternalError("failed to get subscription")
		}
		if sub == nil {
			return errors.NewNotFoundError("no subscription found for user")
		}
		if sub.PackageID() == 0 {
			return errors.NewBadRequestError("subscription has no package assigned")
		}

		pkg, err = uc.packageRepo.GetByID(txCtx, sub.PackageID())
		if err != nil {
			return errors.NewInternalError("failed to get package")
		}
		if pkg == nil {
			return errors.NewBadRequestError("subscription has no package assigned")
		}

		// A renewal always compounds on the recorded expiry, even when the
		// subscription lapsed. A user renewing late pays for the gap.
		oldExpiry := sub.ExpiryDate()
		newExpiry := biztime.AddDays(oldExpiry, pkg.ValidityDays())

		oldAmount := pkg.Price()
		latest, err := uc.renewalRepo.GetLatestBySubscriptionID(txCtx, sub.ID())
		if err != nil {
			return errors.NewInternalError("failed to get renewal history")
		}
		if latest != nil {
			oldAmount = latest.Amount()
		}

		renewal, err = subscription.NewRenewal(subscription.RenewalParams{
			SubscriptionID: sub.ID(),
			UserID:         sub.UserID(),
			PackageID:      sub.PackageID(),
			OldPackageID:   sub.PackageID(),
			Amount:         pkg.Price(),
			OldAmount:      oldAmount,
			OldExpiryDate:  oldExpiry,
			NewExpiryDate:  newExpiry,
		})
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := sub.Renew(newExpiry); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return errors.NewInternalError("failed to update subscription")
		}
		if err := uc.renewalRepo.Create(txCtx, renewal); err != nil {
			return errors.NewInternalError("failed to record renewal")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription renewed",
		"user_id", cmd.UserID,
		"subscription_id", renewal.SubscriptionID(),
		"new_expiry", biztime.FormatDate(renewal.NewExpiryDate()),
	)

	if uc.notifier != nil {
		uc.notifier.NotifyRenewal(ctx, cmd.UserID, pkg.Name(), renewal.Amount(),
			biztime.FormatDate(renewal.NewExpiryDate()))
	}

	return dto.ToRenewalDTO(renewal), nil
}
