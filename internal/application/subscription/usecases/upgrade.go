package usecases

import (
	"context"

	"netbill/internal/application/subscription/dto"
	"netbill/internal/domain/catalog"
	"netbill/internal/domain/payment"
	vo "netbill/internal/domain/payment/valueobjects"
	"netbill/internal/domain/subscription"
	"netbill/internal/shared/biztime"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type UpgradeCommand struct {
	UserID        uint
	PackageID     uint
	TransactionID *string
	PaymentMethod string
}

type UpgradeUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	paymentRepo      payment.Repository
	packageRepo      catalog.PackageRepository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewUpgradeUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	paymentRepo payment.Repository,
	packageRepo catalog.PackageRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpgradeUseCase {
	return &UpgradeUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		packageRepo:      packageRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute switches the user to a new package with a clean slate: every active
// subscription is expired and a fresh one starts today at the new package's
// full price. Remaining days on the old package are not prorated.
func (uc *UpgradeUseCase) Execute(ctx context.Context, cmd UpgradeCommand) (*dto.SubscribeResultDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.PackageID == 0 {
		return nil, errors.NewValidationError("package ID is required")
	}

	method := vo.PaymentMethod(cmd.PaymentMethod)
	if cmd.PaymentMethod == "" {
		method = vo.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, errors.NewValidationError("invalid payment method")
	}

	pkg, err := uc.packageRepo.GetByID(ctx, cmd.PackageID)
	if err != nil {
		uc.logger.Errorw("failed to get package", "error", err, "package_id", cmd.PackageID)
		return nil, errors.NewInternalError("failed to get package")
	}
	if pkg == nil {
		return nil, errors.NewNotFoundError("package not found")
	}
	if !pkg.IsActive() {
		return nil, errors.NewBadRequestError("package is not active")
	}

	startDate := biztime.Today()
	expiryDate := pkg.ExpiryFrom(startDate)

	var newSub *subscription.Subscription
	var newPayment *payment.Payment

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		activeSubs, err := uc.subscriptionRepo.GetActiveByUserIDForUpdate(txCtx, cmd.UserID)
		if err != nil {
			return errors.NewInternalError("failed to get active subscriptions")
		}
		if len(activeSubs) == 0 {
			return errors.NewNotFoundError("no active subscription to upgrade")
		}

		for _, active := range activeSubs {
			if active.PackageID() == cmd.PackageID {
				return errors.NewBadRequestError("user is already on this package")
			}
		}

		for _, active := range activeSubs {
			if err := active.MarkAsExpired(); err != nil {
				return errors.NewInternalError("failed to expire previous subscription")
			}
			if err := uc.subscriptionRepo.Update(txCtx, active); err != nil {
				return errors.NewInternalError("failed to expire previous subscription")
			}
		}

		newSub, err = subscription.NewSubscription(cmd.UserID, cmd.PackageID, startDate, expiryDate)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.subscriptionRepo.Create(txCtx, newSub); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("user already has an active subscription")
			}
			return errors.NewInternalError("failed to create subscription")
		}

		newPayment, err = payment.NewPayment(cmd.UserID, cmd.PackageID, newSub.ID(), pkg.Price(), method)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if cmd.TransactionID != nil {
			newPayment.SetTransactionID(*cmd.TransactionID)
		}
		if err := uc.paymentRepo.Create(txCtx, newPayment); err != nil {
			return errors.NewInternalError("failed to create payment")
		}

		if err := newSub.AttachPayment(newPayment.ID()); err != nil {
			return errors.NewInternalError("failed to link payment")
		}
		if err := uc.subscriptionRepo.Update(txCtx, newSub); err != nil {
			return errors.NewInternalError("failed to link payment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription upgraded",
		"user_id", cmd.UserID,
		"package_id", cmd.PackageID,
		"subscription_id", newSub.ID(),
	)

	result := &dto.SubscribeResultDTO{
		Subscription: dto.ToSubscriptionDTO(newSub),
		PackageName:  pkg.Name(),
		Price:        pkg.Price(),
		ValidityDays: pkg.ValidityDays(),
		ExpiryDate:   biztime.FormatDate(expiryDate),
	}
	result.Subscription.Payment = dto.ToPaymentDTO(newPayment)

	return result, nil
}
