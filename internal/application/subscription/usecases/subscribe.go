package usecases

import (
	"context"
	"time"

	"netbill/internal/application/subscription/dto"
	"netbill/internal/domain/catalog"
	"netbill/internal/domain/payment"
	vo "netbill/internal/domain/payment/valueobjects"
	"netbill/internal/domain/subscription"
	"netbill/internal/domain/user"
	"netbill/internal/shared/biztime"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type SubscribeCommand struct {
	UserID        uint
	PackageID     uint
	StartDate     *time.Time
	TransactionID *string
	PaymentMethod string
}

type SubscribeUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	paymentRepo      payment.Repository
	packageRepo      catalog.PackageRepository
	userRepo         user.Repository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewSubscribeUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	paymentRepo payment.Repository,
	packageRepo catalog.PackageRepository,
	userRepo user.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		packageRepo:      packageRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand) (*dto.SubscribeResultDTO, error) {
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

	targetUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to get user")
	}
	if targetUser == nil {
		return nil, errors.NewNotFoundError("user not found")
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
	if cmd.StartDate != nil {
		startDate = biztime.TruncateToDate(*cmd.StartDate)
	}
	expiryDate := pkg.ExpiryFrom(startDate)

	var newSub *subscription.Subscription
	var newPayment *payment.Payment

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Lock the user's active rows so a concurrent subscribe can't slip a
		// second active subscription past the schema guard with a deadlock.
		activeSubs, err := uc.subscriptionRepo.GetActiveByUserIDForUpdate(txCtx, cmd.UserID)
		if err != nil {
			return errors.NewInternalError("failed to get active subscriptions")
		}

		// A new enrollment supersedes whatever was running.
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

	uc.logger.Infow("user subscribed",
		"user_id", cmd.UserID,
		"package_id", cmd.PackageID,
		"subscription_id", newSub.ID(),
		"expiry_date", biztime.FormatDate(expiryDate),
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
