package usecases

import (
	"context"
	"time"

	"netbill/internal/application/subscription/dto"
	"netbill/internal/domain/catalog"
	"netbill/internal/domain/payment"
	vo "netbill/internal/domain/payment/valueobjects"
	"netbill/internal/domain/subscription"
	"netbill/internal/shared/biztime"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

// PaymentDetails carries the billing fields for the atomic payment upsert.
type PaymentDetails struct {
	Amount        uint64
	PaymentMethod string
	TransactionID *string
	PaymentDate   *time.Time
	Status        string
	Notes         *string
}

type UpdateSubscriptionCommand struct {
	SubscriptionID uint
	PackageID      *uint
	StartDate      *time.Time
	Payment        *PaymentDetails
}

type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	paymentRepo      payment.Repository
	packageRepo      catalog.PackageRepository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	paymentRepo payment.Repository,
	packageRepo catalog.PackageRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		packageRepo:      packageRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute applies an administrative edit. Changing the package or start date
// recomputes the expiry from the package validity. Payment details are
// upserted keyed by subscription so the edit never produces a second payment
// row for the same subscription.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	if cmd.SubscriptionID == 0 {
		return nil, errors.NewValidationError("subscription ID is required")
	}

	var sub *subscription.Subscription

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		sub, err = uc.subscriptionRepo.GetByID(txCtx, cmd.SubscriptionID)
		if err != nil {
			return errors.NewInternalError("failed to get subscription")
		}
		if sub == nil {
			return errors.NewNotFoundError("subscription not found")
		}

		if cmd.PackageID != nil || cmd.StartDate != nil {
			packageID := sub.PackageID()
			if cmd.PackageID != nil {
				packageID = *cmd.PackageID
			}

			pkg, err := uc.packageRepo.GetByID(txCtx, packageID)
			if err != nil {
				return errors.NewInternalError("failed to get package")
			}
			if pkg == nil {
				return errors.NewNotFoundError("package not found")
			}

			startDate := sub.StartDate()
			if cmd.StartDate != nil {
				startDate = biztime.TruncateToDate(*cmd.StartDate)
			}
			expiryDate := pkg.ExpiryFrom(startDate)

			if err := sub.ChangePackage(packageID, startDate, expiryDate); err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
				return errors.NewInternalError("failed to update subscription")
			}
		}

		if cmd.Payment != nil {
			if err := uc.upsertPayment(txCtx, sub, cmd.Payment); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription updated", "subscription_id", cmd.SubscriptionID)

	return dto.ToSubscriptionDTO(sub), nil
}

func (uc *UpdateSubscriptionUseCase) upsertPayment(ctx context.Context, sub *subscription.Subscription, details *PaymentDetails) error {
	method := vo.PaymentMethod(details.PaymentMethod)
	if details.PaymentMethod == "" {
		method = vo.PaymentMethodCash
	}
	if !method.IsValid() {
		return errors.NewValidationError("invalid payment method")
	}

	status := vo.PaymentStatus(details.Status)
	if details.Status == "" {
		status = vo.PaymentStatusUnpaid
	}
	if !status.IsValid() {
		return errors.NewValidationError("invalid payment status")
	}

	paymentDate := biztime.Today()
	if details.PaymentDate != nil {
		paymentDate = biztime.TruncateToDate(*details.PaymentDate)
	}

	existing, err := uc.paymentRepo.GetBySubscriptionID(ctx, sub.ID())
	if err != nil {
		return errors.NewInternalError("failed to get payment")
	}

	if existing != nil {
		if err := existing.UpdateDetails(details.Amount, method, details.TransactionID,
			paymentDate, status, details.Notes); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.paymentRepo.Upsert(ctx, existing); err != nil {
			return errors.NewInternalError("failed to upsert payment")
		}
		return nil
	}

	newPayment, err := payment.NewPayment(sub.UserID(), sub.PackageID(), sub.ID(), details.Amount, method)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := newPayment.UpdateDetails(details.Amount, method, details.TransactionID,
		paymentDate, status, details.Notes); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.paymentRepo.Upsert(ctx, newPayment); err != nil {
		return errors.NewInternalError("failed to upsert payment")
	}

	if err := sub.AttachPayment(newPayment.ID()); err != nil {
		return errors.NewInternalError("failed to link payment")
	}
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return errors.NewInternalError("failed to link payment")
	}

	return nil
}
