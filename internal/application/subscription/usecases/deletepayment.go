package usecases

import (
	"context"

	"netbill/internal/domain/payment"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type DeletePaymentUseCase struct {
	paymentRepo payment.Repository
	logger      logger.Interface
}

func NewDeletePaymentUseCase(
	paymentRepo payment.Repository,
	logger logger.Interface,
) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *DeletePaymentUseCase) Execute(ctx context.Context, paymentID uint) error {
	if paymentID == 0 {
		return errors.NewValidationError("payment ID is required")
	}

	p, err := uc.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		uc.logger.Errorw("failed to get payment", "error", err, "payment_id", paymentID)
		return errors.NewInternalError("failed to get payment")
	}
	if p == nil {
		return errors.NewNotFoundError("payment not found")
	}

	if err := uc.paymentRepo.Delete(ctx, paymentID); err != nil {
		uc.logger.Errorw("failed to delete payment", "error", err, "payment_id", paymentID)
		return errors.NewInternalError("failed to delete payment")
	}

	uc.logger.Infow("payment deleted", "payment_id", paymentID)
	return nil
}
