package email

import (
	"context"

	"netbill/internal/domain/user"
	"netbill/internal/shared/logger"
)

// ReceiptNotifier resolves the user's address and sends a renewal receipt.
// Failures are logged and swallowed; a lost email never fails a renewal.
type ReceiptNotifier struct {
	userRepo user.Repository
	sender   Sender
	logger   logger.Interface
}

func NewReceiptNotifier(userRepo user.Repository, sender Sender, logger logger.Interface) *ReceiptNotifier {
	return &ReceiptNotifier{
		userRepo: userRepo,
		sender:   sender,
		logger:   logger,
	}
}

func (n *ReceiptNotifier) NotifyRenewal(ctx context.Context, userID uint, packageName string, amount uint64, newExpiry string) {
	account, err := n.userRepo.GetByID(ctx, userID)
	if err != nil || account == nil {
		n.logger.Warnw("skipping renewal receipt, user lookup failed", "user_id", userID, "error", err)
		return
	}

	data := ReceiptData{
		UserName:    account.Name(),
		PackageName: packageName,
		Amount:      amount,
		NewExpiry:   newExpiry,
	}

	if err := n.sender.SendRenewalReceipt(account.Email(), data); err != nil {
		n.logger.Warnw("failed to send renewal receipt", "user_id", userID, "error", err)
	}
}
