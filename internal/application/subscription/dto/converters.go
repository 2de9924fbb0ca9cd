package dto

import (
	"netbill/internal/domain/payment"
	"netbill/internal/domain/subscription"
	"netbill/internal/shared/biztime"
)

// ToSubscriptionDTO converts a subscription entity to its presentation shape.
func ToSubscriptionDTO(sub *subscription.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}

	return &SubscriptionDTO{
		ID:         sub.ID(),
		UserID:     sub.UserID(),
		PackageID:  sub.PackageID(),
		PaymentID:  sub.PaymentID(),
		Status:     sub.Status().String(),
		StartDate:  biztime.FormatDate(sub.StartDate()),
		ExpiryDate: biztime.FormatDate(sub.ExpiryDate()),
		CreatedAt:  sub.CreatedAt().Format("2006-01-02 15:04:05"),
		UpdatedAt:  sub.UpdatedAt().Format("2006-01-02 15:04:05"),
	}
}

// ToSubscriptionDTOList batch converts subscription entities.
func ToSubscriptionDTOList(subs []*subscription.Subscription) []*SubscriptionDTO {
	dtos := make([]*SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		if sub != nil {
			dtos = append(dtos, ToSubscriptionDTO(sub))
		}
	}
	return dtos
}

// ToPaymentDTO converts a payment entity to its presentation shape.
func ToPaymentDTO(p *payment.Payment) *PaymentDTO {
	if p == nil {
		return nil
	}

	return &PaymentDTO{
		ID:             p.ID(),
		UserID:         p.UserID(),
		PackageID:      p.PackageID(),
		SubscriptionID: p.SubscriptionID(),
		TransactionID:  p.TransactionID(),
		Amount:         p.Amount(),
		PaymentMethod:  string(p.PaymentMethod()),
		PaymentDate:    biztime.FormatDate(p.PaymentDate()),
		Status:         string(p.Status()),
		Notes:          p.Notes(),
	}
}

// ToRenewalDTO converts a renewal entity to its presentation shape.
func ToRenewalDTO(r *subscription.Renewal) *RenewalDTO {
	if r == nil {
		return nil
	}

	return &RenewalDTO{
		ID:             r.ID(),
		SubscriptionID: r.SubscriptionID(),
		UserID:         r.UserID(),
		PackageID:      r.PackageID(),
		OldPackageID:   r.OldPackageID(),
		Amount:         r.Amount(),
		OldAmount:      r.OldAmount(),
		OldExpiryDate:  biztime.FormatDate(r.OldExpiryDate()),
		NewExpiryDate:  biztime.FormatDate(r.NewExpiryDate()),
		RenewalDate:    biztime.FormatDate(r.RenewalDate()),
	}
}

// ToRenewalDTOList batch converts renewal entities.
func ToRenewalDTOList(renewals []*subscription.Renewal) []*RenewalDTO {
	dtos := make([]*RenewalDTO, 0, len(renewals))
	for _, r := range renewals {
		if r != nil {
			dtos = append(dtos, ToRenewalDTO(r))
		}
	}
	return dtos
}
