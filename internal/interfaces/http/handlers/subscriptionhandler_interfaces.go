package handlers

import (
	"context"

	"netbill/internal/application/subscription/dto"
	"netbill/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type subscribeUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubscribeCommand) (*dto.SubscribeResultDTO, error)
}

type renewUseCase interface {
	Execute(ctx context.Context, cmd usecases.RenewCommand) (*dto.RenewalDTO, error)
}

type upgradeUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpgradeCommand) (*dto.SubscribeResultDTO, error)
}

type reverseRenewalUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReverseRenewalCommand) (*dto.SubscriptionDTO, error)
}

type updateSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error)
}

type deleteSubscriptionUseCase interface {
	Execute(ctx context.Context, subscriptionID uint) error
}

type listSubscriptionsUseCase interface {
	Execute(ctx context.Context, userID uint) ([]*dto.SubscriptionDTO, error)
}

type renewalHistoryUseCase interface {
	Execute(ctx context.Context, userID uint) ([]*dto.RenewalDTO, error)
}

type deleteRenewalUseCase interface {
	Execute(ctx context.Context, renewalID uint) error
}

type deletePaymentUseCase interface {
	Execute(ctx context.Context, paymentID uint) error
}

type renewalStatsUseCase interface {
	Execute(ctx context.Context, query usecases.RenewalStatsQuery) (*dto.RenewalStatsDTO, error)
}
