package mappers

import (
	"netbill/internal/domain/subscription"
	"netbill/internal/infrastructure/persistence/models"
)

// SubscriptionMapper converts between subscription.Subscription entities and
// SubscriptionModel.
type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToModel(sub *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:         sub.ID(),
		UserID:     sub.UserID(),
		PackageID:  sub.PackageID(),
		PaymentID:  sub.PaymentID(),
		Status:     sub.Status().String(),
		StartDate:  sub.StartDate(),
		ExpiryDate: sub.ExpiryDate(),
		Version:    sub.Version(),
		CreatedAt:  sub.CreatedAt(),
		UpdatedAt:  sub.UpdatedAt(),
	}
}

func (m *SubscriptionMapper) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	return subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:         model.ID,
		UserID:     model.UserID,
		PackageID:  model.PackageID,
		PaymentID:  model.PaymentID,
		Status:     subscription.Status(model.Status),
		StartDate:  model.StartDate,
		ExpiryDate: model.ExpiryDate,
		Version:    model.Version,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	})
}

func (m *SubscriptionMapper) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
