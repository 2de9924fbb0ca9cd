package mappers

import (
	"netbill/internal/domain/subscription"
	"netbill/internal/infrastructure/persistence/models"
)

// RenewalMapper converts between subscription.Renewal entities and RenewalModel.
type RenewalMapper struct{}

func NewRenewalMapper() *RenewalMapper {
	return &RenewalMapper{}
}

func (m *RenewalMapper) ToModel(r *subscription.Renewal) *models.RenewalModel {
	return &models.RenewalModel{
		ID:             r.ID(),
		SubscriptionID: r.SubscriptionID(),
		UserID:         r.UserID(),
		PackageID:      r.PackageID(),
		OldPackageID:   r.OldPackageID(),
		Amount:         r.Amount(),
		OldAmount:      r.OldAmount(),
		OldExpiryDate:  r.OldExpiryDate(),
		NewExpiryDate:  r.NewExpiryDate(),
		RenewalDate:    r.RenewalDate(),
		CreatedAt:      r.CreatedAt(),
	}
}

func (m *RenewalMapper) ToEntity(model *models.RenewalModel) (*subscription.Renewal, error) {
	return subscription.ReconstructRenewal(
		model.ID,
		subscription.RenewalParams{
			SubscriptionID: model.SubscriptionID,
			UserID:         model.UserID,
			PackageID:      model.PackageID,
			OldPackageID:   model.OldPackageID,
			Amount:         model.Amount,
			OldAmount:      model.OldAmount,
			OldExpiryDate:  model.OldExpiryDate,
			NewExpiryDate:  model.NewExpiryDate,
		},
		model.RenewalDate,
		model.CreatedAt,
	)
}

func (m *RenewalMapper) ToEntities(modelList []*models.RenewalModel) ([]*subscription.Renewal, error) {
	entities := make([]*subscription.Renewal, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
