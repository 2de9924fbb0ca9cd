package mappers

import (
	"netbill/internal/domain/payment"
	vo "netbill/internal/domain/payment/valueobjects"
	"netbill/internal/infrastructure/persistence/models"
)

// PaymentMapper converts between payment.Payment entities and PaymentModel.
type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:             p.ID(),
		UserID:         p.UserID(),
		PackageID:      p.PackageID(),
		SubscriptionID: p.SubscriptionID(),
		TransactionID:  p.TransactionID(),
		Amount:         p.Amount(),
		PaymentMethod:  string(p.PaymentMethod()),
		PaymentDate:    p.PaymentDate(),
		Status:         string(p.Status()),
		Notes:          p.Notes(),
		Version:        p.Version(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func (m *PaymentMapper) ToEntity(model *models.PaymentModel) (*payment.Payment, error) {
	return payment.ReconstructPayment(payment.PaymentReconstructParams{
		ID:             model.ID,
		UserID:         model.UserID,
		PackageID:      model.PackageID,
		SubscriptionID: model.SubscriptionID,
		TransactionID:  model.TransactionID,
		Amount:         model.Amount,
		PaymentMethod:  vo.PaymentMethod(model.PaymentMethod),
		PaymentDate:    model.PaymentDate,
		Status:         vo.PaymentStatus(model.Status),
		Notes:          model.Notes,
		Version:        model.Version,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
}

func (m *PaymentMapper) ToEntities(modelList []*models.PaymentModel) ([]*payment.Payment, error) {
	entities := make([]*payment.Payment, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
