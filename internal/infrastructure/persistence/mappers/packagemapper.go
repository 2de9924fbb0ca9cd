package mappers

import (
	"netbill/internal/domain/catalog"
	"netbill/internal/infrastructure/persistence/models"
)

// PackageMapper converts between catalog.Package entities and PackageModel.
type PackageMapper struct{}

func NewPackageMapper() *PackageMapper {
	return &PackageMapper{}
}

func (m *PackageMapper) ToModel(pkg *catalog.Package) *models.PackageModel {
	return &models.PackageModel{
		ID:           pkg.ID(),
		Name:         pkg.Name(),
		Price:        pkg.Price(),
		ValidityDays: pkg.ValidityDays(),
		Status:       string(pkg.Status()),
		Version:      pkg.Version(),
		CreatedAt:    pkg.CreatedAt(),
		UpdatedAt:    pkg.UpdatedAt(),
	}
}

func (m *PackageMapper) ToEntity(model *models.PackageModel) (*catalog.Package, error) {
	return catalog.ReconstructPackage(
		model.ID,
		model.Name,
		model.Price,
		model.ValidityDays,
		model.Status,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *PackageMapper) ToEntities(modelList []*models.PackageModel) ([]*catalog.Package, error) {
	entities := make([]*catalog.Package, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
