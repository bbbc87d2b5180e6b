package mappers

import (
	"fmt"

	"lifeline/internal/domain/fingerprint"
	"lifeline/internal/infrastructure/persistence/models"
)

type FingerprintMapper interface {
	ToEntity(model *models.ContentFingerprintModel) (*fingerprint.ContentFingerprint, error)
	ToModel(entity *fingerprint.ContentFingerprint) (*models.ContentFingerprintModel, error)
	ToEntities(models []*models.ContentFingerprintModel) ([]*fingerprint.ContentFingerprint, error)
}

type FingerprintMapperImpl struct{}

func NewFingerprintMapper() FingerprintMapper {
	return &FingerprintMapperImpl{}
}

func (m *FingerprintMapperImpl) ToEntity(model *models.ContentFingerprintModel) (*fingerprint.ContentFingerprint, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := fingerprint.ReconstructFingerprint(fingerprint.ReconstructFingerprintParams{
		ID:              model.ID,
		SID:             model.SID,
		ContentID:       model.ContentID,
		Hash:            model.Hash,
		AnchorReference: model.AnchorReference,
		Anchored:        model.Anchored,
		Superseded:      model.Superseded,
		RecordedAt:      model.RecordedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct fingerprint entity: %w", err)
	}

	return entity, nil
}

func (m *FingerprintMapperImpl) ToModel(entity *fingerprint.ContentFingerprint) (*models.ContentFingerprintModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ContentFingerprintModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		ContentID:       entity.ContentID(),
		Hash:            entity.Hash(),
		AnchorReference: entity.AnchorReference(),
		Anchored:        entity.Anchored(),
		Superseded:      entity.Superseded(),
		RecordedAt:      entity.RecordedAt(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *FingerprintMapperImpl) ToEntities(modelList []*models.ContentFingerprintModel) ([]*fingerprint.ContentFingerprint, error) {
	entities := make([]*fingerprint.ContentFingerprint, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
