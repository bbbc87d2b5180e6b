package mappers

import (
	"fmt"

	"lifeline/internal/domain/violation"
	vo "lifeline/internal/domain/violation/valueobjects"
	"lifeline/internal/infrastructure/persistence/models"
)

type ViolationMapper interface {
	ToEntity(model *models.ViolationRecordModel) (*violation.Record, error)
	ToModel(entity *violation.Record) (*models.ViolationRecordModel, error)
	ToEntities(models []*models.ViolationRecordModel) ([]*violation.Record, error)
}

type ViolationMapperImpl struct{}

func NewViolationMapper() ViolationMapper {
	return &ViolationMapperImpl{}
}

func (m *ViolationMapperImpl) ToEntity(model *models.ViolationRecordModel) (*violation.Record, error) {
	if model == nil {
		return nil, nil
	}

	kind, err := vo.NewCaptureKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to parse capture kind: %w", err)
	}

	entity, err := violation.ReconstructRecord(violation.ReconstructRecordParams{
		ID:            model.ID,
		SID:           model.SID,
		SubscriberID:  model.SubscriberID,
		CreatorID:     model.CreatorID,
		ContentID:     model.ContentID,
		Kind:          kind,
		DetectedAt:    model.DetectedAt,
		WarningIssued: model.WarningIssued,
		CreatedAt:     model.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct violation record: %w", err)
	}

	return entity, nil
}

func (m *ViolationMapperImpl) ToModel(entity *violation.Record) (*models.ViolationRecordModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ViolationRecordModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		SubscriberID:  entity.SubscriberID(),
		CreatorID:     entity.CreatorID(),
		ContentID:     entity.ContentID(),
		Kind:          entity.Kind().String(),
		DetectedAt:    entity.DetectedAt(),
		WarningIssued: entity.WarningIssued(),
		CreatedAt:     entity.CreatedAt(),
	}, nil
}

func (m *ViolationMapperImpl) ToEntities(modelList []*models.ViolationRecordModel) ([]*violation.Record, error) {
	entities := make([]*violation.Record, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
