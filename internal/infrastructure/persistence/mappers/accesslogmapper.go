package mappers

import (
	"fmt"

	"lifeline/internal/domain/protection"
	"lifeline/internal/infrastructure/persistence/models"
)

type AccessLogMapper interface {
	ToEntity(model *models.AccessLogModel) (*protection.AccessEntry, error)
	ToModel(entity *protection.AccessEntry) (*models.AccessLogModel, error)
	ToEntities(models []*models.AccessLogModel) ([]*protection.AccessEntry, error)
}

type AccessLogMapperImpl struct{}

func NewAccessLogMapper() AccessLogMapper {
	return &AccessLogMapperImpl{}
}

func (m *AccessLogMapperImpl) ToEntity(model *models.AccessLogModel) (*protection.AccessEntry, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := protection.ReconstructAccessEntry(protection.ReconstructAccessEntryParams{
		ID:           model.ID,
		SID:          model.SID,
		UserID:       model.UserID,
		ContentID:    model.ContentID,
		WatermarkSID: model.WatermarkSID,
		GrantedAt:    model.GrantedAt,
		CreatedAt:    model.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct access entry: %w", err)
	}

	return entity, nil
}

func (m *AccessLogMapperImpl) ToModel(entity *protection.AccessEntry) (*models.AccessLogModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AccessLogModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		UserID:       entity.UserID(),
		ContentID:    entity.ContentID(),
		WatermarkSID: entity.WatermarkSID(),
		GrantedAt:    entity.GrantedAt(),
		CreatedAt:    entity.CreatedAt(),
	}, nil
}

func (m *AccessLogMapperImpl) ToEntities(modelList []*models.AccessLogModel) ([]*protection.AccessEntry, error) {
	entities := make([]*protection.AccessEntry, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
