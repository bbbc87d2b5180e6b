package mappers

import (
	"fmt"

	"lifeline/internal/domain/watermark"
	vo "lifeline/internal/domain/watermark/valueobjects"
	"lifeline/internal/infrastructure/persistence/models"
)

type WatermarkMapper interface {
	ToEntity(model *models.WatermarkIssuanceModel) (*watermark.Issuance, error)
	ToModel(entity *watermark.Issuance) (*models.WatermarkIssuanceModel, error)
	ToEntities(models []*models.WatermarkIssuanceModel) ([]*watermark.Issuance, error)
}

type WatermarkMapperImpl struct{}

func NewWatermarkMapper() WatermarkMapper {
	return &WatermarkMapperImpl{}
}

func (m *WatermarkMapperImpl) ToEntity(model *models.WatermarkIssuanceModel) (*watermark.Issuance, error) {
	if model == nil {
		return nil, nil
	}

	kind, err := vo.NewKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to parse watermark kind: %w", err)
	}

	entity, err := watermark.ReconstructIssuance(watermark.ReconstructIssuanceParams{
		ID:         model.ID,
		SID:        model.SID,
		UUID:       model.UUID,
		ContentID:  model.ContentID,
		ViewerID:   model.ViewerID,
		EmbedToken: model.EmbedToken,
		Kind:       kind,
		IssuedAt:   model.IssuedAt,
		CreatedAt:  model.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct issuance entity: %w", err)
	}

	return entity, nil
}

func (m *WatermarkMapperImpl) ToModel(entity *watermark.Issuance) (*models.WatermarkIssuanceModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.WatermarkIssuanceModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		UUID:       entity.UUID(),
		ContentID:  entity.ContentID(),
		ViewerID:   entity.ViewerID(),
		EmbedToken: entity.EmbedToken(),
		Kind:       entity.Kind().String(),
		IssuedAt:   entity.IssuedAt(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}

func (m *WatermarkMapperImpl) ToEntities(modelList []*models.WatermarkIssuanceModel) ([]*watermark.Issuance, error) {
	entities := make([]*watermark.Issuance, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
