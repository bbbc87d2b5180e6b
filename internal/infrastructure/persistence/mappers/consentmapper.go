package mappers

import (
	"fmt"

	"lifeline/internal/domain/consent"
	"lifeline/internal/infrastructure/persistence/models"
)

type ConsentMapper interface {
	DocumentToEntity(model *models.ConsentDocumentModel) (*consent.Document, error)
	DocumentToModel(entity *consent.Document) (*models.ConsentDocumentModel, error)
	SignatureToEntity(model *models.ConsentSignatureModel) (*consent.Signature, error)
	SignatureToModel(entity *consent.Signature) (*models.ConsentSignatureModel, error)
	SignaturesToEntities(models []*models.ConsentSignatureModel) ([]*consent.Signature, error)
}

type ConsentMapperImpl struct{}

func NewConsentMapper() ConsentMapper {
	return &ConsentMapperImpl{}
}

func (m *ConsentMapperImpl) DocumentToEntity(model *models.ConsentDocumentModel) (*consent.Document, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := consent.ReconstructDocument(consent.ReconstructDocumentParams{
		ID:                 model.ID,
		Version:            model.Version,
		Text:               model.Text,
		Checksum:           model.Checksum,
		MinimumReadSeconds: model.MinimumReadSeconds,
		Active:             model.Active,
		ActivatedAt:        model.ActivatedAt,
		CreatedAt:          model.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct consent document: %w", err)
	}

	return entity, nil
}

func (m *ConsentMapperImpl) DocumentToModel(entity *consent.Document) (*models.ConsentDocumentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ConsentDocumentModel{
		ID:                 entity.ID(),
		Version:            entity.Version(),
		Text:               entity.Text(),
		Checksum:           entity.Checksum(),
		MinimumReadSeconds: entity.MinimumReadSeconds(),
		Active:             entity.Active(),
		ActivatedAt:        entity.ActivatedAt(),
		CreatedAt:          entity.CreatedAt(),
	}, nil
}

func (m *ConsentMapperImpl) SignatureToEntity(model *models.ConsentSignatureModel) (*consent.Signature, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := consent.ReconstructSignature(consent.ReconstructSignatureParams{
		ID:                      model.ID,
		SID:                     model.SID,
		UserID:                  model.UserID,
		DocumentVersion:         model.DocumentVersion,
		DocumentChecksum:        model.DocumentChecksum,
		SignedAt:                model.SignedAt,
		BiometricVerified:       model.BiometricVerified,
		ScrolledToBottom:        model.ScrolledToBottom,
		TimeSpentReadingSeconds: model.TimeSpentReadingSeconds,
		IsValid:                 model.IsValid,
		RevokedAt:               model.RevokedAt,
		RevokeReason:            model.RevokeReason,
		CreatedAt:               model.CreatedAt,
		UpdatedAt:               model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct consent signature: %w", err)
	}

	return entity, nil
}

func (m *ConsentMapperImpl) SignatureToModel(entity *consent.Signature) (*models.ConsentSignatureModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ConsentSignatureModel{
		ID:                      entity.ID(),
		SID:                     entity.SID(),
		UserID:                  entity.UserID(),
		DocumentVersion:         entity.DocumentVersion(),
		DocumentChecksum:        entity.DocumentChecksum(),
		SignedAt:                entity.SignedAt(),
		BiometricVerified:       entity.BiometricVerified(),
		ScrolledToBottom:        entity.ScrolledToBottom(),
		TimeSpentReadingSeconds: entity.TimeSpentReadingSeconds(),
		IsValid:                 entity.IsValid(),
		RevokedAt:               entity.RevokedAt(),
		RevokeReason:            entity.RevokeReason(),
		CreatedAt:               entity.CreatedAt(),
		UpdatedAt:               entity.UpdatedAt(),
	}, nil
}

func (m *ConsentMapperImpl) SignaturesToEntities(modelList []*models.ConsentSignatureModel) ([]*consent.Signature, error) {
	entities := make([]*consent.Signature, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.SignatureToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
