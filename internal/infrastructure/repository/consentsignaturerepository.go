package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lifeline/internal/domain/consent"
	"lifeline/internal/infrastructure/persistence/mappers"
	"lifeline/internal/infrastructure/persistence/models"
	"lifeline/internal/shared/db"
	"lifeline/internal/shared/logger"
)

type ConsentSignatureRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ConsentMapper
	logger logger.Interface
}

func NewConsentSignatureRepository(
	db *gorm.DB,
	logger logger.Interface,
) consent.SignatureRepository {
	return &ConsentSignatureRepositoryImpl{
		db:     db,
		mapper: mappers.NewConsentMapper(),
		logger: logger,
	}
}

func (r *ConsentSignatureRepositoryImpl) Create(ctx context.Context, sig *consent.Signature) error {
	model, err := r.mapper.SignatureToModel(sig)
	if err != nil {
		r.logger.Errorw("failed to map signature entity to model", "error", err)
		return fmt.Errorf("failed to map signature entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create signature in database", "error", err)
		return fmt.Errorf("failed to create signature: %w", err)
	}

	if err := sig.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set signature ID", "error", err)
		return fmt.Errorf("failed to set signature ID: %w", err)
	}

	r.logger.Infow("consent signature created", "id", model.ID, "user_id", model.UserID, "document_version", model.DocumentVersion)
	return nil
}

func (r *ConsentSignatureRepositoryImpl) GetValidByUserAndVersion(ctx context.Context, userID uint, version int) (*consent.Signature, error) {
	var model models.ConsentSignatureModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND document_version = ? AND is_valid = ?", userID, version, true).
		Order("signed_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get valid signature", "user_id", userID, "version", version, "error", err)
		return nil, fmt.Errorf("failed to get signature: %w", err)
	}

	entity, err := r.mapper.SignatureToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map signature model to entity", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to map signature: %w", err)
	}

	return entity, nil
}

func (r *ConsentSignatureRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]*consent.Signature, error) {
	var modelList []*models.ConsentSignatureModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("signed_at DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list signatures", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list signatures: %w", err)
	}

	entities, err := r.mapper.SignaturesToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map signature models to entities", "error", err)
		return nil, fmt.Errorf("failed to map signatures: %w", err)
	}

	return entities, nil
}

func (r *ConsentSignatureRepositoryImpl) UpdateRevocation(ctx context.Context, sig *consent.Signature) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ConsentSignatureModel{}).
		Where("id = ?", sig.ID()).
		Updates(map[string]interface{}{
			"is_valid":      sig.IsValid(),
			"revoked_at":    sig.RevokedAt(),
			"revoke_reason": sig.RevokeReason(),
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update signature revocation", "id", sig.ID(), "error", err)
		return fmt.Errorf("failed to update signature revocation: %w", err)
	}

	r.logger.Infow("consent signature revoked", "id", sig.ID(), "user_id", sig.UserID())
	return nil
}
