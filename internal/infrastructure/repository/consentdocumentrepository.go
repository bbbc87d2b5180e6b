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

type ConsentDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ConsentMapper
	logger logger.Interface
}

func NewConsentDocumentRepository(
	db *gorm.DB,
	logger logger.Interface,
) consent.DocumentRepository {
	return &ConsentDocumentRepositoryImpl{
		db:     db,
		mapper: mappers.NewConsentMapper(),
		logger: logger,
	}
}

func (r *ConsentDocumentRepositoryImpl) GetActive(ctx context.Context) (*consent.Document, error) {
	var model models.ConsentDocumentModel

	if err := db.GetTxFromContext(ctx, r.db).Where("active = ?", true).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get active consent document", "error", err)
		return nil, fmt.Errorf("failed to get active consent document: %w", err)
	}

	entity, err := r.mapper.DocumentToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map consent document model to entity", "error", err)
		return nil, fmt.Errorf("failed to map consent document: %w", err)
	}

	return entity, nil
}

func (r *ConsentDocumentRepositoryImpl) GetByVersion(ctx context.Context, version int) (*consent.Document, error) {
	var model models.ConsentDocumentModel

	if err := db.GetTxFromContext(ctx, r.db).Where("version = ?", version).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get consent document by version", "version", version, "error", err)
		return nil, fmt.Errorf("failed to get consent document: %w", err)
	}

	entity, err := r.mapper.DocumentToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map consent document model to entity", "version", version, "error", err)
		return nil, fmt.Errorf("failed to map consent document: %w", err)
	}

	return entity, nil
}

func (r *ConsentDocumentRepositoryImpl) CreateAndActivate(ctx context.Context, doc *consent.Document) error {
	model, err := r.mapper.DocumentToModel(doc)
	if err != nil {
		r.logger.Errorw("failed to map consent document entity to model", "error", err)
		return fmt.Errorf("failed to map consent document entity: %w", err)
	}

	err = db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.ConsentDocumentModel{}).
			Where("active = ?", true).
			Update("active", false).Error
		if err != nil {
			return fmt.Errorf("failed to deactivate previous document: %w", err)
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create consent document: %w", err)
		}

		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to activate consent document", "version", doc.Version(), "error", err)
		return err
	}

	if err := doc.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set consent document ID", "error", err)
		return fmt.Errorf("failed to set consent document ID: %w", err)
	}

	r.logger.Infow("consent document activated", "id", model.ID, "version", model.Version)
	return nil
}
