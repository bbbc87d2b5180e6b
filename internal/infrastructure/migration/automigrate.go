package migration

import (
	"fmt"

	"gorm.io/gorm"

	"lifeline/internal/infrastructure/persistence/models"
	"lifeline/internal/shared/logger"
)

// AutoMigrateModels returns the full set of persistence models in dependency
// order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ContentFingerprintModel{},
		&models.WatermarkIssuanceModel{},
		&models.ViolationRecordModel{},
		&models.ViolationCounterModel{},
		&models.ConsentDocumentModel{},
		&models.ConsentSignatureModel{},
		&models.AccessLogModel{},
	}
}

// Run applies gorm auto-migration for all persistence models.
func Run(db *gorm.DB, log logger.Interface) error {
	log.Infow("running database auto-migration")
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	log.Infow("database auto-migration completed")
	return nil
}
