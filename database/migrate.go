package database

import (
	"github.com/LJMarquez/talentlink-backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates the three stores. The job model backs two tables, one per
// lifecycle stage, so it is migrated once per table name.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return err
	}
	if err := db.Table(models.CollectionPendingJobs).AutoMigrate(&models.Job{}); err != nil {
		return err
	}
	return db.Table(models.CollectionPublishedJobs).AutoMigrate(&models.Job{})
}
