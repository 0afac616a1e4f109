package services

import (
	"fmt"
	"time"

	"wrist_surgery_app_go/models"

	"gorm.io/gorm"
)

// RecordLead inserts a delivery log entry
func RecordLead(dbConn *gorm.DB, lead *models.Lead) error {
	if dbConn == nil {
		return fmt.Errorf("database not initialized")
	}
	if err := dbConn.Create(lead).Error; err != nil {
		return fmt.Errorf("failed to record lead: %w", err)
	}
	return nil
}

// SetLeadArchiveKey stores where the JSON copy of a lead lives
func SetLeadArchiveKey(dbConn *gorm.DB, leadID, key string) error {
	return dbConn.Model(&models.Lead{}).Where("id = ?", leadID).Update("archive_key", key).Error
}

// ListLeads returns leads created in [from, to), newest first. Zero bounds
// are open.
func ListLeads(dbConn *gorm.DB, from, to time.Time) ([]models.Lead, error) {
	query := dbConn.Model(&models.Lead{})
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("created_at < ?", to)
	}

	var leads []models.Lead
	if err := query.Order("created_at desc").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}
