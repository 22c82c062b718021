package services

import (
	"time"

	"api/metrics"
	"api/models"

	"gorm.io/gorm"
)

// GetRanking fills participants with all entries ordered by likes descending.
// Created-at descending is the stable tie-break so new entries with equal
// likes appear in a deterministic order.
func GetRanking(db *gorm.DB, participants *[]models.Participant) error {
	start := time.Now()
	defer metrics.RecordDBOperation("select", "participants", start)

	return db.Order("likes DESC").Order("created_at DESC").Find(participants).Error
}

// GetActiveGuidelines fills guidelines with the publicly visible set in
// display order
func GetActiveGuidelines(db *gorm.DB, guidelines *[]models.Guideline) error {
	start := time.Now()
	defer metrics.RecordDBOperation("select", "guidelines", start)

	return db.Where("is_active = ?", true).Order("display_order ASC").Find(guidelines).Error
}
