package service

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/gpavan11/snap-chef/internal/models"
	"github.com/gpavan11/snap-chef/internal/types"
)

// HistoryService persists detection results. Writes are best-effort: a
// storage failure is logged and never fails the detection request. A nil
// DB disables history entirely.
type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a new HistoryService instance.
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Enabled reports whether history persistence is configured.
func (s *HistoryService) Enabled() bool {
	return s != nil && s.db != nil
}

// Record stores one detection.
func (s *HistoryService) Record(ctx context.Context, detection types.DetectionResult, source, imageURL string) {
	if !s.Enabled() {
		return
	}
	entry := models.Detection{
		Name:       detection.Name,
		Category:   detection.Category,
		Confidence: detection.Confidence,
		Source:     source,
		ImageURL:   imageURL,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[HistoryService] failed to record detection: %v", err)
	}
}

// Recent returns the latest detections, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]models.Detection, error) {
	if !s.Enabled() {
		return []models.Detection{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var entries []models.Detection
	err := s.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&entries).Error
	return entries, err
}
