package services

import (
	"contentflow_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentHistoryPage is one page of a user's generation history.
type ContentHistoryPage struct {
	Contents []models.Content `json:"contents"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
}

// HistoryService reads the append-only generation log.
type HistoryService interface {
	GetContentHistory(userID uuid.UUID, page, perPage int, contentType string) (*ContentHistoryPage, error)
}

// DefaultHistoryService implements HistoryService
type DefaultHistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a new DefaultHistoryService
func NewHistoryService(db *gorm.DB) HistoryService {
	return &DefaultHistoryService{db: db}
}

// GetContentHistory returns one newest-first page of the user's generations,
// optionally filtered by content type.
func (s *DefaultHistoryService) GetContentHistory(userID uuid.UUID, page, perPage int, contentType string) (*ContentHistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	query := s.db.Model(&models.Content{}).Where("user_id = ?", userID)
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var contents []models.Content
	err := query.
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&contents).Error
	if err != nil {
		return nil, err
	}

	return &ContentHistoryPage{
		Contents: contents,
		Total:    total,
		Page:     page,
		Pages:    int((total + int64(perPage) - 1) / int64(perPage)),
	}, nil
}
