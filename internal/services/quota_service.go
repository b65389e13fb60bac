package services

import (
	"errors"

	"contentflow_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotaService is the usage ledger: it decides whether a user may generate
// and charges successful generations against the monthly counter.
type QuotaService interface {
	CheckAdmission(userID uuid.UUID) error
	ConsumeQuota(tx *gorm.DB, userID uuid.UUID) error
}

// DefaultQuotaService implements QuotaService
type DefaultQuotaService struct {
	db *gorm.DB
}

// NewQuotaService creates a new DefaultQuotaService
func NewQuotaService(db *gorm.DB) QuotaService {
	return &DefaultQuotaService{db: db}
}

// CheckAdmission reports whether the user has quota left. It is a cheap
// pre-check so denied requests never reach the generator; the authoritative
// guard is the conditional update in ConsumeQuota.
func (s *DefaultQuotaService) CheckAdmission(userID uuid.UUID) error {
	var user models.User
	if err := s.db.Select("usage_limit", "monthly_usage").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !user.HasRemainingQuota() {
		return ErrQuotaExceeded
	}
	return nil
}

// ConsumeQuota charges one generation. The limit is re-checked inside the
// UPDATE itself, so two concurrent requests racing for the last slot cannot
// both be charged: the loser sees zero rows affected and gets
// ErrQuotaExceeded, rolling back its transaction.
func (s *DefaultQuotaService) ConsumeQuota(tx *gorm.DB, userID uuid.UUID) error {
	result := tx.Model(&models.User{}).
		Where("id = ? AND (usage_limit = ? OR monthly_usage < usage_limit)", userID, models.UnlimitedUsage).
		UpdateColumn("monthly_usage", gorm.Expr("monthly_usage + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuotaExceeded
	}
	return nil
}
