package services

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"contentflow_go_backend/internal/models"
)

// ContentService orchestrates one generation request: admission, rendering,
// history persistence and quota charging.
type ContentService interface {
	GenerateContent(userID uuid.UUID, req GenerationRequest) (Artifact, error)
}

// DefaultContentService implements ContentService
type DefaultContentService struct {
	db        *gorm.DB
	generator GeneratorService
	quota     QuotaService
}

// NewContentService creates a new DefaultContentService
func NewContentService(db *gorm.DB, generator GeneratorService, quota QuotaService) ContentService {
	return &DefaultContentService{db: db, generator: generator, quota: quota}
}

// GenerateContent runs the request to completion or fails with no side
// effects. The history insert and the usage increment share one transaction:
// a failure in either leaves neither.
func (s *DefaultContentService) GenerateContent(userID uuid.UUID, req GenerationRequest) (Artifact, error) {
	if err := s.quota.CheckAdmission(userID); err != nil {
		return Artifact{}, err
	}

	artifact := s.generator.Generate(req)

	encoded, err := artifact.Encode()
	if err != nil {
		return Artifact{}, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		record := models.Content{
			UserID:        userID,
			ContentType:   string(req.Type),
			Prompt:        req.Prompt,
			GeneratedText: encoded,
			Platform:      req.Platform,
			Tone:          req.Tone,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return s.quota.ConsumeQuota(tx, userID)
	})
	if err != nil {
		if err != ErrQuotaExceeded {
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to persist generation")
		}
		return Artifact{}, err
	}

	return artifact, nil
}
