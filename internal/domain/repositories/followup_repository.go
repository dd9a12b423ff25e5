package repositories

import (
	"context"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowupRepository interface {
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]entities.Followup, error)
	Create(ctx context.Context, followup *entities.Followup) error
}

type followupRepository struct {
	db *gorm.DB
}

func NewFollowupRepository(db *gorm.DB) FollowupRepository {
	return &followupRepository{db}
}

func (r *followupRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entities.Followup, error) {
	var followups []entities.Followup
	err := r.db.WithContext(ctx).
		Preload("Specialty").
		Preload("Template").
		Where("paciente_id = ?", leadID).
		Order("data_envio DESC").
		Find(&followups).Error
	if err != nil {
		return nil, err
	}
	return followups, nil
}

func (r *followupRepository) Create(ctx context.Context, followup *entities.Followup) error {
	return r.db.WithContext(ctx).Omit("Lead", "Specialty", "Template").Create(followup).Error
}

type ConversionRepository interface {
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]entities.Conversion, error)
	Create(ctx context.Context, conversion *entities.Conversion) error
}

type conversionRepository struct {
	db *gorm.DB
}

func NewConversionRepository(db *gorm.DB) ConversionRepository {
	return &conversionRepository{db}
}

func (r *conversionRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entities.Conversion, error) {
	var conversions []entities.Conversion
	err := r.db.WithContext(ctx).
		Preload("Specialty").
		Where("paciente_id = ?", leadID).
		Order("data_conversao DESC").
		Find(&conversions).Error
	if err != nil {
		return nil, err
	}
	return conversions, nil
}

func (r *conversionRepository) Create(ctx context.Context, conversion *entities.Conversion) error {
	return r.db.WithContext(ctx).Omit("Lead", "Specialty").Create(conversion).Error
}
