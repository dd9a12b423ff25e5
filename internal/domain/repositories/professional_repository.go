package repositories

import (
	"context"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	List(ctx context.Context, onlyActive bool, specialtyID *uuid.UUID) ([]entities.Professional, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Professional, error)
	Create(ctx context.Context, professional *entities.Professional) error
	Update(ctx context.Context, professional *entities.Professional) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type professionalRepository struct {
	db *gorm.DB
}

func NewProfessionalRepository(db *gorm.DB) ProfessionalRepository {
	return &professionalRepository{db}
}

func (r *professionalRepository) List(ctx context.Context, onlyActive bool, specialtyID *uuid.UUID) ([]entities.Professional, error) {
	var professionals []entities.Professional

	query := r.db.WithContext(ctx).Preload("Specialty").Order("ordem ASC, nome ASC")
	if onlyActive {
		query = query.Where("ativo = ?", true)
	}
	if specialtyID != nil {
		query = query.Where("nucleo_id = ?", *specialtyID)
	}

	if err := query.Find(&professionals).Error; err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Professional, error) {
	var professional entities.Professional
	if err := r.db.WithContext(ctx).Preload("Specialty").First(&professional, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &professional, nil
}

func (r *professionalRepository) Create(ctx context.Context, professional *entities.Professional) error {
	return r.db.WithContext(ctx).Omit("Specialty").Create(professional).Error
}

func (r *professionalRepository) Update(ctx context.Context, professional *entities.Professional) error {
	return r.db.WithContext(ctx).Omit("Specialty").Save(professional).Error
}

func (r *professionalRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return deleted(r.db.WithContext(ctx).Model(&entities.Professional{}).Where("id = ?", id).Update("ativo", active))
}

func (r *professionalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&entities.Professional{}, "id = ?", id))
}
