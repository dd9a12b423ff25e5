package repositories

import (
	"context"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateRepository interface {
	List(ctx context.Context, specialtyID *uuid.UUID, onlyActive bool) ([]entities.Template, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Template, error)
	Create(ctx context.Context, template *entities.Template) error
	Update(ctx context.Context, template *entities.Template) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db}
}

func (r *templateRepository) List(ctx context.Context, specialtyID *uuid.UUID, onlyActive bool) ([]entities.Template, error) {
	var templates []entities.Template

	query := r.db.WithContext(ctx).Preload("Specialty").Order("ordem ASC, titulo ASC")
	if specialtyID != nil {
		query = query.Where("nucleo_id = ?", *specialtyID)
	}
	if onlyActive {
		query = query.Where("ativo = ?", true)
	}

	if err := query.Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Template, error) {
	var template entities.Template
	if err := r.db.WithContext(ctx).Preload("Specialty").First(&template, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &template, nil
}

func (r *templateRepository) Create(ctx context.Context, template *entities.Template) error {
	return r.db.WithContext(ctx).Omit("Specialty").Create(template).Error
}

func (r *templateRepository) Update(ctx context.Context, template *entities.Template) error {
	return r.db.WithContext(ctx).Omit("Specialty").Save(template).Error
}

func (r *templateRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return deleted(r.db.WithContext(ctx).Model(&entities.Template{}).Where("id = ?", id).Update("ativo", active))
}

func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&entities.Template{}, "id = ?", id))
}
