package repositories

import (
	"context"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository interface {
	List(ctx context.Context) ([]entities.Staff, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Staff, error)
	Create(ctx context.Context, staff *entities.Staff) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db}
}

func (r *staffRepository) List(ctx context.Context) ([]entities.Staff, error) {
	var staff []entities.Staff
	if err := r.db.WithContext(ctx).Preload("Specialty").Order("nome ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Staff, error) {
	var staff entities.Staff
	if err := r.db.WithContext(ctx).Preload("Specialty").First(&staff, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &staff, nil
}

func (r *staffRepository) Create(ctx context.Context, staff *entities.Staff) error {
	return r.db.WithContext(ctx).Omit("Specialty").Create(staff).Error
}

// Update altera apenas as colunas informadas; ErrNotFound quando não há linha
func (r *staffRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return deleted(r.db.WithContext(ctx).Model(&entities.Staff{}).Where("id = ?", id).Updates(fields))
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&entities.Staff{}, "id = ?", id))
}
