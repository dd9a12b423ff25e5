package repositories

import (
	"context"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/cache"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActiveFormTTL é o tempo que o totem reaproveita perguntas e núcleos ativos
const ActiveFormTTL = time.Minute

type SpecialtyRepository interface {
	List(ctx context.Context, onlyActive bool) ([]entities.Specialty, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Specialty, error)
	Create(ctx context.Context, specialty *entities.Specialty) error
	Update(ctx context.Context, specialty *entities.Specialty) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type specialtyRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewSpecialtyRepository(db *gorm.DB, cache *cache.Cache) SpecialtyRepository {
	return &specialtyRepository{db: db, cache: cache}
}

func (r *specialtyRepository) List(ctx context.Context, onlyActive bool) ([]entities.Specialty, error) {
	if onlyActive {
		if cached, found := r.cache.Get(cacheKeyActiveSpecialties); found {
			return cached.([]entities.Specialty), nil
		}
	}

	var specialties []entities.Specialty
	query := r.db.WithContext(ctx).Order("ordem ASC, nome ASC")
	if onlyActive {
		query = query.Where("ativo = ?", true)
	}
	if err := query.Find(&specialties).Error; err != nil {
		return nil, err
	}

	if onlyActive {
		r.cache.Set(cacheKeyActiveSpecialties, specialties, ActiveFormTTL)
	}
	return specialties, nil
}

func (r *specialtyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Specialty, error) {
	var specialty entities.Specialty
	if err := r.db.WithContext(ctx).First(&specialty, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &specialty, nil
}

func (r *specialtyRepository) Create(ctx context.Context, specialty *entities.Specialty) error {
	defer r.invalidate()
	return r.db.WithContext(ctx).Create(specialty).Error
}

func (r *specialtyRepository) Update(ctx context.Context, specialty *entities.Specialty) error {
	defer r.invalidate()
	return r.db.WithContext(ctx).Save(specialty).Error
}

// Delete remove o núcleo; as referências em outras tabelas viram NULL
func (r *specialtyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.invalidate()
	return deleted(r.db.WithContext(ctx).Delete(&entities.Specialty{}, "id = ?", id))
}

// As perguntas em cache carregam o núcleo, então também são descartadas
func (r *specialtyRepository) invalidate() {
	r.cache.Delete(cacheKeyActiveSpecialties)
	r.cache.Delete(cacheKeyActiveQuestions)
}
