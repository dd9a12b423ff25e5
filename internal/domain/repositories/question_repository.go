package repositories

import (
	"context"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/cache"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	List(ctx context.Context, onlyActive bool) ([]entities.Question, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Question, error)
	Create(ctx context.Context, question *entities.Question) error
	Update(ctx context.Context, question *entities.Question) error
	ReplaceOptions(ctx context.Context, questionID uuid.UUID, options []entities.Option) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type questionRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewQuestionRepository(db *gorm.DB, cache *cache.Cache) QuestionRepository {
	return &questionRepository{db: db, cache: cache}
}

func (r *questionRepository) List(ctx context.Context, onlyActive bool) ([]entities.Question, error) {
	if onlyActive {
		if cached, found := r.cache.Get(cacheKeyActiveQuestions); found {
			return cached.([]entities.Question), nil
		}
	}

	var questions []entities.Question
	query := r.db.WithContext(ctx).
		Preload("Specialty").
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			if onlyActive {
				db = db.Where("ativo = ?", true)
			}
			return db.Order("ordem ASC")
		}).
		Order("ordem ASC, created_at ASC")
	if onlyActive {
		query = query.Where("ativo = ?", true)
	}

	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}

	if onlyActive {
		r.cache.Set(cacheKeyActiveQuestions, questions, ActiveFormTTL)
	}
	return questions, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Question, error) {
	var question entities.Question
	err := r.db.WithContext(ctx).
		Preload("Specialty").
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("ordem ASC") }).
		First(&question, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

// Create grava a pergunta e as opções já normalizadas
func (r *questionRepository) Create(ctx context.Context, question *entities.Question) error {
	defer r.cache.Delete(cacheKeyActiveQuestions)
	return r.db.WithContext(ctx).Omit("Specialty").Create(question).Error
}

func (r *questionRepository) Update(ctx context.Context, question *entities.Question) error {
	defer r.cache.Delete(cacheKeyActiveQuestions)
	return r.db.WithContext(ctx).Omit("Options", "Specialty").Save(question).Error
}

// ReplaceOptions apaga as opções atuais e insere as novas, sem transação
func (r *questionRepository) ReplaceOptions(ctx context.Context, questionID uuid.UUID, options []entities.Option) error {
	defer r.cache.Delete(cacheKeyActiveQuestions)

	db := r.db.WithContext(ctx)
	if err := db.Where("pergunta_id = ?", questionID).Delete(&entities.Option{}).Error; err != nil {
		return err
	}
	if len(options) == 0 {
		return nil
	}
	return db.Create(&options).Error
}

func (r *questionRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	defer r.cache.Delete(cacheKeyActiveQuestions)
	return deleted(r.db.WithContext(ctx).Model(&entities.Question{}).Where("id = ?", id).Update("ativo", active))
}

// Reorder grava a posição de cada pergunta conforme a ordem recebida
func (r *questionRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	defer r.cache.Delete(cacheKeyActiveQuestions)

	db := r.db.WithContext(ctx)
	for i, id := range ids {
		if err := db.Model(&entities.Question{}).Where("id = ?", id).Update("ordem", i).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.cache.Delete(cacheKeyActiveQuestions)
	return deleted(r.db.WithContext(ctx).Delete(&entities.Question{}, "id = ?", id))
}
