package repositories

import (
	"context"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	List(ctx context.Context) ([]entities.Setting, error)
	Get(ctx context.Context, key string) (*entities.Setting, error)
	Upsert(ctx context.Context, key string, value *string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db}
}

func (r *settingRepository) List(ctx context.Context) ([]entities.Setting, error) {
	var settings []entities.Setting
	if err := r.db.WithContext(ctx).Order("chave ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) Get(ctx context.Context, key string) (*entities.Setting, error) {
	var setting entities.Setting
	if err := r.db.WithContext(ctx).Where("chave = ?", key).First(&setting).Error; err != nil {
		return nil, translate(err)
	}
	return &setting, nil
}

// Upsert grava o valor pela chave única
func (r *settingRepository) Upsert(ctx context.Context, key string, value *string) error {
	setting := entities.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
	}).Create(&setting).Error
}
