package migrations

import (
	"fmt"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate cria ou atualiza as tabelas form_* na ordem das chaves estrangeiras
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	models := []interface{}{
		&entities.Specialty{},
		&entities.Professional{},
		&entities.Question{},
		&entities.Option{},
		&entities.Lead{},
		&entities.Answer{},
		&entities.Interest{},
		&entities.Template{},
		&entities.Followup{},
		&entities.Conversion{},
		&entities.Staff{},
		&entities.Setting{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("auto migrate %T: %w", model, err)
		}
	}
	log.Info().Int("tables", len(models)).Msg("📦 tabelas migradas")

	return SeedSettings(db)
}

// SeedSettings insere as configurações padrão sem sobrescrever valores existentes
func SeedSettings(db *gorm.DB) error {
	defaults := entities.DefaultSettings()
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		DoNothing: true,
	}).Create(&defaults).Error
}
