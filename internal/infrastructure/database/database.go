package database

import (
	"fmt"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/config"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/database/migrations"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/logger"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Timezone usado nas consultas agrupadas por dia
const Timezone = "America/Sao_Paulo"

func SetupDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		// Skip default transaction for better performance
		SkipDefaultTransaction: true,
		Logger:                 logger.NewGormLogger(log, 200*time.Millisecond),
	}

	// O pooler do Supabase (pgbouncer) não aceita prepared statements em cache
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := RegisterMiddlewares(db, Timezone); err != nil {
		return nil, fmt.Errorf("failed to register timezone callbacks: %w", err)
	}

	if !cfg.AutoMigrate {
		log.Info().Msg("⏭️ migrações desativadas (DB_AUTO_MIGRATE=false)")
		return db, nil
	}

	if err := migrations.Migrate(db, log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := migrations.CreateViews(db); err != nil {
		return nil, fmt.Errorf("failed to create views: %w", err)
	}

	if err := migrations.AddIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to add indexes: %w", err)
	}

	return db, nil
}
