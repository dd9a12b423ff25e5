package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/config"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/database"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/supabase"
	"github.com/joho/godotenv"
)

// set-admin promove um usuário já cadastrado no Supabase Auth a administrador
func main() {
	email := flag.String("email", "", "email do usuário no Supabase Auth")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "uso: set-admin -email usuario@felice.com")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro de configuração: %v\n", err)
		os.Exit(1)
	}
	// migrações ficam a cargo da API
	cfg.AutoMigrate = false

	log := logger.New(cfg.LogLevel, true)

	db, err := database.SetupDatabase(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Error setting up database")
	}

	auth, _, err := supabase.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Error setting up Supabase")
	}

	uc := usecases.NewUserUseCase(auth, repositories.NewStaffRepository(db), log)
	staff, err := uc.PromoteAdmin(context.Background(), *email)
	if err != nil {
		log.Fatal().Err(err).Str("email", *email).Msg("Não foi possível promover o usuário")
	}

	fmt.Printf("✅ %s (%s) agora é %s\n", staff.Name, staff.ID, staff.Role)
}
