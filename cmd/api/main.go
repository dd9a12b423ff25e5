package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/config"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/database"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/supabase"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/whatsapp"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/routes"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", true)
		bootLog.Fatal().Err(err).Msg("❌ Configuração inválida")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	if envErr != nil {
		log.Warn().Msg("⚠️ No .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.SetupDatabase(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Error setting up database")
	}

	// Caches: consultas do formulário, sessões do formulário e do totem
	queryCache := cache.New(time.Minute)
	formSessions := cache.New(time.Minute)
	kioskSessions := cache.New(time.Minute)
	defer queryCache.Close()
	defer formSessions.Close()
	defer kioskSessions.Close()

	auth, storage, err := supabase.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Error setting up Supabase")
	}

	wa, err := whatsapp.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Error setting up WhatsApp")
	}
	defer wa.Close()
	if wa.Paired() {
		if err := wa.Connect(ctx); err != nil {
			log.Error().Err(err).Msg("Erro ao reconectar WhatsApp")
		}
	}

	// Repositories
	specialtyRepo := repositories.NewSpecialtyRepository(db, queryCache)
	questionRepo := repositories.NewQuestionRepository(db, queryCache)
	professionalRepo := repositories.NewProfessionalRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	followupRepo := repositories.NewFollowupRepository(db)
	conversionRepo := repositories.NewConversionRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)

	// Use Cases
	settingUseCase := usecases.NewSettingUseCase(settingRepo, log)
	authUseCase := usecases.NewAuthUseCase(auth, staffRepo, log)
	professionalUseCase := usecases.NewProfessionalUseCase(professionalRepo, specialtyRepo)

	h := &handlers.Handlers{
		Form:         handlers.NewFormHandler(usecases.NewFormUseCase(questionRepo, specialtyRepo, leadRepo, formSessions, cfg.FormSessionTTL, log)),
		Kiosk:        handlers.NewKioskHandler(usecases.NewKioskUseCase(settingUseCase, kioskSessions), settingUseCase, professionalUseCase),
		Auth:         handlers.NewAuthHandler(authUseCase, cfg.CookieSecure),
		User:         handlers.NewUserHandler(usecases.NewUserUseCase(auth, staffRepo, log)),
		Upload:       handlers.NewUploadHandler(usecases.NewUploadUseCase(storage, log)),
		Specialty:    handlers.NewSpecialtyHandler(usecases.NewSpecialtyUseCase(specialtyRepo)),
		Professional: handlers.NewProfessionalHandler(professionalUseCase),
		Question:     handlers.NewQuestionHandler(usecases.NewQuestionUseCase(questionRepo)),
		Template:     handlers.NewTemplateHandler(usecases.NewTemplateUseCase(templateRepo, leadRepo)),
		Lead:         handlers.NewLeadHandler(usecases.NewLeadUseCase(leadRepo, followupRepo, conversionRepo, templateRepo, wa, log)),
		Dashboard:    handlers.NewDashboardHandler(usecases.NewDashboardUseCase(dashboardRepo)),
		Setting:      handlers.NewSettingHandler(settingUseCase),
		WhatsApp:     handlers.NewWhatsAppHandler(usecases.NewWhatsAppUseCase(wa)),
	}

	app := fiber.New(fiber.Config{
		AppName:      "felice-endomarketing-api",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: handlers.ErrorHandler(log),
		// Vídeos de até 50MB mais o envelope multipart
		BodyLimit:    55 * 1024 * 1024,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg.AllowedOrigins, log)

	// Setup routes
	routes.SetupRoutes(app, h, middleware.SessionAuth(middleware.AuthConfig{
		JWTSecret:     cfg.SupabaseJWTSecret,
		Authenticator: authUseCase,
	}))

	go func() {
		<-ctx.Done()
		log.Info().Msg("🛑 Encerrando servidor")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("Erro ao encerrar servidor")
		}
	}()

	// Start server
	log.Info().Str("port", cfg.Port).Msg("🚀 Server is running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("❌ Erro no servidor")
	}
}
