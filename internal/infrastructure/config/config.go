package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config reúne as variáveis de ambiente da API
type Config struct {
	Port           string
	DatabaseURL    string
	AutoMigrate    bool
	AllowedOrigins string
	CookieSecure   bool

	SupabaseURL            string
	SupabaseAnonKey        string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string
	StorageBucket          string

	LogLevel  string
	LogPretty bool

	FormSessionTTL time.Duration

	WhatsAppEnabled   bool
	WhatsAppStorePath string
}

// Load lê o ambiente. O .env já deve ter sido carregado pelo main.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                   GetEnv("PORT", "8080"),
		DatabaseURL:            GetEnv("DATABASE_URL"),
		AutoMigrate:            GetBool("DB_AUTO_MIGRATE", true),
		AllowedOrigins:         GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://localhost:3000"),
		CookieSecure:           GetBool("COOKIE_SECURE", true),
		SupabaseURL:            strings.TrimRight(GetEnv("SUPABASE_URL"), "/"),
		SupabaseAnonKey:        GetEnv("SUPABASE_ANON_KEY"),
		SupabaseServiceRoleKey: GetEnv("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseJWTSecret:      GetEnv("SUPABASE_JWT_SECRET"),
		StorageBucket:          GetEnv("STORAGE_BUCKET", "images"),
		LogLevel:               GetEnv("LOG_LEVEL", "info"),
		LogPretty:              GetBool("LOG_PRETTY", false),
		FormSessionTTL:         time.Duration(GetInt("FORM_SESSION_TTL_MINUTES", 30)) * time.Minute,
		WhatsAppEnabled:        GetBool("WHATSAPP_ENABLED", false),
		WhatsAppStorePath:      GetEnv("WHATSAPP_STORE_PATH", "data/whatsapp.db"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceRoleKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required")
	}
	if cfg.SupabaseAnonKey == "" {
		cfg.SupabaseAnonKey = cfg.SupabaseServiceRoleKey
	}
	return cfg, nil
}

// GetEnv devolve a variável ou o valor padrão quando ela não existe
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(GetEnv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func GetInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(GetEnv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
