package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/felice")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service")
	t.Setenv("FORM_SESSION_TTL_MINUTES", "invalid")
	t.Setenv("WHATSAPP_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SupabaseURL != "https://abc.supabase.co" {
		t.Errorf("trailing slash not trimmed: %q", cfg.SupabaseURL)
	}
	if cfg.SupabaseAnonKey != "service" {
		t.Errorf("anon key should fall back to the service key, got %q", cfg.SupabaseAnonKey)
	}
	if cfg.FormSessionTTL != 30*time.Minute {
		t.Errorf("FormSessionTTL = %v", cfg.FormSessionTTL)
	}
	if !cfg.WhatsAppEnabled || !cfg.AutoMigrate || cfg.StorageBucket != "images" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadRequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}
