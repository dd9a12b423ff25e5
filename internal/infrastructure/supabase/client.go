package supabase

import (
	"fmt"
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/config"
	"github.com/rs/zerolog"
	supa "github.com/supabase-community/supabase-go"
)

// New cria os adaptadores de Auth e Storage a partir do cliente service-role
func New(cfg *config.Config, log zerolog.Logger) (*Auth, *Storage, error) {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, &supa.ClientOptions{Schema: "public"})
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao criar cliente supabase: %w", err)
	}

	authURL := strings.TrimRight(cfg.SupabaseURL, "/") + "/auth/v1"
	auth := &Auth{
		url:     authURL,
		anonKey: cfg.SupabaseAnonKey,
		admin:   client.Auth.WithCustomGoTrueURL(authURL).WithToken(cfg.SupabaseServiceRoleKey),
		log:     log.With().Str("component", "supabase_auth").Logger(),
	}

	storage := &Storage{
		client: client.Storage,
		bucket: cfg.StorageBucket,
		log:    log.With().Str("component", "supabase_storage").Logger(),
	}

	return auth, storage, nil
}
