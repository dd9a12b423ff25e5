package entities

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser é o usuário do Supabase Auth
type AuthUser struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`
}

// AuthSession é o par de tokens devolvido no login
type AuthSession struct {
	AccessToken  string   `json:"-"`
	RefreshToken string   `json:"-"`
	ExpiresIn    int      `json:"expires_in"`
	User         AuthUser `json:"user"`
}
