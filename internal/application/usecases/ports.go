package usecases

import (
	"context"
	"io"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/google/uuid"
)

// AuthProvider é o serviço de autenticação (Supabase Auth)
type AuthProvider interface {
	SignIn(email, password string) (*entities.AuthSession, error)
	UserFromToken(accessToken string) (*entities.AuthUser, error)
	SignOut(accessToken string) error
	Recover(email string) error

	ListUsers() ([]entities.AuthUser, error)
	CreateUser(email, password string) (*entities.AuthUser, error)
	UpdateUser(id uuid.UUID, email, password string) error
	DeleteUser(id uuid.UUID) error
}

// ObjectStorage guarda arquivos enviados pelo painel
type ObjectStorage interface {
	EnsureBucket() error
	Upload(path, contentType string, body io.Reader) (publicURL string, err error)
}

// WhatsAppStatus descreve o aparelho vinculado para envio de followups
type WhatsAppStatus struct {
	Enabled   bool   `json:"enabled"`
	Connected bool   `json:"connected"`
	LoggedIn  bool   `json:"logged_in"`
	JID       string `json:"jid,omitempty"`
	HasQR     bool   `json:"has_qr"`
}

// MessageSender envia mensagens de followup pelo WhatsApp
type MessageSender interface {
	SendText(ctx context.Context, phone, text string) error
	Status() WhatsAppStatus
	Connect(ctx context.Context) error
	QRCode() ([]byte, error)
}
