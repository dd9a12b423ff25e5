package usecases

import (
	"errors"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
)

var (
	ErrNotFound             = repositories.ErrNotFound
	ErrEmailTaken           = errors.New("este email já está cadastrado")
	ErrInvalidCredentials   = errors.New("email ou senha inválidos")
	ErrUnauthorized         = errors.New("sessão inválida ou expirada")
	ErrSessionNotFound      = errors.New("sessão não encontrada ou expirada")
	ErrInvalidKioskPassword = errors.New("senha incorreta")
	ErrWhatsAppUnavailable  = errors.New("whatsapp não está conectado")
)

// ValidationError é um erro de entrada do usuário, com detalhes por campo
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func invalidField(field, message string) error {
	return &ValidationError{Message: message, Fields: map[string]string{field: message}}
}
