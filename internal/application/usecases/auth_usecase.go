package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/rs/zerolog"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*entities.AuthSession, *entities.Staff, error)
	Authenticate(accessToken string) (*entities.AuthUser, error)
	Profile(ctx context.Context, user entities.AuthUser) (*entities.Staff, error)
	Logout(accessToken string) error
	RecoverPassword(email string) error
}

type authUseCase struct {
	auth      AuthProvider
	staffRepo repositories.StaffRepository
	log       zerolog.Logger
}

func NewAuthUseCase(auth AuthProvider, staffRepo repositories.StaffRepository, log zerolog.Logger) AuthUseCase {
	return &authUseCase{
		auth:      auth,
		staffRepo: staffRepo,
		log:       log.With().Str("usecase", "auth").Logger(),
	}
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entities.AuthSession, *entities.Staff, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, nil, invalid("email e senha são obrigatórios")
	}

	session, err := uc.auth.SignIn(email, password)
	if err != nil {
		return nil, nil, err
	}

	profile, err := uc.Profile(ctx, session.User)
	if err != nil {
		return nil, nil, err
	}
	if !profile.Active {
		return nil, nil, ErrUnauthorized
	}
	return session, profile, nil
}

func (uc *authUseCase) Authenticate(accessToken string) (*entities.AuthUser, error) {
	if accessToken == "" {
		return nil, ErrUnauthorized
	}
	return uc.auth.UserFromToken(accessToken)
}

// Profile devolve o perfil da equipe ou um perfil padrão quando a linha não existe
func (uc *authUseCase) Profile(ctx context.Context, user entities.AuthUser) (*entities.Staff, error) {
	staff, err := uc.staffRepo.FindByID(ctx, user.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		profile := entities.DefaultStaffProfile(user.ID, user.Email)
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (uc *authUseCase) Logout(accessToken string) error {
	if accessToken == "" {
		return nil
	}
	if err := uc.auth.SignOut(accessToken); err != nil {
		uc.log.Warn().Err(err).Msg("Erro ao revogar sessão no Auth")
	}
	return nil
}

// RecoverPassword não revela se o email existe
func (uc *authUseCase) RecoverPassword(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return invalidField("email", "informe o email")
	}
	if err := uc.auth.Recover(email); err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("Erro ao solicitar recuperação de senha")
	}
	return nil
}
