package supabase

import (
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// Auth implementa usecases.AuthProvider sobre o GoTrue
type Auth struct {
	url     string
	anonKey string
	admin   gotrue.Client
	log     zerolog.Logger
}

var _ usecases.AuthProvider = (*Auth)(nil)

// public devolve um cliente novo com a chave anon, sem estado compartilhado
func (a *Auth) public() gotrue.Client {
	return gotrue.New("", a.anonKey).WithCustomGoTrueURL(a.url)
}

func (a *Auth) SignIn(email, password string) (*entities.AuthSession, error) {
	resp, err := a.public().SignInWithEmailPassword(email, password)
	if err != nil {
		a.log.Debug().Err(err).Str("email", email).Msg("Falha no login")
		return nil, usecases.ErrInvalidCredentials
	}

	return &entities.AuthSession{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		User:         toAuthUser(resp.User),
	}, nil
}

func (a *Auth) UserFromToken(accessToken string) (*entities.AuthUser, error) {
	resp, err := a.public().WithToken(accessToken).GetUser()
	if err != nil {
		return nil, usecases.ErrUnauthorized
	}
	user := toAuthUser(resp.User)
	return &user, nil
}

func (a *Auth) SignOut(accessToken string) error {
	return a.public().WithToken(accessToken).Logout()
}

func (a *Auth) Recover(email string) error {
	return a.public().Recover(types.RecoverRequest{Email: email})
}

func (a *Auth) ListUsers() ([]entities.AuthUser, error) {
	resp, err := a.admin.AdminListUsers()
	if err != nil {
		return nil, err
	}

	users := make([]entities.AuthUser, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, toAuthUser(u))
	}
	return users, nil
}

func (a *Auth) CreateUser(email, password string) (*entities.AuthUser, error) {
	resp, err := a.admin.AdminCreateUser(types.AdminCreateUserRequest{
		Email:        email,
		Password:     &password,
		EmailConfirm: true,
	})
	if err != nil {
		if isEmailTaken(err) {
			return nil, usecases.ErrEmailTaken
		}
		return nil, err
	}

	user := toAuthUser(resp.User)
	return &user, nil
}

func (a *Auth) UpdateUser(id uuid.UUID, email, password string) error {
	_, err := a.admin.AdminUpdateUser(types.AdminUpdateUserRequest{
		UserID:   id,
		Email:    email,
		Password: password,
	})
	if err != nil && isEmailTaken(err) {
		return usecases.ErrEmailTaken
	}
	return err
}

func (a *Auth) DeleteUser(id uuid.UUID) error {
	return a.admin.AdminDeleteUser(types.AdminDeleteUserRequest{UserID: id})
}

func toAuthUser(u types.User) entities.AuthUser {
	return entities.AuthUser{
		ID:           u.ID,
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		LastSignInAt: u.LastSignInAt,
	}
}

// O GoTrue não expõe erro tipado para email duplicado
func isEmailTaken(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already been registered") ||
		strings.Contains(msg, "email_exists") ||
		strings.Contains(msg, "already registered")
}
