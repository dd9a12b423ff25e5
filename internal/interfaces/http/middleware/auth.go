package middleware

import (
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AccessTokenCookie é o cookie de sessão gravado no login
	AccessTokenCookie = "sb-access-token"
	// RefreshTokenCookie guarda o refresh token do Supabase
	RefreshTokenCookie = "sb-refresh-token"

	localUser  = "user"
	localToken = "access_token"
)

// Authenticator valida um access token no Supabase Auth
type Authenticator interface {
	Authenticate(accessToken string) (*entities.AuthUser, error)
}

// AuthConfig configura o middleware de sessão. Com JWTSecret o token é
// verificado localmente; sem ele a validação vai ao Supabase Auth.
type AuthConfig struct {
	JWTSecret     string
	Authenticator Authenticator
}

type supabaseClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionAuth exige uma sessão válida do painel
func SessionAuth(cfg AuthConfig) fiber.Handler {
	secret := []byte(strings.TrimSpace(cfg.JWTSecret))

	return func(c *fiber.Ctx) error {
		raw := AccessToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Não autenticado")
		}

		var (
			user *entities.AuthUser
			err  error
		)
		if len(secret) > 0 {
			user, err = verifyToken(raw, secret)
		} else {
			user, err = cfg.Authenticator.Authenticate(raw)
		}
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida ou expirada")
		}

		c.Locals(localUser, user)
		c.Locals(localToken, raw)
		return c.Next()
	}
}

func verifyToken(raw string, secret []byte) (*entities.AuthUser, error) {
	var claims supabaseClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, err
	}

	return &entities.AuthUser{ID: id, Email: claims.Email}, nil
}

// AccessToken lê o token do cookie de sessão ou do header Authorization
func AccessToken(c *fiber.Ctx) string {
	if token := strings.TrimSpace(c.Cookies(AccessTokenCookie)); token != "" {
		return token
	}
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(authz) > 7 && strings.EqualFold(authz[:7], "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}

// CurrentUser devolve o usuário autenticado pela SessionAuth
func CurrentUser(c *fiber.Ctx) *entities.AuthUser {
	user, _ := c.Locals(localUser).(*entities.AuthUser)
	return user
}

// CurrentToken devolve o access token validado pela SessionAuth
func CurrentToken(c *fiber.Ctx) string {
	token, _ := c.Locals(localToken).(string)
	return token
}
