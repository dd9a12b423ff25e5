package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, secret string, sub string, exp time.Time) string {
	t.Helper()
	claims := supabaseClaims{
		Email: "ana@felice.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func protectedApp(cfg AuthConfig) *fiber.App {
	app := fiber.New()
	app.Get("/me", SessionAuth(cfg), func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		return c.SendString(user.Email + "|" + CurrentToken(c))
	})
	return app
}

func TestSessionAuth_LocalJWT(t *testing.T) {
	app := protectedApp(AuthConfig{JWTSecret: testSecret})
	id := uuid.New()

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"no token", func(*http.Request) {}, 401},
		{"cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: signToken(t, testSecret, id.String(), time.Now().Add(time.Hour))})
		}, 200},
		{"bearer", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, id.String(), time.Now().Add(time.Hour)))
		}, 200},
		{"expired", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, id.String(), time.Now().Add(-time.Minute)))
		}, 401},
		{"wrong secret", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, "outro-segredo", id.String(), time.Now().Add(time.Hour)))
		}, 401},
		{"subject is not a uuid", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "anon", time.Now().Add(time.Hour)))
		}, 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

type fakeAuthenticator struct {
	calls int
}

func (f *fakeAuthenticator) Authenticate(token string) (*entities.AuthUser, error) {
	f.calls++
	if token != "remote-token" {
		return nil, errors.New("invalid")
	}
	return &entities.AuthUser{ID: uuid.New(), Email: "remoto@felice.com"}, nil
}

func TestSessionAuth_RemoteFallback(t *testing.T) {
	authenticator := &fakeAuthenticator{}
	app := protectedApp(AuthConfig{Authenticator: authenticator})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "bearer remote-token")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer outro")
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if authenticator.calls != 2 {
		t.Errorf("calls = %d, want 2", authenticator.calls)
	}
}
