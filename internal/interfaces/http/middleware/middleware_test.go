package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSetupRouteGroups_PublicRoutesSkipAuth(t *testing.T) {
	app := fiber.New()
	deny := func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	ok := func(c *fiber.Ctx) error {
		return c.SendString("ok")
	}

	SetupRouteGroups(app, deny,
		func(public fiber.Router) {
			public.Get("/formulario", ok)
		},
		func(admin fiber.Router) {
			admin.Get("/leads", ok)
		},
	)

	tests := []struct {
		path   string
		status int
	}{
		{"/api/formulario", fiber.StatusOK},
		{"/api/leads", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.path, resp.StatusCode, tt.status)
		}
	}
}

func TestNormalizeOrigins(t *testing.T) {
	got := normalizeOrigins(" http://localhost:5173/ ,https://painel.felice.com.br,, ")
	want := "http://localhost:5173,https://painel.felice.com.br"
	if got != want {
		t.Errorf("normalizeOrigins = %q, want %q", got, want)
	}
}
