package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// SetupMiddlewares registra os middlewares comuns a todas as rotas
func SetupMiddlewares(app *fiber.App, allowedOrigins string, log zerolog.Logger) {
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New())
	app.Use(RequestLogger(log))

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     normalizeOrigins(allowedOrigins),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// ETag para as respostas GET
	app.Use(etag.New())
}

func normalizeOrigins(origins string) string {
	parts := strings.Split(origins, ",")
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			clean = append(clean, p)
		}
	}
	return strings.Join(clean, ",")
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public fiber.Router
	Admin  fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares.
// O grupo autenticado aplica o middleware a todo o prefixo /api, por isso as
// rotas públicas são registradas antes dele.
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler, public, admin func(fiber.Router)) RouteGroups {
	// Grupo público (totem, login)
	groups := RouteGroups{Public: app.Group("/api")}
	public(groups.Public)

	// Grupo do painel (com autenticação)
	groups.Admin = app.Group("/api", authMiddleware)
	admin(groups.Admin)

	return groups
}
