package handlers

import (
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// refreshTokenMaxAge é a validade do cookie de refresh token
const refreshTokenMaxAge = 30 * 24 * time.Hour

// AuthHandler cuida do login do painel
type AuthHandler struct {
	authUseCase  usecases.AuthUseCase
	secureCookie bool
}

func NewAuthHandler(authUseCase usecases.AuthUseCase, secureCookie bool) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase, secureCookie: secureCookie}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type recoverPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Login autentica no Supabase Auth e grava os cookies de sessão
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, profile, err := h.authUseCase.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setCookie(c, middleware.AccessTokenCookie, session.AccessToken, time.Duration(session.ExpiresIn)*time.Second)
	h.setCookie(c, middleware.RefreshTokenCookie, session.RefreshToken, refreshTokenMaxAge)

	return c.JSON(fiber.Map{
		"user":   session.User,
		"equipe": profile,
	})
}

// Me retorna o usuário logado e seu perfil na equipe
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return usecases.ErrUnauthorized
	}

	profile, err := h.authUseCase.Profile(c.UserContext(), *user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"user":   user,
		"equipe": profile,
	})
}

// Logout encerra a sessão no Supabase e apaga os cookies
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authUseCase.Logout(middleware.CurrentToken(c)); err != nil {
		return err
	}
	h.clearCookie(c, middleware.AccessTokenCookie)
	h.clearCookie(c, middleware.RefreshTokenCookie)
	return message(c, "Sessão encerrada")
}

// RecoverPassword envia o email de redefinição. A resposta é sempre a mesma,
// exista ou não o email.
func (h *AuthHandler) RecoverPassword(c *fiber.Ctx) error {
	var req recoverPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.authUseCase.RecoverPassword(req.Email); err != nil {
		return err
	}
	return message(c, "Se o email estiver cadastrado, você receberá as instruções para redefinir a senha")
}

func (h *AuthHandler) setCookie(c *fiber.Ctx, name, value string, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   h.secureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   h.secureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
