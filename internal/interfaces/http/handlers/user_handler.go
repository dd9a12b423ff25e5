package handlers

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserHandler administra os usuários do painel (Supabase Auth + form_equipe)
type UserHandler struct {
	userUseCase usecases.UserUseCase
}

func NewUserHandler(userUseCase usecases.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

type createUserRequest struct {
	Email       string             `json:"email" validate:"required,email"`
	Password    string             `json:"password" validate:"required,min=6"`
	Name        string             `json:"nome" validate:"required"`
	Phone       *string            `json:"telefone"`
	Role        entities.StaffRole `json:"role" validate:"omitempty,oneof=admin gerente atendente"`
	SpecialtyID *uuid.UUID         `json:"nucleo_id"`
}

type updateUserRequest struct {
	Email       *string             `json:"email" validate:"omitempty,email"`
	Password    *string             `json:"password" validate:"omitempty,min=6"`
	Name        *string             `json:"nome"`
	Phone       *string             `json:"telefone"`
	Role        *entities.StaffRole `json:"role" validate:"omitempty,oneof=admin gerente atendente"`
	SpecialtyID *uuid.UUID          `json:"nucleo_id"`
	AvatarURL   *string             `json:"avatar_url"`
	Active      *bool               `json:"ativo"`
}

// GetUsers lista os usuários do Auth com o perfil da equipe
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userUseCase.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"usuarios": users})
}

// CreateUser cria o usuário no Auth e o perfil na equipe
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUseCase.Create(c.UserContext(), usecases.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Phone:       req.Phone,
		Role:        req.Role,
		SpecialtyID: req.SpecialtyID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Usuário criado com sucesso",
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

// UpdateUser altera credenciais e perfil; só os campos enviados mudam
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err = h.userUseCase.Update(c.UserContext(), id, usecases.UpdateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Phone:       req.Phone,
		Role:        req.Role,
		SpecialtyID: req.SpecialtyID,
		AvatarURL:   req.AvatarURL,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return message(c, "Usuário atualizado com sucesso")
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.userUseCase.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return message(c, "Usuário excluído com sucesso")
}
