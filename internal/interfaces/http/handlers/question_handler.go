package handlers

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// QuestionHandler administra as perguntas do formulário
type QuestionHandler struct {
	questionUseCase usecases.QuestionUseCase
}

func NewQuestionHandler(questionUseCase usecases.QuestionUseCase) *QuestionHandler {
	return &QuestionHandler{questionUseCase: questionUseCase}
}

type optionRequest struct {
	Text string `json:"texto"`
}

type questionRequest struct {
	Title       string                `json:"titulo" validate:"required"`
	Subtitle    *string               `json:"subtitulo"`
	SpecialtyID *uuid.UUID            `json:"nucleo_id"`
	Type        entities.QuestionType `json:"tipo"`
	ImageURL    *string               `json:"imagem_url"`
	Multiple    bool                  `json:"multipla_selecao"`
	Required    *bool                 `json:"obrigatoria"`
	Active      *bool                 `json:"ativo"`
	Order       int                   `json:"ordem" validate:"gte=0"`
	Options     []optionRequest       `json:"opcoes" validate:"max=10"`
}

type reorderRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

func (r questionRequest) entity() (*entities.Question, []entities.Option) {
	question := &entities.Question{
		Title:       r.Title,
		Subtitle:    trimmedPtr(r.Subtitle),
		SpecialtyID: r.SpecialtyID,
		Type:        r.Type,
		ImageURL:    trimmedPtr(r.ImageURL),
		Multiple:    r.Multiple,
		Required:    true,
		Active:      true,
		Order:       r.Order,
	}
	if r.Required != nil {
		question.Required = *r.Required
	}
	if r.Active != nil {
		question.Active = *r.Active
	}

	options := make([]entities.Option, len(r.Options))
	for i, o := range r.Options {
		options[i] = entities.Option{Text: o.Text}
	}
	return question, options
}

func (h *QuestionHandler) GetQuestions(c *fiber.Ctx) error {
	questions, err := h.questionUseCase.List(c.UserContext(), c.QueryBool("ativos"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": questions})
}

// CreateQuestion grava a pergunta com suas opções
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req questionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	question, options := req.entity()
	if err := h.questionUseCase.Create(c.UserContext(), question, options); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pergunta criada com sucesso",
		"id":      question.ID,
	})
}

// UpdateQuestion grava a pergunta e recria todas as opções
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req questionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	question, options := req.entity()
	if err := h.questionUseCase.Update(c.UserContext(), id, question, options); err != nil {
		return err
	}
	return message(c, "Pergunta atualizada com sucesso")
}

func (h *QuestionHandler) SetActive(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req activeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	question, err := h.questionUseCase.SetActive(c.UserContext(), id, *req.Active)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": question})
}

// Reorder grava a ordem das perguntas conforme a lista de IDs
func (h *QuestionHandler) Reorder(c *fiber.Ctx) error {
	var req reorderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.questionUseCase.Reorder(c.UserContext(), req.IDs); err != nil {
		return err
	}
	return message(c, "Ordem atualizada com sucesso")
}

func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.questionUseCase.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return message(c, "Pergunta excluída com sucesso")
}
