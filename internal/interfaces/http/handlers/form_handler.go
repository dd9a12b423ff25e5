package handlers

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/wizard"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// FormHandler atende o formulário do totem
type FormHandler struct {
	formUseCase usecases.FormUseCase
}

func NewFormHandler(formUseCase usecases.FormUseCase) *FormHandler {
	return &FormHandler{formUseCase: formUseCase}
}

type submitFormRequest struct {
	Name     string              `json:"nome" validate:"required"`
	WhatsApp string              `json:"whatsapp" validate:"required"`
	Answers  map[string][]string `json:"respostas"`
	Texts    map[string]string   `json:"textos"`
}

type selectOptionRequest struct {
	QuestionID uuid.UUID `json:"pergunta_id" validate:"required"`
	OptionID   uuid.UUID `json:"opcao_id" validate:"required"`
}

type setTextRequest struct {
	QuestionID uuid.UUID `json:"pergunta_id" validate:"required"`
	Text       string    `json:"texto"`
}

type contactRequest struct {
	Name     string `json:"nome"`
	WhatsApp string `json:"whatsapp"`
}

// sessionResponse é a visão do passo a passo devolvida ao totem
type sessionResponse struct {
	ID           uuid.UUID                 `json:"id"`
	Step         wizard.Step               `json:"etapa"`
	Question     *entities.Question        `json:"pergunta"`
	CurrentIndex int                       `json:"pergunta_atual"`
	Total        int                       `json:"total_perguntas"`
	Progress     float64                   `json:"progresso"`
	Answers      map[uuid.UUID][]uuid.UUID `json:"respostas"`
	Texts        map[uuid.UUID]string      `json:"textos"`
	Name         string                    `json:"nome"`
	Phone        string                    `json:"whatsapp"`
	CanGoNext    bool                      `json:"pode_avancar"`
	CanSubmit    bool                      `json:"pode_enviar"`
	Submitting   bool                      `json:"enviando"`
	Error        string                    `json:"erro,omitempty"`
	Countdown    int                       `json:"contagem"`
	Redirect     bool                      `json:"redirecionar"`
}

func newSessionResponse(snap wizard.Snapshot) sessionResponse {
	return sessionResponse{
		ID:           snap.SessionID,
		Step:         snap.State.Step,
		Question:     snap.Question,
		CurrentIndex: snap.State.CurrentQuestion,
		Total:        snap.Total,
		Progress:     snap.Progress,
		Answers:      snap.State.Answers,
		Texts:        snap.State.Texts,
		Name:         snap.State.Name,
		Phone:        snap.State.Phone,
		CanGoNext:    snap.CanGoNext,
		CanSubmit:    snap.CanSubmit,
		Submitting:   snap.State.IsSubmitting,
		Error:        snap.State.Error,
		Countdown:    snap.Countdown,
		Redirect:     snap.Redirect,
	}
}

// GetForm retorna as perguntas e núcleos ativos
func (h *FormHandler) GetForm(c *fiber.Ctx) error {
	payload, err := h.formUseCase.Form(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payload})
}

// SubmitForm recebe o formulário completo de uma vez
func (h *FormHandler) SubmitForm(c *fiber.Ctx) error {
	var req submitFormRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	submission := wizard.Submission{
		Name:    req.Name,
		Phone:   req.WhatsApp,
		Answers: make(map[uuid.UUID][]uuid.UUID, len(req.Answers)),
		Texts:   make(map[uuid.UUID]string, len(req.Texts)),
	}
	for rawQuestion, rawOptions := range req.Answers {
		questionID, err := uuid.Parse(rawQuestion)
		if err != nil {
			return &usecases.ValidationError{Message: "Pergunta inválida", Fields: map[string]string{"respostas": rawQuestion}}
		}
		for _, rawOption := range rawOptions {
			optionID, err := uuid.Parse(rawOption)
			if err != nil {
				return &usecases.ValidationError{Message: "Opção inválida", Fields: map[string]string{"respostas": rawOption}}
			}
			submission.Answers[questionID] = append(submission.Answers[questionID], optionID)
		}
	}
	for rawQuestion, text := range req.Texts {
		questionID, err := uuid.Parse(rawQuestion)
		if err != nil {
			return &usecases.ValidationError{Message: "Pergunta inválida", Fields: map[string]string{"textos": rawQuestion}}
		}
		submission.Texts[questionID] = text
	}

	receipt, err := h.formUseCase.Submit(c.UserContext(), submission)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"paciente_id": receipt.LeadID,
			"respostas":   receipt.Answers,
			"interesses":  receipt.Interests,
		},
	})
}

// CreateSession abre uma sessão do passo a passo no servidor
func (h *FormHandler) CreateSession(c *fiber.Ctx) error {
	snap, err := h.formUseCase.NewSession(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": newSessionResponse(snap)})
}

func (h *FormHandler) GetSession(c *fiber.Ctx) error {
	return h.step(c, h.formUseCase.Snapshot)
}

func (h *FormHandler) Start(c *fiber.Ctx) error {
	return h.step(c, h.formUseCase.Start)
}

func (h *FormHandler) Next(c *fiber.Ctx) error {
	return h.step(c, h.formUseCase.Next)
}

func (h *FormHandler) Prev(c *fiber.Ctx) error {
	return h.step(c, h.formUseCase.Prev)
}

func (h *FormHandler) Reset(c *fiber.Ctx) error {
	return h.step(c, h.formUseCase.Reset)
}

func (h *FormHandler) Select(c *fiber.Ctx) error {
	var req selectOptionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return h.step(c, func(id uuid.UUID) (wizard.Snapshot, error) {
		return h.formUseCase.Select(id, req.QuestionID, req.OptionID)
	})
}

func (h *FormHandler) SetText(c *fiber.Ctx) error {
	var req setTextRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return h.step(c, func(id uuid.UUID) (wizard.Snapshot, error) {
		return h.formUseCase.SetText(id, req.QuestionID, req.Text)
	})
}

func (h *FormHandler) SetContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return h.step(c, func(id uuid.UUID) (wizard.Snapshot, error) {
		return h.formUseCase.SetContact(id, req.Name, req.WhatsApp)
	})
}

// SubmitSession grava o cadastro da sessão. Em caso de falha o estado volta
// para a etapa de contato com a mensagem de erro.
func (h *FormHandler) SubmitSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	snap, receipt, err := h.formUseCase.SubmitSession(c.UserContext(), id)
	if err != nil {
		if snap.State.Error != "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": snap.State.Error,
				"data":  newSessionResponse(snap),
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":        newSessionResponse(snap),
		"paciente_id": receipt.LeadID,
	})
}

func (h *FormHandler) CloseSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	h.formUseCase.CloseSession(id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FormHandler) step(c *fiber.Ctx, fn func(uuid.UUID) (wizard.Snapshot, error)) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	snap, err := fn(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": newSessionResponse(snap)})
}
