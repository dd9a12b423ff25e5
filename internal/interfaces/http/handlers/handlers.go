package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers reúne todos os handlers da API para o registro de rotas
type Handlers struct {
	Form         *FormHandler
	Kiosk        *KioskHandler
	Auth         *AuthHandler
	User         *UserHandler
	Upload       *UploadHandler
	Specialty    *SpecialtyHandler
	Professional *ProfessionalHandler
	Question     *QuestionHandler
	Template     *TemplateHandler
	Lead         *LeadHandler
	Dashboard    *DashboardHandler
	Setting      *SettingHandler
	WhatsApp     *WhatsAppHandler
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Os erros usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind lê o corpo JSON e aplica as tags validate do DTO
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return &usecases.ValidationError{Message: "Corpo da requisição inválido"}
	}
	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &usecases.ValidationError{Message: "Dados inválidos"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &usecases.ValidationError{Message: "Dados inválidos", Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		return "deve ter no mínimo " + fe.Param()
	case "max":
		return "deve ter no máximo " + fe.Param()
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "gte":
		return "deve ser maior ou igual a " + fe.Param()
	default:
		return "valor inválido"
	}
}

// paramID lê um UUID da rota
func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, &usecases.ValidationError{
			Message: "ID inválido",
			Fields:  map[string]string{name: "ID inválido"},
		}
	}
	return id, nil
}

// queryID lê um UUID opcional da query string
func queryID(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, &usecases.ValidationError{
			Message: "Parâmetro inválido",
			Fields:  map[string]string{name: "ID inválido"},
		}
	}
	return &id, nil
}

func message(c *fiber.Ctx, text string) error {
	return c.JSON(fiber.Map{"message": text})
}

// trimmedPtr devolve nil para textos opcionais vazios
func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

type activeRequest struct {
	Active *bool `json:"ativo" validate:"required"`
}
