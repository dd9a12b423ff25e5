package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MinPasswordLength é o mínimo aceito pelo Supabase Auth
const MinPasswordLength = 6

var validate = validator.New()

func isEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// UserAccount é um usuário do Auth com o perfil da equipe
type UserAccount struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	CreatedAt    time.Time      `json:"created_at"`
	LastSignInAt *time.Time     `json:"last_sign_in_at"`
	Staff        entities.Staff `json:"equipe"`
}

type CreateUserInput struct {
	Email       string
	Password    string
	Name        string
	Phone       *string
	Role        entities.StaffRole
	SpecialtyID *uuid.UUID
}

// UpdateUserInput só altera os campos informados
type UpdateUserInput struct {
	Email       *string
	Password    *string
	Name        *string
	Phone       *string
	Role        *entities.StaffRole
	SpecialtyID *uuid.UUID
	AvatarURL   *string
	Active      *bool
}

type UserUseCase interface {
	List(ctx context.Context) ([]UserAccount, error)
	Create(ctx context.Context, input CreateUserInput) (*entities.AuthUser, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	PromoteAdmin(ctx context.Context, email string) (*entities.Staff, error)
}

type userUseCase struct {
	auth      AuthProvider
	staffRepo repositories.StaffRepository
	log       zerolog.Logger
}

func NewUserUseCase(auth AuthProvider, staffRepo repositories.StaffRepository, log zerolog.Logger) UserUseCase {
	return &userUseCase{
		auth:      auth,
		staffRepo: staffRepo,
		log:       log.With().Str("usecase", "user").Logger(),
	}
}

// List junta os usuários do Auth com form_equipe; quem não tem perfil recebe um padrão
func (uc *userUseCase) List(ctx context.Context) ([]UserAccount, error) {
	users, err := uc.auth.ListUsers()
	if err != nil {
		return nil, err
	}

	staff, err := uc.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]entities.Staff, len(staff))
	for _, s := range staff {
		byID[s.ID] = s
	}

	accounts := make([]UserAccount, 0, len(users))
	for _, u := range users {
		profile, ok := byID[u.ID]
		if !ok {
			profile = entities.DefaultStaffProfile(u.ID, u.Email)
		}
		accounts = append(accounts, UserAccount{
			ID:           u.ID,
			Email:        u.Email,
			CreatedAt:    u.CreatedAt,
			LastSignInAt: u.LastSignInAt,
			Staff:        profile,
		})
	}
	return accounts, nil
}

func (uc *userUseCase) Create(ctx context.Context, input CreateUserInput) (*entities.AuthUser, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, invalid("email, senha e nome são obrigatórios")
	}
	if !isEmail(input.Email) {
		return nil, invalidField("email", "email inválido")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, invalidField("password", "a senha deve ter pelo menos 6 caracteres")
	}
	if input.Role == "" {
		input.Role = entities.RoleAttendant
	}
	if !input.Role.Valid() {
		return nil, invalidField("role", "perfil inválido")
	}

	user, err := uc.auth.CreateUser(input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	staff := &entities.Staff{
		ID:          user.ID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       trimmed(input.Phone),
		SpecialtyID: input.SpecialtyID,
		Role:        input.Role,
		Active:      true,
	}
	if err := uc.staffRepo.Create(ctx, staff); err != nil {
		uc.log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Erro ao criar perfil da equipe, removendo usuário do Auth")
		if delErr := uc.auth.DeleteUser(user.ID); delErr != nil {
			uc.log.Error().Err(delErr).Str("user_id", user.ID.String()).Msg("Erro ao remover usuário órfão do Auth")
		}
		return nil, err
	}

	return user, nil
}

func (uc *userUseCase) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) error {
	email := ""
	if input.Email != nil {
		email = strings.TrimSpace(strings.ToLower(*input.Email))
		if !isEmail(email) {
			return invalidField("email", "email inválido")
		}
	}
	password := ""
	if input.Password != nil && *input.Password != "" {
		password = *input.Password
		if len(password) < MinPasswordLength {
			return invalidField("password", "a senha deve ter pelo menos 6 caracteres")
		}
	}
	if input.Role != nil && !input.Role.Valid() {
		return invalidField("role", "perfil inválido")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return invalidField("nome", "o nome não pode ficar vazio")
	}

	if email != "" || password != "" {
		if err := uc.auth.UpdateUser(id, email, password); err != nil {
			return err
		}
	}

	fields := map[string]interface{}{}
	if email != "" {
		fields["email"] = email
	}
	if input.Name != nil {
		fields["nome"] = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		fields["telefone"] = trimmed(input.Phone)
	}
	if input.Role != nil {
		fields["role"] = *input.Role
	}
	if input.SpecialtyID != nil {
		fields["nucleo_id"] = *input.SpecialtyID
	}
	if input.AvatarURL != nil {
		fields["avatar_url"] = trimmed(input.AvatarURL)
	}
	if input.Active != nil {
		fields["ativo"] = *input.Active
	}
	if len(fields) == 0 {
		return nil
	}

	err := uc.staffRepo.Update(ctx, id, fields)
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	// Usuário sem linha em form_equipe: cria o perfil com o que foi enviado
	staff, err := uc.missingProfile(id, email)
	if err != nil {
		return err
	}
	applyStaffFields(staff, input)
	return uc.staffRepo.Create(ctx, staff)
}

func (uc *userUseCase) missingProfile(id uuid.UUID, email string) (*entities.Staff, error) {
	if email == "" {
		users, err := uc.auth.ListUsers()
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			if u.ID == id {
				email = u.Email
				break
			}
		}
		if email == "" {
			return nil, ErrNotFound
		}
	}

	staff := entities.DefaultStaffProfile(id, email)
	staff.Missing = false
	return &staff, nil
}

func applyStaffFields(staff *entities.Staff, input UpdateUserInput) {
	if input.Name != nil {
		staff.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		staff.Phone = trimmed(input.Phone)
	}
	if input.Role != nil {
		staff.Role = *input.Role
	}
	if input.SpecialtyID != nil {
		staff.SpecialtyID = input.SpecialtyID
	}
	if input.AvatarURL != nil {
		staff.AvatarURL = trimmed(input.AvatarURL)
	}
	if input.Active != nil {
		staff.Active = *input.Active
	}
}

// Delete remove o perfil e depois o usuário do Auth; só a falha no Auth é devolvida
func (uc *userUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.staffRepo.Delete(ctx, id); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		uc.log.Error().Err(err).Str("user_id", id.String()).Msg("Erro ao remover perfil da equipe")
	}
	return uc.auth.DeleteUser(id)
}

// PromoteAdmin torna o usuário do Auth com este email administrador
func (uc *userUseCase) PromoteAdmin(ctx context.Context, email string) (*entities.Staff, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, invalidField("email", "informe o email")
	}

	users, err := uc.auth.ListUsers()
	if err != nil {
		return nil, err
	}

	var user *entities.AuthUser
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, ErrNotFound
	}

	err = uc.staffRepo.Update(ctx, user.ID, map[string]interface{}{"role": entities.RoleAdmin, "ativo": true})
	if errors.Is(err, repositories.ErrNotFound) {
		staff := entities.DefaultStaffProfile(user.ID, user.Email)
		staff.Missing = false
		staff.Role = entities.RoleAdmin
		err = uc.staffRepo.Create(ctx, &staff)
	}
	if err != nil {
		return nil, err
	}

	return uc.staffRepo.FindByID(ctx, user.ID)
}
