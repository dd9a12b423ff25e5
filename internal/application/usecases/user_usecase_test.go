package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestUserUseCase_CreateValidation(t *testing.T) {
	uc := NewUserUseCase(&fakeAuth{}, newFakeStaffRepo(), zerolog.Nop())

	tests := []struct {
		name  string
		input CreateUserInput
	}{
		{"missing email", CreateUserInput{Password: "segredo123", Name: "Ana"}},
		{"missing password", CreateUserInput{Email: "ana@felice.com", Name: "Ana"}},
		{"missing name", CreateUserInput{Email: "ana@felice.com", Password: "segredo123"}},
		{"invalid email", CreateUserInput{Email: "ana", Password: "segredo123", Name: "Ana"}},
		{"short password", CreateUserInput{Email: "ana@felice.com", Password: "123", Name: "Ana"}},
		{"invalid role", CreateUserInput{Email: "ana@felice.com", Password: "segredo123", Name: "Ana", Role: "dono"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tt.input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUserUseCase_CreateEmailTaken(t *testing.T) {
	auth := &fakeAuth{users: []entities.AuthUser{{ID: uuid.New(), Email: "ana@felice.com"}}}
	uc := NewUserUseCase(auth, newFakeStaffRepo(), zerolog.Nop())

	_, err := uc.Create(context.Background(), CreateUserInput{Email: "ANA@felice.com", Password: "segredo123", Name: "Ana"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserUseCase_CreateDefaultsToAttendant(t *testing.T) {
	staff := newFakeStaffRepo()
	uc := NewUserUseCase(&fakeAuth{}, staff, zerolog.Nop())

	user, err := uc.Create(context.Background(), CreateUserInput{Email: "bia@felice.com", Password: "segredo123", Name: " Bia "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	row, ok := staff.rows[user.ID]
	if !ok {
		t.Fatal("staff row not created")
	}
	if row.Role != entities.RoleAttendant || row.Name != "Bia" || !row.Active {
		t.Errorf("unexpected staff row %+v", row)
	}
}

func TestUserUseCase_CreateCompensatesStaffFailure(t *testing.T) {
	auth := &fakeAuth{}
	staff := newFakeStaffRepo()
	staff.createErr = errBackend
	uc := NewUserUseCase(auth, staff, zerolog.Nop())

	_, err := uc.Create(context.Background(), CreateUserInput{Email: "caio@felice.com", Password: "segredo123", Name: "Caio"})
	if !errors.Is(err, errBackend) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if len(auth.deleted) != 1 || auth.deleted[0] != auth.users[0].ID {
		t.Fatalf("auth user should be deleted after staff failure, deleted=%v", auth.deleted)
	}
}

func TestUserUseCase_ListFillsMissingProfiles(t *testing.T) {
	withProfile := entities.AuthUser{ID: uuid.New(), Email: "ana@felice.com", CreatedAt: time.Now()}
	withoutProfile := entities.AuthUser{ID: uuid.New(), Email: "joao.silva@felice.com", CreatedAt: time.Now()}

	auth := &fakeAuth{users: []entities.AuthUser{withProfile, withoutProfile}}
	staff := newFakeStaffRepo(entities.Staff{ID: withProfile.ID, Name: "Ana", Email: withProfile.Email, Role: entities.RoleAdmin, Active: true})
	uc := NewUserUseCase(auth, staff, zerolog.Nop())

	accounts, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}

	if accounts[0].Staff.Missing || accounts[0].Staff.Role != entities.RoleAdmin {
		t.Errorf("existing profile changed: %+v", accounts[0].Staff)
	}

	missing := accounts[1].Staff
	if !missing.Missing || missing.Name != "joao.silva" || missing.Role != entities.RoleAttendant || !missing.Active {
		t.Errorf("unexpected default profile: %+v", missing)
	}
}

func TestUserUseCase_UpdateCreatesMissingProfile(t *testing.T) {
	user := entities.AuthUser{ID: uuid.New(), Email: "dani@felice.com"}
	auth := &fakeAuth{users: []entities.AuthUser{user}}
	staff := newFakeStaffRepo()
	uc := NewUserUseCase(auth, staff, zerolog.Nop())

	role := entities.RoleManager
	name := "Daniela"
	if err := uc.Update(context.Background(), user.ID, UpdateUserInput{Name: &name, Role: &role}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	row, ok := staff.rows[user.ID]
	if !ok {
		t.Fatal("staff row should be created")
	}
	if row.Name != "Daniela" || row.Role != entities.RoleManager || row.Email != user.Email || row.Missing {
		t.Errorf("unexpected row %+v", row)
	}
	if len(auth.updated) != 0 {
		t.Errorf("credentials should not change without email/password")
	}
}

func TestUserUseCase_UpdateCredentials(t *testing.T) {
	user := entities.AuthUser{ID: uuid.New(), Email: "eva@felice.com"}
	auth := &fakeAuth{users: []entities.AuthUser{user}}
	staff := newFakeStaffRepo(entities.Staff{ID: user.ID, Name: "Eva", Email: user.Email, Role: entities.RoleAttendant})
	uc := NewUserUseCase(auth, staff, zerolog.Nop())

	email := "eva.nova@felice.com"
	if err := uc.Update(context.Background(), user.ID, UpdateUserInput{Email: &email}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(auth.updated) != 1 {
		t.Fatalf("expected auth update")
	}
	if staff.rows[user.ID].Email != email {
		t.Errorf("staff email not updated: %+v", staff.rows[user.ID])
	}
}

func TestUserUseCase_DeleteIgnoresStaffFailure(t *testing.T) {
	id := uuid.New()
	auth := &fakeAuth{}
	staff := newFakeStaffRepo()
	staff.deleteErr = errBackend
	uc := NewUserUseCase(auth, staff, zerolog.Nop())

	if err := uc.Delete(context.Background(), id); err != nil {
		t.Fatalf("staff failure should only be logged, got %v", err)
	}

	auth.deleteErr = errBackend
	if err := uc.Delete(context.Background(), id); !errors.Is(err, errBackend) {
		t.Fatalf("auth failure should be returned, got %v", err)
	}
}

func TestUserUseCase_PromoteAdmin(t *testing.T) {
	user := entities.AuthUser{ID: uuid.New(), Email: "gerente@felice.com"}
	auth := &fakeAuth{users: []entities.AuthUser{user}}
	staff := newFakeStaffRepo()
	uc := NewUserUseCase(auth, staff, zerolog.Nop())

	promoted, err := uc.PromoteAdmin(context.Background(), "Gerente@Felice.com")
	if err != nil {
		t.Fatalf("PromoteAdmin: %v", err)
	}
	if promoted.Role != entities.RoleAdmin || promoted.Name != "gerente" {
		t.Errorf("unexpected profile %+v", promoted)
	}

	if _, err := uc.PromoteAdmin(context.Background(), "ninguem@felice.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthUseCase_ProfileBackfill(t *testing.T) {
	user := entities.AuthUser{ID: uuid.New(), Email: "novo@felice.com"}
	uc := NewAuthUseCase(&fakeAuth{users: []entities.AuthUser{user}}, newFakeStaffRepo(), zerolog.Nop())

	profile, err := uc.Profile(context.Background(), user)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if !profile.Missing || profile.Name != "novo" || profile.Role != entities.RoleAttendant {
		t.Errorf("unexpected profile %+v", profile)
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	user := entities.AuthUser{ID: uuid.New(), Email: "ana@felice.com"}
	staff := newFakeStaffRepo(entities.Staff{ID: user.ID, Name: "Ana", Active: true, Role: entities.RoleAdmin})
	uc := NewAuthUseCase(&fakeAuth{users: []entities.AuthUser{user}}, staff, zerolog.Nop())

	session, profile, err := uc.Login(context.Background(), " ANA@felice.com ", "segredo123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.AccessToken != "token" || profile.Name != "Ana" {
		t.Errorf("unexpected login result %+v %+v", session, profile)
	}

	if _, _, err := uc.Login(context.Background(), "ana@felice.com", "errada"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	staff.rows[user.ID] = entities.Staff{ID: user.ID, Name: "Ana", Active: false}
	if _, _, err := uc.Login(context.Background(), "ana@felice.com", "segredo123"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("inactive staff should be refused, got %v", err)
	}
}

func TestAuthUseCase_RecoverHidesBackendErrors(t *testing.T) {
	uc := NewAuthUseCase(&fakeAuth{}, newFakeStaffRepo(), zerolog.Nop())

	if err := uc.RecoverPassword("ana@felice.com"); err != nil {
		t.Errorf("RecoverPassword should not leak errors, got %v", err)
	}
	var verr *ValidationError
	if err := uc.RecoverPassword("  "); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for empty email, got %v", err)
	}
}
