package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/wizard"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type formFixture struct {
	uc       FormUseCase
	leads    *fakeLeadRepo
	sessions *cache.Cache
	skin     entities.Question
	dermato  uuid.UUID
}

func newFormFixture(t *testing.T) *formFixture {
	t.Helper()

	dermato := uuid.New()
	skin := entities.Question{Title: "O que incomoda na sua pele?", Type: entities.QuestionMultipleChoice, SpecialtyID: &dermato, Multiple: true, Required: true}
	skin.ID = uuid.New()
	for i, text := range []string{"Acne", "Manchas"} {
		o := entities.Option{QuestionID: skin.ID, Text: text, Letter: entities.OptionLetter(i), Order: i}
		o.ID = uuid.New()
		skin.Options = append(skin.Options, o)
	}

	specialty := entities.Specialty{Name: "Dermatologia", Active: true}
	specialty.ID = dermato

	sessions := cache.New(time.Minute)
	t.Cleanup(sessions.Close)

	leads := &fakeLeadRepo{}
	uc := NewFormUseCase(
		&fakeQuestionRepo{questions: []entities.Question{skin}},
		&fakeSpecialtyRepo{specialties: []entities.Specialty{specialty}},
		leads,
		sessions,
		0,
		zerolog.Nop(),
	)
	return &formFixture{uc: uc, leads: leads, sessions: sessions, skin: skin, dermato: dermato}
}

func TestForm_Payload(t *testing.T) {
	f := newFormFixture(t)

	payload, err := f.uc.Form(context.Background())
	if err != nil {
		t.Fatalf("Form: %v", err)
	}
	if len(payload.Questions) != 1 || len(payload.Specialties) != 1 {
		t.Errorf("unexpected payload %+v", payload)
	}
}

func TestFormSubmit(t *testing.T) {
	f := newFormFixture(t)

	receipt, err := f.uc.Submit(context.Background(), wizard.Submission{
		Name:    "Ana Souza",
		Phone:   "(11) 98765-4321",
		Answers: map[uuid.UUID][]uuid.UUID{f.skin.ID: {f.skin.Options[0].ID, f.skin.Options[1].ID}},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if receipt.Answers != 2 || receipt.Interests != 1 {
		t.Errorf("unexpected receipt %+v", receipt)
	}
	if len(f.leads.leads) != 1 || f.leads.leads[0].WhatsApp != "11987654321" {
		t.Fatalf("lead not stored: %+v", f.leads.leads)
	}
	if f.leads.interests[0].Count != 2 || *f.leads.interests[0].SpecialtyID != f.dermato {
		t.Errorf("unexpected interest %+v", f.leads.interests[0])
	}
}

func TestFormSubmit_Rejections(t *testing.T) {
	f := newFormFixture(t)
	valid := map[uuid.UUID][]uuid.UUID{f.skin.ID: {f.skin.Options[0].ID}}

	submissions := map[string]wizard.Submission{
		"unknown question": {Name: "Ana Souza", Phone: "11987654321", Answers: map[uuid.UUID][]uuid.UUID{uuid.New(): {uuid.New()}}},
		"required answer":  {Name: "Ana Souza", Phone: "11987654321"},
		"short name":       {Name: "An", Phone: "11987654321", Answers: valid},
		"short phone":      {Name: "Ana Souza", Phone: "98765", Answers: valid},
	}
	for name, sub := range submissions {
		var verr *ValidationError
		if _, err := f.uc.Submit(context.Background(), sub); !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", name, err)
		}
	}
	if len(f.leads.leads) != 0 {
		t.Errorf("nothing should be stored, got %d leads", len(f.leads.leads))
	}
}

func TestFormSession_Flow(t *testing.T) {
	f := newFormFixture(t)
	ctx := context.Background()

	snap, err := f.uc.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	id := snap.SessionID

	if _, err := f.uc.Next(id); err == nil {
		t.Fatal("Next on the welcome screen should fail")
	}

	if snap, err = f.uc.Start(id); err != nil || snap.State.Step != wizard.StepQuestions {
		t.Fatalf("Start: %v %v", snap.State.Step, err)
	}

	var verr *ValidationError
	if _, err := f.uc.Next(id); !errors.As(err, &verr) {
		t.Fatalf("required question should block Next, got %v", err)
	}

	if snap, err = f.uc.Select(id, f.skin.ID, f.skin.Options[1].ID); err != nil || !snap.CanGoNext {
		t.Fatalf("Select: %v", err)
	}
	if snap, err = f.uc.Next(id); err != nil || snap.State.Step != wizard.StepContact {
		t.Fatalf("Next: %v %v", snap.State.Step, err)
	}
	if snap, err = f.uc.SetContact(id, "Ana Souza", "11 98765-4321"); err != nil || !snap.CanSubmit {
		t.Fatalf("SetContact: %v", err)
	}

	snap, receipt, err := f.uc.SubmitSession(ctx, id)
	if err != nil {
		t.Fatalf("SubmitSession: %v", err)
	}
	if snap.State.Step != wizard.StepSuccess || receipt.Answers != 1 {
		t.Errorf("unexpected result %v %+v", snap.State.Step, receipt)
	}
	if snap.Countdown != wizard.SuccessCountdownSeconds {
		t.Errorf("countdown = %d", snap.Countdown)
	}

	if snap, err = f.uc.Reset(id); err != nil || snap.State.Step != wizard.StepWelcome {
		t.Errorf("Reset: %v %v", snap.State.Step, err)
	}

	f.uc.CloseSession(id)
	if _, err := f.uc.Snapshot(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after close, got %v", err)
	}
}

func TestFormSession_Unknown(t *testing.T) {
	f := newFormFixture(t)

	if _, err := f.uc.Start(uuid.New()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, _, err := f.uc.SubmitSession(context.Background(), uuid.New()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
