package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/google/uuid"
)

// Snapshot é a visão do formulário devolvida ao totem
type Snapshot struct {
	SessionID uuid.UUID
	State     State
	Question  *entities.Question
	Total     int
	Progress  float64
	CanGoNext bool
	CanSubmit bool
	// Countdown é o tempo restante na tela de sucesso
	Countdown int
	// Redirect indica que a contagem terminou e o totem deve abrir a vitrine
	Redirect bool
}

// Session hospeda o formulário de um totem no servidor
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	form Form
	tick time.Duration

	mu         sync.Mutex
	state      State
	generation int
	countdown  *Countdown
	remaining  int
	redirect   bool
}

func NewSession(form Form) *Session {
	return newSession(form, time.Second)
}

func newSession(form Form, tick time.Duration) *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		form:      form,
		tick:      tick,
		state:     Initial(),
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID: s.ID,
		State:     s.state.clone(),
		Total:     s.form.Len(),
		Progress:  s.form.Progress(s.state),
		CanGoNext: s.form.CanGoNext(s.state),
		CanSubmit: s.form.CanSubmit(s.state),
		Countdown: s.remaining,
		Redirect:  s.redirect,
	}
	if s.state.Step == StepQuestions {
		if q, ok := s.form.Current(s.state); ok {
			snap.Question = &q
		}
	}
	return snap
}

func (s *Session) apply(fn func(State) (State, error)) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.state)
	if err != nil {
		return s.snapshotLocked(), err
	}
	s.state = next
	return s.snapshotLocked(), nil
}

func (s *Session) Start() (Snapshot, error) {
	s.mu.Lock()
	s.redirect = false
	s.mu.Unlock()
	return s.apply(s.form.Start)
}

// Select marca a opção respeitando a configuração de seleção múltipla da pergunta
func (s *Session) Select(questionID, optionID uuid.UUID) (Snapshot, error) {
	q, ok := s.form.Question(questionID)
	if !ok {
		return s.Snapshot(), ErrUnknownQuestion
	}
	return s.apply(func(st State) (State, error) {
		return s.form.Select(st, questionID, optionID, q.Multiple)
	})
}

func (s *Session) SetText(questionID uuid.UUID, text string) (Snapshot, error) {
	return s.apply(func(st State) (State, error) {
		return s.form.SetText(st, questionID, text)
	})
}

func (s *Session) Next() (Snapshot, error) {
	return s.apply(s.form.Next)
}

func (s *Session) Prev() (Snapshot, error) {
	return s.apply(s.form.Prev)
}

// SetContact atualiza nome e telefone na etapa de contato
func (s *Session) SetContact(name, phone string) (Snapshot, error) {
	return s.apply(func(st State) (State, error) {
		st, err := s.form.SetName(st, name)
		if err != nil {
			return st, err
		}
		return s.form.SetPhone(st, phone)
	})
}

// Submit grava o cadastro. Um segundo envio enquanto o primeiro está em
// andamento é recusado. Em caso de sucesso inicia a contagem para a vitrine.
func (s *Session) Submit(ctx context.Context, store Store) (Snapshot, Receipt, error) {
	s.mu.Lock()
	begun, err := s.form.BeginSubmit(s.state)
	if err != nil {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, Receipt{}, err
	}
	s.state = begun
	generation := s.generation
	s.mu.Unlock()

	final, receipt, err := s.form.Persist(ctx, begun, store)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		// reiniciado durante o envio
		return s.snapshotLocked(), receipt, err
	}
	s.state = final
	if err == nil {
		s.startCountdownLocked()
	}
	return s.snapshotLocked(), receipt, err
}

func (s *Session) startCountdownLocked() {
	generation := s.generation
	s.remaining = SuccessCountdownSeconds
	s.countdown = StartCountdown(SuccessCountdownSeconds, s.tick,
		func(remaining int) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.generation == generation {
				s.remaining = remaining
			}
		},
		func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.generation != generation {
				return
			}
			s.generation++
			s.state = Initial()
			s.countdown = nil
			s.remaining = 0
			s.redirect = true
		},
	)
}

// Reset volta para as boas-vindas e cancela a contagem pendente
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	s.generation++
	s.state = s.form.Reset(s.state)
	s.remaining = 0
	s.redirect = false
	countdown := s.countdown
	s.countdown = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if countdown != nil {
		countdown.Stop()
	}
	return snap
}

// Close libera a contagem pendente. Chamado quando a sessão expira.
func (s *Session) Close() {
	s.mu.Lock()
	s.generation++
	countdown := s.countdown
	s.countdown = nil
	s.mu.Unlock()

	if countdown != nil {
		countdown.Stop()
	}
}
