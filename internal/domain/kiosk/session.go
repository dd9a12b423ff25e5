package kiosk

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status é o estado do totem devolvido ao front-end
type Status struct {
	SessionID      uuid.UUID `json:"id"`
	Idle           bool      `json:"idle"`
	ExitDialog     bool      `json:"exit_dialog"`
	Taps           int       `json:"taps"`
	TimeoutSeconds int       `json:"timeout_seconds"`
	LastActivity   time.Time `json:"last_activity"`
}

// Session junta a tela de descanso e o gesto de saída de um totem
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	guard *IdleGuard
	taps  *TapDetector

	mu           sync.Mutex
	exitDialog   bool
	lastActivity time.Time
}

func NewSession(timeout time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.New(),
		CreatedAt:    now,
		guard:        NewIdleGuard(timeout, nil),
		taps:         NewTapDetector(DefaultTapWindow, DefaultTapsToExit),
		lastActivity: now,
	}
}

func (s *Session) Activity(e Event) bool {
	if !s.guard.Activity(e) {
		return false
	}
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
	return true
}

func (s *Session) Dismiss() {
	s.guard.Dismiss()
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// TapLogo registra um toque no logo e abre o diálogo de senha no quinto toque rápido
func (s *Session) TapLogo() (int, bool) {
	count, open := s.taps.Tap()
	if open {
		s.mu.Lock()
		s.exitDialog = true
		s.mu.Unlock()
	}
	return count, open
}

// CloseExitDialog fecha o diálogo de senha (cancelado ou senha aceita)
func (s *Session) CloseExitDialog() {
	s.mu.Lock()
	s.exitDialog = false
	s.mu.Unlock()
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		SessionID:      s.ID,
		Idle:           s.guard.Idle(),
		ExitDialog:     s.exitDialog,
		Taps:           s.taps.Count(),
		TimeoutSeconds: int(s.guard.Timeout().Seconds()),
		LastActivity:   s.lastActivity,
	}
}

func (s *Session) Close() {
	s.guard.Close()
}
