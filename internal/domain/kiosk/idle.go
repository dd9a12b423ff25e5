// Package kiosk contém as proteções do modo totem: tela de descanso por
// inatividade e saída protegida por toques no logo.
package kiosk

import (
	"sync"
	"time"
)

// Event é um evento de interação vindo do totem
type Event string

const (
	EventPointerDown Event = "pointerdown"
	EventPointerMove Event = "pointermove"
	EventKeyDown     Event = "keydown"
	EventScroll      Event = "scroll"
	EventTouchStart  Event = "touchstart"
)

// Qualifies informa se o evento conta como atividade
func (e Event) Qualifies() bool {
	switch e {
	case EventPointerDown, EventPointerMove, EventKeyDown, EventScroll, EventTouchStart:
		return true
	default:
		return false
	}
}

// DefaultIdleTimeout é usado quando kiosk_timeout_minutes não está configurado
const DefaultIdleTimeout = 5 * time.Minute

// IdleGuard controla a tela de descanso. Ao expirar fica ociosa e não rearma
// sozinha: atividades são ignoradas até Dismiss.
type IdleGuard struct {
	mu      sync.Mutex
	timeout time.Duration
	timer   *time.Timer
	idle    bool
	closed  bool
	onIdle  func()
}

// NewIdleGuard arma o timer imediatamente. onIdle pode ser nil.
func NewIdleGuard(timeout time.Duration, onIdle func()) *IdleGuard {
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	g := &IdleGuard{timeout: timeout, onIdle: onIdle}
	g.mu.Lock()
	g.armLocked()
	g.mu.Unlock()
	return g
}

func (g *IdleGuard) armLocked() {
	if g.timer != nil {
		g.timer.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(g.timeout, func() {
		g.mu.Lock()
		if g.closed || g.timer != timer {
			g.mu.Unlock()
			return
		}
		g.idle = true
		g.timer = nil
		onIdle := g.onIdle
		g.mu.Unlock()

		if onIdle != nil {
			onIdle()
		}
	})
	g.timer = timer
}

// Activity reinicia a contagem. Retorna false quando o evento foi ignorado.
func (g *IdleGuard) Activity(e Event) bool {
	if !e.Qualifies() {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || g.idle {
		return false
	}
	g.armLocked()
	return true
}

// Dismiss fecha a tela de descanso e rearma a contagem
func (g *IdleGuard) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.idle = false
	g.armLocked()
}

func (g *IdleGuard) Idle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.idle
}

func (g *IdleGuard) Timeout() time.Duration {
	return g.timeout
}

// Close para o timer; nenhum callback roda depois disso
func (g *IdleGuard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}
