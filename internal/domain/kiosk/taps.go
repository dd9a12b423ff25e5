package kiosk

import (
	"sync"
	"time"
)

// Valores padrão do gesto de saída: 5 toques com no máximo 500ms entre eles
const (
	DefaultTapWindow  = 500 * time.Millisecond
	DefaultTapsToExit = 5
)

// TapDetector conta toques rápidos no logo do totem
type TapDetector struct {
	mu       sync.Mutex
	window   time.Duration
	required int
	count    int
	last     time.Time
	now      func() time.Time
}

func NewTapDetector(window time.Duration, required int) *TapDetector {
	return newTapDetector(window, required, time.Now)
}

func newTapDetector(window time.Duration, required int, now func() time.Time) *TapDetector {
	if window <= 0 {
		window = DefaultTapWindow
	}
	if required <= 0 {
		required = DefaultTapsToExit
	}
	return &TapDetector{window: window, required: required, now: now}
}

// Tap registra um toque. Quando a sequência atinge o total exigido devolve
// open=true e zera o contador.
func (d *TapDetector) Tap() (count int, open bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if !d.last.IsZero() && now.Sub(d.last) < d.window {
		d.count++
	} else {
		d.count = 1
	}
	d.last = now

	if d.count >= d.required {
		d.count = 0
		return d.required, true
	}
	return d.count, false
}

func (d *TapDetector) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count
}
