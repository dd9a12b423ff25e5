package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/kiosk"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func newKioskUseCase(t *testing.T, minutes string) KioskUseCase {
	t.Helper()
	sessions := cache.New(time.Minute)
	t.Cleanup(sessions.Close)
	settings := NewSettingUseCase(&fakeSettingRepo{values: map[string]*string{entities.SettingKioskTimeoutMinutes: str(minutes)}}, zerolog.Nop())
	return NewKioskUseCase(settings, sessions)
}

func TestKioskSession_UsesConfiguredTimeout(t *testing.T) {
	uc := newKioskUseCase(t, "2")

	status, err := uc.NewSession(context.Background())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer uc.Close(status.SessionID)

	if status.TimeoutSeconds != 120 || status.Idle {
		t.Errorf("unexpected status %+v", status)
	}
}

func TestKioskActivity(t *testing.T) {
	uc := newKioskUseCase(t, "5")
	status, _ := uc.NewSession(context.Background())
	defer uc.Close(status.SessionID)

	if _, err := uc.Activity(status.SessionID, kiosk.EventTouchStart); err != nil {
		t.Errorf("Activity: %v", err)
	}

	var verr *ValidationError
	if _, err := uc.Activity(status.SessionID, kiosk.Event("resize")); !errors.As(err, &verr) {
		t.Errorf("unknown event should be rejected, got %v", err)
	}
	if _, err := uc.Activity(uuid.New(), kiosk.EventKeyDown); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestKioskTapLogo(t *testing.T) {
	uc := newKioskUseCase(t, "5")
	status, _ := uc.NewSession(context.Background())
	defer uc.Close(status.SessionID)

	var result TapResult
	for i := 0; i < kiosk.DefaultTapsToExit; i++ {
		var err error
		if result, err = uc.TapLogo(status.SessionID); err != nil {
			t.Fatalf("TapLogo: %v", err)
		}
	}
	if !result.ExitDialog {
		t.Fatalf("exit dialog should open after %d taps: %+v", kiosk.DefaultTapsToExit, result)
	}

	after, err := uc.CloseExitDialog(status.SessionID)
	if err != nil || after.ExitDialog {
		t.Errorf("dialog should be closed: %+v %v", after, err)
	}
}

func TestKioskClose(t *testing.T) {
	uc := newKioskUseCase(t, "5")
	status, _ := uc.NewSession(context.Background())

	uc.Close(status.SessionID)
	if _, err := uc.Status(status.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
