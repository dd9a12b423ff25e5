package usecases

import (
	"context"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/kiosk"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/cache"
	"github.com/google/uuid"
)

// KioskSessionTTL é quanto uma sessão de totem sem chamadas continua viva
const KioskSessionTTL = 12 * time.Hour

// TapResult é a resposta a um toque no logo
type TapResult struct {
	Taps       int  `json:"taps"`
	ExitDialog bool `json:"exit_dialog"`
}

type KioskUseCase interface {
	NewSession(ctx context.Context) (kiosk.Status, error)
	Status(id uuid.UUID) (kiosk.Status, error)
	Activity(id uuid.UUID, event kiosk.Event) (kiosk.Status, error)
	Dismiss(id uuid.UUID) (kiosk.Status, error)
	TapLogo(id uuid.UUID) (TapResult, error)
	CloseExitDialog(id uuid.UUID) (kiosk.Status, error)
	Close(id uuid.UUID)
}

type kioskUseCase struct {
	settings SettingUseCase
	sessions *cache.Cache
}

func NewKioskUseCase(settings SettingUseCase, sessions *cache.Cache) KioskUseCase {
	sessions.OnEvicted(func(_ string, value interface{}) {
		if session, ok := value.(*kiosk.Session); ok {
			session.Close()
		}
	})
	return &kioskUseCase{settings: settings, sessions: sessions}
}

// NewSession abre uma sessão com o tempo de descanso configurado
func (uc *kioskUseCase) NewSession(ctx context.Context) (kiosk.Status, error) {
	session := kiosk.NewSession(uc.settings.KioskTimeout(ctx))
	uc.sessions.Set(session.ID.String(), session, KioskSessionTTL)
	return session.Status(), nil
}

func (uc *kioskUseCase) session(id uuid.UUID) (*kiosk.Session, error) {
	value, found := uc.sessions.Get(id.String())
	if !found {
		return nil, ErrSessionNotFound
	}
	uc.sessions.Touch(id.String(), KioskSessionTTL)
	return value.(*kiosk.Session), nil
}

func (uc *kioskUseCase) Status(id uuid.UUID) (kiosk.Status, error) {
	session, err := uc.session(id)
	if err != nil {
		return kiosk.Status{}, err
	}
	return session.Status(), nil
}

// Activity registra um evento do tablet; eventos que não contam são ignorados
func (uc *kioskUseCase) Activity(id uuid.UUID, event kiosk.Event) (kiosk.Status, error) {
	if !event.Qualifies() {
		return kiosk.Status{}, invalidField("evento", "evento de atividade inválido")
	}
	session, err := uc.session(id)
	if err != nil {
		return kiosk.Status{}, err
	}
	session.Activity(event)
	return session.Status(), nil
}

func (uc *kioskUseCase) Dismiss(id uuid.UUID) (kiosk.Status, error) {
	session, err := uc.session(id)
	if err != nil {
		return kiosk.Status{}, err
	}
	session.Dismiss()
	return session.Status(), nil
}

func (uc *kioskUseCase) TapLogo(id uuid.UUID) (TapResult, error) {
	session, err := uc.session(id)
	if err != nil {
		return TapResult{}, err
	}
	taps, open := session.TapLogo()
	return TapResult{Taps: taps, ExitDialog: open}, nil
}

func (uc *kioskUseCase) CloseExitDialog(id uuid.UUID) (kiosk.Status, error) {
	session, err := uc.session(id)
	if err != nil {
		return kiosk.Status{}, err
	}
	session.CloseExitDialog()
	return session.Status(), nil
}

func (uc *kioskUseCase) Close(id uuid.UUID) {
	uc.sessions.Delete(id.String())
}
