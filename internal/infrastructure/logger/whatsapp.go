package logger

import (
	"fmt"

	"github.com/rs/zerolog"
	waLog "go.mau.fi/whatsmeow/util/log"
)

// WhatsApp adapta o zerolog para a interface de log do whatsmeow
type WhatsApp struct {
	log zerolog.Logger
}

var _ waLog.Logger = (*WhatsApp)(nil)

func NewWhatsApp(log zerolog.Logger) *WhatsApp {
	return &WhatsApp{log: log.With().Str("component", "whatsapp").Logger()}
}

func (w *WhatsApp) Debugf(msg string, args ...interface{}) {
	w.log.Debug().Msg(fmt.Sprintf(msg, args...))
}

func (w *WhatsApp) Infof(msg string, args ...interface{}) {
	w.log.Info().Msg(fmt.Sprintf(msg, args...))
}

func (w *WhatsApp) Warnf(msg string, args ...interface{}) {
	w.log.Warn().Msg(fmt.Sprintf(msg, args...))
}

func (w *WhatsApp) Errorf(msg string, args ...interface{}) {
	w.log.Error().Msg(fmt.Sprintf(msg, args...))
}

func (w *WhatsApp) Sub(module string) waLog.Logger {
	return &WhatsApp{log: w.log.With().Str("module", module).Logger()}
}
