package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New cria o logger da aplicação. pretty usa saída colorida para desenvolvimento.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Nop devolve um logger que descarta tudo, usado nos testes
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
