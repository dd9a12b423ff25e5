package handlers

import (
	"strings"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
)

// DateLayout é o formato das datas recebidas na query string
const DateLayout = "2006-01-02"

// parseDay lê uma data "YYYY-MM-DD" como meia-noite no horário de Brasília
func parseDay(raw string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(raw), utils.GetBrasilLocation())
}

// endOfDay devolve o último instante do dia, para filtros inclusivos
func endOfDay(day time.Time) time.Time {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
