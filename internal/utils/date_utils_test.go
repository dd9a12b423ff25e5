package utils

import (
	"testing"
	"time"
)

func TestGenerateDateRange(t *testing.T) {
	loc := GetBrasilLocation()
	from := time.Date(2024, 2, 27, 15, 0, 0, 0, loc)
	to := time.Date(2024, 3, 2, 9, 0, 0, 0, loc)

	got := GenerateDateRange(from, to)
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	if len(got) != len(want) {
		t.Fatalf("GenerateDateRange = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d = %s, want %s", i, got[i], want[i])
		}
	}

	if got := GenerateDateRange(to, from); len(got) != 0 {
		t.Errorf("inverted range should be empty, got %v", got)
	}
}

func TestStartOfDay(t *testing.T) {
	// 02:30 UTC ainda é o dia anterior em São Paulo
	got := StartOfDay(time.Date(2024, 5, 10, 2, 30, 0, 0, time.UTC))
	if got.Day() != 9 || got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("StartOfDay = %v", got)
	}
}
