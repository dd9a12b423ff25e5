package supabase

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
)

func TestIsEmailTaken(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{`response status code 422: {"code":422,"error_code":"email_exists","msg":"A user with this email address has already been registered"}`, true},
		{"A user with this email address has already been registered", true},
		{"User already registered", true},
		{"response status code 500: internal error", false},
	}

	for _, tt := range tests {
		if got := isEmailTaken(errors.New(tt.msg)); got != tt.want {
			t.Errorf("isEmailTaken(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestToAuthUser(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	signIn := created.Add(time.Hour)

	got := toAuthUser(types.User{ID: id, Email: "ana@felice.com", CreatedAt: created, LastSignInAt: &signIn})

	if got.ID != id || got.Email != "ana@felice.com" {
		t.Fatalf("unexpected user %+v", got)
	}
	if !got.CreatedAt.Equal(created) || got.LastSignInAt == nil || !got.LastSignInAt.Equal(signIn) {
		t.Errorf("timestamps not copied: %+v", got)
	}
}
