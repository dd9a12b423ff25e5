package usecases

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R', 0, 0, 0, 1, 0, 0, 0, 1, 8, 6, 0, 0, 0}

func TestUpload_AcceptsMatchingContent(t *testing.T) {
	storage := &fakeStorage{}
	uc := &uploadUseCase{storage: storage, log: zerolog.Nop(), now: func() time.Time { return time.UnixMilli(1700000000000) }}

	result, err := uc.Upload(context.Background(), "Profissionais", "image/png", int64(len(pngHeader)), bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if !strings.HasPrefix(result.Path, "profissionais/1700000000000-") || !strings.HasSuffix(result.Path, ".png") {
		t.Errorf("unexpected path %q", result.Path)
	}
	if result.URL != "https://cdn.example.com/images/"+result.Path {
		t.Errorf("unexpected url %q", result.URL)
	}
	if storage.ensured != 1 || storage.types[result.Path] != "image/png" {
		t.Errorf("bucket/content type not handled: %+v", storage)
	}
}

func TestUpload_DefaultFolder(t *testing.T) {
	uc := NewUploadUseCase(&fakeStorage{}, zerolog.Nop())
	result, err := uc.Upload(context.Background(), "", "image/png", 0, bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasPrefix(result.Path, DefaultUploadFolder+"/") {
		t.Errorf("unexpected path %q", result.Path)
	}
}

func TestUpload_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		body        []byte
	}{
		{"type not allowed", "application/pdf", 10, []byte("%PDF-1.4")},
		{"declared size too big", "image/png", MaxImageSize + 1, pngHeader},
		{"content does not match", "image/jpeg", int64(len(pngHeader)), pngHeader},
		{"text disguised as image", "image/gif", 5, []byte("hello")},
		{"empty file", "image/png", 0, nil},
		{"body bigger than limit", "image/png", 10, append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &fakeStorage{}
			uc := NewUploadUseCase(storage, zerolog.Nop())

			_, err := uc.Upload(context.Background(), "x", tt.contentType, tt.size, bytes.NewReader(tt.body))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(storage.uploaded) != 0 {
				t.Errorf("nothing should be uploaded")
			}
		})
	}
}
