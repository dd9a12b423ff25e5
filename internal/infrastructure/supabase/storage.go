package supabase

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/rs/zerolog"
	storage_go "github.com/supabase-community/storage-go"
)

// Storage implementa usecases.ObjectStorage sobre um bucket público
type Storage struct {
	client *storage_go.Client
	bucket string
	log    zerolog.Logger

	mu    sync.Mutex
	ready bool
}

var _ usecases.ObjectStorage = (*Storage)(nil)

// EnsureBucket cria o bucket público se ele ainda não existir. Idempotente.
func (s *Storage) EnsureBucket() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}

	if _, err := s.client.GetBucket(s.bucket); err == nil {
		s.ready = true
		return nil
	}

	_, err := s.client.CreateBucket(s.bucket, storage_go.BucketOptions{Public: true})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return fmt.Errorf("erro ao criar bucket %s: %w", s.bucket, err)
	}

	s.log.Info().Str("bucket", s.bucket).Msg("🪣 Bucket de uploads pronto")
	s.ready = true
	return nil
}

func (s *Storage) Upload(path, contentType string, body io.Reader) (string, error) {
	upsert := false
	_, err := s.client.UploadFile(s.bucket, path, body, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar arquivo %s: %w", path, err)
	}

	return s.client.GetPublicUrl(s.bucket, path).SignedURL, nil
}
