package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	MaxImageSize = 5 << 20
	MaxVideoSize = 50 << 20

	DefaultUploadFolder = "uploads"
)

// allowedUploads mapeia os tipos aceitos para o tamanho máximo
var allowedUploads = map[string]int64{
	"image/jpeg":      MaxImageSize,
	"image/png":       MaxImageSize,
	"image/webp":      MaxImageSize,
	"image/gif":       MaxImageSize,
	"video/mp4":       MaxVideoSize,
	"video/webm":      MaxVideoSize,
	"video/quicktime": MaxVideoSize,
}

// UploadResult é o arquivo publicado no storage
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type UploadUseCase interface {
	Upload(ctx context.Context, folder, contentType string, size int64, body io.Reader) (*UploadResult, error)
}

type uploadUseCase struct {
	storage ObjectStorage
	log     zerolog.Logger
	now     func() time.Time
}

func NewUploadUseCase(storage ObjectStorage, log zerolog.Logger) UploadUseCase {
	return &uploadUseCase{
		storage: storage,
		log:     log.With().Str("usecase", "upload").Logger(),
		now:     time.Now,
	}
}

// Upload valida tipo declarado, tamanho e conteúdo real antes de enviar ao bucket
func (uc *uploadUseCase) Upload(ctx context.Context, folder, contentType string, size int64, body io.Reader) (*UploadResult, error) {
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))

	limit, ok := allowedUploads[contentType]
	if !ok {
		return nil, invalidField("file", "tipo de arquivo não permitido")
	}
	if size > limit {
		return nil, invalidField("file", fmt.Sprintf("arquivo excede o limite de %d MB", limit>>20))
	}

	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, invalidField("file", "arquivo vazio")
	}
	if int64(len(data)) > limit {
		return nil, invalidField("file", fmt.Sprintf("arquivo excede o limite de %d MB", limit>>20))
	}

	detected := mimetype.Detect(data)
	if !detected.Is(contentType) {
		uc.log.Warn().Str("declarado", contentType).Str("detectado", detected.String()).Msg("Conteúdo do upload não confere com o tipo")
		return nil, invalidField("file", "o conteúdo do arquivo não corresponde ao tipo informado")
	}

	if err := uc.storage.EnsureBucket(); err != nil {
		return nil, err
	}

	path := uploadPath(folder, detected.Extension(), uc.now())
	url, err := uc.storage.Upload(path, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return &UploadResult{URL: url, Path: path}, nil
}

func uploadPath(folder, ext string, now time.Time) string {
	folder = utils.Slugify(folder)
	if folder == "" {
		folder = DefaultUploadFolder
	}
	return fmt.Sprintf("%s/%d-%s%s", folder, now.UnixMilli(), uuid.New().String()[:8], ext)
}
