package usecases

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
)

// KioskQRSize é o lado em pixels do QR exibido no totem
const KioskQRSize = 320

// KioskConfig é a configuração pública lida pelo totem
type KioskConfig struct {
	TimeoutMinutes int    `json:"timeout_minutes"`
	CompanyName    string `json:"empresa_nome"`
	WhatsAppLink   string `json:"whatsapp_link,omitempty"`
}

type SettingUseCase interface {
	List(ctx context.Context) ([]entities.Setting, error)
	Update(ctx context.Context, values map[string]*string) ([]entities.Setting, error)
	KioskConfig(ctx context.Context) (*KioskConfig, error)
	KioskTimeout(ctx context.Context) time.Duration
	VerifyKioskPassword(ctx context.Context, password string) error
	KioskWhatsAppQR(ctx context.Context) ([]byte, error)
}

type settingUseCase struct {
	settingRepo repositories.SettingRepository
	log         zerolog.Logger
}

func NewSettingUseCase(settingRepo repositories.SettingRepository, log zerolog.Logger) SettingUseCase {
	return &settingUseCase{
		settingRepo: settingRepo,
		log:         log.With().Str("usecase", "setting").Logger(),
	}
}

func (uc *settingUseCase) List(ctx context.Context) ([]entities.Setting, error) {
	return uc.settingRepo.List(ctx)
}

// Update grava cada par chave/valor com upsert pela chave
func (uc *settingUseCase) Update(ctx context.Context, values map[string]*string) ([]entities.Setting, error) {
	if len(values) == 0 {
		return nil, invalid("nenhuma configuração informada")
	}

	for key, value := range values {
		if err := validateSetting(key, value); err != nil {
			return nil, err
		}
	}

	for key, value := range values {
		if err := uc.settingRepo.Upsert(ctx, key, value); err != nil {
			return nil, err
		}
	}
	return uc.settingRepo.List(ctx)
}

func validateSetting(key string, value *string) error {
	if strings.TrimSpace(key) == "" {
		return invalid("chave de configuração vazia")
	}

	v := ""
	if value != nil {
		v = strings.TrimSpace(*value)
	}

	switch key {
	case entities.SettingKioskPassword:
		if v == "" {
			return invalidField(key, "a senha do totem não pode ficar vazia")
		}
	case entities.SettingKioskTimeoutMinutes:
		if minutes, err := strconv.Atoi(v); err != nil || minutes < 1 {
			return invalidField(key, "informe um número de minutos maior que zero")
		}
	case entities.SettingCompanyWhatsApp:
		if v != "" && !utils.IsValidPhone(v) {
			return invalidField(key, "WhatsApp inválido")
		}
	}
	return nil
}

// value lê uma configuração; ausência ou valor vazio devolvem ""
func (uc *settingUseCase) value(ctx context.Context, key string) string {
	setting, err := uc.settingRepo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			uc.log.Error().Err(err).Str("chave", key).Msg("Erro ao ler configuração")
		}
		return ""
	}
	if setting.Value == nil {
		return ""
	}
	return strings.TrimSpace(*setting.Value)
}

func (uc *settingUseCase) KioskConfig(ctx context.Context) (*KioskConfig, error) {
	cfg := &KioskConfig{
		TimeoutMinutes: int(uc.KioskTimeout(ctx) / time.Minute),
		CompanyName:    uc.value(ctx, entities.SettingCompanyName),
	}
	if phone := uc.value(ctx, entities.SettingCompanyWhatsApp); phone != "" {
		cfg.WhatsAppLink = utils.WhatsAppLink(phone, "")
	}
	return cfg, nil
}

func (uc *settingUseCase) KioskTimeout(ctx context.Context) time.Duration {
	minutes, err := strconv.Atoi(uc.value(ctx, entities.SettingKioskTimeoutMinutes))
	if err != nil || minutes < 1 {
		minutes = entities.DefaultKioskTimeoutMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// VerifyKioskPassword compara com a senha configurada, ou com a senha padrão
func (uc *settingUseCase) VerifyKioskPassword(ctx context.Context, password string) error {
	if password == "" {
		return invalidField("password", "informe a senha")
	}

	secret := uc.value(ctx, entities.SettingKioskPassword)
	if secret == "" {
		secret = entities.DefaultKioskPassword
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(secret)) != 1 {
		return ErrInvalidKioskPassword
	}
	return nil
}

// KioskWhatsAppQR gera o QR do link wa.me da clínica
func (uc *settingUseCase) KioskWhatsAppQR(ctx context.Context) ([]byte, error) {
	phone := uc.value(ctx, entities.SettingCompanyWhatsApp)
	if phone == "" {
		return nil, ErrNotFound
	}
	return qrcode.Encode(utils.WhatsAppLink(phone, ""), qrcode.Medium, KioskQRSize)
}
