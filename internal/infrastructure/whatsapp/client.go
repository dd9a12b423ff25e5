package whatsapp

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/config"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"
)

// QRSize é o lado em pixels do PNG de pareamento
const QRSize = 256

// Client envia followups pelo aparelho vinculado via whatsmeow.
// Com WHATSAPP_ENABLED=false o cliente existe mas recusa envios.
type Client struct {
	wa  *whatsmeow.Client
	db  *sql.DB
	log zerolog.Logger

	mu        sync.RWMutex
	connected bool
	qrCode    string
}

var _ usecases.MessageSender = (*Client)(nil)

// Disabled devolve um cliente sem aparelho
func Disabled(log zerolog.Logger) *Client {
	return &Client{log: log.With().Str("component", "whatsapp").Logger()}
}

// New abre o store sqlite do whatsmeow e prepara o cliente. Não conecta.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Client, error) {
	if !cfg.WhatsAppEnabled {
		return Disabled(log), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.WhatsAppStorePath), 0755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório do whatsapp: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.WhatsAppStorePath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir store do whatsapp: %w", err)
	}

	waLog := logger.NewWhatsApp(log)
	container := sqlstore.NewWithDB(db, "sqlite3", waLog.Sub("store"))
	if err := container.Upgrade(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao migrar store do whatsapp: %w", err)
	}

	devices, err := container.GetAllDevices(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao carregar aparelho: %w", err)
	}
	device := container.NewDevice()
	if len(devices) > 0 {
		device = devices[0]
	}

	c := &Client{
		db:  db,
		log: log.With().Str("component", "whatsapp").Logger(),
	}
	c.wa = whatsmeow.NewClient(device, waLog.Sub("client"))
	c.wa.EnableAutoReconnect = true
	c.wa.AddEventHandler(c.handleEvent)

	return c, nil
}

func (c *Client) handleEvent(evt interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := evt.(type) {
	case *events.Connected:
		c.connected = true
		c.qrCode = ""
		c.log.Info().Msg("📱 WhatsApp conectado")
	case *events.Disconnected:
		c.connected = false
		c.log.Warn().Msg("📵 WhatsApp desconectado")
	case *events.LoggedOut:
		c.connected = false
		c.log.Warn().Bool("on_connect", e.OnConnect).Msg("📵 Aparelho desvinculado")
	case *events.PairSuccess:
		c.qrCode = ""
		c.log.Info().Str("jid", e.ID.String()).Msg("✅ Aparelho pareado")
	}
}

// Connect conecta o aparelho. Sem sessão salva, inicia o pareamento por QR.
func (c *Client) Connect(ctx context.Context) error {
	if c.wa == nil {
		return usecases.ErrWhatsAppUnavailable
	}
	if c.wa.IsConnected() {
		return nil
	}

	if c.wa.Store.ID == nil {
		// O canal vive além da requisição que iniciou o pareamento
		qrChan, err := c.wa.GetQRChannel(context.Background())
		if err != nil {
			return fmt.Errorf("erro ao obter canal de QR: %w", err)
		}
		go c.watchQR(qrChan)
	}

	if err := c.wa.Connect(); err != nil {
		return fmt.Errorf("erro ao conectar whatsapp: %w", err)
	}
	return nil
}

func (c *Client) watchQR(qrChan <-chan whatsmeow.QRChannelItem) {
	for item := range qrChan {
		switch item.Event {
		case "code":
			c.mu.Lock()
			c.qrCode = item.Code
			c.mu.Unlock()
			c.log.Info().Msg("🔳 Novo QR de pareamento disponível")
		case "timeout":
			c.setQR("")
			c.log.Warn().Msg("QR de pareamento expirou")
		case "success":
			c.setQR("")
			return
		case "error":
			c.setQR("")
			c.log.Error().Err(item.Error).Msg("Erro no pareamento")
		}
	}
}

func (c *Client) setQR(code string) {
	c.mu.Lock()
	c.qrCode = code
	c.mu.Unlock()
}

// QRCode devolve o PNG do QR de pareamento atual
func (c *Client) QRCode() ([]byte, error) {
	c.mu.RLock()
	code := c.qrCode
	c.mu.RUnlock()

	if code == "" {
		return nil, usecases.ErrNotFound
	}
	return qrcode.Encode(code, qrcode.Medium, QRSize)
}

func (c *Client) Status() usecases.WhatsAppStatus {
	if c.wa == nil {
		return usecases.WhatsAppStatus{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	status := usecases.WhatsAppStatus{
		Enabled:   true,
		Connected: c.connected && c.wa.IsConnected(),
		LoggedIn:  c.wa.IsLoggedIn(),
		HasQR:     c.qrCode != "",
	}
	if c.wa.Store.ID != nil {
		status.JID = c.wa.Store.ID.String()
	}
	return status
}

// SendText envia uma mensagem de texto para um telefone brasileiro
func (c *Client) SendText(ctx context.Context, phone, text string) error {
	if c.wa == nil || !c.wa.IsConnected() || !c.wa.IsLoggedIn() {
		return usecases.ErrWhatsAppUnavailable
	}

	to := RecipientJID(phone)
	_, err := c.wa.SendMessage(ctx, to, &waE2E.Message{
		Conversation: proto.String(text),
	})
	if err != nil {
		return fmt.Errorf("erro ao enviar mensagem para %s: %w", to.User, err)
	}
	return nil
}

// RecipientJID converte o telefone para o JID de usuário do WhatsApp
func RecipientJID(phone string) types.JID {
	return types.NewJID(utils.InternationalPhone(phone), types.DefaultUserServer)
}

// Paired informa se há um aparelho salvo no store
func (c *Client) Paired() bool {
	return c.wa != nil && c.wa.Store.ID != nil
}

func (c *Client) Close() {
	if c.wa != nil {
		c.wa.Disconnect()
	}
	if c.db != nil {
		c.db.Close()
	}
}
