package whatsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/rs/zerolog"
)

func TestRecipientJID(t *testing.T) {
	jid := RecipientJID("(11) 98765-4321")
	if got := jid.String(); got != "5511987654321@s.whatsapp.net" {
		t.Fatalf("RecipientJID = %q", got)
	}
}

func TestDisabledClient(t *testing.T) {
	c := Disabled(zerolog.Nop())
	defer c.Close()

	if err := c.SendText(context.Background(), "11987654321", "oi"); !errors.Is(err, usecases.ErrWhatsAppUnavailable) {
		t.Errorf("SendText err = %v, want ErrWhatsAppUnavailable", err)
	}
	if err := c.Connect(context.Background()); !errors.Is(err, usecases.ErrWhatsAppUnavailable) {
		t.Errorf("Connect err = %v, want ErrWhatsAppUnavailable", err)
	}
	if _, err := c.QRCode(); !errors.Is(err, usecases.ErrNotFound) {
		t.Errorf("QRCode err = %v, want ErrNotFound", err)
	}
	if status := c.Status(); status.Enabled || status.Connected {
		t.Errorf("unexpected status %+v", status)
	}
}

func TestQRCodeEncodesCurrentCode(t *testing.T) {
	c := Disabled(zerolog.Nop())
	c.setQR("2@abc,def,ghi")

	png, err := c.QRCode()
	if err != nil {
		t.Fatalf("QRCode: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Fatalf("expected PNG bytes, got %d bytes", len(png))
	}
}
