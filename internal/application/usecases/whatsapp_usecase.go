package usecases

import "context"

type WhatsAppUseCase interface {
	Status() WhatsAppStatus
	Connect(ctx context.Context) (WhatsAppStatus, error)
	QRCode() ([]byte, error)
}

type whatsAppUseCase struct {
	sender MessageSender
}

func NewWhatsAppUseCase(sender MessageSender) WhatsAppUseCase {
	return &whatsAppUseCase{sender}
}

func (uc *whatsAppUseCase) Status() WhatsAppStatus {
	return uc.sender.Status()
}

func (uc *whatsAppUseCase) Connect(ctx context.Context) (WhatsAppStatus, error) {
	if err := uc.sender.Connect(ctx); err != nil {
		return uc.sender.Status(), err
	}
	return uc.sender.Status(), nil
}

func (uc *whatsAppUseCase) QRCode() ([]byte, error) {
	return uc.sender.QRCode()
}
