package notify

import (
	"context"
	"errors"
	"fmt"

	"wrist_surgery_app_go/config"
	"wrist_surgery_app_go/models"

	"go.uber.org/zap"
)

// ErrDeliveryFailed wraps every delivery channel failure
var ErrDeliveryFailed = errors.New("lead delivery failed")

// Ack is the delivery channel's acknowledgement
type Ack struct {
	Status int
	Text   string
	ID     string
}

// LeadNotifier delivers an appointment request to the practice
type LeadNotifier interface {
	Notify(ctx context.Context, req models.AppointmentRequest) (Ack, error)
	Channel() string
}

// NewNotifier picks the delivery channel from configuration. In email test
// mode nothing leaves the process.
func NewNotifier(cfg *config.Config, logger *zap.Logger) (LeadNotifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.EmailTestMode {
		return NewConsoleNotifier(logger), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.DeliveryChannel {
	case config.ChannelEmailJS:
		return NewEmailJSNotifier(EmailJSConfig{
			ServiceID:  cfg.EmailJSServiceID,
			TemplateID: cfg.EmailJSTemplateID,
			PublicKey:  cfg.EmailJSPublicKey,
			PrivateKey: cfg.EmailJSPrivateKey,
			URL:        cfg.EmailJSAPIURL,
		}, logger), nil
	case config.ChannelResend:
		return NewResendNotifier(cfg.ResendAPIKey, formatFrom(cfg.EmailFromName, cfg.EmailFrom), cfg.LeadRecipient, logger), nil
	case config.ChannelSendGrid:
		return NewSendGridNotifier(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName, cfg.LeadRecipient, logger), nil
	}
	return nil, fmt.Errorf("unknown delivery channel %q", cfg.DeliveryChannel)
}

func formatFrom(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}
