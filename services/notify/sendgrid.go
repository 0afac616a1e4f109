package notify

import (
	"context"
	"fmt"

	"wrist_surgery_app_go/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridNotifier mails the lead to the practice inbox through SendGrid
type SendGridNotifier struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	to        string
	logger    *zap.Logger
}

func NewSendGridNotifier(apiKey, fromEmail, fromName, to string, logger *zap.Logger) *SendGridNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		to:        to,
		logger:    logger,
	}
}

func (n *SendGridNotifier) Channel() string {
	return "sendgrid"
}

func (n *SendGridNotifier) Notify(ctx context.Context, req models.AppointmentRequest) (Ack, error) {
	email, err := BuildLeadEmail(req)
	if err != nil {
		return Ack{}, err
	}

	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail("", n.to)
	message := mail.NewSingleEmail(from, email.Subject, to, email.TextBody, email.HTMLBody)

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		n.logger.Error("sendgrid send failed", zap.Error(err))
		return Ack{}, fmt.Errorf("%w: sendgrid: %v", ErrDeliveryFailed, err)
	}

	ack := Ack{Status: response.StatusCode, Text: response.Body}
	if response.StatusCode >= 400 {
		n.logger.Error("sendgrid returned error status", zap.Int("status", response.StatusCode), zap.String("body", response.Body))
		return ack, fmt.Errorf("%w: sendgrid returned status %d", ErrDeliveryFailed, response.StatusCode)
	}

	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		ack.ID = ids[0]
	}
	n.logger.Info("lead sent via sendgrid", zap.Int("status", response.StatusCode))
	return ack, nil
}
