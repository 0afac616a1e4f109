package notify

import (
	"context"
	"fmt"

	"wrist_surgery_app_go/models"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendNotifier mails the lead to the practice inbox through Resend
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     string
	logger *zap.Logger
}

func NewResendNotifier(apiKey, from, to string, logger *zap.Logger) *ResendNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
		logger: logger,
	}
}

func (n *ResendNotifier) Channel() string {
	return "resend"
}

func (n *ResendNotifier) Notify(ctx context.Context, req models.AppointmentRequest) (Ack, error) {
	email, err := BuildLeadEmail(req)
	if err != nil {
		return Ack{}, err
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		n.logger.Error("resend send failed", zap.Error(err))
		return Ack{}, fmt.Errorf("%w: resend: %v", ErrDeliveryFailed, err)
	}

	n.logger.Info("lead sent via resend", zap.String("id", sent.Id))
	return Ack{Status: 200, Text: "OK", ID: sent.Id}, nil
}
