package notify

import (
	"context"

	"wrist_surgery_app_go/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConsoleNotifier logs the lead instead of sending it (EMAIL_TEST_MODE)
type ConsoleNotifier struct {
	logger *zap.Logger
}

func NewConsoleNotifier(logger *zap.Logger) *ConsoleNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleNotifier{logger: logger}
}

func (n *ConsoleNotifier) Channel() string {
	return "console"
}

func (n *ConsoleNotifier) Notify(ctx context.Context, req models.AppointmentRequest) (Ack, error) {
	if err := ctx.Err(); err != nil {
		return Ack{}, err
	}
	email, err := BuildLeadEmail(req)
	if err != nil {
		return Ack{}, err
	}

	id := uuid.NewString()
	n.logger.Info("lead email (test mode, not sent)",
		zap.String("id", id),
		zap.String("subject", email.Subject),
		zap.String("text", email.TextBody),
		zap.String("html", truncate(email.HTMLBody, 500)),
	)
	return Ack{Status: 200, Text: "OK", ID: id}, nil
}
