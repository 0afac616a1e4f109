package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"wrist_surgery_app_go/models"

	"go.uber.org/zap"
)

// EmailJSConfig identifies the EmailJS service, template and account keys
type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string // optional, required when the account enforces it
	URL        string
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJSNotifier sends the lead through an EmailJS template. The request
// fields become the template variables.
type EmailJSNotifier struct {
	cfg    EmailJSConfig
	client *http.Client
	logger *zap.Logger
}

func NewEmailJSNotifier(cfg EmailJSConfig, logger *zap.Logger) *EmailJSNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailJSNotifier{
		cfg:    cfg,
		client: &http.Client{},
		logger: logger,
	}
}

func (n *EmailJSNotifier) Channel() string {
	return "emailjs"
}

// Notify posts to the EmailJS send endpoint. The call is bounded by ctx.
func (n *EmailJSNotifier) Notify(ctx context.Context, req models.AppointmentRequest) (Ack, error) {
	body, err := json.Marshal(emailJSPayload{
		ServiceID:      n.cfg.ServiceID,
		TemplateID:     n.cfg.TemplateID,
		UserID:         n.cfg.PublicKey,
		AccessToken:    n.cfg.PrivateKey,
		TemplateParams: req.TemplateParams(),
	})
	if err != nil {
		return Ack{}, fmt.Errorf("failed to encode emailjs payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return Ack{}, fmt.Errorf("failed to build emailjs request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(httpReq)
	if err != nil {
		n.logger.Error("emailjs send failed", zap.Error(err))
		return Ack{}, fmt.Errorf("%w: emailjs request: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	ack := Ack{Status: resp.StatusCode, Text: strings.TrimSpace(string(text))}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger.Error("emailjs returned error status", zap.Int("status", ack.Status), zap.String("body", ack.Text))
		return ack, fmt.Errorf("%w: emailjs returned status %d: %s", ErrDeliveryFailed, ack.Status, ack.Text)
	}

	n.logger.Info("lead sent via emailjs", zap.Int("status", ack.Status), zap.String("text", ack.Text))
	return ack, nil
}
