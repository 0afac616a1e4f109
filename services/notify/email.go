package notify

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"unicode/utf8"

	"wrist_surgery_app_go/models"
)

//go:embed templates/*
var templateFS embed.FS

var (
	leadHTML = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/lead.html"))
	leadText = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/lead.txt"))
)

// Email represents an email message
type Email struct {
	Subject  string
	HTMLBody string
	TextBody string
}

// BuildLeadEmail renders the lead notification sent to the practice
func BuildLeadEmail(req models.AppointmentRequest) (*Email, error) {
	var html, text bytes.Buffer
	if err := leadHTML.Execute(&html, req); err != nil {
		return nil, fmt.Errorf("failed to render lead html: %w", err)
	}
	if err := leadText.Execute(&text, req); err != nil {
		return nil, fmt.Errorf("failed to render lead text: %w", err)
	}

	return &Email{
		Subject:  fmt.Sprintf("New appointment request: %s (%s)", req.PatientName, req.PageName),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}

// truncate cuts s to at most maxLen bytes without splitting a rune
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
