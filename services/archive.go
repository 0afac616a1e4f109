package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wrist_surgery_app_go/models"
)

// LeadArchiveKey returns the object key of a lead: leads/YYYY/MM/DD/<id>.json
func LeadArchiveKey(lead *models.Lead) string {
	created := lead.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return fmt.Sprintf("leads/%s/%s.json", created.UTC().Format("2006/01/02"), lead.ID)
}

// LeadArchive keeps a JSON copy of every lead in object storage
type LeadArchive struct {
	storage StorageProvider
}

func NewLeadArchive(storage StorageProvider) *LeadArchive {
	return &LeadArchive{storage: storage}
}

// Archive stores the lead and returns its key
func (a *LeadArchive) Archive(ctx context.Context, lead *models.Lead) (string, error) {
	if a == nil || a.storage == nil || !a.storage.IsConfigured() {
		return "", fmt.Errorf("lead archive not configured")
	}

	body, err := json.Marshal(lead)
	if err != nil {
		return "", fmt.Errorf("failed to encode lead: %w", err)
	}

	key := LeadArchiveKey(lead)
	if _, err := a.storage.UploadReader(ctx, bytes.NewReader(body), key, "application/json", int64(len(body))); err != nil {
		return "", err
	}
	return key, nil
}

// Load reads an archived lead back
func (a *LeadArchive) Load(ctx context.Context, key string) (*models.Lead, error) {
	reader, _, err := a.storage.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var lead models.Lead
	if err := json.NewDecoder(reader).Decode(&lead); err != nil {
		return nil, fmt.Errorf("failed to decode archived lead: %w", err)
	}
	return &lead, nil
}
