package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead delivery status
const (
	LeadStatusDelivered = "delivered"
	LeadStatusFailed    = "failed"
)

// Lead is the delivery log entry for one appointment request
type Lead struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PatientName  string `gorm:"not null" json:"patient_name"`
	MobileNumber string `gorm:"not null;index" json:"mobile_number"`
	Location     string `json:"location"`
	PageName     string `json:"page_name"`
	DomainName   string `json:"domain_name"`

	// Delivery outcome
	Channel        string `gorm:"not null" json:"channel"`
	Status         string `gorm:"not null;index" json:"status"`
	ProviderStatus int    `json:"provider_status,omitempty"`
	ProviderRef    string `json:"provider_ref,omitempty"`
	Error          string `gorm:"type:text" json:"error,omitempty"`

	// Audit fields
	IPAddress  string `json:"ip_address,omitempty"`
	UserAgent  string `gorm:"type:text" json:"user_agent,omitempty"`
	ArchiveKey string `json:"archive_key,omitempty"`
}

// BeforeCreate hook to generate UUID
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// NewLeadFromRequest copies the request fields into a fresh log entry
func NewLeadFromRequest(req AppointmentRequest, channel string) *Lead {
	return &Lead{
		ID:           uuid.New().String(),
		PatientName:  req.PatientName,
		MobileNumber: req.MobileNumber,
		Location:     req.ResolvedLocation,
		PageName:     req.PageName,
		DomainName:   req.DomainName,
		Channel:      channel,
	}
}

// IsDelivered reports whether the lead reached the delivery channel
func (l *Lead) IsDelivered() bool {
	return l.Status == LeadStatusDelivered
}
