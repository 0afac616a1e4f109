package handlers

import (
	"strings"

	"wrist_surgery_app_go/config"
	"wrist_surgery_app_go/models"
)

const (
	landingTitle       = "Wrist Surgery in Malleshwaram Bangalore | Dr Darshan Kumar Jain"
	landingDescription = "Expert wrist surgery in Malleshwaram, Bangalore by Dr Darshan Kumar A. Jain, orthopedic hand and wrist specialist for pain, fractures, and carpal tunnel."
	landingKeywords    = "wrist surgery Bangalore, wrist surgeon Malleshwaram, wrist fracture treatment, carpal tunnel surgery, hand and wrist specialist"
)

// landingSEO builds the head metadata for the page served at cfg.AppURL
func landingSEO(cfg *config.Config) *models.SEO {
	base := strings.TrimSuffix(cfg.AppURL, "/")
	return models.DefaultSEO(landingTitle, landingDescription).
		WithCanonical(base + "/").
		WithOGImage(base + "/static/images/og-image.png").
		WithKeywords(landingKeywords).
		WithGeo("IN-KA", "Malleshwaram, Bengaluru").
		WithPractice(&models.MedicalPractice{
			Name:          landingContent.Clinic,
			Physician:     "Dr. Darshan Kumar A. Jain",
			Specialty:     "Orthopedic",
			StreetAddress: "Malleshwaram",
			Locality:      "Bengaluru",
			Region:        "Karnataka",
			PostalCode:    "560003",
			Country:       "IN",
			URL:           base + "/",
		})
}
