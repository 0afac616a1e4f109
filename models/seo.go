package models

import "encoding/json"

// SEO contains the head metadata of a page
type SEO struct {
	Title       string // <title>
	Description string // Meta description
	Keywords    string // Meta keywords (comma-separated)
	Canonical   string // Canonical URL
	OGImage     string // Open Graph image URL
	OGType      string // website, article...
	TwitterCard string // summary, summary_large_image
	NoIndex     bool
	Locale      string // e.g. "en_IN"
	GeoRegion   string // ISO 3166-2 region for local search, e.g. "IN-KA"
	GeoPlace    string // Human readable place name
	Practice    *MedicalPractice
}

// MedicalPractice feeds the schema.org structured data block
type MedicalPractice struct {
	Name          string
	Physician     string
	Specialty     string
	StreetAddress string
	Locality      string
	Region        string
	PostalCode    string
	Country       string
	Telephone     string
	URL           string
}

// DefaultSEO returns SEO with sensible defaults
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en_IN",
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithOGImage sets the Open Graph image
func (s *SEO) WithOGImage(imageURL string) *SEO {
	s.OGImage = imageURL
	return s
}

// WithKeywords sets meta keywords
func (s *SEO) WithKeywords(keywords string) *SEO {
	s.Keywords = keywords
	return s
}

// WithGeo sets the local-search geo tags
func (s *SEO) WithGeo(region, place string) *SEO {
	s.GeoRegion = region
	s.GeoPlace = place
	return s
}

// WithPractice attaches the practice used for structured data
func (s *SEO) WithPractice(p *MedicalPractice) *SEO {
	s.Practice = p
	return s
}

// StructuredData returns the schema.org MedicalClinic JSON-LD document, or
// an empty string when no practice is set.
func (s *SEO) StructuredData() string {
	if s.Practice == nil {
		return ""
	}
	p := s.Practice
	doc := map[string]interface{}{
		"@context":         "https://schema.org",
		"@type":            "MedicalClinic",
		"name":             p.Name,
		"url":              p.URL,
		"medicalSpecialty": p.Specialty,
		"telephone":        p.Telephone,
		"description":      s.Description,
		"address":          map[string]string{
			"@type":           "PostalAddress",
			"streetAddress":   p.StreetAddress,
			"addressLocality": p.Locality,
			"addressRegion":   p.Region,
			"postalCode":      p.PostalCode,
			"addressCountry":  p.Country,
		},
	}
	if p.Physician != "" {
		doc["employee"] = map[string]string{
			"@type": "Physician",
			"name":  p.Physician,
		}
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return string(b)
}
