package models

// Symptom is one of the "do you have these symptoms" cards
type Symptom struct {
	Image string
	Name  string
	Alt   string
}

// TreatmentStep describes one stage of the treatment procedure
type TreatmentStep struct {
	Image       string
	Name        string
	Description string
	Alt         string
}

// Reason is a "why choose us" entry
type Reason struct {
	ID          int
	Name        string
	Description string
}

// FAQ is a question with its answer, rendered as a toggleable list item
type FAQ struct {
	Question string
	Answer   string
}

// PageContent groups the static content blocks of the landing page
type PageContent struct {
	Headline   string
	Doctor     string
	Clinic     string
	Symptoms   []Symptom
	Treatment  []TreatmentStep
	WhyChoose  []Reason
	FAQs       []FAQ
	HeroImage  string
	HeroDelayS int // seconds before the hero image is revealed
}
