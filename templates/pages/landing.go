package pages

import (
	"embed"
	"html/template"

	"wrist_surgery_app_go/models"
	"wrist_surgery_app_go/services"

	"github.com/a-h/templ"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"jsonLD": func(s string) template.JS { return template.JS(s) },
	"inc":    func(i int) int { return i + 1 },
}

var views = template.Must(template.New("pages").Funcs(funcs).ParseFS(files, "*.html"))

// GeoView carries the position request options to the page script
type GeoView struct {
	Endpoint           string
	EnableHighAccuracy bool
	TimeoutMillis      int64
	MaximumAgeMillis   int64
}

// FormView is the appointment form partial
type FormView struct {
	State            services.FormState
	CSRFToken        string
	Location         string
	TurnstileSiteKey string
}

// LandingView is the full landing page
type LandingView struct {
	SEO        *models.SEO
	Content    models.PageContent
	Form       FormView
	Geo        GeoView
	Nonce      string
	CSSURL     string
	JSURL      string
	FaviconURL string
	Year       int
}

// Landing renders the full page
func Landing(v LandingView) templ.Component {
	return templ.FromGoHTML(views.Lookup("landing"), v)
}

// AppointmentForm renders only the form, for HTMX swaps
func AppointmentForm(v FormView) templ.Component {
	return templ.FromGoHTML(views.Lookup("appointment_form"), v)
}
