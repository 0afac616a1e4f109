package services

import (
	"context"
	"errors"
	"html"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"wrist_surgery_app_go/config"
	"wrist_surgery_app_go/models"
	"wrist_surgery_app_go/services/metrics"
	"wrist_surgery_app_go/services/notify"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNameInvalid        = errors.New("name must be at least 2 characters")
	ErrPhoneInvalid       = errors.New("mobile number must be 10 digits starting with 6-9")
	ErrSubmissionInFlight = errors.New("submission already in progress")
)

// Messages shown next to the fields and after a submit
const (
	NameErrorMessage  = "Please enter your name (at least 2 characters)."
	PhoneErrorMessage = "Please enter a valid 10-digit mobile number."
	FlashSuccess      = "Appointment booked successfully! We will contact you soon."
	FlashFailure      = "Failed to book appointment. Please try again."
	FlashBusy         = "Your request is already being sent. Please wait."
)

const minNameLength = 2

var (
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	namePolicy    = bluemonday.StrictPolicy()
)

// AppointmentForm holds the two user-entered fields
type AppointmentForm struct {
	PatientName  string `form:"patient_name"`
	MobileNumber string `form:"mobile_number"`
}

// Sanitized returns the copy handed to the delivery channel, with markup
// stripped from the name. The form keeps the values as typed.
func (f AppointmentForm) Sanitized() AppointmentForm {
	return AppointmentForm{
		PatientName:  html.UnescapeString(namePolicy.Sanitize(f.PatientName)),
		MobileNumber: f.MobileNumber,
	}
}

// FormErrors carries one message per invalid field, empty when valid
type FormErrors struct {
	Name  string
	Phone string
}

func (e FormErrors) Any() bool {
	return e.Name != "" || e.Phone != ""
}

// Err returns the field errors as sentinel errors, nil when valid
func (e FormErrors) Err() error {
	var errs []error
	if e.Name != "" {
		errs = append(errs, ErrNameInvalid)
	}
	if e.Phone != "" {
		errs = append(errs, ErrPhoneInvalid)
	}
	return errors.Join(errs...)
}

// Validate checks the values as typed: a name of at least two characters
// and a mobile number matching the pattern exactly.
func (f AppointmentForm) Validate() FormErrors {
	var errs FormErrors
	if utf8.RuneCountInString(f.PatientName) < minNameLength {
		errs.Name = NameErrorMessage
	}
	if !mobilePattern.MatchString(f.MobileNumber) {
		errs.Phone = PhoneErrorMessage
	}
	return errs
}

// SubmissionState is the position of one submit in the form's state machine
type SubmissionState string

const (
	StateIdle             SubmissionState = "idle"
	StateValidationFailed SubmissionState = "validation_failed"
	StateSubmitting       SubmissionState = "submitting"
	StateSucceeded        SubmissionState = "succeeded"
	StateFailed           SubmissionState = "failed"
)

// FormState is everything the form partial needs to render
type FormState struct {
	Values    AppointmentForm
	Submitted bool // a submit was attempted, field errors are visible
	Errors    FormErrors
	State     SubmissionState
	Flash     string
	LeadID    string
}

func NewFormState() FormState {
	return FormState{State: StateIdle}
}

// ShowErrors reports whether field-level errors should be displayed
func (s FormState) ShowErrors() bool {
	return s.Submitted && s.Errors.Any()
}

func (s FormState) Succeeded() bool {
	return s.State == StateSucceeded
}

func (s FormState) Failed() bool {
	return s.State == StateFailed
}

// SubmissionMeta identifies who submitted
type SubmissionMeta struct {
	VisitorKey string // guards re-entrant submits from one browser; empty skips the guard
	IPAddress  string
	UserAgent  string
}

// AppointmentWorkflow validates a lead, delivers it and reports the outcome
type AppointmentWorkflow struct {
	notifier   notify.LeadNotifier
	db         *gorm.DB
	archive    *LeadArchive
	metrics    *metrics.Metrics
	logger     *zap.Logger
	pageName   string
	domainName string
	timeout    time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewAppointmentWorkflow wires a workflow. db and archive may be nil, in
// which case leads are only delivered.
func NewAppointmentWorkflow(cfg *config.Config, notifier notify.LeadNotifier, dbConn *gorm.DB, archive *LeadArchive, m *metrics.Metrics, logger *zap.Logger) *AppointmentWorkflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.DeliveryTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AppointmentWorkflow{
		notifier:   notifier,
		db:         dbConn,
		archive:    archive,
		metrics:    m,
		logger:     logger,
		pageName:   cfg.PageName,
		domainName: cfg.DomainName,
		timeout:    timeout,
		inFlight:   make(map[string]struct{}),
	}
}

// Submitting reports whether a delivery for the visitor is in flight
func (w *AppointmentWorkflow) Submitting(visitorKey string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.inFlight[visitorKey]
	return ok
}

func (w *AppointmentWorkflow) begin(visitorKey string) error {
	if visitorKey == "" {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.inFlight[visitorKey]; ok {
		return ErrSubmissionInFlight
	}
	w.inFlight[visitorKey] = struct{}{}
	return nil
}

func (w *AppointmentWorkflow) finish(visitorKey string) {
	if visitorKey == "" {
		return
	}
	w.mu.Lock()
	delete(w.inFlight, visitorKey)
	w.mu.Unlock()
}

// Submit runs one submission cycle. Invalid input never reaches the
// delivery channel. A successful delivery clears the form; a failed one
// keeps the values for a retry.
func (w *AppointmentWorkflow) Submit(ctx context.Context, form AppointmentForm, location string, meta SubmissionMeta) FormState {
	state := FormState{
		Values:    form,
		Submitted: true,
		Errors:    form.Validate(),
		State:     StateIdle,
	}

	if state.Errors.Any() {
		state.State = StateValidationFailed
		w.logger.Debug("appointment form rejected", zap.Error(state.Errors.Err()))
		w.metrics.ObserveSubmission(metrics.SubmissionInvalid)
		return state
	}

	if err := w.begin(meta.VisitorKey); err != nil {
		state.State = StateSubmitting
		state.Flash = FlashBusy
		w.metrics.ObserveSubmission(metrics.SubmissionBusy)
		return state
	}
	defer w.finish(meta.VisitorKey)

	clean := form.Sanitized()
	req := models.NewAppointmentRequest(clean.PatientName, clean.MobileNumber, strings.TrimSpace(location), w.pageName, w.domainName)
	lead, err := w.deliver(ctx, req)
	lead.IPAddress = meta.IPAddress
	lead.UserAgent = meta.UserAgent
	w.record(context.WithoutCancel(ctx), lead)

	if err != nil {
		w.logger.Error("lead delivery failed",
			zap.String("channel", lead.Channel),
			zap.String("lead_id", lead.ID),
			zap.Error(err),
		)
		w.metrics.ObserveSubmission(metrics.SubmissionFailed)
		state.State = StateFailed
		state.Flash = FlashFailure
		state.LeadID = lead.ID
		return state
	}

	w.logger.Info("lead delivered",
		zap.String("channel", lead.Channel),
		zap.String("lead_id", lead.ID),
		zap.Int("status", lead.ProviderStatus),
	)
	w.metrics.ObserveSubmission(metrics.SubmissionDelivered)
	return FormState{
		State:  StateSucceeded,
		Flash:  FlashSuccess,
		LeadID: lead.ID,
	}
}

// deliver sends the request bounded by the delivery timeout
func (w *AppointmentWorkflow) deliver(ctx context.Context, req models.AppointmentRequest) (*models.Lead, error) {
	channel := w.notifier.Channel()
	lead := models.NewLeadFromRequest(req, channel)

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	ack, err := w.notifier.Notify(ctx, req)
	w.metrics.ObserveDelivery(channel, time.Since(start).Seconds())

	lead.ProviderStatus = ack.Status
	lead.ProviderRef = ack.ID
	if err != nil {
		lead.Status = models.LeadStatusFailed
		lead.Error = err.Error()
		return lead, err
	}
	lead.Status = models.LeadStatusDelivered
	return lead, nil
}

// record writes the lead log and archive. Failures are logged only. The
// archive is written even when the log write fails.
func (w *AppointmentWorkflow) record(ctx context.Context, lead *models.Lead) {
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	logged := false
	if w.db != nil {
		if err := RecordLead(w.db, lead); err != nil {
			w.logger.Warn("failed to record lead", zap.String("lead_id", lead.ID), zap.Error(err))
		} else {
			logged = true
		}
	}
	if w.archive == nil {
		return
	}

	key, err := w.archive.Archive(ctx, lead)
	if err != nil {
		w.logger.Warn("failed to archive lead", zap.String("lead_id", lead.ID), zap.Error(err))
		return
	}
	lead.ArchiveKey = key
	if logged {
		if err := SetLeadArchiveKey(w.db, lead.ID, key); err != nil {
			w.logger.Warn("failed to store archive key", zap.String("lead_id", lead.ID), zap.Error(err))
		}
	}
}
