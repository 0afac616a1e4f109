package metrics

import "github.com/prometheus/client_golang/prometheus"

// Location resolution stages
const (
	StageDevice      = "device"
	StageReverse     = "reverse_geocode"
	StageIP          = "ip"
	OutcomeOK        = "ok"
	OutcomeFailed    = "failed"
	OutcomeFallback  = "fallback"
	OutcomeNoSupport = "unsupported"
)

// Lead submission outcomes
const (
	SubmissionInvalid   = "validation_failed"
	SubmissionDelivered = "delivered"
	SubmissionFailed    = "failed"
	SubmissionBusy      = "busy"
)

// Metrics exposes counters/histograms for location resolution and lead delivery.
type Metrics struct {
	locationTotal   *prometheus.CounterVec
	submissionTotal *prometheus.CounterVec
	deliveryLatency *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		locationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wristsurgery",
			Subsystem: "location",
			Name:      "resolutions_total",
			Help:      "Location resolution attempts by stage and outcome",
		}, []string{"stage", "outcome"}),
		submissionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wristsurgery",
			Subsystem: "lead",
			Name:      "submissions_total",
			Help:      "Appointment form submissions by outcome",
		}, []string{"outcome"}),
		deliveryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wristsurgery",
			Subsystem: "lead",
			Name:      "delivery_seconds",
			Help:      "Latency of the lead delivery call",
			Buckets:   prometheus.DefBuckets,
		}, []string{"channel"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.locationTotal, m.submissionTotal, m.deliveryLatency)
	return m
}

func (m *Metrics) ObserveLocation(stage, outcome string) {
	if m == nil {
		return
	}
	m.locationTotal.WithLabelValues(stage, outcome).Inc()
}

func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveDelivery(channel string, seconds float64) {
	if m == nil {
		return
	}
	m.deliveryLatency.WithLabelValues(channel).Observe(seconds)
}
