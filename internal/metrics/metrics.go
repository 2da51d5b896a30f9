package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for processed commands
const (
	OutcomeOK         = "ok"
	OutcomeUsage      = "usage_error"
	OutcomeValidation = "validation_error"
	OutcomeDenied     = "denied"
	OutcomeUnknown    = "unknown_command"
	OutcomeError      = "error"
)

// Metrics provides observability for command processing.
type Metrics struct {
	// Commands processed by command name and outcome
	CommandsTotal *prometheus.CounterVec

	// Gate denials by reason
	GateDenials *prometheus.CounterVec

	// Completed verifications
	Verifications prometheus.Counter

	// Size of the account registry (it only grows; no eviction)
	AccountsRegistered prometheus.GaugeFunc
}

// New creates a new Metrics instance with all bot metrics registered.
// accountCount feeds the registry-size gauge; pass nil to skip it.
func New(reg prometheus.Registerer, accountCount func() float64) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "likebot_commands_total",
			Help: "Total commands processed by command name and outcome",
		}, []string{"command", "outcome"}),

		GateDenials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "likebot_gate_denials_total",
			Help: "Total entitlement gate denials by reason",
		}, []string{"reason"}),

		Verifications: factory.NewCounter(prometheus.CounterOpts{
			Name: "likebot_verifications_total",
			Help: "Total completed verifications",
		}),
	}

	if accountCount != nil {
		m.AccountsRegistered = factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "likebot_accounts_registered",
			Help: "Number of accounts in the registry",
		}, accountCount)
	}

	return m
}

// IncrementCommand records a processed command outcome.
func (m *Metrics) IncrementCommand(command, outcome string) {
	if m != nil {
		m.CommandsTotal.WithLabelValues(command, outcome).Inc()
	}
}

// IncrementDenial records a gate denial reason.
func (m *Metrics) IncrementDenial(reason string) {
	if m != nil {
		m.GateDenials.WithLabelValues(reason).Inc()
	}
}

// IncrementVerification records a completed verification.
func (m *Metrics) IncrementVerification() {
	if m != nil {
		m.Verifications.Inc()
	}
}
