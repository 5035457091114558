package metrics

import "github.com/prometheus/client_golang/prometheus"

// RegistryMetrics records counters for the member registry engine.
type RegistryMetrics struct {
	npaAttempts   *prometheus.CounterVec
	npaExhausted  prometheus.Counter
	auditFailures *prometheus.CounterVec
}

// NewRegistryMetrics registers the registry metrics on the provided registerer.
func NewRegistryMetrics(reg prometheus.Registerer) *RegistryMetrics {
	if reg == nil {
		return &RegistryMetrics{}
	}
	npaAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "npa_issue_attempts_total",
		Help: "NPA issuance attempts, labeled by outcome.",
	}, []string{"outcome"})
	npaExhausted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "npa_issue_exhausted_total",
		Help: "Creations aborted because the bounded NPA retry budget ran out.",
	})
	auditFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_write_failures_total",
		Help: "Audit log writes that failed after the primary mutation succeeded.",
	}, []string{"action"})
	reg.MustRegister(npaAttempts, npaExhausted, auditFailures)
	return &RegistryMetrics{
		npaAttempts:   npaAttempts,
		npaExhausted:  npaExhausted,
		auditFailures: auditFailures,
	}
}

// IncNPAAttempt counts one issuance attempt with the given outcome
// (ok, conflict).
func (m *RegistryMetrics) IncNPAAttempt(outcome string) {
	if m == nil || m.npaAttempts == nil {
		return
	}
	if outcome == "" {
		outcome = "unknown"
	}
	m.npaAttempts.WithLabelValues(outcome).Inc()
}

// IncNPAExhausted counts a creation aborted after the retry budget ran out.
func (m *RegistryMetrics) IncNPAExhausted() {
	if m == nil || m.npaExhausted == nil {
		return
	}
	m.npaExhausted.Inc()
}

// IncAuditFailure counts a best-effort audit write that could not land.
func (m *RegistryMetrics) IncAuditFailure(action string) {
	if m == nil || m.auditFailures == nil {
		return
	}
	if action == "" {
		action = "unknown"
	}
	m.auditFailures.WithLabelValues(action).Inc()
}
