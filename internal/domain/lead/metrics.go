package lead

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Values of the result label.
const (
	resultSaved        = "saved"
	resultInvalid      = "invalid"
	resultFailed       = "failed"
	resultUnconfigured = "unconfigured"
)

var leadsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bura_leads_submitted_total",
	Help: "Lead submissions by outcome.",
}, []string{"result"})
