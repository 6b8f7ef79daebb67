package services

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	formSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventreg",
		Name:      "form_submissions_total",
		Help:      "Form submission attempts by form type and result.",
	}, []string{"form_type", "result"})

	storeFetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventreg",
		Name:      "store_fetch_failures_total",
		Help:      "Failed reads against a record store, by source.",
	}, []string{"source"})
)

// submissionResult labels the outcome of a submit for the counter
func submissionResult(err error) string {
	switch err.(type) {
	case nil:
		return "ok"
	case *ValidationError:
		return "invalid"
	case *WriteError:
		return "rejected"
	}
	if errors.Is(err, ErrAlreadySubmitted) {
		return "duplicate"
	}
	return "error"
}
