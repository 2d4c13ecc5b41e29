// Package metrics registers the service's Prometheus instruments on the
// default registry and exposes increment helpers for the hot paths: workflow
// initialization, step status transitions, employee assignments and the
// milestone delay sweep.
package metrics

import (
	"sync"

	"manufacturing/internal/core/domain/model/workflow"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	initOnce sync.Once

	workflowsInitializedCounter prometheus.Counter
	stepTransitionsCounter      *prometheus.CounterVec
	assignmentsCounter          prometheus.Counter
	milestoneSweepsCounter      prometheus.Counter
	milestoneSweepErrorsCounter prometheus.Counter
)

// Init registers metrics on the default Prometheus registry exactly once.
func Init() {
	initOnce.Do(func() {
		workflowsInitializedCounter = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "workflows_initialized_total",
				Help: "Total number of production workflows created for orders.",
			},
		)

		stepTransitionsCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workflow_step_transitions_total",
				Help: "Total number of workflow step status changes by target status.",
			},
			[]string{"status"},
		)

		assignmentsCounter = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "step_assignments_total",
				Help: "Total number of employee assignments to workflow steps.",
			},
		)

		milestoneSweepsCounter = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "milestone_delay_sweeps_total",
				Help: "Total number of completed milestone delay sweep runs.",
			},
		)

		milestoneSweepErrorsCounter = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "milestone_delay_sweep_errors_total",
				Help: "Total number of failed milestone delay sweep runs.",
			},
		)

		prometheus.MustRegister(
			workflowsInitializedCounter,
			stepTransitionsCounter,
			assignmentsCounter,
			milestoneSweepsCounter,
			milestoneSweepErrorsCounter,
		)

		// Ensure counter vectors are visible at /metrics before first increment.
		for _, status := range []workflow.Status{
			workflow.Pending,
			workflow.InProgress,
			workflow.Completed,
			workflow.OnHold,
			workflow.Rejected,
		} {
			stepTransitionsCounter.WithLabelValues(status.String())
		}
	})
}

func IncWorkflowsInitialized() {
	Init()
	workflowsInitializedCounter.Inc()
}

func IncStepTransition(status string) {
	Init()
	stepTransitionsCounter.WithLabelValues(status).Inc()
}

func IncStepAssignments() {
	Init()
	assignmentsCounter.Inc()
}

func IncMilestoneSweeps() {
	Init()
	milestoneSweepsCounter.Inc()
}

func IncMilestoneSweepErrors() {
	Init()
	milestoneSweepErrorsCounter.Inc()
}
