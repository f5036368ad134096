// Package metrics defines and registers all custom Prometheus metrics for the
// employee API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are scraped through GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee"

// EmployeesCreatedTotal counts successfully created employees.
var EmployeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of employees successfully created.",
	},
)

// EmployeesUpdatedTotal counts successfully updated employees.
var EmployeesUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updated_total",
		Help:      "Total number of employees successfully updated.",
	},
)

// EmployeesDeletedTotal counts successfully deleted employees.
var EmployeesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of employees successfully deleted.",
	},
)

// EmailConflictsTotal counts writes rejected because the email was taken.
// Label:
//   - operation: "create" or "update"
var EmailConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_conflicts_total",
		Help:      "Total number of create/update attempts rejected by the email uniqueness rule.",
	},
	[]string{"operation"},
)
