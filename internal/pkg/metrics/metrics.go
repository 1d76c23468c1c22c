// Package metrics defines and registers all custom Prometheus metrics for the
// family calendar hub. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "calendar"

// ── Event metrics ─────────────────────────────────────────────────────────────

// EventsAddedTotal counts calendar items created.
// Label:
//   - type: "EVENT", "GOAL" or "UPDATE"
var EventsAddedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_added_total",
		Help:      "Total number of calendar items added, by type.",
	},
	[]string{"type"},
)

// EventsRemovedTotal counts calendar items removed.
// Label:
//   - type: the removed item's type
var EventsRemovedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_removed_total",
		Help:      "Total number of calendar items removed, by type.",
	},
	[]string{"type"},
)

// DeletesDeniedTotal counts delete attempts rejected by the ownership rule.
var DeletesDeniedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deletes_denied_total",
		Help:      "Total number of delete attempts rejected because the actor was neither admin nor creator.",
	},
)

// IdempotentReplaysTotal counts event creations answered from a stored Idempotency-Key.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of event creations that replayed a previous result.",
	},
)

// IdempotencyConflictsTotal counts event creations rejected because the same
// Idempotency-Key was still being processed.
var IdempotencyConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_conflicts_total",
		Help:      "Total number of event creations rejected while the same key was in flight.",
	},
)

// ── Roster metrics ────────────────────────────────────────────────────────────

// RoleChangesTotal counts role toggles.
// Label:
//   - role: the role the member was switched to
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role changes, by resulting role.",
	},
	[]string{"role"},
)

// SessionsTotal counts sessions issued.
// Label:
//   - kind: "join" or "switch"
var SessionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_total",
		Help:      "Total number of session tokens issued, by kind.",
	},
	[]string{"kind"},
)

// ── Suggestion metrics ────────────────────────────────────────────────────────

// SuggestionsTotal counts suggestion requests.
// Label:
//   - result: "ok" or "error"
var SuggestionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggestions_total",
		Help:      "Total number of suggestion requests, by result.",
	},
	[]string{"result"},
)

// SuggestionDuration measures how long the suggestion provider takes to answer.
// Label:
//   - result: "ok" or "error"
var SuggestionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "suggestion_duration_seconds",
		Help:      "Duration of suggestion provider calls.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	},
	[]string{"result"},
)

// ── Persistence metrics ───────────────────────────────────────────────────────

// SnapshotWritesTotal counts whole-blob writes.
// Labels:
//   - blob: the blob key (e.g. "familyCalendarEvents")
//   - result: "ok" or "error"
var SnapshotWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_writes_total",
		Help:      "Total number of snapshot writes, by blob and result.",
	},
	[]string{"blob", "result"},
)

// SnapshotWriteDuration measures the latency of a whole-blob write.
// Label:
//   - blob: the blob key
var SnapshotWriteDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_write_duration_seconds",
		Help:      "Duration of snapshot writes to the blob backend.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"blob"},
)
