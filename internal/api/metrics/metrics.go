// Package metrics defines and registers all custom Prometheus metrics for the
// portfolio CMS. It is the single source of truth for metric names, labels,
// and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cms"

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactsReceivedTotal counts contact-form submissions accepted through the
// public endpoint.
var ContactsReceivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_received_total",
		Help:      "Total number of contact requests received.",
	},
)

// NotificationsSentTotal counts outbound notifications that were delivered.
// Label:
//   - channel: the delivery channel ("telegram", "email")
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of contact notifications delivered, by channel.",
	},
	[]string{"channel"},
)

// NotificationsErrorsTotal counts outbound notifications that failed. These
// failures are logged and dropped, never retried.
// Label:
//   - channel: the delivery channel ("telegram", "email")
var NotificationsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of contact notifications that failed delivery, by channel.",
	},
	[]string{"channel"},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts stored media files.
// Label:
//   - folder: the logical destination folder ("projects", "pages")
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of media files stored, by folder.",
	},
	[]string{"folder"},
)

// UploadsRejectedTotal counts uploads rejected at the validation gate.
// Label:
//   - reason: "mime_type", "too_large", or "bad_request"
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of uploads rejected before storage, by reason.",
	},
	[]string{"reason"},
)

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectPublishTotal counts publish/unpublish state transitions.
// Label:
//   - action: "publish" or "unpublish"
var ProjectPublishTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_publish_total",
		Help:      "Total number of successful project publish state transitions, by action.",
	},
	[]string{"action"},
)
