package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the sync engine.
type Metrics struct {
	// Customers counts the records in the store
	Customers CustomerCounts `json:"customers"`

	// Outbound counts webhook delivery attempts by outcome
	Outbound AttemptCounts `json:"outbound"`

	// Inbound counts externally-originated call attempts by outcome
	Inbound AttemptCounts `json:"inbound"`

	// WebhookConfigured reports whether an outbound URL is currently set
	WebhookConfigured bool `json:"webhook_configured"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// CustomerCounts counts customer records by state.
type CustomerCounts struct {
	Total    int64 `json:"total"`
	Archived int64 `json:"archived"`
}

// AttemptCounts counts ledger entries by outcome.
type AttemptCounts struct {
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
}

// Collector defines the interface for collecting metrics from the sync engine.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetCustomerCounts returns the customer record counts
	GetCustomerCounts(ctx context.Context) (CustomerCounts, error)

	// GetOutboundCounts returns webhook delivery attempts by outcome
	GetOutboundCounts(ctx context.Context) (AttemptCounts, error)

	// GetInboundCounts returns inbound call attempts by outcome
	GetInboundCounts(ctx context.Context) (AttemptCounts, error)

	// WebhookConfigured reports whether an outbound URL is set
	WebhookConfigured(ctx context.Context) (bool, error)
}
