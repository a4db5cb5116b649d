package metrics

import (
	"context"
	"time"

	"github.com/marcelsud/fake-third-party/store"
)

// StoreCollector collects metrics from the in-memory store.
// Every read goes through Snapshot so the counts are one consistent view.
type StoreCollector struct {
	store *store.Store
}

// NewStoreCollector creates a collector backed by the store
func NewStoreCollector(s *store.Store) *StoreCollector {
	return &StoreCollector{store: s}
}

// Collect gathers all metrics from one snapshot
func (c *StoreCollector) Collect(ctx context.Context) (Metrics, error) {
	snap := c.store.Snapshot()

	m := Metrics{
		WebhookConfigured: snap.WebhookURL != nil,
		Timestamp:         time.Now().UTC(),
	}
	for _, cust := range snap.Customers {
		m.Customers.Total++
		if cust.Archived {
			m.Customers.Archived++
		}
	}
	for _, a := range snap.WebhookAttempts {
		if a.Success {
			m.Outbound.Succeeded++
		} else {
			m.Outbound.Failed++
		}
	}
	for _, a := range snap.InboundAttempts {
		if a.Success {
			m.Inbound.Succeeded++
		} else {
			m.Inbound.Failed++
		}
	}
	return m, nil
}

// GetCustomerCounts returns the customer record counts
func (c *StoreCollector) GetCustomerCounts(ctx context.Context) (CustomerCounts, error) {
	m, err := c.Collect(ctx)
	return m.Customers, err
}

// GetOutboundCounts returns webhook delivery attempts by outcome
func (c *StoreCollector) GetOutboundCounts(ctx context.Context) (AttemptCounts, error) {
	m, err := c.Collect(ctx)
	return m.Outbound, err
}

// GetInboundCounts returns inbound call attempts by outcome
func (c *StoreCollector) GetInboundCounts(ctx context.Context) (AttemptCounts, error) {
	m, err := c.Collect(ctx)
	return m.Inbound, err
}

// WebhookConfigured reports whether an outbound URL is set
func (c *StoreCollector) WebhookConfigured(ctx context.Context) (bool, error) {
	m, err := c.Collect(ctx)
	return m.WebhookConfigured, err
}
