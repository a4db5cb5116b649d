package store

import (
	"context"
	"strings"
	"sync"

	"github.com/marcelsud/fake-third-party/attempt"
	"github.com/marcelsud/fake-third-party/customer"
)

/* Store owns every piece of shared mutable state in the process: the
 * customer records, the webhook configuration cell and both attempt
 * ledgers, all behind a single mutex. Nothing outside this package
 * touches the internals; state lives for the process lifetime and a
 * restart is a full reset.
 *
 * It implements customer.Repository, attempt.OutboundRecorder and
 * attempt.InboundRecorder the way an external adapter would, so the
 * business layer stays unaware of where state lives.
 */
type Store struct {
	mu         sync.Mutex
	customers  map[string]customer.Customer
	order      []string
	webhookURL string
	outbound   []attempt.Outbound
	inbound    []attempt.Inbound
}

// New creates an empty store with the given webhook URL preconfigured.
// An empty URL means the webhook starts unconfigured.
func New(webhookURL string) *Store {
	return &Store{
		customers:  make(map[string]customer.Customer),
		webhookURL: strings.TrimSpace(webhookURL),
	}
}

// Upsert creates the record if the id is unseen, otherwise merges the
// supplied fields into it. The existence check and the merge happen under
// the lock so two concurrent pushes for the same unseen id cannot both
// decide to create.
func (s *Store) Upsert(ctx context.Context, id string, update customer.Update) (customer.Customer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		c = customer.Customer{ID: id}
		s.order = append(s.order, id)
	}
	apply(&c, update)
	s.customers[id] = c
	return c, !ok, nil
}

// Patch merges the supplied fields into an existing record.
// Returns customer.ErrNotFound if the id does not exist.
func (s *Store) Patch(ctx context.Context, id string, update customer.Update) (customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return customer.Customer{}, customer.ErrNotFound
	}
	apply(&c, update)
	s.customers[id] = c
	return c, nil
}

// Get returns the record or customer.ErrNotFound
func (s *Store) Get(ctx context.Context, id string) (customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return customer.Customer{}, customer.ErrNotFound
	}
	return c, nil
}

// List returns all records in creation order
func (s *Store) List(ctx context.Context) ([]customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(), nil
}

// SetWebhookURL replaces the configured notification URL unconditionally.
// An empty value clears the configuration.
func (s *Store) SetWebhookURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.webhookURL = strings.TrimSpace(url)
}

// WebhookURL returns the current notification URL, empty if unconfigured
func (s *Store) WebhookURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.webhookURL
}

// RecordOutbound appends a delivery attempt to the outbound ledger
func (s *Store) RecordOutbound(a attempt.Outbound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbound = append(s.outbound, a)
}

// RecordInbound appends a call attempt to the inbound ledger
func (s *Store) RecordInbound(a attempt.Inbound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inbound = append(s.inbound, a)
}

// apply merges only the fields explicitly supplied, leaving the rest unchanged
func apply(c *customer.Customer, update customer.Update) {
	if update.Archived != nil {
		c.Archived = *update.Archived
	}
	if update.PaymentTerm != nil {
		c.PaymentTerm = *update.PaymentTerm
	}
}
