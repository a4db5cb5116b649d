package store

import (
	"github.com/marcelsud/fake-third-party/attempt"
	"github.com/marcelsud/fake-third-party/customer"
)

// Snapshot is a point-in-time view of all four shared structures
type Snapshot struct {
	WebhookURL      *string
	Customers       []customer.Customer
	WebhookAttempts []attempt.Outbound
	InboundAttempts []attempt.Inbound
}

/* Snapshot assembles the aggregate view under the one lock, so no reader
 * observes a customer mutation without the ledger entry that went with it,
 * or vice versa. Customers come back in creation order; both ledgers come
 * back newest-first, which is what the console panels expect.
 */
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var url *string
	if s.webhookURL != "" {
		u := s.webhookURL
		url = &u
	}

	outbound := make([]attempt.Outbound, len(s.outbound))
	for i, a := range s.outbound {
		outbound[len(s.outbound)-1-i] = a
	}
	inbound := make([]attempt.Inbound, len(s.inbound))
	for i, a := range s.inbound {
		inbound[len(s.inbound)-1-i] = a
	}

	return Snapshot{
		WebhookURL:      url,
		Customers:       s.listLocked(),
		WebhookAttempts: outbound,
		InboundAttempts: inbound,
	}
}

func (s *Store) listLocked() []customer.Customer {
	all := make([]customer.Customer, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.customers[id])
	}
	return all
}
