package customer

import (
	"context"
	"fmt"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// Notifier delivers the outbound ERP notification for a customer.
// Delivery is fire-and-forget: outcomes are recorded by the notifier
// itself and never surface to the caller of the triggering mutation.
type Notifier interface {
	Notify(ctx context.Context, c Customer)
}

// UseCase defines the business operations for customer synchronization
type UseCase interface {
	// Push is the ERP-side idempotent upsert; it never notifies
	Push(ctx context.Context, id string, update Update) (Customer, bool, error)
	// Create is a third-party-side edit; it notifies the ERP
	Create(ctx context.Context, id string, update Update) (Customer, error)
	// Patch is a third-party-side partial update; it notifies on success
	Patch(ctx context.Context, id string, update Update) (Customer, error)
	Get(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
	// CallERP re-dispatches the notification for the current record state
	CallERP(ctx context.Context, id string) (Customer, error)
}

type Service struct {
	Repo     Repository
	Notifier Notifier
}

// NewService creates a new customer service with dependency injection
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{
		Repo:     repo,
		Notifier: notifier,
	}
}

// Push upserts a record on behalf of the ERP without notifying it back
func (s *Service) Push(ctx context.Context, id string, update Update) (Customer, bool, error) {
	if err := update.Validate(); err != nil {
		return Customer{}, false, fmt.Errorf("validating push: %w", err)
	}
	c, created, err := s.Repo.Upsert(ctx, id, update)
	if err != nil {
		return Customer{}, false, fmt.Errorf("upserting customer: %w", err)
	}
	return c, created, nil
}

// Create records a third-party-side edit and notifies the ERP
func (s *Service) Create(ctx context.Context, id string, update Update) (Customer, error) {
	if err := update.Validate(); err != nil {
		return Customer{}, fmt.Errorf("validating create: %w", err)
	}
	c, _, err := s.Repo.Upsert(ctx, id, update)
	if err != nil {
		return Customer{}, fmt.Errorf("upserting customer: %w", err)
	}
	// The record is committed; delivery failures stay in the attempt ledger.
	s.Notifier.Notify(ctx, c)
	return c, nil
}

// Patch merges the supplied fields into an existing record and notifies the ERP
func (s *Service) Patch(ctx context.Context, id string, update Update) (Customer, error) {
	if err := update.Validate(); err != nil {
		return Customer{}, fmt.Errorf("validating patch: %w", err)
	}
	c, err := s.Repo.Patch(ctx, id, update)
	if err != nil {
		return Customer{}, fmt.Errorf("patching customer: %w", err)
	}
	s.Notifier.Notify(ctx, c)
	return c, nil
}

// Get returns a single record
func (s *Service) Get(ctx context.Context, id string) (Customer, error) {
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Customer{}, fmt.Errorf("selecting customer: %w", err)
	}
	return c, nil
}

// List returns all records in creation order
func (s *Service) List(ctx context.Context) ([]Customer, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting customers: %w", err)
	}
	return all, nil
}

// CallERP re-dispatches the webhook for a customer without mutating it
func (s *Service) CallERP(ctx context.Context, id string) (Customer, error) {
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Customer{}, fmt.Errorf("selecting customer: %w", err)
	}
	s.Notifier.Notify(ctx, c)
	return c, nil
}
