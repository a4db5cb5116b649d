package chi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marcelsud/fake-third-party/customer"
)

/* HTTP layer DTOs for the customer API
 * Separate from domain entities to avoid leaking internal structure
 */

// customerResponse represents a customer record in the API
type customerResponse struct {
	ID          string  `json:"id"`
	Archived    bool    `json:"archived"`
	PaymentTerm *string `json:"payment_term"`
}

func toCustomerResponse(c customer.Customer) customerResponse {
	resp := customerResponse{
		ID:       c.ID,
		Archived: c.Archived,
	}
	if c.PaymentTerm.IsSet() {
		term := string(c.PaymentTerm)
		resp.PaymentTerm = &term
	}
	return resp
}

/* pushRequest represents the incoming push/create payload.
 * payment_term is kept raw so an explicit null (clear the term) can be
 * told apart from an absent field (leave it untouched).
 */
type pushRequest struct {
	ID          string          `json:"id"`
	Archived    *bool           `json:"archived"`
	PaymentTerm json.RawMessage `json:"payment_term"`
}

// patchRequest represents a partial update; the id comes from the URL
type patchRequest struct {
	Archived    *bool           `json:"archived"`
	PaymentTerm json.RawMessage `json:"payment_term"`
}

var errBadPaymentTerm = errors.New("payment_term must be a string or null")

// termUpdate converts a raw payment_term field into the update representation
func termUpdate(raw json.RawMessage) (*customer.PaymentTerm, error) {
	if raw == nil {
		return nil, nil
	}
	if bytes.Equal(raw, []byte("null")) {
		term := customer.TermNone
		return &term, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errBadPaymentTerm
	}
	term := customer.PaymentTerm(s)
	return &term, nil
}

// writeCustomer writes a record as JSON with the given status
func writeCustomer(w http.ResponseWriter, status int, c customer.Customer) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(toCustomerResponse(c))
}

// writeServiceError maps domain errors to HTTP status codes
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, customer.ErrNotFound):
		http.Error(w, "customer not found", http.StatusNotFound)
	case errors.Is(err, customer.ErrInvalidPaymentTerm):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// pushCustomer handles POST /customers/push (ERP upsert, never notifies)
func pushCustomer(customerService customer.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pushRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		term, err := termUpdate(req.PaymentTerm)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c, created, err := customerService.Push(r.Context(), req.ID, customer.Update{
			Archived:    req.Archived,
			PaymentTerm: term,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeCustomer(w, status, c)
	})
}

// createCustomer handles POST /customers (third-party-side edit, notifies)
func createCustomer(customerService customer.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pushRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		term, err := termUpdate(req.PaymentTerm)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c, err := customerService.Create(r.Context(), req.ID, customer.Update{
			Archived:    req.Archived,
			PaymentTerm: term,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeCustomer(w, http.StatusCreated, c)
	})
}

// patchCustomer handles PATCH /customers/{id}
func patchCustomer(customerService customer.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req patchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		term, err := termUpdate(req.PaymentTerm)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c, err := customerService.Patch(r.Context(), id, customer.Update{
			Archived:    req.Archived,
			PaymentTerm: term,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeCustomer(w, http.StatusOK, c)
	})
}

// callERP handles POST /customers/{id}/call-erp (manual re-dispatch)
func callERP(customerService customer.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		c, err := customerService.CallERP(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeCustomer(w, http.StatusOK, c)
	})
}

// getCustomer handles GET /customers/{id}
func getCustomer(customerService customer.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		c, err := customerService.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeCustomer(w, http.StatusOK, c)
	})
}

// listCustomers handles GET /customers
func listCustomers(customerService customer.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := customerService.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		responses := make([]customerResponse, 0, len(all))
		for _, c := range all {
			responses = append(responses, toCustomerResponse(c))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(responses); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
