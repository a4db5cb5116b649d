package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog"

	"github.com/marcelsud/fake-third-party/attempt"
	"github.com/marcelsud/fake-third-party/customer"
	"github.com/marcelsud/fake-third-party/origin"
	"github.com/marcelsud/fake-third-party/store"
)

// State serves the aggregate read view and owns the webhook config cell
type State interface {
	attempt.InboundRecorder
	Snapshot() store.Snapshot
	SetWebhookURL(url string)
	WebhookURL() string
}

// Handlers sets up the fake third party API routes
func Handlers(ctx context.Context, customerService customer.UseCase, state State, classifier *origin.Classifier, consoleOrigins []string, metricsHandler http.Handler) *chi.Mux {
	logger := httplog.NewLogger("fake-third-party", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	// The console is a browser app on a different origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   consoleOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(httplog.RequestLogger(logger))
	// Tracking wraps Recoverer so panics still land in the inbound ledger as 500s
	r.Use(trackInbound(classifier, state))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	// ERP-side surface
	r.Post("/customers/push", pushCustomer(customerService).ServeHTTP)
	r.Post("/webhook/config", setWebhookConfig(state).ServeHTTP)

	// Third-party-side surface
	r.Post("/customers", createCustomer(customerService).ServeHTTP)
	r.Patch("/customers/{id}", patchCustomer(customerService).ServeHTTP)
	r.Post("/customers/{id}/call-erp", callERP(customerService).ServeHTTP)

	// Read-only surface
	r.Get("/customers", listCustomers(customerService).ServeHTTP)
	r.Get("/customers/{id}", getCustomer(customerService).ServeHTTP)
	r.Get("/state", getState(state).ServeHTTP)

	return r
}
