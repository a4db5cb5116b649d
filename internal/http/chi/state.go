package chi

import (
	"encoding/json"
	"net/http"

	"github.com/marcelsud/fake-third-party/attempt"
)

// stateResponse is the aggregate view served to the console
type stateResponse struct {
	WebhookURL      *string            `json:"webhook_url"`
	Customers       []customerResponse `json:"customers"`
	WebhookAttempts []attempt.Outbound `json:"webhook_attempts"`
	InboundAttempts []attempt.Inbound  `json:"inbound_attempts"`
}

// webhookConfigRequest represents the configuration payload
type webhookConfigRequest struct {
	WebhookURL string `json:"webhook_url"`
}

// webhookConfigResponse echoes the configuration now in effect
type webhookConfigResponse struct {
	WebhookURL *string `json:"webhook_url"`
}

// getState handles GET /state
func getState(state State) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := state.Snapshot()

		customers := make([]customerResponse, 0, len(snap.Customers))
		for _, c := range snap.Customers {
			customers = append(customers, toCustomerResponse(c))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stateResponse{
			WebhookURL:      snap.WebhookURL,
			Customers:       customers,
			WebhookAttempts: snap.WebhookAttempts,
			InboundAttempts: snap.InboundAttempts,
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// setWebhookConfig handles POST /webhook/config.
// An empty URL clears the configuration; no format validation happens here,
// delivery failures surface at dispatch time.
func setWebhookConfig(state State) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req webhookConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		state.SetWebhookURL(req.WebhookURL)

		resp := webhookConfigResponse{}
		if url := state.WebhookURL(); url != "" {
			resp.WebhookURL = &url
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})
}
