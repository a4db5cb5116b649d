package attempt

import "time"

/* Append-only audit records. Both ledgers keep every entry for the
 * lifetime of the process, in append order, and are never pruned.
 */

// Outbound records one try at delivering the ERP webhook, successful or not.
// WebhookURL is the URL in effect at dispatch time, nil if unconfigured.
type Outbound struct {
	At         time.Time `json:"at"`
	CustomerID string    `json:"customer_id"`
	WebhookURL *string   `json:"webhook_url"`
	Success    bool      `json:"success"`
	StatusCode *int      `json:"status_code"`
	Error      *string   `json:"error"`
}

// Inbound records one externally-originated mutating call.
// Payload is the request body stored verbatim for audit, JSON-decoded
// when possible and kept as the raw string otherwise.
type Inbound struct {
	At         time.Time `json:"at"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Payload    any       `json:"payload"`
	Success    bool      `json:"success"`
	StatusCode int       `json:"status_code"`
	Error      *string   `json:"error"`
}

// OutboundRecorder appends outbound delivery attempts to the ledger
type OutboundRecorder interface {
	RecordOutbound(a Outbound)
}

// InboundRecorder appends inbound call attempts to the ledger
type InboundRecorder interface {
	RecordInbound(a Inbound)
}
