package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/marcelsud/fake-third-party/attempt"
	"github.com/marcelsud/fake-third-party/customer"
)

// EventCustomerUpdated is the event name carried by every notification
const EventCustomerUpdated = "customer.updated"

// excerptLen bounds how much of an error response body lands in the ledger
const excerptLen = 200

// Config reads the webhook URL in effect at dispatch time
type Config interface {
	WebhookURL() string
}

/* Dispatcher delivers customer.updated notifications to the configured ERP
 * endpoint. Delivery is best-effort and at-most-once: there is no retry
 * queue and no backoff, and every attempt lands in the outbound ledger
 * whether it succeeded or not.
 *
 * The triggering mutation is already committed before Notify runs, and the
 * network call is made without holding the store lock: the dispatcher reads
 * its inputs, performs the call, then appends the outcome. A hung endpoint
 * degrades only this path, never the store.
 */
type Dispatcher struct {
	config Config
	ledger attempt.OutboundRecorder
	client *http.Client
	log    zerolog.Logger
}

// NewDispatcher creates a dispatcher with the given delivery timeout
func NewDispatcher(config Config, ledger attempt.OutboundRecorder, timeout time.Duration, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		config: config,
		ledger: ledger,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// notification is the wire format of the outbound webhook
type notification struct {
	Event    string               `json:"event"`
	Customer notificationCustomer `json:"customer"`
}

type notificationCustomer struct {
	ID          string  `json:"id"`
	Archived    bool    `json:"archived"`
	PaymentTerm *string `json:"payment_term"`
}

// Notify performs one delivery attempt for the current state of a customer
func (d *Dispatcher) Notify(ctx context.Context, c customer.Customer) {
	target := d.config.WebhookURL()
	deliveryID := uuid.New().String()

	if target == "" {
		d.log.Warn().
			Str("delivery_id", deliveryID).
			Str("customer_id", c.ID).
			Msg("webhook skipped: no webhook configured")
		errMsg := "no webhook configured"
		d.ledger.RecordOutbound(attempt.Outbound{
			At:         time.Now().UTC(),
			CustomerID: c.ID,
			Success:    false,
			Error:      &errMsg,
		})
		return
	}

	var term *string
	if c.PaymentTerm.IsSet() {
		t := string(c.PaymentTerm)
		term = &t
	}
	body, err := json.Marshal(notification{
		Event: EventCustomerUpdated,
		Customer: notificationCustomer{
			ID:          c.ID,
			Archived:    c.Archived,
			PaymentTerm: term,
		},
	})
	if err != nil {
		d.recordFailure(c.ID, target, nil, err.Error())
		return
	}

	d.logResolution(ctx, deliveryID, target)

	d.log.Info().
		Str("delivery_id", deliveryID).
		Str("customer_id", c.ID).
		Str("webhook_url", target).
		Str("event", EventCustomerUpdated).
		Msg("sending webhook")

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		d.recordFailure(c.ID, target, nil, err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-Id", deliveryID)

	resp, err := d.client.Do(req)
	if err != nil {
		d.log.Error().
			Str("delivery_id", deliveryID).
			Str("customer_id", c.ID).
			Str("webhook_url", target).
			Err(err).
			Msg("webhook error")
		d.recordFailure(c.ID, target, nil, err.Error())
		return
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	elapsed := time.Since(start)

	d.log.Info().
		Str("delivery_id", deliveryID).
		Str("customer_id", c.ID).
		Int("status", resp.StatusCode).
		Bool("success", success).
		Dur("elapsed", elapsed).
		Str("body_excerpt", excerpt(respBody)).
		Msg("webhook response")

	status := resp.StatusCode
	a := attempt.Outbound{
		At:         time.Now().UTC(),
		CustomerID: c.ID,
		WebhookURL: &target,
		Success:    success,
		StatusCode: &status,
	}
	if !success {
		errMsg := excerpt(respBody)
		a.Error = &errMsg
	}
	d.ledger.RecordOutbound(a)
}

func (d *Dispatcher) recordFailure(customerID, target string, statusCode *int, errMsg string) {
	d.ledger.RecordOutbound(attempt.Outbound{
		At:         time.Now().UTC(),
		CustomerID: customerID,
		WebhookURL: &target,
		Success:    false,
		StatusCode: statusCode,
		Error:      &errMsg,
	})
}

// logResolution resolves the target host up front so unreachable-endpoint
// reports show whether DNS or the connection itself failed
func (d *Dispatcher) logResolution(ctx context.Context, deliveryID, target string) {
	parsed, err := url.Parse(target)
	if err != nil || parsed.Hostname() == "" {
		return
	}
	host := parsed.Hostname()
	addrs, err := net.DefaultResolver.LookupHost(ctx, host)
	if err != nil {
		d.log.Error().
			Str("delivery_id", deliveryID).
			Str("host", host).
			Err(err).
			Msg("webhook DNS resolution failed")
		return
	}
	sort.Strings(addrs)
	d.log.Info().
		Str("delivery_id", deliveryID).
		Str("host", host).
		Strs("addresses", addrs).
		Msg("webhook DNS resolved")
}

func excerpt(body []byte) string {
	s := string(body)
	if len(s) > excerptLen {
		s = s[:excerptLen]
	}
	return strings.ReplaceAll(s, "\n", `\n`)
}
