package customer

import "fmt"

/* PaymentTerm represents the payment term of a customer
 * TermNone means no term is set; records are created without one
 */
type PaymentTerm string

const (
	TermNone PaymentTerm = ""
	Net30    PaymentTerm = "Net 30"
	Net60    PaymentTerm = "Net 60"
)

// Validate checks if the payment term is one of the known literals
func (t PaymentTerm) Validate() error {
	switch t {
	case TermNone, Net30, Net60:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPaymentTerm, string(t))
	}
}

// IsSet returns true if a term is present on the record
func (t PaymentTerm) IsSet() bool {
	return t != TermNone
}
