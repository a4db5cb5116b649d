package customer

/* Update carries the fields explicitly supplied by a push or patch call
 * A nil field was absent from the request and leaves the record untouched
 * A pointer to TermNone is an explicit null and clears the payment term
 */
type Update struct {
	Archived    *bool
	PaymentTerm *PaymentTerm
}

// Validate checks the supplied fields; absent fields are always valid
func (u Update) Validate() error {
	if u.PaymentTerm != nil {
		if err := u.PaymentTerm.Validate(); err != nil {
			return err
		}
	}
	return nil
}
