package customer

/* Customer represents a record in the fake third party's system of record
 * Uses value semantics as it represents data, not behavior
 */
type Customer struct {
	ID          string
	Archived    bool
	PaymentTerm PaymentTerm
}
