package customer

import "errors"

var (
	// ErrNotFound is returned when operating on an unknown customer id
	ErrNotFound = errors.New("customer not found")

	// ErrInvalidPaymentTerm is returned when a supplied payment term is
	// neither one of the known literals nor an explicit null
	ErrInvalidPaymentTerm = errors.New("invalid payment term")
)
