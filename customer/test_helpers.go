package customer

import "github.com/stretchr/testify/mock"

// MatchCustomer creates a custom matcher for customer arguments in mocks
func MatchCustomer(matcher func(Customer) bool) interface{} {
	return mock.MatchedBy(matcher)
}

// MatchUpdate creates a custom matcher for update arguments in mocks
func MatchUpdate(matcher func(Update) bool) interface{} {
	return mock.MatchedBy(matcher)
}
