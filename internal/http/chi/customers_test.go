package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/fake-third-party/customer"
	"github.com/marcelsud/fake-third-party/customer/mocks"
	"github.com/marcelsud/fake-third-party/origin"
	"github.com/marcelsud/fake-third-party/store"
)

var testConsoleOrigins = []string{"http://localhost:5173"}

func newTestHandlers(t *testing.T, customerService customer.UseCase) http.Handler {
	t.Helper()
	st := store.New("")
	classifier := origin.NewClassifier(testConsoleOrigins)
	return Handlers(context.Background(), customerService, st, classifier, testConsoleOrigins, nil)
}

func TestListCustomers(t *testing.T) {
	s := mocks.NewUseCase(t)
	customers := []customer.Customer{
		{ID: "hs-001", PaymentTerm: customer.Net30},
		{ID: "hs-002"},
	}
	s.On("List", mock.Anything).Return(customers, nil)
	h := newTestHandlers(t, s)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var results []customerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)
	require.NotNil(t, results[0].PaymentTerm)
	assert.Equal(t, "Net 30", *results[0].PaymentTerm)
	assert.Nil(t, results[1].PaymentTerm)
}

func TestGetCustomer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("Get", mock.Anything, "hs-001").Return(customer.Customer{ID: "hs-001", Archived: true}, nil)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodGet, "/customers/hs-001", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var result customerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "hs-001", result.ID)
		assert.True(t, result.Archived)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("Get", mock.Anything, "missing").Return(customer.Customer{}, customer.ErrNotFound)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodGet, "/customers/missing", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPushCustomer(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("Push", mock.Anything, "hs-010", customer.MatchUpdate(func(u customer.Update) bool {
			return u.Archived == nil && u.PaymentTerm != nil && *u.PaymentTerm == customer.Net30
		})).Return(customer.Customer{ID: "hs-010", PaymentTerm: customer.Net30}, true, nil)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPost, "/customers/push", strings.NewReader(`{"id":"hs-010","payment_term":"Net 30"}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var result customerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "hs-010", result.ID)
		assert.False(t, result.Archived)
	})

	t.Run("existing record - 200", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("Push", mock.Anything, "hs-010", mock.Anything).
			Return(customer.Customer{ID: "hs-010", Archived: true, PaymentTerm: customer.Net30}, false, nil)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPost, "/customers/push", strings.NewReader(`{"id":"hs-010","archived":true}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPost, "/customers/push", strings.NewReader(`{"archived":true}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.AssertNotCalled(t, "Push")
	})

	t.Run("malformed body", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPost, "/customers/push", strings.NewReader(`{"id":`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.AssertNotCalled(t, "Push")
	})

	t.Run("payment_term of the wrong type", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPost, "/customers/push", strings.NewReader(`{"id":"hs-010","payment_term":30}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.AssertNotCalled(t, "Push")
	})
}

func TestPatchCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("Patch", mock.Anything, "hs-010", customer.MatchUpdate(func(u customer.Update) bool {
			return u.Archived != nil && *u.Archived && u.PaymentTerm == nil
		})).Return(customer.Customer{ID: "hs-010", Archived: true, PaymentTerm: customer.Net30}, nil)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPatch, "/customers/hs-010", strings.NewReader(`{"archived":true}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var result customerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Archived)
		require.NotNil(t, result.PaymentTerm)
		assert.Equal(t, "Net 30", *result.PaymentTerm)
	})

	t.Run("explicit null clears the payment term", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("Patch", mock.Anything, "hs-010", customer.MatchUpdate(func(u customer.Update) bool {
			return u.PaymentTerm != nil && !u.PaymentTerm.IsSet()
		})).Return(customer.Customer{ID: "hs-010"}, nil)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPatch, "/customers/hs-010", strings.NewReader(`{"payment_term":null}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("Patch", mock.Anything, "missing", mock.Anything).
			Return(customer.Customer{}, customer.ErrNotFound)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPatch, "/customers/missing", strings.NewReader(`{"archived":true}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid payment term", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("Patch", mock.Anything, "hs-010", mock.Anything).
			Return(customer.Customer{}, customer.ErrInvalidPaymentTerm)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPatch, "/customers/hs-010", strings.NewReader(`{"payment_term":"Net 45"}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCallERP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("CallERP", mock.Anything, "hs-001").Return(customer.Customer{ID: "hs-001"}, nil)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPost, "/customers/hs-001/call-erp", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := mocks.NewUseCase(t)
		s.On("CallERP", mock.Anything, "missing").Return(customer.Customer{}, customer.ErrNotFound)
		h := newTestHandlers(t, s)

		req := httptest.NewRequest(http.MethodPost, "/customers/missing/call-erp", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealth(t *testing.T) {
	s := mocks.NewUseCase(t)
	h := newTestHandlers(t, s)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
