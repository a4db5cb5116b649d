package chi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/marcelsud/fake-third-party/attempt"
	"github.com/marcelsud/fake-third-party/origin"
)

/* trackInbound records every externally-originated mutating call in the
 * inbound ledger, success or failure, with the verbatim request payload.
 * Console-originated calls are the fake third party's own UI and are
 * never ledgered.
 */
func trackInbound(classifier *origin.Classifier, ledger attempt.InboundRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mutating(r.Method) || classifier.Classify(r.Header.Get("Origin")) == origin.Console {
				next.ServeHTTP(w, r)
				return
			}

			// The handler still needs the body, so buffer and restore it
			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "failed to read request body", http.StatusBadRequest)
				return
			}
			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))

			var payload any
			if len(body) > 0 {
				if err := json.Unmarshal(body, &payload); err != nil {
					// Malformed bodies are still audited, as the raw string
					payload = string(body)
				}
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			ledger.RecordInbound(attempt.Inbound{
				At:         time.Now().UTC(),
				Method:     r.Method,
				Path:       r.URL.Path,
				Payload:    payload,
				Success:    status < 400,
				StatusCode: status,
			})
		})
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}
