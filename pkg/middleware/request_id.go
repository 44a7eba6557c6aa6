package middleware

import (
	"net/http"

	"tourism-booking/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds ids taken from the client.
const maxRequestIDLen = 128

// RequestID reuses the caller's X-Request-ID or generates one, stores it in
// the context and echoes it on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = utils.GenerateUUIDString()
			}

			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(utils.SetRequestID(r.Context(), id)))
		})
	}
}
