package middleware

import (
	"net/http"
	"strings"

	"cinevault/pkg/utils"

	"github.com/google/uuid"
)

const maxCorrelationIDLen = 128

// Correlation threads a correlation id through the request context. A caller
// supplied X-Correlation-ID is honoured, otherwise a UUID is generated.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(utils.CorrelationHeader))
		if id == "" || len(id) > maxCorrelationIDLen {
			id = uuid.NewString()
		}

		w.Header().Set(utils.CorrelationHeader, id)
		next.ServeHTTP(w, r.WithContext(utils.WithCorrelationID(r.Context(), id)))
	})
}
