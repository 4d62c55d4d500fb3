package middleware

import (
	"net/http"

	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a handler panic into a 500 envelope.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					correlationID, _ := utils.GetCorrelationID(r.Context())
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.String("correlation_id", correlationID),
						zap.Stack("stack"),
					)

					utils.ResponseInternalError(w, r, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
