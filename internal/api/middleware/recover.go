package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
)

// Logger logging interface
type Logger interface {
	Error(format string, v ...interface{})
}

// Recover turns a handler panic into a 500 response
func Recover(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error("%s %s - panic: %v", r.Method, r.URL.Path, p)
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
