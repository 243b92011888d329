package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/gnuletik/datocms-client-go/internal/web/response"
)

// Recovery turns a panicking handler into a 500 JSON:API error response.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recovery(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("panic", fmt.Sprint(rec)),
					zap.ByteString("stack", debug.Stack()),
				)
				response.RenderError(w, http.StatusInternalServerError, fmt.Errorf("internal server error"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
