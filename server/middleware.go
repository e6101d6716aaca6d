package server

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasuboski/vodz/pkg/logger"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// LogMiddleware attaches a request scoped logger to the context and logs every response.
// A request id sent by the client is kept so calls can be traced through a proxy.
func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)

			log := s.baseLogger.With(zap.String("request_path", r.URL.Path), zap.String("id", id))

			m := httpsnoop.CaptureMetrics(h, w, r.WithContext(logger.WithCtx(r.Context(), log)))

			fields := []any{
				zap.String("method", r.Method),
				zap.Int("status", m.Code),
				zap.Duration("duration", m.Duration),
				zap.Int64("bytes", m.Written),
			}
			if m.Code >= http.StatusInternalServerError {
				log.Warnw("request failed", fields...)
				return
			}
			log.Debugw("request served", fields...)
		})
	}
}
