package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// LoggingMiddleware пишет в лог каждый запрос вместе с request id из chi.
func LoggingMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Infof("request_id=%s method=%s path=%s status=%d bytes=%d duration=%s",
				middleware.GetReqID(r.Context()), r.Method, r.URL.Path,
				ww.Status(), ww.BytesWritten(), time.Since(start),
			)
		})
	}
}

// logError пишет ошибку обработчика: 5xx как error, остальное как warn.
func logError(log logger.Logger, r *http.Request, err error) {
	code, _ := ToHTTPResponse(err)
	reqID := middleware.GetReqID(r.Context())

	if code >= http.StatusInternalServerError {
		log.Errorf(err, "request_id=%s %s %s", reqID, r.Method, r.URL.Path)
		return
	}

	log.Warnf("request_id=%s %s %s: %v", reqID, r.Method, r.URL.Path, err)
}
