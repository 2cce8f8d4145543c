package web

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/registre/internal/logging"
	"github.com/google/uuid"
)

type ctxKeyLog struct{}
type ctxKeyRequestID struct{}

type logHandler struct {
	log  logging.Logger
	next http.Handler
}

type responseRecorder struct {
	b      int
	status int
	w      http.ResponseWriter
}

func (r *responseRecorder) Header() http.Header { return r.w.Header() }

func (r *responseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.w.Write(p)
	r.b += n
	return n, err
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.w.WriteHeader(statusCode)
}

func (lh *logHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, requestID)

	start := time.Now()
	rr := &responseRecorder{w: w}
	log := lh.log.With(
		"http.req.path", r.URL.Path,
		"http.req.method", r.Method,
		"http.req.id", requestID,
	)
	log.Debug(ctx, "request started")
	defer func() {
		log.Info(ctx, "request complete",
			"http.resp.took_ms", time.Since(start).Milliseconds(),
			"http.resp.status", rr.status,
			"http.resp.bytes", rr.b)
	}()

	rr.Header().Set("X-Request-Id", requestID)
	ctx = context.WithValue(ctx, ctxKeyLog{}, log)
	lh.next.ServeHTTP(rr, r.WithContext(ctx))
}

// requestLogger returns the request-scoped logger set by logHandler.
func requestLogger(r *http.Request, fallback logging.Logger) logging.Logger {
	if l, ok := r.Context().Value(ctxKeyLog{}).(logging.Logger); ok {
		return l
	}
	return fallback
}
