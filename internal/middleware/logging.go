package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

var logger *zap.SugaredLogger = zap.NewNop().Sugar()

// SetLogger installs the request logger used by WithLogging.
func SetLogger(l *zap.SugaredLogger) {
	logger = l
}

// responseCapture proxies writes while recording the status code and the
// number of body bytes. Shared by the logging and metrics middleware.
type responseCapture struct {
	http.ResponseWriter
	status int
	size   int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{ResponseWriter: w, status: http.StatusOK}
}

func (c *responseCapture) Write(b []byte) (int, error) {
	n, err := c.ResponseWriter.Write(b)
	c.size += n
	return n, err
}

func (c *responseCapture) WriteHeader(statusCode int) {
	c.ResponseWriter.WriteHeader(statusCode)
	c.status = statusCode
}

// WithLogging logs method, URI, status, response size and duration of
// every request.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		capture := newResponseCapture(w)
		next.ServeHTTP(capture, r)

		logger.Infow("request",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", capture.status,
			"size", capture.size,
			"duration", time.Since(start),
		)
	})
}
