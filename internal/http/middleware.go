package http

import (
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs every request once it has been served.
func RequestLogger(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = nethttp.StatusOK
		}
		logger(r).WithFields(log.Fields{
			"status":   status,
			"bytes":    ww.BytesWritten(),
			"duration": time.Since(start),
		}).Info("request served")
	})
}

func logger(r *nethttp.Request) *log.Entry {
	return log.WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})
}
