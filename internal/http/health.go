package http

import (
	"encoding/json"
	nethttp "net/http"
)

type health struct {
	Status string `json:"status"`
	Videos int    `json:"videos"`
}

// HealthHandler reports liveness and how many videos the catalog holds.
func HealthHandler(videos func() int) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusOK)
		_ = json.NewEncoder(w).Encode(health{Status: "ok", Videos: videos()})
	})
}
