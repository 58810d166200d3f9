package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// CatalogInfoFunc reports the current catalog size and load time
type CatalogInfoFunc func() (size int, loadedAt time.Time)

var catalogInfoFunc CatalogInfoFunc

// SetCatalogInfoFunc sets the function reporting catalog state
func SetCatalogInfoFunc(fn CatalogInfoFunc) {
	catalogInfoFunc = fn
}

var serviceName string

// SetServiceName sets the service name reported by /health
func SetServiceName(name string) {
	serviceName = name
}

// HandlePing handles /ping
func HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleHealth handles /health
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	payload := map[string]any{
		"status":  "ok",
		"service": serviceName,
	}
	if catalogInfoFunc != nil {
		size, loadedAt := catalogInfoFunc()
		payload["catalog_size"] = size
		if !loadedAt.IsZero() {
			payload["catalog_loaded_at"] = loadedAt.Format(time.RFC3339)
		}
	}
	_ = json.NewEncoder(w).Encode(payload)
}
