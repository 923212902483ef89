package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/dixieflatline76/Wallfetch/pkg/wallhaven"
	"github.com/dixieflatline76/Wallfetch/pkg/wallpaper"
	"github.com/dixieflatline76/Wallfetch/util/log"
)

// Error kinds reported in the "error" field of a failed response.
const (
	KindNetwork       = "network"
	KindParse         = "parse"
	KindEmptyCatalog  = "empty_catalog"
	KindNotConfigured = "not_configured"
	KindIO            = "io"
	KindBadRequest    = "bad_request"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classify maps an operation error to its kind and HTTP status.
func classify(err error) (string, int) {
	var (
		parseErr *wallhaven.ParseError
		httpErr  *wallhaven.HTTPError
		urlErr   *url.Error
		netErr   net.Error
	)
	switch {
	case errors.Is(err, wallpaper.ErrNotConfigured):
		return KindNotConfigured, http.StatusNotFound
	case errors.Is(err, wallpaper.ErrEmptyCatalog):
		return KindEmptyCatalog, http.StatusNotFound
	case errors.Is(err, wallpaper.ErrInvalidImageURL):
		return KindBadRequest, http.StatusBadRequest
	case errors.As(err, &parseErr):
		return KindParse, http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return KindNetwork, http.StatusGatewayTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return KindNetwork, http.StatusGatewayTimeout
	case errors.As(err, &httpErr), errors.As(err, &urlErr), errors.As(err, &netErr):
		return KindNetwork, http.StatusBadGateway
	default:
		return KindIO, http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind, status := classify(err)
	log.Printf("[%s] %s %s failed (%s): %v", requestID(r.Context()), r.Method, r.URL.Path, kind, err)
	writeJSON(w, status, ErrorResponse{Error: kind, Message: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	log.Printf("[%s] %s %s bad request: %s", requestID(r.Context()), r.Method, r.URL.Path, msg)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: KindBadRequest, Message: msg})
}
