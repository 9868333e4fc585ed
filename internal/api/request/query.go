package request

import (
	"net/http"
	"strconv"

	"github.com/mcoot/edgeguard/internal/api/apierr"
)

// Session listing bounds
const (
	DefaultLimit = 20
	MaxLimit     = 200
)

// Limit reads the optional ?limit= query parameter, clamped to MaxLimit
func Limit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, apierr.NewInvalidRequestError("limit must be a positive integer")
	}
	if n > MaxLimit {
		n = MaxLimit
	}
	return n, nil
}
