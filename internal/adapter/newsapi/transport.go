package newsapi

import (
	"net/http"

	"github.com/google/uuid"
)

// headerTransport stamps the fixed client headers and a per-request ID onto
// every outgoing request.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Content-Type", "application/json")
	cloned.Header.Set("User-Agent", t.userAgent)
	if cloned.Header.Get("X-Request-ID") == "" {
		cloned.Header.Set("X-Request-ID", uuid.NewString())
	}
	return t.base.RoundTrip(cloned)
}
