package newsapi

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client. The header transport is
// installed on top of its Transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		clone := *hc
		c.httpClient = &clone
		return nil
	}
}

// WithTimeout bounds every request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("timeout must be >= 0")
		}
		c.httpClient.Timeout = d
		return nil
	}
}

// WithUserAgent overrides the client identifier sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}
