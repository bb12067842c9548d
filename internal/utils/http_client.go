package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client exposing all of its methods
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool,
// base URL and request timeout. Resty retries are left disabled: every
// outbound call of the login protocol happens at most once.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://auth.example.com", 15*time.Second)
//	resp, err := client.R().Get("/admin/user/getPublicKey")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
