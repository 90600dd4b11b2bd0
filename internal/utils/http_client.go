package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// APIKeyHeader is the header carrying the shared API secret.
const APIKeyHeader = "X-API-KEY"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL that sends apiKey in
// the X-API-KEY header of every request. A zero timeout leaves resty's
// default (no timeout) in place.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", "secret", 5*time.Second)
//	resp, err := client.R().Get("/questions")
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader(APIKeyHeader, apiKey).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
