package hostio

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Net fetches resources over HTTP. It satisfies patlib.Net.
type Net struct {
	client *http.Client
}

// NewNet creates a client with a 30 second timeout.
func NewNet() *Net {
	return &Net{client: &http.Client{Timeout: 30 * time.Second}}
}

// GetString fetches url and returns the response body. A transport error or
// a non-2xx status is a failure.
func (n *Net) GetString(url string) (string, error) {
	resp, err := n.client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
