package transport

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/kamal-hamza/haste-cli/internal/core/domain"
	"github.com/kamal-hamza/haste-cli/internal/core/ports"
)

// Client performs single HTTP round-trips against a hastebin server
type Client struct {
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a client. A nil httpClient uses http.DefaultClient and a
// nil logger discards request logs.
func NewClient(httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Ensure it implements the interface
var _ ports.Requester = (*Client)(nil)

// Request issues a GET when body is empty, otherwise a POST carrying body.
// The status code is not inspected; callers differentiate by body content.
func (c *Client) Request(ctx context.Context, url string, body string) (string, error) {
	method := http.MethodGet
	var payload io.Reader
	if body != "" {
		method = http.MethodPost
		payload = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return "", domain.Wrap(domain.KindTransport, "invalid request", err)
	}

	c.logger.Printf("%s %s (%d bytes)", method, url, len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.Wrap(domain.KindTransport, "request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.Wrap(domain.KindTransport, "failed to read response", err)
	}

	c.logger.Printf("%s %s -> %s (%d bytes)", method, url, resp.Status, len(data))

	if !utf8.Valid(data) {
		return "", domain.Wrap(domain.KindTransport, "failed to read response", errors.New("response body is not valid UTF-8"))
	}

	return string(data), nil
}
