// Package client provides the authenticated SharePoint REST session with
// typed error handling and request metrics.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Azure/go-ntlmssp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/sicedia/sharepoint-2019-connect-api/pkg/logging"
)

// Prometheus metrics for SharePoint request operations.
var (
	spRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sp_requests_total",
		Help: "Total SharePoint requests by HTTP status",
	}, []string{"status"})

	spRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sp_request_duration_seconds",
		Help:    "SharePoint request duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})

	spErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sp_errors_total",
		Help: "Total SharePoint request errors by class",
	}, []string{"class"})
)

// Fixed request headers: JSON content negotiation, no OData metadata.
const (
	acceptHeader      = "application/json;odata=nometadata"
	contentTypeHeader = "application/json"
)

// DefaultTimeout applies when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Config holds the session configuration.
type Config struct {
	// SiteURL is the base address of the SharePoint site.
	SiteURL string

	// Username and Password form the NTLM credential pair.
	Username string
	Password string

	// Timeout applies per request.
	Timeout time.Duration
}

// Client is a reusable authenticated SharePoint session. It is created once
// and used read-only across all requests of a run.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Response is a fully read SharePoint response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New creates an authenticated session.
func New(cfg Config) (*Client, error) {
	if cfg.SiteURL == "" {
		return nil, fmt.Errorf("site url is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	logger := logging.NewLogger("sp-client")

	return &Client{
		httpClient: &http.Client{
			Transport: ntlmssp.Negotiator{RoundTripper: http.DefaultTransport},
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// Get issues an authenticated GET and reads the whole body. A non-2xx status
// or a transport failure is returned as *RequestError; there are no retries.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &RequestError{Class: ErrorClassInvalidArgument, Message: "create request", Err: err}
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Content-Type", contentTypeHeader)
	// The negotiator upgrades these basic credentials to an NTLM handshake
	// when the server asks for it.
	req.SetBasicAuth(c.config.Username, c.config.Password)

	c.logger.Debug().Str("url", url).Msg("Requesting URL")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	spRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		spErrorsTotal.WithLabelValues(string(ErrorClassTransport)).Inc()
		c.logger.Error().Err(err).Str("url", url).Msg("HTTP request failed")
		return nil, &RequestError{Class: ErrorClassTransport, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	spRequestsTotal.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		spErrorsTotal.WithLabelValues(string(ErrorClassTransport)).Inc()
		return nil, &RequestError{Class: ErrorClassTransport, Message: "read body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		spErrorsTotal.WithLabelValues(string(ErrorClassHTTP)).Inc()
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", url).
			Msg("HTTP error")
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Class:      ErrorClassHTTP,
			Message:    resp.Status,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
