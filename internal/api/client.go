package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JunoAX/cafe-fausse/internal/models"
)

// AdminTokenHeader carries the admin token on every /admin request
const AdminTokenHeader = "X-Admin-Token"

// RequestIDHeader correlates a page request with the backend calls it made
const RequestIDHeader = "X-Request-ID"

// maxBodySize caps how much of a backend response is read
const maxBodySize = 4 << 20

// Client talks to the restaurant backend
type Client struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for backend call diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the backend rooted at baseURL. An empty
// adminToken is still sent; the backend decides what it accepts.
func NewClient(baseURL, adminToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adminToken: adminToken,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "api_client")
	return c
}

// BaseURL returns the backend root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubscribeNewsletter signs a guest up for the newsletter
func (c *Client) SubscribeNewsletter(ctx context.Context, req models.NewsletterRequest) (*models.SubscribeResponse, error) {
	status, data, err := c.do(ctx, http.MethodPost, "/newsletter", req, false)
	if err != nil {
		return nil, &SubscriptionError{Message: fallbackSubscription, Err: err}
	}

	if !isSuccess(status) {
		return nil, &SubscriptionError{
			StatusCode: status,
			Message:    backendMessage(data, fallbackSubscription),
		}
	}

	var ack models.SubscribeResponse
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &ack); err != nil {
			return nil, &SubscriptionError{
				StatusCode: status,
				Message:    fallbackSubscription,
				Err:        &MalformedResponseError{Path: "/newsletter", StatusCode: status, Snippet: snippet(data), Err: err},
			}
		}
	}

	return &ack, nil
}

// CreateReservation books a table and returns the reservation with the
// table number the backend assigned
func (c *Client) CreateReservation(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	status, data, err := c.do(ctx, http.MethodPost, "/reservations", req, false)
	if err != nil {
		return nil, &ReservationError{Message: fallbackReservation, Err: err}
	}

	if !isSuccess(status) {
		return nil, &ReservationError{
			StatusCode: status,
			Message:    backendMessage(data, fallbackReservation),
		}
	}

	var resp models.ReservationResponse
	if err := json.Unmarshal(data, &resp); err != nil || resp.Reservation == nil {
		if err == nil {
			err = errors.New("response has no reservation")
		}
		return nil, &ReservationError{
			StatusCode: status,
			Message:    fallbackReservation,
			Err:        &MalformedResponseError{Path: "/reservations", StatusCode: status, Snippet: snippet(data), Err: err},
		}
	}

	return resp.Reservation, nil
}

// ListAdminReservations returns every reservation, customer embedded
func (c *Client) ListAdminReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.getAdmin(ctx, "/admin/reservations", &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListAdminCustomers returns every known customer
func (c *Client) ListAdminCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.getAdmin(ctx, "/admin/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetAdminSummary returns the customer and reservation counts
func (c *Client) GetAdminSummary(ctx context.Context) (*models.Summary, error) {
	var summary models.Summary
	if err := c.getAdmin(ctx, "/admin/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// getAdmin fetches an admin endpoint and decodes it into v. Bodies that are
// not JSON of the right shape become MalformedResponseError, never a panic.
func (c *Client) getAdmin(ctx context.Context, path string, v any) error {
	status, data, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return err
	}

	if !isSuccess(status) {
		c.logger.Warn("Admin request rejected", "path", path, "status", status)
		return &StatusError{Path: path, StatusCode: status, Snippet: snippet(data)}
	}

	if err := json.Unmarshal(data, v); err != nil {
		c.logger.Warn("Admin response is not JSON", "path", path, "status", status, "error", err)
		return &MalformedResponseError{Path: path, StatusCode: status, Snippet: snippet(data), Err: err}
	}

	return nil
}

// do issues one request and returns the status and raw body. Only transport
// failures are errors here; status handling belongs to the caller.
func (c *Client) do(ctx context.Context, method, path string, body any, admin bool) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, &RequestError{Method: method, Path: path, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, &RequestError{Method: method, Path: path, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set(AdminTokenHeader, c.adminToken)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Backend request failed", "method", method, "path", path, "error", err)
		return 0, nil, &RequestError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, nil, &RequestError{Method: method, Path: path, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("Backend request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	return resp.StatusCode, data, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// backendMessage extracts {"error": "..."} from a failure body
func backendMessage(data []byte, fallback string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fallback
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return msg
	}
	return fallback
}
