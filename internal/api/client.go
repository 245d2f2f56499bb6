// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "afcare-client/internal/common/errors"
	"afcare-client/internal/common/logger"
	"afcare-client/internal/common/metrics"
	"afcare-client/internal/common/observability"
	"afcare-client/internal/models"
	"afcare-client/internal/session"
)

// Client is the typed REST client for the platform API. All canonical state
// lives on the server; the client never caches responses.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	logger     logger.Logger
	obs        *observability.Observability

	Auth          *AuthService
	Projects      *Resource[models.Project]
	Investors     *InvestorsService
	Verifications *VerificationsService
	DealRooms     *DealRoomsService
	DataRooms     *Resource[models.DataRoom]
	Events        *Resource[models.Event]
	Analytics     *Resource[models.AnalyticReport]
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	Session *session.Session
	Logger  logger.Logger
	Obs     *observability.Observability
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}

	c := &Client{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		session: opts.Session,
		logger:  opts.Logger.WithFields(map[string]interface{}{"component": "api"}),
		obs:     opts.Obs,
	}

	c.Auth = &AuthService{c: c}
	c.Projects = NewResource[models.Project](c, "/projects/")
	c.Investors = &InvestorsService{Resource: NewResource[models.Investor](c, "/investors/"), c: c}
	c.Verifications = &VerificationsService{Resource: NewResource[models.Verification](c, "/verifications/")}
	c.DealRooms = NewDealRoomsService(c)
	c.DataRooms = NewResource[models.DataRoom](c, "/data-rooms/")
	c.Events = NewResource[models.Event](c, "/events/")
	c.Analytics = NewResource[models.AnalyticReport](c, "/analytics/")

	return c
}

// do issues one request. The auth token is read from the session immediately
// before the request is built; each call holds its own copy.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	resource := resourceLabel(path)
	start := time.Now()

	err := c.doOnce(ctx, method, path, query, body, out)

	duration := time.Since(start)
	metrics.APIRequestDuration.WithLabelValues(resource, method).Observe(duration.Seconds())
	metrics.APIRequestsTotal.WithLabelValues(resource, method).Inc()
	if c.obs != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		c.obs.RecordRequest(ctx, resource, status)
		c.obs.RecordRequestDuration(ctx, resource, duration)
	}

	if err != nil {
		metrics.APIRequestsFailed.WithLabelValues(resource, method, errorCode(err)).Inc()
		c.logger.Error("api request failed", map[string]interface{}{
			"method":   method,
			"path":     path,
			"error":    err.Error(),
			"duration": duration.String(),
		})
	}

	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case url.Values:
		reqBody = strings.NewReader(b.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.session != nil {
			c.session.Invalidate(ctx)
		}
		return apperrors.ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return apperrors.NewAPIError(resp.StatusCode, errorDetail(respBody))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewDecodeError(err)
	}

	return nil
}

// errorDetail extracts the API's {"detail": "..."} payload, falling back to
// the raw body.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(body))
}

func errorCode(err error) string {
	if apperrors.IsUnauthorized(err) {
		return string(apperrors.ErrCodeUnauthorized)
	}
	if apiErr, ok := err.(*apperrors.APIError); ok {
		return string(apiErr.Code)
	}
	return "INTERNAL"
}

// resourceLabel reduces a request path to its first segment for metric
// labels, keeping cardinality flat.
func resourceLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
