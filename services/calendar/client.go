// File: services/calendar/client.go
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"roomly/models"
)

// API is the calendar-provider surface this service depends on. The concrete
// HTTP schema behind it is the provider's business; everything above this
// interface works with domain types only.
type API interface {
	// ListCalendars returns every calendar visible to the caller.
	ListCalendars(ctx context.Context) ([]models.CalendarInfo, error)
	// ListEvents returns the events on the named calendar overlapping
	// [start, end). An empty slice means the window is free.
	ListEvents(ctx context.Context, calendarName string, start, end time.Time) ([]models.CalendarEvent, error)
	// CreateEvent writes one event to the caller's own calendar.
	CreateEvent(ctx context.Context, draft models.EventDraft, requestToken string) error
}

type accessTokenKey struct{}

// WithAccessToken returns a context carrying the caller's own OAuth token.
// The voice platform hands one through per invocation; requests made under
// this context authenticate as that caller instead of the service account.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFrom returns the invocation-scoped token, or "" when absent.
func AccessTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}

// APIError is a structured non-2xx response from the provider.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calendar API error %d (%s): %s", e.Status, e.Code, e.Message)
}

// Client talks to the calendar provider's REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient returns a Client for the given provider endpoint. token is the
// bearer token used when the invocation does not carry its own.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListCalendars(ctx context.Context) ([]models.CalendarInfo, error) {
	var out struct {
		Value []models.CalendarInfo `json:"value"`
	}
	if err := c.do(ctx, http.MethodGet, "/me/calendars", nil, "", &out); err != nil {
		return nil, fmt.Errorf("listing calendars: %w", err)
	}
	return out.Value, nil
}

func (c *Client) ListEvents(ctx context.Context, calendarName string, start, end time.Time) ([]models.CalendarEvent, error) {
	path := fmt.Sprintf("/me/calendars/%s/calendarview?start=%s&end=%s",
		url.PathEscape(calendarName),
		url.QueryEscape(start.UTC().Format(time.RFC3339)),
		url.QueryEscape(end.UTC().Format(time.RFC3339)),
	)
	var out struct {
		Value []models.CalendarEvent `json:"value"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, "", &out); err != nil {
		return nil, fmt.Errorf("listing events for %q: %w", calendarName, err)
	}
	return out.Value, nil
}

func (c *Client) CreateEvent(ctx context.Context, draft models.EventDraft, requestToken string) error {
	payload := map[string]any{
		"subject": draft.Subject,
		"body":    map[string]string{"contentType": "Text", "content": draft.Body},
		"start":   draft.Start.UTC().Format(time.RFC3339),
		"end":     draft.End.UTC().Format(time.RFC3339),
		"attendees": []map[string]any{
			{
				"emailAddress": map[string]string{"name": draft.AttendeeName, "address": draft.AttendeeAddress},
				"type":         "required",
			},
		},
	}
	if err := c.do(ctx, http.MethodPost, "/me/events", payload, requestToken, nil); err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

// do performs one request. A non-2xx status is decoded into an APIError;
// out, when non-nil, receives the decoded success body.
func (c *Client) do(ctx context.Context, method, path string, body any, requestToken string, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Prefer the invocation's own token; the configured token is the
	// development fallback.
	token := AccessTokenFrom(ctx)
	if token == "" {
		token = c.token
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestToken != "" {
		req.Header.Set("Client-Request-Id", requestToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var wire struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&wire); decodeErr == nil {
			apiErr.Code = wire.Error.Code
			apiErr.Message = wire.Error.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response failed: %w", err)
		}
	}
	return nil
}
