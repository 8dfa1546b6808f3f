// Package client drives the public site's reservation and contact forms
// against the HTTP API: local validation, one submission at a time, and the
// status a visitor sees afterwards.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"reservation-service/i18n"
	"reservation-service/middleware"
	"reservation-service/models"
	"reservation-service/responses"
)

// TransportError means no usable answer came back: the request could not be
// sent or the body could not be read or decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a well-formed answer reporting failure.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// APIClient talks to the reservation service.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient returns a client for baseURL. A nil httpClient gets a default
// one with a 15s timeout.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *APIClient) CreateReservation(ctx context.Context, req models.ReservationRequest, locale i18n.Locale, idempotencyKey string) (models.Reservation, error) {
	var out responses.ReservationCreated
	if err := c.post(ctx, "/api/reservations", req, locale, idempotencyKey, &out); err != nil {
		return models.Reservation{}, err
	}
	if !out.Success {
		return models.Reservation{}, &APIError{StatusCode: http.StatusCreated, Message: out.Message}
	}
	return out.Reservation, nil
}

func (c *APIClient) SubmitContact(ctx context.Context, req models.ContactRequest, locale i18n.Locale, idempotencyKey string) (responses.ContactSummary, error) {
	var out responses.ContactCreated
	if err := c.post(ctx, "/api/contact", req, locale, idempotencyKey, &out); err != nil {
		return responses.ContactSummary{}, err
	}
	if !out.Success {
		return responses.ContactSummary{}, &APIError{StatusCode: http.StatusCreated, Message: out.Message}
	}
	return out.Data, nil
}

func (c *APIClient) ListReservations(ctx context.Context, page models.Page) (responses.ReservationList, error) {
	var out responses.ReservationList
	err := c.get(ctx, "/api/reservations", page, &out)
	return out, err
}

func (c *APIClient) ListContacts(ctx context.Context, page models.Page) (responses.ContactList, error) {
	var out responses.ContactList
	err := c.get(ctx, "/api/contact", page, &out)
	return out, err
}

func (c *APIClient) post(ctx context.Context, path string, body interface{}, locale i18n.Locale, idempotencyKey string, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Op: "encode request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if locale != "" {
		req.Header.Set("Accept-Language", string(locale))
	}
	if idempotencyKey != "" {
		req.Header.Set(middleware.IdempotencyKeyHeader, idempotencyKey)
	}
	return c.do(req, out)
}

func (c *APIClient) get(ctx context.Context, path string, page models.Page, out interface{}) error {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page.Page))
	q.Set("limit", strconv.Itoa(page.Limit))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return &TransportError{Op: "build request", Err: err}
	}
	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: req.Method + " " + req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr responses.ErrorResponse
		if err := json.Unmarshal(data, &apiErr); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message, Errors: apiErr.Errors}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Op: "decode response", Err: err}
	}
	return nil
}
