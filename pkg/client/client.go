// Package client is the query layer for the bike service API.
//
// All optional fields are pointers: a nil pointer is sent as an explicit
// JSON null and an incoming null decodes back to nil, so callers never deal
// with a second "absent" representation. The conversion happens once, at
// the doRequest boundary, and nowhere else.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-openapi/strfmt"
)

type Bike struct {
	BikeID string           `json:"bikeId"`
	Email  string           `json:"email"`
	Make   *string          `json:"make"`
	Model  *string          `json:"model"`
	Year   *strfmt.DateTime `json:"year"`
}

// NewBike is the payload for creating a bike. Email is required; the rest
// may be left nil.
type NewBike struct {
	Email string           `json:"email"`
	Make  *string          `json:"make"`
	Model *string          `json:"model"`
	Year  *strfmt.DateTime `json:"year"`
}

// BikePatch is a partial update. Nil fields are left unchanged on the
// server; there is no way to clear a field back to null.
type BikePatch struct {
	Make  *string          `json:"make"`
	Model *string          `json:"model"`
	Year  *strfmt.DateTime `json:"year"`
}

// APIError is the single human-readable error surfaced to callers when the
// service rejects a request.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchBikes returns every bike in the service.
func (c *Client) FetchBikes(ctx context.Context) ([]Bike, error) {
	var bikes []Bike
	if err := c.doRequest(ctx, http.MethodGet, "/bike", nil, &bikes); err != nil {
		return nil, err
	}
	if bikes == nil {
		bikes = []Bike{}
	}
	return bikes, nil
}

// FetchUsersBikes returns the bikes owned by the exact email given.
func (c *Client) FetchUsersBikes(ctx context.Context, email string) ([]Bike, error) {
	var bikes []Bike
	path := "/bike?email=" + url.QueryEscape(email)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &bikes); err != nil {
		return nil, err
	}
	if bikes == nil {
		bikes = []Bike{}
	}
	return bikes, nil
}

// CreateBike creates a bike and returns its server-assigned id.
func (c *Client) CreateBike(ctx context.Context, bike NewBike) (string, error) {
	var bikeID string
	if err := c.doRequest(ctx, http.MethodPost, "/bike", bike, &bikeID); err != nil {
		return "", err
	}
	return bikeID, nil
}

// ModifyBike patches an existing bike.
func (c *Client) ModifyBike(ctx context.Context, bikeID string, patch BikePatch) error {
	if bikeID == "" {
		return &APIError{StatusCode: http.StatusBadRequest, Message: "bikeId is required for updating a bike"}
	}
	return c.doRequest(ctx, http.MethodPatch, "/bike/"+bikeID, patch, nil)
}

// DeleteBike deletes a bike. Deleting an unknown id is still a success.
func (c *Client) DeleteBike(ctx context.Context, bikeID string) error {
	if bikeID == "" {
		return &APIError{StatusCode: http.StatusBadRequest, Message: "bikeId is required for deleting a bike"}
	}
	return c.doRequest(ctx, http.MethodDelete, "/bike/"+bikeID, nil, nil)
}

// doRequest owns the whole network boundary: payload marshalling, error
// extraction and response decoding.
func (c *Client) doRequest(ctx context.Context, method, path string, payload, out interface{}) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFrom(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) errorFrom(resp *http.Response) error {
	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}
