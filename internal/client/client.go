// Package client is the HTTP client for the guest API, used by the RSVP
// form controller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"wedding-site/internal/models"
	"wedding-site/internal/storage"
)

// Client talks to a wedding-site backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// GuestByCode fetches the guest record for an invitation code. An unknown
// code is reported as storage.ErrNotFound.
func (c *Client) GuestByCode(ctx context.Context, code string) (*models.Guest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/guest/"+url.PathEscape(code), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}
	var guest models.Guest
	if err := json.NewDecoder(resp.Body).Decode(&guest); err != nil {
		return nil, fmt.Errorf("failed to decode guest: %w", err)
	}
	return &guest, nil
}

// SubmitRSVP posts the full member list for a code. A nil rsvp is sent as
// the empty placeholder the form uses for member-only saves.
func (c *Client) SubmitRSVP(ctx context.Context, code string, members []models.GuestMember, rsvp *models.GuestRSVP) (*models.Guest, error) {
	if rsvp == nil {
		rsvp = &models.GuestRSVP{}
	}
	body, err := json.Marshal(map[string]interface{}{
		"members": members,
		"rsvp":    rsvp,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/guest/"+url.PathEscape(code)+"/rsvp", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit rsvp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}
	var result struct {
		Success bool          `json:"success"`
		Guest   *models.Guest `json:"guest"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode rsvp response: %w", err)
	}
	return result.Guest, nil
}

func (c *Client) apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", body.Error, storage.ErrNotFound)
	}
	if body.Error != "" {
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("api error (%d)", resp.StatusCode)
}
