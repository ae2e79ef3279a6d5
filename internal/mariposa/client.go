// Package mariposa is a thin REST client for the Mariposa notes service.
// Every operation is a single round trip with a fixed short timeout and no
// retry; failures come back as *model.ServiceError so callers can degrade to
// an absent result instead of handling transport details.
package mariposa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/eddiman/mariposa/internal/model"
)

const (
	defaultBaseURL = "http://host.docker.internal:3020"
	defaultTimeout = 5 * time.Second
)

// slugRe is the only note reference format the client will ever look up.
var slugRe = regexp.MustCompile(`^(?i)note-\d+$`)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// GetNote fetches one note by slug. Slugs not of the form note-<digits> are
// rejected locally without a round trip.
func (c *Client) GetNote(ctx context.Context, slug string) (*model.Note, error) {
	if !slugRe.MatchString(slug) {
		return nil, &model.ServiceError{Op: "get_note", Message: "invalid slug " + slug}
	}
	var note model.Note
	if err := c.getJSON(ctx, "get_note", "/api/notes/"+url.PathEscape(strings.ToLower(slug)), &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes fetches all notes, optionally filtered by a free-text search
// query appended as ?search=.
func (c *Client) ListNotes(ctx context.Context, search string) ([]model.Note, error) {
	endpoint := "/api/notes"
	if strings.TrimSpace(search) != "" {
		q := url.Values{}
		q.Set("search", search)
		endpoint += "?" + q.Encode()
	}
	var body struct {
		Notes []model.Note `json:"notes"`
	}
	if err := c.getJSON(ctx, "list_notes", endpoint, &body); err != nil {
		return nil, err
	}
	return body.Notes, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := c.getJSON(ctx, "list_categories", "/api/categories", &body); err != nil {
		return nil, err
	}
	return body.Categories, nil
}

func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var body struct {
		Tags []string `json:"tags"`
	}
	if err := c.getJSON(ctx, "list_tags", "/api/tags", &body); err != nil {
		return nil, err
	}
	return body.Tags, nil
}

// DeleteNote asks the service to delete a note. Success is exactly an empty
// 204 response; anything else is reported as a ServiceError with the
// service's message attached.
func (c *Client) DeleteNote(ctx context.Context, slug string) error {
	if !slugRe.MatchString(slug) {
		return &model.ServiceError{Op: "delete_note", Message: "invalid slug " + slug}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/api/notes/"+url.PathEscape(strings.ToLower(slug)), nil)
	if err != nil {
		return &model.ServiceError{Op: "delete_note", Message: "failed to build request", Cause: err}
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &model.ServiceError{Op: "delete_note", Message: "request failed", Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	raw, _ := io.ReadAll(resp.Body)
	message := strings.TrimSpace(string(raw))
	if message == "" {
		message = fmt.Sprintf("status %d", resp.StatusCode)
	}
	return &model.ServiceError{Op: "delete_note", StatusCode: resp.StatusCode, Message: message}
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return &model.ServiceError{Op: op, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &model.ServiceError{Op: op, Message: "request failed", Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &model.ServiceError{Op: op, StatusCode: resp.StatusCode, Message: "failed to read response", Cause: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := strings.TrimSpace(string(raw))
		if message == "" {
			message = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return &model.ServiceError{Op: op, StatusCode: resp.StatusCode, Message: message}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &model.ServiceError{Op: op, StatusCode: resp.StatusCode, Message: "malformed response body", Cause: err}
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: defaultTimeout}
}
