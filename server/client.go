package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/amonks/tasklist/todo"
)

// Client calls todo RPCs.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the given address or URL.
func NewClient(addr string) *Client {
	baseURL := strings.TrimRight(addr, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &Client{baseURL: baseURL, client: &http.Client{}}
}

// BaseURL returns the server URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// View returns the todos visible in mode whose text contains search.
func (c *Client) View(ctx context.Context, mode todo.DisplayMode, search string) (ViewResponse, error) {
	var response ViewResponse
	err := c.post(ctx, "/tasks/view", ViewRequest{Mode: mode, Search: search}, &response)
	return response, err
}

// ViewAt is View with an explicit reference time for due labels.
func (c *Client) ViewAt(ctx context.Context, mode todo.DisplayMode, search string, now time.Time) (ViewResponse, error) {
	var response ViewResponse
	err := c.post(ctx, "/tasks/view", ViewRequest{Mode: mode, Search: search, Now: &now}, &response)
	return response, err
}

// Create adds a todo.
func (c *Client) Create(ctx context.Context, request CreateRequest) (todo.Todo, error) {
	var response TodoResponse
	if err := c.post(ctx, "/tasks/create", request, &response); err != nil {
		return todo.Todo{}, err
	}
	return response.Todo, nil
}

// Update applies opts to the todo with the given ID. Use Show to resolve
// a prefix first.
func (c *Client) Update(ctx context.Context, id string, opts todo.UpdateOptions) (todo.Todo, bool, error) {
	var response UpdateResponse
	request := UpdateRequest{ID: id, Completed: opts.Completed, Text: opts.Text}
	if err := c.post(ctx, "/tasks/update", request, &response); err != nil {
		return todo.Todo{}, false, err
	}
	return response.Todo, response.Found, nil
}

// SetCompleted marks a todo completed or active.
func (c *Client) SetCompleted(ctx context.Context, id string, completed bool) (todo.Todo, bool, error) {
	return c.Update(ctx, id, todo.UpdateOptions{Completed: &completed})
}

// Edit replaces a todo's text.
func (c *Client) Edit(ctx context.Context, id, text string) (todo.Todo, bool, error) {
	return c.Update(ctx, id, todo.UpdateOptions{Text: &text})
}

// Delete removes a todo. It reports whether a todo was removed.
func (c *Client) Delete(ctx context.Context, id string) (bool, error) {
	var response DeleteResponse
	if err := c.post(ctx, "/tasks/delete", DeleteRequest{ID: id}, &response); err != nil {
		return false, err
	}
	return response.Found, nil
}

// Show returns the todo with the given ID or unique prefix.
func (c *Client) Show(ctx context.Context, id string) (todo.Todo, error) {
	var response TodoResponse
	if err := c.post(ctx, "/tasks/show", ShowRequest{ID: id}, &response); err != nil {
		return todo.Todo{}, err
	}
	return response.Todo, nil
}

// Info returns the server's display settings.
func (c *Client) Info(ctx context.Context) (InfoResponse, error) {
	var response InfoResponse
	err := c.post(ctx, "/info", emptyRequest{}, &response)
	return response, err
}

func (c *Client) post(ctx context.Context, path string, payload any, dest any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("contact server at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return readErrorResponse(resp)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	return nil
}

func readErrorResponse(resp *http.Response) error {
	var payload errorResponse
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&payload); err == nil && payload.Error != "" {
		return &Error{StatusCode: resp.StatusCode, Code: payload.Code, Message: payload.Error}
	}
	return &Error{StatusCode: resp.StatusCode, Message: resp.Status}
}
