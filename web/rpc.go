package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/amonks/tasklist/todo"
)

func postJSON(ctx context.Context, client *http.Client, baseURL, path string, payload any, dest any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
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
	var payload map[string]string
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&payload); err == nil {
		if message, ok := payload["error"]; ok {
			return fmt.Errorf("tasklist error: %s", message)
		}
	}
	return fmt.Errorf("tasklist error: %s", resp.Status)
}

// Wire types mirror the server package's RPC payloads.

type viewRequest struct {
	Mode   string `json:"mode"`
	Search string `json:"search"`
}

type viewItem struct {
	Todo  todo.Todo     `json:"todo"`
	Text  string        `json:"text"`
	Label todo.DueLabel `json:"label"`
	Due   string        `json:"due"`
}

type viewResponse struct {
	Mode  string     `json:"mode"`
	Todos []viewItem `json:"todos"`
}

type createRequest struct {
	Text     string `json:"text"`
	Priority string `json:"priority,omitempty"`
	Due      string `json:"due,omitempty"`
}

type todoResponse struct {
	Todo todo.Todo `json:"todo"`
}

type updateRequest struct {
	ID        string  `json:"id"`
	Completed *bool   `json:"completed,omitempty"`
	Text      *string `json:"text,omitempty"`
}

type updateResponse struct {
	Todo  todo.Todo `json:"todo"`
	Found bool      `json:"found"`
}

type deleteRequest struct {
	ID string `json:"id"`
}

type deleteResponse struct {
	Found bool `json:"found"`
}
