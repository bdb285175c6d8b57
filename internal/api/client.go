// Package api is the client for the remote Tugas service. The server
// owns all persistence and business validation; this package only
// shapes requests, attaches the session credential, and turns
// responses into typed results or errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/logger"
	"github.com/julianstephens/tugas/internal/models"
	"github.com/julianstephens/tugas/internal/session"
)

type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
}

func New(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: constants.RequestTimeout},
		sessions: sessions,
	}
}

// BaseURL returns the configured server base.
func (c *Client) BaseURL() string { return c.baseURL }

type loginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Register creates an account. No session is established; the caller
// sends the user to the login view on success.
func (c *Client) Register(ctx context.Context, draft models.Registration) error {
	return c.do(ctx, http.MethodPost, "/register", draft, nil, false)
}

// Login authenticates and persists the returned credential in the
// session store. A 401 here is a wrong password, not an expired
// session, so the payload message is surfaced like any other API
// error.
func (c *Client) Login(ctx context.Context, creds models.Credentials) error {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", creds, &resp, false); err != nil {
		return err
	}
	if resp.Token == "" {
		// Cookie-based deployment: the server established the session
		// itself and sent no bearer token. Nothing to store.
		logger.Debug("login response carried no token")
		return nil
	}
	var expiry time.Time
	if resp.ExpiresAt != nil {
		expiry = *resp.ExpiresAt
	}
	return c.sessions.Set(resp.Token, expiry)
}

// ListTodos fetches the whole collection for the current session.
func (c *Client) ListTodos(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos, true); err != nil {
		return nil, err
	}
	return todos, nil
}

type todoPayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     string          `json:"due_date,omitempty"`
	Priority    models.Priority `json:"priority"`
	IsComplete  bool            `json:"is_complete"`
}

// CreateTodo submits a draft, normalizing the due date to an absolute
// instant before send.
func (c *Client) CreateTodo(ctx context.Context, draft models.TodoDraft) (models.Todo, error) {
	payload := todoPayload{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Priority:    draft.Priority,
	}
	if strings.TrimSpace(draft.DueDate) != "" {
		due, err := draft.DueDateTime()
		if err != nil {
			return models.Todo{}, fmt.Errorf("invalid due date %q: %w", draft.DueDate, err)
		}
		payload.DueDate = due.Format(time.RFC3339)
	}

	var created models.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", payload, &created, true); err != nil {
		return models.Todo{}, err
	}
	return created, nil
}

// UpdateTodo sends the complete edited record; the server replaces the
// stored one wholesale.
func (c *Client) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	var updated models.Todo
	if err := c.do(ctx, http.MethodPut, "/todos/"+todo.ID, todo, &updated, true); err != nil {
		return models.Todo{}, err
	}
	return updated, nil
}

// DeleteTodo removes a record by id.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+id, nil, nil, true)
}

// Profile fetches the account data for the current session.
func (c *Client) Profile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &p, true); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// UpdateName changes the display name and returns the updated profile.
func (c *Client) UpdateName(ctx context.Context, name string) (models.Profile, error) {
	body := map[string]string{"name": strings.TrimSpace(name)}
	var resp struct {
		User models.Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/user/update-name", body, &resp, true); err != nil {
		return models.Profile{}, err
	}
	return resp.User, nil
}

// UpdatePassword changes the password. The confirm field never leaves
// the client.
func (c *Client) UpdatePassword(ctx context.Context, current, newPassword string) error {
	body := map[string]string{
		"currentPassword": current,
		"newPassword":     newPassword,
	}
	return c.do(ctx, http.MethodPut, "/user/update-password", body, nil, true)
}

// Ping reports whether the server answers HTTP at all. Any status
// counts as reachable; only a transport failure is an error.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	resp.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.sessions.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if authed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		logger.Info("credential rejected, clearing session", "path", path, "status", resp.StatusCode)
		if err := c.sessions.Clear(); err != nil {
			logger.Warn("failed to clear session", "error", err)
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthenticated)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &Error{Status: resp.StatusCode, Message: payload.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
