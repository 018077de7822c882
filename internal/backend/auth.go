package backend

import (
	"context"
	"net/http"

	"github.com/gharseva/provider-portal/internal/models"
)

// wireUser tolerates both the backend's Mongo-style "_id" and a plain "id".
type wireUser struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func (w wireUser) toUser() models.User {
	id := w.MongoID
	if id == "" {
		id = w.ID
	}
	return models.User{ID: id, Name: w.Name, Email: w.Email}
}

// AuthResult is a successful login or signup: the identity the backend
// returned plus the session cookies it set, which must be relayed to the
// browser.
type AuthResult struct {
	User    models.User
	Cookies []*http.Cookie
}

// Session is the answer to the "who am I" probe.
type Session struct {
	User     models.User
	Provider *models.Provider
}

// Me probes the current session. Any failure, transport or HTTP, means "not
// authenticated" to callers; they should not distinguish.
func (c *Client) Me(ctx context.Context, cookies []*http.Cookie) (*Session, error) {
	var payload struct {
		User     wireUser         `json:"user"`
		Provider *models.Provider `json:"provider"`
	}
	if _, err := c.get(ctx, "/api/auth/me", cookies, &payload); err != nil {
		return nil, err
	}
	return &Session{User: payload.User.toUser(), Provider: payload.Provider}, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var payload struct {
		User wireUser `json:"user"`
	}
	resp, err := c.post(ctx, "/api/auth/login", nil, body, &payload)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: payload.User.toUser(), Cookies: resp.Cookies()}, nil
}

// Signup registers a new provider account.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*AuthResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var payload struct {
		User wireUser `json:"user"`
	}
	resp, err := c.post(ctx, "/api/auth/signup", nil, body, &payload)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: payload.User.toUser(), Cookies: resp.Cookies()}, nil
}

// Logout invalidates the backend session. Callers clear local state whether
// or not this succeeds.
func (c *Client) Logout(ctx context.Context, cookies []*http.Cookie) error {
	_, err := c.post(ctx, "/api/auth/logout", cookies, nil, nil)
	return err
}
