// Package api implements the HTTP client for the auth and user services.
// Error messages returned by the services are surfaced verbatim so the CLI
// can show exactly what the server said.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mpetrov/dashauth/internal/common"
)

// User is the profile view returned by both services.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the payload of successful signup and login calls.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Client struct {
	authBaseURL string
	userBaseURL string
	httpClient  *http.Client
}

func NewClient(authBaseURL, userBaseURL string) *Client {
	return &Client{
		authBaseURL: authBaseURL,
		userBaseURL: userBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates an account and returns the issued token and user view.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	out := &AuthResponse{}
	err := c.postJSON(ctx, c.authBaseURL+"/api/auth/signup",
		signupRequest{Name: name, Email: email, Password: password}, out, "Signup failed")
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Login exchanges credentials for a token and user view.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	out := &AuthResponse{}
	err := c.postJSON(ctx, c.authBaseURL+"/api/auth/login",
		loginRequest{Email: email, Password: password}, out, "Login failed")
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Profile fetches the caller's own profile using the stored token. A 401
// response wraps common.ErrorUnauthorized so callers can clear local state.
func (c *Client) Profile(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userBaseURL+"/api/users/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", common.ErrorUnauthorized, serverMessage(resp, "Failed to load profile"))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(serverMessage(resp, "Failed to load profile"))
	}

	user := &User{}
	if err := json.NewDecoder(resp.Body).Decode(user); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}
	return user, nil
}

func (c *Client) postJSON(ctx context.Context, url string, in, out any, fallback string) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.New(serverMessage(resp, fallback))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// serverMessage extracts the {"message": ...} envelope from an error
// response, falling back when the body is missing or not JSON.
func serverMessage(resp *http.Response, fallback string) string {
	var m struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil || m.Message == "" {
		return fallback
	}
	return m.Message
}
