package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) authURL(path string) string {
	return c.baseURL + "/auth/v1/" + path
}

// SignUp registers a new identity. Email confirmation, when enabled on the
// project, is driven by the backend.
func (c *Client) SignUp(ctx context.Context, email string, password string) (*User, error) {

	payload, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	status, body, err := c.sendRequest(ctx, http.MethodPost, c.authURL("signup"), "", nil, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, parseAuthError(status, body)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return &user, nil
}

// SignInWithPassword exchanges credentials for an access token.
func (c *Client) SignInWithPassword(ctx context.Context, email string, password string) (*Session, error) {

	payload, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	status, body, err := c.sendRequest(ctx, http.MethodPost, c.authURL("token?grant_type=password"), "", nil, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, parseAuthError(status, body)
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return &session, nil
}

// GetUser resolves the identity behind an access token.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {

	status, body, err := c.sendRequest(ctx, http.MethodGet, c.authURL("user"), token, nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, parseAuthError(status, body)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return &user, nil
}

// SignOut invalidates the session behind the token.
func (c *Client) SignOut(ctx context.Context, token string) error {

	status, body, err := c.sendRequest(ctx, http.MethodPost, c.authURL("logout"), token, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent && status != http.StatusOK {
		return parseAuthError(status, body)
	}
	return nil
}
