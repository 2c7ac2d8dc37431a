// Package pluto is a small client for the Pluto finance API.
package pluto

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "http://localhost:8000"

// ErrUnauthorized is returned when the API rejects the bearer token.
// Callers should discard the stored token and re-authenticate.
var ErrUnauthorized = errors.New("pluto: unauthorized")

// Client talks to the Pluto backend. The zero value is not usable;
// construct with NewClient.
type Client struct {
	// HTTP is the underlying client. Exposed so callers can wrap the
	// transport, e.g. with a logging RoundTripper.
	HTTP *http.Client

	baseURL *url.URL
	token   string
}

// NewClient creates a client for the given base URL. The token may be
// empty for unauthenticated calls such as Login.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		baseURL: u,
		token:   token,
	}, nil
}

// SetToken replaces the bearer token used for authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %s: %s", method, path, resp.Status, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}

	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. The token is also set
// on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}

	c.token = resp.AccessToken
	return resp.AccessToken, nil
}

// Signup registers a new user and returns a bearer token for it.
func (c *Client) Signup(ctx context.Context, email, password, fullName string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", nil,
		signupRequest{Email: email, Password: password, FullName: fullName}, &resp)
	if err != nil {
		return "", err
	}

	c.token = resp.AccessToken
	return resp.AccessToken, nil
}

// Accounts returns all linked accounts for the authenticated user.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.do(ctx, http.MethodGet, "/accounts", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// LinkRequest describes a new account to link.
type LinkRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	AccountType string `json:"account_type"`
	Nickname    string `json:"nickname,omitempty"`
}

// LinkAccount links a new bank account and returns it.
func (c *Client) LinkAccount(ctx context.Context, req LinkRequest) (*Account, error) {
	var account Account
	if err := c.do(ctx, http.MethodPost, "/accounts/link", nil, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteAccount unlinks the account with the given ID.
func (c *Client) DeleteAccount(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/accounts/%d", id), nil, nil, nil)
}
