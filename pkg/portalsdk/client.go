package portalsdk

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client is a client for the VentureBot portal API. The portal session rides
// an HttpOnly cookie, so the Client carries a cookie jar and every call made
// after a successful Login or Register is authenticated automatically.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a portal API client with its own cookie jar.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	AgencyName string `json:"agencyName"`
}

// authResponse is the shape of the auth endpoints, which return the user at
// the top level rather than under the data key.
type authResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user"`
	Error   string `json:"error"`
}

// Login authenticates with email and password. On success the session cookie
// is stored in the client's jar and the authenticated user is returned.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{Message: "missing user in response"}
	}
	return resp.User, nil
}

// Register creates a new agency workspace with its admin user and signs the
// client in.
func (c *Client) Register(ctx context.Context, name, email, password, agencyName string) (*User, error) {
	var resp authResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", registerRequest{
		Name:       name,
		Email:      email,
		Password:   password,
		AgencyName: agencyName,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{Message: "missing user in response"}
	}
	return resp.User, nil
}

// Me returns the user bound to the current session cookie.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{Message: "missing user in response"}
	}
	return resp.User, nil
}

// Logout revokes the server-side session. The cookie becomes useless either
// way; callers usually ignore the error.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// GetLiveness reports whether the portal process is up.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness reports whether the portal and its dependencies are ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
