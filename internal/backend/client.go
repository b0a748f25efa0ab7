package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

// DefaultBaseURL is used when no backend URL is configured
const DefaultBaseURL = "http://localhost:5000/api"

// Client is an HTTP client for the federation backend API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new backend client
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithHTTP creates a backend client with a custom http.Client (for testing)
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	c := NewClient(baseURL)
	c.httpClient = httpClient
	return c
}

// do performs an HTTP request against the backend
func (c *Client) do(ctx context.Context, method, path, token string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.Unmarshal(respBody, &eb)
		return newAPIError(resp.StatusCode, eb.Message)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Auth operations

// Login exchanges credentials for a token and user record
func (c *Client) Login(ctx context.Context, loginIdentifier, password string) (*AuthResponse, error) {
	var resp AuthResponse
	req := LoginRequest{LoginIdentifier: loginIdentifier, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register submits an aggregate registration payload
func (c *Client) Register(ctx context.Context, payload *RegisterPayload) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the current user record for the token
func (c *Client) Profile(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Admin user management

// Users lists all federation members
func (c *Client) Users(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// PendingUsers lists members awaiting approval
func (c *Client) PendingUsers(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/users/pending-approval", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ApproveUser marks a pending member as active
func (c *Client) ApproveUser(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodPut, "/users/"+userID+"/approve", token, nil, nil)
}

// RejectUser rejects a pending member
func (c *Client) RejectUser(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodPut, "/users/"+userID+"/reject", token, nil, nil)
}

// DeleteUser removes a member
func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+userID, token, nil, nil)
}

// UserStats fetches the admin overview counters
func (c *Client) UserStats(ctx context.Context, token string) (*model.UserStats, error) {
	var stats model.UserStats
	if err := c.do(ctx, http.MethodGet, "/users/stats/overview", token, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Tournament content management

func (c *Client) Tournaments(ctx context.Context, token string) ([]model.Tournament, error) {
	var ts []model.Tournament
	if err := c.do(ctx, http.MethodGet, "/tournaments", token, nil, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (c *Client) CreateTournament(ctx context.Context, token string, t *model.Tournament) (*model.Tournament, error) {
	var created model.Tournament
	if err := c.do(ctx, http.MethodPost, "/tournaments", token, t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTournament(ctx context.Context, token string, id int, t *model.Tournament) (*model.Tournament, error) {
	var updated model.Tournament
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tournaments/%d", id), token, t, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTournament(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tournaments/%d", id), token, nil, nil)
}

// News content management

func (c *Client) News(ctx context.Context, token string) ([]model.News, error) {
	var ns []model.News
	if err := c.do(ctx, http.MethodGet, "/news", token, nil, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func (c *Client) CreateNews(ctx context.Context, token string, n *model.News) (*model.News, error) {
	var created model.News
	if err := c.do(ctx, http.MethodPost, "/news", token, n, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateNews(ctx context.Context, token string, id int, n *model.News) (*model.News, error) {
	var updated model.News
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/news/%d", id), token, n, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteNews(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/news/%d", id), token, nil, nil)
}
