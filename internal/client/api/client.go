package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kunsthaus/canvasbid/pkg/api"
)

// ErrDecode marks responses whose body could not be parsed. Callers use
// it to tell a malformed payload apart from a transport failure.
var ErrDecode = errors.New("malformed response body")

// Error is a non-2xx backend response with its decoded error message.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Client is the HTTP client for the Kunsthaus backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login authenticates with username (or email) and password.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.Do(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.Do(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Auctions fetches the full auction listing.
func (c *Client) Auctions(ctx context.Context) (*api.AuctionsResponse, error) {
	var resp api.AuctionsResponse
	if err := c.Do(ctx, http.MethodGet, "/api/auctions", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("auctions request failed: %w", err)
	}
	return &resp, nil
}

// ArtworkBids fetches the bid history of one artwork,
// most-recent-first.
func (c *Client) ArtworkBids(ctx context.Context, artworkID int) (*api.BidsResponse, error) {
	var resp api.BidsResponse
	path := fmt.Sprintf("/api/bids/artwork/%d", artworkID)
	if err := c.Do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("bid history request failed: %w", err)
	}
	return &resp, nil
}

// Artists fetches the artist listing.
func (c *Client) Artists(ctx context.Context) (*api.ArtistsResponse, error) {
	var resp api.ArtistsResponse
	if err := c.Do(ctx, http.MethodGet, "/api/artists", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("artists request failed: %w", err)
	}
	return &resp, nil
}

// Artworks fetches the artwork listing.
func (c *Client) Artworks(ctx context.Context) (*api.ArtworksResponse, error) {
	var resp api.ArtworksResponse
	if err := c.Do(ctx, http.MethodGet, "/api/artworks", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("artworks request failed: %w", err)
	}
	return &resp, nil
}

// Search queries artworks and artists by free text.
func (c *Client) Search(ctx context.Context, query string) (*api.SearchResponse, error) {
	var resp api.SearchResponse
	path := "/api/search?q=" + url.QueryEscape(query)
	if err := c.Do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return &resp, nil
}

// Do performs one HTTP request against the backend. When token is
// non-empty it is attached as a bearer credential. A non-2xx status is
// returned as *Error; a body that fails to parse wraps ErrDecode.
func (c *Client) Do(ctx context.Context, method, path, token string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
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
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
		} else {
			apiErr.Message = string(respBody)
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}

	return nil
}
