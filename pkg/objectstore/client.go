package objectstore

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

	"github.com/google/uuid"
)

// ErrNotConfigured is returned when a real request is attempted without a
// storage URL.
var ErrNotConfigured = errors.New("object storage is not configured")

// Client talks to a Supabase storage endpoint. With MockAPI set no request
// leaves the process and locally built URLs are returned.
type Client struct {
	BaseURL string
	APIKey  string
	MockAPI bool
	client  *http.Client
}

// SignedUpload is a one-time URL the browser can PUT the file to.
type SignedUpload struct {
	UploadURL string
	Token     string
}

// NewClient creates a new storage client
func NewClient(baseURL, apiKey string, mockAPI bool) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		MockAPI: mockAPI,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// PublicURL returns the public download URL of an object.
func (c *Client) PublicURL(bucket, objectPath string) string {
	base := c.BaseURL
	if base == "" {
		base = "http://localhost:54321"
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", base, bucket, escapePath(objectPath))
}

// SignUpload asks the storage service for a signed upload URL.
func (c *Client) SignUpload(ctx context.Context, bucket, objectPath string) (*SignedUpload, error) {
	if c.MockAPI {
		return c.mockSignUpload(bucket, objectPath), nil
	}
	if c.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/upload/sign/%s/%s", c.BaseURL, bucket, escapePath(objectPath))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("apikey", c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read sign response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storage returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var signed struct {
		URL   string `json:"url"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &signed); err != nil {
		return nil, fmt.Errorf("failed to decode sign response: %w", err)
	}
	if signed.URL == "" {
		return nil, errors.New("storage returned an empty upload url")
	}

	uploadURL := signed.URL
	if strings.HasPrefix(uploadURL, "/") {
		uploadURL = c.BaseURL + "/storage/v1" + uploadURL
	}
	token := signed.Token
	if token == "" {
		if u, err := url.Parse(uploadURL); err == nil {
			token = u.Query().Get("token")
		}
	}
	return &SignedUpload{UploadURL: uploadURL, Token: token}, nil
}

// mockSignUpload builds a signed URL without calling the service.
func (c *Client) mockSignUpload(bucket, objectPath string) *SignedUpload {
	token := "mock-" + uuid.NewString()
	base := c.BaseURL
	if base == "" {
		base = "http://localhost:54321"
	}
	return &SignedUpload{
		UploadURL: fmt.Sprintf("%s/storage/v1/object/upload/sign/%s/%s?token=%s", base, bucket, escapePath(objectPath), token),
		Token:     token,
	}
}

func escapePath(p string) string {
	parts := strings.Split(strings.TrimLeft(p, "/"), "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
