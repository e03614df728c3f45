// Package objects uploads candidate files (headshots, resumes, intro videos)
// to bucket-style object storage over its HTTP API.
package objects

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("object storage not configured")
	ErrUploadFailed  = errors.New("object upload failed")
)

// Store is the upload surface consumed by the upload handlers.
type Store interface {
	Upload(ctx context.Context, bucket, name, contentType string, body io.Reader) (string, error)
	Remove(ctx context.Context, bucket, name string) error
	PublicURL(bucket, name string) string
}

// Client stores objects through the storage service's REST endpoints using a
// service key. Buckets are expected to exist and allow public reads.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
	}
}

var _ Store = (*Client)(nil)

// Upload writes the object and returns its public URL.
func (c *Client) Upload(ctx context.Context, bucket, name, contentType string, body io.Reader) (string, error) {
	if c.baseURL == "" || c.serviceKey == "" {
		return "", ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/object/%s/%s", c.baseURL, bucket, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: HTTP %d: %s", ErrUploadFailed, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return c.PublicURL(bucket, name), nil
}

// Remove deletes an object. A missing object is not an error.
func (c *Client) Remove(ctx context.Context, bucket, name string) error {
	if c.baseURL == "" || c.serviceKey == "" {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/object/%s/%s", c.baseURL, bucket, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("object delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("object delete failed: HTTP %d", resp.StatusCode)
	}
	return nil
}

// PublicURL returns the anonymous-read URL for an object.
func (c *Client) PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, bucket, name)
}
