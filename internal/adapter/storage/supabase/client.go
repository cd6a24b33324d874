// Package supabase implements the object storage client for generated images
// against the Supabase Storage REST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client uploads objects into a single bucket.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a storage client. baseURL is the project URL without
// the /storage/v1 suffix.
func NewClient(logger *slog.Logger, baseURL, serviceKey, bucket string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "storage"),
	}
}

// Error is a non-2xx response from the storage API.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("storage: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("storage: %d: %s", e.StatusCode, e.Message)
}

// Upload stores data at path inside the bucket. Existing objects are not overwritten.
func (c *Client) Upload(ctx context.Context, path, contentType, cacheControl string, data []byte) error {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, url.PathEscape(c.bucket), escapePath(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("storage: create request: %w", err)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.authorize(req)
	req.Header.Set("Content-Type", contentType)
	if cacheControl != "" {
		req.Header.Set("Cache-Control", "max-age="+cacheControl)
	}
	req.Header.Set("x-upsert", "false")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage: upload %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("storage: read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseError(body, resp.StatusCode)
	}

	c.log.DebugContext(ctx, "object uploaded",
		slog.String("bucket", c.bucket),
		slog.String("path", path),
		slog.Int("bytes", len(data)),
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

// Ping checks that the bucket exists and the service key can read it.
func (c *Client) Ping(ctx context.Context) error {
	reqURL := fmt.Sprintf("%s/storage/v1/bucket/%s", c.baseURL, url.PathEscape(c.bucket))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("storage: create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage: ping bucket %s: %w", c.bucket, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("storage: read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseError(body, resp.StatusCode)
	}

	return nil
}

// PublicURL returns the permanent public URL of an object in the bucket.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, url.PathEscape(c.bucket), escapePath(path))
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
}

func escapePath(p string) string {
	parts := strings.Split(strings.TrimLeft(p, "/"), "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

func parseError(body []byte, statusCode int) error {
	var errResp struct {
		StatusCode string `json:"statusCode"`
		Code       string `json:"code"`
		Error      string `json:"error"`
		Message    string `json:"message"`
	}

	if err := json.Unmarshal(body, &errResp); err != nil {
		return &Error{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
	}

	code := errResp.Code
	if code == "" {
		code = errResp.Error
	}
	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}

	return &Error{StatusCode: statusCode, Code: code, Message: msg}
}
