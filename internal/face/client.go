// Package face talks to the external face-recognition backend. The
// backend is a black box: two multipart routes, a JSON reply, non-2xx
// means failure. No retries; a single request timeout is the only policy.
package face

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/tapwallet/walletd/internal/logging"
)

// DefaultThreshold is the match threshold sent when none is configured.
const DefaultThreshold = 0.6

type Client struct {
	baseURL    string
	threshold  float64
	httpClient *http.Client
}

func NewClient(baseURL string, threshold float64) *Client {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Client{
		baseURL:   baseURL,
		threshold: threshold,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register associates the captured face with a name.
func (c *Client) Register(ctx context.Context, name string, image []byte) error {
	fields := map[string]string{
		"name":      name,
		"threshold": strconv.FormatFloat(c.threshold, 'f', -1, 64),
	}
	body, err := c.post(ctx, "/register", image, fields)
	if err != nil {
		return fmt.Errorf("Register: %w", err)
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("Register: decode: %w", err)
	}
	return nil
}

// Verify asks the backend whether the captured face matches a registered
// one.
func (c *Client) Verify(ctx context.Context, image []byte) (bool, error) {
	fields := map[string]string{
		"threshold": strconv.FormatFloat(c.threshold, 'f', -1, 64),
	}
	body, err := c.post(ctx, "/verify", image, fields)
	if err != nil {
		return false, fmt.Errorf("Verify: %w", err)
	}

	var resp struct {
		Match bool `json:"match"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("Verify: decode: %w", err)
	}
	return resp.Match, nil
}

func (c *Client) post(ctx context.Context, route string, image []byte, fields map[string]string) ([]byte, error) {
	log := logging.FromContext(ctx)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", "face.jpg")
	if err != nil {
		return nil, fmt.Errorf("post %s: form file: %w", route, err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("post %s: write image: %w", route, err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("post %s: field %s: %w", route, k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("post %s: close writer: %w", route, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, &buf)
	if err != nil {
		return nil, fmt.Errorf("post %s: build request: %w", route, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: send: %w", route, err)
	}
	defer resp.Body.Close()

	log.Info("face backend response",
		"route", route,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("post %s: read body: %w", route, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("post %s: unexpected status %d: %s", route, resp.StatusCode, string(body))
	}
	return body, nil
}
