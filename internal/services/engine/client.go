// Package engine is the client for the shared inference sidecar. The
// sidecar owns the models: it loads them once, answers detect/track calls
// over HTTP/JSON, and serializes concurrent inference internally. This
// client therefore takes no lock around invocations; a slow call suspends
// only the calling goroutine.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"smartpark-edge/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu     sync.RWMutex
	loaded bool
}

// NewClient creates an engine client. Nothing is contacted until Load.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Load asks the engine to load its models and blocks until it reports
// completion. Idempotent on the engine side; called exactly once per
// process before traffic is accepted.
func (c *Client) Load(ctx context.Context) error {
	log.Info().Str("url", c.baseURL).Msg("Loading inference engine models")

	var resp loadResponse
	if err := c.post(ctx, "/load", nil, &resp); err != nil {
		return fmt.Errorf("engine load failed: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("engine load failed: %s", resp.Message)
	}

	c.mu.Lock()
	c.loaded = true
	c.mu.Unlock()

	log.Info().Msg("Inference engine models loaded")
	return nil
}

// IsLoaded reports whether Load completed successfully.
func (c *Client) IsLoaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

type detectRequest struct {
	ImageData string `json:"imageData"`
}

// Detect runs plate detection on one still image. The caller suspends
// until inference completes or ctx is done.
func (c *Client) Detect(ctx context.Context, imageData string) (*models.DetectionResult, error) {
	var result models.DetectionResult
	if err := c.post(ctx, "/detect", detectRequest{ImageData: imageData}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type trackRequest struct {
	VideoData     string  `json:"videoData"`
	FrameSkip     int     `json:"frameSkip"`
	ConfThreshold float64 `json:"confThreshold"`
	IOUThreshold  float64 `json:"iouThreshold"`
}

// Track runs object tracking on a video payload. Zero-valued tunables are
// replaced by the documented defaults before the call.
func (c *Client) Track(ctx context.Context, videoData string, params models.TrackParams) (*models.TrackingResult, error) {
	params = params.WithDefaults()

	req := trackRequest{
		VideoData:     videoData,
		FrameSkip:     params.FrameSkip,
		ConfThreshold: params.ConfThreshold,
		IOUThreshold:  params.IOUThreshold,
	}

	var result models.TrackingResult
	if err := c.post(ctx, "/track", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// HealthCheck probes the engine without touching the models.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("engine health check returned status %d", resp.StatusCode)
	}
	return nil
}

// Cleanup releases engine resources (accelerator memory). Called once
// during shutdown, before the process exits.
func (c *Client) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()

	if err := c.post(ctx, "/cleanup", nil, nil); err != nil {
		return fmt.Errorf("engine cleanup failed: %w", err)
	}

	log.Info().Msg("Inference engine resources released")
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("engine request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("engine %s returned status %d: %s", path, resp.StatusCode, bytes.TrimSpace(data))
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode engine response: %w", err)
	}
	return nil
}
