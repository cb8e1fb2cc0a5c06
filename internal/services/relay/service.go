// Package relay forwards the camera's live MJPEG feed to viewers and
// performs one-shot still captures and connectivity probes against the
// same device.
package relay

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"smartpark-edge/internal/config"
	"smartpark-edge/internal/models"
)

type Service struct {
	cfg *config.Config

	// streamClient has no total timeout: a live stream is unbounded.
	// Liveness is enforced per read by the session's idle watchdog.
	streamClient   *http.Client
	snapshotClient *http.Client
	probeClient    *http.Client
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg:            cfg,
		streamClient:   &http.Client{},
		snapshotClient: &http.Client{Timeout: cfg.SnapshotTimeout},
		probeClient:    &http.Client{Timeout: cfg.ProbeTimeout},
	}
}

// Session is one viewer's upstream read pipeline. Each viewer gets its own
// upstream connection; sessions share nothing. Reads fail once no data has
// arrived for the configured idle timeout, and closing the session (or
// cancelling the ctx it was opened with) tears the upstream connection down.
type Session struct {
	ContentType string

	body   io.ReadCloser
	cancel context.CancelFunc
	timer  *time.Timer
	idle   time.Duration
}

// OpenStream connects to the camera's live endpoint on behalf of one
// viewer. It returns an UpstreamError before any byte is produced when the
// camera refuses the connection or answers non-200.
func (s *Service) OpenStream(ctx context.Context) (*Session, error) {
	reqCtx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, s.cfg.StreamURL, nil)
	if err != nil {
		cancel()
		return nil, err
	}

	resp, err := s.streamClient.Do(req)
	if err != nil {
		cancel()
		return nil, &models.UpstreamError{URL: s.cfg.StreamURL, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, &models.UpstreamError{URL: s.cfg.StreamURL, Status: resp.StatusCode}
	}

	// The idle watchdog cancels the upstream request when a single read
	// stalls past the window. Armed from open; each read re-arms it.
	timer := time.AfterFunc(s.cfg.StreamIdleTimeout, cancel)

	return &Session{
		ContentType: resp.Header.Get("Content-Type"),
		body:        resp.Body,
		cancel:      cancel,
		timer:       timer,
		idle:        s.cfg.StreamIdleTimeout,
	}, nil
}

func (sess *Session) Read(p []byte) (int, error) {
	sess.timer.Reset(sess.idle)
	n, err := sess.body.Read(p)
	sess.timer.Stop()
	return n, err
}

func (sess *Session) Close() error {
	sess.timer.Stop()
	sess.cancel()
	return sess.body.Close()
}

// Snapshot performs one request against the camera's still-capture
// endpoint and returns the image as a data URL so it can travel inside a
// JSON response.
func (s *Service) Snapshot(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.SnapshotURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.snapshotClient.Do(req)
	if err != nil {
		return "", &models.UpstreamError{URL: s.cfg.SnapshotURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &models.UpstreamError{URL: s.cfg.SnapshotURL, Status: resp.StatusCode}
	}

	// Bounded by a single still image, not a stream.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &models.UpstreamError{URL: s.cfg.SnapshotURL, Err: err}
	}

	mediaType := "image/jpeg"
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if parsed, _, err := mime.ParseMediaType(ct); err == nil {
			mediaType = parsed
		}
	}

	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data)), nil
}

// Probe checks camera reachability with a short bounded request. It never
// returns an error; every failure mode folds into the verdict.
func (s *Service) Probe(ctx context.Context) models.ProbeVerdict {
	verdict := models.ProbeVerdict{URL: s.cfg.StreamURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.StreamURL, nil)
	if err != nil {
		verdict.Error = err.Error()
		verdict.Message = "Cannot connect to ESP32. Check IP address and network."
		return verdict
	}

	resp, err := s.probeClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("url", s.cfg.StreamURL).Msg("Camera probe failed")
		verdict.Error = err.Error()
		verdict.Message = "Cannot connect to ESP32. Check IP address and network."
		return verdict
	}
	resp.Body.Close()

	verdict.StatusCode = resp.StatusCode
	verdict.Connected = resp.StatusCode == http.StatusOK
	if verdict.Connected {
		verdict.Message = "ESP32 OK"
	} else {
		verdict.Message = "ESP32 unavailable"
	}
	return verdict
}
