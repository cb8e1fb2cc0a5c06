package models

import (
	"time"
)

// Plate is a single recognized license plate within one frame.
type Plate struct {
	Text       string    `json:"text"`
	Confidence float64   `json:"confidence"`
	BBox       []float64 `json:"bbox"`
}

// DetectionResult is the transient output of one plate-detection call.
// It lives for a single request/response cycle and is forwarded to the
// persistence store when at least one plate was found.
type DetectionResult struct {
	Success          bool      `json:"success"`
	Plates           []Plate   `json:"plates"`
	ProcessingTimeMS float64   `json:"processing_time_ms,omitempty"`
	Timestamp        time.Time `json:"timestamp,omitempty"`
}

// TrackingResult is the transient output of one object-tracking call.
type TrackingResult struct {
	Success          bool           `json:"success"`
	UniqueTracks     int            `json:"unique_tracks"`
	TotalDetections  int            `json:"total_detections,omitempty"`
	ClassCounts      map[string]int `json:"class_counts,omitempty"`
	FramesProcessed  int            `json:"frames_processed,omitempty"`
	ProcessingTimeMS float64        `json:"processing_time_ms,omitempty"`
	Timestamp        time.Time      `json:"timestamp,omitempty"`
}

// TrackParams are the tunables for one tracking call. Zero values mean
// "use the default" and are filled in before the engine is invoked.
type TrackParams struct {
	FrameSkip     int     `json:"frameSkip"`
	ConfThreshold float64 `json:"confThreshold"`
	IOUThreshold  float64 `json:"iouThreshold"`
}

// Tracking defaults applied when the client omits a tunable.
const (
	DefaultFrameSkip     = 1
	DefaultConfThreshold = 0.25
	DefaultIOUThreshold  = 0.45
)

// WithDefaults returns a copy with zero-valued tunables replaced by defaults.
func (p TrackParams) WithDefaults() TrackParams {
	if p.FrameSkip <= 0 {
		p.FrameSkip = DefaultFrameSkip
	}
	if p.ConfThreshold <= 0 {
		p.ConfThreshold = DefaultConfThreshold
	}
	if p.IOUThreshold <= 0 {
		p.IOUThreshold = DefaultIOUThreshold
	}
	return p
}

// PlateDetectRequest is the body of POST /api/plate-detect.
type PlateDetectRequest struct {
	ImageData string `json:"imageData"`
}

// ObjectTrackingRequest is the body of POST /api/object-tracking.
// The tunables are optional; documented defaults apply when omitted.
type ObjectTrackingRequest struct {
	VideoData     string   `json:"videoData"`
	FrameSkip     *int     `json:"frameSkip,omitempty"`
	ConfThreshold *float64 `json:"confThreshold,omitempty"`
	IOUThreshold  *float64 `json:"iouThreshold,omitempty"`
}

// Params converts the optional request tunables into TrackParams with
// defaults applied.
func (r *ObjectTrackingRequest) Params() TrackParams {
	p := TrackParams{}
	if r.FrameSkip != nil {
		p.FrameSkip = *r.FrameSkip
	}
	if r.ConfThreshold != nil {
		p.ConfThreshold = *r.ConfThreshold
	}
	if r.IOUThreshold != nil {
		p.IOUThreshold = *r.IOUThreshold
	}
	return p.WithDefaults()
}

// SnapshotResponse carries one still frame as a self-describing data URL
// so it can travel inside a JSON body.
type SnapshotResponse struct {
	Success   bool   `json:"success"`
	ImageData string `json:"imageData"`
}

// ProbeVerdict is the structured result of a camera connectivity check.
// A probe never fails; every failure mode folds into this payload.
type ProbeVerdict struct {
	URL        string `json:"esp32_url"`
	StatusCode int    `json:"status_code,omitempty"`
	Connected  bool   `json:"connected"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
}
