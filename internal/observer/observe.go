// Package observer watches a running Mission Control host through its
// HTTP API and reports whether the scene is healthy.
package observer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/talgya/mission-control/internal/engine"
)

// Snapshot holds all data collected during an observation.
type Snapshot struct {
	Taken  time.Time      `json:"taken"`
	Status SceneStatus    `json:"status"`
	Frame  engine.Frame   `json:"frame"`
	Events []engine.Event `json:"events"`
}

// SceneStatus mirrors GET /api/v1/status.
type SceneStatus struct {
	Name          string    `json:"name"`
	SceneID       string    `json:"scene_id"`
	Frame         uint64    `json:"frame"`
	Elapsed       float64   `json:"elapsed"`
	Clock         string    `json:"clock"`
	Points        int       `json:"points"`
	Satellites    int       `json:"satellites"`
	Planets       int       `json:"planets"`
	Filter        string    `json:"filter"`
	Selected      string    `json:"selected"`
	Seeds         [2]uint32 `json:"seeds"`
	Speed         float64   `json:"speed"`
	Running       bool      `json:"running"`
	StreamClients int       `json:"stream_clients"`
}

// Observer fetches scene state from the API.
type Observer struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewObserver creates an Observer targeting the given API base URL.
func NewObserver(baseURL string) *Observer {
	return &Observer{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Observe fetches status, the current frame and recent events.
func (o *Observer) Observe() (*Snapshot, error) {
	snap := &Snapshot{Taken: time.Now()}

	if err := o.fetchJSON("/api/v1/status", &snap.Status); err != nil {
		return nil, fmt.Errorf("fetch status: %w", err)
	}
	if err := o.fetchJSON("/api/v1/frame", &snap.Frame); err != nil {
		return nil, fmt.Errorf("fetch frame: %w", err)
	}
	if err := o.fetchJSON("/api/v1/events?limit=20", &snap.Events); err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	return snap, nil
}

// Ready reports whether the status endpoint answers 200.
func (o *Observer) Ready() bool {
	resp, err := o.HTTPClient.Get(o.BaseURL + "/api/v1/status")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// fetchJSON GETs a path and decodes the JSON response into target.
func (o *Observer) fetchJSON(path string, target any) error {
	resp, err := o.HTTPClient.Get(o.BaseURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s returned %d: %s", path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
