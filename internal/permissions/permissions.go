// Package permissions requests the device permissions the app needs.
package permissions

import (
	"context"
	"time"
)

// Grants is the outcome of a permission request.
type Grants struct {
	Camera     bool `json:"camera"`
	Microphone bool `json:"microphone"`
	Location   bool `json:"location"`
}

// All reports whether every permission was granted.
func (g Grants) All() bool {
	return g.Camera && g.Microphone && g.Location
}

// Missing lists the permissions that were not granted.
func (g Grants) Missing() []string {
	var out []string
	if !g.Camera {
		out = append(out, "camera")
	}
	if !g.Microphone {
		out = append(out, "microphone")
	}
	if !g.Location {
		out = append(out, "location")
	}
	return out
}

// Requester asks the platform for camera, microphone and location access.
type Requester interface {
	RequestAll(ctx context.Context) (Grants, error)
}

// Policy decides whether a grant result completes the permissions step.
type Policy struct {
	RequireAll bool
}

// Allows reports whether g lets the flow advance.
func (p Policy) Allows(g Grants) bool {
	return !p.RequireAll || g.All()
}

// Simulated grants a fixed result after a delay.
type Simulated struct {
	Delay  time.Duration
	Grants Grants
	Err    error
}

// NewSimulated grants everything after delay.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{
		Delay:  delay,
		Grants: Grants{Camera: true, Microphone: true, Location: true},
	}
}

func (s *Simulated) RequestAll(ctx context.Context) (Grants, error) {
	t := time.NewTimer(s.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return Grants{}, ctx.Err()
	case <-t.C:
	}
	if s.Err != nil {
		return Grants{}, s.Err
	}
	return s.Grants, nil
}
