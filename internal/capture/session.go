// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package capture manages the lifecycle of a live video capture: acquire
// device, preview, freeze a frame, analyze, release. The device itself is a
// capability provided by the caller.
package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State is the lifecycle state of a capture session.
type State int

const (
	// StateIdle means no capture is in progress and no stream is held.
	StateIdle State = iota
	// StateAcquiring means a device stream has been requested.
	StateAcquiring
	// StatePreviewing means the live frame source is attached to a preview.
	StatePreviewing
	// StateAnalyzing means a frozen frame is being analyzed.
	StateAnalyzing
)

// String returns a human-readable session state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAcquiring:
		return "acquiring"
	case StatePreviewing:
		return "previewing"
	case StateAnalyzing:
		return "analyzing"
	default:
		return "unknown"
	}
}

// Facing is a facing-preference hint for device acquisition.
type Facing string

const (
	// FacingEnvironment prefers a rear-facing source.
	FacingEnvironment Facing = "environment"
	// FacingUser prefers a front-facing source.
	FacingUser Facing = "user"
)

// Frame is a single still frame encoded as a compressed image payload at the
// source's native resolution.
type Frame struct {
	// Data is the compressed image bytes.
	Data []byte
	// MIMEType is the MIME type of Data.
	MIMEType string
}

// Stream is a held live video source.
type Stream interface {
	// Frame grabs the current frame as compressed image bytes at the source
	// resolution.
	Frame(ctx context.Context) (Frame, error)

	// Release releases the device stream. Release is idempotent.
	Release()
}

// Device acquires live video sources.
type Device interface {
	// Acquire requests a live video source with a facing-preference hint.
	Acquire(ctx context.Context, facing Facing) (Stream, error)
}

// Analyzer consumes a frozen frame during the analyzing state.
type Analyzer func(ctx context.Context, frame Frame) (string, error)

// Sentinel errors for session transitions.
var (
	// ErrBusy is returned when starting a capture while one is in flight.
	ErrBusy = errors.New("capture: session already active")
	// ErrDeviceUnavailable is returned when the device cannot be acquired.
	ErrDeviceUnavailable = errors.New("capture: device unavailable")
	// ErrNotPreviewing is returned when capturing without an active preview.
	ErrNotPreviewing = errors.New("capture: no active preview")
	// ErrCanceled is returned when the session is canceled mid-acquisition.
	ErrCanceled = errors.New("capture: session canceled")
)

// NewSession returns an idle capture session for device.
func NewSession(device Device) *Session {
	return &Session{
		device: device,
	}
}

// Session is a capture session state machine. Only one capture may be in
// flight at a time; Start while active is an explicit rejection. The session
// owns the device stream exclusively while previewing or analyzing, and the
// stream is released on every path back to idle.
type Session struct {
	device Device

	mu     sync.Mutex
	state  State
	stream Stream
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start acquires the device stream and transitions to previewing. It returns
// ErrBusy when a session is already in flight and ErrDeviceUnavailable when
// acquisition fails; on failure the session returns to idle with no other
// state touched.
func (s *Session) Start(ctx context.Context, facing Facing) error {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrBusy
	}
	s.state = StateAcquiring
	s.mu.Unlock()

	stream, err := s.device.Acquire(ctx, facing)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAcquiring {
		// Canceled while acquiring. Release the stream if one arrived.
		if stream != nil {
			stream.Release()
		}
		return ErrCanceled
	}
	if err != nil {
		s.state = StateIdle
		return fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	s.stream = stream
	s.state = StatePreviewing
	return nil
}

// Capture freezes a single still frame from the held stream, runs analyze on
// it, and returns to idle. The stream is always released at this transition,
// after the analysis read completes, regardless of outcome.
func (s *Session) Capture(ctx context.Context, analyze Analyzer) (string, error) {
	s.mu.Lock()
	if s.state != StatePreviewing {
		s.mu.Unlock()
		return "", ErrNotPreviewing
	}
	s.state = StateAnalyzing
	stream := s.stream
	s.mu.Unlock()

	frame, err := stream.Frame(ctx)
	var result string
	if err != nil {
		err = fmt.Errorf("capture: freezing frame: %w", err)
	} else {
		result, err = analyze(ctx, frame)
	}

	s.mu.Lock()
	// A cancel may have ended this session mid-analysis, and a new session
	// may already be in flight. Only transition when the session still holds
	// this capture's stream; the local stream is released either way.
	if s.state == StateAnalyzing && s.stream == stream {
		s.stream = nil
		s.state = StateIdle
	}
	s.mu.Unlock()
	stream.Release()

	return result, err
}

// Cancel returns the session to idle from any state, releasing the device
// stream if one is held. While analyzing, the release is left to the capture
// in flight so it never races the frame read. Cancel is a no-op on an idle
// session.
func (s *Session) Cancel() {
	s.mu.Lock()
	stream := s.stream
	releaseNow := s.state != StateAnalyzing
	s.stream = nil
	s.state = StateIdle
	s.mu.Unlock()

	if stream != nil && releaseNow {
		stream.Release()
	}
}
