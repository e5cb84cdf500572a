// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package localdevice is a development implementation of the capture device
// capability. It serves image files from a directory as successive frames,
// standing in for a camera when running the service locally.
package localdevice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/capture"
)

// DefaultWarmup is how long Acquire waits for a frame file to appear before
// reporting the device unavailable.
const DefaultWarmup = 3 * time.Second

// ErrNoFrames is returned when the frame directory stays empty past warm-up.
var ErrNoFrames = errors.New("localdevice: no frame files")

// New returns a device serving frames from dir. Files are served in lexical
// order; only .jpg, .jpeg and .png files are considered.
func New(dir string) *Device {
	return &Device{
		dir:    dir,
		warmup: DefaultWarmup,
	}
}

// Device is a directory-backed capture device.
type Device struct {
	dir    string
	warmup time.Duration
}

// SetWarmup overrides the acquisition warm-up window.
func (d *Device) SetWarmup(warmup time.Duration) {
	d.warmup = warmup
}

// Acquire waits for the directory to contain at least one frame file,
// retrying with exponential backoff for the warm-up window, and returns a
// stream over the files found.
func (d *Device) Acquire(ctx context.Context, _ capture.Facing) (capture.Stream, error) {
	frames, err := backoff.Retry(ctx, func() ([]string, error) {
		frames, err := frameFiles(d.dir)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if len(frames) == 0 {
			return nil, ErrNoFrames
		}
		return frames, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxElapsedTime(d.warmup))
	if err != nil {
		return nil, fmt.Errorf("localdevice: acquiring frame source: %w", err)
	}
	return &stream{frames: frames}, nil
}

func frameFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("localdevice: reading frame directory: %w", err)
	}
	var frames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png":
			frames = append(frames, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(frames)
	return frames, nil
}

type stream struct {
	mu       sync.Mutex
	frames   []string
	next     int
	released bool
}

func (s *stream) Frame(_ context.Context) (capture.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return capture.Frame{}, errors.New("localdevice: stream released")
	}
	path := s.frames[s.next%len(s.frames)]
	s.next++

	data, err := os.ReadFile(path)
	if err != nil {
		return capture.Frame{}, fmt.Errorf("localdevice: reading frame: %w", err)
	}
	mimeType := "image/jpeg"
	if strings.EqualFold(filepath.Ext(path), ".png") {
		mimeType = "image/png"
	}
	return capture.Frame{
		Data:     data,
		MIMEType: mimeType,
	}, nil
}

func (s *stream) Release() {
	s.mu.Lock()
	s.released = true
	s.mu.Unlock()
}
