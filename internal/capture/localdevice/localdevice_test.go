// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package localdevice

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/capture"
)

func writePNG(t *testing.T, path string) []byte {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestAcquireAndFrame(t *testing.T) {
	dir := t.TempDir()
	want := writePNG(t, filepath.Join(dir, "frame.png"))

	d := New(dir)
	stream, err := d.Acquire(context.Background(), capture.FacingEnvironment)
	require.NoError(t, err)
	defer stream.Release()

	frame, err := stream.Frame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "image/png", frame.MIMEType)
	assert.Equal(t, want, frame.Data)
}

func TestFramesCycleInOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.jpg"), []byte("second"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("first"), 0o644))

	d := New(dir)
	stream, err := d.Acquire(context.Background(), capture.FacingEnvironment)
	require.NoError(t, err)
	defer stream.Release()

	ctx := context.Background()
	for _, want := range []string{"first", "second", "first"} {
		frame, err := stream.Frame(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, string(frame.Data))
		assert.Equal(t, "image/jpeg", frame.MIMEType)
	}
}

func TestAcquireEmptyDir(t *testing.T) {
	d := New(t.TempDir())
	d.SetWarmup(50 * time.Millisecond)

	_, err := d.Acquire(context.Background(), capture.FacingEnvironment)
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestAcquireMissingDir(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), "missing"))
	d.SetWarmup(50 * time.Millisecond)

	_, err := d.Acquire(context.Background(), capture.FacingEnvironment)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoFrames)
}

func TestNonFrameFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	d := New(dir)
	d.SetWarmup(50 * time.Millisecond)

	_, err := d.Acquire(context.Background(), capture.FacingEnvironment)
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestFrameAfterRelease(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "frame.png"))

	d := New(dir)
	stream, err := d.Acquire(context.Background(), capture.FacingEnvironment)
	require.NoError(t, err)

	stream.Release()
	// Release is idempotent.
	stream.Release()

	_, err = stream.Frame(context.Background())
	assert.Error(t, err)
}
