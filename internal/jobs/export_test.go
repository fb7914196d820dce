// SPDX-License-Identifier: MIT

package jobs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nutek/blender-export-svg/internal/config"
	"github.com/Nutek/blender-export-svg/internal/scenefile"
	"github.com/Nutek/blender-export-svg/internal/style"
)

const quadScene = `
camera:
  position: [0, 0, 10]
  target: [0, 0, 0]
  up: [0, 1, 0]
  fov: 90
  width: 200
  height: 100
objects:
  - name: quad
    shape: plane
`

// testConfig writes a one-quad scene and returns a config exporting it
// into the same temp directory.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte(quadScene), 0o644))

	cfg := config.Defaults()
	cfg.Scene = scenePath
	cfg.Out = filepath.Join(dir, "out.svg")
	return cfg
}

func TestExportSingle(t *testing.T) {
	cfg := testConfig(t)

	status, err := Export(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, status.Frames)
	assert.Equal(t, 1, status.Objects)
	assert.GreaterOrEqual(t, status.Faces, 1)
	assert.Equal(t, cfg.Out, status.Output)
	assert.False(t, status.LastRun.IsZero())

	data, err := os.ReadFile(cfg.Out)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "<svg"))
	assert.True(t, strings.HasSuffix(content, "</svg>\n"))
	assert.Contains(t, content, `inkscape:groupmode="layer"`)
	assert.Contains(t, content, "<path")
}

func TestExportFixedSeedIsReproducible(t *testing.T) {
	cfg := testConfig(t)
	cfg.Style.FixedSeed = true
	cfg.Style.Seed = 77

	status, err := Export(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(77), status.Seed)

	first, err := os.ReadFile(cfg.Out)
	require.NoError(t, err)

	_, err = Export(context.Background(), cfg)
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.Out)
	require.NoError(t, err)

	// Only the session layer id (the timestamp) may differ.
	strip := func(b []byte) string {
		s := string(b)
		start := strings.Index(s, `id="`)
		require.GreaterOrEqual(t, start, 0)
		end := strings.Index(s[start+4:], `"`)
		require.GreaterOrEqual(t, end, 0)
		return s[:start] + s[start+4+end:]
	}
	if diff := cmp.Diff(strip(first), strip(second)); diff != "" {
		t.Fatalf("documents differ (-want +got):\n%s", diff)
	}
}

func TestExportSizeOverride(t *testing.T) {
	cfg := testConfig(t)
	cfg.Width = 640
	cfg.Height = 480

	_, err := Export(context.Background(), cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="640px"`)
	assert.Contains(t, string(data), `height="480px"`)
}

func TestExportSequence(t *testing.T) {
	tests := []struct {
		name      string
		fixedSeed bool
	}{
		{name: "fresh seeds render sequentially", fixedSeed: false},
		{name: "fixed seed renders concurrently", fixedSeed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Frames = config.FrameRange{Start: 1, End: 4}
			cfg.Style.FixedSeed = tt.fixedSeed

			status, err := Export(context.Background(), cfg)
			require.NoError(t, err)
			assert.Equal(t, 3, status.Frames)
			assert.Equal(t, 1, status.Objects)

			stem := strings.TrimSuffix(cfg.Out, ".svg")
			for _, suffix := range []string{"_0001.svg", "_0002.svg", "_0003.svg"} {
				_, err := os.Stat(stem + suffix)
				assert.NoError(t, err, "expected frame file %s", suffix)
			}
			// The unnumbered path is only used for single exports.
			_, err = os.Stat(cfg.Out)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestExportSequenceCancelled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Frames = config.FrameRange{Start: 0, End: 50}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Export(ctx, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportAppend(t *testing.T) {
	cfg := testConfig(t)

	_, err := Export(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Append = true
	_, err = Export(context.Background(), cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Out)
	require.NoError(t, err)
	content := string(data)

	assert.Equal(t, 1, strings.Count(content, "<svg"))
	assert.Equal(t, 2, strings.Count(content, `inkscape:groupmode="layer"`))
	assert.Contains(t, content, "<!-- new blender session -->")
	assert.True(t, strings.HasSuffix(content, "</svg>\n"))
}

func TestExportAppendRejectsTruncated(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Out, []byte("<svg>\n <g>\n"), 0o644))
	cfg.Append = true

	_, err := Export(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAppendable)
}

func TestExportMissingScene(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scene = filepath.Join(t.TempDir(), "gone.yaml")

	_, err := Export(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load scene")
}

func TestExportEmptyScene(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Scene, []byte("scene: empty\n"), 0o644))

	status, err := Export(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, status.Objects)
	assert.Equal(t, 0, status.Faces)

	data, err := os.ReadFile(cfg.Out)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `inkscape:groupmode="layer"`)
	assert.True(t, strings.HasSuffix(content, "</svg>\n"))
}

func TestFrameView(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte(quadScene+`
animation:
  turntable: 90
`), 0o644))

	file, err := scenefile.Load(scenePath)
	require.NoError(t, err)

	// Frame 0 keeps the pose, frame 1 orbits 90 degrees about the
	// camera's up axis.
	v0 := frameView(file, 0)
	assert.InDelta(t, 0, v0.Camera.Pos.X, 1e-4)
	assert.InDelta(t, 10, v0.Camera.Pos.Z, 1e-4)

	v1 := frameView(file, 1)
	assert.InDelta(t, 10, v1.Camera.Pos.X, 1e-4)
	assert.InDelta(t, 0, v1.Camera.Pos.Y, 1e-4)
	assert.InDelta(t, 0, v1.Camera.Pos.Z, 1e-4)

	// The loaded scene's own camera must stay untouched.
	assert.InDelta(t, 10, file.Scene.Camera.Pos.Z, 1e-4)
}

func TestFrameSeed(t *testing.T) {
	st := style.Defaults()
	st.FixedSeed = true
	st.Seed = 42
	assert.Equal(t, int64(42), frameSeed(&st))

	st.FixedSeed = false
	for i := 0; i < 100; i++ {
		seed := frameSeed(&st)
		assert.GreaterOrEqual(t, seed, int64(0))
		assert.Less(t, seed, int64(10000))
	}
}

func TestFramePaths(t *testing.T) {
	stem, ext := splitOut("render.svg")
	assert.Equal(t, "render", stem)
	assert.Equal(t, ".svg", ext)
	assert.Equal(t, "render_0007.svg", framePath(stem, ext, 7))
	assert.Equal(t, "render_0123.svg", framePath(stem, ext, 123))

	stem, ext = splitOut(filepath.Join("a", "b.svg"))
	assert.Equal(t, filepath.Join("a", "b_0001.svg"), framePath(stem, ext, 1))
}
