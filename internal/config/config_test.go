// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFrameRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FrameRange
		wantErr string
	}{
		{name: "range", input: "1:10", want: FrameRange{Start: 1, End: 10}},
		{name: "range with spaces", input: " 3 : 7 ", want: FrameRange{Start: 3, End: 7}},
		{name: "from zero", input: "0:1", want: FrameRange{Start: 0, End: 1}},
		{name: "single frame", input: "5", want: FrameRange{Start: 5, End: 6}},
		{name: "empty", input: "", wantErr: "empty frame range"},
		{name: "end before start", input: "10:1", wantErr: "end must be after start"},
		{name: "empty range", input: "5:5", wantErr: "end must be after start"},
		{name: "junk start", input: "a:5", wantErr: "invalid frame range start"},
		{name: "junk end", input: "1:b", wantErr: "invalid frame range end"},
		{name: "missing end", input: "1:", wantErr: "invalid frame range end"},
		{name: "junk single", input: "x", wantErr: "invalid frame number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFrameRange(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrameRange(t *testing.T) {
	var zero FrameRange
	assert.False(t, zero.Active())
	assert.Equal(t, 1, zero.Count())
	assert.Equal(t, "", zero.String())

	r := FrameRange{Start: 1, End: 10}
	assert.True(t, r.Active())
	assert.Equal(t, 9, r.Count())
	assert.Equal(t, "1:10", r.String())
}

// validConfig returns a configuration that passes Validate, with the
// scene and output anchored in a temp directory.
func validConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scene, []byte("objects:\n  - shape: cube\n"), 0o644))

	cfg := Defaults()
	cfg.Scene = scene
	cfg.Out = filepath.Join(dir, "out.svg")
	return cfg
}

func TestValidateDefaults(t *testing.T) {
	// The built-in defaults must be valid on their own.
	require.NoError(t, Validate(Defaults()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing scene file",
			mutate:  func(cfg *Config) { cfg.Scene = filepath.Join(t.TempDir(), "gone.yaml") },
			wantErr: "scene",
		},
		{
			name:    "empty out",
			mutate:  func(cfg *Config) { cfg.Out = "" },
			wantErr: "out",
		},
		{
			name:    "out without svg extension",
			mutate:  func(cfg *Config) { cfg.Out = "render.png" },
			wantErr: "must end in .svg",
		},
		{
			name:    "append needs existing document",
			mutate:  func(cfg *Config) { cfg.Append = true },
			wantErr: "out",
		},
		{
			name: "append excludes sequences",
			mutate: func(cfg *Config) {
				require.NoError(t, os.WriteFile(cfg.Out, []byte("<svg></svg>"), 0o644))
				cfg.Append = true
				cfg.Frames = FrameRange{Start: 1, End: 5}
			},
			wantErr: "single frame",
		},
		{
			name:    "negative frame start",
			mutate:  func(cfg *Config) { cfg.Frames.Start = -1 },
			wantErr: "frames.start",
		},
		{
			name:    "frame end before start",
			mutate:  func(cfg *Config) { cfg.Frames = FrameRange{Start: 10, End: 5} },
			wantErr: "end must not be before start",
		},
		{
			name:    "negative width",
			mutate:  func(cfg *Config) { cfg.Width = -100 },
			wantErr: "width",
		},
		{
			name:    "negative height",
			mutate:  func(cfg *Config) { cfg.Height = -1 },
			wantErr: "height",
		},
		{
			name:    "bad listen address",
			mutate:  func(cfg *Config) { cfg.Listen = "nope" },
			wantErr: "listen",
		},
		{
			name:   "empty listen is fine",
			mutate: func(cfg *Config) { cfg.Listen = "" },
		},
		{
			name:    "debounce out of range",
			mutate:  func(cfg *Config) { cfg.DebounceMS = 120000 },
			wantErr: "debounce_ms",
		},
		{
			name:    "bad log level",
			mutate:  func(cfg *Config) { cfg.LogLevel = "verbose" },
			wantErr: "log_level",
		},
		{
			name:    "bad log format",
			mutate:  func(cfg *Config) { cfg.LogFormat = "xml" },
			wantErr: "log_format",
		},
		{
			name:    "bad style",
			mutate:  func(cfg *Config) { cfg.Style.Opacity = 5 },
			wantErr: "style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAllowsEmptyScene(t *testing.T) {
	// The config command dumps partial setups, so an unset scene is
	// not a validation failure.
	cfg := Defaults()
	require.NoError(t, Validate(cfg))
}

func TestDump(t *testing.T) {
	cfg := validConfig(t)
	cfg.Version = "1.2.3"
	cfg.Frames = FrameRange{Start: 1, End: 25}

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, cfg))

	out := buf.String()
	assert.Contains(t, out, "scene: ")
	assert.Contains(t, out, ":8080")
	assert.Contains(t, out, "version: 1.2.3")
	assert.Contains(t, out, "opacity: 0.9")

	// The dump must itself be a loadable config.
	var back Config
	dec := yaml.NewDecoder(&buf)
	dec.KnownFields(true)
	require.NoError(t, dec.Decode(&back))
	assert.Equal(t, cfg, back)
}
