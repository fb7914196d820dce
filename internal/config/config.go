// SPDX-License-Identifier: MIT

// Package config resolves the exporter configuration with the
// precedence defaults < config file < VSVG_* environment, validates
// the result, and renders the effective configuration for inspection.
package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Nutek/blender-export-svg/internal/style"
	"github.com/Nutek/blender-export-svg/internal/validate"
)

// FrameRange selects the half-open frame interval [Start, End) of a
// sequence export. An inactive range (End <= Start) exports a single
// unnumbered frame.
type FrameRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Active reports whether the range selects a numbered sequence.
func (r FrameRange) Active() bool { return r.End > r.Start }

// Count returns the number of frames the range will produce.
func (r FrameRange) Count() int {
	if !r.Active() {
		return 1
	}
	return r.End - r.Start
}

func (r FrameRange) String() string {
	if !r.Active() {
		return ""
	}
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// ParseFrameRange parses "start:end" (half-open) or a single frame
// number "n", which becomes the one-frame range [n, n+1).
func ParseFrameRange(s string) (FrameRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FrameRange{}, fmt.Errorf("empty frame range")
	}
	if a, b, ok := strings.Cut(s, ":"); ok {
		start, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return FrameRange{}, fmt.Errorf("invalid frame range start %q: %w", a, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return FrameRange{}, fmt.Errorf("invalid frame range end %q: %w", b, err)
		}
		if end <= start {
			return FrameRange{}, fmt.Errorf("frame range %q: end must be after start", s)
		}
		return FrameRange{Start: start, End: end}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return FrameRange{}, fmt.Errorf("invalid frame number %q: %w", s, err)
	}
	return FrameRange{Start: n, End: n + 1}, nil
}

// Config is the effective exporter configuration.
type Config struct {
	// Scene is the scene description to export (.yaml, .yml or .obj).
	Scene string `yaml:"scene"`
	// Out is the output document path; sequences number their frames
	// next to it as <base>_0001.svg and so on.
	Out string `yaml:"out"`

	Frames FrameRange `yaml:"frames"`
	// Append splices the frame into an existing document as a new
	// layer instead of replacing the file.
	Append bool `yaml:"append"`

	// Width and Height override the camera region in pixels when
	// non-zero.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Listen is the preview server address.
	Listen string `yaml:"listen"`
	// DebounceMS is the settle time for watch mode re-exports.
	DebounceMS int `yaml:"debounce_ms"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	Style style.Settings `yaml:"style"`

	Version string `yaml:"version,omitempty"`
}

// Validate checks the resolved configuration. Scene may be empty here;
// the commands that need one enforce its presence themselves, so the
// config command can still dump a partial setup.
func Validate(cfg Config) error {
	v := validate.New()

	if cfg.Scene != "" {
		v.File("scene", cfg.Scene, true)
	}
	v.NotEmpty("out", cfg.Out)
	if cfg.Out != "" {
		if !strings.HasSuffix(strings.ToLower(cfg.Out), ".svg") {
			v.AddError("out", "output path must end in .svg", cfg.Out)
		} else {
			// Appending needs a document to splice into.
			v.File("out", cfg.Out, cfg.Append)
		}
	}

	v.NonNegative("frames.start", cfg.Frames.Start)
	if cfg.Frames.End != 0 && cfg.Frames.End < cfg.Frames.Start {
		v.AddError("frames", "end must not be before start", cfg.Frames)
	}
	if cfg.Append && cfg.Frames.Active() {
		v.AddError("frames", "append mode writes a single frame, not a sequence", cfg.Frames)
	}

	v.NonNegative("width", cfg.Width)
	v.NonNegative("height", cfg.Height)
	if cfg.Listen != "" {
		v.ListenAddr("listen", cfg.Listen)
	}
	v.Range("debounce_ms", cfg.DebounceMS, 0, 60000)

	if _, err := validate.ParseLogLevel(cfg.LogLevel); err != nil {
		v.AddError("log_level", err.Error(), cfg.LogLevel)
	}
	if _, err := validate.ParseLogFormat(cfg.LogFormat); err != nil {
		v.AddError("log_format", err.Error(), cfg.LogFormat)
	}

	if err := cfg.Style.Validate(); err != nil {
		v.AddError("style", err.Error(), nil)
	}

	return v.Err()
}

// Dump writes the effective configuration as YAML, the backing data of
// the config command.
func Dump(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
