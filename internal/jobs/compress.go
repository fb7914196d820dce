// SPDX-License-Identifier: MIT

package jobs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/Nutek/blender-export-svg/internal/log"
)

// Compress gzips an exported document into the .svgz form Inkscape
// reads, next to the original, and returns the compressed path.
func Compress(ctx context.Context, path string) (string, error) {
	logger := log.WithComponentFromContext(ctx, "jobs")

	if !strings.HasSuffix(strings.ToLower(path), ".svg") {
		return "", fmt.Errorf("compress %s: not an .svg file", path)
	}

	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open SVG file: %w", err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			logger.Debug().Err(cerr).Str("path", path).Msg("close SVG file")
		}
	}()

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create gzip writer: %w", err)
	}
	if _, err := io.Copy(zw, in); err != nil {
		return "", fmt.Errorf("compress SVG data: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finish gzip stream: %w", err)
	}

	out := path + "z"
	if err := writeFileAtomic(ctx, out, buf.Bytes()); err != nil {
		return "", err
	}

	logger.Info().
		Str("event", "compress.success").
		Str("path", out).
		Int("bytes", buf.Len()).
		Msg("document compressed")
	return out, nil
}
