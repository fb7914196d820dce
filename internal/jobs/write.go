// SPDX-License-Identifier: MIT

package jobs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Nutek/blender-export-svg/internal/svg"
)

// ErrNotAppendable reports that the append target is not a document a
// session layer can be spliced into.
var ErrNotAppendable = errors.New("file does not end with </svg>")

var svgCloser = []byte("</svg>")

// writeDocument writes a fresh document, atomically replacing whatever
// was at path.
func writeDocument(ctx context.Context, path string, doc *svg.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("render SVG data: %w", err)
	}
	return writeFileAtomic(ctx, path, buf.Bytes())
}

// appendLayer splices the document's session layer into the existing
// file at path, in front of its closing tag. The target must end with
// </svg>, trailing whitespace aside.
func appendLayer(ctx context.Context, path string, doc *svg.Document) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read append target: %w", err)
	}

	idx := bytes.LastIndex(data, svgCloser)
	if idx < 0 || len(bytes.TrimSpace(data[idx+len(svgCloser):])) != 0 {
		return fmt.Errorf("append to %s: %w", path, ErrNotAppendable)
	}

	var buf bytes.Buffer
	buf.Write(data[:idx])
	if buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString(" <!-- new blender session -->\n")
	buf.WriteString(doc.Layer.StringLevel(1, 1))
	buf.WriteString("\n</svg>\n")

	return writeFileAtomic(ctx, path, buf.Bytes())
}
