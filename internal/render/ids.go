// SPDX-License-Identifier: MIT

package render

import (
	"strings"
	"time"
	"unicode"

	unorm "golang.org/x/text/unicode/norm"
)

// safeID makes a string usable as an XML id: Unicode is normalized to
// NFC and anything outside the XML name grammar becomes an underscore.
// An empty or digit-leading result gets an alphabetic prefix so
// references like url(#...) stay valid.
func safeID(s string) string {
	s = unorm.NFC.String(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		return "unnamed"
	}
	switch out[0] {
	case '-', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		out = "n" + out
	}
	return out
}

// layerID is the session layer identifier: the export timestamp in a
// form that stays readable but is valid as an XML id.
func layerID(stamp time.Time) string {
	return stamp.Format("Mon_Jan_02_15-04-05_2006")
}
