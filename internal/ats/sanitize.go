package ats

import (
	"regexp"
	"strings"
)

var fenceMarker = regexp.MustCompile("```[a-zA-Z]*")

// StripFences removes markdown code-fence decoration from oracle output and
// trims surrounding whitespace. Fence markers are removed wherever they
// appear, with or without a language tag. Idempotent, never fails.
func StripFences(raw string) string {
	return strings.TrimSpace(fenceMarker.ReplaceAllString(raw, ""))
}
