package ats

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitRun   = regexp.MustCompile(`\d+`)
	htmlTag    = regexp.MustCompile(`<[^>]+>`)
	blankLines = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)
)

// NormalizeReview extracts a score and a cleaned narrative from free-text
// oracle output (heuristic mode). The score is the first run of at most
// three digits; when the text carries none the score stays nil, because a
// defaulted 0 would read as a real zero score. A run above 100 means the
// oracle broke the requested bounds and the payload is rejected.
func NormalizeReview(sanitized string) (Review, error) {
	var score *int
	for _, run := range digitRun.FindAllString(sanitized, -1) {
		if len(run) > 3 {
			continue
		}
		value, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		if value > maxScoreValue {
			return Review{}, &ParseError{Reason: "score out of range [0,100]", Raw: sanitized}
		}
		score = &value
		break
	}

	analysis := htmlTag.ReplaceAllString(sanitized, "")
	analysis = strings.ReplaceAll(analysis, "**", "")
	analysis = blankLines.ReplaceAllString(analysis, "\n\n")
	analysis = strings.TrimSpace(analysis)

	return Review{Score: score, Analysis: analysis}, nil
}
