package ats

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeReviewExtractsFirstScore(t *testing.T) {
	review, err := NormalizeReview("Overall Score: 85/100. Good resume.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Score == nil || *review.Score != 85 {
		t.Fatalf("unexpected score: %+v", review.Score)
	}
}

func TestNormalizeReviewSkipsLongDigitRuns(t *testing.T) {
	// Years like 2024 must not be mistaken for a score.
	review, err := NormalizeReview("Since 2024 the candidate scored 72 in our scale.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Score == nil || *review.Score != 72 {
		t.Fatalf("unexpected score: %+v", review.Score)
	}
}

func TestNormalizeReviewNilScoreWhenNoDigits(t *testing.T) {
	review, err := NormalizeReview("A thoughtful resume with no numeric verdict.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Score != nil {
		t.Fatalf("expected nil score, got %d", *review.Score)
	}
	if review.Analysis == "" {
		t.Fatalf("expected analysis text")
	}
}

func TestNormalizeReviewRejectsScoreAbove100(t *testing.T) {
	_, err := NormalizeReview("Score: 150 out of 100.")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestNormalizeReviewCleansMarkup(t *testing.T) {
	raw := "Score: 60\n\n\n\n<b>Strengths</b>: **solid** basics.\n\n\nMore text."
	review, err := NormalizeReview(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(review.Analysis, "<b>") || strings.Contains(review.Analysis, "**") {
		t.Fatalf("expected markup removed: %q", review.Analysis)
	}
	if strings.Contains(review.Analysis, "\n\n\n") {
		t.Fatalf("expected blank lines collapsed: %q", review.Analysis)
	}
}
