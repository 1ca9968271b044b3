package ats

import "testing"

func TestStripFencesRemovesFencedBlock(t *testing.T) {
	raw := "```json\n{\"score\": 87}\n```"
	got := StripFences(raw)
	if got != "{\"score\": 87}" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestStripFencesHandlesBareFences(t *testing.T) {
	raw := "```\n[\"a\", \"b\"]\n```"
	got := StripFences(raw)
	if got != "[\"a\", \"b\"]" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestStripFencesRemovesMarkersMidText(t *testing.T) {
	raw := "Here is the result:\n```json\n{}\n```\nDone."
	got := StripFences(raw)
	if got != "Here is the result:\n\n{}\n\nDone." {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	raw := "```json\n{\"a\": 1}\n```"
	once := StripFences(raw)
	twice := StripFences(once)
	if once != twice {
		t.Fatalf("not idempotent: %q vs %q", once, twice)
	}
}

func TestStripFencesLeavesPlainTextAlone(t *testing.T) {
	raw := "  {\"a\": 1}  "
	got := StripFences(raw)
	if got != "{\"a\": 1}" {
		t.Fatalf("unexpected output: %q", got)
	}
}
