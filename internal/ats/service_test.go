package ats

import (
	"context"
	"errors"
	"testing"
	"time"

	"ats-backend/internal/oracle"
)

// queueOracle returns canned responses in order, recording prompts.
type queueOracle struct {
	responses []string
	err       error
	prompts   []string
}

func (q *queueOracle) Generate(ctx context.Context, prompt string) (string, error) {
	q.prompts = append(q.prompts, prompt)
	if q.err != nil {
		return "", q.err
	}
	if len(q.responses) == 0 {
		return "", oracle.ErrRejected
	}
	next := q.responses[0]
	q.responses = q.responses[1:]
	return next, nil
}

type blockingOracle struct{}

func (blockingOracle) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestServiceExtractStripsFences(t *testing.T) {
	o := &queueOracle{responses: []string{
		"```json\n{\"fullName\": \"Ada\", \"resumeText\": \"Ada. Engineer.\"}\n```",
	}}
	svc := &Service{Oracle: o}

	resume, err := svc.Extract(context.Background(), Document{Data: []byte("resume"), MIMEType: "text/plain"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resume.FullName != "Ada" || resume.ResumeText != "Ada. Engineer." {
		t.Fatalf("unexpected resume: %+v", resume)
	}
	if len(o.prompts) != 1 {
		t.Fatalf("expected one oracle call, got %d", len(o.prompts))
	}
}

func TestServiceExtractParseFailure(t *testing.T) {
	o := &queueOracle{responses: []string{"not json at all"}}
	svc := &Service{Oracle: o}

	_, err := svc.Extract(context.Background(), Document{Data: []byte("resume"), MIMEType: "text/plain"})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestServiceScoreRequiresResumeText(t *testing.T) {
	o := &queueOracle{}
	svc := &Service{Oracle: o}

	_, err := svc.Score(context.Background(), ExtractedResume{}, "job description")
	if !errors.Is(err, ErrEmptyResume) {
		t.Fatalf("expected ErrEmptyResume, got %v", err)
	}
	if len(o.prompts) != 0 {
		t.Fatalf("expected no oracle call for empty resume text")
	}
}

func TestServiceScoreHappyPath(t *testing.T) {
	o := &queueOracle{responses: []string{"```json\n{\"score\": 87}\n```"}}
	svc := &Service{Oracle: o}

	result, err := svc.Score(context.Background(), ExtractedResume{ResumeText: "Ada. Engineer."}, "Backend role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 87 {
		t.Fatalf("unexpected score: %d", result.Score)
	}
}

func TestServiceReviewRequiresResumeText(t *testing.T) {
	svc := &Service{Oracle: &queueOracle{}}

	_, err := svc.Review(context.Background(), ExtractedResume{}, "job description")
	if !errors.Is(err, ErrEmptyResume) {
		t.Fatalf("expected ErrEmptyResume, got %v", err)
	}
}

func TestServiceGenerateTimeoutMapsToUnavailable(t *testing.T) {
	svc := &Service{Oracle: blockingOracle{}, Timeout: 10 * time.Millisecond}

	_, err := svc.Generate(context.Background(), "extract", "prompt")
	if !errors.Is(err, oracle.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestServicePropagatesOracleErrors(t *testing.T) {
	svc := &Service{Oracle: &queueOracle{err: oracle.ErrRejected}}

	_, err := svc.Extract(context.Background(), Document{Data: []byte("x"), MIMEType: "text/plain"})
	if !errors.Is(err, oracle.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}
