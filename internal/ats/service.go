package ats

import (
	"context"
	"errors"
	"time"

	"ats-backend/internal/oracle"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/telemetry"
)

// Mode selects the scoring strategy: strict JSON schema or free-text review.
type Mode string

const (
	ModeStrict    Mode = "strict"
	ModeHeuristic Mode = "heuristic"
)

const defaultOracleTimeout = 120 * time.Second

// Service runs the resume evaluation pipeline. All state is request-scoped;
// the two oracle calls per request happen sequentially because the scoring
// prompt is built from extraction output.
type Service struct {
	Oracle  oracle.Client
	Timeout time.Duration
	Mode    Mode
}

// Extract turns an uploaded document into structured resume facts through a
// single oracle call. A malformed oracle payload aborts the pipeline; no
// partial extraction is accepted downstream.
func (s *Service) Extract(ctx context.Context, doc Document) (ExtractedResume, error) {
	raw, err := s.generate(ctx, "extract", BuildExtractionPrompt(doc))
	if err != nil {
		return ExtractedResume{}, err
	}
	resume, err := NormalizeExtractedResume(StripFences(raw))
	if err != nil {
		logParseFailure("extract", err)
		return ExtractedResume{}, err
	}
	return resume, nil
}

// Score compares extracted resume facts against a job description through a
// second oracle call, in strict mode.
func (s *Service) Score(ctx context.Context, resume ExtractedResume, jobDescription string) (MatchResult, error) {
	if resume.ResumeText == "" {
		return MatchResult{}, ErrEmptyResume
	}
	raw, err := s.generate(ctx, "score", BuildScoringPrompt(resume.ResumeText, jobDescription))
	if err != nil {
		return MatchResult{}, err
	}
	result, err := NormalizeMatchResult(StripFences(raw))
	if err != nil {
		logParseFailure("score", err)
		return MatchResult{}, err
	}
	return result, nil
}

// Review is the heuristic-mode counterpart of Score: the oracle answers in
// free text and the score is scraped out of it.
func (s *Service) Review(ctx context.Context, resume ExtractedResume, jobDescription string) (Review, error) {
	if resume.ResumeText == "" {
		return Review{}, ErrEmptyResume
	}
	raw, err := s.generate(ctx, "review", BuildReviewPrompt(resume.ResumeText, jobDescription))
	if err != nil {
		return Review{}, err
	}
	review, err := NormalizeReview(StripFences(raw))
	if err != nil {
		logParseFailure("review", err)
		return Review{}, err
	}
	return review, nil
}

// Generate runs one bounded oracle call on behalf of a pipeline stage.
// Exposed for collaborators that add their own stages (question generation).
func (s *Service) Generate(ctx context.Context, stage, prompt string) (string, error) {
	return s.generate(ctx, stage, prompt)
}

func (s *Service) generate(ctx context.Context, stage, prompt string) (string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultOracleTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	raw, err := s.Oracle.Generate(ctx, prompt)
	duration := time.Since(started)
	metrics.ObserveOracleDurationMs(float64(duration.Microseconds()) / 1000.0)
	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, oracle.ErrUnavailable) && !errors.Is(err, oracle.ErrRejected) {
			err = errors.Join(oracle.ErrUnavailable, err)
		}
		telemetry.Error("oracle.generate.failed", map[string]any{
			"stage":       stage,
			"duration_ms": float64(duration.Microseconds()) / 1000.0,
			"err":         err.Error(),
		})
		return "", err
	}
	telemetry.Info("oracle.generate", map[string]any{
		"stage":           stage,
		"duration_ms":     float64(duration.Microseconds()) / 1000.0,
		"response_length": len(raw),
	})
	return raw, nil
}

func logParseFailure(stage string, err error) {
	metrics.IncParseFailure()
	var parseErr *ParseError
	fields := map[string]any{"stage": stage, "err": err.Error()}
	if errors.As(err, &parseErr) {
		fields["raw_length"] = len(parseErr.Raw)
	}
	telemetry.Error("oracle.parse.failed", fields)
}
