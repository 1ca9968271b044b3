package interviews

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	_ "embed"

	"ats-backend/internal/ats"
	"ats-backend/internal/shared/telemetry"
)

//go:embed prompts/questions.txt
var questionsTemplate string

// Service assembles interview records from resumes: extraction, a third
// oracle call for exactly five questions, then one atomic store write.
type Service struct {
	Pipeline *ats.Service
	Store    Store
}

// CreateFromResume runs the full interview-generation variant for an
// authenticated user. The record is only written after both oracle calls
// succeed; a cancelled request never leaves a partial record behind.
func (s *Service) CreateFromResume(ctx context.Context, doc ats.Document, userID string) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, errors.New("userID is required")
	}

	resume, err := s.Pipeline.Extract(ctx, doc)
	if err != nil {
		return Record{}, err
	}

	questions, err := s.generateQuestions(ctx, resume)
	if err != nil {
		return Record{}, err
	}

	record := Record{
		Role:       roleFromResume(resume),
		Type:       TypeResumeBased,
		Level:      resume.Level,
		TechStack:  resume.TechStack,
		Questions:  questions,
		UserID:     userID,
		Finalized:  true,
		CoverImage: randomCover(),
		CreatedAt:  time.Now().UTC(),
	}

	id, err := s.Store.Add(ctx, Collection, record)
	if err != nil {
		if !errors.Is(err, ErrPersistence) {
			err = errors.Join(ErrPersistence, err)
		}
		return Record{}, err
	}

	telemetry.Info("interview.created", map[string]any{
		"record_id": id,
		"user_id":   userID,
		"level":     record.Level,
	})
	return record, nil
}

func (s *Service) generateQuestions(ctx context.Context, resume ats.ExtractedResume) ([]string, error) {
	prompt := buildQuestionsPrompt(resume)
	raw, err := s.Pipeline.Generate(ctx, "questions", prompt)
	if err != nil {
		return nil, err
	}
	return ats.NormalizeQuestions(ats.StripFences(raw))
}

func buildQuestionsPrompt(resume ats.ExtractedResume) string {
	prompt := strings.ReplaceAll(questionsTemplate, "{{SKILLS}}", jsonField(resume.Skills))
	prompt = strings.ReplaceAll(prompt, "{{PROJECTS}}", jsonField(resume.Projects))
	prompt = strings.ReplaceAll(prompt, "{{EXPERIENCE}}", jsonField(resume.Experience))
	prompt = strings.ReplaceAll(prompt, "{{EDUCATION}}", jsonField(resume.Education))
	return strings.ReplaceAll(prompt, "{{CERTIFICATIONS}}", jsonField(resume.Certifications))
}

func jsonField(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(payload)
}

func roleFromResume(resume ats.ExtractedResume) string {
	if name := strings.TrimSpace(resume.FullName); name != "" {
		return name
	}
	return "Candidate"
}
