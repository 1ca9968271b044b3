package interviews

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ats-backend/internal/ats"
)

// queueOracle returns canned responses in order.
type queueOracle struct {
	responses []string
	calls     int
}

func (q *queueOracle) Generate(ctx context.Context, prompt string) (string, error) {
	q.calls++
	if len(q.responses) == 0 {
		return "", errors.New("no canned response left")
	}
	next := q.responses[0]
	q.responses = q.responses[1:]
	return next, nil
}

type failingStore struct{}

func (failingStore) Add(ctx context.Context, collection string, record any) (string, error) {
	return "", errors.New("connection refused")
}

const extractionPayload = "```json\n" +
	`{"fullName": "Ada Lovelace", "level": "senior", "techStack": ["Go", "Postgres"],
	  "skills": ["Go"], "resumeText": "Ada. Engineer."}` + "\n```"

const questionsPayload = "```json\n" +
	`["q1", "q2", "q3", "q4", "q5"]` + "\n```"

func newTestService(o *queueOracle, store Store) *Service {
	return &Service{
		Pipeline: &ats.Service{Oracle: o},
		Store:    store,
	}
}

func TestCreateFromResumeBuildsRecord(t *testing.T) {
	o := &queueOracle{responses: []string{extractionPayload, questionsPayload}}
	store := NewMemoryStore()
	svc := newTestService(o, store)

	record, err := svc.CreateFromResume(context.Background(), ats.Document{Data: []byte("resume"), MIMEType: "text/plain"}, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Role != "Ada Lovelace" {
		t.Fatalf("unexpected role: %q", record.Role)
	}
	if record.Type != TypeResumeBased {
		t.Fatalf("unexpected type: %q", record.Type)
	}
	if record.Level != ats.LevelSenior {
		t.Fatalf("unexpected level: %q", record.Level)
	}
	if len(record.TechStack) != 2 {
		t.Fatalf("unexpected techstack: %+v", record.TechStack)
	}
	if len(record.Questions) != 5 {
		t.Fatalf("unexpected questions: %+v", record.Questions)
	}
	if record.UserID != "user-1" || !record.Finalized {
		t.Fatalf("unexpected record flags: %+v", record)
	}
	if record.CoverImage == "" {
		t.Fatalf("expected a cover image")
	}
	if record.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
	if store.Adds() != 1 {
		t.Fatalf("expected one store insert, got %d", store.Adds())
	}
	if o.calls != 2 {
		t.Fatalf("expected two oracle calls, got %d", o.calls)
	}
}

func TestCreateFromResumeRoleFallsBackToCandidate(t *testing.T) {
	o := &queueOracle{responses: []string{
		"```json\n{\"resumeText\": \"anonymous resume\"}\n```",
		questionsPayload,
	}}
	svc := newTestService(o, NewMemoryStore())

	record, err := svc.CreateFromResume(context.Background(), ats.Document{Data: []byte("x"), MIMEType: "text/plain"}, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Role != "Candidate" {
		t.Fatalf("unexpected role: %q", record.Role)
	}
}

func TestCreateFromResumeRequiresUserID(t *testing.T) {
	o := &queueOracle{}
	svc := newTestService(o, NewMemoryStore())

	_, err := svc.CreateFromResume(context.Background(), ats.Document{Data: []byte("x")}, "  ")
	if err == nil {
		t.Fatalf("expected error for blank userID")
	}
	if o.calls != 0 {
		t.Fatalf("expected no oracle calls, got %d", o.calls)
	}
}

func TestCreateFromResumeRejectsWrongQuestionCount(t *testing.T) {
	o := &queueOracle{responses: []string{
		extractionPayload,
		"```json\n[\"q1\", \"q2\", \"q3\", \"q4\"]\n```",
	}}
	store := NewMemoryStore()
	svc := newTestService(o, store)

	_, err := svc.CreateFromResume(context.Background(), ats.Document{Data: []byte("x"), MIMEType: "text/plain"}, "user-1")
	var parseErr *ats.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if store.Adds() != 0 {
		t.Fatalf("expected no store insert on failure, got %d", store.Adds())
	}
}

func TestCreateFromResumeWrapsStoreFailure(t *testing.T) {
	o := &queueOracle{responses: []string{extractionPayload, questionsPayload}}
	svc := newTestService(o, failingStore{})

	_, err := svc.CreateFromResume(context.Background(), ats.Document{Data: []byte("x"), MIMEType: "text/plain"}, "user-1")
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestBuildQuestionsPromptSubstitutesResumeFields(t *testing.T) {
	resume := ats.ExtractedResume{
		Skills:         []string{"Go"},
		Certifications: []string{"CKA"},
	}
	prompt := buildQuestionsPrompt(resume)
	if !strings.Contains(prompt, `"Go"`) || !strings.Contains(prompt, `"CKA"`) {
		t.Fatalf("expected resume fields in prompt: %s", prompt)
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("expected no placeholders left: %s", prompt)
	}
}
