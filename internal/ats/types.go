package ats

import (
	"errors"
	"fmt"
)

// Candidate experience levels the extraction stage may report.
const (
	LevelFresher  = "Fresher"
	LevelJunior   = "Junior"
	LevelMid      = "Mid-level"
	LevelSenior   = "Senior"
	LevelLead     = "Lead"
	LevelUnknown  = "Unknown"
	wrappedKey    = "resumeDetails"
	maxScoreValue = 100
)

// Document is an uploaded resume plus its declared type.
type Document struct {
	Data     []byte
	MIMEType string
	FileName string
}

// Contact holds the contact details found on a resume.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ExperienceEntry is one employment record from a resume.
type ExperienceEntry struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// ProjectEntry is one project record from a resume.
type ProjectEntry struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// EducationEntry is one education record from a resume.
type EducationEntry struct {
	Degree    string `json:"degree"`
	Institute string `json:"institute"`
	Year      string `json:"year"`
}

// ExtractedResume is the structured view of a resume produced by the
// extraction stage. It is built once per request and never mutated after.
type ExtractedResume struct {
	FullName          string            `json:"fullName"`
	Contact           Contact           `json:"contact"`
	Skills            []string          `json:"skills"`
	Experience        []ExperienceEntry `json:"experience"`
	Projects          []ProjectEntry    `json:"projects"`
	Education         []EducationEntry  `json:"education"`
	Certifications    []string          `json:"certifications"`
	IsExperienced     bool              `json:"isExperienced"`
	YearsOfExperience float64           `json:"yearsOfExperience"`
	DetectedSections  []string          `json:"detectedSections"`
	ExtractedLinks    []string          `json:"extractedLinks"`
	Level             string            `json:"level"`
	TechStack         []string          `json:"techStack"`
	ResumeText        string            `json:"resumeText"`
}

// MatchResult is the bounded score and categorized findings produced by the
// scoring stage. Score is always within [0,100]; list fields are never nil.
type MatchResult struct {
	Score            int      `json:"score"`
	PickedSkills     []string `json:"picked_skills"`
	PickedExperience []string `json:"picked_experience"`
	MissingKeywords  []string `json:"missing_keywords"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	ImprovementTips  []string `json:"improvement_tips"`
}

// Review is the heuristic-mode result: a score scraped from free text
// (nil when the text carried none) and a cleaned-up narrative.
type Review struct {
	Score    *int
	Analysis string
}

// ParseError reports oracle output that failed the expected contract.
// Raw carries the sanitized oracle text for operator diagnosis; it must
// never be surfaced as authoritative data.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("oracle parse error: %s", e.Reason)
}

// ErrEmptyResume is returned when the extraction stage yields no resume text
// for the scoring stage to work with.
var ErrEmptyResume = errors.New("extracted resume text is empty")
