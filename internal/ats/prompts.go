package ats

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	_ "embed"
)

var (
	//go:embed prompts/extract.txt
	extractTemplate string
	//go:embed prompts/score.txt
	scoreTemplate string
	//go:embed prompts/review.txt
	reviewTemplate string
)

// BuildExtractionPrompt renders the extraction prompt for a document.
// Binary documents travel base64-encoded inline; plain text is embedded
// as-is, matching how the upload arrived.
func BuildExtractionPrompt(doc Document) string {
	kind := "a base64-encoded document"
	header := "BASE64 RESUME DOCUMENT"
	payload := base64.StdEncoding.EncodeToString(doc.Data)
	if isPlainText(doc) {
		kind = "plain text"
		header = "RESUME TEXT"
		payload = string(doc.Data)
	}
	prompt := strings.ReplaceAll(extractTemplate, "{{PAYLOAD_KIND}}", kind)
	prompt = strings.ReplaceAll(prompt, "{{PAYLOAD_HEADER}}", header)
	return strings.ReplaceAll(prompt, "{{RESUME_PAYLOAD}}", payload)
}

// BuildScoringPrompt renders the strict-mode scoring prompt.
func BuildScoringPrompt(resumeText, jobDescription string) string {
	prompt := strings.ReplaceAll(scoreTemplate, "{{JOB_DESCRIPTION}}", jobDescription)
	return strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", resumeText)
}

// BuildReviewPrompt renders the heuristic-mode free-text review prompt.
func BuildReviewPrompt(resumeText, jobDescription string) string {
	prompt := strings.ReplaceAll(reviewTemplate, "{{JOB_DESCRIPTION}}", jobDescription)
	return strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", resumeText)
}

func isPlainText(doc Document) bool {
	mime := strings.ToLower(strings.TrimSpace(strings.Split(doc.MIMEType, ";")[0]))
	if strings.HasPrefix(mime, "text/") {
		return true
	}
	if mime == "" || mime == "application/octet-stream" {
		return utf8.Valid(doc.Data)
	}
	return false
}
