package ats

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Field aliases tolerated when reading oracle objects. The prompts request
// the canonical camelCase keys, but the oracle has been seen returning prose
// headings ("Full Name", "Tech Stack"); both resolve to the same field.
var resumeFieldAliases = map[string][]string{
	"fullName":          {"fullname", "name", "candidatename"},
	"contact":           {"contact", "contactinformation", "contactinfo"},
	"skills":            {"skills"},
	"experience":        {"experience", "workexperience", "workhistory"},
	"projects":          {"projects"},
	"education":         {"education"},
	"certifications":    {"certifications", "certificationsachievements", "achievements"},
	"isExperienced":     {"isexperienced", "experienced"},
	"yearsOfExperience": {"yearsofexperience", "totalyearsofexperience"},
	"detectedSections":  {"detectedsections", "sections"},
	"extractedLinks":    {"extractedlinks", "links", "hyperlinks"},
	"level":             {"level"},
	"techStack":         {"techstack", "technologies"},
	"resumeText":        {"resumetext", "rawtext", "text"},
}

var matchFieldAliases = map[string][]string{
	"score":             {"score", "matchscore", "atsscore"},
	"picked_skills":     {"pickedskills", "matchedskills"},
	"picked_experience": {"pickedexperience", "relevantexperience"},
	"missing_keywords":  {"missingkeywords", "missingskills"},
	"strengths":         {"strengths"},
	"weaknesses":        {"weaknesses"},
	"improvement_tips":  {"improvementtips", "improvements", "tips"},
}

// NormalizeExtractedResume parses sanitized oracle text into an
// ExtractedResume. A merely incomplete object gets documented defaults; an
// unparseable payload, or an object with no recognized field, is a
// *ParseError carrying the sanitized text.
func NormalizeExtractedResume(sanitized string) (ExtractedResume, error) {
	obj, wrapped, err := parseObject(sanitized)
	if err != nil {
		return ExtractedResume{}, err
	}
	fields := canonicalize(obj)
	if !wrapped && countRecognized(fields, resumeFieldAliases) == 0 {
		return ExtractedResume{}, &ParseError{Reason: "no recognized resume fields", Raw: sanitized}
	}

	out := ExtractedResume{
		FullName:          asString(lookup(fields, resumeFieldAliases["fullName"])),
		Contact:           asContact(lookup(fields, resumeFieldAliases["contact"])),
		Skills:            asStringSlice(lookup(fields, resumeFieldAliases["skills"])),
		Experience:        asExperienceEntries(lookup(fields, resumeFieldAliases["experience"])),
		Projects:          asProjectEntries(lookup(fields, resumeFieldAliases["projects"])),
		Education:         asEducationEntries(lookup(fields, resumeFieldAliases["education"])),
		Certifications:    asStringSlice(lookup(fields, resumeFieldAliases["certifications"])),
		IsExperienced:     asBool(lookup(fields, resumeFieldAliases["isExperienced"])),
		YearsOfExperience: asYears(lookup(fields, resumeFieldAliases["yearsOfExperience"])),
		DetectedSections:  asStringSlice(lookup(fields, resumeFieldAliases["detectedSections"])),
		ExtractedLinks:    asStringSlice(lookup(fields, resumeFieldAliases["extractedLinks"])),
		Level:             normalizeLevel(asString(lookup(fields, resumeFieldAliases["level"]))),
		TechStack:         dedupeFold(asStringSlice(lookup(fields, resumeFieldAliases["techStack"]))),
		ResumeText:        asString(lookup(fields, resumeFieldAliases["resumeText"])),
	}
	return out, nil
}

// NormalizeMatchResult parses sanitized oracle text into a MatchResult.
// The score must be an integer within [0,100]; anything else means the
// oracle violated the requested contract and the whole payload is rejected.
func NormalizeMatchResult(sanitized string) (MatchResult, error) {
	obj, _, err := parseObject(sanitized)
	if err != nil {
		return MatchResult{}, err
	}
	fields := canonicalize(obj)

	raw, ok := lookupOK(fields, matchFieldAliases["score"])
	if !ok {
		return MatchResult{}, &ParseError{Reason: "missing score", Raw: sanitized}
	}
	score, err := scoreFromValue(raw, sanitized)
	if err != nil {
		return MatchResult{}, err
	}

	return MatchResult{
		Score:            score,
		PickedSkills:     asStringSlice(lookup(fields, matchFieldAliases["picked_skills"])),
		PickedExperience: asStringSlice(lookup(fields, matchFieldAliases["picked_experience"])),
		MissingKeywords:  asStringSlice(lookup(fields, matchFieldAliases["missing_keywords"])),
		Strengths:        asStringSlice(lookup(fields, matchFieldAliases["strengths"])),
		Weaknesses:       asStringSlice(lookup(fields, matchFieldAliases["weaknesses"])),
		ImprovementTips:  asStringSlice(lookup(fields, matchFieldAliases["improvement_tips"])),
	}, nil
}

// NormalizeQuestions parses sanitized oracle text as a list of exactly five
// question strings. Any other cardinality or shape is a *ParseError.
func NormalizeQuestions(sanitized string) ([]string, error) {
	var parsed any
	if err := json.Unmarshal([]byte(sanitized), &parsed); err != nil {
		return nil, &ParseError{Reason: "questions are not valid JSON", Raw: sanitized}
	}
	list, ok := parsed.([]any)
	if !ok {
		return nil, &ParseError{Reason: "questions payload is not a list", Raw: sanitized}
	}
	if len(list) != 5 {
		return nil, &ParseError{Reason: "expected exactly 5 questions, got " + strconv.Itoa(len(list)), Raw: sanitized}
	}
	questions := make([]string, 0, len(list))
	for _, item := range list {
		q, ok := item.(string)
		if !ok || strings.TrimSpace(q) == "" {
			return nil, &ParseError{Reason: "question item is not a non-empty string", Raw: sanitized}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func scoreFromValue(raw any, sanitized string) (int, error) {
	num, ok := raw.(float64)
	if !ok {
		if s, isStr := raw.(string); isStr {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return 0, &ParseError{Reason: "score is not a number", Raw: sanitized}
			}
			num = parsed
		} else {
			return 0, &ParseError{Reason: "score is not a number", Raw: sanitized}
		}
	}
	if num != math.Trunc(num) {
		return 0, &ParseError{Reason: "score is not an integer", Raw: sanitized}
	}
	if num < 0 || num > maxScoreValue {
		return 0, &ParseError{Reason: "score out of range [0,100]", Raw: sanitized}
	}
	return int(num), nil
}

// parseObject parses sanitized text as a single JSON value. Lists are wrapped
// under a default key rather than rejected; any other non-object shape fails.
func parseObject(sanitized string) (map[string]any, bool, error) {
	var parsed any
	if err := json.Unmarshal([]byte(sanitized), &parsed); err != nil {
		return nil, false, &ParseError{Reason: "payload is not valid JSON", Raw: sanitized}
	}
	switch v := parsed.(type) {
	case map[string]any:
		return v, false, nil
	case []any:
		return map[string]any{wrappedKey: v}, true, nil
	default:
		return nil, false, &ParseError{Reason: "payload is not a JSON object", Raw: sanitized}
	}
}

// canonicalize rekeys an object by lowercasing and dropping everything but
// letters and digits, so "Full Name" and "fullName" land on the same key.
func canonicalize(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		key := canonicalKey(k)
		if _, exists := out[key]; !exists {
			out[key] = v
		}
	}
	return out
}

func canonicalKey(k string) string {
	var b strings.Builder
	for _, r := range k {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func countRecognized(fields map[string]any, aliases map[string][]string) int {
	hits := 0
	for _, names := range aliases {
		if _, ok := lookupOK(fields, names); ok {
			hits++
		}
	}
	return hits
}

func lookup(fields map[string]any, names []string) any {
	v, _ := lookupOK(fields, names)
	return v
}

func lookupOK(fields map[string]any, names []string) (any, bool) {
	for _, name := range names {
		if v, ok := fields[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func asStringSlice(v any) []string {
	switch raw := v.(type) {
	case []any:
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			return []string{trimmed}
		}
		return []string{}
	default:
		return []string{}
	}
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes":
			return true
		}
	}
	return false
}

var leadingNumber = strings.NewReplacer("+", "", "~", "")

// asYears accepts a JSON number or a string with a leading number
// ("5", "5+ years"); anything undeterminable is 0, never negative.
func asYears(v any) float64 {
	var years float64
	switch raw := v.(type) {
	case float64:
		years = raw
	case string:
		cleaned := strings.TrimSpace(leadingNumber.Replace(raw))
		end := 0
		for end < len(cleaned) && (cleaned[end] >= '0' && cleaned[end] <= '9' || cleaned[end] == '.') {
			end++
		}
		if end > 0 {
			if parsed, err := strconv.ParseFloat(cleaned[:end], 64); err == nil {
				years = parsed
			}
		}
	}
	if years < 0 {
		return 0
	}
	return years
}

func asContact(v any) Contact {
	obj, ok := v.(map[string]any)
	if !ok {
		return Contact{}
	}
	fields := canonicalize(obj)
	return Contact{
		Email: asString(lookup(fields, []string{"email", "emailaddress"})),
		Phone: asString(lookup(fields, []string{"phone", "phonenumber", "mobile"})),
	}
}

func asExperienceEntries(v any) []ExperienceEntry {
	raw, ok := v.([]any)
	if !ok {
		return []ExperienceEntry{}
	}
	out := make([]ExperienceEntry, 0, len(raw))
	for _, item := range raw {
		switch entry := item.(type) {
		case map[string]any:
			fields := canonicalize(entry)
			out = append(out, ExperienceEntry{
				Company:  asString(lookup(fields, []string{"company", "employer", "organization"})),
				Title:    asString(lookup(fields, []string{"title", "jobtitle", "role", "position"})),
				Duration: asString(lookup(fields, []string{"duration", "daterange", "dates", "period"})),
			})
		case string:
			if trimmed := strings.TrimSpace(entry); trimmed != "" {
				out = append(out, ExperienceEntry{Title: trimmed})
			}
		}
	}
	return out
}

func asProjectEntries(v any) []ProjectEntry {
	raw, ok := v.([]any)
	if !ok {
		return []ProjectEntry{}
	}
	out := make([]ProjectEntry, 0, len(raw))
	for _, item := range raw {
		switch entry := item.(type) {
		case map[string]any:
			fields := canonicalize(entry)
			out = append(out, ProjectEntry{
				Title:        asString(lookup(fields, []string{"title", "name"})),
				Description:  asString(lookup(fields, []string{"description"})),
				Technologies: asStringSlice(lookup(fields, []string{"technologies", "techused", "tools"})),
			})
		case string:
			if trimmed := strings.TrimSpace(entry); trimmed != "" {
				out = append(out, ProjectEntry{Title: trimmed})
			}
		}
	}
	return out
}

func asEducationEntries(v any) []EducationEntry {
	raw, ok := v.([]any)
	if !ok {
		return []EducationEntry{}
	}
	out := make([]EducationEntry, 0, len(raw))
	for _, item := range raw {
		switch entry := item.(type) {
		case map[string]any:
			fields := canonicalize(entry)
			out = append(out, EducationEntry{
				Degree:    asString(lookup(fields, []string{"degree", "qualification"})),
				Institute: asString(lookup(fields, []string{"institute", "institution", "school", "university"})),
				Year:      asString(lookup(fields, []string{"year", "years", "date"})),
			})
		case string:
			if trimmed := strings.TrimSpace(entry); trimmed != "" {
				out = append(out, EducationEntry{Degree: trimmed})
			}
		}
	}
	return out
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "fresher":
		return LevelFresher
	case "junior":
		return LevelJunior
	case "mid-level", "mid level", "mid", "middle":
		return LevelMid
	case "senior":
		return LevelSenior
	case "lead":
		return LevelLead
	default:
		return LevelUnknown
	}
}

// dedupeFold removes case-insensitive duplicates while preserving order and
// the first-seen casing: Python, python, PyTorch -> Python, PyTorch.
func dedupeFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
