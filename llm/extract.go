package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Per-category field schemas shown to the model. The keys double as the
// draft fields returned to the admin UI for review.
var schemas = map[string]string{
	"placements":   `{ "company": "...", "role": "...", "ctc": "...", "eligibility": "...", "deadline": "...", "details": "..." }`,
	"competitions": `{ "eventName": "...", "organizer": "...", "scope": "...", "prizes": "...", "date": "...", "details": "..." }`,
	"notices":      `{ "title": "...", "date": "...", "targetYear": "...", "targetDept": "...", "details": "..." }`,
	"clubs":        `{ "eventName": "...", "date": "...", "clubName": "...", "details": "..." }`,
}

var validDepts = []string{"CSE", "AIML", "AIDS", "ISE", "ECE", "EEE", "Mech", "Aero"}

var reCodeFence = regexp.MustCompile("```(?:json)?")

// Extractor turns a poster image into a reviewable draft record using
// the generative model. Nothing here persists anything.
type Extractor struct {
	Client ContentClient
	Model  string
}

// ExtractPoster asks the model for the category's schema, decodes the
// (possibly fenced) JSON answer and applies the field sanitisers.
// knownClubs is used to pin the clubName field to a registered club.
func (e *Extractor) ExtractPoster(ctx context.Context, category, mimeType, base64Data string, knownClubs []string) (map[string]string, error) {
	schema, ok := schemas[category]
	if !ok {
		return nil, fmt.Errorf("llm: unknown category %q", category)
	}

	prompt := fmt.Sprintf("Analyze Poster. Extract JSON: %s. If a field is missing, leave it empty.", schema)
	req := GenerateContentRequest{
		Contents: []Content{{
			Parts: []Part{
				{Text: prompt},
				{InlineData: &InlineData{MimeType: mimeType, Data: base64Data}},
			},
		}},
	}

	resp, err := e.Client.GenerateContent(ctx, e.Model, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("llm: empty response")
	}

	text := strings.TrimSpace(reCodeFence.ReplaceAllString(resp.Candidates[0].Content.Parts[0].Text, ""))

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("llm: decode extraction: %w", err)
	}

	fields := map[string]string{}
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case float64, bool:
			fields[k] = fmt.Sprint(val)
		}
	}

	// Field-name variants collapse into the canonical draft keys.
	if fields["details"] == "" {
		fields["details"] = firstNonEmpty(fields["description"], fields["summary"], fields["content"])
	}
	if fields["title"] == "" && fields["eventName"] != "" {
		fields["title"] = fields["eventName"]
	}

	if category == "notices" {
		fields["targetYear"] = SanitizeTargetYear(fields["targetYear"])
		fields["targetDept"] = SanitizeTargetDept(fields["targetDept"])
	}

	if category == "clubs" {
		fields["clubName"] = matchClub(fields["clubName"], knownClubs)
	}

	return fields, nil
}

// SanitizeTargetYear buckets a free-form year hint into the notice
// audience values the boards understand.
func SanitizeTargetYear(raw string) string {
	y := strings.ToLower(raw)
	switch {
	case strings.ContainsAny(y, "056789"):
		return "General"
	case strings.Contains(y, "1"):
		return "1st Year"
	case strings.Contains(y, "2"):
		return "2nd Year"
	case strings.Contains(y, "3"):
		return "3rd Year"
	case strings.Contains(y, "4"):
		return "4th Year"
	default:
		return "General"
	}
}

// SanitizeTargetDept maps a free-form department hint onto the known
// department list, defaulting to "All".
func SanitizeTargetDept(raw string) string {
	d := strings.ToLower(raw)
	for _, dept := range validDepts {
		if strings.Contains(d, strings.ToLower(dept)) {
			return dept
		}
	}
	return "All"
}

// matchClub pins an extracted club name to a registered one: exact-ish
// first-word containment, else the first known club, else the raw value.
func matchClub(name string, known []string) string {
	if len(known) == 0 {
		return name
	}
	if name == "" {
		return known[0]
	}
	lower := strings.ToLower(name)
	for _, club := range known {
		firstWord := strings.ToLower(strings.SplitN(club, " ", 2)[0])
		if strings.Contains(lower, firstWord) {
			return club
		}
	}
	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
