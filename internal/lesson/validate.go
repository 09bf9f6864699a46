package lesson

import (
	"fmt"
	"strings"
)

// ValidateSkeleton checks the structural constraints the JSON schema
// cannot express. It collects every violation rather than stopping at
// the first.
func ValidateSkeleton(s *ContentSkeleton) error {
	var violations []FieldViolation
	add := func(field, reason string) {
		violations = append(violations, FieldViolation{Field: field, Reason: reason})
	}

	if strings.TrimSpace(s.Title) == "" {
		add("title", "empty")
	}
	if len(s.Plan) == 0 {
		add("plan", "empty")
	}
	if strings.TrimSpace(s.Reading.Body) == "" {
		add("reading.body", "empty")
	}
	if len(s.Dialogue) == 0 {
		add("dialogue", "empty")
	}
	for i, line := range s.Dialogue {
		if strings.TrimSpace(line.Text) == "" {
			add(fmt.Sprintf("dialogue[%d].text", i), "empty")
		}
	}
	if len(s.GrammarPoints) == 0 {
		add("grammar_points", "empty")
	}
	for i, g := range s.GrammarPoints {
		if strings.TrimSpace(g.Pattern) == "" {
			add(fmt.Sprintf("grammar_points[%d].pattern", i), "empty")
		}
		if len(g.Examples) == 0 {
			add(fmt.Sprintf("grammar_points[%d].examples", i), "empty")
		}
	}
	if len(s.Practice) == 0 {
		add("practice", "empty")
	}
	for i, p := range s.Practice {
		if strings.TrimSpace(p.Prompt) == "" {
			add(fmt.Sprintf("practice[%d].prompt", i), "empty")
		}
		if strings.TrimSpace(p.Answer) == "" {
			add(fmt.Sprintf("practice[%d].answer", i), "empty")
		}
	}
	if len(s.CultureNotes) == 0 {
		add("culture_notes", "empty")
	}
	for i, n := range s.CultureNotes {
		if strings.TrimSpace(n.Body) == "" {
			add(fmt.Sprintf("culture_notes[%d].body", i), "empty")
		}
	}
	if len(s.Stages) < 2 {
		add("stages", "need at least 2 guided stages")
	}
	for i, st := range s.Stages {
		if strings.TrimSpace(st.Goal) == "" {
			add(fmt.Sprintf("stages[%d].goal", i), "empty")
		}
		if strings.TrimSpace(st.Rubric) == "" {
			add(fmt.Sprintf("stages[%d].rubric", i), "empty")
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// ValidateRichText checks an enhancement result against its source
// text. The critical invariant: segments concatenate back to the base
// exactly, so a renderer can always reconstruct the plain form.
func ValidateRichText(r *RichText, source string) error {
	var violations []FieldViolation
	add := func(field, reason string) {
		violations = append(violations, FieldViolation{Field: field, Reason: reason})
	}

	if r.Base == "" {
		add("base", "empty")
	} else if r.Base != source {
		add("base", "does not match the source text")
	}
	if strings.TrimSpace(r.Translation) == "" {
		add("translation", "empty")
	}
	if len(r.Segments) == 0 {
		add("segments", "empty")
	} else {
		var joined strings.Builder
		for i, seg := range r.Segments {
			if seg.Text == "" {
				add(fmt.Sprintf("segments[%d].text", i), "empty")
			}
			joined.WriteString(seg.Text)
		}
		if r.Base != "" && joined.String() != r.Base {
			add("segments", "concatenation does not reproduce base")
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
