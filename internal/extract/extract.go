// Package extract recovers a JSON payload from chatty model output.
//
// Even with structured-output modes, models occasionally wrap their
// JSON in prose or markdown fences. The extractor strips fences and
// returns the substring spanning the outermost balanced bracket pair,
// ignoring brackets inside string literals.
package extract

import (
	"fmt"
	"strings"
)

// ErrNoPayload indicates no balanced JSON region was found in the input.
type ErrNoPayload struct {
	Reason string
}

func (e *ErrNoPayload) Error() string {
	return fmt.Sprintf("no JSON payload found: %s", e.Reason)
}

// JSON returns the first balanced top-level JSON object or array in s.
// Leading/trailing commentary and ``` fences are tolerated. Escaped
// quotes inside string literals do not toggle string state, and
// brackets inside strings do not affect nesting depth.
func JSON(s string) (string, error) {
	s = stripFences(s)
	if strings.TrimSpace(s) == "" {
		return "", &ErrNoPayload{Reason: "empty input"}
	}

	start := -1
	depth := 0
	inString := false
	escaped := false
	var open, close byte

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			// Quotes outside a balanced region are commentary; only
			// track strings once we are inside the payload.
			if start >= 0 {
				inString = true
			}
		case '{', '[':
			if start < 0 {
				start = i
				open, close = c, matchingClose(c)
				depth = 1
				continue
			}
			if c == open {
				depth++
			}
		case '}', ']':
			if start < 0 {
				continue
			}
			if c == close {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}

	if start >= 0 {
		return "", &ErrNoPayload{Reason: "unbalanced brackets (truncated output?)"}
	}
	return "", &ErrNoPayload{Reason: "no opening bracket"}
}

func matchingClose(open byte) byte {
	if open == '{' {
		return '}'
	}
	return ']'
}

// stripFences removes markdown code fence lines, including language
// tags like ```json, leaving the fenced body intact.
func stripFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
