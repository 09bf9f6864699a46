package extract

import (
	"errors"
	"testing"
)

func TestJSON_PlainObject(t *testing.T) {
	got, err := JSON(`{"a": 1}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"a": 1}` {
		t.Fatalf("got %q", got)
	}
}

func TestJSON_SurroundingCommentary(t *testing.T) {
	in := "Sure! Here is the lesson you asked for:\n{\"title\": \"挨拶\"}\nLet me know if you need anything else."
	got, err := JSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"title": "挨拶"}` {
		t.Fatalf("got %q", got)
	}
}

func TestJSON_MarkdownFences(t *testing.T) {
	in := "```json\n{\"steps\": [1, 2]}\n```"
	got, err := JSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"steps": [1, 2]}` {
		t.Fatalf("got %q", got)
	}
}

func TestJSON_BracketsInsideStrings(t *testing.T) {
	in := `{"note": "use } and { carefully", "n": 1}`
	got, err := JSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != in {
		t.Fatalf("got %q", got)
	}
}

func TestJSON_EscapedQuotes(t *testing.T) {
	// The \" inside the string must not toggle string state, or the
	// following } would be treated as inside a string.
	in := `{"text": "she said \"hello\" twice"}`
	got, err := JSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != in {
		t.Fatalf("got %q", got)
	}
}

func TestJSON_EscapedBackslashBeforeQuote(t *testing.T) {
	in := `{"path": "C:\\", "ok": true}`
	got, err := JSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != in {
		t.Fatalf("got %q", got)
	}
}

func TestJSON_TopLevelArray(t *testing.T) {
	in := `Here you go: [{"a":1},{"b":2}] done`
	got, err := JSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `[{"a":1},{"b":2}]` {
		t.Fatalf("got %q", got)
	}
}

func TestJSON_NestedObjects(t *testing.T) {
	in := `{"outer": {"inner": {"deep": []}}}`
	got, err := JSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != in {
		t.Fatalf("got %q", got)
	}
}

func TestJSON_Truncated(t *testing.T) {
	_, err := JSON(`{"a": {"b": 1}`)
	var noPayload *ErrNoPayload
	if !errors.As(err, &noPayload) {
		t.Fatalf("expected ErrNoPayload, got %v", err)
	}
}

func TestJSON_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "no json here"} {
		if _, err := JSON(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestJSON_Idempotent(t *testing.T) {
	in := "noise {\"a\": [1, {\"b\": \"}\"}]} more noise"
	once, err := JSON(in)
	if err != nil {
		t.Fatalf("first extraction: %v", err)
	}
	twice, err := JSON(once)
	if err != nil {
		t.Fatalf("second extraction: %v", err)
	}
	if once != twice {
		t.Fatalf("not idempotent: %q vs %q", once, twice)
	}
}
