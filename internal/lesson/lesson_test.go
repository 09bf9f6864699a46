package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/akito/kotoba/internal/llm"
)

var errTest = errors.New("test failure")

// testSkeleton is a minimal valid stage-1 result: one reading passage,
// two dialogue lines, and two grammar examples (five enhanceable units).
func testSkeleton() *ContentSkeleton {
	return &ContentSkeleton{
		Title: "Greetings",
		Plan: []PlanStep{
			{Title: "Intro", Summary: "Basic greetings"},
			{Title: "Practice", Summary: "Use them in conversation"},
		},
		Reading: Passage{Title: "朝のあいさつ", Body: "おはようございます。"},
		Dialogue: []DialogueLine{
			{Speaker: "A", Text: "こんにちは。"},
			{Speaker: "B", Text: "こんにちは、元気ですか。"},
		},
		GrammarPoints: []GrammarPoint{
			{
				Pattern:     "〜ですか",
				Explanation: "turns a statement into a question",
				Examples:    []string{"元気ですか。", "学生ですか。"},
			},
		},
		Practice: []PracticeItem{
			{Prompt: "Say good morning", Answer: "おはようございます"},
		},
		CultureNotes: []CultureNote{
			{Title: "Bowing", Body: "A slight bow accompanies most greetings."},
		},
		Stages: []GuidedStage{
			{Goal: "Greet your partner", Rubric: "the message contains a greeting"},
			{Goal: "Ask how they are", Rubric: "the message asks about wellbeing"},
		},
	}
}

func richJSON(text string) json.RawMessage {
	r := RichText{
		Base:        text,
		Romaji:      "romaji",
		Segments:    []Segment{{Text: text}},
		Translation: "translation",
	}
	b, _ := json.Marshal(r)
	return b
}

// providerFunc adapts a function to llm.Provider for scripted tests.
type providerFunc func(ctx context.Context, req llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (providerFunc) ModelID() string { return "scripted" }

// sourceText recovers the text an enhancement request asked about.
func sourceText(req llm.Request) string {
	content := req.Messages[len(req.Messages)-1].Content
	if i := strings.Index(content, "\n\n"); i >= 0 {
		return content[i+2:]
	}
	return content
}

// scriptedProvider answers skeleton requests with the fixture and
// enhancement requests by echoing the source text, failing the texts
// listed in failTexts.
func scriptedProvider(skel *ContentSkeleton, failTexts map[string]bool) providerFunc {
	return func(_ context.Context, req llm.Request) (*llm.Response, error) {
		if req.Schema != nil && req.Schema.Name == "lesson_skeleton" {
			b, _ := json.Marshal(skel)
			return &llm.Response{Content: b, Model: "scripted", StopReason: "end"}, nil
		}
		text := sourceText(req)
		if failTexts[text] {
			return nil, &llm.ErrInvalidResponse{Err: errors.New("scripted failure")}
		}
		return &llm.Response{Content: richJSON(text), Model: "scripted", StopReason: "end"}, nil
	}
}

// memStore is an in-memory Store with PutPackage conflict semantics.
type memStore struct {
	mu   sync.Mutex
	pkgs map[string]*LessonPackage
	puts int
}

func newMemStore() *memStore {
	return &memStore{pkgs: make(map[string]*LessonPackage)}
}

func (s *memStore) GetPackage(_ context.Context, key string) (*LessonPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pkg, ok := s.pkgs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return pkg, nil
}

func (s *memStore) PutPackage(_ context.Context, pkg *LessonPackage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pkg.Descriptor.Key()
	if _, ok := s.pkgs[key]; ok {
		return ErrAlreadyExists
	}
	s.pkgs[key] = pkg
	s.puts++
	return nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxInFlight = 2
	return cfg
}

func TestDescriptorKey_Normalizes(t *testing.T) {
	a := Descriptor{Topic: "Ordering  Food", Level: "N5"}
	b := Descriptor{Topic: "ordering food", Level: "n5"}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() != "ordering food|n5" {
		t.Fatalf("unexpected key %q", a.Key())
	}
}

func TestDescriptorKey_ExplicitIDWins(t *testing.T) {
	d := Descriptor{ID: "custom-42", Topic: "Ordering Food", Level: "N5"}
	if d.Key() != "custom-42" {
		t.Fatalf("unexpected key %q", d.Key())
	}
}

func TestValidateSkeleton_Valid(t *testing.T) {
	if err := ValidateSkeleton(testSkeleton()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSkeleton_CollectsAllViolations(t *testing.T) {
	skel := testSkeleton()
	skel.Title = ""
	skel.Dialogue = nil
	skel.Stages = skel.Stages[:1]

	err := ValidateSkeleton(skel)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(verr.Violations), verr)
	}
}

func TestValidateSkeleton_RequiresPracticeAndCultureNotes(t *testing.T) {
	skel := testSkeleton()
	skel.Practice = nil
	skel.CultureNotes = nil

	err := ValidateSkeleton(skel)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(verr.Violations), verr)
	}
}

func TestValidateRichText_Valid(t *testing.T) {
	r := &RichText{
		Base:        "元気ですか。",
		Segments:    []Segment{{Text: "元気", Reading: "げんき"}, {Text: "ですか。"}},
		Translation: "How are you?",
	}
	if err := ValidateRichText(r, "元気ですか。"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRichText_SegmentsMustReconstructBase(t *testing.T) {
	r := &RichText{
		Base:        "元気ですか。",
		Segments:    []Segment{{Text: "元気", Reading: "げんき"}, {Text: "です"}},
		Translation: "How are you?",
	}
	err := ValidateRichText(r, "元気ですか。")
	if err == nil {
		t.Fatal("expected reconstruction violation")
	}
	if !strings.Contains(err.Error(), "segments") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRichText_BaseMustMatchSource(t *testing.T) {
	r := &RichText{
		Base:        "違う文。",
		Segments:    []Segment{{Text: "違う文。"}},
		Translation: "A different sentence.",
	}
	if err := ValidateRichText(r, "元気ですか。"); err == nil {
		t.Fatal("expected base/source mismatch")
	}
}
