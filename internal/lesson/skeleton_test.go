package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/akito/kotoba/internal/llm"
)

func skeletonJSON(t *testing.T) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(testSkeleton())
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return b
}

func TestSkeletonGenerator_Succeeds(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: skeletonJSON(t)})
	gen := NewSkeletonGenerator(mock, testConfig())

	skel, err := gen.Generate(context.Background(), Descriptor{Topic: "greetings", Level: "N5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skel.Title != "Greetings" {
		t.Fatalf("got title %q", skel.Title)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "lesson_skeleton" {
		t.Fatal("request did not carry the skeleton schema")
	}
}

func TestSkeletonGenerator_RetriesOnceOnBadOutput(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
		llm.MockResponse{Content: skeletonJSON(t)},
	)
	gen := NewSkeletonGenerator(mock, testConfig())

	skel, err := gen.Generate(context.Background(), Descriptor{Topic: "greetings", Level: "N5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skel == nil || mock.CallCount() != 2 {
		t.Fatalf("expected success on second call, calls=%d", mock.CallCount())
	}
}

func TestSkeletonGenerator_FailsAfterRetryBudget(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	gen := NewSkeletonGenerator(mock, testConfig())

	_, err := gen.Generate(context.Background(), Descriptor{Topic: "greetings", Level: "N5"})
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != "skeleton" {
		t.Fatalf("expected skeleton StageError, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", mock.CallCount())
	}
}

func TestSkeletonGenerator_RejectsInvalidContent(t *testing.T) {
	// Well-formed JSON that fails structural validation (no stages).
	skel := testSkeleton()
	skel.Stages = nil
	b, _ := json.Marshal(skel)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: b},
		llm.MockResponse{Content: b},
	)
	gen := NewSkeletonGenerator(mock, testConfig())

	_, err := gen.Generate(context.Background(), Descriptor{Topic: "greetings", Level: "N5"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestParseSkeleton_ToleratesFences(t *testing.T) {
	fenced := "```json\n" + string(skeletonJSON(t)) + "\n```"
	skel, err := parseSkeleton(json.RawMessage(fenced))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skel.Title != "Greetings" {
		t.Fatalf("got title %q", skel.Title)
	}
}
