package llm

import (
	"context"
	"encoding/json"
	"testing"
)

type memEventRepo struct {
	events []LLMRequestEventData
}

func (r *memEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestLogging_RecordsProviderAndModel(t *testing.T) {
	repo := &memEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	})
	p := WithLogging(mock, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "skeleton-gen")
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected one event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "anthropic" {
		t.Fatalf("provider %q", ev.Provider)
	}
	if ev.Model != "mock" {
		t.Fatalf("model %q", ev.Model)
	}
	if ev.Purpose != "skeleton-gen" {
		t.Fatalf("purpose %q", ev.Purpose)
	}
	if !ev.Success || ev.InputTokens != 10 || ev.OutputTokens != 5 {
		t.Fatalf("event %+v", ev)
	}
}

func TestLogging_NilRepoPassesThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	if p := WithLogging(mock, "anthropic", nil); p != Provider(mock) {
		t.Fatal("nil repo must return the provider unwrapped")
	}
}

func TestLogging_RecordsFailures(t *testing.T) {
	repo := &memEventRepo{}
	p := WithLogging(NewMockProvider(), "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock queue")
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected one event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success || ev.ErrorMessage == "" {
		t.Fatalf("event %+v", ev)
	}
	if ev.Provider != "openai" {
		t.Fatalf("provider %q", ev.Provider)
	}
}
