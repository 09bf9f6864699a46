package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akito/kotoba/internal/dialogue"
	"github.com/akito/kotoba/internal/lesson"
	"github.com/akito/kotoba/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPackage() *lesson.LessonPackage {
	return &lesson.LessonPackage{
		Descriptor: lesson.Descriptor{Topic: "greetings", Level: "N5"},
		Title:      "Greetings",
		Reading: lesson.ReadingSection{
			Title: "朝のあいさつ",
			Body:  lesson.TextBlock{Plain: "おはようございます。"},
		},
		Dialogue: []lesson.DialogueText{
			{Speaker: "A", Text: lesson.TextBlock{
				Plain: "こんにちは。",
				Rich: &lesson.RichText{
					Base:        "こんにちは。",
					Segments:    []lesson.Segment{{Text: "こんにちは。"}},
					Translation: "Hello.",
				},
			}},
		},
		Stages: []lesson.GuidedStage{
			{Goal: "Greet your partner", Rubric: "contains a greeting"},
			{Goal: "Ask how they are", Rubric: "asks about wellbeing"},
		},
		Status: map[lesson.SectionKind]lesson.SectionStatus{
			lesson.SectionReading:  lesson.StatusUnenhanced,
			lesson.SectionDialogue: lesson.StatusEnhanced,
		},
		Model:     "mock",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLessonPackageRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()
	pkg := testPackage()
	key := pkg.Descriptor.Key()

	if _, err := repo.GetPackage(ctx, key); !errors.Is(err, lesson.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := repo.PutPackage(ctx, pkg); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.GetPackage(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != pkg.Title {
		t.Errorf("title = %q", got.Title)
	}
	if got.Dialogue[0].Text.Rich == nil || got.Dialogue[0].Text.Rich.Base != "こんにちは。" {
		t.Errorf("rich text lost in round trip: %+v", got.Dialogue[0].Text)
	}
	if got.Status[lesson.SectionDialogue] != lesson.StatusEnhanced {
		t.Errorf("status = %v", got.Status)
	}
	if len(got.Stages) != 2 {
		t.Errorf("stages = %d", len(got.Stages))
	}
}

func TestPutPackageConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	if err := repo.PutPackage(ctx, testPackage()); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := repo.PutPackage(ctx, testPackage()); !errors.Is(err, lesson.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestPatchGenerationStatus(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()
	pkg := testPackage()
	key := pkg.Descriptor.Key()

	if err := repo.PatchGenerationStatus(ctx, key, nil); !errors.Is(err, lesson.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := repo.PutPackage(ctx, pkg); err != nil {
		t.Fatalf("put: %v", err)
	}

	patch := map[lesson.SectionKind]lesson.SectionStatus{
		lesson.SectionReading: lesson.StatusEnhanced,
	}
	if err := repo.PatchGenerationStatus(ctx, key, patch); err != nil {
		t.Fatalf("patch: %v", err)
	}

	got, err := repo.GetPackage(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status[lesson.SectionReading] != lesson.StatusEnhanced {
		t.Errorf("patched section = %v", got.Status[lesson.SectionReading])
	}
	// Untouched sections keep their original status.
	if got.Status[lesson.SectionDialogue] != lesson.StatusEnhanced {
		t.Errorf("unpatched section = %v", got.Status[lesson.SectionDialogue])
	}
	// The document itself must not change.
	if got.Title != pkg.Title || got.Reading.Body.Plain != pkg.Reading.Body.Plain {
		t.Errorf("document changed by status patch")
	}
}

func TestListAndDeletePackages(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	a := testPackage()
	b := testPackage()
	b.Descriptor.Topic = "ordering food"
	for _, pkg := range []*lesson.LessonPackage{a, b} {
		if err := repo.PutPackage(ctx, pkg); err != nil {
			t.Fatalf("put %q: %v", pkg.Descriptor.Topic, err)
		}
	}

	pkgs, err := repo.ListPackages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pkgs) != 2 {
		t.Fatalf("listed %d packages", len(pkgs))
	}

	if err := repo.DeletePackage(ctx, a.Descriptor.Key()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetPackage(ctx, a.Descriptor.Key()); !errors.Is(err, lesson.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSessionUpsertAndFlush(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	key := "greetings|n5"

	if _, err := repo.GetSession(ctx, key); !errors.Is(err, dialogue.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	sess := &dialogue.SessionState{
		LessonKey: key,
		StageIdx:  0,
		Turns: []dialogue.TurnRecord{
			{StageIdx: 0, Message: "こんにちは。", Outcome: dialogue.OutcomeAdvanced, At: now},
		},
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := repo.PutSession(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Second put updates in place.
	sess.StageIdx = 1
	sess.Turns = append(sess.Turns, dialogue.TurnRecord{
		StageIdx: 1, Message: "元気ですか。", Outcome: dialogue.OutcomeRetry, At: now,
	})
	sess.FlushedAt = &now
	if err := repo.PutSession(ctx, sess); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetSession(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StageIdx != 1 || len(got.Turns) != 2 {
		t.Fatalf("session after update: %+v", got)
	}
	if got.Turns[0].Outcome != dialogue.OutcomeAdvanced {
		t.Errorf("earlier record changed: %+v", got.Turns[0])
	}
	if got.FlushedAt == nil {
		t.Error("flush timestamp lost in round trip")
	}

	if err := repo.FlushSession(ctx, key); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if _, err := repo.GetSession(ctx, key); !errors.Is(err, dialogue.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after flush, got %v", err)
	}
}

func TestEventAppendListStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	events := []llm.LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "skeleton-gen", InputTokens: 1000, OutputTokens: 2000, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "enhance", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "enhance", Success: false, ErrorMessage: "boom"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("listed %d events", len(all))
	}
	// Newest first, sequences assigned in append order.
	if all[0].Sequence <= all[1].Sequence {
		t.Errorf("not ordered by sequence desc: %d, %d", all[0].Sequence, all[1].Sequence)
	}

	failed, err := repo.ListLLMRequests(ctx, QueryOpts{Failed: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(failed) != 1 || failed[0].ErrorMessage != "boom" {
		t.Fatalf("failed events: %+v", failed)
	}

	byPurpose, err := repo.ListLLMRequests(ctx, QueryOpts{Purpose: "enhance"})
	if err != nil {
		t.Fatalf("list by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purpose filter returned %d", len(byPurpose))
	}

	got, err := repo.GetLLMRequest(ctx, all[0].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Sequence != all[0].Sequence {
		t.Fatalf("get by sequence: %+v", got)
	}

	stats, err := repo.LLMRequestStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Requests != 3 || stats.Failures != 1 {
		t.Fatalf("stats: %+v", stats)
	}
	if stats.InputTokens != 1100 || stats.OutputTokens != 2050 {
		t.Fatalf("token totals: %+v", stats)
	}
	if stats.ByPurpose["enhance"] != 2 {
		t.Fatalf("by purpose: %v", stats.ByPurpose)
	}
	if stats.CostUSD <= 0 {
		t.Fatalf("expected nonzero cost, got %f", stats.CostUSD)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}
