package dialogue

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/akito/kotoba/internal/lesson"
	"github.com/akito/kotoba/internal/llm"
)

func testPackage() *lesson.LessonPackage {
	return &lesson.LessonPackage{
		Descriptor: lesson.Descriptor{Topic: "greetings", Level: "N5"},
		Title:      "Greetings",
		Stages: []lesson.GuidedStage{
			{Goal: "Greet your partner", Rubric: "contains a greeting", Hints: []string{"try こんにちは"}},
			{Goal: "Ask how they are", Rubric: "asks about wellbeing"},
		},
	}
}

// providerFunc adapts a function to llm.Provider.
type providerFunc func(ctx context.Context, req llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (providerFunc) ModelID() string { return "scripted" }

func verdictJSON(goalMet bool, feedback string) json.RawMessage {
	b, _ := json.Marshal(Verdict{GoalMet: goalMet, Feedback: feedback, TutorReply: "では、続けましょう。"})
	return b
}

// scriptedJudge meets the goal when the message contains "こんにちは".
func scriptedJudge(calls *[]string) providerFunc {
	return func(_ context.Context, req llm.Request) (*llm.Response, error) {
		msg := req.Messages[len(req.Messages)-1].Content
		if calls != nil {
			*calls = append(*calls, msg)
		}
		met := strings.Contains(lastLine(msg), "こんにちは")
		return &llm.Response{Content: verdictJSON(met, "feedback"), Model: "scripted", StopReason: "end"}, nil
	}
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*SessionState
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*SessionState)}
}

func (s *memSessionStore) GetSession(_ context.Context, key string) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *memSessionStore) PutSession(_ context.Context, sess *SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.LessonKey] = sess
	return nil
}

func newTestProcessor(p llm.Provider, store Store) *Processor {
	cfg := DefaultConfig()
	return NewProcessor(NewJudge(p, cfg.Judge), store, cfg)
}

func TestTurn_TooShortSkipsJudge(t *testing.T) {
	var calls []string
	proc := newTestProcessor(scriptedJudge(&calls), newMemSessionStore())

	res, err := proc.Turn(context.Background(), testPackage(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 0 {
		t.Fatal("judge must not be called for short messages")
	}
	if res.Record.Outcome != OutcomeTooShort {
		t.Fatalf("outcome %s", res.Record.Outcome)
	}
	if res.StageIdx != 0 {
		t.Fatal("short message must not advance the stage")
	}
	if !strings.Contains(res.Record.Feedback, "こんにちは") {
		t.Fatalf("feedback should surface the stage hint: %q", res.Record.Feedback)
	}

	// The record still lands in the durable history.
	sess, err := proc.Session(context.Background(), testPackage())
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(sess.Turns) != 1 || sess.Turns[0].Outcome != OutcomeTooShort {
		t.Fatalf("turns: %+v", sess.Turns)
	}
}

func TestTokenCount_JapaneseCountsLetters(t *testing.T) {
	if n := tokenCount("元気ですか"); n != 5 {
		t.Fatalf("got %d", n)
	}
	if n := tokenCount("hello there friend"); n != 3 {
		t.Fatalf("got %d", n)
	}
	if n := tokenCount("hi"); n != 1 {
		t.Fatalf("got %d", n)
	}
	// Punctuation alone is not letters.
	if n := tokenCount("。"); n != 0 {
		t.Fatalf("got %d", n)
	}
}

func TestTurn_AdvancesWhenGoalMet(t *testing.T) {
	proc := newTestProcessor(scriptedJudge(nil), newMemSessionStore())
	pkg := testPackage()

	res, err := proc.Turn(context.Background(), pkg, "こんにちは。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Record.Outcome != OutcomeAdvanced {
		t.Fatalf("outcome %s", res.Record.Outcome)
	}
	if res.StageIdx != 1 || res.Stage == nil || res.Stage.Goal != pkg.Stages[1].Goal {
		t.Fatalf("stage after advance: idx=%d stage=%+v", res.StageIdx, res.Stage)
	}
}

func TestTurn_RecordsTutorReply(t *testing.T) {
	reply := "こんにちは！今日はどうですか。"
	judge := providerFunc(func(_ context.Context, _ llm.Request) (*llm.Response, error) {
		b, _ := json.Marshal(Verdict{GoalMet: true, Feedback: "nice greeting", TutorReply: reply})
		return &llm.Response{Content: b, Model: "scripted", StopReason: "end"}, nil
	})
	proc := newTestProcessor(judge, newMemSessionStore())
	pkg := testPackage()

	res, err := proc.Turn(context.Background(), pkg, "こんにちは。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Record.TutorReply != reply {
		t.Fatalf("tutor reply %q", res.Record.TutorReply)
	}

	sess, err := proc.Session(context.Background(), pkg)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(sess.Turns) != 1 || sess.Turns[0].TutorReply != reply {
		t.Fatalf("stored turns: %+v", sess.Turns)
	}
}

func TestTurn_FencedVerdictStillParses(t *testing.T) {
	fenced := providerFunc(func(_ context.Context, _ llm.Request) (*llm.Response, error) {
		content := "```json\n" + string(verdictJSON(true, "nice")) + "\n```"
		return &llm.Response{Content: json.RawMessage(content), Model: "scripted", StopReason: "end"}, nil
	})
	proc := newTestProcessor(fenced, newMemSessionStore())

	res, err := proc.Turn(context.Background(), testPackage(), "こんにちは。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Record.Outcome != OutcomeAdvanced {
		t.Fatalf("outcome %s", res.Record.Outcome)
	}
}

func TestTurn_RetryKeepsStage(t *testing.T) {
	proc := newTestProcessor(scriptedJudge(nil), newMemSessionStore())

	res, err := proc.Turn(context.Background(), testPackage(), "さようなら。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Record.Outcome != OutcomeRetry {
		t.Fatalf("outcome %s", res.Record.Outcome)
	}
	if res.StageIdx != 0 {
		t.Fatal("retry must not advance")
	}
}

func TestTurn_CompletesOnFinalStage(t *testing.T) {
	store := newMemSessionStore()
	proc := newTestProcessor(scriptedJudge(nil), store)
	pkg := testPackage()

	// Meet both stage goals in order.
	for i := 0; i < 2; i++ {
		res, err := proc.Turn(context.Background(), pkg, "こんにちは、元気ですか。")
		if err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		if i == 1 {
			if !res.Completed || res.Record.Outcome != OutcomeCompleted {
				t.Fatalf("final turn: %+v", res)
			}
			if res.Stage != nil {
				t.Fatal("no next stage after completion")
			}
		}
	}

	if _, err := proc.Turn(context.Background(), pkg, "まだ話したいです。"); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete, got %v", err)
	}
}

func TestTurn_HistoryIsAppendOnly(t *testing.T) {
	proc := newTestProcessor(scriptedJudge(nil), newMemSessionStore())
	pkg := testPackage()

	messages := []string{"さようなら。", "hi", "こんにちは。"}
	for _, m := range messages {
		if _, err := proc.Turn(context.Background(), pkg, m); err != nil {
			t.Fatalf("turn %q: %v", m, err)
		}
	}

	sess, err := proc.Session(context.Background(), pkg)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(sess.Turns) != 3 {
		t.Fatalf("expected 3 records, got %d", len(sess.Turns))
	}
	for i, rec := range sess.Turns {
		if rec.Message != messages[i] {
			t.Fatalf("record %d rewritten: %q", i, rec.Message)
		}
	}
	// Stage index never decreases across the history.
	for i := 1; i < len(sess.Turns); i++ {
		if sess.Turns[i].StageIdx < sess.Turns[i-1].StageIdx {
			t.Fatal("stage index went backwards")
		}
	}
}

func TestTurn_JudgeFailureLeavesSessionUntouched(t *testing.T) {
	failing := providerFunc(func(context.Context, llm.Request) (*llm.Response, error) {
		return nil, &llm.ErrProviderUnavailable{}
	})
	store := newMemSessionStore()
	proc := newTestProcessor(failing, store)
	pkg := testPackage()

	if _, err := proc.Turn(context.Background(), pkg, "こんにちは。"); err == nil {
		t.Fatal("expected judge error")
	}
	if _, err := store.GetSession(context.Background(), pkg.Descriptor.Key()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatal("failed turn must not persist anything")
	}
}

func TestTurn_SerializedPerSession(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	gated := providerFunc(func(_ context.Context, _ llm.Request) (*llm.Response, error) {
		close(entered)
		<-release
		return &llm.Response{Content: verdictJSON(true, "ok"), Model: "scripted", StopReason: "end"}, nil
	})
	proc := newTestProcessor(gated, newMemSessionStore())
	pkg := testPackage()

	done := make(chan error, 1)
	go func() {
		_, err := proc.Turn(context.Background(), pkg, "こんにちは。")
		done <- err
	}()
	<-entered

	if _, err := proc.Turn(context.Background(), pkg, "こんにちは。"); !errors.Is(err, ErrTurnInFlight) {
		t.Fatalf("expected ErrTurnInFlight, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first turn: %v", err)
	}
}

func TestFlush_ResetsToStageZero(t *testing.T) {
	proc := newTestProcessor(scriptedJudge(nil), newMemSessionStore())
	pkg := testPackage()

	if _, err := proc.Turn(context.Background(), pkg, "こんにちは。"); err != nil {
		t.Fatalf("turn: %v", err)
	}
	if err := proc.Flush(context.Background(), pkg); err != nil {
		t.Fatalf("flush: %v", err)
	}

	sess, err := proc.Session(context.Background(), pkg)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if sess.StageIdx != 0 || len(sess.Turns) != 0 || sess.Completed {
		t.Fatalf("session after flush: %+v", sess)
	}
	if sess.FlushedAt == nil {
		t.Error("expected flush timestamp")
	}
	if sess.LessonKey != pkg.Descriptor.Key() {
		t.Errorf("lesson key changed: %q", sess.LessonKey)
	}
}

func TestFlush_NoSessionIsNoop(t *testing.T) {
	proc := newTestProcessor(scriptedJudge(nil), newMemSessionStore())
	if err := proc.Flush(context.Background(), testPackage()); err != nil {
		t.Fatalf("flush: %v", err)
	}
}

func TestJudge_SeesBoundedHistoryWindow(t *testing.T) {
	var calls []string
	cfg := DefaultConfig()
	cfg.HistoryWindow = 2
	proc := NewProcessor(NewJudge(scriptedJudge(&calls), cfg.Judge), newMemSessionStore(), cfg)
	pkg := testPackage()

	for i := 0; i < 5; i++ {
		if _, err := proc.Turn(context.Background(), pkg, "さようなら。"); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
	}

	last := calls[len(calls)-1]
	if got := strings.Count(last, "Learner (stage"); got != 2 {
		t.Fatalf("judge saw %d history entries, want 2", got)
	}
}
