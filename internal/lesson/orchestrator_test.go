package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akito/kotoba/internal/llm"
)

var testDescriptor = Descriptor{Topic: "greetings", Level: "N5"}

func TestGenerate_EndToEnd(t *testing.T) {
	skel := testSkeleton()
	store := newMemStore()
	o := New(scriptedProvider(skel, nil), nil, store, testConfig())

	pkg, err := o.Generate(context.Background(), testDescriptor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pkg.FullyEnhanced() {
		t.Errorf("statuses: %v", pkg.Status)
	}
	if pkg.Title != skel.Title {
		t.Errorf("title %q", pkg.Title)
	}
	if store.puts != 1 {
		t.Fatalf("expected exactly one persist, got %d", store.puts)
	}
	if _, err := store.GetPackage(context.Background(), testDescriptor.Key()); err != nil {
		t.Fatalf("package not persisted: %v", err)
	}
}

func TestGenerate_EmitsStateEvents(t *testing.T) {
	skel := testSkeleton()
	o := New(scriptedProvider(skel, nil), nil, newMemStore(), testConfig())

	h, err := o.Start(context.Background(), testDescriptor)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := h.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}

	var states []RunState
	for ev := range h.Events() {
		if ev.Type == EventState {
			states = append(states, ev.State)
		}
	}
	want := []RunState{StateStage1Running, StateStage2Running, StateStage2Complete, StateMerged}
	if len(states) != len(want) {
		t.Fatalf("states %v", states)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("state[%d] = %s, want %s", i, states[i], want[i])
		}
	}
}

func TestStart_AttachesToInFlightRun(t *testing.T) {
	skel := testSkeleton()
	release := make(chan struct{})
	var skeletonCalls atomic.Int32

	gated := providerFunc(func(ctx context.Context, req llm.Request) (*llm.Response, error) {
		if req.Schema != nil && req.Schema.Name == "lesson_skeleton" {
			skeletonCalls.Add(1)
			select {
			case <-release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			b, _ := json.Marshal(skel)
			return &llm.Response{Content: b, Model: "scripted", StopReason: "end"}, nil
		}
		return &llm.Response{Content: richJSON(sourceText(req)), Model: "scripted", StopReason: "end"}, nil
	})

	store := newMemStore()
	o := New(gated, nil, store, testConfig())
	ctx := context.Background()

	h1, err := o.Start(ctx, testDescriptor)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	h2, err := o.Start(ctx, testDescriptor)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	close(release)

	var pkgs [2]*LessonPackage
	var wg sync.WaitGroup
	for i, h := range []*Run{h1, h2} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pkg, err := h.Wait(ctx)
			if err != nil {
				t.Errorf("wait[%d]: %v", i, err)
			}
			pkgs[i] = pkg
		}()
	}
	wg.Wait()

	if skeletonCalls.Load() != 1 {
		t.Fatalf("expected one skeleton call, got %d", skeletonCalls.Load())
	}
	if pkgs[0] != pkgs[1] {
		t.Fatal("attached callers got different packages")
	}
	if store.puts != 1 {
		t.Fatalf("expected one persist, got %d", store.puts)
	}
}

func TestStart_ReturnsPersistedPackage(t *testing.T) {
	store := newMemStore()
	existing := Merge(testDescriptor, testSkeleton(), nil, "mock")
	if err := store.PutPackage(context.Background(), existing); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var calls atomic.Int32
	counting := providerFunc(func(context.Context, llm.Request) (*llm.Response, error) {
		calls.Add(1)
		return nil, &llm.ErrProviderUnavailable{}
	})
	o := New(counting, nil, store, testConfig())

	pkg, err := o.Generate(context.Background(), testDescriptor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg != existing {
		t.Fatal("expected the persisted package")
	}
	if calls.Load() != 0 {
		t.Fatalf("provider should not be called, got %d calls", calls.Load())
	}
}

func TestGenerate_Stage1FailureWithoutFallback(t *testing.T) {
	failing := providerFunc(func(context.Context, llm.Request) (*llm.Response, error) {
		return nil, &llm.ErrProviderUnavailable{}
	})
	store := newMemStore()
	o := New(failing, nil, store, testConfig())

	_, err := o.Generate(context.Background(), testDescriptor)
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != "skeleton" {
		t.Fatalf("expected skeleton stage error, got %v", err)
	}
	if store.puts != 0 {
		t.Fatal("nothing should be persisted on stage-1 failure")
	}
	// The key is free for a later retry.
	o2 := New(scriptedProvider(testSkeleton(), nil), nil, store, testConfig())
	if _, err := o2.Generate(context.Background(), testDescriptor); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}

func TestGenerate_Stage1FailureIsTerminalDespiteFallback(t *testing.T) {
	failing := providerFunc(func(context.Context, llm.Request) (*llm.Response, error) {
		return nil, &llm.ErrProviderUnavailable{}
	})
	var fallbackCalls atomic.Int32
	fallback := providerFunc(func(ctx context.Context, req llm.Request) (*llm.Response, error) {
		fallbackCalls.Add(1)
		return scriptedProvider(testSkeleton(), nil)(ctx, req)
	})
	store := newMemStore()
	o := New(failing, fallback, store, testConfig())

	h, err := o.Start(context.Background(), testDescriptor)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err = h.Wait(context.Background())
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != "skeleton" {
		t.Fatalf("expected skeleton stage error, got %v", err)
	}
	if fallbackCalls.Load() != 0 {
		t.Fatalf("fallback must never serve the skeleton stage, got %d calls", fallbackCalls.Load())
	}
	if store.puts != 0 {
		t.Fatal("nothing should be persisted")
	}

	var states []RunState
	for ev := range h.Events() {
		if ev.Type == EventState {
			states = append(states, ev.State)
		}
	}
	want := []RunState{StateStage1Running, StateStage1Failed}
	if len(states) != len(want) {
		t.Fatalf("states %v", states)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("state[%d] = %s, want %s", i, states[i], want[i])
		}
	}
}

func TestGenerate_TotalStage2FailureStillMerges(t *testing.T) {
	skel := testSkeleton()
	p := providerFunc(func(_ context.Context, req llm.Request) (*llm.Response, error) {
		if req.Schema != nil && req.Schema.Name == "lesson_skeleton" {
			b, _ := json.Marshal(skel)
			return &llm.Response{Content: b, Model: "scripted", StopReason: "end"}, nil
		}
		return nil, &llm.ErrProviderUnavailable{}
	})
	store := newMemStore()
	o := New(p, nil, store, testConfig())

	pkg, err := o.Generate(context.Background(), testDescriptor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for kind, st := range pkg.Status {
		if st != StatusUnenhanced {
			t.Errorf("section %s: %s", kind, st)
		}
	}
	if len(pkg.Dialogue) != len(skel.Dialogue) {
		t.Fatal("merged package incomplete")
	}
	if store.puts != 1 {
		t.Fatal("degraded package must still persist")
	}
}

func TestGenerate_PartialEnhancementCompletes(t *testing.T) {
	skel := testSkeleton()
	failTexts := map[string]bool{
		"こんにちは。":      true,
		"こんにちは、元気ですか。": true,
	}
	o := New(scriptedProvider(skel, failTexts), nil, newMemStore(), testConfig())

	h, err := o.Start(context.Background(), testDescriptor)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	pkg, err := h.Wait(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pkg.Status[SectionDialogue] != StatusUnenhanced {
		t.Errorf("dialogue status %s", pkg.Status[SectionDialogue])
	}
	if pkg.Status[SectionReading] != StatusEnhanced || pkg.Status[SectionGrammar] != StatusEnhanced {
		t.Errorf("statuses: %v", pkg.Status)
	}

	// One dead section does not degrade the run as long as others made it.
	var states []RunState
	for ev := range h.Events() {
		if ev.Type == EventState {
			states = append(states, ev.State)
		}
	}
	sawComplete := false
	for _, s := range states {
		if s == StateStage2Complete {
			sawComplete = true
		}
		if s == StateStage2Degraded {
			t.Fatalf("unexpected degraded state in %v", states)
		}
	}
	if !sawComplete {
		t.Fatalf("missing stage2_complete in %v", states)
	}
}

func TestGenerate_Stage2FallbackProvider(t *testing.T) {
	skel := testSkeleton()
	primary := providerFunc(func(_ context.Context, req llm.Request) (*llm.Response, error) {
		if req.Schema != nil && req.Schema.Name == "lesson_skeleton" {
			b, _ := json.Marshal(skel)
			return &llm.Response{Content: b, Model: "primary", StopReason: "end"}, nil
		}
		return nil, &llm.ErrProviderUnavailable{}
	})
	fallback := scriptedProvider(skel, nil)
	o := New(primary, fallback, newMemStore(), testConfig())

	pkg, err := o.Generate(context.Background(), testDescriptor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pkg.FullyEnhanced() {
		t.Fatalf("statuses after fallback: %v", pkg.Status)
	}
}

func TestGenerate_LostPersistRaceLoadsWinner(t *testing.T) {
	skel := testSkeleton()
	store := newMemStore()
	winner := Merge(testDescriptor, skel, nil, "winner")

	racing := &racingStore{inner: store, winner: winner}
	o := New(scriptedProvider(skel, nil), nil, racing, testConfig())

	pkg, err := o.Generate(context.Background(), testDescriptor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg != winner {
		t.Fatal("expected the winning package to be returned")
	}
}

// racingStore simulates another process persisting the same key between
// the initial lookup and the final write.
type racingStore struct {
	inner  *memStore
	winner *LessonPackage
	raced  bool
}

func (s *racingStore) GetPackage(ctx context.Context, key string) (*LessonPackage, error) {
	if s.raced {
		return s.winner, nil
	}
	return s.inner.GetPackage(ctx, key)
}

func (s *racingStore) PutPackage(context.Context, *LessonPackage) error {
	s.raced = true
	return ErrAlreadyExists
}

func TestRun_WaitHonorsCallerContext(t *testing.T) {
	block := providerFunc(func(ctx context.Context, _ llm.Request) (*llm.Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	o := New(block, nil, newMemStore(), testConfig())

	runCtx, stop := context.WithCancel(context.Background())
	defer stop()
	h, err := o.Start(runCtx, testDescriptor)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := h.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
