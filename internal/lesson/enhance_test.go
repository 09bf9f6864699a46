package lesson

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akito/kotoba/internal/llm"
)

func TestCollectUnits_OrderAndCount(t *testing.T) {
	units := collectUnits(testSkeleton())
	// 1 reading + 2 dialogue + 2 grammar examples.
	if len(units) != 5 {
		t.Fatalf("expected 5 units, got %d", len(units))
	}
	if units[0].Kind != SectionReading {
		t.Fatalf("first unit is %s", units[0].Kind)
	}
	if units[1].Kind != SectionDialogue || units[1].Index != 0 {
		t.Fatalf("unexpected unit order: %+v", units[1])
	}
	if units[3].Kind != SectionGrammar || units[3].Text != "元気ですか。" {
		t.Fatalf("unexpected grammar unit: %+v", units[3])
	}
}

func TestEnhance_AllSucceed(t *testing.T) {
	skel := testSkeleton()
	e := NewEnhancer(testConfig())

	results, err := e.Enhance(context.Background(), scriptedProvider(skel, nil), skel, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for kind, sec := range results {
		if sec.Status() != StatusEnhanced {
			t.Errorf("section %s: status %s", kind, sec.Status())
		}
	}
	// Items land in skeleton order regardless of completion order.
	if got := results[SectionDialogue].Items[1].Rich.Base; got != skel.Dialogue[1].Text {
		t.Fatalf("dialogue[1] holds %q", got)
	}
}

func TestEnhance_PartialFailureIsRecorded(t *testing.T) {
	skel := testSkeleton()
	e := NewEnhancer(testConfig())

	var mu sync.Mutex
	var failed []SectionKind
	onFail := func(kind SectionKind, _ int, _ error) {
		mu.Lock()
		failed = append(failed, kind)
		mu.Unlock()
	}

	fail := map[string]bool{skel.Dialogue[0].Text: true}
	results, err := e.Enhance(context.Background(), scriptedProvider(skel, fail), skel, onFail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dlg := results[SectionDialogue]
	if dlg.Status() != StatusPartial {
		t.Fatalf("dialogue status: %s", dlg.Status())
	}
	if dlg.Items[0].Err == nil || dlg.Items[0].Rich != nil {
		t.Fatal("failed item should carry error, no rich text")
	}
	if dlg.Items[1].Rich == nil {
		t.Fatal("sibling item should still enhance")
	}
	if results[SectionReading].Status() != StatusEnhanced {
		t.Fatal("other sections should be unaffected")
	}
	if len(failed) != 1 || failed[0] != SectionDialogue {
		t.Fatalf("onFail calls: %v", failed)
	}
}

func TestEnhance_ItemRetriesOnce(t *testing.T) {
	skel := testSkeleton()
	cfg := testConfig()
	cfg.MaxInFlight = 1

	var calls atomic.Int32
	flaky := providerFunc(func(_ context.Context, req llm.Request) (*llm.Response, error) {
		if calls.Add(1) == 1 {
			return nil, &llm.ErrProviderUnavailable{}
		}
		return &llm.Response{Content: richJSON(sourceText(req)), Model: "scripted", StopReason: "end"}, nil
	})

	results, err := NewEnhancer(cfg).Enhance(context.Background(), flaky, skel, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5 units, one extra call for the retried first unit.
	if calls.Load() != 6 {
		t.Fatalf("expected 6 calls, got %d", calls.Load())
	}
	for kind, sec := range results {
		if sec.Status() != StatusEnhanced {
			t.Errorf("section %s: status %s", kind, sec.Status())
		}
	}
}

func TestEnhance_RespectsConcurrencyLimit(t *testing.T) {
	skel := testSkeleton()
	cfg := testConfig()
	cfg.MaxInFlight = 2

	var inFlight, peak atomic.Int32
	slow := providerFunc(func(_ context.Context, req llm.Request) (*llm.Response, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return &llm.Response{Content: richJSON(sourceText(req)), Model: "scripted", StopReason: "end"}, nil
	})

	if _, err := NewEnhancer(cfg).Enhance(context.Background(), slow, skel, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peak.Load() > 2 {
		t.Fatalf("concurrency limit exceeded: peak %d", peak.Load())
	}
}

func TestEnhance_CanceledContextAborts(t *testing.T) {
	skel := testSkeleton()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEnhancer(testConfig()).Enhance(ctx, scriptedProvider(skel, nil), skel, nil)
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestAllFailed(t *testing.T) {
	skel := testSkeleton()
	if !allFailed(map[SectionKind]*SectionResult{}) {
		t.Error("empty results should count as all failed")
	}
	full := fullResults(skel)
	if allFailed(full) {
		t.Error("full results reported as all failed")
	}
	for _, sec := range full {
		for i := range sec.Items {
			sec.Items[i] = ItemResult{Err: errTest}
		}
	}
	if !allFailed(full) {
		t.Error("all-error results not detected")
	}
}
