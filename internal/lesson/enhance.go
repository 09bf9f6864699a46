package lesson

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/akito/kotoba/internal/extract"
	"github.com/akito/kotoba/internal/llm"
)

// enhanceUnit is one independently-enhanced text: the reading body, a
// dialogue line, or a single grammar example.
type enhanceUnit struct {
	Kind  SectionKind
	Index int // position within the section's unit list
	Label string
	Text  string
}

// ItemResult is the outcome for one unit. Rich is nil when every
// attempt failed; Err then records the last cause.
type ItemResult struct {
	Rich *RichText
	Err  error
}

// SectionResult holds per-unit outcomes for one section, in skeleton
// order.
type SectionResult struct {
	Kind  SectionKind
	Items []ItemResult
}

// Status derives the section's enhancement status from its items.
func (s *SectionResult) Status() SectionStatus {
	ok := 0
	for _, it := range s.Items {
		if it.Rich != nil {
			ok++
		}
	}
	switch {
	case len(s.Items) == 0 || ok == 0:
		return StatusUnenhanced
	case ok == len(s.Items):
		return StatusEnhanced
	default:
		return StatusPartial
	}
}

// Enhancer runs stage 2: bounded-concurrency per-item enhancement of
// the skeleton's Japanese text into multi-representation form.
type Enhancer struct {
	cfg Config
}

// NewEnhancer returns an enhancer with the given limits.
func NewEnhancer(cfg Config) *Enhancer {
	return &Enhancer{cfg: cfg}
}

// collectUnits flattens the skeleton's enhanceable text. Unit order
// within a section matches skeleton order; merge relies on that.
func collectUnits(skel *ContentSkeleton) []enhanceUnit {
	var units []enhanceUnit

	units = append(units, enhanceUnit{
		Kind:  SectionReading,
		Index: 0,
		Label: "reading passage",
		Text:  skel.Reading.Body,
	})
	for i, line := range skel.Dialogue {
		units = append(units, enhanceUnit{
			Kind:  SectionDialogue,
			Index: i,
			Label: "dialogue line",
			Text:  line.Text,
		})
	}
	idx := 0
	for _, g := range skel.GrammarPoints {
		for _, example := range g.Examples {
			units = append(units, enhanceUnit{
				Kind:  SectionGrammar,
				Index: idx,
				Label: "example sentence",
				Text:  example,
			})
			idx++
		}
	}
	return units
}

// Enhance runs one full enhancement pass with the given provider and
// returns per-section results. Individual failures never abort the
// pass; they are recorded in the result and reported via onFail. The
// only error returned is a canceled context.
func (e *Enhancer) Enhance(ctx context.Context, provider llm.Provider, skel *ContentSkeleton, onFail func(SectionKind, int, error)) (map[SectionKind]*SectionResult, error) {
	ctx = llm.WithPurpose(ctx, "enhance")
	units := collectUnits(skel)

	results := make(map[SectionKind]*SectionResult)
	counts := map[SectionKind]int{}
	for _, u := range units {
		counts[u.Kind]++
	}
	for kind, n := range counts {
		results[kind] = &SectionResult{Kind: kind, Items: make([]ItemResult, n)}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.MaxInFlight)

	for _, u := range units {
		u := u
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rich, err := e.enhanceOne(gctx, provider, u)
			// Each goroutine owns exactly one slot; no lock needed.
			results[u.Kind].Items[u.Index] = ItemResult{Rich: rich, Err: err}
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if onFail != nil {
					onFail(u.Kind, u.Index, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// enhanceOne calls the provider for a single unit, retrying once.
func (e *Enhancer) enhanceOne(ctx context.Context, provider llm.Provider, u enhanceUnit) (*RichText, error) {
	var lastErr error
	for attempt := 1; attempt <= e.cfg.ItemAttempts; attempt++ {
		rich, err := e.enhanceAttempt(ctx, provider, u)
		if err == nil {
			return rich, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func (e *Enhancer) enhanceAttempt(ctx context.Context, provider llm.Provider, u enhanceUnit) (*RichText, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.cfg.ItemTimeout)
	defer cancel()

	resp, err := provider.Generate(callCtx, llm.Request{
		System: enhanceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: enhanceUserPrompt(u.Label, u.Text)},
		},
		Schema:      RichTextSchema(),
		MaxTokens:   e.cfg.ItemMaxTokens,
		Temperature: 0, // annotation wants determinism
	})
	if err != nil {
		return nil, err
	}

	payload, err := extract.JSON(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("extracting enhancement: %w", err)
	}

	var rich RichText
	if err := json.Unmarshal([]byte(payload), &rich); err != nil {
		return nil, fmt.Errorf("decoding enhancement: %w", err)
	}

	if err := ValidateRichText(&rich, u.Text); err != nil {
		return nil, err
	}
	return &rich, nil
}

// allFailed reports whether not a single unit in any section enhanced.
// The orchestrator uses this to decide a whole-stage provider fallback.
func allFailed(results map[SectionKind]*SectionResult) bool {
	for _, s := range results {
		for _, it := range s.Items {
			if it.Rich != nil {
				return false
			}
		}
	}
	return true
}
