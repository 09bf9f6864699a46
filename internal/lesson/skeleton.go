package lesson

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akito/kotoba/internal/extract"
	"github.com/akito/kotoba/internal/llm"
)

// SkeletonGenerator runs stage 1: one long structured call producing
// the complete plain-text lesson.
type SkeletonGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewSkeletonGenerator wires a generator to the given provider.
func NewSkeletonGenerator(provider llm.Provider, cfg Config) *SkeletonGenerator {
	return &SkeletonGenerator{provider: provider, cfg: cfg}
}

// Generate produces and validates a ContentSkeleton for the descriptor.
// A failed attempt (call error, bad JSON, or validation failure) is
// retried once with the identical request; after that the whole stage
// fails and the error names the last cause.
func (g *SkeletonGenerator) Generate(ctx context.Context, d Descriptor) (*ContentSkeleton, error) {
	ctx = llm.WithPurpose(ctx, "skeleton-gen")

	var lastErr error
	for attempt := 1; attempt <= g.cfg.SkeletonAttempts; attempt++ {
		skel, err := g.generateOnce(ctx, d)
		if err == nil {
			return skel, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, &StageError{Stage: "skeleton", Err: lastErr}
}

func (g *SkeletonGenerator) generateOnce(ctx context.Context, d Descriptor) (*ContentSkeleton, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.SkeletonTimeout)
	defer cancel()

	resp, err := g.provider.Generate(callCtx, llm.Request{
		System: skeletonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: skeletonUserPrompt(d)},
		},
		Schema:      SkeletonSchema(),
		MaxTokens:   g.cfg.SkeletonMaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return parseSkeleton(resp.Content)
}

// parseSkeleton extracts, decodes, and validates one stage-1 response.
// Extraction runs even on schema-validated content; some providers
// still wrap structured output in fences.
func parseSkeleton(content json.RawMessage) (*ContentSkeleton, error) {
	payload, err := extract.JSON(string(content))
	if err != nil {
		return nil, fmt.Errorf("extracting skeleton: %w", err)
	}

	var skel ContentSkeleton
	if err := json.Unmarshal([]byte(payload), &skel); err != nil {
		return nil, fmt.Errorf("decoding skeleton: %w", err)
	}

	if err := ValidateSkeleton(&skel); err != nil {
		return nil, err
	}
	return &skel, nil
}
