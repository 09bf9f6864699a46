package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/akito/kotoba/internal/lesson"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a generated lesson without saving it (no database)",
	Long: `Generate and print a lesson for a topic without touching the database.

This is a stateless developer tool — nothing is stored and no LLM events are
recorded. Useful for evaluating lesson quality and testing prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Lesson topic (required)")
	previewCmd.Flags().String("level", "beginner", "Learner level")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	d, err := descriptorFromFlags(cmd)
	if err != nil {
		return err
	}

	// No EventRepo — logging skipped.
	ctx := context.Background()
	primary, fallback, err := buildProviders(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	orch := lesson.New(primary, fallback, newMemStore(), lesson.DefaultConfig())

	run, err := orch.Start(ctx, d)
	if err != nil {
		return fmt.Errorf("start generation: %w", err)
	}
	for ev := range run.Events() {
		printEvent(ev)
	}
	pkg, err := run.Wait(ctx)
	if err != nil {
		return fmt.Errorf("generate lesson: %w", err)
	}

	fmt.Println()
	renderLesson(pkg)
	return nil
}

// memStore keeps packages in memory for the lifetime of the preview.
type memStore struct {
	mu   sync.Mutex
	pkgs map[string]*lesson.LessonPackage
}

func newMemStore() *memStore {
	return &memStore{pkgs: make(map[string]*lesson.LessonPackage)}
}

func (s *memStore) GetPackage(_ context.Context, key string) (*lesson.LessonPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pkg, ok := s.pkgs[key]
	if !ok {
		return nil, lesson.ErrNotFound
	}
	return pkg, nil
}

func (s *memStore) PutPackage(_ context.Context, pkg *lesson.LessonPackage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pkg.Descriptor.Key()
	if _, ok := s.pkgs[key]; ok {
		return lesson.ErrAlreadyExists
	}
	s.pkgs[key] = pkg
	return nil
}
