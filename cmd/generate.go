package cmd

import (
	"context"
	"fmt"

	"github.com/akito/kotoba/internal/lesson"
	"github.com/akito/kotoba/internal/llm"
	"github.com/akito/kotoba/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a lesson for a topic and level",
	Long: `Generate a complete lesson package: a structured skeleton first, then
per-item enhancement into furigana, romaji, and translations. The result is
stored; re-running for the same topic and level returns the stored lesson.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "Lesson topic, e.g. \"ordering food\" (required)")
	generateCmd.Flags().String("level", "beginner", "Learner level: beginner, intermediate, or advanced")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := descriptorFromFlags(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	primary, fallback, err := buildProviders(ctx, st.Events())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	orch := lesson.New(primary, fallback, st.Lessons(), lesson.DefaultConfig())

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

func printEvent(ev lesson.Event) {
	switch ev.Type {
	case lesson.EventState:
		switch ev.State {
		case lesson.StateStage1Running:
			fmt.Println("Generating lesson skeleton...")
		case lesson.StateStage2Running:
			fmt.Println("Enhancing text with readings and translations...")
		case lesson.StateStage2Degraded:
			fmt.Println("No items could be enhanced; the lesson will show plain text.")
		case lesson.StateStage2Complete:
			fmt.Println("Enhancement finished.")
		case lesson.StateMerged:
			fmt.Println("Lesson saved.")
		}
	case lesson.EventItemFailed:
		fmt.Printf("  %s item %d failed: %s\n", ev.Section, ev.Item, ev.Err)
	case lesson.EventFallback:
		fmt.Println("Enhancement failed on the primary provider; retrying with fallback...")
	}
}

// descriptorFromFlags reads --topic and --level into a Descriptor.
func descriptorFromFlags(cmd *cobra.Command) (lesson.Descriptor, error) {
	topic, _ := cmd.Flags().GetString("topic")
	level, _ := cmd.Flags().GetString("level")
	d := lesson.Descriptor{Topic: topic, Level: level}
	if topic == "" {
		return d, fmt.Errorf("--topic is required")
	}
	return d, nil
}

// buildProviders creates the primary provider and the optional fallback
// from the same resolved configuration.
func buildProviders(ctx context.Context, events llm.EventRepo) (primary, fallback llm.Provider, err error) {
	cfg := llm.ConfigFromEnv()
	if cfgErr := cfg.Validate(); cfgErr != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, nil, cfgErr
		}
		cfg = discovered
	}

	primary, err = llm.NewProvider(ctx, cfg, events)
	if err != nil {
		return nil, nil, err
	}
	fallback, err = llm.NewFallbackProvider(ctx, cfg, events)
	if err != nil {
		return nil, nil, err
	}
	return primary, fallback, nil
}
