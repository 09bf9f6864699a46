package cmd

import (
	"errors"
	"fmt"

	"github.com/akito/kotoba/internal/dialogue"
	"github.com/akito/kotoba/internal/lesson"
	"github.com/akito/kotoba/internal/store"
	"github.com/akito/kotoba/internal/tui/practice"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start guided conversation practice for a lesson",
	Long: `Work through a lesson's conversation stages one message at a time.
Each reply is judged against the stage's rubric; meeting the goal advances
to the next stage. Progress persists across sessions.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("topic", "", "Lesson topic (required)")
	practiceCmd.Flags().String("level", "beginner", "Learner level")
	_ = practiceCmd.MarkFlagRequired("topic")
}

func runPractice(cmd *cobra.Command, args []string) error {
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
	pkg, err := st.Lessons().GetPackage(ctx, d.Key())
	if err != nil {
		if errors.Is(err, lesson.ErrNotFound) {
			return fmt.Errorf("no lesson for %q (%s); run: kotoba generate --topic %q --level %s",
				d.Topic, d.Level, d.Topic, d.Level)
		}
		return fmt.Errorf("load lesson: %w", err)
	}
	if len(pkg.Stages) == 0 {
		return fmt.Errorf("lesson %q has no guided practice stages", pkg.Title)
	}

	primary, _, err := buildProviders(ctx, st.Events())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	judge := dialogue.NewJudge(primary, dialogue.DefaultJudgeConfig())
	proc := dialogue.NewProcessor(judge, st.Sessions(), dialogue.DefaultConfig())

	return practice.Run(proc, pkg)
}
