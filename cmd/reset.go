package cmd

import (
	"context"
	"fmt"

	"github.com/akito/kotoba/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a stored lesson and its practice progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := descriptorFromFlags(cmd)
		if err != nil {
			return err
		}
		sessionOnly, _ := cmd.Flags().GetBool("session-only")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		key := d.Key()

		if err := st.Sessions().FlushSession(ctx, key); err != nil {
			return fmt.Errorf("flush session: %w", err)
		}
		if sessionOnly {
			fmt.Printf("Practice progress for %q (%s) reset.\n", d.Topic, d.Level)
			return nil
		}

		if err := st.Lessons().DeletePackage(ctx, key); err != nil {
			return fmt.Errorf("delete lesson: %w", err)
		}
		fmt.Printf("Lesson %q (%s) and its practice progress deleted.\n", d.Topic, d.Level)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("topic", "", "Lesson topic (required)")
	resetCmd.Flags().String("level", "beginner", "Learner level")
	resetCmd.Flags().Bool("session-only", false, "Keep the lesson, only reset practice progress")
	_ = resetCmd.MarkFlagRequired("topic")
}
