package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akito/kotoba/internal/lesson"
	"github.com/akito/kotoba/internal/store"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List and inspect stored lessons",
}

var lessonsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		pkgs, err := st.Lessons().ListPackages(context.Background())
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}
		if len(pkgs) == 0 {
			fmt.Println("No lessons yet. Run: kotoba generate --topic \"ordering food\"")
			return nil
		}

		fmt.Printf("%-28s  %-12s  %-32s  %s\n", "Topic", "Level", "Title", "Created")
		fmt.Println(strings.Repeat("\u2500", 96))
		for _, p := range pkgs {
			fmt.Printf("%-28s  %-12s  %-32s  %s\n",
				truncate(p.Descriptor.Topic, 28),
				p.Descriptor.Level,
				truncate(p.Title, 32),
				p.CreatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

var lessonsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a stored lesson in full",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		pkg, err := st.Lessons().GetPackage(context.Background(), d.Key())
		if err != nil {
			if errors.Is(err, lesson.ErrNotFound) {
				return fmt.Errorf("no lesson for %q (%s); generate it first", d.Topic, d.Level)
			}
			return fmt.Errorf("load lesson: %w", err)
		}

		renderLesson(pkg)
		return nil
	},
}

func init() {
	lessonsShowCmd.Flags().String("topic", "", "Lesson topic (required)")
	lessonsShowCmd.Flags().String("level", "beginner", "Learner level")
	_ = lessonsShowCmd.MarkFlagRequired("topic")

	lessonsCmd.AddCommand(lessonsListCmd)
	lessonsCmd.AddCommand(lessonsShowCmd)
}

// renderLesson prints a full lesson package to stdout.
func renderLesson(pkg *lesson.LessonPackage) {
	sep := strings.Repeat("\u2500", 60)

	fmt.Printf("%s (%s / %s)\n", pkg.Title, pkg.Descriptor.Topic, pkg.Descriptor.Level)
	fmt.Println(sep)

	if len(pkg.Plan) > 0 {
		fmt.Println("\nPlan")
		for i, step := range pkg.Plan {
			fmt.Printf("  %d. %s — %s\n", i+1, step.Title, step.Summary)
		}
	}

	fmt.Printf("\nReading: %s\n", pkg.Reading.Title)
	printBlock(pkg.Reading.Body, "  ")

	if len(pkg.Dialogue) > 0 {
		fmt.Println("\nDialogue")
		for _, line := range pkg.Dialogue {
			fmt.Printf("  %s:\n", line.Speaker)
			printBlock(line.Text, "    ")
		}
	}

	if len(pkg.Grammar) > 0 {
		fmt.Println("\nGrammar")
		for _, g := range pkg.Grammar {
			fmt.Printf("  %s\n", g.Pattern)
			fmt.Printf("  %s\n", g.Explanation)
			for _, ex := range g.Examples {
				printBlock(ex, "    ")
			}
		}
	}

	if len(pkg.Practice) > 0 {
		fmt.Println("\nPractice")
		for i, item := range pkg.Practice {
			fmt.Printf("  %d. %s\n     → %s\n", i+1, item.Prompt, item.Answer)
		}
	}

	if len(pkg.Culture) > 0 {
		fmt.Println("\nCulture Notes")
		for _, note := range pkg.Culture {
			fmt.Printf("  %s: %s\n", note.Title, note.Body)
		}
	}

	if len(pkg.Stages) > 0 {
		fmt.Println("\nGuided Practice Stages")
		for i, stage := range pkg.Stages {
			fmt.Printf("  %d. %s\n", i+1, stage.Goal)
		}
		fmt.Println("\nStart practicing with: kotoba practice --topic " + fmt.Sprintf("%q", pkg.Descriptor.Topic))
	}
}

// printBlock renders one text block: annotated base text with readings,
// then romaji and translation when the block was enhanced.
func printBlock(b lesson.TextBlock, indent string) {
	if !b.Enhanced() {
		fmt.Println(indent + b.Plain)
		return
	}
	fmt.Println(indent + annotate(b.Rich))
	if b.Rich.Romaji != "" {
		fmt.Println(indent + b.Rich.Romaji)
	}
	fmt.Println(indent + b.Rich.Translation)
}

// annotate interleaves kana readings into the base text, e.g. 日本(にほん).
func annotate(r *lesson.RichText) string {
	var sb strings.Builder
	for _, seg := range r.Segments {
		sb.WriteString(seg.Text)
		if seg.Reading != "" {
			sb.WriteString("(")
			sb.WriteString(seg.Reading)
			sb.WriteString(")")
		}
	}
	return sb.String()
}
