package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akito/kotoba/internal/dialogue"
	"github.com/akito/kotoba/internal/ui/theme"
)

// transcriptLines is how many recent turns stay visible.
const transcriptLines = 6

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var b strings.Builder

	title := fmt.Sprintf("%s — guided practice", m.pkg.Title)
	b.WriteString(theme.Title.Width(m.width).Render(title))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(theme.Incorrect.Width(m.width).Align(lipgloss.Center).Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	if m.session == nil {
		b.WriteString(theme.Hint.Width(m.width).Align(lipgloss.Center).Render("\nLoading session..."))
		v.SetContent(b.String())
		return v
	}

	if m.session.Completed {
		b.WriteString("\n")
		b.WriteString(theme.Correct.Width(m.width).Align(lipgloss.Center).Render("All stages complete!"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(m.width).Align(lipgloss.Center).Render("Ctrl+R to start over, Esc to leave"))
		v.SetContent(b.String())
		return v
	}

	b.WriteString(m.renderStage())
	b.WriteString("\n")
	b.WriteString(m.renderTranscript())
	b.WriteString("\n")

	if m.busy {
		b.WriteString(theme.Hint.Render("  Thinking..."))
	} else {
		b.WriteString("  " + m.input.View())
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Enter send · Ctrl+R restart · Esc quit"))

	v.SetContent(b.String())
	return v
}

func (m Model) renderStage() string {
	stage := m.pkg.Stages[m.session.StageIdx]

	var b strings.Builder
	header := fmt.Sprintf("Stage %d/%d", m.session.StageIdx+1, len(m.pkg.Stages))
	b.WriteString(theme.Selected.Render(header))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(stage.Goal))
	if len(stage.Hints) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Hint: " + stage.Hints[0]))
	}

	width := min(m.width-4, 76)
	return theme.Card.Width(width).Render(b.String())
}

func (m Model) renderTranscript() string {
	turns := m.session.Turns
	if len(turns) > transcriptLines {
		turns = turns[len(turns)-transcriptLines:]
	}

	var b strings.Builder
	for _, t := range turns {
		b.WriteString(theme.Body.Render("  You: " + t.Message))
		b.WriteString("\n")
		if t.TutorReply != "" {
			b.WriteString(theme.Body.Render("  Tutor: " + t.TutorReply))
			b.WriteString("\n")
		}
		if t.Feedback != "" {
			style := theme.Translation
			if t.Outcome == dialogue.OutcomeAdvanced || t.Outcome == dialogue.OutcomeCompleted {
				style = theme.Correct
			}
			b.WriteString(style.Render("  " + t.Feedback))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
