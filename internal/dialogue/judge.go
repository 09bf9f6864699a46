package dialogue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/akito/kotoba/internal/extract"
	"github.com/akito/kotoba/internal/lesson"
	"github.com/akito/kotoba/internal/llm"
)

// JudgeConfig tunes the per-turn judge call.
type JudgeConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultJudgeConfig returns sensible defaults.
func DefaultJudgeConfig() JudgeConfig {
	return JudgeConfig{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Judge asks the LLM whether a learner turn satisfies the current
// stage's rubric.
type Judge struct {
	provider llm.Provider
	cfg      JudgeConfig
}

// NewJudge creates an LLM-backed turn judge.
func NewJudge(provider llm.Provider, cfg JudgeConfig) *Judge {
	return &Judge{provider: provider, cfg: cfg}
}

// judgeRequest is the template input for one judge call.
type judgeRequest struct {
	Topic   string
	Level   string
	Goal    string
	Rubric  string
	Hints   []string
	History []TurnRecord
	Message string
}

var judgeSchema = &llm.Schema{
	Name:        "turn_verdict",
	Description: "Decision on whether the learner's turn met the stage goal",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"goal_met": map[string]any{
				"type":        "boolean",
				"description": "True only if the rubric is clearly satisfied",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two encouraging sentences in English",
			},
			"correction": map[string]any{
				"type":        "string",
				"description": "A corrected version of the learner's Japanese, if it had errors",
			},
			"tutor_reply": map[string]any{
				"type":        "string",
				"description": "The tutor's next message in the conversation, in Japanese at the learner's level",
			},
		},
		"required": []string{"goal_met", "feedback", "tutor_reply"},
	},
}

const judgeSystemPrompt = `You are a Japanese conversation tutor evaluating one learner message
against the current practice goal.

Instructions:
- Decide goal_met strictly by the rubric, not by overall quality. A flawed
  but rubric-satisfying message still meets the goal.
- Judge only the latest message; the history is context, not evidence.
- Feedback is brief, specific, and encouraging.
- If the Japanese has errors, include a corrected version; otherwise omit it.
- Always write tutor_reply: your next message as the conversation partner, in
  Japanese the learner can handle, answering what they said and steering
  toward the goal (the next stage's goal when this one was just met).`

var judgeUserTemplate = template.Must(template.New("judge").Parse(`Lesson topic: {{.Topic}}
Learner level: {{.Level}}

Current stage goal: {{.Goal}}
Rubric: {{.Rubric}}
{{if .Hints}}Hints given to the learner:
{{range .Hints}}- {{.}}
{{end}}{{end}}
{{if .History}}Recent exchange:
{{range .History}}Learner (stage {{.StageIdx}}): {{.Message}}
{{if .TutorReply}}Tutor: {{.TutorReply}}
{{end}}{{end}}{{end}}
Latest learner message: {{.Message}}`))

func buildJudgeMessage(req *judgeRequest) (string, error) {
	var buf bytes.Buffer
	if err := judgeUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Judge evaluates the learner's message against the stage rubric,
// with a bounded history window for context.
func (j *Judge) Judge(ctx context.Context, pkg *lesson.LessonPackage, stage lesson.GuidedStage, history []TurnRecord, message string) (*Verdict, error) {
	ctx = llm.WithPurpose(ctx, "turn-judge")

	userMsg, err := buildJudgeMessage(&judgeRequest{
		Topic:   pkg.Descriptor.Topic,
		Level:   pkg.Descriptor.Level,
		Goal:    stage.Goal,
		Rubric:  stage.Rubric,
		Hints:   stage.Hints,
		History: history,
		Message: message,
	})
	if err != nil {
		return nil, fmt.Errorf("build judge prompt: %w", err)
	}

	resp, err := j.provider.Generate(ctx, llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      judgeSchema,
		MaxTokens:   j.cfg.MaxTokens,
		Temperature: j.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("turn judge failed: %w", err)
	}

	// Extraction still runs on schema-validated content; some providers
	// wrap structured output in fences.
	payload, err := extract.JSON(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("extracting verdict: %w", err)
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(payload), &verdict); err != nil {
		return nil, fmt.Errorf("failed to parse judge response: %w", err)
	}
	return &verdict, nil
}
