package lesson

import "github.com/akito/kotoba/internal/llm"

// richTextProperties is the shared multi-representation text shape.
// Segments must partition the base text; that constraint cannot be
// expressed in JSON Schema and is checked by ValidateRichText.
func richTextProperties() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base": map[string]any{
				"type":        "string",
				"description": "The text in normal Japanese script (kanji and kana)",
			},
			"romaji": map[string]any{
				"type":        "string",
				"description": "Hepburn romanization of the full text",
			},
			"segments": map[string]any{
				"type":        "array",
				"description": "Contiguous spans covering the base text exactly, in order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "A span of the base text, unmodified",
						},
						"reading": map[string]any{
							"type":        "string",
							"description": "Kana reading for spans containing kanji, otherwise empty",
						},
					},
					"required": []string{"text"},
				},
			},
			"translation": map[string]any{
				"type":        "string",
				"description": "Natural English translation",
			},
		},
		"required": []string{"base", "segments", "translation"},
	}
}

// RichTextSchema validates one stage-2 enhancement response.
func RichTextSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "rich_text",
		Description: "Multi-representation rendering of one Japanese text",
		Definition:  richTextProperties(),
	}
}

// SkeletonSchema validates the stage-1 response.
func SkeletonSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "lesson_skeleton",
		Description: "Complete plain-text lesson content",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "Short lesson title in English",
				},
				"plan": map[string]any{
					"type":     "array",
					"minItems": 2,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title":   map[string]any{"type": "string"},
							"summary": map[string]any{"type": "string"},
						},
						"required": []string{"title", "summary"},
					},
				},
				"reading": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
						"body": map[string]any{
							"type":        "string",
							"description": "Short passage in Japanese at the target level",
						},
					},
					"required": []string{"title", "body"},
				},
				"dialogue": map[string]any{
					"type":     "array",
					"minItems": 4,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"speaker": map[string]any{"type": "string"},
							"text":    map[string]any{"type": "string"},
						},
						"required": []string{"speaker", "text"},
					},
				},
				"grammar_points": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"pattern":     map[string]any{"type": "string"},
							"explanation": map[string]any{"type": "string"},
							"examples": map[string]any{
								"type":     "array",
								"minItems": 1,
								"items":    map[string]any{"type": "string"},
							},
						},
						"required": []string{"pattern", "explanation", "examples"},
					},
				},
				"practice": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt": map[string]any{"type": "string"},
							"answer": map[string]any{"type": "string"},
						},
						"required": []string{"prompt", "answer"},
					},
				},
				"culture_notes": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title": map[string]any{"type": "string"},
							"body":  map[string]any{"type": "string"},
						},
						"required": []string{"title", "body"},
					},
				},
				"stages": map[string]any{
					"type":        "array",
					"minItems":    2,
					"description": "Ordered goals for guided conversation practice",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"goal": map[string]any{
								"type":        "string",
								"description": "What the learner must accomplish in this stage",
							},
							"hints": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
							"rubric": map[string]any{
								"type":        "string",
								"description": "Criteria the judge uses to decide the goal was met",
							},
						},
						"required": []string{"goal", "rubric"},
					},
				},
			},
			"required": []string{
				"title", "plan", "reading", "dialogue",
				"grammar_points", "practice", "culture_notes", "stages",
			},
		},
	}
}
