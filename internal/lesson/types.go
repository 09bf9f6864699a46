// Package lesson implements the two-stage lesson generation pipeline:
// a single structured call that produces a complete content skeleton,
// followed by bounded-concurrency per-item enhancement into
// multi-representation text, merged into an immutable LessonPackage.
package lesson

import (
	"strings"
	"time"
)

// Descriptor identifies a lesson to generate. Two descriptors with the
// same normalized topic and level refer to the same lesson. A non-empty
// ID overrides the derived identity.
type Descriptor struct {
	ID    string `json:"id,omitempty"`
	Topic string `json:"topic"`
	Level string `json:"level"`
}

// Key returns the canonical identity used for storage and run
// deduplication: the explicit ID when set, otherwise the lowercased,
// space-collapsed topic and level.
func (d Descriptor) Key() string {
	if d.ID != "" {
		return d.ID
	}
	return normalize(d.Topic) + "|" + normalize(d.Level)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ContentSkeleton is the stage-1 output: every section of the lesson in
// plain text, complete but unenhanced. It is immutable once validated;
// stage 2 only reads from it.
type ContentSkeleton struct {
	Title         string         `json:"title"`
	Plan          []PlanStep     `json:"plan"`
	Reading       Passage        `json:"reading"`
	Dialogue      []DialogueLine `json:"dialogue"`
	GrammarPoints []GrammarPoint `json:"grammar_points"`
	Practice      []PracticeItem `json:"practice"`
	CultureNotes  []CultureNote  `json:"culture_notes"`
	Stages        []GuidedStage  `json:"stages"`
}

// PlanStep is one entry in the lesson's learning plan.
type PlanStep struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Passage is the reading section: a short text at the target level.
type Passage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DialogueLine is one turn of the example conversation.
type DialogueLine struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// GrammarPoint explains one pattern with example sentences.
type GrammarPoint struct {
	Pattern     string   `json:"pattern"`
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
}

// PracticeItem is a prompt/answer drill shown outside guided practice.
type PracticeItem struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// CultureNote is a short contextual aside.
type CultureNote struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GuidedStage is one goal of the guided conversation practice. Stages
// are ordered; the dialogue processor advances through them one at a
// time.
type GuidedStage struct {
	Goal   string   `json:"goal"`
	Hints  []string `json:"hints"`
	Rubric string   `json:"rubric"`
}

// RichText is the enhanced, multi-representation form of one piece of
// Japanese text. Segments partition Base exactly: concatenating
// Segment.Text in order must reproduce Base byte for byte, so renderers
// can always fall back to the base script.
type RichText struct {
	Base        string    `json:"base"`
	Romaji      string    `json:"romaji,omitempty"`
	Segments    []Segment `json:"segments"`
	Translation string    `json:"translation"`
}

// Segment is a contiguous span of base text with an optional kana
// reading. Spans with no kanji leave Reading empty.
type Segment struct {
	Text    string `json:"text"`
	Reading string `json:"reading,omitempty"`
}

// TextBlock is rendered lesson text. Plain is always set so the lesson
// is fully displayable even when enhancement failed; Rich is nil for
// items that fell back to the skeleton text.
type TextBlock struct {
	Plain string    `json:"plain"`
	Rich  *RichText `json:"rich,omitempty"`
}

// Enhanced reports whether this block carries the multi-representation
// form.
func (t TextBlock) Enhanced() bool { return t.Rich != nil }

// SectionKind names an enhanceable section of the lesson.
type SectionKind string

const (
	SectionReading  SectionKind = "reading"
	SectionDialogue SectionKind = "dialogue"
	SectionGrammar  SectionKind = "grammar"
)

// SectionStatus records the enhancement outcome for one section.
type SectionStatus string

const (
	StatusEnhanced   SectionStatus = "enhanced"
	StatusPartial    SectionStatus = "partial"
	StatusUnenhanced SectionStatus = "unenhanced"
)

// ReadingSection is the merged reading passage.
type ReadingSection struct {
	Title string    `json:"title"`
	Body  TextBlock `json:"body"`
}

// DialogueText is one merged conversation turn.
type DialogueText struct {
	Speaker string    `json:"speaker"`
	Text    TextBlock `json:"text"`
}

// GrammarText is one merged grammar point; each example is enhanced
// independently, so a point may mix rich and plain examples.
type GrammarText struct {
	Pattern     string      `json:"pattern"`
	Explanation string      `json:"explanation"`
	Examples    []TextBlock `json:"examples"`
}

// LessonPackage is the final merged artifact. It is written to the
// store exactly once and never mutated afterward except for the
// generation status map.
type LessonPackage struct {
	Descriptor Descriptor                    `json:"descriptor"`
	Title      string                        `json:"title"`
	Plan       []PlanStep                    `json:"plan"`
	Reading    ReadingSection                `json:"reading"`
	Dialogue   []DialogueText                `json:"dialogue"`
	Grammar    []GrammarText                 `json:"grammar"`
	Practice   []PracticeItem                `json:"practice"`
	Culture    []CultureNote                 `json:"culture"`
	Stages     []GuidedStage                 `json:"stages"`
	Status     map[SectionKind]SectionStatus `json:"status"`
	Model      string                        `json:"model,omitempty"`
	CreatedAt  time.Time                     `json:"created_at"`
}

// FullyEnhanced reports whether every section enhanced completely.
func (p *LessonPackage) FullyEnhanced() bool {
	for _, s := range p.Status {
		if s != StatusEnhanced {
			return false
		}
	}
	return len(p.Status) > 0
}
