package lesson

import (
	"fmt"
	"strings"
)

const skeletonSystemPrompt = `You are a Japanese language curriculum writer. You produce complete,
level-appropriate lesson content as JSON matching the provided schema.

Rules:
- All Japanese text uses normal script (kanji with kana) appropriate to the level.
- The reading passage and dialogue must stay on the requested topic.
- Grammar points must actually appear in the reading or dialogue.
- Guided stages build on each other: later stages assume earlier goals were met.
- Each stage rubric is concrete enough that a judge can verify it from the learner's message alone.
- Respond with JSON only.`

// skeletonUserPrompt builds the single stage-1 request.
func skeletonUserPrompt(d Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a complete Japanese lesson.\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", d.Topic)
	fmt.Fprintf(&b, "Learner level: %s\n\n", d.Level)
	b.WriteString("Include: a learning plan, a short reading passage, ")
	b.WriteString("an example dialogue of at least four turns, grammar points with examples, ")
	b.WriteString("practice drills, culture notes, ")
	b.WriteString("and ordered guided-conversation stages with goals and rubrics.")
	return b.String()
}

const enhanceSystemPrompt = `You are a Japanese text annotator. Given one Japanese text, you produce
its multi-representation form as JSON matching the provided schema.

Rules:
- "base" must be the input text exactly, unmodified.
- "segments" must cover the base text completely and in order; concatenating
  every segment's "text" must reproduce the base text byte for byte.
- Give a kana "reading" for every segment containing kanji; leave it empty otherwise.
- "romaji" is the Hepburn romanization of the whole text.
- "translation" is natural English.
- Respond with JSON only.`

// enhanceUserPrompt builds one stage-2 request for a single text.
func enhanceUserPrompt(label, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Annotate this %s:\n\n%s", label, text)
	return b.String()
}
