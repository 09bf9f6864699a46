// Package dialogue implements guided conversation practice: the
// learner works through a lesson's ordered stages, and an LLM judge
// decides per turn whether the current stage's goal was met.
package dialogue

import (
	"errors"
	"time"
)

// Outcome classifies one processed turn.
type Outcome string

const (
	// OutcomeAdvanced means the goal was met and the session moved on.
	OutcomeAdvanced Outcome = "advanced"
	// OutcomeRetry means the judge found the goal unmet.
	OutcomeRetry Outcome = "retry"
	// OutcomeTooShort means the message failed the length pre-filter
	// and no judge call was made.
	OutcomeTooShort Outcome = "too_short"
	// OutcomeCompleted means the final stage's goal was just met.
	OutcomeCompleted Outcome = "completed"
)

// TurnRecord is one entry in the append-only session history. Records
// are never edited or removed; only a flush clears the history.
type TurnRecord struct {
	StageIdx int     `json:"stage_idx"`
	Message  string  `json:"message"`
	Outcome  Outcome `json:"outcome"`
	Feedback string  `json:"feedback,omitempty"`
	// TutorReply is the tutor's conversational answer. Empty only for
	// turns the pre-filter rejected without a judge call.
	TutorReply string    `json:"tutor_reply,omitempty"`
	At         time.Time `json:"at"`
}

// SessionState is the durable state of one practice session, keyed by
// the lesson's descriptor key. StageIdx only ever increases between
// flushes; Flush resets it to zero in place, keeping the session row
// and its lesson reference.
type SessionState struct {
	LessonKey string       `json:"lesson_key"`
	StageIdx  int          `json:"stage_idx"`
	Completed bool         `json:"completed"`
	Turns     []TurnRecord `json:"turns"`
	StartedAt time.Time    `json:"started_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	FlushedAt *time.Time   `json:"flushed_at,omitempty"`
}

// Verdict is the judge's decision for one turn, plus the tutor's next
// message that keeps the conversation moving.
type Verdict struct {
	GoalMet    bool   `json:"goal_met"`
	Feedback   string `json:"feedback"`
	Correction string `json:"correction,omitempty"`
	TutorReply string `json:"tutor_reply"`
}

var (
	// ErrSessionNotFound indicates no session exists for the lesson key.
	ErrSessionNotFound = errors.New("practice session not found")

	// ErrTurnInFlight indicates a turn for this session is already
	// being processed; turns within a session are strictly serialized.
	ErrTurnInFlight = errors.New("a turn is already in flight for this session")

	// ErrSessionComplete indicates every stage's goal has been met.
	ErrSessionComplete = errors.New("all stages are complete")
)
