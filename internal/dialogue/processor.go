package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/akito/kotoba/internal/lesson"
)

// Config tunes turn processing.
type Config struct {
	// MinWords is the pre-filter threshold: shorter messages are
	// recorded but never sent to the judge.
	MinWords int
	// HistoryWindow is how many prior turns the judge sees.
	HistoryWindow int
	// JudgeTimeout bounds each judge call.
	JudgeTimeout time.Duration

	Judge JudgeConfig
}

// DefaultConfig returns the processing defaults.
func DefaultConfig() Config {
	return Config{
		MinWords:      2,
		HistoryWindow: 6,
		JudgeTimeout:  30 * time.Second,
		Judge:         DefaultJudgeConfig(),
	}
}

// Store is the processor's view of session persistence. PutSession is
// an upsert.
type Store interface {
	GetSession(ctx context.Context, lessonKey string) (*SessionState, error)
	PutSession(ctx context.Context, sess *SessionState) error
}

// TurnResult is what one processed turn produced.
type TurnResult struct {
	Record TurnRecord
	// StageIdx is the session's position after the turn.
	StageIdx int
	// Stage is the stage the learner now faces, nil once completed.
	Stage     *lesson.GuidedStage
	Completed bool
}

// Processor runs the guided practice state machine. Turns within one
// session are strictly serialized; concurrent calls get
// ErrTurnInFlight instead of queueing.
type Processor struct {
	judge *Judge
	store Store
	cfg   Config

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewProcessor wires a turn processor.
func NewProcessor(judge *Judge, store Store, cfg Config) *Processor {
	return &Processor{
		judge:    judge,
		store:    store,
		cfg:      cfg,
		inFlight: make(map[string]bool),
	}
}

// Session returns the current session for the lesson, creating a fresh
// one at stage zero if none exists. The fresh session is not persisted
// until its first turn.
func (p *Processor) Session(ctx context.Context, pkg *lesson.LessonPackage) (*SessionState, error) {
	key := pkg.Descriptor.Key()
	sess, err := p.store.GetSession(ctx, key)
	if errors.Is(err, ErrSessionNotFound) {
		now := time.Now().UTC()
		return &SessionState{LessonKey: key, StartedAt: now, UpdatedAt: now}, nil
	}
	return sess, err
}

// Flush resets the session in place: stage zero, empty history, flush
// timestamp stamped. Session identity and the lesson reference are
// unchanged. Flushing a session that was never persisted is a no-op.
func (p *Processor) Flush(ctx context.Context, pkg *lesson.LessonPackage) error {
	key := pkg.Descriptor.Key()
	sess, err := p.store.GetSession(ctx, key)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	sess.StageIdx = 0
	sess.Completed = false
	sess.Turns = nil
	sess.FlushedAt = &now
	sess.UpdatedAt = now
	if err := p.store.PutSession(ctx, sess); err != nil {
		return fmt.Errorf("persist flushed session: %w", err)
	}
	return nil
}

// Turn processes one learner message against the session's current
// stage. Messages below the length threshold are recorded without a
// judge call and never advance the stage. A judge failure leaves the
// session untouched so the learner can resend the same message.
func (p *Processor) Turn(ctx context.Context, pkg *lesson.LessonPackage, message string) (*TurnResult, error) {
	if len(pkg.Stages) == 0 {
		return nil, fmt.Errorf("lesson %q has no guided stages", pkg.Descriptor.Key())
	}
	key := pkg.Descriptor.Key()

	p.mu.Lock()
	if p.inFlight[key] {
		p.mu.Unlock()
		return nil, ErrTurnInFlight
	}
	p.inFlight[key] = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.inFlight, key)
		p.mu.Unlock()
	}()

	sess, err := p.Session(ctx, pkg)
	if err != nil {
		return nil, err
	}
	if sess.Completed {
		return nil, ErrSessionComplete
	}
	stage := pkg.Stages[sess.StageIdx]

	record := TurnRecord{
		StageIdx: sess.StageIdx,
		Message:  message,
		At:       time.Now().UTC(),
	}

	if tokenCount(message) < p.cfg.MinWords {
		record.Outcome = OutcomeTooShort
		record.Feedback = "Try a longer answer. " + hintFor(stage)
		return p.commit(ctx, pkg, sess, record)
	}

	judgeCtx, cancel := context.WithTimeout(ctx, p.cfg.JudgeTimeout)
	defer cancel()
	verdict, err := p.judge.Judge(judgeCtx, pkg, stage, p.window(sess), message)
	if err != nil {
		return nil, err
	}

	record.Feedback = verdict.Feedback
	record.TutorReply = verdict.TutorReply
	if verdict.Correction != "" {
		record.Feedback += "\nCorrected: " + verdict.Correction
	}
	if verdict.GoalMet {
		sess.StageIdx++
		if sess.StageIdx >= len(pkg.Stages) {
			sess.Completed = true
			record.Outcome = OutcomeCompleted
		} else {
			record.Outcome = OutcomeAdvanced
		}
	} else {
		record.Outcome = OutcomeRetry
	}

	return p.commit(ctx, pkg, sess, record)
}

// commit appends the record, persists the session, and builds the
// result. History is append-only; nothing before this record changes.
func (p *Processor) commit(ctx context.Context, pkg *lesson.LessonPackage, sess *SessionState, record TurnRecord) (*TurnResult, error) {
	sess.Turns = append(sess.Turns, record)
	sess.UpdatedAt = record.At
	if err := p.store.PutSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	res := &TurnResult{
		Record:    record,
		StageIdx:  sess.StageIdx,
		Completed: sess.Completed,
	}
	if !sess.Completed {
		res.Stage = &pkg.Stages[sess.StageIdx]
	}
	return res, nil
}

// window returns the trailing slice of history the judge sees.
func (p *Processor) window(sess *SessionState) []TurnRecord {
	n := p.cfg.HistoryWindow
	if n <= 0 || len(sess.Turns) <= n {
		return sess.Turns
	}
	return sess.Turns[len(sess.Turns)-n:]
}

func hintFor(stage lesson.GuidedStage) string {
	if len(stage.Hints) > 0 {
		return "Hint: " + stage.Hints[0]
	}
	return "Goal: " + stage.Goal
}

// tokenCount approximates message length. Spaced scripts count
// whitespace-separated words; unspaced Japanese counts letters, since
// a natural sentence arrives as a single field.
func tokenCount(s string) int {
	fields := strings.Fields(s)
	if len(fields) != 1 {
		return len(fields)
	}
	if hasCJK(fields[0]) {
		n := 0
		for _, r := range fields[0] {
			if unicode.IsLetter(r) {
				n++
			}
		}
		return n
	}
	return 1
}

func hasCJK(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return true
		}
		i += size
	}
	return false
}
