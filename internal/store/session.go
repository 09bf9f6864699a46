package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akito/kotoba/ent"
	"github.com/akito/kotoba/ent/practicesession"
	"github.com/akito/kotoba/internal/dialogue"
)

// SessionRepo persists guided practice sessions. It satisfies
// dialogue.Store.
type SessionRepo struct {
	client *ent.Client
}

// GetSession loads the session for a lesson key.
func (r *SessionRepo) GetSession(ctx context.Context, lessonKey string) (*dialogue.SessionState, error) {
	row, err := r.client.PracticeSession.Query().
		Where(practicesession.LessonKey(lessonKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, dialogue.ErrSessionNotFound
		}
		return nil, fmt.Errorf("query practice session: %w", err)
	}

	turns, err := decodeTurns(row.Turns)
	if err != nil {
		return nil, err
	}
	return &dialogue.SessionState{
		LessonKey: row.LessonKey,
		StageIdx:  row.StageIdx,
		Completed: row.Completed,
		Turns:     turns,
		StartedAt: row.StartedAt,
		UpdatedAt: row.UpdatedAt,
		FlushedAt: row.FlushedAt,
	}, nil
}

// PutSession upserts the session row.
func (r *SessionRepo) PutSession(ctx context.Context, sess *dialogue.SessionState) error {
	turns, err := encodeTurns(sess.Turns)
	if err != nil {
		return fmt.Errorf("marshal turns: %w", err)
	}

	row, err := r.client.PracticeSession.Query().
		Where(practicesession.LessonKey(sess.LessonKey)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query practice session: %w", err)
		}
		_, err = r.client.PracticeSession.Create().
			SetLessonKey(sess.LessonKey).
			SetStageIdx(sess.StageIdx).
			SetCompleted(sess.Completed).
			SetTurns(turns).
			SetStartedAt(sess.StartedAt).
			SetUpdatedAt(sess.UpdatedAt).
			SetNillableFlushedAt(sess.FlushedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create practice session: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetStageIdx(sess.StageIdx).
		SetCompleted(sess.Completed).
		SetTurns(turns).
		SetUpdatedAt(sess.UpdatedAt).
		SetNillableFlushedAt(sess.FlushedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update practice session: %w", err)
	}
	return nil
}

// FlushSession deletes the session row entirely. The dialogue processor
// resets sessions in place; this is for the reset command, which removes
// the lesson too.
func (r *SessionRepo) FlushSession(ctx context.Context, lessonKey string) error {
	_, err := r.client.PracticeSession.Delete().
		Where(practicesession.LessonKey(lessonKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("flush practice session: %w", err)
	}
	return nil
}

func encodeTurns(turns []dialogue.TurnRecord) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(turns))
	for _, t := range turns {
		b, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func decodeTurns(raw []map[string]any) ([]dialogue.TurnRecord, error) {
	turns := make([]dialogue.TurnRecord, 0, len(raw))
	for _, m := range raw {
		b, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("marshal turn: %w", err)
		}
		var t dialogue.TurnRecord
		if err := json.Unmarshal(b, &t); err != nil {
			return nil, fmt.Errorf("unmarshal turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}
