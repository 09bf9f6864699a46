// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/akito/kotoba/ent/practicesession"
)

// PracticeSession is the model entity for the PracticeSession schema.
type PracticeSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LessonKey holds the value of the "lesson_key" field.
	LessonKey string `json:"lesson_key,omitempty"`
	// Current stage; only ever increases within a session
	StageIdx int `json:"stage_idx,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Append-only turn records
	Turns []map[string]interface{} `json:"turns,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Set on the first flush, updated on each one after
	FlushedAt    *time.Time `json:"flushed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldTurns:
			values[i] = new([]byte)
		case practicesession.FieldCompleted:
			values[i] = new(sql.NullBool)
		case practicesession.FieldID, practicesession.FieldStageIdx:
			values[i] = new(sql.NullInt64)
		case practicesession.FieldLessonKey:
			values[i] = new(sql.NullString)
		case practicesession.FieldStartedAt, practicesession.FieldUpdatedAt, practicesession.FieldFlushedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeSession fields.
func (_m *PracticeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practicesession.FieldLessonKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_key", values[i])
			} else if value.Valid {
				_m.LessonKey = value.String
			}
		case practicesession.FieldStageIdx:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_idx", values[i])
			} else if value.Valid {
				_m.StageIdx = int(value.Int64)
			}
		case practicesession.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case practicesession.FieldTurns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field turns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Turns); err != nil {
					return fmt.Errorf("unmarshal field turns: %w", err)
				}
			}
		case practicesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case practicesession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case practicesession.FieldFlushedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field flushed_at", values[i])
			} else if value.Valid {
				_m.FlushedAt = new(time.Time)
				*_m.FlushedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeSession.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeSession.
// Note that you need to call PracticeSession.Unwrap() before calling this method if this PracticeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeSession) Update() *PracticeSessionUpdateOne {
	return NewPracticeSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeSession) Unwrap() *PracticeSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeSession) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lesson_key=")
	builder.WriteString(_m.LessonKey)
	builder.WriteString(", ")
	builder.WriteString("stage_idx=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageIdx))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Turns))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FlushedAt; v != nil {
		builder.WriteString("flushed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PracticeSessions is a parsable slice of PracticeSession.
type PracticeSessions []*PracticeSession
