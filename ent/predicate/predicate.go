// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LessonPackage is the predicate function for lessonpackage builders.
type LessonPackage func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)
