package practice

import (
	"github.com/akito/kotoba/internal/dialogue"
)

// sessionLoadedMsg is sent when the stored session has been loaded.
type sessionLoadedMsg struct {
	Session *dialogue.SessionState
	Err     error
}

// turnDoneMsg is sent when the judge has processed a learner message.
type turnDoneMsg struct {
	Result *dialogue.TurnResult
	Err    error
}

// flushDoneMsg is sent when the session has been discarded.
type flushDoneMsg struct {
	Err error
}
