package logtime

import (
	"fmt"
	"time"
)

// Session is one presence record. End is nil while the session is still open.
type Session struct {
	Begin time.Time  `json:"begin_at"`
	End   *time.Time `json:"end_at"`
}

// ResolvedEnd returns the end of the session, treating an open session as
// ongoing until now. An end earlier than Begin is clamped to Begin.
func (s Session) ResolvedEnd(now time.Time) time.Time {
	end := now
	if s.End != nil {
		end = *s.End
	}
	if end.Before(s.Begin) {
		return s.Begin
	}
	return end
}

type MalformedSessionError struct {
	Index  int
	Reason string
}

func (e *MalformedSessionError) Error() string {
	return fmt.Sprintf("malformed session #%d: %s", e.Index, e.Reason)
}

// Validate rejects the whole batch on the first malformed session.
func Validate(sessions []Session) error {
	for i, s := range sessions {
		if s.Begin.IsZero() {
			return &MalformedSessionError{Index: i, Reason: "missing begin_at"}
		}
		if s.End != nil && s.End.Before(s.Begin) {
			return &MalformedSessionError{
				Index:  i,
				Reason: fmt.Sprintf("begin_at %s is after end_at %s", s.Begin.Format(time.RFC3339), s.End.Format(time.RFC3339)),
			}
		}
	}
	return nil
}

type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
