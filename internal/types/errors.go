package types

import (
	"errors"
	"fmt"
)

// Kind discriminates failures for error records and callers. Bounds, mapping
// and not-found failures propagate to the immediate caller; classification
// and encoding ambiguity degrade confidence instead of failing.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindAccessDenied   Kind = "access_denied"
	KindMapFailed      Kind = "map_failed"
	KindBounds         Kind = "bounds"
	KindOverflow       Kind = "overflow"
	KindInvalidPattern Kind = "invalid_pattern"
	KindEncoding       Kind = "encoding"
)

// Error carries a failure kind alongside an optional path and wrapped cause.
type Error struct {
	Kind Kind
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the failure kind carried by err, or "" if it has none.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }
