package deck

import "fmt"

// InvalidDeckError reports a deck that violates a deckbuilding invariant.
// It is fatal to construction; parsers catch it at their boundary and report
// "no deck" instead of propagating.
type InvalidDeckError struct {
	Reason string
}

func (e *InvalidDeckError) Error() string {
	return "invalid deck: " + e.Reason
}

func invalidDeckf(format string, args ...any) *InvalidDeckError {
	return &InvalidDeckError{Reason: fmt.Sprintf(format, args...)}
}

// TransitionError reports a structural parsing violation: a section header
// appearing twice or out of its allowed order.
type TransitionError struct {
	From, To ParsingState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition to %s from %s", e.To, e.From)
}

// ParseError reports a line or row that cannot legitimately be parsed, such
// as a commander line that resolves to no card.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return "parse error: " + e.Reason
	}
	return fmt.Sprintf("parse error: %s: %q", e.Reason, e.Line)
}
