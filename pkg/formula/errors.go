package formula

import (
	"fmt"
	"strings"
)

// Error reports a problem in a chemical formula string. Position is the
// offending character offset, or -1 if not applicable.
type Error struct {
	Message  string
	Formula  string
	Position int
}

func (e *Error) Error() string {
	if e.Position < 0 {
		return e.Message
	}
	return fmt.Sprintf("%s\n%s\n%s^", e.Message, e.Formula, strings.Repeat(".", e.Position))
}

func newError(msg, formula string, pos int) *Error {
	return &Error{Message: msg, Formula: formula, Position: pos}
}
