package validation

import (
	"fmt"
	"strings"
)

// Error is a validation failure with per-field messages, returned to the
// client as-is so the form can highlight the offending inputs.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
