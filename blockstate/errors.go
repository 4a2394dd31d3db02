package blockstate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotCCL indicates the document carries no ccl_marker and belongs to another loader.
	ErrNotCCL = errors.New("not a ccl blockstate document")

	// ErrConfigFormat indicates a missing or ill-typed top-level field.
	ErrConfigFormat = errors.New("config format error")

	// ErrDeserialization indicates a variant record failed validation.
	ErrDeserialization = errors.New("deserialization error")

	// ErrUnresolvedReference indicates a requested property has no candidate values.
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// Error describes a load failure. Kind is one of the sentinel errors above,
// so callers can match with errors.Is.
type Error struct {
	Kind    error
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Kind != nil {
		fmt.Fprintf(&b, "[%s] ", e.Kind)
	}
	b.WriteString(e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both Kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func configError(path string, line int, format string, args ...any) error {
	return &Error{Kind: ErrConfigFormat, Path: path, Line: line, Message: fmt.Sprintf(format, args...)}
}

func decodeError(path string, line int, format string, args ...any) error {
	return &Error{Kind: ErrDeserialization, Path: path, Line: line, Message: fmt.Sprintf(format, args...)}
}
