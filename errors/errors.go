package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a class of load or resolution failure.
type Code string

const (
	// ErrIO indicates a document could not be opened or read.
	ErrIO Code = "gir-io"
	// ErrXMLSyntax indicates the document is not well-formed XML.
	ErrXMLSyntax Code = "gir-xml-syntax"
	// ErrUnexpectedRoot indicates the document element is not the expected one.
	ErrUnexpectedRoot Code = "gir-unexpected-root"
	// ErrMissingAttribute indicates a required attribute is absent.
	ErrMissingAttribute Code = "gir-missing-attribute"
	// ErrMissingElement indicates a required child element is absent.
	ErrMissingElement Code = "gir-missing-element"
	// ErrInvalidValue indicates an attribute or text value failed scalar parsing.
	ErrInvalidValue Code = "gir-invalid-value"
	// ErrUnexpectedAttribute indicates a strict element carries an unknown attribute.
	ErrUnexpectedAttribute Code = "gir-unexpected-attribute"
	// ErrUnexpectedElement indicates a strict element carries an unknown child.
	ErrUnexpectedElement Code = "gir-unexpected-element"
	// ErrNoVariant indicates no child matched a required tagged variant.
	ErrNoVariant Code = "gir-no-variant"
	// ErrRootMismatch indicates a loaded namespace does not match the requested file.
	ErrRootMismatch Code = "gir-root-mismatch"
	// ErrIncludeCycle indicates namespace includes form a cycle.
	ErrIncludeCycle Code = "gir-include-cycle"
)

// Kind partitions codes into the two failure families callers branch on.
type Kind uint8

const (
	// KindStructure covers malformed XML and documents that violate the element schema.
	KindStructure Kind = iota
	// KindIO covers failures reading a document.
	KindIO
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindIO {
		return "io"
	}
	return "structure"
}

// Kind reports the failure family of the code.
func (c Code) Kind() Kind {
	if c == ErrIO {
		return KindIO
	}
	return KindStructure
}

// Error is the single error type returned by loading and resolution.
//
//nolint:errname // public API name mirrors the package name.
type Error struct {
	Err     error
	Code    Code
	Message string
	File    string
	Path    string
	Line    int
	Column  int
}

// Error formats the error with code, message, file, element path and position.
func (e *Error) Error() string {
	if e == nil {
		return "gir error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.File != "" {
		b.WriteString(fmt.Sprintf(" in %s", e.File))
	}
	if e.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", e.Path))
	}
	if e.Line > 0 && e.Column > 0 {
		if e.Path == "" {
			b.WriteString(fmt.Sprintf(" at line %d, column %d", e.Line, e.Column))
		} else {
			b.WriteString(fmt.Sprintf(" (line %d, column %d)", e.Line, e.Column))
		}
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Kind reports the failure family of the error code.
func (e *Error) Kind() Kind {
	return e.Code.Kind()
}

// New builds an Error with a code, message, and optional element path.
func New(code Code, msg, path string) *Error {
	return &Error{Code: code, Message: msg, Path: path}
}

// Newf formats a message and builds an Error.
func Newf(code Code, path, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...), path)
}

// Wrap builds an Error around a cause.
func Wrap(code Code, err error, msg string) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// WithFile returns err annotated with the document name. Errors of other types
// are wrapped as ErrIO failures.
func WithFile(err error, file string) error {
	if err == nil {
		return nil
	}
	e, ok := As(err)
	if !ok {
		return &Error{Code: ErrIO, Message: "read document", File: file, Err: err}
	}
	if e.File != "" {
		return e
	}
	annotated := *e
	annotated.File = file
	return &annotated
}

// As extracts the first *Error in the chain.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// HasCode reports whether err carries code.
func HasCode(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

// IsIO reports whether err is a document read failure.
func IsIO(err error) bool {
	e, ok := As(err)
	return ok && e.Kind() == KindIO
}

// IsStructure reports whether err is a malformed XML or schema violation failure.
func IsStructure(err error) bool {
	e, ok := As(err)
	return ok && e.Kind() == KindStructure
}
