// Package errors provides structured error types for Fontship.
// Every error carries a Kind so callers and tests can tell failure
// conditions apart; human readable text is derived from the Kind (or an
// explicit message key) only when the error is presented to the user.
package errors

import (
	"errors"
	"fmt"
	"regexp"
)

// Kind represents the category of an error.
type Kind uint8

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a missing or unreadable setting.
	KindConfig
	// KindRepository indicates no repository could be discovered.
	KindRepository
	// KindIdentity indicates the repository has no usable committer identity.
	KindIdentity
	// KindHead indicates HEAD does not resolve to a commit.
	KindHead
	// KindTree indicates a tree id is not present in the object store.
	KindTree
	// KindIO indicates a failed write to the object database or ref store.
	KindIO
	// KindStaleParent indicates HEAD moved between reading the parent and
	// updating the reference.
	KindStaleParent
	// KindValidation indicates invalid user input.
	KindValidation
	// KindLocalized indicates a user-facing domain error identified only by
	// its message key.
	KindLocalized
	// KindInternal indicates an internal error.
	KindInternal
)

// String returns a human-readable string for the error kind.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindRepository:
		return "repository"
	case KindIdentity:
		return "identity"
	case KindHead:
		return "head"
	case KindTree:
		return "tree"
	case KindIO:
		return "io"
	case KindStaleParent:
		return "stale_parent"
	case KindValidation:
		return "validation"
	case KindLocalized:
		return "localized"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// MessageKey returns the localization key used to present errors of this kind.
func (k Kind) MessageKey() string {
	return "error-" + k.String()
}

// Error is the standard error type for Fontship.
type Error struct {
	// Kind is the category of the error.
	Kind Kind
	// Op is the operation being performed when the error occurred.
	Op string
	// Message is a plain (untranslated) description for logs.
	Message string
	// Key overrides the localization key derived from Kind.
	Key string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.MessageKey()
	}
	if e.Op != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches this error.
// For *Error targets without Op only Kind is compared, so bare kind values
// work as sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op == "" {
		return e.Kind == t.Kind
	}
	return e.Kind == t.Kind && e.Op == t.Op
}

// MessageKey returns the localization key for this error.
func (e *Error) MessageKey() string {
	if e.Key != "" {
		return e.Key
	}
	return e.Kind.MessageKey()
}

// New creates a new Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind Kind, op string, message string) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, kind Kind, op string, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Localized creates a user-facing error identified by a message key. Its
// display text comes from the localization catalog.
func Localized(key string) *Error {
	return &Error{
		Kind: KindLocalized,
		Key:  key,
	}
}

// GetKind returns the Kind of an error.
// If the error is not an *Error, it returns KindUnknown.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind checks if an error is of a specific kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// Translator looks up a message key in the active locale.
type Translator interface {
	Text(key string, args ...any) string
}

// Localize renders err for the user. Structured errors are rendered through
// their message key; the untranslated detail is appended so nothing from the
// underlying cause is lost.
func Localize(err error, tr Translator) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return RedactSensitive(err.Error())
	}
	text := tr.Text(e.MessageKey())
	if e.Kind == KindLocalized && e.Err == nil {
		return text
	}
	return RedactSensitive(fmt.Sprintf("%s (%v)", text, err))
}

// Config creates a configuration error.
func Config(op, message string) *Error {
	return &Error{Kind: KindConfig, Op: op, Message: message}
}

// ConfigWrap wraps an error as a configuration error.
func ConfigWrap(err error, op, message string) *Error {
	return Wrap(err, KindConfig, op, message)
}

// Validation creates a validation error.
func Validation(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

// IOWrap wraps an error as an object store I/O error.
func IOWrap(err error, op, message string) *Error {
	return Wrap(err, KindIO, op, message)
}

// credentialsInURL matches basic auth userinfo embedded in remote URLs.
var credentialsInURL = regexp.MustCompile(`://[^:/@\s]+:[^@\s]+@`)

// RedactSensitive removes credentials embedded in URLs, such as those in
// git remote configuration, from s.
func RedactSensitive(s string) string {
	return credentialsInURL.ReplaceAllString(s, "://[REDACTED]@")
}
