package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type ErrorCode string

const (
	CodeMalformedMessage        ErrorCode = "MALFORMED_MESSAGE"
	CodeUnrecognizedVariant     ErrorCode = "UNRECOGNIZED_VARIANT"
	CodeUnsupportedEmptyPayload ErrorCode = "UNSUPPORTED_EMPTY_PAYLOAD"
	CodeNotFound                ErrorCode = "NOT_FOUND"
	CodeValidationError         ErrorCode = "VALIDATION_ERROR"
	CodeInternal                ErrorCode = "INTERNAL_ERROR"
)

type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

const (
	CtxShape     = "shape"
	CtxField     = "field"
	CtxEnum      = "enum"
	CtxTag       = "tag"
	CtxPath      = "path"
	CtxFile      = "file"
	CtxOperation = "operation"
)

func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		msg += " {" + strings.Join(parts, " ") + "}"
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg}
}

func Wrap(err error, code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg, Err: err}
}

// MissingField reports a mandatory field that is absent from a wire message.
func MissingField(shape, field string) error {
	de := &DomainError{
		Code:    CodeMalformedMessage,
		Message: fmt.Sprintf("missing %s in %s", field, shape),
	}
	return de.WithContext(CtxShape, shape).WithContext(CtxField, field)
}

// UnrecognizedTag reports an enumeration value this decoder does not know.
func UnrecognizedTag(enum string, tag int32) error {
	de := &DomainError{
		Code:    CodeUnrecognizedVariant,
		Message: fmt.Sprintf("unrecognized %s tag %d", enum, tag),
	}
	return de.WithContext(CtxEnum, enum).WithContext(CtxTag, tag)
}

// EmptyPayload reports a tagged union that resolved to its empty member.
func EmptyPayload(shape string) error {
	de := &DomainError{
		Code:    CodeUnsupportedEmptyPayload,
		Message: fmt.Sprintf("empty %s payload", shape),
	}
	return de.WithContext(CtxShape, shape)
}

func AddContext(err error, key string, value interface{}) error {
	var de *DomainError
	if errors.As(err, &de) {
		de.WithContext(key, value)
		return de
	}
	return &DomainError{
		Code:    CodeInternal,
		Message: "wrapped error",
		Err:     err,
		Context: map[string]interface{}{key: value},
	}
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// TagOf returns the raw enumeration tag carried by an UNRECOGNIZED_VARIANT error.
func TagOf(err error) (int32, bool) {
	var de *DomainError
	if !errors.As(err, &de) || de.Code != CodeUnrecognizedVariant {
		return 0, false
	}
	tag, ok := de.Context[CtxTag].(int32)
	return tag, ok
}

// ContextValue returns a context entry from the first DomainError in the chain.
func ContextValue(err error, key string) (interface{}, bool) {
	var de *DomainError
	if !errors.As(err, &de) {
		return nil, false
	}
	v, ok := de.Context[key]
	return v, ok
}
