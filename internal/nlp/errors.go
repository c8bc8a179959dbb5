package nlp

import (
	"errors"
)

// Kind separates failures the CLI reports differently.
type Kind string

const (
	KindValidation Kind = "validation"
	KindParse      Kind = "parse"
	KindNotFound   Kind = "not_found"
	KindExecution  Kind = "execution"
)

// Sentinels matching each Kind, for use with errors.Is.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnparseable     = errors.New("could not parse command")
	ErrCommandNotFound = errors.New("command not found")
	ErrExecutionFailed = errors.New("command failed")
)

// Error is returned by every stage of the pipeline. Reason is safe to show
// to the user as-is; it never contains more than a bounded prefix of the input.
type Error struct {
	Kind    Kind
	Reason  string
	Pattern string // label of the deny pattern that matched, validation only
	Hint    string
	Err     error
}

func (e *Error) Error() string {
	return e.Reason
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindValidation:
		return ErrInvalidInput
	case KindParse:
		return ErrUnparseable
	case KindNotFound:
		return ErrCommandNotFound
	case KindExecution:
		return ErrExecutionFailed
	default:
		return nil
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// HintOf returns the hint attached to err, if any.
func HintOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Hint
	}
	return ""
}
