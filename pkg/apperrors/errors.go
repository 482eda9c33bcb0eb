package apperrors

import (
	"errors"
	"strings"
)

// Kind classifies a failure so callers can react to it without parsing messages.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindAlreadyDeleted    Kind = "ALREADY_DELETED"
	KindAlreadyShared     Kind = "ALREADY_SHARED"
	KindAlreadyUnshared   Kind = "ALREADY_UNSHARED"
	KindForbidden         Kind = "FORBIDDEN"
	KindItemReviewDeleted Kind = "ITEM_REVIEW_DELETED"
	KindNotFavorite       Kind = "NOT_FAVORITE"
	KindInvalidInput      Kind = "INVALID_INPUT"
	KindStore             Kind = "STORE_ERROR"
)

// Sentinels for errors.Is. Matching compares Kind only.
var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrAlreadyDeleted    = &Error{Kind: KindAlreadyDeleted}
	ErrAlreadyShared     = &Error{Kind: KindAlreadyShared}
	ErrAlreadyUnshared   = &Error{Kind: KindAlreadyUnshared}
	ErrForbidden         = &Error{Kind: KindForbidden}
	ErrItemReviewDeleted = &Error{Kind: KindItemReviewDeleted}
	ErrNotFavorite       = &Error{Kind: KindNotFavorite}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrStore             = &Error{Kind: KindStore}
)

// Error is a typed failure carrying the operation that produced it.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

// New creates a typed error with a human readable message
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap attaches a kind to an underlying error
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Store classifies err as a store failure unless it already carries a kind.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return err
	}
	return Wrap(KindStore, op, err)
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.ToLower(strings.ReplaceAll(string(e.Kind), "_", " "))
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first typed error in the chain, or "" when there is none.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return ""
}

// Retryable reports whether the caller may retry the operation that returned err.
// Guard failures are expected outcomes and are never retryable.
func Retryable(err error) bool {
	return KindOf(err) == KindStore
}

// PublicMessage returns a message safe to show to end users.
func PublicMessage(err error) string {
	var typed *Error
	if !errors.As(err, &typed) || typed.Kind == KindStore {
		return "internal error"
	}
	if typed.Message != "" {
		return typed.Message
	}
	return strings.ToLower(strings.ReplaceAll(string(typed.Kind), "_", " "))
}
