package domain

import "errors"

// Kind classifies a domain failure. The API boundary maps each kind to a
// single HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindConflict
	KindInvalidCredentials
	KindUnauthorized
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a classified failure whose Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrUserExists         = &Error{Kind: KindConflict, Message: "username already taken"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrInvalidToken       = &Error{Kind: KindUnauthorized, Message: "invalid or expired token"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "access forbidden"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "user not found"}
	ErrItemNotFound       = &Error{Kind: KindNotFound, Message: "item not found"}
	ErrReviewNotFound     = &Error{Kind: KindNotFound, Message: "review not found"}
	ErrCommentNotFound    = &Error{Kind: KindNotFound, Message: "comment not found"}
)

// BadRequest builds a KindBadRequest error carrying msg.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// KindOf reports the kind of err, or KindInternal when err is not a
// domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
