package player

import "fmt"

// Error classifies a failure reported by the native player.
type Error int

const (
	ErrInvalidParameter Error = iota + 1
	ErrInternal
	ErrNotFound
	ErrCannotEmbed
	ErrUnknown
)

// Native error codes reported through Callbacks.OnError.
const (
	CodeInvalidParameter = 2
	CodeInternal         = 5
	CodeNotFound         = 100
	CodeCannotEmbed      = 101
	CodeCannotEmbedAlt   = 150
)

var nativeErrors = map[int]Error{
	CodeInvalidParameter: ErrInvalidParameter,
	CodeInternal:         ErrInternal,
	CodeNotFound:         ErrNotFound,
	CodeCannotEmbed:      ErrCannotEmbed,
	CodeCannotEmbedAlt:   ErrCannotEmbed,
}

// ErrorFromCode maps a native error code. Unrecognized codes map to ErrUnknown.
func ErrorFromCode(code int) Error {
	if e, ok := nativeErrors[code]; ok {
		return e
	}
	return ErrUnknown
}

// Error implements the error interface.
func (e Error) Error() string {
	return "player: " + e.String()
}

// String returns the error name.
func (e Error) String() string {
	switch e {
	case ErrInvalidParameter:
		return "invalid parameter"
	case ErrInternal:
		return "internal error"
	case ErrNotFound:
		return "video not found"
	case ErrCannotEmbed:
		return "video cannot be embedded"
	case ErrUnknown:
		return "unknown error"
	default:
		return fmt.Sprintf("error(%d)", int(e))
	}
}
