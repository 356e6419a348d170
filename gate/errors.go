package gate

import (
	"errors"

	"github.com/multiformats/go-multicodec"
)

// Kind is a stable failure category for programmatic error handling.
//
// Callers should branch on Kind (via errors.As or IsKind) rather than
// matching error strings; Error() text is for humans and may evolve.
type Kind string

const (
	// KindMalformedEnvelope: the leading multicodec tag itself did not parse.
	KindMalformedEnvelope Kind = "MalformedEnvelope"
	// KindUnsupportedCodec: the tag parsed, but no structural decoder is
	// registered for that codec. Error.Codec carries the identifier.
	KindUnsupportedCodec Kind = "UnsupportedCodec"
	// KindMalformedPayload: the codec is supported, but the payload is not a
	// complete, well-formed stream of items under it.
	KindMalformedPayload Kind = "MalformedPayload"
)

// Error is the gate's structured error type.
//
// RuleID is a stable identifier (e.g. DG-ENV-001) naming the violated rule.
// Codec is set for KindUnsupportedCodec and KindMalformedPayload.
type Error struct {
	Kind    Kind
	RuleID  string
	Codec   multicodec.Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// Codec returns the codec identifier attached to a structured gate error,
// or (0, false) if err carries none.
func Codec(err error) (multicodec.Code, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	if e.Kind != KindUnsupportedCodec && e.Kind != KindMalformedPayload {
		return 0, false
	}
	return e.Codec, true
}
