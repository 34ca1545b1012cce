package domain

import "errors"

// ErrorKind is the closed set of failure classes this service produces.
// Callers match on kind via errors.Is so retry policy can differ per class.
type ErrorKind string

const (
	KindNetworkFailure    ErrorKind = "network_failure"
	KindProcessorRejected ErrorKind = "processor_rejected"
	KindDecodeFailure     ErrorKind = "decode_failure"
	KindConfigMissing     ErrorKind = "config_missing"
	KindBrokerUnavailable ErrorKind = "broker_unavailable"
)

// Error carries a failure kind plus a human-readable message and the wrapped
// cause. errors.Is(err, ErrNetworkFailure) matches any error of that kind
// anywhere in the chain.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	case e.Message != "":
		return e.Message
	case e.Cause != nil:
		return e.Cause.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports kind equality against the bare sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Message == "" && t.Cause == nil
}

var (
	ErrNetworkFailure    = &Error{Kind: KindNetworkFailure}
	ErrProcessorRejected = &Error{Kind: KindProcessorRejected}
	ErrDecodeFailure     = &Error{Kind: KindDecodeFailure}
	ErrConfigMissing     = &Error{Kind: KindConfigMissing}
	ErrBrokerUnavailable = &Error{Kind: KindBrokerUnavailable}
)

// ErrUnknownEvent marks a well-formed event envelope whose tag no consumer
// recognizes. Not a failure: the consumer logs and ignores it.
var ErrUnknownEvent = errors.New("unknown event tag")
