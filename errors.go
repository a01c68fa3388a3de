package amqp

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error functions, wrapping keeps errors.Is/As working through the chain.
var (
	errorNew    = errors.New
	errorErrorf = errors.Errorf
	errorWrapf  = errors.Wrapf
)

// Framing failures. A *FramingError wraps exactly one of these.
var (
	ErrFrameNoSize   = errorNew("frame has no size")
	ErrFrameShort    = errorNew("frame is shorter than its declared size")
	ErrFrameEnd      = errorNew("frame end octet is not 0xce")
	ErrFrameType     = errorNew("unknown frame type")
	ErrUnknownMethod = errorNew("unknown method index")
)

// EncodeError is returned when an in-memory value has the wrong type or is
// out of range for its declared wire type.
type EncodeError struct {
	Type  Type
	Value interface{}
	Msg   string
}

func (e *EncodeError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("amqp: cannot encode %T(%v) as %s", e.Value, e.Value, e.Type)
	}
	return fmt.Sprintf("amqp: cannot encode %T(%v) as %s: %s", e.Value, e.Value, e.Type, e.Msg)
}

func encodeErr(t Type, v interface{}, format string, args ...interface{}) error {
	return errors.WithStack(&EncodeError{Type: t, Value: v, Msg: fmt.Sprintf(format, args...)})
}

// DecodeError is returned when the buffer is too short for the declared
// layout or carries an unknown type tag.
type DecodeError struct {
	Type Type
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("amqp: cannot decode %s: %s", e.Type, e.Msg)
}

func decodeErr(t Type, format string, args ...interface{}) error {
	return errors.WithStack(&DecodeError{Type: t, Msg: fmt.Sprintf(format, args...)})
}

// ValidationError names the command and field whose domain rule failed.
type ValidationError struct {
	Command string
	Field   string
	Msg     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("amqp: %s.%s: %s", e.Command, e.Field, e.Msg)
}

// FramingError reports a malformed envelope.
type FramingError struct {
	FrameType uint8
	Channel   uint16
	Err       error
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("amqp: framing error (type %d, channel %d): %v", e.FrameType, e.Channel, e.Err)
}

func (e *FramingError) Unwrap() error { return e.Err }

// UnmarshalError is returned when a nested codec fails while decoding the
// payload of an otherwise well-formed frame.
type UnmarshalError struct {
	FrameType uint8
	Channel   uint16
	Command   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("amqp: unmarshaling %s (type %d, channel %d): %v", e.Command, e.FrameType, e.Channel, e.Err)
}

func (e *UnmarshalError) Unwrap() error { return e.Err }

// Error is an AMQP reply code as carried by Connection.Close and
// Channel.Close. Hard errors close the connection, soft errors the channel.
type Error struct {
	Code        uint16
	Name        string
	Hard        bool
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("amqp: %d %s", e.Code, e.Name)
}

// Reply codes defined by AMQP 0-9-1.
var (
	ErrContentTooLarge = &Error{311, "CONTENT-TOO-LARGE", false,
		"The client attempted to transfer content larger than the server could accept."}
	ErrNoRoute = &Error{312, "NO-ROUTE", false,
		"A mandatory message could not be routed."}
	ErrNoConsumers = &Error{313, "NO-CONSUMERS", false,
		"An immediate message could not be delivered to any consumer."}
	ErrConnectionForced = &Error{320, "CONNECTION-FORCED", true,
		"An operator intervened to close the connection."}
	ErrInvalidPath = &Error{402, "INVALID-PATH", true,
		"The client tried to work with an unknown virtual host."}
	ErrAccessRefused = &Error{403, "ACCESS-REFUSED", false,
		"The client attempted to work with a server entity to which it has no access."}
	ErrNotFound = &Error{404, "NOT-FOUND", false,
		"The client attempted to work with a server entity that does not exist."}
	ErrResourceLocked = &Error{405, "RESOURCE-LOCKED", false,
		"The client attempted to work with a server entity to which it has no access because another client is working with it."}
	ErrPreconditionFailed = &Error{406, "PRECONDITION-FAILED", false,
		"The client requested a method that was not allowed because some precondition failed."}
	ErrFrameError = &Error{501, "FRAME-ERROR", true,
		"The sender sent a malformed frame that the recipient could not decode."}
	ErrSyntaxError = &Error{502, "SYNTAX-ERROR", true,
		"The sender sent a frame that contained illegal values for one or more fields."}
	ErrCommandInvalid = &Error{503, "COMMAND-INVALID", true,
		"The client sent an invalid sequence of frames."}
	ErrChannelError = &Error{504, "CHANNEL-ERROR", true,
		"The client attempted to work with a channel that had not been correctly opened."}
	ErrUnexpectedFrame = &Error{505, "UNEXPECTED-FRAME", true,
		"The peer sent a frame that was not expected."}
	ErrResourceError = &Error{506, "RESOURCE-ERROR", true,
		"The server could not complete the method because it lacked sufficient resources."}
	ErrNotAllowed = &Error{530, "NOT-ALLOWED", true,
		"The client tried to work with some entity in a manner that is prohibited by the server."}
	ErrNotImplemented = &Error{540, "NOT-IMPLEMENTED", true,
		"The client tried to use functionality that is not implemented in the server."}
	ErrInternalError = &Error{541, "INTERNAL-ERROR", true,
		"The server could not complete the method because of an internal error."}
)

var replyErrors = map[uint16]*Error{}

func init() {
	for _, e := range []*Error{
		ErrContentTooLarge, ErrNoRoute, ErrNoConsumers, ErrConnectionForced,
		ErrInvalidPath, ErrAccessRefused, ErrNotFound, ErrResourceLocked,
		ErrPreconditionFailed, ErrFrameError, ErrSyntaxError, ErrCommandInvalid,
		ErrChannelError, ErrUnexpectedFrame, ErrResourceError, ErrNotAllowed,
		ErrNotImplemented, ErrInternalError,
	} {
		replyErrors[e.Code] = e
	}
}

// ReplyError returns the error registered for an AMQP reply code, or nil
// when the code is not an error (200 reply-success included).
func ReplyError(code uint16) *Error {
	return replyErrors[code]
}
