package glkit

import "errors"

// Sentinel errors. Every error returned by glkit wraps exactly one of these.
var (
	// ErrInvalidArgument reports a bad argument: a non-positive dimension,
	// an oversized initial payload, a mismatched element size.
	ErrInvalidArgument = errors.New("glkit: invalid argument")

	// ErrInvalidType reports a value of the wrong kind, such as an unknown
	// vertex component type or a nil attachment.
	ErrInvalidType = errors.New("glkit: invalid type")

	// ErrInvalidState reports an operation that is not legal in the object's
	// current state, such as writing to an unmapped buffer.
	ErrInvalidState = errors.New("glkit: invalid state")

	// ErrOverflow reports a write or read outside a buffer's storage.
	ErrOverflow = errors.New("glkit: buffer overflow")

	// ErrNotFound reports a missing uniform, uniform block or attachment.
	ErrNotFound = errors.New("glkit: not found")

	// ErrDriver reports a rejection by the driver. The message carries the
	// driver's info log or status code.
	ErrDriver = errors.New("glkit: driver error")

	// ErrNotImplemented reports a feature that is known but not supported.
	ErrNotImplemented = errors.New("glkit: not implemented")

	// ErrDestroyed reports use of an object after Destroy.
	ErrDestroyed = errors.New("glkit: object destroyed")

	// ErrNilDriver is returned by NewDevice when no driver is given.
	ErrNilDriver = errors.New("glkit: nil driver")
)
