// Package args error types.
//
// Decoding a transaction kind can fail in exactly two ways, and the two are
// kept apart so callers can tell a broken payload from a well-formed payload
// carrying bad values:
//
//   - DecodeError: the payload cannot be structurally decoded (truncated,
//     wrong field count, bad tag byte). The wire format is versionless and
//     field-order significant, so this usually means an incompatible sender.
//   - InvalidValueError: the payload decoded, but a field failed domain
//     validation (bad address, unparsable amount, invalid identifier).
//
// Neither is retryable inside this layer; the caller must correct the input
// and issue a fresh decode.
package args

import "fmt"

// DecodeError is returned when a payload cannot be structurally decoded.
type DecodeError struct {
	Kind  string // transaction kind being decoded
	Cause error  // underlying deserialization error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Kind, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// InvalidValueError is returned when a decoded field fails domain
// validation.
type InvalidValueError struct {
	Kind  string // transaction kind being decoded
	Field string // field that failed validation
	Cause error  // underlying parse error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("decode %s: invalid %s: %v", e.Kind, e.Field, e.Cause)
}

func (e *InvalidValueError) Unwrap() error { return e.Cause }
