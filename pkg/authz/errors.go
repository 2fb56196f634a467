// Package authz error types.
//
// Authorization failures fall into four classes, each with its own type so
// callers can distinguish upstream construction bugs (MissingSectionError,
// ConsistencyError — fatal, never retried) from bad key material
// (KeyDerivationError) and explicitly unimplemented paths
// (UnsupportedError). This layer never retries anything; a failed signing
// call leaves the transaction in its original unauthorized state.
package authz

import (
	"encoding/hex"
	"fmt"
)

// MissingSectionError is returned when the signing context references a
// confidential section or builder metadata that the transaction does not
// contain. This indicates a construction-layer invariant violation and is
// unrecoverable.
type MissingSectionError struct {
	SectionHash [32]byte
	What        string // which paired artifact was missing
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("transaction has no %s for section %s",
		e.What, hex.EncodeToString(e.SectionHash[:8]))
}

// KeyDerivationError is returned when the supplied key material cannot
// yield a usable spend-authorizing secret (for example, it is view-only).
type KeyDerivationError struct {
	Reason string
}

func (e *KeyDerivationError) Error() string {
	return fmt.Sprintf("cannot derive spend authorizing key: %s", e.Reason)
}

// ConsistencyError is returned when the position-mapping invariant between
// builder metadata and the bundle's spend descriptors is violated. Like
// MissingSectionError it points at an upstream construction bug.
type ConsistencyError struct {
	Message string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("authorization consistency violation: %s", e.Message)
}

// UnsupportedError is returned when a requested capability is deliberately
// not implemented, such as hardware-device-backed signing.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported", e.Feature)
}
