package types

import (
	"fmt"

	"github.com/near/borsh-go"
)

// Shielded key material comes over the wire as Borsh-encoded byte blobs
// rather than bech32 strings, since extended keys exceed the bech32 length
// limit. Two distinct types keep the two lifecycle states apart:
//
//   - PseudoExtendedKey is the decode-time product. It always carries the
//     viewing part; its spend authority, if present on the wire, is
//     neutralized during argument decoding so a decoded descriptor can never
//     be mistaken for something that can sign.
//   - ExtendedSpendingKey carries a real spend-authorizing seed and is
//     supplied by the caller directly to the authorization step, for the
//     duration of one signing call only.

// FullViewingKey is the viewing portion of an extended key: the spend
// verification key, nullifier deriving key and outgoing viewing key.
type FullViewingKey struct {
	Ak  [32]uint8 // spend verification key
	Nk  [32]uint8 // nullifier deriving key
	Ovk [32]uint8 // outgoing viewing key
}

// ExtendedViewingKey is a ZIP 32 style extended viewing key: derivation
// metadata plus the full viewing key and diversifier key.
type ExtendedViewingKey struct {
	Depth      uint8
	ChildIndex uint32
	ChainCode  [32]uint8
	Fvk        FullViewingKey
	Dk         [32]uint8 // diversifier key
}

// SpendAuthority is the secret portion of an extended key. An all-zero Ask
// is the neutral value: view-only, unable to authorize spends.
type SpendAuthority struct {
	Ask [32]uint8 // spend authorizing seed
	Nsk [32]uint8 // proof authorizing seed
}

// PseudoExtendedKey is an extended key reference as it appears inside a
// decoded argument descriptor. See the package comment on key states.
type PseudoExtendedKey struct {
	View  ExtendedViewingKey
	Spend *SpendAuthority // nil or neutralized after decoding
}

// PseudoExtendedKeyFromBytes decodes the Borsh encoding of a pseudo extended
// key.
func PseudoExtendedKeyFromBytes(b []byte) (*PseudoExtendedKey, error) {
	var k PseudoExtendedKey
	if err := borsh.Deserialize(&k, b); err != nil {
		return nil, fmt.Errorf("invalid extended key encoding: %w", err)
	}
	return &k, nil
}

// Neutralize replaces any spend authority with the neutral value. Called by
// the shielded-transfer decoder so that decoded descriptors are view-only by
// construction; real authority is supplied separately at signing time.
func (k *PseudoExtendedKey) Neutralize() {
	k.Spend = &SpendAuthority{}
}

// Bytes returns the Borsh encoding of the key.
func (k *PseudoExtendedKey) Bytes() ([]byte, error) {
	return borsh.Serialize(*k)
}

// ExtendedSpendingKey is signing-capable key material: the extended viewing
// metadata plus the real spend authority. Never held beyond one signing
// call, never logged.
type ExtendedSpendingKey struct {
	Depth      uint8
	ChildIndex uint32
	ChainCode  [32]uint8
	Authority  SpendAuthority
	Ovk        [32]uint8
	Dk         [32]uint8
}

// ExtendedSpendingKeyFromBytes decodes the Borsh encoding of an extended
// spending key.
func ExtendedSpendingKeyFromBytes(b []byte) (*ExtendedSpendingKey, error) {
	var k ExtendedSpendingKey
	if err := borsh.Deserialize(&k, b); err != nil {
		return nil, fmt.Errorf("invalid spending key encoding: %w", err)
	}
	return &k, nil
}

// IsViewOnly reports whether the key carries only the neutral spend
// authority and therefore cannot produce spend signatures.
func (k *ExtendedSpendingKey) IsViewOnly() bool {
	return k.Authority.Ask == [32]uint8{}
}
