// Package types implements the primitive value encodings used by transaction
// argument descriptors: bech32 addresses and keys, denominated token amounts,
// gas limits, chain identifiers and IBC channel/port identifiers.
//
// Every parser in this package fails fast on malformed input and returns a
// typed value that is immutable after construction. The argument decoders in
// pkg/args treat these as opaque parse/validate functions; a parse failure
// there surfaces as an InvalidValueError naming the offending field.
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
)

// Bech32 human-readable prefixes for the string encodings accepted by this
// layer. The prefix identifies the value kind; the checksum catches
// transcription errors before any field reaches a transaction.
const (
	AddressHRP        = "tnam"   // transparent account address
	PaymentAddressHRP = "znam"   // shielded payment address
	PublicKeyHRP      = "tpknam" // account public key
)

// Raw byte lengths of the decoded payloads.
const (
	addressRawLen        = 21 // discriminant byte + 20-byte hash
	paymentAddressRawLen = 43 // 11-byte diversifier + 32-byte transmission key
	publicKeyRawLen      = 33 // discriminant byte + 32-byte key
)

// Address is a transparent account address (established, implicit or
// internal). The discriminant byte distinguishes the three forms; this layer
// never inspects it beyond the length check.
type Address struct {
	raw [addressRawLen]byte
}

// ParseAddress decodes a bech32 address string. The HRP must be exactly
// AddressHRP and the payload exactly 21 bytes.
func ParseAddress(s string) (Address, error) {
	raw, err := decodeBech32(s, AddressHRP, addressRawLen)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	var a Address
	copy(a.raw[:], raw)
	return a, nil
}

// AddressFromBytes builds an address from its raw 21-byte payload.
func AddressFromBytes(raw []byte) (Address, error) {
	if len(raw) != addressRawLen {
		return Address{}, fmt.Errorf("invalid address payload: want %d bytes, got %d", addressRawLen, len(raw))
	}
	var a Address
	copy(a.raw[:], raw)
	return a, nil
}

// String re-encodes the address in its canonical bech32 form.
func (a Address) String() string {
	return encodeBech32(AddressHRP, a.raw[:])
}

// Bytes returns the raw 21-byte payload.
func (a Address) Bytes() []byte {
	out := make([]byte, addressRawLen)
	copy(out, a.raw[:])
	return out
}

// PaymentAddress is a shielded destination: a diversifier plus the
// diversified transmission key the sender encrypts the note to.
type PaymentAddress struct {
	raw [paymentAddressRawLen]byte
}

// ParsePaymentAddress decodes a bech32 payment address string.
func ParsePaymentAddress(s string) (PaymentAddress, error) {
	raw, err := decodeBech32(s, PaymentAddressHRP, paymentAddressRawLen)
	if err != nil {
		return PaymentAddress{}, fmt.Errorf("invalid payment address %q: %w", s, err)
	}
	var p PaymentAddress
	copy(p.raw[:], raw)
	return p, nil
}

// PaymentAddressFromBytes builds a payment address from its raw 43-byte
// payload.
func PaymentAddressFromBytes(raw []byte) (PaymentAddress, error) {
	if len(raw) != paymentAddressRawLen {
		return PaymentAddress{}, fmt.Errorf("invalid payment address payload: want %d bytes, got %d",
			paymentAddressRawLen, len(raw))
	}
	var p PaymentAddress
	copy(p.raw[:], raw)
	return p, nil
}

// String re-encodes the payment address in its canonical bech32 form.
func (p PaymentAddress) String() string {
	return encodeBech32(PaymentAddressHRP, p.raw[:])
}

// Bytes returns the raw 43-byte payload.
func (p PaymentAddress) Bytes() []byte {
	out := make([]byte, paymentAddressRawLen)
	copy(out, p.raw[:])
	return out
}

// Public key scheme discriminants (first payload byte).
const (
	SchemeEd25519   uint8 = 0x00
	SchemeSecp256k1 uint8 = 0x01
)

// PublicKey is an account public key: a scheme discriminant followed by the
// 32-byte key material. The signature scheme itself is outside this layer.
type PublicKey struct {
	raw [publicKeyRawLen]byte
}

// ParsePublicKey decodes a bech32 public key string and checks the scheme
// discriminant.
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := decodeBech32(s, PublicKeyHRP, publicKeyRawLen)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid public key %q: %w", s, err)
	}
	if raw[0] != SchemeEd25519 && raw[0] != SchemeSecp256k1 {
		return PublicKey{}, fmt.Errorf("invalid public key %q: unknown scheme 0x%02x", s, raw[0])
	}
	var pk PublicKey
	copy(pk.raw[:], raw)
	return pk, nil
}

// PublicKeyFromBytes builds a public key from its raw 33-byte payload.
func PublicKeyFromBytes(raw []byte) (PublicKey, error) {
	if len(raw) != publicKeyRawLen {
		return PublicKey{}, fmt.Errorf("invalid public key payload: want %d bytes, got %d",
			publicKeyRawLen, len(raw))
	}
	if raw[0] != SchemeEd25519 && raw[0] != SchemeSecp256k1 {
		return PublicKey{}, fmt.Errorf("invalid public key payload: unknown scheme 0x%02x", raw[0])
	}
	var pk PublicKey
	copy(pk.raw[:], raw)
	return pk, nil
}

// String re-encodes the public key in its canonical bech32 form.
func (pk PublicKey) String() string {
	return encodeBech32(PublicKeyHRP, pk.raw[:])
}

// Scheme returns the scheme discriminant byte.
func (pk PublicKey) Scheme() uint8 {
	return pk.raw[0]
}

// Bytes returns the raw 33-byte payload.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, publicKeyRawLen)
	copy(out, pk.raw[:])
	return out
}

// EthAddress is a 20-byte Ethereum address used by bridge transfers.
type EthAddress struct {
	raw [20]byte
}

// ParseEthAddress decodes a 0x-prefixed 40-digit hex address.
func ParseEthAddress(s string) (EthAddress, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return EthAddress{}, fmt.Errorf("invalid eth address %q: missing 0x prefix", s)
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return EthAddress{}, fmt.Errorf("invalid eth address %q: %w", s, err)
	}
	if len(raw) != 20 {
		return EthAddress{}, fmt.Errorf("invalid eth address %q: want 20 bytes, got %d", s, len(raw))
	}
	var a EthAddress
	copy(a.raw[:], raw)
	return a, nil
}

// String returns the 0x-prefixed lowercase hex form.
func (a EthAddress) String() string {
	return "0x" + hex.EncodeToString(a.raw[:])
}

// ChainID is a caller-supplied opaque chain identifier, recorded verbatim.
type ChainID string

// decodeBech32 decodes s, checks the HRP and converts the 5-bit groups back
// to the raw byte payload of the expected length.
func decodeBech32(s, wantHRP string, wantLen int) ([]byte, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return nil, err
	}
	if hrp != wantHRP {
		return nil, fmt.Errorf("wrong prefix %q, want %q", hrp, wantHRP)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}
	if len(raw) != wantLen {
		return nil, fmt.Errorf("want %d payload bytes, got %d", wantLen, len(raw))
	}
	return raw, nil
}

// encodeBech32 is the inverse of decodeBech32. Encoding a fixed-length
// payload cannot fail, so errors collapse to a panic that would indicate a
// bug in this package rather than bad input.
func encodeBech32(hrp string, raw []byte) string {
	conv, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("bech32 conversion of fixed payload failed: %v", err))
	}
	s, err := bech32.Encode(hrp, conv)
	if err != nil {
		panic(fmt.Sprintf("bech32 encoding of fixed payload failed: %v", err))
	}
	return s
}
