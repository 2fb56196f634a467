package authz

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func scalarOf(v uint32) *secp256k1.ModNScalar {
	s := new(secp256k1.ModNScalar)
	s.SetInt(v)
	return s
}

func TestSpendSigRoundTrip(t *testing.T) {
	ask, err := SpendAuthKeyFromExtended(testSpendingKey())
	if err != nil {
		t.Fatalf("key derivation failed: %v", err)
	}
	alpha := scalarOf(7)
	sighash := [32]byte{0xde, 0xad, 0xbe, 0xef}

	sig, err := SpendSig(ask, alpha, sighash)
	if err != nil {
		t.Fatalf("SpendSig failed: %v", err)
	}
	rk, err := RandomizedVerificationKey(ask, alpha)
	if err != nil {
		t.Fatalf("RandomizedVerificationKey failed: %v", err)
	}

	if !VerifySpendSig(rk, sighash, sig) {
		t.Error("signature does not verify under its verification key")
	}

	// Any change to the signed content must break verification.
	tampered := sighash
	tampered[0] ^= 0x01
	if VerifySpendSig(rk, tampered, sig) {
		t.Error("signature verifies over tampered content")
	}

	// A signature is bound to its blinding factor.
	otherRk, err := RandomizedVerificationKey(ask, scalarOf(8))
	if err != nil {
		t.Fatalf("RandomizedVerificationKey failed: %v", err)
	}
	if VerifySpendSig(otherRk, sighash, sig) {
		t.Error("signature verifies under a differently blinded key")
	}
}

func TestVerifySpendSigRejectsGarbage(t *testing.T) {
	ask, err := SpendAuthKeyFromExtended(testSpendingKey())
	if err != nil {
		t.Fatalf("key derivation failed: %v", err)
	}
	rk, err := RandomizedVerificationKey(ask, scalarOf(7))
	if err != nil {
		t.Fatalf("RandomizedVerificationKey failed: %v", err)
	}

	if VerifySpendSig([33]byte{}, [32]byte{1}, [64]byte{2}) {
		t.Error("garbage key accepted")
	}
	if VerifySpendSig(rk, [32]byte{1}, [64]byte{}) {
		t.Error("zero signature accepted")
	}
}

func TestSpendSigDistinctAlphasUnlinkable(t *testing.T) {
	ask, err := SpendAuthKeyFromExtended(testSpendingKey())
	if err != nil {
		t.Fatalf("key derivation failed: %v", err)
	}
	sighash := [32]byte{0x11}

	sig7, err := SpendSig(ask, scalarOf(7), sighash)
	if err != nil {
		t.Fatalf("SpendSig failed: %v", err)
	}
	sig8, err := SpendSig(ask, scalarOf(8), sighash)
	if err != nil {
		t.Fatalf("SpendSig failed: %v", err)
	}
	if sig7 == sig8 {
		t.Error("distinct blinding factors produced identical signatures")
	}
}
