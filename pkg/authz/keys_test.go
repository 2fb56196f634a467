package authz

import (
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func TestSpendAuthKeyDerivationIsDeterministic(t *testing.T) {
	k1, err := SpendAuthKeyFromExtended(testSpendingKey())
	if err != nil {
		t.Fatalf("first derivation failed: %v", err)
	}
	k2, err := SpendAuthKeyFromExtended(testSpendingKey())
	if err != nil {
		t.Fatalf("second derivation failed: %v", err)
	}

	alpha := new(secp256k1.ModNScalar)
	alpha.SetInt(5)
	rk1, err := RandomizedVerificationKey(k1, alpha)
	if err != nil {
		t.Fatalf("RandomizedVerificationKey failed: %v", err)
	}
	rk2, err := RandomizedVerificationKey(k2, alpha)
	if err != nil {
		t.Fatalf("RandomizedVerificationKey failed: %v", err)
	}
	if rk1 != rk2 {
		t.Error("identical key material derived different signing keys")
	}
}

func TestSpendAuthKeyDependsOnSeed(t *testing.T) {
	k1, err := SpendAuthKeyFromExtended(testSpendingKey())
	if err != nil {
		t.Fatalf("derivation failed: %v", err)
	}
	other := testSpendingKey()
	other.Authority.Ask[0] ^= 0x01
	k2, err := SpendAuthKeyFromExtended(other)
	if err != nil {
		t.Fatalf("derivation failed: %v", err)
	}

	alpha := new(secp256k1.ModNScalar)
	alpha.SetInt(5)
	rk1, _ := RandomizedVerificationKey(k1, alpha)
	rk2, _ := RandomizedVerificationKey(k2, alpha)
	if rk1 == rk2 {
		t.Error("different seeds derived the same signing key")
	}
}

func TestSpendAuthKeyFromExtendedRejections(t *testing.T) {
	var kde *KeyDerivationError

	_, err := SpendAuthKeyFromExtended(nil)
	if !errors.As(err, &kde) {
		t.Errorf("nil key: got %v, want KeyDerivationError", err)
	}

	_, err = SpendAuthKeyFromExtended(viewOnlyKey())
	if !errors.As(err, &kde) {
		t.Errorf("view-only key: got %v, want KeyDerivationError", err)
	}
}
