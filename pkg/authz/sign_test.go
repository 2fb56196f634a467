package authz

import (
	"bytes"
	"errors"
	mathrand "math/rand"
	"testing"

	"github.com/suffix-labs/masp-authz/pkg/tx"
	"github.com/suffix-labs/masp-authz/pkg/types"
)

// testSpendingKey returns signing-capable key material with a fixed seed.
func testSpendingKey() *types.ExtendedSpendingKey {
	k := &types.ExtendedSpendingKey{Depth: 1, ChildIndex: 9}
	for i := range k.ChainCode {
		k.ChainCode[i] = byte(i)
	}
	for i := range k.Authority.Ask {
		k.Authority.Ask[i] = byte(0x40 + i)
	}
	return k
}

func viewOnlyKey() *types.ExtendedSpendingKey {
	k := testSpendingKey()
	k.Authority.Ask = [32]uint8{}
	return k
}

type signFixture struct {
	tx     *tx.Tx
	hash   [32]byte
	params BuildParams
	xsk    *types.ExtendedSpendingKey
}

// buildShieldedTx assembles a transaction whose confidential bundle was
// "constructed" with the returned build parameters: each spend descriptor
// carries the randomized verification key derived from the same blinding
// factor the signing call will draw for it.
func buildShieldedTx(t *testing.T, seed int64, spendCount int, indexes []uint32) *signFixture {
	t.Helper()

	xsk := testSpendingKey()
	params, err := NewBuildParams(spendCount, 0, 1, nil, mathrand.New(mathrand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewBuildParams failed: %v", err)
	}
	ask, err := SpendAuthKeyFromExtended(xsk)
	if err != nil {
		t.Fatalf("SpendAuthKeyFromExtended failed: %v", err)
	}

	bundle := &tx.Bundle{
		Version:           2,
		ConsensusBranchID: 0xa675ff9e,
		ExpiryHeight:      500,
		ValueBalance:      -1000,
	}
	for i := range bundle.Anchor {
		bundle.Anchor[i] = 0x5a
	}
	for pos := 0; pos < spendCount; pos++ {
		alpha, err := params.SpendAlpha(pos)
		if err != nil {
			t.Fatalf("SpendAlpha(%d) failed: %v", pos, err)
		}
		rk, err := RandomizedVerificationKey(ask, alpha)
		if err != nil {
			t.Fatalf("RandomizedVerificationKey failed: %v", err)
		}
		var sp tx.SpendDescription
		sp.Rk = rk
		sp.CV[0] = byte(pos + 1)
		sp.Nullifier[0] = byte(pos + 0x10)
		sp.ZKProof[0] = byte(pos + 0x20)
		bundle.Spends = append(bundle.Spends, sp)
	}
	var out tx.OutputDescription
	out.Cmu[0] = 0x01
	out.EphemeralKey[0] = 0x02
	out.EncCiphertext[0] = 0x03
	out.OutCiphertext[0] = 0x04
	out.ZKProof[0] = 0x05
	bundle.Outputs = append(bundle.Outputs, out)

	section := &tx.MaspTxSection{Bundle: bundle}
	h := section.Hash()

	txn := &tx.Tx{ChainID: "test-chain"}
	txn.AddSection(&tx.DataSection{Data: []byte("tx data")})
	txn.AddSection(section)
	txn.AddSection(&tx.MaspBuilderSection{
		Target:   h,
		Metadata: &tx.BuilderMetadata{SpendIndexes: indexes},
	})

	return &signFixture{tx: txn, hash: h, params: params, xsk: xsk}
}

// authorizedBundle finds the confidential bundle after signing.
func authorizedBundle(t *testing.T, txn *tx.Tx) *tx.Bundle {
	t.Helper()
	for _, s := range txn.Sections {
		if m, ok := s.(*tx.MaspTxSection); ok {
			return m.Bundle
		}
	}
	t.Fatal("no confidential section in transaction")
	return nil
}

// sectionHashes snapshots the identity of every section.
func sectionHashes(txn *tx.Tx) [][32]byte {
	out := make([][32]byte, len(txn.Sections))
	for i, s := range txn.Sections {
		out[i] = s.Hash()
	}
	return out
}

func TestSignAuthorizesEverySpend(t *testing.T) {
	// Serialized order deliberately differs from construction order.
	f := buildShieldedTx(t, 1, 3, []uint32{2, 0, 1})

	if err := Sign(f.tx, &SigningTxData{ShieldedHash: &f.hash}, f.xsk, f.params); err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, ok := f.tx.MaspSection(f.hash); ok {
		t.Error("pre-authorization section still present after signing")
	}
	b := authorizedBundle(t, f.tx)
	if !b.Authorized() {
		t.Error("replacement bundle not authorized")
	}

	sighash := SignatureHash(b, SignableInputShielded)
	for i := range b.Spends {
		sp := &b.Spends[i]
		if sp.SpendAuthSig == nil {
			t.Fatalf("spend %d has no signature", i)
		}
		if !VerifySpendSig(sp.Rk, sighash, *sp.SpendAuthSig) {
			t.Errorf("spend %d signature does not verify under its descriptor key", i)
		}
		if sp.ZKProof[0] != byte(i+0x20) {
			t.Errorf("spend %d proof modified by signing", i)
		}
	}

	// The builder metadata and unrelated sections stay in place.
	if _, ok := f.tx.MaspBuilderFor(f.hash); !ok {
		t.Error("builder metadata removed by signing")
	}
	if _, ok := f.tx.Sections[0].(*tx.DataSection); !ok {
		t.Error("data section disturbed by signing")
	}
}

func TestSignWithoutShieldedComponentIsNoOp(t *testing.T) {
	f := buildShieldedTx(t, 1, 1, []uint32{0})
	before := sectionHashes(f.tx)

	if err := Sign(f.tx, nil, f.xsk, f.params); err != nil {
		t.Fatalf("Sign with nil signing data failed: %v", err)
	}
	if err := Sign(f.tx, &SigningTxData{}, f.xsk, f.params); err != nil {
		t.Fatalf("Sign with nil shielded hash failed: %v", err)
	}

	after := sectionHashes(f.tx)
	if len(before) != len(after) {
		t.Fatal("section count changed")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("section %d changed", i)
		}
	}
}

func TestSignMissingSections(t *testing.T) {
	f := buildShieldedTx(t, 1, 1, []uint32{0})

	wrong := f.hash
	wrong[0] ^= 0xff
	err := Sign(f.tx, &SigningTxData{ShieldedHash: &wrong}, f.xsk, f.params)
	var mse *MissingSectionError
	if !errors.As(err, &mse) {
		t.Fatalf("got %v, want MissingSectionError", err)
	}

	// Bundle present but no builder metadata for it.
	txn := &tx.Tx{ChainID: "test-chain"}
	section := &tx.MaspTxSection{Bundle: authorizedBundle(t, f.tx).Clone()}
	h := section.Hash()
	txn.AddSection(section)
	err = Sign(txn, &SigningTxData{ShieldedHash: &h}, f.xsk, f.params)
	if !errors.As(err, &mse) {
		t.Fatalf("got %v, want MissingSectionError", err)
	}
	if mse.What != "builder metadata" {
		t.Errorf("What = %q, want %q", mse.What, "builder metadata")
	}
}

func TestSignMetadataConsistency(t *testing.T) {
	cases := []struct {
		name    string
		spends  int
		indexes []uint32
	}{
		{"too few entries", 2, []uint32{0}},
		{"duplicate position", 2, []uint32{1, 1}},
		{"position out of range", 2, []uint32{0, 5}},
		{"too many entries", 1, []uint32{0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := buildShieldedTx(t, 1, tc.spends, tc.indexes)
			err := Sign(f.tx, &SigningTxData{ShieldedHash: &f.hash}, f.xsk, f.params)
			var ce *ConsistencyError
			if !errors.As(err, &ce) {
				t.Fatalf("got %v, want ConsistencyError", err)
			}
		})
	}
}

func TestSignFailureLeavesTxUntouched(t *testing.T) {
	f := buildShieldedTx(t, 1, 2, []uint32{0})
	before := sectionHashes(f.tx)

	if err := Sign(f.tx, &SigningTxData{ShieldedHash: &f.hash}, f.xsk, f.params); err == nil {
		t.Fatal("expected a consistency failure")
	}

	after := sectionHashes(f.tx)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("section %d changed by a failed signing call", i)
		}
	}
	b, ok := f.tx.MaspSection(f.hash)
	if !ok {
		t.Fatal("original section missing after failed signing call")
	}
	for i := range b.Spends {
		if b.Spends[i].SpendAuthSig != nil {
			t.Errorf("spend %d gained a signature from a failed call", i)
		}
	}
}

func TestSignRejectsUnusableKeys(t *testing.T) {
	f := buildShieldedTx(t, 1, 1, []uint32{0})
	before := sectionHashes(f.tx)

	var kde *KeyDerivationError
	err := Sign(f.tx, &SigningTxData{ShieldedHash: &f.hash}, nil, f.params)
	if !errors.As(err, &kde) {
		t.Fatalf("nil key: got %v, want KeyDerivationError", err)
	}
	err = Sign(f.tx, &SigningTxData{ShieldedHash: &f.hash}, viewOnlyKey(), f.params)
	if !errors.As(err, &kde) {
		t.Fatalf("view-only key: got %v, want KeyDerivationError", err)
	}

	after := sectionHashes(f.tx)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("section %d changed by a rejected signing call", i)
		}
	}
}

func TestIndependentSigningsAreUnlinkable(t *testing.T) {
	a := buildShieldedTx(t, 1, 2, []uint32{0, 1})
	b := buildShieldedTx(t, 2, 2, []uint32{0, 1})

	if err := Sign(a.tx, &SigningTxData{ShieldedHash: &a.hash}, a.xsk, a.params); err != nil {
		t.Fatalf("first signing failed: %v", err)
	}
	if err := Sign(b.tx, &SigningTxData{ShieldedHash: &b.hash}, b.xsk, b.params); err != nil {
		t.Fatalf("second signing failed: %v", err)
	}

	ba := authorizedBundle(t, a.tx)
	bb := authorizedBundle(t, b.tx)
	for i := range ba.Spends {
		sa, sb := &ba.Spends[i], &bb.Spends[i]

		// Transfer content is identical across the two submissions.
		if sa.Nullifier != sb.Nullifier || sa.CV != sb.CV || sa.ZKProof != sb.ZKProof {
			t.Errorf("spend %d content differs between submissions", i)
		}

		// Randomized keys and signatures are fresh per submission, and each
		// signature only verifies under its own submission's key.
		if sa.Rk == sb.Rk {
			t.Errorf("spend %d reused a randomized verification key", i)
		}
		if *sa.SpendAuthSig == *sb.SpendAuthSig {
			t.Errorf("spend %d reused a signature", i)
		}
		if VerifySpendSig(sb.Rk, SignatureHash(ba, SignableInputShielded), *sa.SpendAuthSig) {
			t.Errorf("spend %d signature verifies under the other submission's key", i)
		}
	}
	if ba.ValueBalance != bb.ValueBalance {
		t.Error("value balance differs between submissions")
	}
	if !bytes.Equal(ba.Outputs[0].EncCiphertext[:], bb.Outputs[0].EncCiphertext[:]) {
		t.Error("output ciphertext differs between submissions")
	}
}

func TestSignTwiceFromSameConstruction(t *testing.T) {
	// Two signing calls against the same construction parameters produce the
	// same signatures: the blinding factors are cached per descriptor.
	a := buildShieldedTx(t, 7, 2, []uint32{1, 0})
	b := buildShieldedTx(t, 7, 2, []uint32{1, 0})

	if err := Sign(a.tx, &SigningTxData{ShieldedHash: &a.hash}, a.xsk, a.params); err != nil {
		t.Fatalf("first signing failed: %v", err)
	}
	if err := Sign(b.tx, &SigningTxData{ShieldedHash: &b.hash}, b.xsk, b.params); err != nil {
		t.Fatalf("second signing failed: %v", err)
	}

	ba := authorizedBundle(t, a.tx)
	bb := authorizedBundle(t, b.tx)
	for i := range ba.Spends {
		if *ba.Spends[i].SpendAuthSig != *bb.Spends[i].SpendAuthSig {
			t.Errorf("spend %d signatures diverge for identical parameters", i)
		}
	}
}
