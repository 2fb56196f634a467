package authz

import (
	"fmt"

	"github.com/suffix-labs/masp-authz/pkg/tx"
	"github.com/suffix-labs/masp-authz/pkg/types"
)

// SigningTxData is the signing context produced by transaction
// construction. ShieldedHash, when set, is the section hash of the
// transaction's confidential bundle; a nil hash means the transaction has
// no shielded component.
type SigningTxData struct {
	Owner        *types.Address
	PublicKeys   []types.PublicKey
	FeePayer     *types.PublicKey
	ShieldedHash *[32]byte
}

// Sign authorizes a transaction's confidential component in place.
//
// The engine locates the confidential section named by the signing context,
// recovers the serialized position of every spend descriptor from the
// builder metadata, computes the shielded signing hash over the canonical
// unauthorized form, derives the spend-authorizing secret from xsk and
// produces one signature per descriptor, each under a distinct blinding
// factor drawn from bparams. The signatures are then mapped into a copy of
// the bundle, the copy is frozen, and the transaction's old confidential
// section is swapped for the authorized one. Proofs and all other sections
// are untouched.
//
// A transaction without a shielded component is a no-op, not an error. On
// any failure the transaction is left exactly as it was: all staging
// happens on clones, and the section swap is the last step.
func Sign(t *tx.Tx, signingData *SigningTxData, xsk *types.ExtendedSpendingKey, bparams BuildParams) error {
	if signingData == nil || signingData.ShieldedHash == nil {
		return nil
	}
	shieldedHash := *signingData.ShieldedHash

	bundle, ok := t.MaspSection(shieldedHash)
	if !ok {
		return &MissingSectionError{SectionHash: shieldedHash, What: "confidential section"}
	}
	metadata, ok := t.MaspBuilderFor(shieldedHash)
	if !ok {
		return &MissingSectionError{SectionHash: shieldedHash, What: "builder metadata"}
	}

	positions, err := invertSpendMetadata(metadata, len(bundle.Spends))
	if err != nil {
		return err
	}

	sighash := SignatureHash(bundle, SignableInputShielded)

	ask, err := SpendAuthKeyFromExtended(xsk)
	if err != nil {
		return err
	}
	defer ask.Zero()

	authorizations := make(map[int][tx.SpendAuthSigLen]byte, len(positions))
	for _, pos := range positions {
		alpha, err := bparams.SpendAlpha(pos)
		if err != nil {
			return err
		}
		sig, err := SpendSig(ask, alpha, sighash)
		if err != nil {
			return err
		}
		authorizations[pos] = sig
	}
	if len(authorizations) != len(bundle.Spends) {
		return &ConsistencyError{Message: fmt.Sprintf(
			"produced %d signatures for %d spend descriptors",
			len(authorizations), len(bundle.Spends))}
	}

	staged := mapAuthorization(bundle.Clone(), authorizations)
	for i := range staged.Spends {
		if staged.Spends[i].SpendAuthSig == nil {
			return &ConsistencyError{Message: fmt.Sprintf(
				"spend descriptor %d not covered by the authorization map", i)}
		}
	}
	authorized, err := staged.Freeze()
	if err != nil {
		return &ConsistencyError{Message: err.Error()}
	}

	if !t.RemoveMaspSection(shieldedHash) {
		return &MissingSectionError{SectionHash: shieldedHash, What: "confidential section"}
	}
	t.AddSection(&tx.MaspTxSection{Bundle: authorized})
	return nil
}

// invertSpendMetadata recovers the serialized position of every spend
// descriptor from the construction-order position map. The metadata is
// required to be dense from zero: it describes exactly the descriptors that
// were added, with no gaps. That is an invariant owed by the construction
// layer, so it is checked loudly here instead of being left to silently
// truncate the scan.
func invertSpendMetadata(metadata *tx.BuilderMetadata, spendCount int) ([]int, error) {
	positions := make([]int, 0, spendCount)
	seen := make([]bool, spendCount)

	for i := 0; ; i++ {
		pos, ok := metadata.SpendIndex(i)
		if !ok {
			break
		}
		if pos < 0 || pos >= spendCount {
			return nil, &ConsistencyError{Message: fmt.Sprintf(
				"metadata maps construction index %d to position %d, outside %d descriptors",
				i, pos, spendCount)}
		}
		if seen[pos] {
			return nil, &ConsistencyError{Message: fmt.Sprintf(
				"metadata maps two construction indexes to position %d", pos)}
		}
		seen[pos] = true
		positions = append(positions, pos)
	}

	if len(positions) != spendCount {
		return nil, &ConsistencyError{Message: fmt.Sprintf(
			"metadata describes %d spend descriptors, bundle has %d",
			len(positions), spendCount)}
	}
	return positions, nil
}

// mapAuthorization applies a position-indexed signature set across a
// bundle's spend descriptors. Descriptors with a map entry get their
// signature substituted; descriptors without one keep their prior value
// (the caller surfaces uncovered positions as a consistency violation).
// Proof material and every other per-descriptor field pass through
// unchanged; this transform relocates already-computed signatures and does
// no cryptography of its own.
func mapAuthorization(b *tx.Bundle, authorizations map[int][tx.SpendAuthSigLen]byte) *tx.Bundle {
	for pos := range b.Spends {
		if sig, ok := authorizations[pos]; ok {
			dup := sig
			b.Spends[pos].SpendAuthSig = &dup
		}
	}
	return b
}
