package authz

import (
	"fmt"
	"hash"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	blake2b "github.com/minio/blake2b-simd"
	"golang.org/x/crypto/hkdf"

	"github.com/suffix-labs/masp-authz/pkg/types"
)

// HKDF info label for spend-authorizing key expansion. Changing it changes
// every derived key, so it is as much a part of the signing scheme as the
// curve is.
const spendAuthKeyInfo = "MASP__SpendAuthorizingKey"

// SpendAuthKey is the concrete spend-authorizing secret scalar derived from
// an extended spending key. It exists only inside a signing call; the
// distinct type keeps it from being confused with the decode-time key
// references in pkg/types, which can never sign.
type SpendAuthKey struct {
	scalar secp256k1.ModNScalar
}

// SpendAuthKeyFromExtended derives the spend-authorizing secret from
// caller-supplied extended key material. The spend seed is expanded through
// HKDF over BLAKE2b-512 and reduced to a nonzero scalar. View-only key
// material (the neutral all-zero seed) fails with KeyDerivationError.
func SpendAuthKeyFromExtended(xsk *types.ExtendedSpendingKey) (*SpendAuthKey, error) {
	if xsk == nil {
		return nil, &KeyDerivationError{Reason: "no key material supplied"}
	}
	if xsk.IsViewOnly() {
		return nil, &KeyDerivationError{Reason: "key material is view-only"}
	}

	expand := hkdf.New(blake2b512, xsk.Authority.Ask[:], xsk.ChainCode[:], []byte(spendAuthKeyInfo))
	key := &SpendAuthKey{}
	if err := scalarFromReader(&key.scalar, expand); err != nil {
		return nil, &KeyDerivationError{Reason: err.Error()}
	}
	return key, nil
}

// Zero clears the secret scalar. Callers that finish with a key early can
// drop the material before the signing call returns.
func (k *SpendAuthKey) Zero() {
	k.scalar.Zero()
}

func blake2b512() hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: 64})
	if err != nil {
		panic("blake2b config rejected: " + err.Error())
	}
	return h
}

// scalarFromReader fills s with a uniformly distributed nonzero scalar by
// rejection sampling 32-byte chunks from r. Rejection keeps the
// distribution unbiased; the expected number of draws is barely above one.
func scalarFromReader(s *secp256k1.ModNScalar, r io.Reader) error {
	var buf [32]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return fmt.Errorf("reading scalar material: %w", err)
		}
		if overflow := s.SetBytes(&buf); overflow > 0 {
			continue
		}
		if s.IsZero() {
			continue
		}
		return nil
	}
}
