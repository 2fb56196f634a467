package authz

import (
	"encoding/binary"
	"hash"

	blake2b "github.com/minio/blake2b-simd"

	"github.com/suffix-labs/masp-authz/pkg/tx"
)

// Signing hash computation.
//
// The transaction digest is a tree of personalized BLAKE2b-256 hashes over
// the bundle's canonical unauthorized form: a header digest, a spends digest
// (compact and noncompact halves) and an outputs digest, combined under a
// personalization that commits to the consensus branch id. The per-input
// signing hash for shielded spends is derived from the same component
// digests under a separate personalization. Every signature over a
// transaction commits to exactly the same content regardless of which
// signer authorizes which spend.

// BLAKE2b personalization strings. The two prefixes are 12 bytes and are
// completed to 16 with the little-endian consensus branch id.
const (
	txIDPersonalizationPrefix    = "MASP_TxHash_"
	sighashPersonalizationPrefix = "MASPSigHash_"

	headerDigestPersonalization      = "MASPTxIdHeadHash"
	spendsDigestPersonalization      = "MASPTxIdSpndHash"
	spendsCompactPersonalization     = "MASPTxIdSSpCHash"
	spendsNoncompactPersonalization  = "MASPTxIdSSpNHash"
	outputsDigestPersonalization     = "MASPTxIdOutsHash"
	outputsCompactPersonalization    = "MASPTxIdSOuCHash"
	outputsMemosPersonalization      = "MASPTxIdSOuMHash"
	outputsNoncompactPersonalization = "MASPTxIdSOuNHash"
)

// SignableInput selects the input type a signing hash binds to.
type SignableInput uint8

// SignableInputShielded is the input type for shielded spend signatures.
const SignableInputShielded SignableInput = 0

func blake2b256(personalization []byte) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: personalization,
	})
	if err != nil {
		panic("blake2b config rejected: " + err.Error())
	}
	return h
}

// branchPersonalization completes a 12-byte prefix with the little-endian
// consensus branch id.
func branchPersonalization(prefix string, branchID uint32) []byte {
	p := make([]byte, 16)
	copy(p, prefix)
	binary.LittleEndian.PutUint32(p[12:], branchID)
	return p
}

type txDigests struct {
	header  [32]byte
	spends  [32]byte
	outputs [32]byte
}

// TransactionDigest computes the identifying digest of a bundle over its
// canonical unauthorized form. Placeholder authorization data is stripped
// first, so the digest depends only on transaction content.
func TransactionDigest(b *tx.Bundle) [32]byte {
	unauth := b.Deauthorized()
	parts := computeTxDigests(unauth)

	h := blake2b256(branchPersonalization(txIDPersonalizationPrefix, unauth.ConsensusBranchID))
	h.Write(parts.header[:])
	h.Write(parts.spends[:])
	h.Write(parts.outputs[:])

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// SignatureHash computes the per-input signing hash for the given input
// type over the bundle's canonical unauthorized form. For shielded spends
// the hash is identical for every spend of the transaction.
func SignatureHash(b *tx.Bundle, input SignableInput) [32]byte {
	unauth := b.Deauthorized()
	parts := computeTxDigests(unauth)

	h := blake2b256(branchPersonalization(sighashPersonalizationPrefix, unauth.ConsensusBranchID))
	h.Write(parts.header[:])
	h.Write(parts.spends[:])
	h.Write(parts.outputs[:])
	h.Write([]byte{byte(input)})

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

func computeTxDigests(b *tx.Bundle) *txDigests {
	return &txDigests{
		header:  computeHeaderDigest(b),
		spends:  computeSpendsDigest(b),
		outputs: computeOutputsDigest(b),
	}
}

// computeHeaderDigest covers the transaction-wide scalars: version, branch
// id, expiry and value balance.
func computeHeaderDigest(b *tx.Bundle) [32]byte {
	h := blake2b256([]byte(headerDigestPersonalization))

	var buf [20]byte
	binary.LittleEndian.PutUint32(buf[0:], b.Version)
	binary.LittleEndian.PutUint32(buf[4:], b.ConsensusBranchID)
	binary.LittleEndian.PutUint32(buf[8:], b.ExpiryHeight)
	binary.LittleEndian.PutUint64(buf[12:], uint64(b.ValueBalance))
	h.Write(buf[:])

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// computeSpendsDigest covers the spend descriptors. The compact half holds
// the nullifiers (the data light clients track); the noncompact half holds
// the value commitments, the shared anchor and the randomized verification
// keys. Authorization signatures are never included: they are what the
// digest exists to authorize.
func computeSpendsDigest(b *tx.Bundle) [32]byte {
	h := blake2b256([]byte(spendsDigestPersonalization))

	if len(b.Spends) > 0 {
		compact := blake2b256([]byte(spendsCompactPersonalization))
		noncompact := blake2b256([]byte(spendsNoncompactPersonalization))

		for i := range b.Spends {
			sp := &b.Spends[i]
			compact.Write(sp.Nullifier[:])

			noncompact.Write(sp.CV[:])
			noncompact.Write(b.Anchor[:])
			noncompact.Write(sp.Rk[:])
		}

		h.Write(compact.Sum(nil))
		h.Write(noncompact.Sum(nil))
	}

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// computeOutputsDigest covers the output descriptors, split the same way:
// compact (note commitment, ephemeral key, ciphertext prefix), memo
// (ciphertext body) and noncompact (value commitment, outgoing ciphertext).
func computeOutputsDigest(b *tx.Bundle) [32]byte {
	h := blake2b256([]byte(outputsDigestPersonalization))

	if len(b.Outputs) > 0 {
		compact := blake2b256([]byte(outputsCompactPersonalization))
		memos := blake2b256([]byte(outputsMemosPersonalization))
		noncompact := blake2b256([]byte(outputsNoncompactPersonalization))

		// The ciphertext prefix visible to compact clients: enough to
		// detect an incoming note.
		const compactCiphertextLen = 52

		for i := range b.Outputs {
			out := &b.Outputs[i]
			compact.Write(out.Cmu[:])
			compact.Write(out.EphemeralKey[:])
			compact.Write(out.EncCiphertext[:compactCiphertextLen])

			memos.Write(out.EncCiphertext[compactCiphertextLen:])

			noncompact.Write(out.CV[:])
			noncompact.Write(out.OutCiphertext[:])
		}

		h.Write(compact.Sum(nil))
		h.Write(memos.Sum(nil))
		h.Write(noncompact.Sum(nil))
	}

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}
