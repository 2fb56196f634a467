package tx

import "fmt"

// Sizes of the fixed-length fields in a confidential bundle.
const (
	ProofLen         = 192 // Groth16 proof
	SpendAuthSigLen  = 64  // spend authorization signature
	RkLen            = 33  // randomized verification key, compressed point
	EncCiphertextLen = 580 // encrypted note plaintext
	OutCiphertextLen = 80  // outgoing viewing ciphertext
)

// SpendDescription is one input to a confidential transfer: it proves
// ownership of a previously received note without revealing which one. The
// proof is produced at construction time; the spend authorization signature
// is nil (or a placeholder) until the authorization engine fills it in.
type SpendDescription struct {
	CV           [32]byte      // value commitment
	Nullifier    [32]byte      // prevents double spends
	Rk           [RkLen]byte   // randomized verification key for the auth signature
	ZKProof      [ProofLen]byte
	SpendAuthSig *[SpendAuthSigLen]byte
}

// OutputDescription is one note created by a confidential transfer.
type OutputDescription struct {
	CV            [32]byte
	Cmu           [32]byte // note commitment
	EphemeralKey  [32]byte
	EncCiphertext [EncCiphertextLen]byte
	OutCiphertext [OutCiphertextLen]byte
	ZKProof       [ProofLen]byte
}

// Bundle is the confidential section of a transaction: spend and output
// descriptors with their proofs, the net value balance, and the binding
// signature tying value commitments together. A bundle starts unauthorized
// (spend auth signatures absent or placeholders) and is frozen into an
// authorized form once every spend carries a real signature.
type Bundle struct {
	Version           uint32
	ConsensusBranchID uint32
	ExpiryHeight      uint32
	ValueBalance      int64
	Anchor            [32]byte
	Spends            []SpendDescription
	Outputs           []OutputDescription
	BindingSig        [64]byte

	authorized bool
}

// Authorized reports whether the bundle has been frozen into its final,
// broadcast-ready form.
func (b *Bundle) Authorized() bool {
	return b.authorized
}

// Clone returns a deep copy. The copy is always unfrozen so staging work can
// proceed on it without touching the original.
func (b *Bundle) Clone() *Bundle {
	out := &Bundle{
		Version:           b.Version,
		ConsensusBranchID: b.ConsensusBranchID,
		ExpiryHeight:      b.ExpiryHeight,
		ValueBalance:      b.ValueBalance,
		Anchor:            b.Anchor,
		BindingSig:        b.BindingSig,
		Spends:            make([]SpendDescription, len(b.Spends)),
		Outputs:           make([]OutputDescription, len(b.Outputs)),
	}
	copy(out.Spends, b.Spends)
	copy(out.Outputs, b.Outputs)
	for i := range out.Spends {
		if sig := b.Spends[i].SpendAuthSig; sig != nil {
			dup := *sig
			out.Spends[i].SpendAuthSig = &dup
		}
	}
	return out
}

// Deauthorized returns a copy with every spend authorization signature and
// the binding signature stripped. This is the canonical unauthorized form
// the transaction digest is computed over: it depends only on transaction
// content, never on whatever placeholder signatures were present.
func (b *Bundle) Deauthorized() *Bundle {
	out := b.Clone()
	for i := range out.Spends {
		out.Spends[i].SpendAuthSig = nil
	}
	out.BindingSig = [64]byte{}
	return out
}

// Freeze validates that every spend carries a signature and returns the
// bundle marked authorized. The receiver is not modified.
func (b *Bundle) Freeze() (*Bundle, error) {
	for i := range b.Spends {
		if b.Spends[i].SpendAuthSig == nil {
			return nil, fmt.Errorf("cannot freeze bundle: spend %d has no authorization signature", i)
		}
	}
	out := b.Clone()
	out.authorized = true
	return out, nil
}

// BuilderMetadata correlates the order in which spend descriptors were added
// during construction with their final position in the serialized bundle.
// Construction order may differ from serialized order because the builder
// shuffles descriptors. The map is dense: entry i exists for every spend
// that was added, starting at zero with no gaps. Read-only input to the
// authorization engine.
type BuilderMetadata struct {
	// SpendIndexes[i] is the serialized position of the i-th spend added
	// during construction.
	SpendIndexes []uint32
}

// SpendIndex returns the serialized position assigned to the i-th
// construction-order spend, reporting false past the end of the map.
func (m *BuilderMetadata) SpendIndex(i int) (int, bool) {
	if i < 0 || i >= len(m.SpendIndexes) {
		return 0, false
	}
	return int(m.SpendIndexes[i]), true
}
