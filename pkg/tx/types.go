// Package tx implements the in-memory transaction model this layer operates
// on: a transaction as an ordered list of content-addressed sections, of
// which at most one is a confidential (shielded) value-transfer bundle.
//
// The model deliberately covers only what argument decoding and shielded
// authorization need. Transaction construction, proof generation and
// broadcast live elsewhere and hand transactions to this layer fully built.
package tx

// SectionKind discriminates the section variants of a transaction.
type SectionKind uint8

const (
	SectionData        SectionKind = iota // code/data payload for the chain runtime
	SectionExtraData                      // auxiliary payload referenced by data sections
	SectionMemo                           // caller-supplied memo bytes
	SectionMaspTx                         // the confidential value-transfer bundle
	SectionMaspBuilder                    // construction metadata paired with a bundle
)

// Section is one component of a transaction. Sections are content-addressed:
// Hash is a digest over the section's canonical encoding, and a section's
// identity changes whenever its content does.
type Section interface {
	Kind() SectionKind
	Hash() [32]byte
}

// Tx is a transaction: an opaque chain id plus its sections. The caller owns
// the value exclusively for the duration of any call into this layer.
type Tx struct {
	ChainID  string
	Sections []Section
}

// AddSection appends a section.
func (t *Tx) AddSection(s Section) {
	t.Sections = append(t.Sections, s)
}

// MaspSection returns the confidential bundle whose section hash equals h.
func (t *Tx) MaspSection(h [32]byte) (*Bundle, bool) {
	for _, s := range t.Sections {
		if m, ok := s.(*MaspTxSection); ok && m.Hash() == h {
			return m.Bundle, true
		}
	}
	return nil, false
}

// MaspBuilderFor returns the construction metadata recorded for the
// confidential section with hash h.
func (t *Tx) MaspBuilderFor(h [32]byte) (*BuilderMetadata, bool) {
	for _, s := range t.Sections {
		if b, ok := s.(*MaspBuilderSection); ok && b.Target == h {
			return b.Metadata, true
		}
	}
	return nil, false
}

// RemoveMaspSection removes the confidential section with hash h, leaving
// every other section in place. Reports whether a section was removed.
func (t *Tx) RemoveMaspSection(h [32]byte) bool {
	for i, s := range t.Sections {
		if m, ok := s.(*MaspTxSection); ok && m.Hash() == h {
			t.Sections = append(t.Sections[:i], t.Sections[i+1:]...)
			return true
		}
	}
	return false
}

// DataSection carries the payload executed by the chain runtime.
type DataSection struct {
	Data []byte
}

// Kind implements Section.
func (s *DataSection) Kind() SectionKind { return SectionData }

// Hash implements Section.
func (s *DataSection) Hash() [32]byte { return sectionHash(SectionData, s.Data) }

// ExtraDataSection carries auxiliary bytes referenced by other sections.
type ExtraDataSection struct {
	Data []byte
}

// Kind implements Section.
func (s *ExtraDataSection) Kind() SectionKind { return SectionExtraData }

// Hash implements Section.
func (s *ExtraDataSection) Hash() [32]byte { return sectionHash(SectionExtraData, s.Data) }

// MemoSection carries a caller-supplied memo.
type MemoSection struct {
	Memo []byte
}

// Kind implements Section.
func (s *MemoSection) Kind() SectionKind { return SectionMemo }

// Hash implements Section.
func (s *MemoSection) Hash() [32]byte { return sectionHash(SectionMemo, s.Memo) }

// MaspTxSection wraps the confidential value-transfer bundle.
type MaspTxSection struct {
	Bundle *Bundle
}

// Kind implements Section.
func (s *MaspTxSection) Kind() SectionKind { return SectionMaspTx }

// Hash implements Section. The digest covers the bundle's full canonical
// encoding, authorization data included, so authorizing a bundle gives the
// replacement section a new identity.
func (s *MaspTxSection) Hash() [32]byte {
	return sectionHash(SectionMaspTx, s.Bundle.EncodeCanonical())
}

// MaspBuilderSection pairs construction metadata with the confidential
// section it describes. Target is the section hash of the bundle as built,
// which is also the identifier recorded in the signing context.
type MaspBuilderSection struct {
	Target   [32]byte
	Metadata *BuilderMetadata
}

// Kind implements Section.
func (s *MaspBuilderSection) Kind() SectionKind { return SectionMaspBuilder }

// Hash implements Section.
func (s *MaspBuilderSection) Hash() [32]byte {
	return sectionHash(SectionMaspBuilder, append(s.Target[:], s.Metadata.encode()...))
}
