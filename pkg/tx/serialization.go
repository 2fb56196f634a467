package tx

import (
	"bytes"
	"encoding/binary"

	blake2b "github.com/minio/blake2b-simd"
)

// Section hashes are BLAKE2b-256 with a fixed personalization, over the
// section kind byte followed by the section's canonical encoding. The
// personalization keeps these digests from colliding with any other use of
// BLAKE2b in the system.
const sectionHashPersonalization = "MASPAuthSectHash"

func sectionHash(kind SectionKind, payload []byte) [32]byte {
	h, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: []byte(sectionHashPersonalization),
	})
	if err != nil {
		panic("blake2b config rejected: " + err.Error())
	}
	h.Write([]byte{byte(kind)})
	h.Write(payload)

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// EncodeCanonical serializes the bundle in its fixed canonical layout:
// little-endian integers, length-prefixed descriptor lists, field order as
// written here. Spend authorization signatures are encoded behind a presence
// byte so an unauthorized bundle and its authorized counterpart serialize
// differently.
func (b *Bundle) EncodeCanonical() []byte {
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.LittleEndian, b.Version)
	binary.Write(buf, binary.LittleEndian, b.ConsensusBranchID)
	binary.Write(buf, binary.LittleEndian, b.ExpiryHeight)
	binary.Write(buf, binary.LittleEndian, b.ValueBalance)
	buf.Write(b.Anchor[:])

	binary.Write(buf, binary.LittleEndian, uint32(len(b.Spends)))
	for i := range b.Spends {
		sp := &b.Spends[i]
		buf.Write(sp.CV[:])
		buf.Write(sp.Nullifier[:])
		buf.Write(sp.Rk[:])
		buf.Write(sp.ZKProof[:])
		if sp.SpendAuthSig == nil {
			buf.WriteByte(0x00)
		} else {
			buf.WriteByte(0x01)
			buf.Write(sp.SpendAuthSig[:])
		}
	}

	binary.Write(buf, binary.LittleEndian, uint32(len(b.Outputs)))
	for i := range b.Outputs {
		out := &b.Outputs[i]
		buf.Write(out.CV[:])
		buf.Write(out.Cmu[:])
		buf.Write(out.EphemeralKey[:])
		buf.Write(out.EncCiphertext[:])
		buf.Write(out.OutCiphertext[:])
		buf.Write(out.ZKProof[:])
	}

	buf.Write(b.BindingSig[:])
	return buf.Bytes()
}

// encode serializes the metadata position map.
func (m *BuilderMetadata) encode() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, uint32(len(m.SpendIndexes)))
	for _, pos := range m.SpendIndexes {
		binary.Write(buf, binary.LittleEndian, pos)
	}
	return buf.Bytes()
}
