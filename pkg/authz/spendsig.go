package authz

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"

	"github.com/suffix-labs/masp-authz/pkg/tx"
)

// Spend authorization signatures are Schnorr signatures under a rerandomized
// key: the signer's long-lived secret ask is offset by a per-spend blinding
// factor alpha, and the signature verifies under the randomized verification
// key rk = (ask + alpha)·G recorded in the spend descriptor at construction
// time. Because alpha is drawn fresh for every descriptor, signatures from
// the same secret are unlinkable across descriptors and across independent
// submissions of the same transfer.

// SpendSig signs sighash with the rerandomized key ask + alpha.
func SpendSig(ask *SpendAuthKey, alpha *secp256k1.ModNScalar, sighash [32]byte) ([tx.SpendAuthSigLen]byte, error) {
	var out [tx.SpendAuthSigLen]byte

	var rsk secp256k1.ModNScalar
	rsk.Add2(&ask.scalar, alpha)
	if rsk.IsZero() {
		// alpha == -ask. A correctly drawn alpha hits this with negligible
		// probability; reaching it means the blinding factor source is
		// broken.
		return out, fmt.Errorf("rerandomized key is the zero scalar")
	}

	priv := secp256k1.NewPrivateKey(&rsk)
	defer priv.Zero()
	rsk.Zero()

	sig, err := schnorr.Sign(priv, sighash[:])
	if err != nil {
		return out, fmt.Errorf("spend signature failed: %w", err)
	}
	copy(out[:], sig.Serialize())
	return out, nil
}

// RandomizedVerificationKey returns the compressed verification key
// rk = (ask + alpha)·G that SpendSig's signatures verify under. The
// construction layer records this in the spend descriptor using the same
// build parameters later handed to the signing call.
func RandomizedVerificationKey(ask *SpendAuthKey, alpha *secp256k1.ModNScalar) ([tx.RkLen]byte, error) {
	var out [tx.RkLen]byte

	var rsk secp256k1.ModNScalar
	rsk.Add2(&ask.scalar, alpha)
	if rsk.IsZero() {
		return out, fmt.Errorf("rerandomized key is the zero scalar")
	}

	priv := secp256k1.NewPrivateKey(&rsk)
	defer priv.Zero()
	rsk.Zero()

	copy(out[:], priv.PubKey().SerializeCompressed())
	return out, nil
}

// VerifySpendSig checks a spend authorization signature against the
// randomized verification key stored in a spend descriptor.
func VerifySpendSig(rk [tx.RkLen]byte, sighash [32]byte, sig [tx.SpendAuthSigLen]byte) bool {
	pub, err := secp256k1.ParsePubKey(rk[:])
	if err != nil {
		return false
	}
	parsed, err := schnorr.ParseSignature(sig[:])
	if err != nil {
		return false
	}
	return parsed.Verify(sighash[:], pub)
}
