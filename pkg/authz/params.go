package authz

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/suffix-labs/masp-authz/pkg/args"
)

// BuildParams supplies the randomness that parameterizes a confidential
// transaction's authorization: one spend blinding factor (alpha) per spend
// descriptor, plus commitment randomness for convert and output components.
//
// A provider instance belongs to exactly one transaction. Factors are
// generated lazily and cached per index, so construction and signing see
// the same values, but two descriptors can never share a factor and two
// transactions must never share a provider (randomness correlation across
// signing calls would link otherwise-unlinkable signatures).
type BuildParams interface {
	// SpendAlpha returns the signature blinding factor for the spend
	// descriptor at the given serialized position.
	SpendAlpha(i int) (*secp256k1.ModNScalar, error)
	// ConvertRcm returns the commitment randomness for the i-th convert
	// component.
	ConvertRcm(i int) ([32]byte, error)
	// OutputRcv returns the commitment randomness for the i-th output
	// component.
	OutputRcv(i int) ([32]byte, error)
}

// NewBuildParams returns a provider for one transaction. The component
// counts are reserved for future derivation-path support and are currently
// unused. If the envelope requests hardware-device-backed signing the
// provider is refused with UnsupportedError: the device path is an explicit
// non-goal of this layer. A nil rng falls back to the operating system's
// secure random source.
func NewBuildParams(spendLen, convertLen, outputLen int, env *args.Envelope, rng io.Reader) (BuildParams, error) {
	if env != nil && env.UseDevice {
		return nil, &UnsupportedError{Feature: "hardware-device-backed signing"}
	}
	if rng == nil {
		rng = rand.Reader
	}
	_ = spendLen
	_ = convertLen
	_ = outputLen
	return &rngBuildParams{
		rng:         rng,
		spendAlphas: make(map[int]*secp256k1.ModNScalar),
		convertRcms: make(map[int][32]byte),
		outputRcvs:  make(map[int][32]byte),
	}, nil
}

// rngBuildParams draws factors from an injected random source. Injection
// exists so tests can pin the randomness and check the one-factor-per-
// descriptor invariant precisely; production callers pass nil and get the
// OS source.
type rngBuildParams struct {
	rng         io.Reader
	spendAlphas map[int]*secp256k1.ModNScalar
	convertRcms map[int][32]byte
	outputRcvs  map[int][32]byte
}

func (p *rngBuildParams) SpendAlpha(i int) (*secp256k1.ModNScalar, error) {
	if i < 0 {
		return nil, fmt.Errorf("negative spend index %d", i)
	}
	if alpha, ok := p.spendAlphas[i]; ok {
		return alpha, nil
	}
	alpha := new(secp256k1.ModNScalar)
	if err := scalarFromReader(alpha, p.rng); err != nil {
		return nil, fmt.Errorf("drawing spend alpha %d: %w", i, err)
	}
	p.spendAlphas[i] = alpha
	return alpha, nil
}

func (p *rngBuildParams) ConvertRcm(i int) ([32]byte, error) {
	return p.cachedRandomness(p.convertRcms, i, "convert rcm")
}

func (p *rngBuildParams) OutputRcv(i int) ([32]byte, error) {
	return p.cachedRandomness(p.outputRcvs, i, "output rcv")
}

func (p *rngBuildParams) cachedRandomness(cache map[int][32]byte, i int, what string) ([32]byte, error) {
	if i < 0 {
		return [32]byte{}, fmt.Errorf("negative %s index %d", what, i)
	}
	if v, ok := cache[i]; ok {
		return v, nil
	}
	var v [32]byte
	if _, err := io.ReadFull(p.rng, v[:]); err != nil {
		return [32]byte{}, fmt.Errorf("drawing %s %d: %w", what, i, err)
	}
	cache[i] = v
	return v, nil
}
