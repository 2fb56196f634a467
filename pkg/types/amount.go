package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// NativeMaxDecimalPlaces is the denomination of the native token. Amounts
// written without more precision than this are normalized to it, and amounts
// that must be native-denominated reject anything finer.
const NativeMaxDecimalPlaces = 6

// maxDecimalPlaces bounds the denomination of any amount this layer accepts.
// A 256-bit magnitude holds at most 78 decimal digits; 77 fractional digits
// is the largest denomination that still leaves room for an integer part.
const maxDecimalPlaces = 77

// DenominatedAmount is a non-negative token amount: a 256-bit magnitude
// paired with the number of decimal places it is expressed in. The value is
// magnitude / 10^denomination. Immutable after construction.
type DenominatedAmount struct {
	magnitude uint256.Int
	denom     uint8
}

// ParseAmount parses a decimal string such as "10", "10.0" or "0.000001".
// The denomination is taken from the number of fractional digits written.
// Negative values, signs, exponents and group separators are rejected.
func ParseAmount(s string) (DenominatedAmount, error) {
	if s == "" {
		return DenominatedAmount{}, fmt.Errorf("invalid amount: empty string")
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return DenominatedAmount{}, fmt.Errorf("invalid amount %q: multiple decimal points", s)
		}
		if fracPart == "" {
			return DenominatedAmount{}, fmt.Errorf("invalid amount %q: trailing decimal point", s)
		}
	}
	if intPart == "" {
		return DenominatedAmount{}, fmt.Errorf("invalid amount %q: missing integer part", s)
	}
	if len(fracPart) > maxDecimalPlaces {
		return DenominatedAmount{}, fmt.Errorf("invalid amount %q: more than %d decimal places", s, maxDecimalPlaces)
	}
	digits := intPart + fracPart
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return DenominatedAmount{}, fmt.Errorf("invalid amount %q: unexpected character %q", s, digits[i])
		}
	}
	// uint256 decimal parsing wants no redundant leading zeros.
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	mag, err := uint256.FromDecimal(trimmed)
	if err != nil {
		return DenominatedAmount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return DenominatedAmount{magnitude: *mag, denom: uint8(len(fracPart))}, nil
}

// ParseNativeAmount parses a decimal string and normalizes it to the native
// denomination. Strings with more fractional digits than the native token
// supports are rejected.
func ParseNativeAmount(s string) (DenominatedAmount, error) {
	a, err := ParseAmount(s)
	if err != nil {
		return DenominatedAmount{}, err
	}
	if a.denom > NativeMaxDecimalPlaces {
		return DenominatedAmount{}, fmt.Errorf(
			"invalid amount %q: %d decimal places exceeds native precision of %d",
			s, a.denom, NativeMaxDecimalPlaces)
	}
	return a.Redenominate(NativeMaxDecimalPlaces)
}

// Redenominate re-expresses the amount with the given number of decimal
// places. Increasing the denomination scales the magnitude; decreasing it is
// rejected since it could silently drop precision.
func (a DenominatedAmount) Redenominate(denom uint8) (DenominatedAmount, error) {
	if denom < a.denom {
		return DenominatedAmount{}, fmt.Errorf(
			"cannot redenominate %s from %d to %d decimal places without losing precision",
			a.String(), a.denom, denom)
	}
	if denom > maxDecimalPlaces {
		return DenominatedAmount{}, fmt.Errorf("denomination %d exceeds maximum %d", denom, maxDecimalPlaces)
	}
	out := DenominatedAmount{magnitude: a.magnitude, denom: denom}
	ten := uint256.NewInt(10)
	for i := a.denom; i < denom; i++ {
		var scaled uint256.Int
		if _, overflow := scaled.MulOverflow(&out.magnitude, ten); overflow {
			return DenominatedAmount{}, fmt.Errorf("amount %s overflows at %d decimal places", a.String(), denom)
		}
		out.magnitude = scaled
	}
	return out, nil
}

// Denom returns the number of decimal places the amount is expressed in.
func (a DenominatedAmount) Denom() uint8 {
	return a.denom
}

// Magnitude returns a copy of the raw magnitude.
func (a DenominatedAmount) Magnitude() *uint256.Int {
	var m uint256.Int
	m.Set(&a.magnitude)
	return &m
}

// IsZero reports whether the amount is zero. Zero is a valid amount; whether
// a zero fee or transfer is acceptable is a question for the chain, not for
// this layer.
func (a DenominatedAmount) IsZero() bool {
	return a.magnitude.IsZero()
}

// Equal reports whether two amounts denote the same numeric value, even when
// expressed at different denominations.
func (a DenominatedAmount) Equal(b DenominatedAmount) bool {
	x, y := a, b
	var err error
	if x.denom < y.denom {
		x, err = x.Redenominate(y.denom)
	} else if y.denom < x.denom {
		y, err = y.Redenominate(x.denom)
	}
	if err != nil {
		// One side overflows at the shared denomination; the values cannot
		// be equal since the other side fit.
		return false
	}
	return x.magnitude.Eq(&y.magnitude)
}

// String renders the canonical decimal form with exactly Denom fractional
// digits, so ParseAmount(a.String()) reproduces both value and denomination.
func (a DenominatedAmount) String() string {
	digits := a.magnitude.Dec()
	if a.denom == 0 {
		return digits
	}
	if len(digits) <= int(a.denom) {
		digits = strings.Repeat("0", int(a.denom)-len(digits)+1) + digits
	}
	cut := len(digits) - int(a.denom)
	return digits[:cut] + "." + digits[cut:]
}

// GasLimit is a whole-number gas bound for transaction execution.
type GasLimit uint64

// ParseGasLimit parses a base-10 gas limit. Zero is valid.
func ParseGasLimit(s string) (GasLimit, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid gas limit %q: %w", s, err)
	}
	return GasLimit(v), nil
}

// String returns the base-10 form.
func (g GasLimit) String() string {
	return strconv.FormatUint(uint64(g), 10)
}
