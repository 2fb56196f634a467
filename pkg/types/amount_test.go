package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in        string
		magnitude uint64
		denom     uint8
	}{
		{"0", 0, 0},
		{"10", 10, 0},
		{"10.0", 100, 1},
		{"10.000000", 10000000, 6},
		{"0.000001", 1, 6},
		{"007", 7, 0},
		{"0.0", 0, 1},
		{"123456789.987654321", 123456789987654321, 9},
	}
	for _, tc := range cases {
		a, err := ParseAmount(tc.in)
		require.NoError(t, err, "ParseAmount(%q)", tc.in)
		assert.Equal(t, tc.magnitude, a.Magnitude().Uint64(), "magnitude of %q", tc.in)
		assert.Equal(t, tc.denom, a.Denom(), "denom of %q", tc.in)
	}
}

func TestParseAmountRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		".",
		".5",
		"5.",
		"1.2.3",
		"-1",
		"+1",
		"1e6",
		"1,000",
		" 1",
		"1 ",
		"abc",
	}
	for _, in := range bad {
		_, err := ParseAmount(in)
		assert.Error(t, err, "ParseAmount(%q)", in)
	}
}

func TestParseNativeAmountNormalizes(t *testing.T) {
	a, err := ParseNativeAmount("10.0")
	require.NoError(t, err)
	assert.Equal(t, uint8(NativeMaxDecimalPlaces), a.Denom())
	assert.Equal(t, uint64(10000000), a.Magnitude().Uint64())
	assert.Equal(t, "10.000000", a.String())
}

func TestParseNativeAmountRejectsExcessPrecision(t *testing.T) {
	_, err := ParseNativeAmount("1.1234567")
	require.Error(t, err)

	// Exactly the native precision is fine.
	_, err = ParseNativeAmount("1.123456")
	require.NoError(t, err)
}

func TestParseNativeAmountAcceptsZero(t *testing.T) {
	a, err := ParseNativeAmount("0")
	require.NoError(t, err)
	assert.True(t, a.IsZero())
}

func TestRedenominate(t *testing.T) {
	a, err := ParseAmount("1.5")
	require.NoError(t, err)

	b, err := a.Redenominate(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(1500), b.Magnitude().Uint64())
	assert.Equal(t, "1.500", b.String())

	// Dropping precision is refused.
	_, err = b.Redenominate(1)
	assert.Error(t, err)

	// Same denomination is a no-op.
	c, err := a.Redenominate(1)
	require.NoError(t, err)
	assert.Equal(t, a.String(), c.String())
}

func TestAmountEqualAcrossDenominations(t *testing.T) {
	a, err := ParseAmount("10.0")
	require.NoError(t, err)
	b, err := ParseAmount("10.000000")
	require.NoError(t, err)
	c, err := ParseAmount("10.000001")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
}

func TestAmountStringRoundTrip(t *testing.T) {
	for _, in := range []string{"0", "0.0", "10", "10.50", "0.000001", "123456789.987654321"} {
		a, err := ParseAmount(in)
		require.NoError(t, err)
		b, err := ParseAmount(a.String())
		require.NoError(t, err)
		assert.Equal(t, a.Denom(), b.Denom(), "denom round trip of %q", in)
		assert.True(t, a.Equal(b), "value round trip of %q", in)
	}
}

func TestParseGasLimit(t *testing.T) {
	g, err := ParseGasLimit("20000")
	require.NoError(t, err)
	assert.Equal(t, GasLimit(20000), g)

	// Zero is a valid gas limit.
	g, err = ParseGasLimit("0")
	require.NoError(t, err)
	assert.Equal(t, GasLimit(0), g)

	for _, in := range []string{"", "-1", "1.5", "abc", "0x10"} {
		_, err := ParseGasLimit(in)
		assert.Error(t, err, "ParseGasLimit(%q)", in)
	}
}
