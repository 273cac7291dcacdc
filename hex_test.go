package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DecodeHex(t *testing.T) {
	b, err := decodeHex("48656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), b)
}

func Test_DecodeHex_CaseInsensitive(t *testing.T) {
	lower, err := decodeHex("48656c6c6f")
	require.NoError(t, err)
	upper, err := decodeHex("48656C6C6F")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func Test_DecodeHex_PrefixTolerance(t *testing.T) {
	want, err := decodeHex("48656c6c6f")
	require.NoError(t, err)

	for _, in := range []string{"0x48656c6c6f", "0X48656C6C6F"} {
		got, err := decodeHex(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func Test_DecodeHex_WhitespaceTolerance(t *testing.T) {
	want, err := decodeHex("48656c6c6f")
	require.NoError(t, err)

	got, err := decodeHex("48 65 6c\t6c\r\n6f")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Whitespace is removed before the prefix is stripped.
	got, err = decodeHex("  0x 48 65 6c 6c 6f\n")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_DecodeHex_OddLength(t *testing.T) {
	_, err := decodeHex("abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, errHexDecode)
	assert.Contains(t, err.Error(), "odd number of digits")
}

func Test_DecodeHex_InvalidCharacter(t *testing.T) {
	_, err := decodeHex("48g5")
	require.Error(t, err)
	assert.ErrorIs(t, err, errHexDecode)
	assert.Contains(t, err.Error(), "'g'")
}

func Test_DecodeHex_Empty(t *testing.T) {
	for _, in := range []string{"", "   \n", "0x", "0X\t"} {
		_, err := decodeHex(in)
		assert.ErrorIs(t, err, errHexDecode, "input %q", in)
	}
}

func Test_EncodeHex(t *testing.T) {
	b := []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f}
	assert.Equal(t, "48656c6c6f", encodeHex(b, false))
	assert.Equal(t, "48656C6C6F", encodeHex(b, true))
	assert.Equal(t, "", encodeHex(nil, false))
}

func Test_HexRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff, 'H', 'i'}

	for _, upper := range []bool{false, true} {
		got, err := decodeHex(encodeHex(data, upper))
		require.NoError(t, err)
		assert.Equal(t, data, got)
	}
}
