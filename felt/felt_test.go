package felt_test

import (
	"math/big"
	"testing"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUint64(t *testing.T) {
	f := felt.FromUint64(100)
	assert.Equal(t, "0x64", f.Hex())
}

func TestFromHex(t *testing.T) {
	f, err := felt.FromHex("0x123abc")
	require.NoError(t, err)
	assert.Equal(t, "0x123abc", f.Hex())

	f, err = felt.FromHex("0X123ABC")
	require.NoError(t, err)
	assert.Equal(t, "0x123abc", f.Hex())

	_, err = felt.FromHex("123abc")
	assert.Error(t, err)

	_, err = felt.FromHex("0xnothex")
	assert.Error(t, err)
}

func TestFromSignedBigInt(t *testing.T) {
	pos, err := felt.FromSignedInt64(100)
	require.NoError(t, err)
	assert.Equal(t, felt.FromUint64(100).Hex(), pos.Hex())

	neg, err := felt.FromSignedInt64(-1)
	require.NoError(t, err)
	// -1 mod P == P-1
	modulus := new(big.Int)
	neg.BigInt(modulus)
	expected := new(big.Int).Sub(fpModulus(t), big.NewInt(1))
	assert.Equal(t, expected, modulus)
}

func TestFromSignedBigIntOutOfRange(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 251)
	_, err := felt.FromSignedBigInt(huge)
	assert.ErrorIs(t, err, felt.ErrOutOfRange)

	neg := new(big.Int).Neg(huge)
	_, err = felt.FromSignedBigInt(neg)
	assert.ErrorIs(t, err, felt.ErrOutOfRange)
}

func TestFromBigIntOutOfRange(t *testing.T) {
	_, err := felt.FromBigInt(big.NewInt(-1))
	assert.ErrorIs(t, err, felt.ErrOutOfRange)

	tooBig := fpModulus(t)
	_, err = felt.FromBigInt(tooBig)
	assert.ErrorIs(t, err, felt.ErrOutOfRange)
}

func TestFromShortString(t *testing.T) {
	f, err := felt.FromShortString("")
	require.NoError(t, err)
	assert.True(t, f.IsZero())

	f, err = felt.FromShortString("abc")
	require.NoError(t, err)
	expected := big.NewInt(0)
	expected.SetBytes([]byte("abc"))
	actual := new(big.Int)
	f.BigInt(actual)
	assert.Equal(t, expected, actual)

	_, err = felt.FromShortString(string(make([]byte, 32)))
	assert.ErrorIs(t, err, felt.ErrOutOfRange)
}

func TestEqualAndCmp(t *testing.T) {
	a := felt.FromUint64(1)
	b := felt.FromUint64(2)
	assert.False(t, a.Equal(b))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}

func TestJSONRoundTrip(t *testing.T) {
	f := felt.FromUint64(42)
	data, err := f.MarshalJSON()
	require.NoError(t, err)

	var decoded felt.Felt
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.True(t, f.Equal(&decoded))

	var decimalDecoded felt.Felt
	require.NoError(t, decimalDecoded.UnmarshalJSON([]byte(`"42"`)))
	assert.True(t, f.Equal(&decimalDecoded))
}

func fpModulus(t *testing.T) *big.Int {
	t.Helper()
	// P = 2^251 + 17*2^192 + 1
	p := new(big.Int).Lsh(big.NewInt(1), 251)
	term := new(big.Int).Lsh(big.NewInt(17), 192)
	p.Add(p, term)
	p.Add(p, big.NewInt(1))
	return p
}
