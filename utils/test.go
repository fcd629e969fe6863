package utils

import (
	"strconv"
	"strings"
	"testing"

	"golang.org/x/exp/constraints"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/stretchr/testify/require"
)

// HexToFelt parses a "0x"-prefixed hex string into a felt, failing the
// test immediately on a malformed input.
func HexToFelt(t testing.TB, hex string) *felt.Felt {
	t.Helper()
	f, err := felt.FromHex(hex)
	require.NoError(t, err)
	return f
}

// HexToUint64 parses a "0x"-prefixed (or bare) hex string into a
// uint64, failing the test immediately on a malformed input.
func HexToUint64(t testing.TB, hexStr string) uint64 {
	t.Helper()
	hexStr = strings.TrimPrefix(strings.TrimPrefix(hexStr, "0x"), "0X")
	x, err := strconv.ParseUint(hexStr, 16, 64)
	require.NoError(t, err)
	return x
}

// NumToFelt converts a non-negative integer into a felt, failing the
// test immediately if n is negative.
func NumToFelt[N constraints.Integer](t testing.TB, n N) *felt.Felt {
	t.Helper()
	if n < 0 {
		t.Fatalf("NumToFelt received a negative number: %v", n)
	}
	return felt.FromUint64(uint64(n))
}
