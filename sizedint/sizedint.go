// Package sizedint implements the bounded non-negative machine-width
// integers the typed-data and transaction layers carry alongside felts
// (tips, resource-bounds amounts and prices): Uint64 in [0, 2^64) and
// Uint128 in [0, 2^128), both with lossless felt conversion.
package sizedint

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// ErrOutOfRange is returned when a value does not fit in the type's
// declared bound.
var ErrOutOfRange = errors.New("sizedint: value out of range")

// Uint64 is a bounds-checked alias of uint64, kept as its own type so
// construction failure (from an oversized hex string, say) reports
// ErrOutOfRange instead of silently truncating.
type Uint64 uint64

// NewUint64 always succeeds: every uint64 value is in range. Provided
// for symmetry with NewUint128.
func NewUint64(v uint64) Uint64 {
	return Uint64(v)
}

// Uint64FromHex parses a "0x"-prefixed hex string into a Uint64,
// failing with ErrOutOfRange if the value does not fit in 64 bits.
func Uint64FromHex(s string) (Uint64, error) {
	v, err := parseHex(s)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("%w: %s does not fit in 64 bits", ErrOutOfRange, s)
	}
	return Uint64(v.Uint64()), nil
}

// ToFelt converts u to a Felt. Always lossless: 2^64 < P.
func (u Uint64) ToFelt() *felt.Felt {
	return felt.FromUint64(uint64(u))
}

func (u Uint64) String() string {
	return fmt.Sprintf("0x%x", uint64(u))
}

func (u *Uint64) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := Uint64FromHex(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// Uint128 is a bounded non-negative 128-bit integer, stored as
// big-endian hi/lo halves.
type Uint128 struct {
	hi, lo uint64
}

// NewUint128 combines hi and lo halves into a Uint128; every
// (hi, lo) pair is in range by construction.
func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// Uint128FromBigInt constructs a Uint128 from a non-negative big.Int,
// failing with ErrOutOfRange if it does not fit in 128 bits.
func Uint128FromBigInt(v *big.Int) (Uint128, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("%w: %s does not fit in 128 bits", ErrOutOfRange, v.String())
	}
	b := make([]byte, 16)
	v.FillBytes(b)
	return Uint128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}, nil
}

// Uint128FromHex parses a "0x"-prefixed hex string, failing with
// ErrOutOfRange if the value does not fit in 128 bits.
func Uint128FromHex(s string) (Uint128, error) {
	v, err := parseHex(s)
	if err != nil {
		return Uint128{}, err
	}
	return Uint128FromBigInt(v)
}

// Bytes returns the big-endian 16-byte encoding of u.
func (u Uint128) Bytes() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
	return b
}

// BigInt returns u as a non-negative big.Int.
func (u Uint128) BigInt() *big.Int {
	return new(big.Int).SetBytes(u.Bytes())
}

// String renders u as a "0x"-prefixed hex string with no leading
// zeros (beyond a single "0x0" for the zero value).
func (u Uint128) String() string {
	return fmt.Sprintf("0x%x", u.BigInt())
}

// Equal reports whether u and o represent the same value.
func (u Uint128) Equal(o Uint128) bool {
	return u.hi == o.hi && u.lo == o.lo
}

// ToFelt converts u to a Felt. Always lossless: 2^128 < P.
func (u Uint128) ToFelt() *felt.Felt {
	return felt.FromBytes(u.Bytes())
}

// MulWithFelt returns f*u reduced modulo P, as a raw field element
// for callers that need to fold the product into a larger
// Pedersen/Poseidon input alongside other fp.Element-typed terms.
func MulWithFelt(f *felt.Felt, u Uint128) *fp.Element {
	var product big.Int
	var fb big.Int
	f.BigInt(&fb)
	product.Mul(&fb, u.BigInt())

	result, err := felt.FromBigInt(product.Mod(&product, modulus()))
	if err != nil {
		// Mod already reduced into [0, P), so FromBigInt cannot fail.
		panic(err)
	}
	return result.Impl()
}

func modulus() *big.Int {
	return fp.Modulus()
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := Uint128FromHex(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func parseHex(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("sizedint: empty string is not a valid hex value")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("sizedint: hex string %q missing 0x prefix", s)
	}
	trimmed := s[2:]
	if trimmed == "" {
		return big.NewInt(0), nil
	}
	if _, err := hex.DecodeString(padEven(trimmed)); err != nil {
		return nil, fmt.Errorf("sizedint: invalid hex string %q: %w", s, err)
	}
	v, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("sizedint: invalid hex string %q", s)
	}
	return v, nil
}

func padEven(s string) string {
	if len(s)%2 != 0 {
		return "0" + s
	}
	return s
}
