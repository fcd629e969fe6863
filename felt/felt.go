// Package felt implements the prime-field element ("felt") that
// underlies every Starknet hash, address and typed-data value:
// non-negative integers in [0, P) with P = 2^251 + 17*2^192 + 1.
package felt

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Felt is an element of the Starknet prime field.
type Felt struct {
	val fp.Element
}

const (
	Limbs = fp.Limbs // number of 64-bit words needed to represent an element
	Bits  = fp.Bits  // number of bits needed to represent an element
	Bytes = fp.Bytes // number of bytes needed to represent an element

	// Base10 and Base16 select the base for Felt.Text.
	Base10 = 10
	Base16 = 16

	// shortStringMaxBytes is the maximum length of a short string,
	// interpreted as a big-endian integer.
	shortStringMaxBytes = 31
)

// ErrOutOfRange is returned when a value does not fit in [0, P), or a
// signed value falls outside the range this package accepts.
var ErrOutOfRange = errors.New("felt: value out of range")

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Felt{}
	One  = *newFromUint64(1)
)

// modulus is P as a big.Int, used for explicit range checks that
// fp.Element's silent reduce-mod-P semantics don't perform for us.
var modulus = fp.Modulus()

// halfModulus bounds the magnitude of signed inputs.
var halfModulus = new(big.Int).Rsh(new(big.Int).Set(modulus), 1)

func newFromUint64(v uint64) *Felt {
	f := new(Felt)
	f.val.SetUint64(v)
	return f
}

// FromUint64 constructs a Felt from a non-negative machine integer.
// Always in range since 2^64 < P.
func FromUint64(v uint64) *Felt {
	return newFromUint64(v)
}

// FromBigInt constructs a Felt from a non-negative big.Int, failing
// with ErrOutOfRange if the value is not in [0, P).
func FromBigInt(v *big.Int) (*Felt, error) {
	if v.Sign() < 0 || v.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: %s not in [0, P)", ErrOutOfRange, v.String())
	}
	f := new(Felt)
	f.val.SetBigInt(v)
	return f, nil
}

// FromSignedBigInt maps a signed integer x into the field: x >= 0 maps
// to itself, x < 0 maps to x+P. Fails with ErrOutOfRange if |x| >= P/2.
func FromSignedBigInt(x *big.Int) (*Felt, error) {
	abs := new(big.Int).Abs(x)
	if abs.Cmp(halfModulus) >= 0 {
		return nil, fmt.Errorf("%w: |%s| >= P/2", ErrOutOfRange, x.String())
	}
	if x.Sign() >= 0 {
		return FromBigInt(x)
	}
	shifted := new(big.Int).Add(x, modulus)
	return FromBigInt(shifted)
}

// FromSignedInt64 is the machine-integer convenience form of
// FromSignedBigInt.
func FromSignedInt64(x int64) (*Felt, error) {
	return FromSignedBigInt(big.NewInt(x))
}

// FromHex parses a "0x"-prefixed (case-insensitive) hexadecimal
// string into a Felt.
func FromHex(s string) (*Felt, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("felt: hex string %q missing 0x prefix", s)
	}
	trimmed := s[2:]
	if trimmed == "" {
		return &Felt{}, nil
	}
	v, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("felt: invalid hex string %q", s)
	}
	return FromBigInt(v)
}

// FromDecimal parses a decimal string into a Felt.
func FromDecimal(s string) (*Felt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("felt: invalid decimal string %q", s)
	}
	return FromBigInt(v)
}

// FromShortString encodes s (at most 31 ASCII bytes) as the big-endian
// integer of its bytes. The empty string encodes to zero.
func FromShortString(s string) (*Felt, error) {
	if len(s) > shortStringMaxBytes {
		return nil, fmt.Errorf("%w: short string %q longer than 31 bytes", ErrOutOfRange, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return nil, fmt.Errorf("felt: short string %q is not ASCII", s)
		}
	}
	f := new(Felt)
	f.val.SetBytes([]byte(s))
	return f, nil
}

// FromBytes interprets b as a big-endian integer, reducing modulo P
// exactly as gnark-crypto's Element.SetBytes does.
func FromBytes(b []byte) *Felt {
	f := new(Felt)
	f.val.SetBytes(b)
	return f
}

// Hex renders the felt as a "0x"-prefixed lowercase hex string.
func (z *Felt) Hex() string {
	return "0x" + z.val.Text(16)
}

// Text forwards to the underlying field element's Text.
func (z *Felt) Text(base int) string {
	if base == 16 {
		return z.Hex()
	}
	return z.val.Text(base)
}

// String implements fmt.Stringer, rendering as hex like the rest of
// the ecosystem's felt types.
func (z *Felt) String() string {
	return z.Hex()
}

// BigInt writes the felt's regular-form value into dst and returns it.
func (z *Felt) BigInt(dst *big.Int) *big.Int {
	return z.val.BigInt(dst)
}

// Bytes returns the big-endian 32-byte encoding of z.
func (z *Felt) Bytes() [32]byte {
	return z.val.Bytes()
}

// Equal reports whether z and x represent the same field element.
func (z *Felt) Equal(x *Felt) bool {
	return z.val.Equal(&x.val)
}

// Cmp compares z and x as non-negative integers in [0, P). Used by the
// Merkle tree (C5) to order pair operands.
func (z *Felt) Cmp(x *Felt) int {
	return z.val.Cmp(&x.val)
}

// IsZero reports whether z is the additive identity.
func (z *Felt) IsZero() bool {
	return z.val.IsZero()
}

// IsOne reports whether z is the multiplicative identity.
func (z *Felt) IsOne() bool {
	return z.val.IsOne()
}

// Add sets z to x+y (mod P) and returns z.
func (z *Felt) Add(x, y *Felt) *Felt {
	z.val.Add(&x.val, &y.val)
	return z
}

// Sub sets z to x-y (mod P) and returns z.
func (z *Felt) Sub(x, y *Felt) *Felt {
	z.val.Sub(&x.val, &y.val)
	return z
}

// Impl exposes the underlying gnark-crypto field element, for
// packages (crypto, sizedint) that need to call into gnark-crypto's
// hash and arithmetic routines directly.
func (z *Felt) Impl() *fp.Element {
	return &z.val
}

// FromImpl wraps a gnark-crypto field element as a Felt.
func FromImpl(e *fp.Element) *Felt {
	return &Felt{val: *e}
}

// MarshalJSON renders z as a quoted hex string, matching the JSON
// convention used throughout the Starknet RPC surface.
func (z *Felt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.Hex() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare decimal string, a quoted or
// bare "0x"-prefixed hex string, or a JSON number.
func (z *Felt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" {
		*z = Felt{}
		return nil
	}
	var (
		f   *Felt
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		f, err = FromHex(s)
	} else {
		f, err = FromDecimal(s)
	}
	if err != nil {
		return err
	}
	*z = *f
	return nil
}
