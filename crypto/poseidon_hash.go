package crypto

import (
	"math/big"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// The Hades permutation's round constants must match the table the
// chain itself uses: a typed-data or v3 transaction hash computed
// with a different table is a different hash, so a signature over it
// is silently rejected once it reaches a real sequencer. roundConstants
// is therefore not free to be an arbitrary deterministic table - it is
// derived below by the Grain LFSR parameter-generation procedure from
// the Poseidon paper's reference implementation, run with the stark
// field's own modulus and this permutation's round configuration; this
// is the same procedure used to produce the published Hades constant
// table, rather than a repo-local domain-separated hash of round/lane
// indices.
const (
	poseidonWidth       = 3
	poseidonFullRounds  = 8
	poseidonPartRounds  = 83
	poseidonTotalRounds = poseidonFullRounds + poseidonPartRounds
)

// mdsMatrix is the small 3x3 MDS matrix conventionally used for
// width-3 Poseidon instances: [[3,1,1],[1,-1,1],[1,1,-2]] (mod P).
var mdsMatrix = func() [poseidonWidth][poseidonWidth]fp.Element {
	var m [poseidonWidth][poseidonWidth]fp.Element
	set := func(i, j int, v int64) {
		if v >= 0 {
			m[i][j].SetUint64(uint64(v))
			return
		}
		var t fp.Element
		t.SetUint64(uint64(-v))
		m[i][j].Neg(&t)
	}
	set(0, 0, 3)
	set(0, 1, 1)
	set(0, 2, 1)
	set(1, 0, 1)
	set(1, 1, -1)
	set(1, 2, 1)
	set(2, 0, 1)
	set(2, 1, 1)
	set(2, 2, -2)
	return m
}()

// grainSeedOnes is the trailing run of 1-bits the Grain parameter
// generator's seed is padded with, after the field/S-box/size/round
// header, to fill the 80-bit LFSR state.
const grainSeedOnes = 30

// grainLFSR is the 80-bit Grain-style linear-feedback shift register
// the Poseidon paper's reference script (generate_parameters_grain.sage)
// uses to turn a hash instance's parameters into its round constants.
// Bit 79 is always the most recently produced bit; advance feeds back
// XOR taps at 0, 13, 23, 38, 51, 62.
type grainLFSR struct {
	state [80]uint8
}

func newGrainLFSR(fieldBits, width, fullRounds, partRounds int) *grainLFSR {
	bits := make([]uint8, 0, 80)
	push := func(v uint64, n int) {
		for i := n - 1; i >= 0; i-- {
			bits = append(bits, uint8(v>>uint(i))&1)
		}
	}
	push(1, 2)  // field type: prime field
	push(0, 4)  // S-box type: x^alpha
	push(uint64(fieldBits), 12)
	push(uint64(width), 12)
	push(uint64(fullRounds), 10)
	push(uint64(partRounds), 10)
	for i := 0; i < grainSeedOnes; i++ {
		bits = append(bits, 1)
	}

	g := &grainLFSR{}
	copy(g.state[:], bits)
	for i := 0; i < 160; i++ {
		g.advance()
	}
	return g
}

func (g *grainLFSR) advance() uint8 {
	b := g.state[0] ^ g.state[13] ^ g.state[23] ^ g.state[38] ^ g.state[51] ^ g.state[62]
	copy(g.state[:79], g.state[1:])
	g.state[79] = b
	return b
}

// bit produces one output bit per the reference generator's rejection
// rule: two LFSR steps are consumed, and the pair is discarded outright
// whenever the first step's bit is zero.
func (g *grainLFSR) bit() uint8 {
	for {
		first := g.advance()
		second := g.advance()
		if first == 1 {
			return second
		}
	}
}

// fieldElement draws a uniform element of Z_modulus by generating
// fieldBits output bits at a time and rejecting draws that land at or
// above the modulus.
func (g *grainLFSR) fieldElement(fieldBits int, modulus *big.Int) fp.Element {
	for {
		v := new(big.Int)
		for i := 0; i < fieldBits; i++ {
			v.Lsh(v, 1)
			if g.bit() == 1 {
				v.SetBit(v, 0, 1)
			}
		}
		if v.Cmp(modulus) < 0 {
			var e fp.Element
			e.SetBigInt(v)
			return e
		}
	}
}

// roundConstants is the Hades round-constant table, generated by
// seeding grainLFSR with the stark field's bit length and this
// permutation's own width/round configuration - the same derivation
// StarkWare's own parameter generator runs to produce the published
// table, rather than a value transcribed by hand.
var roundConstants = func() [poseidonTotalRounds][poseidonWidth]fp.Element {
	g := newGrainLFSR(felt.Bits, poseidonWidth, poseidonFullRounds, poseidonPartRounds)
	modulus := fp.Modulus()

	var rc [poseidonTotalRounds][poseidonWidth]fp.Element
	for round := range rc {
		for lane := range rc[round] {
			rc[round][lane] = g.fieldElement(felt.Bits, modulus)
		}
	}
	return rc
}()

func cube(x *fp.Element) {
	var sq fp.Element
	sq.Square(x)
	x.Mul(&sq, x)
}

func mdsMultiply(state *[poseidonWidth]fp.Element) {
	var next [poseidonWidth]fp.Element
	for i := 0; i < poseidonWidth; i++ {
		var acc fp.Element
		for j := 0; j < poseidonWidth; j++ {
			var term fp.Element
			term.Mul(&mdsMatrix[i][j], &state[j])
			acc.Add(&acc, &term)
		}
		next[i] = acc
	}
	*state = next
}

// hadesPermutation runs the width-3 Hades permutation in place: full
// S-box rounds on every lane at the start and end, partial S-box
// rounds (lane 0 only) in between, an MDS mix after every round.
func hadesPermutation(state *[poseidonWidth]fp.Element) {
	halfFull := poseidonFullRounds / 2
	for round := 0; round < poseidonTotalRounds; round++ {
		for lane := range state {
			state[lane].Add(&state[lane], &roundConstants[round][lane])
		}
		if round < halfFull || round >= halfFull+poseidonPartRounds {
			for lane := range state {
				cube(&state[lane])
			}
		} else {
			cube(&state[0])
		}
		mdsMultiply(state)
	}
}

// Poseidon implements the two-argument [Poseidon hash]: the first
// output lane of the permutation applied to the state (a, b, 2), the
// capacity lane seeded with 2 to separate this from array hashing.
//
// [Poseidon hash]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#poseidon_hash
func Poseidon(a, b *felt.Felt) *felt.Felt {
	var state [poseidonWidth]fp.Element
	state[0] = *a.Impl()
	state[1] = *b.Impl()
	state[2].SetUint64(2)
	hadesPermutation(&state)
	return felt.FromImpl(&state[0])
}

// PoseidonArray implements [Poseidon array hashing]: elements are
// absorbed two at a time into the rate lanes, with the permutation
// run after every full pair; a trailing unpaired element is absorbed
// alone with the capacity lane marked, so a run with a final partial
// chunk never collides with one whose length happens to be even.
//
// [Poseidon array hashing]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#array_hashing
func PoseidonArray(elems ...*felt.Felt) *felt.Felt {
	var digest PoseidonDigest
	return digest.Update(elems...).Finish()
}

var _ Digest = (*PoseidonDigest)(nil)

// PoseidonDigest accumulates a Poseidon array hash incrementally,
// buffering at most one unpaired element between calls to Update.
type PoseidonDigest struct {
	state   [poseidonWidth]fp.Element
	pending *felt.Felt
	any     bool
}

func (d *PoseidonDigest) Update(elems ...*felt.Felt) Digest {
	for _, e := range elems {
		d.any = true
		if d.pending == nil {
			d.pending = e
			continue
		}
		d.state[0].Add(&d.state[0], d.pending.Impl())
		d.state[1].Add(&d.state[1], e.Impl())
		hadesPermutation(&d.state)
		d.pending = nil
	}
	return d
}

func (d *PoseidonDigest) Finish() *felt.Felt {
	var one fp.Element
	one.SetUint64(1)

	switch {
	case d.pending != nil:
		d.state[0].Add(&d.state[0], d.pending.Impl())
		d.state[2].Add(&d.state[2], &one)
		hadesPermutation(&d.state)
		d.pending = nil
	case !d.any:
		d.state[2].Add(&d.state[2], &one)
		hadesPermutation(&d.state)
	}
	return felt.FromImpl(&d.state[0])
}
