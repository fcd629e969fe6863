// Package bytearray implements the canonical Starknet representation
// of a byte string: a list of 31-byte "full words" (each packs losslessly
// into one felt), a trailing "pending word" of 0..30 bytes, and the
// pending word's byte length. See
// https://docs.starknet.io/documentation/architecture_and_concepts/Smart_Contracts/byte-array/.
package bytearray

import "github.com/NethermindEth/starknet-typedtx/felt"

// fullWordSize is the number of bytes a "full word" packs: one short
// of 32 so every full word fits losslessly in a felt (which has 251
// usable bits, i.e. just under 32 bytes).
const fullWordSize = 31

// ByteArray is the parsed form of an arbitrary byte string.
type ByteArray struct {
	fullWords   []*felt.Felt
	pendingWord *felt.Felt
	pendingLen  int
}

// FromString splits s's UTF-8 bytes into 31-byte big-endian chunks;
// all but the trailing 0..30 bytes become full words, the remainder
// becomes the pending word.
func FromString(s string) *ByteArray {
	b := []byte(s)
	ba := &ByteArray{}
	for len(b) >= fullWordSize {
		ba.fullWords = append(ba.fullWords, felt.FromBytes(b[:fullWordSize]))
		b = b[fullWordSize:]
	}
	ba.pendingWord = felt.FromBytes(b)
	ba.pendingLen = len(b)
	return ba
}

// FullWords returns the full-word felts, in order.
func (ba *ByteArray) FullWords() []*felt.Felt {
	return ba.fullWords
}

// PendingWord returns the trailing 0..30 bytes, as a felt.
func (ba *ByteArray) PendingWord() *felt.Felt {
	return ba.pendingWord
}

// PendingLen returns the trailing pending word's byte length.
func (ba *ByteArray) PendingLen() int {
	return ba.pendingLen
}

// Bytes reconstructs the original byte string: the concatenation of
// every full word's 31 bytes followed by the pending word's last
// PendingLen bytes.
func (ba *ByteArray) Bytes() []byte {
	out := make([]byte, 0, len(ba.fullWords)*fullWordSize+ba.pendingLen)
	for _, w := range ba.fullWords {
		b := w.Bytes()
		out = append(out, b[32-fullWordSize:]...)
	}
	if ba.pendingLen > 0 {
		b := ba.pendingWord.Bytes()
		out = append(out, b[32-ba.pendingLen:]...)
	}
	return out
}

// String reconstructs the original string via Bytes.
func (ba *ByteArray) String() string {
	return string(ba.Bytes())
}

// ToCalldata emits the Cairo calldata encoding of ba:
// [len(full_words), full_words..., pending_word, pending_word_len],
// i.e. 3+len(full_words) felts.
func (ba *ByteArray) ToCalldata() []*felt.Felt {
	out := make([]*felt.Felt, 0, 3+len(ba.fullWords))
	out = append(out, felt.FromUint64(uint64(len(ba.fullWords))))
	out = append(out, ba.fullWords...)
	out = append(out, ba.pendingWord, felt.FromUint64(uint64(ba.pendingLen)))
	return out
}
