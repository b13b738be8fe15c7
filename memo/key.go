package memo

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Key is a 128-bit structural hash of a set of arguments.
type Key = xxh3.Uint128

// KeyBuilder builds a Key from arguments that cannot be used as map keys
// directly, such as slices. Every field is written with its length first, so
// ("ab", "c") and ("a", "bc") give different keys.
//
//	key := memo.NewKeyBuilder().String(pattern).Ints(groups).Key()
type KeyBuilder struct {
	buf []byte
}

func NewKeyBuilder() *KeyBuilder {
	return &KeyBuilder{buf: make([]byte, 0, 64)}
}

// Int writes a single integer.
func (b *KeyBuilder) Int(v int) *KeyBuilder {
	b.buf = binary.AppendVarint(b.buf, int64(v))

	return b
}

// Ints writes a slice of integers.
func (b *KeyBuilder) Ints(vs []int) *KeyBuilder {
	b.buf = binary.AppendUvarint(b.buf, uint64(len(vs)))

	for _, v := range vs {
		b.buf = binary.AppendVarint(b.buf, int64(v))
	}

	return b
}

// String writes a string.
func (b *KeyBuilder) String(s string) *KeyBuilder {
	b.buf = binary.AppendUvarint(b.buf, uint64(len(s)))
	b.buf = append(b.buf, s...)

	return b
}

// Key returns the hash of everything written so far.
func (b *KeyBuilder) Key() Key {
	return xxh3.Hash128(b.buf)
}
