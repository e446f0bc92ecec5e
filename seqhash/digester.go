package seqhash

import (
	"bytes"
	"encoding/binary"
	"hash"

	"github.com/hasbyte1/go-iterable/iterable"
)

// DriverName identifies a digest algorithm driver.
type DriverName string

const (
	// DriverBlake2b256 selects BLAKE2b with a 256-bit digest.
	DriverBlake2b256 DriverName = "blake2b-256"
	// DriverBlake2b512 selects BLAKE2b with a 512-bit digest.
	DriverBlake2b512 DriverName = "blake2b-512"
	// DriverSHA3256 selects SHA3-256.
	DriverSHA3256 DriverName = "sha3-256"
)

// Digester is satisfied by every digest driver.
//
// Implementations must be safe for concurrent use: New is called once per
// [Sum] and the returned hash is owned by that call.
type Digester interface {
	// New returns a fresh, empty hash state.
	New() hash.Hash

	// Driver returns the DriverName implemented by this digester.
	Driver() DriverName
}

// Sum returns the digest of every element of s, in order, as produced by
// encode. It walks s to completion.
func Sum[T any](d Digester, s iterable.Sequence[T], encode func(T) []byte) []byte {
	var frame []byte
	h := iterable.Reduce(s, func(h hash.Hash, v T) hash.Hash {
		b := encode(v)
		frame = binary.AppendUvarint(frame[:0], uint64(len(b)))
		h.Write(frame)
		h.Write(b)
		return h
	}, d.New())
	return h.Sum(nil)
}

// Equal reports whether a and b have the same digest under d. Both
// sequences are walked to completion.
func Equal[T any](d Digester, a, b iterable.Sequence[T], encode func(T) []byte) bool {
	return bytes.Equal(Sum(d, a, encode), Sum(d, b, encode))
}

// EncodeString encodes a string element as its raw bytes.
func EncodeString(s string) []byte { return []byte(s) }

// EncodeInt encodes an integer element as a zig-zag varint.
func EncodeInt(n int) []byte { return binary.AppendVarint(nil, int64(n)) }
