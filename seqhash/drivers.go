package seqhash

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Blake2bDigester implements [Digester] using BLAKE2b, optionally keyed.
// The zero value is an unkeyed BLAKE2b-256 digester, the same as
// [Blake2b256].
type Blake2bDigester struct {
	size int
	key  []byte
}

// NewBlake2bDigester returns a BLAKE2b digester producing size-byte digests.
// size must be [blake2b.Size256] or [blake2b.Size]; key may be nil and must
// not exceed 64 bytes. The key is copied.
func NewBlake2bDigester(size int, key []byte) (*Blake2bDigester, error) {
	if size != blake2b.Size256 && size != blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b size %d (want %d or %d)",
			ErrInvalidOption, size, blake2b.Size256, blake2b.Size)
	}
	if len(key) > blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b key is %d bytes (max %d)",
			ErrInvalidOption, len(key), blake2b.Size)
	}
	return &Blake2bDigester{size: size, key: append([]byte(nil), key...)}, nil
}

// Blake2b256 returns an unkeyed BLAKE2b-256 digester.
func Blake2b256() *Blake2bDigester {
	return &Blake2bDigester{size: blake2b.Size256}
}

// Blake2b512 returns an unkeyed BLAKE2b-512 digester.
func Blake2b512() *Blake2bDigester {
	return &Blake2bDigester{size: blake2b.Size}
}

// New implements [Digester].
func (d *Blake2bDigester) New() hash.Hash {
	var (
		h   hash.Hash
		err error
	)
	if d.digestSize() == blake2b.Size256 {
		h, err = blake2b.New256(d.key)
	} else {
		h, err = blake2b.New512(d.key)
	}
	if err != nil {
		// size and key length are checked by the constructors.
		panic(err)
	}
	return h
}

// Driver implements [Digester].
func (d *Blake2bDigester) Driver() DriverName {
	if d.digestSize() == blake2b.Size256 {
		return DriverBlake2b256
	}
	return DriverBlake2b512
}

func (d *Blake2bDigester) digestSize() int {
	if d.size == 0 {
		return blake2b.Size256
	}
	return d.size
}

// SHA3Digester implements [Digester] using SHA3-256.
type SHA3Digester struct{}

// SHA3256 returns a SHA3-256 digester.
func SHA3256() SHA3Digester { return SHA3Digester{} }

// New implements [Digester].
func (SHA3Digester) New() hash.Hash { return sha3.New256() }

// Driver implements [Digester].
func (SHA3Digester) Driver() DriverName { return DriverSHA3256 }
