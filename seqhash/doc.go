// Package seqhash computes cryptographic digests over sequences.
//
// # Architecture
//
// The central abstraction is the [Digester] interface. Three drivers ship
// with this package, all backed by golang.org/x/crypto:
//
//   - [DriverBlake2b256] — BLAKE2b with a 32-byte digest (the default)
//   - [DriverBlake2b512] — BLAKE2b with a 64-byte digest
//   - [DriverSHA3256]    — SHA3-256
//
// BLAKE2b drivers may also be keyed, turning the digest into a MAC; see
// [NewBlake2bDigester].
//
// The [Manager] is a named driver registry with a default driver, mirroring
// the driver/manager split used throughout this module.
//
// # Quick start
//
//	d := seqhash.Blake2b256()
//	sum := seqhash.Sum(d, iterable.Of("a", "b"), seqhash.EncodeString)
//
// # Framing
//
// [Sum] writes every encoded element prefixed with its length as a uvarint,
// so ["ab"] and ["a", "b"] produce different digests. The digest depends on
// element order.
//
// # Termination
//
// Sum walks the sequence to completion, the same contract as
// [iterable.Reduce]: it never returns for an infinite sequence, and it
// consumes a one-shot sequence.
package seqhash
