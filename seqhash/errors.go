package seqhash

import "errors"

// Sentinel errors returned by seqhash operations.
var (
	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [SumDefault] when the requested driver has not been registered.
	ErrDriverNotFound = errors.New("seqhash: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("seqhash: driver name must not be empty")

	// ErrNilDigester is returned by [Manager.RegisterDriver] when a nil
	// [Digester] is supplied.
	ErrNilDigester = errors.New("seqhash: digester must not be nil")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter outside the allowed range, such as a BLAKE2b key longer than
	// 64 bytes.
	ErrInvalidOption = errors.New("seqhash: invalid option value")
)
