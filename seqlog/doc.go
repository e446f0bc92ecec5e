// Package seqlog traces sequence consumption through a zap logger.
//
// [Trace] wraps any sequence in a lazy pass-through that logs each advance and
// the moment the sequence reports done. Every cursor is tagged with a random
// uuid so interleaved walks of the same sequence can be told apart:
//
//	logger, _ := zap.NewDevelopment()
//	rows := seqlog.Trace(rows, seqlog.WithLogger(logger), seqlog.WithName("rows"))
//
// The wrapper never changes elements, order, or laziness: nothing is logged
// and no upstream cursor is taken until the first advance.
package seqlog
