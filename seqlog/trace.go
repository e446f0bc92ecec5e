package seqlog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-iterable/iterable"
)

const (
	msgAdvance = "sequence advance"
	msgDone    = "sequence done"
)

// Trace returns a sequence yielding exactly the elements of s while logging
// each advance ("sequence advance": cursor, index[, value]) and completion
// ("sequence done": cursor, count). It is as re-iterable as s.
func Trace[T any](s iterable.Sequence[T], opts ...Option) iterable.Sequence[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if cfg.name != "" {
		logger = logger.Named(cfg.name)
	}
	return iterable.SequenceFunc[T](func() iterable.Cursor[T] {
		return &traceCursor[T]{src: s, log: logger, level: cfg.level, values: cfg.values}
	})
}

type traceCursor[T any] struct {
	src    iterable.Sequence[T]
	cur    iterable.Cursor[T]
	id     uuid.UUID
	log    *zap.Logger
	level  zapcore.Level
	values bool
	index  int
	done   bool
}

func (c *traceCursor[T]) Next() (T, bool) {
	var zero T
	if c.done {
		return zero, false
	}
	if c.cur == nil {
		c.cur = iterable.From(c.src).Cursor()
		c.id = uuid.New()
	}

	v, ok := c.cur.Next()
	if !ok {
		c.done, c.cur = true, nil
		if ce := c.log.Check(c.level, msgDone); ce != nil {
			ce.Write(zap.Stringer("cursor", c.id), zap.Int("count", c.index))
		}
		return zero, false
	}

	if ce := c.log.Check(c.level, msgAdvance); ce != nil {
		fields := []zap.Field{zap.Stringer("cursor", c.id), zap.Int("index", c.index)}
		if c.values {
			fields = append(fields, zap.Any("value", v))
		}
		ce.Write(fields...)
	}
	c.index++
	return v, true
}
