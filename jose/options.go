package jose

import (
	"crypto/rand"
	"io"
)

type context struct {
	generator Generator
	random    io.Reader
}

func newContext(opts ...Option) *context {
	ctx := &context{
		generator: DefaultGenerator,
		random:    rand.Reader,
	}
	return ctx.apply(opts...)
}

// apply the options to the context and returns it.
func (ctx *context) apply(opts ...Option) *context {
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Option is the type used to add attributes to the context.
type Option func(ctx *context)

// WithGenerator sets the Generator used to create the key material.
func WithGenerator(gen Generator) Option {
	return func(ctx *context) {
		if gen != nil {
			ctx.generator = gen
		}
	}
}

// WithRandom sets the source used to generate key ids.
func WithRandom(r io.Reader) Option {
	return func(ctx *context) {
		if r != nil {
			ctx.random = r
		}
	}
}
