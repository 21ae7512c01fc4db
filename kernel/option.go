// SPDX-License-Identifier: MIT
package kernel

import (
	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/hashindex"
	"github.com/colkit/rangeselect/imprint"
	"github.com/colkit/rangeselect/internal/trace"
)

// config holds a Select/ThetaSelect call's resolved options. hashIndex and
// imprintIndex are untyped for the same reason column.Column stores them
// untyped: a single non-generic Option type has to carry a caller-supplied
// *hashindex.Index[T]/*imprint.Index[T] for whichever T the call
// instantiates.
type config struct {
	trace        trace.Sink
	hashIndex    any
	imprintIndex any
	imprintOpts  []imprint.Option
}

func defaultConfig() config {
	return config{trace: trace.Noop}
}

// Option configures a single Select or ThetaSelect call.
type Option func(*config)

// WithTrace supplies a sink for advisory strategy/collaborator-build
// events. A nil sink is ignored; the default is trace.Noop.
func WithTrace(sink trace.Sink) Option {
	return func(c *config) {
		if sink != nil {
			c.trace = sink
		}
	}
}

// WithHashIndex supplies an already-built hash index, skipping the
// kernel's lazy build for a hash-strategy call. The index must have been
// built over the same column passed to Select/ThetaSelect.
func WithHashIndex[T column.Numeric](idx *hashindex.Index[T]) Option {
	return func(c *config) { c.hashIndex = idx }
}

// WithImprintIndex supplies an already-built imprint index, skipping the
// kernel's lazy build for a scan call over a persistent column.
func WithImprintIndex[T column.Numeric](idx *imprint.Index[T]) Option {
	return func(c *config) { c.imprintIndex = idx }
}

// WithImprintOptions forwards options to a lazily-triggered imprint.Build
// call (e.g. imprint.WithK, imprint.WithPageBytes). Ignored when an
// imprint index is supplied directly via WithImprintIndex.
func WithImprintOptions(opts ...imprint.Option) Option {
	return func(c *config) { c.imprintOpts = opts }
}
