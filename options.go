package cascade

import (
	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/decode"
	"github.com/npillmayer/cascade/nodedata"
	"github.com/npillmayer/cascade/style"
)

// config holds the settings of analyzers.
type config struct {
	media      cssom.MediaSpec
	factory    nodedata.Factory
	decoder    *decode.Decoder
	meta       style.Metadata
	cond       MatchCondition
	duplicates bool
	pseudos    bool
}

func defaultConfig() config {
	return config{
		media:   cssom.NewMedia("screen"),
		factory: nodedata.NewMultiMap,
		cond:    ConditionOnElements,
		pseudos: true,
	}
}

// resolveDefaults fills in the shared defaults for settings the options left
// empty. After this, analyzers only read their configuration.
func (c *config) resolveDefaults() {
	if c.decoder == nil {
		c.decoder = decode.Default()
	}
	if c.meta == nil {
		c.meta = style.DefaultTable()
	}
}

// Option configures an analyzer.
type Option func(*config)

// WithMedia sets the media context rules are classified for. The default is
// a screen medium.
func WithMedia(media cssom.MediaSpec) Option {
	return func(c *config) {
		if media != nil {
			c.media = media
		}
	}
}

// WithNodeDataFactory selects the NodeData implementation. The default is
// nodedata.NewMultiMap.
func WithNodeDataFactory(f nodedata.Factory) Option {
	return func(c *config) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithDecoder sets the declaration decoder. The default is decode.Default().
func WithDecoder(dec *decode.Decoder) Option {
	return func(c *config) {
		c.decoder = dec
	}
}

// WithMetadata sets the property metadata. The default is
// style.DefaultTable().
func WithMetadata(meta style.Metadata) Option {
	return func(c *config) {
		c.meta = meta
	}
}

// WithMatchCondition restricts the nodes selector steps may match.
func WithMatchCondition(cond MatchCondition) Option {
	return func(c *config) {
		if cond != nil {
			c.cond = cond
		}
	}
}

// WithDuplicateCandidates keeps rules which are registered under more than
// one key (e.g. "p.note" under "p" and "note") in the candidate list once per
// key. Their declarations are then assigned more than once, which does not
// change the resulting styles.
func WithDuplicateCandidates(on bool) Option {
	return func(c *config) {
		c.duplicates = on
	}
}

// WithPseudoElements switches the computation of pseudo-element styles on or
// off. The default is on.
func WithPseudoElements(on bool) Option {
	return func(c *config) {
		c.pseudos = on
	}
}
