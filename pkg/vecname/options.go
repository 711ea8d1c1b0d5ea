package vecname

import (
	"github.com/crimson-sun/vecname/internal/engine/keyword"
)

// KeywordResolver is consulted after exact lookup and before the structural
// heuristics. Return Invalid for keywords it does not recognise.
type KeywordResolver interface {
	CategoryFromKeyword(name string) Category
}

// KeywordResolverFunc adapts a plain function to KeywordResolver.
type KeywordResolverFunc func(name string) Category

// CategoryFromKeyword calls f(name).
func (f KeywordResolverFunc) CategoryFromKeyword(name string) Category {
	return f(name)
}

// OPMKeywordResolver recognises the keyword families the reservoir toolkit
// classifies without guessing. It is the default.
var OPMKeywordResolver KeywordResolver = keyword.OPM

type options struct {
	resolver    KeywordResolver
	legacyTable bool
}

// Option configures a Vecname instance.
type Option func(*options)

// WithKeywordResolver replaces the external keyword step. nil disables it.
func WithKeywordResolver(r KeywordResolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithoutLegacyTable restricts exact lookup to the current keyword table.
func WithoutLegacyTable() Option {
	return func(o *options) {
		o.legacyTable = false
	}
}

func defaultOptions() options {
	return options{
		resolver:    OPMKeywordResolver,
		legacyTable: true,
	}
}
