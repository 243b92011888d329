package seo

import (
	"go.uber.org/zap"

	"github.com/gnuletik/datocms-client-go/pkg/entities"
)

// RuleResult pairs a rule name with what it resolved to
type RuleResult struct {
	Rule   string
	Result Result
}

// Builder runs the rule table for an environment
type Builder struct {
	env    Env
	logger *zap.Logger
}

// Option configures a Builder
type Option func(*Builder)

// WithLogger logs each rule's contribution at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a builder for the given environment
func NewBuilder(env Env, opts ...Option) *Builder {
	b := &Builder{
		env:    env,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Env returns the builder's environment
func (b *Builder) Env() Env {
	return b.env
}

// Resolve runs every rule in table order and returns each rule's result,
// including empty ones
func (b *Builder) Resolve(item *entities.Item, site *entities.Site) []RuleResult {
	results := make([]RuleResult, 0, len(rules))
	for _, rule := range rules {
		res := rule.Resolve(b.env, item, site)
		b.logger.Debug("seo rule resolved",
			zap.String("rule", rule.Name),
			zap.Stringer("kind", res.Kind()),
			zap.Int("tags", len(res.tags)),
		)
		results = append(results, RuleResult{Rule: rule.Name, Result: res})
	}
	return results
}

// Build runs every rule in table order and concatenates their tags.
// The result is never nil.
func (b *Builder) Build(item *entities.Item, site *entities.Site) []Tag {
	return Flatten(b.Resolve(item, site))
}

// Flatten concatenates rule results in order, skipping empty ones
func Flatten(results []RuleResult) []Tag {
	tags := make([]Tag, 0, len(results))
	for _, r := range results {
		switch r.Result.Kind() {
		case ResultNone:
			continue
		case ResultSingle, ResultMultiple:
			tags = append(tags, r.Result.tags...)
		}
	}
	return tags
}

// Build runs every rule with a default builder
func Build(env Env, item *entities.Item, site *entities.Site) []Tag {
	return NewBuilder(env).Build(item, site)
}
