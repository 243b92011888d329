// Package preview loads a DatoCMS document and builds the head tags of one
// of its items. The CLI and the HTTP endpoint share it.
package preview

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/gnuletik/datocms-client-go/pkg/entities"
	"github.com/gnuletik/datocms-client-go/pkg/jsonapi"
	"github.com/gnuletik/datocms-client-go/pkg/seo"
)

// Selector picks the item to build tags for. An empty selector builds the
// site-wide tags with no item.
type Selector struct {
	// ItemID selects an item by id and takes precedence over ItemType
	ItemID string

	// ItemType and Index select the Index-th item of an item type
	ItemType string
	Index    int
}

// IsZero reports whether the selector selects no item
func (s Selector) IsZero() bool {
	return s.ItemID == "" && s.ItemType == ""
}

// Result is the outcome of a build
type Result struct {
	Item      *entities.Item
	Site      *entities.Site
	Rules     []seo.RuleResult
	Tags      []seo.Tag
	Resources int
}

// Load decodes a JSON:API document with camelized keys and indexes it
func Load(r io.Reader) (*entities.Repo, error) {
	doc, err := jsonapi.Decode(r, jsonapi.DecodeOptions{Camelize: true})
	if err != nil {
		return nil, err
	}

	graph, err := entities.FromDocument(doc)
	if err != nil {
		return nil, err
	}

	return entities.NewRepo(graph), nil
}

// Select resolves a selector against the repo. A zero selector returns nil.
func Select(repo *entities.Repo, sel Selector) (*entities.Item, error) {
	switch {
	case sel.ItemID != "":
		item, ok := repo.Item(sel.ItemID)
		if !ok {
			return nil, &ItemNotFoundError{Selector: sel}
		}
		return item, nil
	case sel.ItemType != "":
		if sel.Index < 0 {
			return nil, fmt.Errorf("%w: negative index %d", ErrInvalidSelector, sel.Index)
		}
		items := repo.ItemsOfType(sel.ItemType)
		if sel.Index >= len(items) {
			return nil, &ItemNotFoundError{Selector: sel, Count: len(items)}
		}
		return items[sel.Index], nil
	default:
		return nil, nil
	}
}

// Builder builds tags for documents
type Builder struct {
	env    seo.Env
	logger *zap.Logger
}

// NewBuilder creates a builder. A nil logger disables logging.
func NewBuilder(env seo.Env, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{env: env, logger: logger}
}

// Build requires the document to hold exactly one site. An empty locale
// keeps the builder's default.
func (b *Builder) Build(repo *entities.Repo, sel Selector, locale string) (*Result, error) {
	site, err := repo.Site()
	if err != nil {
		return nil, err
	}

	item, err := Select(repo, sel)
	if err != nil {
		return nil, err
	}

	env := b.env
	if locale != "" {
		env.Locale = locale
	}

	rules := seo.NewBuilder(env, seo.WithLogger(b.logger)).Resolve(item, site)
	return &Result{
		Item:      item,
		Site:      site,
		Rules:     rules,
		Tags:      seo.Flatten(rules),
		Resources: repo.Graph().Index().Len(),
	}, nil
}

// BuildFrom loads the document from r and builds it
func (b *Builder) BuildFrom(r io.Reader, sel Selector, locale string) (*Result, error) {
	repo, err := Load(r)
	if err != nil {
		return nil, err
	}
	return b.Build(repo, sel, locale)
}
