// Package entitiestest builds DatoCMS documents for tests: one article item,
// its site, the article item type and its four fields.
package entitiestest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gnuletik/datocms-client-go/pkg/entities"
	"github.com/gnuletik/datocms-client-go/pkg/jsonapi"
)

// Fixture holds the variable parts of the document. Maps use the raw
// snake_case keys of the API; nil values are serialized as null.
type Fixture struct {
	ItemTitle   interface{}
	SeoSettings map[string]interface{}
	ItemImage   map[string]interface{}
	GlobalSeo   map[string]interface{}
	NoIndex     interface{}
	// UpdatedAt overrides the item's updated_at; empty keeps the default
	UpdatedAt string
}

// DefaultUpdatedAt is the item's updated_at unless Fixture.UpdatedAt is set
const DefaultUpdatedAt = "2016-12-07T09:14:22Z"

// Image returns an image attribute payload pointing at path
func Image(path string) map[string]interface{} {
	return map[string]interface{}{
		"path":   path,
		"width":  569,
		"height": 629,
		"format": "png",
		"size":   572451,
	}
}

func (f Fixture) updatedAt() string {
	if f.UpdatedAt == "" {
		return DefaultUpdatedAt
	}
	return f.UpdatedAt
}

// Document returns the raw JSON:API document
func (f Fixture) Document() map[string]interface{} {
	return map[string]interface{}{
		"data": []interface{}{
			map[string]interface{}{
				"id":   "24038",
				"type": "item",
				"attributes": map[string]interface{}{
					"updated_at":     f.updatedAt(),
					"is_valid":       true,
					"title":          f.ItemTitle,
					"another_string": "Foo bar",
					"seo_settings":   nilIfEmpty(f.SeoSettings),
					"image":          nilIfEmpty(f.ItemImage),
				},
				"relationships": map[string]interface{}{
					"item_type": toOne("item_type", "3781"),
				},
			},
			map[string]interface{}{
				"id":   "681",
				"type": "site",
				"attributes": map[string]interface{}{
					"name":            "XXX",
					"locales":         []interface{}{"en"},
					"theme_hue":       190,
					"domain":          nil,
					"internal_domain": "wispy-sun-3056.admin.datocms.com",
					"global_seo":      nilIfEmpty(f.GlobalSeo),
					"favicon":         nil,
					"no_index":        f.NoIndex,
					"ssg":             nil,
				},
				"relationships": map[string]interface{}{
					"menu_items": toMany("menu_item", "4212"),
					"item_types": toMany("item_type", "3781"),
				},
			},
			map[string]interface{}{
				"id":   "3781",
				"type": "item_type",
				"attributes": map[string]interface{}{
					"name":      "Article",
					"singleton": false,
					"sortable":  false,
					"api_key":   "article",
				},
				"relationships": map[string]interface{}{
					"fields":         toMany("field", "15088", "15085", "15086", "15087"),
					"singleton_item": map[string]interface{}{"data": nil},
				},
			},
			field("15088", "Image", "image", "image", 1, nil, nil),
			field("15085", "Title", "string", "title", 2,
				map[string]interface{}{"required": map[string]interface{}{}},
				map[string]interface{}{"type": "title"}),
			field("15086", "Another string", "string", "another_string", 3, nil,
				map[string]interface{}{"type": "plain"}),
			field("15087", "SEO settings", "seo", "seo_settings", 4, nil, nil),
		},
	}
}

// JSON returns the document serialized
func (f Fixture) JSON() []byte {
	data, err := json.Marshal(f.Document())
	if err != nil {
		panic(err)
	}
	return data
}

// Repo decodes the document with camelized keys and wraps it in a repo
func (f Fixture) Repo(t testing.TB) *entities.Repo {
	t.Helper()

	doc, err := jsonapi.DecodeBytes(f.JSON(), jsonapi.DecodeOptions{Camelize: true})
	require.NoError(t, err)

	graph, err := entities.FromDocument(doc)
	require.NoError(t, err)

	return entities.NewRepo(graph)
}

// Article returns the fixture's article item
func (f Fixture) Article(t testing.TB) *entities.Item {
	t.Helper()

	articles := f.Repo(t).ItemsOfType("article")
	require.Len(t, articles, 1)
	return articles[0]
}

// Site returns the fixture's site
func (f Fixture) Site(t testing.TB) *entities.Site {
	t.Helper()

	site, err := f.Repo(t).Site()
	require.NoError(t, err)
	return site
}

func nilIfEmpty(m map[string]interface{}) interface{} {
	if m == nil {
		return nil
	}
	return m
}

func toOne(typ, id string) map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{"id": id, "type": typ},
	}
}

func toMany(typ string, ids ...string) map[string]interface{} {
	data := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		data = append(data, map[string]interface{}{"id": id, "type": typ})
	}
	return map[string]interface{}{"data": data}
}

func field(id, label, fieldType, apiKey string, position int, validators, appearance map[string]interface{}) map[string]interface{} {
	if validators == nil {
		validators = map[string]interface{}{}
	}
	if appearance == nil {
		appearance = map[string]interface{}{}
	}
	return map[string]interface{}{
		"id":   id,
		"type": "field",
		"attributes": map[string]interface{}{
			"label":       label,
			"field_type":  fieldType,
			"api_key":     apiKey,
			"hint":        nil,
			"localized":   false,
			"validators":  validators,
			"position":    position,
			"appeareance": appearance,
		},
		"relationships": map[string]interface{}{
			"item_type": toOne("item_type", "3781"),
		},
	}
}
