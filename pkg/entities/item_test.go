package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnuletik/datocms-client-go/pkg/entities"
	"github.com/gnuletik/datocms-client-go/pkg/entities/entitiestest"
	"github.com/gnuletik/datocms-client-go/pkg/jsonapi"
)

func TestItemAttributes(t *testing.T) {
	item := entitiestest.Fixture{ItemTitle: "Hello world"}.Article(t)

	updatedAt, ok := item.UpdatedAt()
	require.True(t, ok)
	assert.Equal(t, "2016-12-07T09:14:22Z", updatedAt.Format(time.RFC3339))
	assert.True(t, item.IsValid())
	assert.Equal(t, "Hello world", item.Title())

	v, ok := item.Field("another_string")
	require.True(t, ok)
	assert.Equal(t, "Foo bar", v)

	assert.Equal(t, "Hello world", item.TitleFieldValue())
}

func TestItemSeoSettings(t *testing.T) {
	item := entitiestest.Fixture{}.Article(t)
	_, ok := item.SeoSettings()
	assert.False(t, ok)

	item = entitiestest.Fixture{
		SeoSettings: map[string]interface{}{
			"title":        "SEO title",
			"description":  "SEO description",
			"twitter_card": "summary_large_image",
			"image":        entitiestest.Image("/seo.png"),
		},
	}.Article(t)

	seo, ok := item.SeoSettings()
	require.True(t, ok)
	assert.Equal(t, "SEO title", seo.Title)
	assert.Equal(t, "SEO description", seo.Description)
	assert.Equal(t, "summary_large_image", seo.TwitterCard)
	require.NotNil(t, seo.Image)
	assert.Equal(t, "/seo.png", seo.Image.Path)
	assert.Equal(t, 572451, seo.Image.Size)
}

func TestItemSeoSettingsFromSeoField(t *testing.T) {
	graph, err := entities.FromResources([]jsonapi.Resource{
		{
			Type:       "item",
			ID:         "1",
			Attributes: map[string]interface{}{"meta": map[string]interface{}{"description": "From field"}},
			Relationships: map[string]jsonapi.Relationship{
				"itemType": jsonapi.ToOne(&jsonapi.Identifier{Type: "item_type", ID: "10"}),
			},
		},
		{
			Type:       "item_type",
			ID:         "10",
			Attributes: map[string]interface{}{"apiKey": "page"},
			Relationships: map[string]jsonapi.Relationship{
				"fields": jsonapi.ToMany(jsonapi.Identifier{Type: "field", ID: "100"}),
			},
		},
		{
			Type:       "field",
			ID:         "100",
			Attributes: map[string]interface{}{"apiKey": "meta", "fieldType": "seo"},
		},
	})
	require.NoError(t, err)

	item, ok := entities.NewRepo(graph).Item("1")
	require.True(t, ok)

	seo, ok := item.SeoSettings()
	require.True(t, ok)
	assert.Equal(t, "From field", seo.Description)
}

func TestItemImage(t *testing.T) {
	item := entitiestest.Fixture{}.Article(t)
	_, ok := item.Image()
	assert.False(t, ok)

	item = entitiestest.Fixture{ItemImage: entitiestest.Image("/image.png")}.Article(t)
	img, ok := item.Image()
	require.True(t, ok)
	assert.Equal(t, "/image.png", img.Path)
	assert.Equal(t, 569, img.Width)
	assert.Equal(t, 629, img.Height)
	assert.Equal(t, "png", img.Format)

	item = entitiestest.Fixture{ItemImage: map[string]interface{}{"path": ""}}.Article(t)
	_, ok = item.Image()
	assert.False(t, ok, "an image without path is absent")
}

func TestItemTypeAndFields(t *testing.T) {
	item := entitiestest.Fixture{}.Article(t)

	itemType, ok := item.ItemType()
	require.True(t, ok)
	assert.Equal(t, "Article", itemType.Name())
	assert.Equal(t, "article", itemType.APIKey())
	assert.False(t, itemType.Singleton())
	assert.False(t, itemType.Sortable())

	_, ok = itemType.SingletonItem()
	assert.False(t, ok)

	fields := itemType.Fields()
	require.Len(t, fields, 4)
	var keys []string
	for _, f := range fields {
		keys = append(keys, f.APIKey())
	}
	assert.Equal(t, []string{"image", "title", "another_string", "seo_settings"}, keys)

	title, ok := itemType.TitleField()
	require.True(t, ok)
	assert.Equal(t, "Title", title.Label())
	assert.Equal(t, "string", title.FieldType())
	assert.Equal(t, "", title.Hint())
	assert.False(t, title.Localized())
	assert.Contains(t, title.Validators(), "required")
	assert.Equal(t, "title", title.AppearanceType())

	pos, ok := title.Position()
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	owner, ok := title.ItemType()
	require.True(t, ok)
	assert.Equal(t, itemType.ID(), owner.ID())

	seoField, ok := itemType.Field("seo_settings")
	require.True(t, ok)
	assert.Equal(t, entities.FieldTypeSeo, seoField.FieldType())

	_, ok = itemType.Field("missing")
	assert.False(t, ok)
}

func TestFieldsOrderedByPosition(t *testing.T) {
	graph, err := entities.FromResources([]jsonapi.Resource{
		{
			Type: "item_type",
			ID:   "1",
			Relationships: map[string]jsonapi.Relationship{
				"fields": jsonapi.ToMany(
					jsonapi.Identifier{Type: "field", ID: "c"},
					jsonapi.Identifier{Type: "field", ID: "a"},
					jsonapi.Identifier{Type: "field", ID: "b"},
				),
			},
		},
		{Type: "field", ID: "a", Attributes: map[string]interface{}{"position": float64(2)}},
		{Type: "field", ID: "b", Attributes: map[string]interface{}{"position": float64(1)}},
		{Type: "field", ID: "c"},
	})
	require.NoError(t, err)

	repo := entities.NewRepo(graph)
	itemTypes := repo.ItemTypes()
	require.Len(t, itemTypes, 1)

	var ids []string
	for _, f := range itemTypes[0].Fields() {
		ids = append(ids, f.ID())
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestFieldAppearanceSpelling(t *testing.T) {
	graph, err := entities.FromResources([]jsonapi.Resource{
		{Type: "field", ID: "1", Attributes: map[string]interface{}{"appearance": map[string]interface{}{"type": "title"}}},
		{Type: "field", ID: "2", Attributes: map[string]interface{}{"appeareance": map[string]interface{}{"type": "plain"}}},
		{Type: "field", ID: "3"},
	})
	require.NoError(t, err)

	for id, expected := range map[string]string{"1": "title", "2": "plain", "3": ""} {
		e, ok := graph.Entity("field", id)
		require.True(t, ok)
		f, ok := entities.AsField(e)
		require.True(t, ok)
		assert.Equal(t, expected, f.AppearanceType(), "field %s", id)
	}
}

func TestWrappersCheckType(t *testing.T) {
	graph, err := entities.FromResources([]jsonapi.Resource{{Type: "site", ID: "1"}})
	require.NoError(t, err)
	e, _ := graph.Entity("site", "1")

	_, ok := entities.AsItem(e)
	assert.False(t, ok)
	_, ok = entities.AsItemType(e)
	assert.False(t, ok)
	_, ok = entities.AsField(e)
	assert.False(t, ok)
	_, ok = entities.AsSite(nil)
	assert.False(t, ok)

	site, ok := entities.AsSite(e)
	require.True(t, ok)
	_, ok = site.GlobalSeo()
	assert.False(t, ok)
	_, ok = site.FallbackSeo()
	assert.False(t, ok)
}
