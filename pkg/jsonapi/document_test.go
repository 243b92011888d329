package jsonapi

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "data": [
    {
      "id": "24038",
      "type": "item",
      "attributes": {
        "updated_at": "2016-12-07T09:14:22Z",
        "is_valid": true,
        "seo_settings": {"description": "SEO description"}
      },
      "relationships": {
        "item_type": {"data": {"id": "3781", "type": "item_type"}}
      }
    }
  ],
  "included": [
    {
      "id": "681",
      "type": "site",
      "attributes": {"global_seo": {"fallback_seo": {"description": "Default"}}, "no_index": null},
      "relationships": {
        "menu_items": {"data": [{"id": "4212", "type": "menu_item"}]},
        "item_types": {"data": [{"id": "3781", "type": "item_type"}]}
      }
    },
    {
      "id": "3781",
      "type": "item_type",
      "attributes": {"api_key": "article"},
      "relationships": {"singleton_item": {"data": null}}
    }
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDocument), DecodeOptions{Camelize: true})
	require.NoError(t, err)

	require.Len(t, doc.Data, 1)
	require.Len(t, doc.Included, 2)
	assert.Len(t, doc.Resources(), 3)

	item := doc.Data[0]
	assert.Equal(t, "item", item.Type)
	assert.Equal(t, "2016-12-07T09:14:22Z", item.Attributes["updatedAt"])
	assert.Equal(t, true, item.Attributes["isValid"])

	seo, ok := item.Attributes["seoSettings"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "SEO description", seo["description"])

	rel, ok := item.Relationship("itemType")
	require.True(t, ok)
	assert.Equal(t, KindToOne, rel.Kind)
	require.NotNil(t, rel.Target)
	assert.Equal(t, Identifier{Type: "item_type", ID: "3781"}, *rel.Target)

	site := doc.Included[0]
	globalSeo := site.Attributes["globalSeo"].(map[string]interface{})
	assert.Contains(t, globalSeo, "fallbackSeo")

	menu, ok := site.Relationship("menuItems")
	require.True(t, ok)
	assert.Equal(t, KindToMany, menu.Kind)
	assert.Equal(t, []Identifier{{Type: "menu_item", ID: "4212"}}, menu.Targets)

	singleton, ok := doc.Included[1].Relationship("singletonItem")
	require.True(t, ok)
	assert.Equal(t, KindToOne, singleton.Kind)
	assert.Nil(t, singleton.Target)
}

func TestDecodeWithoutCamelize(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDocument), DecodeOptions{})
	require.NoError(t, err)

	assert.Contains(t, doc.Data[0].Attributes, "updated_at")
	_, ok := doc.Data[0].Relationship("item_type")
	assert.True(t, ok)
}

func TestDecodeSingleResource(t *testing.T) {
	doc, err := DecodeBytes([]byte(`{"data": {"id": "1", "type": "site"}}`), DecodeOptions{})
	require.NoError(t, err)
	require.Len(t, doc.Data, 1)
	assert.Equal(t, "site", doc.Data[0].Type)
	assert.NotNil(t, doc.Data[0].Attributes)
}

func TestDecodeNullData(t *testing.T) {
	doc, err := DecodeBytes([]byte(`{"data": null}`), DecodeOptions{})
	require.NoError(t, err)
	assert.Empty(t, doc.Resources())
}

func TestDecodeTrailingWhitespace(t *testing.T) {
	doc, err := DecodeBytes([]byte("{\"data\": []}\n\n  "), DecodeOptions{})
	require.NoError(t, err)
	assert.Empty(t, doc.Resources())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"data": [`},
		{"missing id", `{"data": [{"type": "item"}]}`},
		{"missing type", `{"data": [{"id": "1"}]}`},
		{"bad data member", `{"data": "nope"}`},
		{"bad relationship", `{"data": [{"id": "1", "type": "item", "relationships": {"x": {"data": "nope"}}}]}`},
		{"bad included", `{"data": [], "included": [{"type": "site"}]}`},
		{"trailing garbage", `{"data": []} garbage`},
		{"second document", `{"data": []} {"data": []}`},
		{"stray closing brace", `{"data": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.body), DecodeOptions{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDocument))
		})
	}
}

func TestCamelizeKeys(t *testing.T) {
	in := map[string]interface{}{
		"global_seo": map[string]interface{}{
			"fallback_seo":    map[string]interface{}{"description": "x"},
			"twitter_account": "@steffoz",
		},
		"locales": []interface{}{"en", map[string]interface{}{"some_key": 1}},
		"no_index": true,
	}

	out := CamelizeKeys(in).(map[string]interface{})

	globalSeo := out["globalSeo"].(map[string]interface{})
	assert.Equal(t, "@steffoz", globalSeo["twitterAccount"])
	assert.Contains(t, globalSeo, "fallbackSeo")
	assert.Equal(t, true, out["noIndex"])

	locales := out["locales"].([]interface{})
	assert.Equal(t, "en", locales[0])
	assert.Equal(t, 1, locales[1].(map[string]interface{})["someKey"])

	// Input is left untouched
	assert.Contains(t, in, "global_seo")
}
