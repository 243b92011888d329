package jsonapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResources() []Resource {
	return []Resource{
		{
			Type:       "item",
			ID:         "24038",
			Attributes: map[string]interface{}{"title": "Hello"},
			Relationships: map[string]Relationship{
				"itemType": ToOne(&Identifier{Type: "item_type", ID: "3781"}),
			},
		},
		{Type: "site", ID: "681", Attributes: map[string]interface{}{"name": "XXX"}},
		{Type: "item_type", ID: "3781", Attributes: map[string]interface{}{"apiKey": "article"}},
		{Type: "item", ID: "24039"},
	}
}

func TestNewIndex(t *testing.T) {
	idx, err := NewIndex(testResources())
	require.NoError(t, err)

	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, []string{"item", "site", "item_type"}, idx.Types())
}

func TestNewIndexEmpty(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())

	_, ok := idx.Lookup("item", "1")
	assert.False(t, ok)
}

func TestNewIndexDuplicate(t *testing.T) {
	resources := append(testResources(), Resource{Type: "site", ID: "681"})

	idx, err := NewIndex(resources)
	require.Error(t, err)
	assert.Nil(t, idx)

	assert.True(t, errors.Is(err, ErrDuplicateResource))

	var dupErr *DuplicateResourceError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "site", dupErr.Type)
	assert.Equal(t, "681", dupErr.ID)
	assert.Contains(t, err.Error(), `"681"`)
}

func TestNewIndexSameIDDifferentType(t *testing.T) {
	_, err := NewIndex([]Resource{
		{Type: "item", ID: "1"},
		{Type: "field", ID: "1"},
	})
	assert.NoError(t, err)
}

func TestLookup(t *testing.T) {
	idx, err := NewIndex(testResources())
	require.NoError(t, err)

	res, ok := idx.Lookup("item", "24038")
	require.True(t, ok)
	assert.Equal(t, "Hello", res.Attributes["title"])

	res, ok = idx.LookupIdentifier(Identifier{Type: "site", ID: "681"})
	require.True(t, ok)
	assert.Equal(t, "XXX", res.Attributes["name"])

	_, ok = idx.Lookup("item", "missing")
	assert.False(t, ok)

	_, ok = idx.Lookup("menu_item", "4212")
	assert.False(t, ok)
}

func TestLookupNilIndex(t *testing.T) {
	var idx *Index
	_, ok := idx.Lookup("item", "1")
	assert.False(t, ok)
	assert.Equal(t, 0, idx.Len())
	assert.Nil(t, idx.OfType("item"))
}

func TestOfType(t *testing.T) {
	idx, err := NewIndex(testResources())
	require.NoError(t, err)

	items := idx.OfType("item")
	require.Len(t, items, 2)
	assert.Equal(t, "24038", items[0].ID)
	assert.Equal(t, "24039", items[1].ID)

	// Mutating the returned slice must not affect the index
	items[0] = nil
	assert.NotNil(t, idx.OfType("item")[0])

	assert.Empty(t, idx.OfType("field"))
}

func TestIndexOwnsResourceSlice(t *testing.T) {
	resources := testResources()
	idx, err := NewIndex(resources)
	require.NoError(t, err)

	resources[0].ID = "changed"

	_, ok := idx.Lookup("item", "24038")
	assert.True(t, ok)
}

func TestResourceAttribute(t *testing.T) {
	res := Resource{Attributes: map[string]interface{}{"name": "x", "domain": nil}}

	v, ok := res.Attribute("name")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = res.Attribute("domain")
	assert.False(t, ok, "null attributes read as absent")

	_, ok = res.Attribute("missing")
	assert.False(t, ok)

	var empty Resource
	_, ok = empty.Attribute("name")
	assert.False(t, ok)
	_, ok = empty.Relationship("itemType")
	assert.False(t, ok)
}

func TestRelationshipKindString(t *testing.T) {
	assert.Equal(t, "to_one", KindToOne.String())
	assert.Equal(t, "to_many", KindToMany.String())
	assert.Equal(t, "unknown", RelationshipKind(42).String())
	assert.Equal(t, "item:1", Identifier{Type: "item", ID: "1"}.String())
}
