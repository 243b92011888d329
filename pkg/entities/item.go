package entities

import (
	"time"

	strutil "github.com/gnuletik/datocms-client-go/internal/util/strings"
)

// FieldTypeSeo is the field type of SEO settings fields
const FieldTypeSeo = "seo"

// Item is a content record
type Item struct {
	*Entity
}

// AsItem wraps an entity of type "item"
func AsItem(e *Entity) (*Item, bool) {
	if e == nil || e.Type() != TypeItem {
		return nil, false
	}
	return &Item{Entity: e}, true
}

// ItemType resolves the item's content type
func (i *Item) ItemType() (*ItemType, bool) {
	e, ok := i.ToOne("itemType")
	if !ok {
		return nil, false
	}
	return AsItemType(e)
}

// UpdatedAt returns the last modification timestamp
func (i *Item) UpdatedAt() (time.Time, bool) {
	return i.Time("updatedAt")
}

// IsValid reports whether the item passed its validators
func (i *Item) IsValid() bool {
	return i.Bool("isValid")
}

// Title returns the item's "title" attribute
func (i *Item) Title() string {
	return i.String("title")
}

// Field returns the value stored under a field api key. Field api keys are
// snake_case while attribute names are camelized.
func (i *Item) Field(apiKey string) (interface{}, bool) {
	return i.Attribute(strutil.ToCamelCase(apiKey))
}

// TitleFieldValue returns the value of the field presented as the item title,
// as declared by the item type's field appearance
func (i *Item) TitleFieldValue() string {
	itemType, ok := i.ItemType()
	if !ok {
		return ""
	}
	field, ok := itemType.TitleField()
	if !ok {
		return ""
	}
	v, ok := i.Field(field.APIKey())
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// SeoSettings returns the item's SEO settings. The "seoSettings" attribute is
// read first; otherwise the first field of type "seo" declared by the item type.
func (i *Item) SeoSettings() (*SeoSettings, bool) {
	var seo SeoSettings
	if i.Decode("seoSettings", &seo) {
		return &seo, true
	}

	itemType, ok := i.ItemType()
	if !ok {
		return nil, false
	}
	for _, field := range itemType.Fields() {
		if field.FieldType() != FieldTypeSeo {
			continue
		}
		v, ok := i.Field(field.APIKey())
		if !ok {
			return nil, false
		}
		if err := decodeValue(v, &seo); err != nil {
			return nil, false
		}
		return &seo, true
	}
	return nil, false
}

// Image returns the item's "image" attribute
func (i *Item) Image() (*Image, bool) {
	var img Image
	if !i.Decode("image", &img) || img.IsEmpty() {
		return nil, false
	}
	return &img, true
}
