package entities

import "sort"

// AppearanceTitle marks the field whose value is used as the item title
const AppearanceTitle = "title"

// ItemType is a content model definition
type ItemType struct {
	*Entity
}

// AsItemType wraps an entity of type "item_type"
func AsItemType(e *Entity) (*ItemType, bool) {
	if e == nil || e.Type() != TypeItemType {
		return nil, false
	}
	return &ItemType{Entity: e}, true
}

// Name returns the human readable name
func (t *ItemType) Name() string { return t.String("name") }

// APIKey returns the api key content is grouped by
func (t *ItemType) APIKey() string { return t.String("apiKey") }

// Singleton reports whether the model holds a single record
func (t *ItemType) Singleton() bool { return t.Bool("singleton") }

// Sortable reports whether records can be manually ordered
func (t *ItemType) Sortable() bool { return t.Bool("sortable") }

// Fields resolves the model fields, ordered by position. Fields without a
// position keep their link order after positioned ones.
func (t *ItemType) Fields() []*Field {
	entities := t.ToMany("fields")
	fields := make([]*Field, 0, len(entities))
	for _, e := range entities {
		if f, ok := AsField(e); ok {
			fields = append(fields, f)
		}
	}

	sort.SliceStable(fields, func(a, b int) bool {
		pa, okA := fields[a].Position()
		pb, okB := fields[b].Position()
		switch {
		case okA && okB:
			return pa < pb
		default:
			return okA && !okB
		}
	})
	return fields
}

// Field finds a field by api key
func (t *ItemType) Field(apiKey string) (*Field, bool) {
	for _, f := range t.Fields() {
		if f.APIKey() == apiKey {
			return f, true
		}
	}
	return nil, false
}

// TitleField returns the field presented as the record title
func (t *ItemType) TitleField() (*Field, bool) {
	for _, f := range t.Fields() {
		if f.AppearanceType() == AppearanceTitle {
			return f, true
		}
	}
	return nil, false
}

// SingletonItem resolves the single record of a singleton model
func (t *ItemType) SingletonItem() (*Item, bool) {
	e, ok := t.ToOne("singletonItem")
	if !ok {
		return nil, false
	}
	return AsItem(e)
}
