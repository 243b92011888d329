package entities

// Field is a single field of an item type
type Field struct {
	*Entity
}

// AsField wraps an entity of type "field"
func AsField(e *Entity) (*Field, bool) {
	if e == nil || e.Type() != TypeField {
		return nil, false
	}
	return &Field{Entity: e}, true
}

// Label returns the field's human-readable name
func (f *Field) Label() string { return f.String("label") }

// FieldType returns the field type, e.g. "string" or "seo"
func (f *Field) FieldType() string { return f.String("fieldType") }

// APIKey returns the attribute name the field's value is stored under
func (f *Field) APIKey() string { return f.String("apiKey") }

// Hint returns the editor hint, or ""
func (f *Field) Hint() string { return f.String("hint") }

// Localized reports whether the field stores one value per locale
func (f *Field) Localized() bool { return f.Bool("localized") }

// Position returns the field's position within its item type
func (f *Field) Position() (int, bool) { return f.Int("position") }

// Validators returns the validator configuration keyed by validator name
func (f *Field) Validators() map[string]interface{} {
	m, _ := f.Map("validators")
	return m
}

// Appearance returns the editor appearance settings. Older payloads spell the
// attribute "appeareance".
func (f *Field) Appearance() map[string]interface{} {
	if m, ok := f.Map("appearance"); ok {
		return m
	}
	m, _ := f.Map("appeareance")
	return m
}

// AppearanceType returns appearance.type, or ""
func (f *Field) AppearanceType() string {
	s, _ := f.Appearance()["type"].(string)
	return s
}

// ItemType resolves the item type owning the field
func (f *Field) ItemType() (*ItemType, bool) {
	e, ok := f.ToOne("itemType")
	if !ok {
		return nil, false
	}
	return AsItemType(e)
}
