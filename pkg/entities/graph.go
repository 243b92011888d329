package entities

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/gnuletik/datocms-client-go/pkg/jsonapi"
)

// Resource type names used by DatoCMS documents
const (
	TypeItem     = "item"
	TypeSite     = "site"
	TypeItemType = "item_type"
	TypeField    = "field"
	TypeMenuItem = "menu_item"
)

// Graph exposes the resources of an index as entities with lazy relationships
type Graph struct {
	index *jsonapi.Index
}

// NewGraph wraps an index. The index must not be modified afterwards.
func NewGraph(index *jsonapi.Index) *Graph {
	return &Graph{index: index}
}

// FromResources indexes resources and wraps them in a graph
func FromResources(resources []jsonapi.Resource) (*Graph, error) {
	index, err := jsonapi.NewIndex(resources)
	if err != nil {
		return nil, err
	}
	return NewGraph(index), nil
}

// FromDocument builds a graph from every resource of a decoded document
func FromDocument(doc *jsonapi.Document) (*Graph, error) {
	return FromResources(doc.Resources())
}

// Index returns the underlying resource index
func (g *Graph) Index() *jsonapi.Index {
	return g.index
}

// Entity returns the entity with the given type and id
func (g *Graph) Entity(typ, id string) (*Entity, bool) {
	res, ok := g.index.Lookup(typ, id)
	if !ok {
		return nil, false
	}
	return &Entity{graph: g, res: res}, true
}

// EntitiesOfType returns every entity of a type in document order
func (g *Graph) EntitiesOfType(typ string) []*Entity {
	resources := g.index.OfType(typ)
	out := make([]*Entity, 0, len(resources))
	for _, res := range resources {
		out = append(out, &Entity{graph: g, res: res})
	}
	return out
}

// Entity is a resource bound to the graph it belongs to
type Entity struct {
	graph *Graph
	res   *jsonapi.Resource
}

// Type returns the resource type
func (e *Entity) Type() string { return e.res.Type }

// ID returns the resource id
func (e *Entity) ID() string { return e.res.ID }

// Identifier returns the resource's (type, id) pair
func (e *Entity) Identifier() jsonapi.Identifier { return e.res.Identifier() }

// Graph returns the graph the entity belongs to
func (e *Entity) Graph() *Graph { return e.graph }

// ToOne resolves a to-one relationship. It returns false when the relationship
// is missing, is a null link, is not to-one, or points at an unindexed resource.
func (e *Entity) ToOne(name string) (*Entity, bool) {
	rel, ok := e.res.Relationship(name)
	if !ok || rel.Kind != jsonapi.KindToOne || rel.Target == nil {
		return nil, false
	}
	return e.graph.Entity(rel.Target.Type, rel.Target.ID)
}

// ToMany resolves a to-many relationship in link order.
// Targets that are not indexed are skipped.
func (e *Entity) ToMany(name string) []*Entity {
	rel, ok := e.res.Relationship(name)
	if !ok || rel.Kind != jsonapi.KindToMany {
		return nil
	}

	out := make([]*Entity, 0, len(rel.Targets))
	for _, target := range rel.Targets {
		if related, found := e.graph.Entity(target.Type, target.ID); found {
			out = append(out, related)
		}
	}
	return out
}

// Attribute returns a raw attribute value; null values read as absent
func (e *Entity) Attribute(name string) (interface{}, bool) {
	return e.res.Attribute(name)
}

// String returns a string attribute, or "" when absent or not a string
func (e *Entity) String(name string) string {
	v, ok := e.res.Attribute(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Bool returns a boolean attribute, or false when absent or not a boolean
func (e *Entity) Bool(name string) bool {
	v, ok := e.res.Attribute(name)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Int returns an integer attribute. JSON numbers decode as float64, so whole
// floats are accepted.
func (e *Entity) Int(name string) (int, bool) {
	v, ok := e.res.Attribute(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// Time parses an RFC 3339 timestamp attribute
func (e *Entity) Time(name string) (time.Time, bool) {
	v, ok := e.res.Attribute(name)
	if !ok {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

// Strings returns a list-of-strings attribute, skipping non-string entries
func (e *Entity) Strings(name string) []string {
	v, ok := e.res.Attribute(name)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Map returns an object attribute
func (e *Entity) Map(name string) (map[string]interface{}, bool) {
	v, ok := e.res.Attribute(name)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]interface{})
	return m, ok
}

// Decode decodes an object attribute into out using its mapstructure tags.
// It returns false when the attribute is absent or does not fit out.
func (e *Entity) Decode(name string, out interface{}) bool {
	v, ok := e.res.Attribute(name)
	if !ok {
		return false
	}
	return decodeValue(v, out) == nil
}

func decodeValue(input, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       dropInvalidObjects,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

var (
	imagePtrType       = reflect.TypeOf((*Image)(nil))
	seoSettingsPtrType = reflect.TypeOf((*SeoSettings)(nil))
)

// dropInvalidObjects decodes nested value objects on their own. One that does
// not fit decodes to nil, leaving the sibling fields of its parent intact.
func dropInvalidObjects(_, to reflect.Type, data interface{}) (interface{}, error) {
	var target interface{}
	switch to {
	case imagePtrType:
		target = new(Image)
	case seoSettingsPtrType:
		target = new(SeoSettings)
	default:
		return data, nil
	}
	if err := decodeValue(data, target); err != nil {
		return nil, nil
	}
	return target, nil
}
