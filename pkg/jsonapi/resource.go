package jsonapi

import "fmt"

// Identifier is the (type, id) pair that identifies a resource
type Identifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// String returns the identifier as "type:id"
func (i Identifier) String() string {
	return fmt.Sprintf("%s:%s", i.Type, i.ID)
}

// RelationshipKind distinguishes to-one from to-many links
type RelationshipKind int

const (
	// KindToOne links a resource to at most one other resource
	KindToOne RelationshipKind = iota
	// KindToMany links a resource to an ordered list of resources
	KindToMany
)

// String returns the string representation of RelationshipKind
func (k RelationshipKind) String() string {
	switch k {
	case KindToOne:
		return "to_one"
	case KindToMany:
		return "to_many"
	default:
		return "unknown"
	}
}

// Relationship is a typed link from one resource to others.
// Target is only meaningful for KindToOne (nil means an explicit null link),
// Targets only for KindToMany.
type Relationship struct {
	Kind    RelationshipKind
	Target  *Identifier
	Targets []Identifier
}

// ToOne creates a to-one relationship. A nil target is a null link.
func ToOne(target *Identifier) Relationship {
	return Relationship{Kind: KindToOne, Target: target}
}

// ToMany creates a to-many relationship preserving the order of targets
func ToMany(targets ...Identifier) Relationship {
	return Relationship{Kind: KindToMany, Targets: targets}
}

// Resource is a single typed record of a document
type Resource struct {
	Type          string
	ID            string
	Attributes    map[string]interface{}
	Relationships map[string]Relationship
}

// Identifier returns the resource's (type, id) pair
func (r *Resource) Identifier() Identifier {
	return Identifier{Type: r.Type, ID: r.ID}
}

// Attribute returns a raw attribute value.
// A key explicitly set to null reads as absent.
func (r *Resource) Attribute(name string) (interface{}, bool) {
	if r.Attributes == nil {
		return nil, false
	}
	v, ok := r.Attributes[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Relationship returns the named relationship link
func (r *Resource) Relationship(name string) (Relationship, bool) {
	if r.Relationships == nil {
		return Relationship{}, false
	}
	rel, ok := r.Relationships[name]
	return rel, ok
}
