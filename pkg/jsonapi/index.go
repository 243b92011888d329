package jsonapi

// Index holds resources keyed by (type, id).
// It is populated once by NewIndex and never changes afterwards.
type Index struct {
	resources []*Resource
	byKey     map[Identifier]*Resource
	byType    map[string][]*Resource
}

// NewIndex indexes resources by (type, id).
// Returns a *DuplicateResourceError if a pair appears more than once.
func NewIndex(resources []Resource) (*Index, error) {
	owned := make([]Resource, len(resources))
	copy(owned, resources)

	idx := &Index{
		resources: make([]*Resource, 0, len(owned)),
		byKey:     make(map[Identifier]*Resource, len(owned)),
		byType:    make(map[string][]*Resource),
	}

	for i := range owned {
		res := &owned[i]
		key := res.Identifier()
		if _, exists := idx.byKey[key]; exists {
			return nil, &DuplicateResourceError{Type: res.Type, ID: res.ID}
		}
		idx.byKey[key] = res
		idx.byType[res.Type] = append(idx.byType[res.Type], res)
		idx.resources = append(idx.resources, res)
	}

	return idx, nil
}

// Lookup finds a resource by type and id
func (idx *Index) Lookup(typ, id string) (*Resource, bool) {
	if idx == nil {
		return nil, false
	}
	res, ok := idx.byKey[Identifier{Type: typ, ID: id}]
	return res, ok
}

// LookupIdentifier finds a resource by its identifier
func (idx *Index) LookupIdentifier(id Identifier) (*Resource, bool) {
	return idx.Lookup(id.Type, id.ID)
}

// OfType returns every resource of the given type in document order.
// Returns a copy to prevent external mutation.
func (idx *Index) OfType(typ string) []*Resource {
	if idx == nil {
		return nil
	}
	list := idx.byType[typ]
	out := make([]*Resource, len(list))
	copy(out, list)
	return out
}

// Len returns the number of indexed resources
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.resources)
}

// Types returns the resource types present in the index, in order of first appearance
func (idx *Index) Types() []string {
	if idx == nil {
		return nil
	}
	seen := make(map[string]bool, len(idx.byType))
	var types []string
	for _, res := range idx.resources {
		if !seen[res.Type] {
			seen[res.Type] = true
			types = append(types, res.Type)
		}
	}
	return types
}
