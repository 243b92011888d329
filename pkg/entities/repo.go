package entities

import "sync"

// Repo is a per-request view over a graph grouping entities the way page
// rendering needs them. Derived groupings are computed once and memoized since
// the graph cannot change during the repo's lifetime.
type Repo struct {
	graph *Graph

	siteOnce sync.Once
	site     *Site
	siteErr  error

	mu          sync.Mutex
	itemsByType map[string][]*Item
}

// NewRepo creates a view over the given graph
func NewRepo(graph *Graph) *Repo {
	return &Repo{
		graph:       graph,
		itemsByType: make(map[string][]*Item),
	}
}

// Graph returns the underlying graph
func (r *Repo) Graph() *Graph {
	return r.graph
}

// Site returns the single site of the document. It fails with a
// *MissingSingletonError when there are zero or several sites.
func (r *Repo) Site() (*Site, error) {
	r.siteOnce.Do(func() {
		sites := r.graph.EntitiesOfType(TypeSite)
		if len(sites) != 1 {
			r.siteErr = &MissingSingletonError{Type: TypeSite, Count: len(sites)}
			return
		}
		r.site, _ = AsSite(sites[0])
	})
	return r.site, r.siteErr
}

// Item returns the item with the given id
func (r *Repo) Item(id string) (*Item, bool) {
	e, ok := r.graph.Entity(TypeItem, id)
	if !ok {
		return nil, false
	}
	return AsItem(e)
}

// Items returns every item in document order
func (r *Repo) Items() []*Item {
	entities := r.graph.EntitiesOfType(TypeItem)
	out := make([]*Item, 0, len(entities))
	for _, e := range entities {
		if item, ok := AsItem(e); ok {
			out = append(out, item)
		}
	}
	return out
}

// ItemsOfType returns the items whose item type has the given api key, in
// document order. Items whose item type is not included in the document are
// never matched.
func (r *Repo) ItemsOfType(apiKey string) []*Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.itemsByType[apiKey]
	if !ok {
		items = make([]*Item, 0)
		for _, item := range r.Items() {
			itemType, found := item.ItemType()
			if found && itemType.APIKey() == apiKey {
				items = append(items, item)
			}
		}
		r.itemsByType[apiKey] = items
	}

	// Return a copy to prevent external mutation
	out := make([]*Item, len(items))
	copy(out, items)
	return out
}

// ItemTypes returns every item type in document order
func (r *Repo) ItemTypes() []*ItemType {
	entities := r.graph.EntitiesOfType(TypeItemType)
	out := make([]*ItemType, 0, len(entities))
	for _, e := range entities {
		if it, ok := AsItemType(e); ok {
			out = append(out, it)
		}
	}
	return out
}

// ItemType finds an item type by api key
func (r *Repo) ItemType(apiKey string) (*ItemType, bool) {
	for _, it := range r.ItemTypes() {
		if it.APIKey() == apiKey {
			return it, true
		}
	}
	return nil, false
}
