// Package entities turns an indexed JSON:API document into a navigable graph of
// DatoCMS entities: items, sites, item types and fields.
//
// Relationships are resolved lazily through the underlying jsonapi.Index every
// time an accessor is called. Nothing is materialized at construction time, so a
// graph built from a partial document (one that omits some related resources)
// stays usable: dangling to-one links read as absent and dangling to-many
// entries are dropped.
//
//	graph, err := entities.FromResources(doc.Resources())
//	if err != nil {
//		return err
//	}
//	repo := entities.NewRepo(graph)
//
//	site, err := repo.Site()
//	articles := repo.ItemsOfType("article")
//
// A Graph is immutable once built and is meant to live for a single request.
package entities
