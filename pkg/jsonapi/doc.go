// Package jsonapi models JSON:API resource documents as a flat list of typed,
// identified resources whose relationships point at other resources by
// (type, id) pairs.
//
// # Overview
//
// A document is decoded once per request and turned into an Index, which is
// the foundation every relationship lookup in pkg/entities goes through:
//
//	doc, err := jsonapi.Decode(r, jsonapi.DecodeOptions{Camelize: true})
//	if err != nil {
//		return err
//	}
//
//	idx, err := jsonapi.NewIndex(doc.Resources())
//	if err != nil {
//		// two resources share the same type and id
//		return err
//	}
//
//	res, ok := idx.Lookup("item", "24038")
//
// Lookups never fail: a pair that is not indexed is simply absent. This keeps
// documents that only include a subset of their related resources usable.
//
// # Key casing
//
// DatoCMS payloads use snake_case attribute and relationship names. CamelizeKeys
// rewrites them to camelCase so that attribute readers can use a single naming
// scheme (updated_at -> updatedAt, seo_settings -> seoSettings).
package jsonapi
