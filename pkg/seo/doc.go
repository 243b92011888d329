// Package seo derives the SEO and social-sharing tags of a page from an
// optional item and its site.
//
// # Rules
//
// Tags are produced by a fixed, ordered table of named rules. Each rule is a
// pure function of (Env, item, site) returning a Result that is either empty,
// a single tag, or several tags. The order of the table is the order tags
// appear in the document head:
//
//	title, description, image, robots, twitterCard, twitterSite,
//	articleModifiedTime, articlePublisher, ogSiteName, ogType, ogLocale
//
// # Fallbacks
//
// Fields shared between an item's SEO settings and the site's
// globalSeo.fallbackSeo follow the same precedence: a non-empty item value
// wins, otherwise the site fallback is used, otherwise the rule emits nothing.
// Images additionally fall back to the item's own "image" attribute before the
// site fallback.
//
// # Usage
//
//	env := seo.Env{Locale: "en"}
//	tags := seo.Build(env, item, site) // item and site may be nil
//
// Rules never emit tags with empty content.
package seo
