package entities

// Site is the project-wide settings record
type Site struct {
	*Entity
}

// AsSite wraps an entity of type "site"
func AsSite(e *Entity) (*Site, bool) {
	if e == nil || e.Type() != TypeSite {
		return nil, false
	}
	return &Site{Entity: e}, true
}

// Name returns the site name
func (s *Site) Name() string { return s.String("name") }

// Locales returns the configured locales, main locale first
func (s *Site) Locales() []string { return s.Strings("locales") }

// Domain returns the public domain, if any
func (s *Site) Domain() string { return s.String("domain") }

// InternalDomain returns the admin domain
func (s *Site) InternalDomain() string { return s.String("internalDomain") }

// ImgixHost returns the host serving uploaded assets, if set
func (s *Site) ImgixHost() string { return s.String("imgixHost") }

// NoIndex reports whether search engines should be told not to index the site
func (s *Site) NoIndex() bool { return s.Bool("noIndex") }

// GlobalSeo returns the site-wide SEO settings
func (s *Site) GlobalSeo() (*GlobalSeo, bool) {
	var seo GlobalSeo
	if !s.Decode("globalSeo", &seo) {
		return nil, false
	}
	return &seo, true
}

// FallbackSeo returns globalSeo.fallbackSeo
func (s *Site) FallbackSeo() (*SeoSettings, bool) {
	global, ok := s.GlobalSeo()
	if !ok || global.FallbackSeo == nil {
		return nil, false
	}
	return global.FallbackSeo, true
}

// MenuItems resolves the site's menu items
func (s *Site) MenuItems() []*Entity {
	return s.ToMany("menuItems")
}

// ItemTypes resolves the site's item types
func (s *Site) ItemTypes() []*ItemType {
	entities := s.ToMany("itemTypes")
	out := make([]*ItemType, 0, len(entities))
	for _, e := range entities {
		if it, ok := AsItemType(e); ok {
			out = append(out, it)
		}
	}
	return out
}
