package seo

import (
	"strings"

	"github.com/gnuletik/datocms-client-go/pkg/entities"
)

func itemSeo(item *entities.Item) *entities.SeoSettings {
	if item == nil {
		return nil
	}
	seo, _ := item.SeoSettings()
	return seo
}

func globalSeo(site *entities.Site) *entities.GlobalSeo {
	if site == nil {
		return nil
	}
	global, _ := site.GlobalSeo()
	return global
}

func fallbackSeo(site *entities.Site) *entities.SeoSettings {
	if global := globalSeo(site); global != nil {
		return global.FallbackSeo
	}
	return nil
}

// fallbackField returns the item's SEO value when present and non-blank,
// otherwise the site fallback's value.
func fallbackField(item *entities.Item, site *entities.Site, pick func(*entities.SeoSettings) string) (string, bool) {
	if seo := itemSeo(item); seo != nil {
		if v := pick(seo); !isBlank(v) {
			return v, true
		}
	}
	if seo := fallbackSeo(site); seo != nil {
		if v := pick(seo); !isBlank(v) {
			return v, true
		}
	}
	return "", false
}

// fallbackImage returns, in order: the item's SEO image, the item's own image
// attribute, the site fallback image.
func fallbackImage(item *entities.Item, site *entities.Site) (*entities.Image, bool) {
	if seo := itemSeo(item); seo != nil && !seo.Image.IsEmpty() {
		return seo.Image, true
	}
	if item != nil {
		if img, ok := item.Image(); ok {
			return img, true
		}
	}
	if seo := fallbackSeo(site); seo != nil && !seo.Image.IsEmpty() {
		return seo.Image, true
	}
	return nil, false
}

func firstNonBlank(values ...string) (string, bool) {
	for _, v := range values {
		if !isBlank(v) {
			return v, true
		}
	}
	return "", false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
