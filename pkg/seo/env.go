package seo

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/gnuletik/datocms-client-go/pkg/entities"
)

const (
	// DefaultLocale is used when neither the request nor the site names a locale
	DefaultLocale = "en"

	// DefaultAssetsHost serves uploads when no host is configured
	DefaultAssetsHost = "www.datocms-assets.com"
)

// Env carries the collaborators rules depend on besides the item and the site
type Env struct {
	// Locale is the locale the page is rendered in ("en", "pt-BR")
	Locale string

	// Images turns stored image paths into absolute URLs.
	// Defaults to HostImageURL{}.
	Images ImageURLBuilder

	// ArticleTypes lists the item type api keys rendered with og:type
	// "article". When empty, every item is an article.
	ArticleTypes []string
}

func (e Env) images() ImageURLBuilder {
	if e.Images == nil {
		return HostImageURL{}
	}
	return e.Images
}

// locale picks the request locale, then the site's main locale, then DefaultLocale
func (e Env) locale(site *entities.Site) string {
	if e.Locale != "" {
		return e.Locale
	}
	if site != nil {
		if locales := site.Locales(); len(locales) > 0 && locales[0] != "" {
			return locales[0]
		}
	}
	return DefaultLocale
}

func (e Env) isArticle(item *entities.Item) bool {
	if item == nil {
		return false
	}
	if len(e.ArticleTypes) == 0 {
		return true
	}
	itemType, ok := item.ItemType()
	if !ok {
		return false
	}
	for _, apiKey := range e.ArticleTypes {
		if itemType.APIKey() == apiKey {
			return true
		}
	}
	return false
}

// ImageURLBuilder builds the public URL of an uploaded image
type ImageURLBuilder interface {
	ImageURL(img *entities.Image, site *entities.Site) string
}

// HostImageURL serves images from a single host. An empty Host falls back to
// the site's imgix host, then DefaultAssetsHost.
type HostImageURL struct {
	Host string
}

// ImageURL implements ImageURLBuilder
func (h HostImageURL) ImageURL(img *entities.Image, site *entities.Site) string {
	if img.IsEmpty() {
		return ""
	}
	if strings.HasPrefix(img.Path, "http://") || strings.HasPrefix(img.Path, "https://") {
		return img.Path
	}

	host := h.Host
	if host == "" && site != nil {
		host = site.ImgixHost()
	}
	if host == "" {
		host = DefaultAssetsHost
	}
	host = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://"), "/")

	path := img.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "https://" + host + path
}

// FormatOGLocale formats a locale code the way og:locale expects it:
// language_TERRITORY. A locale without an explicit region repeats the
// language as territory ("en" -> "en_EN", "pt-br" -> "pt_BR").
func FormatOGLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return formatRawLocale(locale)
	}

	base, _ := tag.Base()
	lang := base.String()
	if region, conf := tag.Region(); conf == language.Exact {
		return lang + "_" + region.String()
	}
	return lang + "_" + strings.ToUpper(lang)
}

func formatRawLocale(locale string) string {
	parts := strings.FieldsFunc(locale, func(r rune) bool { return r == '-' || r == '_' })
	if len(parts) == 0 {
		return ""
	}
	lang := strings.ToLower(parts[0])
	if len(parts) > 1 {
		return lang + "_" + strings.ToUpper(parts[len(parts)-1])
	}
	return lang + "_" + strings.ToUpper(lang)
}
