package seo

import (
	"time"
	"unicode/utf8"

	"github.com/gnuletik/datocms-client-go/pkg/entities"
)

const (
	// maxTitleLength is the longest <title> the site suffix is appended to
	maxTitleLength = 60

	defaultTwitterCard = "summary"
)

func resolveTitle(_ Env, item *entities.Item, site *entities.Site) Result {
	var seoTitle, fieldTitle, fallbackTitle string
	if seo := itemSeo(item); seo != nil {
		seoTitle = seo.Title
	}
	if item != nil {
		fieldTitle = item.TitleFieldValue()
	}
	if seo := fallbackSeo(site); seo != nil {
		fallbackTitle = seo.Title
	}

	title, ok := firstNonBlank(seoTitle, fieldTitle, fallbackTitle)
	if !ok {
		return None()
	}

	full := title
	if global := globalSeo(site); global != nil && global.TitleSuffix != "" {
		suffixed := title + global.TitleSuffix
		if utf8.RuneCountInString(suffixed) <= maxTitleLength {
			full = suffixed
		}
	}

	return Multiple(
		titleTag(full),
		ogTag("og:title", title),
		cardTag("twitter:title", title),
	)
}

func resolveDescription(_ Env, item *entities.Item, site *entities.Site) Result {
	description, ok := fallbackField(item, site, func(s *entities.SeoSettings) string {
		return s.Description
	})
	if !ok {
		return None()
	}

	return Multiple(
		metaTag("description", description),
		ogTag("og:description", description),
		cardTag("twitter:description", description),
	)
}

func resolveImage(env Env, item *entities.Item, site *entities.Site) Result {
	img, ok := fallbackImage(item, site)
	if !ok {
		return None()
	}

	url := env.images().ImageURL(img, site)
	if isBlank(url) {
		return None()
	}

	return Multiple(
		ogTag("og:image", url),
		cardTag("twitter:image", url),
	)
}

func resolveRobots(_ Env, _ *entities.Item, site *entities.Site) Result {
	if site == nil || !site.NoIndex() {
		return None()
	}
	return Single(metaTag("robots", "noindex"))
}

func resolveTwitterCard(_ Env, item *entities.Item, _ *entities.Site) Result {
	card := defaultTwitterCard
	if seo := itemSeo(item); seo != nil && !isBlank(seo.TwitterCard) {
		card = seo.TwitterCard
	}
	return Single(cardTag("twitter:card", card))
}

func resolveTwitterSite(_ Env, _ *entities.Item, site *entities.Site) Result {
	global := globalSeo(site)
	if global == nil || isBlank(global.TwitterAccount) {
		return None()
	}
	return Single(cardTag("twitter:site", global.TwitterAccount))
}

func resolveArticleModifiedTime(_ Env, item *entities.Item, _ *entities.Site) Result {
	if item == nil {
		return None()
	}

	// The stored ISO-8601 string is emitted as is, fractional seconds included
	content := item.String("updatedAt")
	if content == "" {
		if updatedAt, ok := item.UpdatedAt(); ok {
			content = updatedAt.Format(time.RFC3339Nano)
		}
	}
	if isBlank(content) {
		return None()
	}

	return Single(ogTag("article:modified_time", content))
}

func resolveArticlePublisher(_ Env, _ *entities.Item, site *entities.Site) Result {
	global := globalSeo(site)
	if global == nil || isBlank(global.FacebookPageURL) {
		return None()
	}
	return Single(ogTag("article:publisher", global.FacebookPageURL))
}

func resolveOGSiteName(_ Env, _ *entities.Item, site *entities.Site) Result {
	global := globalSeo(site)
	if global == nil || isBlank(global.SiteName) {
		return None()
	}
	return Single(ogTag("og:site_name", global.SiteName))
}

func resolveOGType(env Env, item *entities.Item, _ *entities.Site) Result {
	if env.isArticle(item) {
		return Single(ogTag("og:type", "article"))
	}
	return Single(ogTag("og:type", "website"))
}

func resolveOGLocale(env Env, _ *entities.Item, site *entities.Site) Result {
	locale := FormatOGLocale(env.locale(site))
	if locale == "" {
		return None()
	}
	return Single(ogTag("og:locale", locale))
}
