package seo

import "github.com/gnuletik/datocms-client-go/pkg/entities"

// ResolveFunc computes the tags of one rule. A nil item or site means absent.
type ResolveFunc func(env Env, item *entities.Item, site *entities.Site) Result

// Rule is a named entry of the rule table
type Rule struct {
	Name    string
	Resolve ResolveFunc
}

// Rule names
const (
	RuleTitle               = "title"
	RuleDescription         = "description"
	RuleImage               = "image"
	RuleRobots              = "robots"
	RuleTwitterCard         = "twitterCard"
	RuleTwitterSite         = "twitterSite"
	RuleArticleModifiedTime = "articleModifiedTime"
	RuleArticlePublisher    = "articlePublisher"
	RuleOGSiteName          = "ogSiteName"
	RuleOGType              = "ogType"
	RuleOGLocale            = "ogLocale"
)

// rules is the closed rule table. Its order is the order of the tags in the
// document head.
var rules = [...]Rule{
	{Name: RuleTitle, Resolve: resolveTitle},
	{Name: RuleDescription, Resolve: resolveDescription},
	{Name: RuleImage, Resolve: resolveImage},
	{Name: RuleRobots, Resolve: resolveRobots},
	{Name: RuleTwitterCard, Resolve: resolveTwitterCard},
	{Name: RuleTwitterSite, Resolve: resolveTwitterSite},
	{Name: RuleArticleModifiedTime, Resolve: resolveArticleModifiedTime},
	{Name: RuleArticlePublisher, Resolve: resolveArticlePublisher},
	{Name: RuleOGSiteName, Resolve: resolveOGSiteName},
	{Name: RuleOGType, Resolve: resolveOGType},
	{Name: RuleOGLocale, Resolve: resolveOGLocale},
}

// Rules returns the rule table in order.
// Returns a copy to prevent external mutation.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules[:])
	return out
}

// RuleNames returns the rule names in table order
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}

// LookupRule finds a rule by name
func LookupRule(name string) (Rule, bool) {
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Resolve runs a single rule by name. Unknown names resolve to None.
func Resolve(name string, env Env, item *entities.Item, site *entities.Site) Result {
	r, ok := LookupRule(name)
	if !ok {
		return None()
	}
	return r.Resolve(env, item, site)
}
