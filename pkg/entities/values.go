package entities

// Image is an uploaded file reference as stored in item and SEO attributes
type Image struct {
	Path   string `mapstructure:"path" json:"path"`
	Width  int    `mapstructure:"width" json:"width,omitempty"`
	Height int    `mapstructure:"height" json:"height,omitempty"`
	Format string `mapstructure:"format" json:"format,omitempty"`
	Size   int    `mapstructure:"size" json:"size,omitempty"`
	Alt    string `mapstructure:"alt" json:"alt,omitempty"`
}

// IsEmpty reports whether the image has no path to point at
func (i *Image) IsEmpty() bool {
	return i == nil || i.Path == ""
}

// SeoSettings is the value of an SEO field, either on an item or as the
// site-wide fallback
type SeoSettings struct {
	Title       string `mapstructure:"title" json:"title,omitempty"`
	Description string `mapstructure:"description" json:"description,omitempty"`
	Image       *Image `mapstructure:"image" json:"image,omitempty"`
	TwitterCard string `mapstructure:"twitterCard" json:"twitterCard,omitempty"`
}

// GlobalSeo holds the site-wide SEO configuration
type GlobalSeo struct {
	FallbackSeo     *SeoSettings `mapstructure:"fallbackSeo" json:"fallbackSeo,omitempty"`
	TwitterAccount  string       `mapstructure:"twitterAccount" json:"twitterAccount,omitempty"`
	FacebookPageURL string       `mapstructure:"facebookPageUrl" json:"facebookPageUrl,omitempty"`
	SiteName        string       `mapstructure:"siteName" json:"siteName,omitempty"`
	TitleSuffix     string       `mapstructure:"titleSuffix" json:"titleSuffix,omitempty"`
}
