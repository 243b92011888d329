package seo

// Tag describes one element of the document head
type Tag struct {
	TagName    string            `json:"tagName"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Content    string            `json:"content,omitempty"`
}

// AttributeContent returns attributes["content"], falling back to the inner
// content for elements like <title>
func (t Tag) AttributeContent() string {
	if c, ok := t.Attributes["content"]; ok {
		return c
	}
	return t.Content
}

// Key returns the attribute identifying the tag ("og:title", "description"),
// or the tag name when there is none
func (t Tag) Key() string {
	if p, ok := t.Attributes["property"]; ok {
		return p
	}
	if n, ok := t.Attributes["name"]; ok {
		return n
	}
	return t.TagName
}

func metaTag(name, content string) Tag {
	return Tag{
		TagName:    "meta",
		Attributes: map[string]string{"name": name, "content": content},
	}
}

func ogTag(property, content string) Tag {
	return Tag{
		TagName:    "meta",
		Attributes: map[string]string{"property": property, "content": content},
	}
}

// Twitter cards use name= rather than property=
func cardTag(name, content string) Tag {
	return metaTag(name, content)
}

func titleTag(content string) Tag {
	return Tag{TagName: "title", Content: content}
}
