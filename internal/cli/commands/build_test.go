package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnuletik/datocms-client-go/internal/preview"
	"github.com/gnuletik/datocms-client-go/pkg/entities/entitiestest"
	"github.com/gnuletik/datocms-client-go/pkg/jsonapi"
	"github.com/gnuletik/datocms-client-go/pkg/seo"
)

func fixtureJSON() []byte {
	return entitiestest.Fixture{
		ItemTitle:   "My article",
		SeoSettings: map[string]interface{}{"description": "SEO description"},
		GlobalSeo: map[string]interface{}{
			"site_name":    "My site",
			"title_suffix": " - XXX",
		},
	}.JSON()
}

func TestBuildTable(t *testing.T) {
	out, err := run(t, fixtureJSON(), "build", "--item", "24038")
	require.NoError(t, err)

	assert.Contains(t, out, "TAG")
	assert.Contains(t, out, "My article - XXX")
	assert.Contains(t, out, "og:description")
	assert.Contains(t, out, "en_EN")
}

func TestBuildJSON(t *testing.T) {
	out, err := run(t, fixtureJSON(), "build", "--type", "article", "--format", "json", "--locale", "it")
	require.NoError(t, err)

	var body tagsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	require.NotEmpty(t, body.Tags)
	assert.Equal(t, "title", body.Tags[0].TagName)

	last := body.Tags[len(body.Tags)-1]
	assert.Equal(t, "og:locale", last.Key())
	assert.Equal(t, "it_IT", last.AttributeContent())
}

func TestBuildFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, fixtureJSON(), 0o600))

	out, err := run(t, nil, "build", "--file", path, "--item", "24038", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"My article - XXX"`)
}

func TestBuildRules(t *testing.T) {
	out, err := run(t, fixtureJSON(), "build", "--item", "24038", "--rules", "--format", "json")
	require.NoError(t, err)

	var rules []ruleOutput
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	require.Len(t, rules, len(seo.RuleNames()))
	for i, name := range seo.RuleNames() {
		assert.Equal(t, name, rules[i].Rule)
		assert.NotNil(t, rules[i].Tags)
	}
	assert.Equal(t, "multiple", rules[0].Kind)
	assert.Equal(t, "none", rules[3].Kind)
}

func TestBuildRulesTable(t *testing.T) {
	out, err := run(t, fixtureJSON(), "build", "--item", "24038", "--rules")
	require.NoError(t, err)

	assert.Contains(t, out, "RULE")
	assert.Contains(t, out, "title, og:title, twitter:title")
}

func TestBuildUnknownType(t *testing.T) {
	_, err := run(t, fixtureJSON(), "build", "--type", "artcle")

	require.ErrorIs(t, err, preview.ErrItemNotFound)
	var ce *cliError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"article"}, ce.opts.Suggestions)
}

func TestBuildUnknownItem(t *testing.T) {
	_, err := run(t, fixtureJSON(), "build", "--item", "42")

	require.ErrorIs(t, err, preview.ErrItemNotFound)
	var ce *cliError
	require.ErrorAs(t, err, &ce)
	assert.Empty(t, ce.opts.Suggestions)
}

func TestBuildInvalidDocument(t *testing.T) {
	_, err := run(t, []byte("{"), "build")

	require.ErrorIs(t, err, jsonapi.ErrInvalidDocument)
	var ce *cliError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "invalid document", ce.opts.Context)
}

func TestBuildInvalidFormat(t *testing.T) {
	_, err := run(t, fixtureJSON(), "build", "--format", "yaml")
	assert.EqualError(t, err, `unsupported format "yaml" (use json or table)`)
}

func TestBuildMissingFile(t *testing.T) {
	_, err := run(t, nil, "build", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open document")
}
