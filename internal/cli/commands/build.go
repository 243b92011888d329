package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnuletik/datocms-client-go/internal/cli/ui"
	"github.com/gnuletik/datocms-client-go/internal/preview"
	"github.com/gnuletik/datocms-client-go/pkg/entities"
	"github.com/gnuletik/datocms-client-go/pkg/jsonapi"
	"github.com/gnuletik/datocms-client-go/pkg/seo"
)

const maxContentWidth = 72

type buildOptions struct {
	file   string
	item   string
	typ    string
	index  int
	locale string
	format string
	rules  bool
}

// tagsOutput has the shape of the POST /tags response body
type tagsOutput struct {
	Tags []seo.Tag `json:"tags"`
}

type ruleOutput struct {
	Rule string    `json:"rule"`
	Kind string    `json:"kind"`
	Tags []seo.Tag `json:"tags"`
}

func newBuildCommand(a *app) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the head tags of an item",
		Long: `Build the SEO head tags of one item of a DatoCMS document.

The document is read from --file, or from stdin when no file is given. The
item is selected by id (--item) or by item type and position (--type and
--index). Without a selector only the site-wide tags are built.`,
		Example: `  # Tags of item 24038
  seotags build --file export.json --item 24038

  # Tags of the first article, rendered for Italian
  seotags build -f export.json --type article --locale it

  # Show what each rule contributed
  seotags build -f export.json --item 24038 --rules

  # Read from stdin, print JSON
  cat export.json | seotags build --item 24038 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "JSON:API document (default stdin)")
	cmd.Flags().StringVar(&opts.item, "item", "", "Item id")
	cmd.Flags().StringVar(&opts.typ, "type", "", "Item type api key")
	cmd.Flags().IntVar(&opts.index, "index", 0, "Position of the item within --type")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "Locale the page is rendered in (overrides config)")
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "Output format: json or table")
	cmd.Flags().BoolVar(&opts.rules, "rules", false, "Show the result of every rule")

	return cmd
}

func runBuild(cmd *cobra.Command, a *app, opts *buildOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	if err := a.setup(); err != nil {
		return err
	}

	in, err := openInput(opts.file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	repo, err := preview.Load(in)
	if err != nil {
		return documentError(err, a.noColor)
	}

	sel := preview.Selector{ItemID: opts.item, ItemType: opts.typ, Index: opts.index}
	res, err := preview.NewBuilder(a.cfg.Env(), a.logger).Build(repo, sel, opts.locale)
	if err != nil {
		if errors.Is(err, preview.ErrItemNotFound) {
			return &cliError{
				opts: ui.ItemNotFound(err, suggestItemTypes(repo, sel), a.noColor),
				err:  err,
			}
		}
		return documentError(err, a.noColor)
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.format == formatJSON && opts.rules:
		return writeJSON(out, rulesOutput(res.Rules))
	case opts.format == formatJSON:
		return writeJSON(out, tagsOutput{Tags: res.Tags})
	case opts.rules:
		renderRules(out, res.Rules, a.noColor)
	default:
		renderTags(out, res.Tags, a.noColor)
	}
	return nil
}

func documentError(err error, noColor bool) error {
	if errors.Is(err, jsonapi.ErrInvalidDocument) ||
		errors.Is(err, jsonapi.ErrDuplicateResource) ||
		errors.Is(err, entities.ErrMissingSingleton) {
		return &cliError{opts: ui.DocumentError(err, noColor), err: err}
	}
	return err
}

// suggestItemTypes proposes item types close to an unknown --type
func suggestItemTypes(repo *entities.Repo, sel preview.Selector) []string {
	if sel.ItemID != "" || sel.ItemType == "" {
		return nil
	}
	if _, ok := repo.ItemType(sel.ItemType); ok {
		return nil
	}

	var keys []string
	for _, it := range repo.ItemTypes() {
		keys = append(keys, it.APIKey())
	}
	return ui.Suggest(sel.ItemType, keys)
}

func rulesOutput(results []seo.RuleResult) []ruleOutput {
	out := make([]ruleOutput, 0, len(results))
	for _, r := range results {
		tags := r.Result.Tags()
		if tags == nil {
			tags = []seo.Tag{}
		}
		out = append(out, ruleOutput{Rule: r.Rule, Kind: r.Result.Kind().String(), Tags: tags})
	}
	return out
}

func renderTags(w io.Writer, tags []seo.Tag, noColor bool) {
	table := ui.NewTable(w, []string{"TAG", "KEY", "CONTENT"}, &ui.TableOptions{
		NoColor:      noColor,
		MaxCellWidth: maxContentWidth,
	})
	for _, tag := range tags {
		table.AddRow(tag.TagName, tag.Key(), tag.AttributeContent())
	}
	table.Render()
}

func renderRules(w io.Writer, results []seo.RuleResult, noColor bool) {
	table := ui.NewTable(w, []string{"RULE", "RESULT", "TAGS"}, &ui.TableOptions{
		NoColor:      noColor,
		MaxCellWidth: maxContentWidth,
	})
	for _, r := range results {
		var keys []string
		for _, tag := range r.Result.Tags() {
			keys = append(keys, tag.Key())
		}
		table.AddRow(r.Rule, r.Result.Kind().String(), strings.Join(keys, ", "))
	}
	table.Render()
}
