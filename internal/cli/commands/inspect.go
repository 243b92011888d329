package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnuletik/datocms-client-go/internal/cli/ui"
	"github.com/gnuletik/datocms-client-go/internal/preview"
	"github.com/gnuletik/datocms-client-go/pkg/entities"
)

type inspectOptions struct {
	file   string
	format string
}

// SiteSummary describes the site of a document
type SiteSummary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Locales        []string `json:"locales"`
	Domain         string   `json:"domain,omitempty"`
	InternalDomain string   `json:"internalDomain,omitempty"`
	ImgixHost      string   `json:"imgixHost,omitempty"`
	NoIndex        bool     `json:"noIndex"`
	SiteName       string   `json:"siteName,omitempty"`
	TitleSuffix    string   `json:"titleSuffix,omitempty"`
}

// ItemTypeSummary describes one item type and its items
type ItemTypeSummary struct {
	ID         string `json:"id"`
	APIKey     string `json:"apiKey"`
	Name       string `json:"name"`
	Singleton  bool   `json:"singleton"`
	Items      int    `json:"items"`
	Fields     int    `json:"fields"`
	TitleField string `json:"titleField,omitempty"`
}

// DocumentSummary is the output of the inspect command
type DocumentSummary struct {
	Resources int               `json:"resources"`
	Site      *SiteSummary      `json:"site"`
	ItemTypes []ItemTypeSummary `json:"itemTypes"`
}

func newInspectCommand(a *app) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a DatoCMS document",
		Long: `Summarize a DatoCMS document: its site and global SEO settings, and
its item types with their item and field counts.`,
		Example: `  # Summarize an export
  seotags inspect --file export.json

  # Machine readable
  seotags inspect -f export.json --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "JSON:API document (default stdin)")
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "Output format: json or table")

	return cmd
}

func runInspect(cmd *cobra.Command, a *app, opts *inspectOptions) error {
	if err := validateFormat(opts.format); err != nil {
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

	summary := summarize(repo)
	if opts.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	renderSummary(cmd.OutOrStdout(), summary, a.noColor)
	return nil
}

func summarize(repo *entities.Repo) DocumentSummary {
	summary := DocumentSummary{
		Resources: repo.Graph().Index().Len(),
		ItemTypes: []ItemTypeSummary{},
	}

	if site, err := repo.Site(); err == nil {
		s := &SiteSummary{
			ID:             site.ID(),
			Name:           site.Name(),
			Locales:        site.Locales(),
			Domain:         site.Domain(),
			InternalDomain: site.InternalDomain(),
			ImgixHost:      site.ImgixHost(),
			NoIndex:        site.NoIndex(),
		}
		if global, ok := site.GlobalSeo(); ok {
			s.SiteName = global.SiteName
			s.TitleSuffix = global.TitleSuffix
		}
		summary.Site = s
	}

	for _, it := range repo.ItemTypes() {
		its := ItemTypeSummary{
			ID:        it.ID(),
			APIKey:    it.APIKey(),
			Name:      it.Name(),
			Singleton: it.Singleton(),
			Items:     len(repo.ItemsOfType(it.APIKey())),
			Fields:    len(it.Fields()),
		}
		if f, ok := it.TitleField(); ok {
			its.TitleField = f.APIKey()
		}
		summary.ItemTypes = append(summary.ItemTypes, its)
	}

	return summary
}

func renderSummary(w io.Writer, s DocumentSummary, noColor bool) {
	ui.Header(w, "Site", noColor)
	if s.Site == nil {
		ui.WriteError(w, ui.ErrorOptions{
			Level:   ui.ErrorLevelWarning,
			Problem: "document has no single site resource; tags cannot be built",
			NoColor: noColor,
		})
	} else {
		kv := ui.NewKeyValueTable(w, noColor)
		kv.AddRow("ID", s.Site.ID)
		kv.AddRow("Name", s.Site.Name)
		kv.AddRow("Locales", strings.Join(s.Site.Locales, ", "))
		kv.AddRow("Domain", orDash(s.Site.Domain))
		kv.AddRow("Internal domain", orDash(s.Site.InternalDomain))
		kv.AddRow("Imgix host", orDash(s.Site.ImgixHost))
		kv.AddRow("No index", strconv.FormatBool(s.Site.NoIndex))
		kv.AddRow("Site name", orDash(s.Site.SiteName))
		kv.AddRow("Title suffix", orDash(s.Site.TitleSuffix))
		kv.Render()
	}
	fmt.Fprintln(w)

	ui.Header(w, "Item types", noColor)
	table := ui.NewTable(w, []string{"API KEY", "NAME", "SINGLETON", "ITEMS", "FIELDS", "TITLE FIELD"},
		&ui.TableOptions{NoColor: noColor})
	for _, it := range s.ItemTypes {
		table.AddRow(it.APIKey, it.Name, strconv.FormatBool(it.Singleton),
			strconv.Itoa(it.Items), strconv.Itoa(it.Fields), orDash(it.TitleField))
	}
	table.Render()
	fmt.Fprintf(w, "\n%d resources\n", s.Resources)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
