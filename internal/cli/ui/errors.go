package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error message
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Level        ErrorLevel
	Context      string
	Problem      string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized error message with suggestions and help commands
//
// Example output:
//
//	❌ ITEM NOT FOUND: no item type "artcle"
//
//	   Did you mean: article?
//
//	   → List item types: seotags inspect --file doc.json
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	header := newColor(opts.NoColor, color.FgRed, color.Bold)
	symbol := "❌"
	if opts.Level == ErrorLevelWarning {
		header = newColor(opts.NoColor, color.FgYellow, color.Bold)
		symbol = "⚠️"
	}

	if opts.Context != "" {
		header.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(opts.Context), opts.Problem)
	} else {
		header.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		newColor(opts.NoColor, color.FgYellow).
			Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		cyan := newColor(opts.NoColor, color.FgCyan)
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// DocumentError reports a document that could not be loaded
func DocumentError(err error, noColor bool) ErrorOptions {
	return ErrorOptions{
		Context: "invalid document",
		Problem: err.Error(),
		HelpCommands: []string{
			"The document must be a JSON:API payload with data and included members",
			"Check its content: seotags inspect --file <document>",
		},
		NoColor: noColor,
	}
}

// ItemNotFound reports a selector that matched no item
func ItemNotFound(err error, suggestions []string, noColor bool) ErrorOptions {
	return ErrorOptions{
		Context:      "item not found",
		Problem:      err.Error(),
		Suggestions:  suggestions,
		HelpCommands: []string{"List item types: seotags inspect --file <document>"},
		NoColor:      noColor,
	}
}

// ConfigError reports an invalid configuration
func ConfigError(err error, noColor bool) ErrorOptions {
	return ErrorOptions{
		Context: "configuration error",
		Problem: err.Error(),
		HelpCommands: []string{
			"View config: cat seotags.yaml",
			"Get help: seotags --help",
		},
		NoColor: noColor,
	}
}
