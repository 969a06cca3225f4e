// Package render turns the catalog into its two external artifacts: the
// markdown document and a styled terminal rendering of it.
package render

import (
	"fmt"
	"strings"

	"gotraps/internal/catalog"
)

// Options control document generation.
type Options struct {
	Title string
	// TOC emits a linked table of contents after the title.
	TOC bool
	// PlayBase resolves bare playground share IDs into links. Entries whose
	// PlayURL already carries a scheme are linked as-is.
	PlayBase string
}

// DefaultOptions are the options the CLI starts from.
func DefaultOptions(title string) Options {
	return Options{
		Title:    title,
		TOC:      true,
		PlayBase: "https://go.dev/play/",
	}
}

// Document renders the whole catalog as one markdown document.
func Document(reg *catalog.Registry, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", opts.Title)

	if opts.TOC {
		b.WriteString("## Contents\n\n")
		for _, s := range reg.Sections() {
			fmt.Fprintf(&b, "- [%s](#%s)\n", s.Title, s.Anchor())
			for _, e := range s.Entries {
				fmt.Fprintf(&b, "  - [%s](#%s)\n", e.Title, e.Anchor())
			}
		}
		b.WriteString("\n")
	}

	for _, s := range reg.Sections() {
		b.WriteString(SectionMarkdown(s, opts))
	}

	return b.String()
}

// SectionMarkdown renders one section heading, its intro, and its entries.
func SectionMarkdown(s catalog.Section, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", s.Title)
	if s.Intro != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Intro)
	}
	for _, e := range s.Entries {
		b.WriteString(EntryMarkdown(e, opts))
	}

	return b.String()
}

// EntryMarkdown renders one entry: prose, the shown program, what it prints
// (or how it dies), and the playground link when one exists.
func EntryMarkdown(e catalog.Entry, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n\n", e.Title)
	fmt.Fprintf(&b, "%s\n\n", e.Doc)
	fmt.Fprintf(&b, "```go\n%s```\n\n", e.Code)

	if e.Crashes {
		b.WriteString("This program terminates abnormally; see the prose for the exact failure.\n\n")
	} else {
		fmt.Fprintf(&b, "Output:\n\n```text\n%s```\n\n", e.Output)
	}

	if link := playLink(opts.PlayBase, e.PlayURL); link != "" {
		fmt.Fprintf(&b, "[Run it on the Go Playground](%s)\n\n", link)
	}

	return b.String()
}

func playLink(base, url string) string {
	if url == "" {
		return ""
	}
	if strings.Contains(url, "://") {
		return url
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(url, "/")
}
