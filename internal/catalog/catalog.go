// Package catalog defines the data model for the trap catalog: entries,
// sections, and the ordered registry the renderer, verifier, and CLI all
// consume. Entries are static - the catalog is assembled once at startup and
// never mutated afterwards.
package catalog

import (
	"fmt"
	"io"
	"strings"
)

// RunFunc reproduces an entry's illustrative program in-process, writing the
// program's stdout to w.
type RunFunc func(w io.Writer)

// Entry is one documented trap: prose, the standalone program that
// demonstrates it, and the exact output that program prints.
type Entry struct {
	// ID is the stable, human-chosen identifier (kebab-case), unique across
	// the whole catalog.
	ID string

	// Title is the heading used in the rendered document.
	Title string

	// Doc is the explanatory prose, in markdown.
	Doc string

	// Code is the standalone illustrative program (a complete package main),
	// shown verbatim in the rendered document.
	Code string

	// Output is the exact stdout the program prints. Empty iff Crashes.
	Output string

	// PlayURL optionally links the snippet on the Go playground. Rendered
	// only when set; share URLs are minted by hand, not generated.
	PlayURL string

	// Crashes marks programs that terminate abnormally (e.g. an unrecovered
	// panic in a child goroutine). Such entries carry no Run and are never
	// executed in-process.
	Crashes bool

	// Run reproduces the program's output. Nil iff Crashes.
	Run RunFunc
}

// Runnable reports whether the entry can be executed in-process.
func (e Entry) Runnable() bool {
	return !e.Crashes && e.Run != nil
}

// Anchor returns the markdown heading anchor for the entry.
func (e Entry) Anchor() string {
	return anchor(e.Title)
}

// Section groups related entries under one document heading.
type Section struct {
	ID      string
	Title   string
	Intro   string // markdown, may be empty
	Entries []Entry
}

// Anchor returns the markdown heading anchor for the section.
func (s Section) Anchor() string {
	return anchor(s.Title)
}

// Registry is the assembled catalog. Section and entry order is document
// order.
type Registry struct {
	sections []Section
	byID     map[string]Entry
}

// New builds a registry from sections in document order. It fails on
// duplicate entry IDs and on malformed entries (a runnable entry without
// output, or a crashing entry with a Run).
func New(sections ...Section) (*Registry, error) {
	r := &Registry{
		sections: sections,
		byID:     make(map[string]Entry),
	}
	for _, s := range sections {
		for _, e := range s.Entries {
			key := strings.ToLower(e.ID)
			if key == "" {
				return nil, fmt.Errorf("section %q: entry %q has no ID", s.ID, e.Title)
			}
			if _, dup := r.byID[key]; dup {
				return nil, fmt.Errorf("duplicate entry ID %q", e.ID)
			}
			if e.Crashes {
				if e.Run != nil {
					return nil, fmt.Errorf("entry %q: crashing entries must not have a Run", e.ID)
				}
			} else {
				if e.Run == nil {
					return nil, fmt.Errorf("entry %q: missing Run", e.ID)
				}
				if e.Output == "" {
					return nil, fmt.Errorf("entry %q: missing expected output", e.ID)
				}
			}
			r.byID[key] = e
		}
	}
	return r, nil
}

// MustNew is New for statically assembled catalogs, where a construction
// error is a programming bug.
func MustNew(sections ...Section) *Registry {
	r, err := New(sections...)
	if err != nil {
		panic(err)
	}
	return r
}

// Sections returns the sections in document order.
func (r *Registry) Sections() []Section {
	return r.sections
}

// Entries returns every entry in document order.
func (r *Registry) Entries() []Entry {
	var out []Entry
	for _, s := range r.sections {
		out = append(out, s.Entries...)
	}
	return out
}

// Len returns the number of entries in the catalog.
func (r *Registry) Len() int {
	return len(r.byID)
}

// Lookup finds an entry by ID, case-insensitively.
func (r *Registry) Lookup(id string) (Entry, bool) {
	e, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	return e, ok
}

// Capture executes a runnable entry and returns everything it printed.
func Capture(e Entry) string {
	var buf strings.Builder
	if e.Run != nil {
		e.Run(&buf)
	}
	return buf.String()
}

// anchor mirrors the GitHub-style slug the renderer's TOC links rely on.
func anchor(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('-')
		}
	}
	return b.String()
}
