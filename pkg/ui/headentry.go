package ui

import (
	"io"
	"strings"

	"github.com/cviebrock/swat/pkg/markup"
)

// HeadEntryKind discriminates the page-level resources a UI object can
// register.
type HeadEntryKind int

const (
	HeadEntryStyleSheet HeadEntryKind = iota
	HeadEntryJavaScript
	HeadEntryInlineJavaScript
	HeadEntryComment
)

// HeadEntry is a single page-level resource. For stylesheet and script
// entries URI identifies the resource; inline scripts and comments are
// identified by their content.
type HeadEntry struct {
	Kind    HeadEntryKind
	URI     string
	Content string
}

func (e HeadEntry) key() string {
	identity := e.URI
	if identity == "" {
		identity = e.Content
	}
	var b strings.Builder
	b.WriteByte(byte('0' + e.Kind))
	b.WriteByte(':')
	b.WriteString(identity)
	return b.String()
}

// HeadEntrySet is an ordered collection of head entries deduplicated by
// (kind, resource identity). A resource registered by several nodes in a tree
// is kept once, in first-seen position.
type HeadEntrySet struct {
	entries []HeadEntry
	seen    map[string]struct{}
}

// NewHeadEntrySet constructs an empty set.
func NewHeadEntrySet() *HeadEntrySet {
	return &HeadEntrySet{seen: make(map[string]struct{})}
}

// Add appends an entry unless an entry with the same identity is already
// present.
func (s *HeadEntrySet) Add(entry HeadEntry) {
	key := entry.key()
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.entries = append(s.entries, entry)
}

// AddSet unions another set into this one, preserving first-seen order.
func (s *HeadEntrySet) AddSet(other *HeadEntrySet) {
	if other == nil {
		return
	}
	for _, entry := range other.entries {
		s.Add(entry)
	}
}

// Entries returns the entries in order.
func (s *HeadEntrySet) Entries() []HeadEntry {
	return append([]HeadEntry(nil), s.entries...)
}

// Len reports the number of distinct entries.
func (s *HeadEntrySet) Len() int {
	return len(s.entries)
}

// Contains reports whether an entry with the same identity is present.
func (s *HeadEntrySet) Contains(entry HeadEntry) bool {
	_, ok := s.seen[entry.key()]
	return ok
}

// Copy returns an independent clone of the set.
func (s *HeadEntrySet) Copy() *HeadEntrySet {
	clone := NewHeadEntrySet()
	clone.AddSet(s)
	return clone
}

// Display writes the set as head markup: link elements for stylesheets,
// script elements for scripts, and XHTML comments. uriPrefix is prepended to
// every resource URI so applications can mount assets under a base path.
func (s *HeadEntrySet) Display(w io.Writer, uriPrefix string) error {
	for _, entry := range s.entries {
		switch entry.Kind {
		case HeadEntryStyleSheet:
			tag := markup.NewTag("link")
			tag.Set("rel", "stylesheet")
			tag.Set("type", "text/css")
			tag.Set("href", uriPrefix+entry.URI)
			if err := tag.SelfClose(w); err != nil {
				return err
			}
		case HeadEntryJavaScript:
			tag := markup.NewTag("script")
			tag.Set("type", "text/javascript")
			tag.Set("src", uriPrefix+entry.URI)
			if err := tag.DisplayRaw(w, ""); err != nil {
				return err
			}
		case HeadEntryInlineJavaScript:
			tag := markup.NewTag("script")
			tag.Set("type", "text/javascript")
			if err := tag.DisplayRaw(w, entry.Content); err != nil {
				return err
			}
		case HeadEntryComment:
			if _, err := io.WriteString(w, "<!-- "+markup.Escape(entry.Content)+" -->"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
