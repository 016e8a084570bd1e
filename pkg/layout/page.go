package layout

import (
	"bytes"
	"fmt"

	"github.com/cviebrock/swat/pkg/theme"
	"github.com/cviebrock/swat/pkg/ui"
)

const pageTemplate = "templates/page.tmpl"

// Page wraps a widget tree in a full HTML document.
type Page struct {
	Title string
	// BaseHref is prepended to every head-entry URI, matching wherever the
	// application mounts its static assets.
	BaseHref string
	Theme    *theme.Config

	root     ui.Widget
	renderer TemplateRenderer
}

// PageOption adjusts page construction.
type PageOption func(*Page)

// WithBaseHref sets the asset URI prefix.
func WithBaseHref(href string) PageOption {
	return func(p *Page) { p.BaseHref = href }
}

// WithTheme attaches a flattened theme to the page.
func WithTheme(cfg *theme.Config) PageOption {
	return func(p *Page) { p.Theme = cfg }
}

// WithRenderer swaps the template renderer.
func WithRenderer(renderer TemplateRenderer) PageOption {
	return func(p *Page) {
		if renderer != nil {
			p.renderer = renderer
		}
	}
}

// NewPage builds a page around a widget tree root.
func NewPage(title string, root ui.Widget, opts ...PageOption) (*Page, error) {
	if root == nil {
		return nil, fmt.Errorf("layout: page root is nil")
	}
	engine, err := NewEngine()
	if err != nil {
		return nil, err
	}
	page := &Page{
		Title:    title,
		root:     root,
		renderer: engine,
	}
	for _, opt := range opts {
		opt(page)
	}
	return page, nil
}

// Root returns the widget tree the page wraps.
func (p *Page) Root() ui.Widget {
	return p.root
}

// Render initializes the tree if needed, displays it, and fills the page
// template with the head and body fragments.
func (p *Page) Render() ([]byte, error) {
	if !p.root.Initialized() {
		if err := p.root.Init(); err != nil {
			return nil, fmt.Errorf("layout: init page root: %w", err)
		}
	}

	var body bytes.Buffer
	if err := p.root.Display(&body); err != nil {
		return nil, fmt.Errorf("layout: display page root: %w", err)
	}

	entries := ui.NewHeadEntrySet()
	if p.Theme != nil {
		for _, href := range p.Theme.Stylesheets {
			entries.Add(ui.HeadEntry{Kind: ui.HeadEntryStyleSheet, URI: href})
		}
	}
	entries.AddSet(p.root.HeadEntries())

	var head bytes.Buffer
	if err := entries.Display(&head, p.BaseHref); err != nil {
		return nil, fmt.Errorf("layout: display head entries: %w", err)
	}

	out, err := p.renderer.RenderTemplate(pageTemplate, map[string]any{
		"title":      p.Title,
		"head":       head.String(),
		"body":       body.String(),
		"style_vars": theme.CSSVariables(p.Theme),
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
