// Package layout renders full HTML pages around a widget tree. A page
// collects the tree's head entries, applies an optional theme, and fills a
// pongo2 page template with the rendered fragments.
package layout

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplateRenderer renders named templates with a data context. The pongo2
// engine is the stock implementation; callers can swap in their own.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(content string, data map[string]any) (string, error)
}

type engineConfig struct {
	files     fs.FS
	extension string
}

// EngineOption adjusts template engine construction.
type EngineOption func(*engineConfig)

// WithTemplatesFS overrides the filesystem templates are loaded from.
func WithTemplatesFS(files fs.FS) EngineOption {
	return func(cfg *engineConfig) {
		if files != nil {
			cfg.files = files
		}
	}
}

// WithExtension changes the file extension templates are discovered by.
func WithExtension(ext string) EngineOption {
	return func(cfg *engineConfig) {
		if ext != "" {
			cfg.extension = ext
		}
	}
}

// Engine compiles pongo2 templates from a filesystem and renders them by
// path.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]*pongo2.Template
}

// NewEngine loads every template under the configured filesystem. Without
// options it serves the embedded page templates.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	cfg := engineConfig{
		files:     embeddedTemplates,
		extension: ".tmpl",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	engine := &Engine{templates: make(map[string]*pongo2.Template)}
	err := fs.WalkDir(cfg.files, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(path, cfg.extension) {
			return nil
		}
		content, err := fs.ReadFile(cfg.files, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}
		tpl, err := pongo2.FromString(string(content))
		if err != nil {
			return fmt.Errorf("compile template %s: %w", path, err)
		}
		engine.templates[path] = tpl
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("layout: load templates: %w", err)
	}
	return engine, nil
}

// RenderTemplate renders a previously loaded template by its path.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	e.mu.RLock()
	tpl, ok := e.templates[name]
	e.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("layout: template %q not loaded", name)
	}
	out, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("layout: render %q: %w", name, err)
	}
	return out, nil
}

// RenderString compiles and renders an inline template.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	tpl, err := pongo2.FromString(content)
	if err != nil {
		return "", fmt.Errorf("layout: compile inline template: %w", err)
	}
	out, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("layout: render inline template: %w", err)
	}
	return out, nil
}
