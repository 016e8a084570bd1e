// Package theme adapts go-theme selections for page rendering: it flattens a
// selected manifest and variant into stylesheet head entries and CSS custom
// properties, and loads manifests from YAML files.
package theme

import (
	"fmt"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Config is a flattened theme selection ready for page rendering.
type Config struct {
	Name    string
	Variant string
	// Tokens are the design tokens with any variant overlay applied.
	Tokens map[string]string
	// Stylesheets are resolved asset hrefs for every stylesheet asset the
	// selection carries.
	Stylesheets []string
}

// Select resolves a theme through a go-theme selector and flattens the
// result.
func Select(selector gotheme.ThemeSelector, name, variant string) (*Config, error) {
	if selector == nil {
		return nil, fmt.Errorf("theme: selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("theme: select %q/%q: %w", name, variant, err)
	}
	return FromSelection(selection)
}

// FromSelection flattens a go-theme selection: manifest tokens and assets
// first, then the selected variant's overrides.
func FromSelection(selection *gotheme.Selection) (*Config, error) {
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("theme: selection carries no manifest")
	}
	manifest := selection.Manifest

	cfg := &Config{
		Name:    selection.Theme,
		Variant: selection.Variant,
		Tokens:  make(map[string]string, len(manifest.Tokens)),
	}
	for key, value := range manifest.Tokens {
		cfg.Tokens[key] = value
	}
	cfg.Stylesheets = stylesheetHrefs(manifest.Assets)

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			cfg.Tokens[key] = value
		}
		prefix := variant.Assets.Prefix
		if prefix == "" {
			prefix = manifest.Assets.Prefix
		}
		cfg.Stylesheets = append(cfg.Stylesheets, stylesheetHrefs(gotheme.Assets{
			Prefix: prefix,
			Files:  variant.Assets.Files,
		})...)
	}
	return cfg, nil
}

// stylesheetHrefs resolves the asset files whose key names a stylesheet,
// sorted by key so output is deterministic.
func stylesheetHrefs(assets gotheme.Assets) []string {
	keys := make([]string, 0, len(assets.Files))
	for key := range assets.Files {
		if key == "stylesheet" || strings.HasSuffix(key, ".stylesheet") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	hrefs := make([]string, 0, len(keys))
	for _, key := range keys {
		hrefs = append(hrefs, joinAssetPath(assets.Prefix, assets.Files[key]))
	}
	return hrefs
}

func joinAssetPath(prefix, file string) string {
	if prefix == "" {
		return file
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
}

// CSSVariables renders the tokens as a :root rule of custom properties, one
// per token, sorted by name.
func CSSVariables(cfg *Config) string {
	if cfg == nil || len(cfg.Tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.Tokens))
	for key := range cfg.Tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(cfg.Tokens[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
