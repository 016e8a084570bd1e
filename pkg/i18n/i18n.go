// Package i18n provides the translation facility used by widget feedback
// messages: a catalog-backed Translator built on golang.org/x/text message
// catalogs, plus process-wide defaults installed once at startup.
package i18n

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ErrMissingTranslation reports a key that is defined in neither the
// requested locale nor the fallback.
var ErrMissingTranslation = errors.New("missing translation")

// Translator resolves a message key for a locale. Implementations format
// positional arguments into the localized message.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// Catalog is a Translator backed by an x/text message catalog. Messages are
// defined per locale; lookups fall back to the catalog's fallback language.
type Catalog struct {
	mu       sync.RWMutex
	builder  *catalog.Builder
	keys     map[language.Tag]map[string]struct{}
	fallback language.Tag
}

// NewCatalog constructs an empty catalog falling back to the given language.
func NewCatalog(fallback language.Tag) *Catalog {
	return &Catalog{
		builder:  catalog.NewBuilder(catalog.Fallback(fallback)),
		keys:     make(map[language.Tag]map[string]struct{}),
		fallback: fallback,
	}
}

// Define registers the message for key in the given locale.
func (c *Catalog) Define(locale language.Tag, key, msg string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("i18n: define: empty key")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.builder.SetString(locale, key, msg); err != nil {
		return fmt.Errorf("i18n: define %q: %w", key, err)
	}
	if c.keys[locale] == nil {
		c.keys[locale] = make(map[string]struct{})
	}
	c.keys[locale][key] = struct{}{}
	return nil
}

// Translate resolves key in the requested locale, formatting args into the
// message. An empty or unparsable locale resolves in the fallback language.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	tag := c.fallback
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		if parsed, err := language.Parse(trimmed); err == nil {
			tag = parsed
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	// The printer's own matcher does not reliably reach the fallback
	// language for tags the catalog never saw, so resolve the tag here.
	if !c.defined(tag, key) {
		if !c.defined(c.fallback, key) {
			return "", fmt.Errorf("i18n: %q in %v: %w", key, tag, ErrMissingTranslation)
		}
		tag = c.fallback
	}
	printer := message.NewPrinter(tag, message.Catalog(c.builder))
	return printer.Sprintf(key, args...), nil
}

func (c *Catalog) defined(tag language.Tag, key string) bool {
	keys, ok := c.keys[tag]
	if !ok {
		return false
	}
	_, ok = keys[key]
	return ok
}

var (
	setupOnce         sync.Once
	defaultLocale     string
	defaultTranslator Translator
)

// Initialize installs the process-wide locale and translator consulted by
// Text. It runs once; later calls are no-ops, matching the one-time setup
// performed at application start.
func Initialize(locale string, translator Translator) {
	setupOnce.Do(func() {
		defaultLocale = locale
		defaultTranslator = translator
	})
}

// Text resolves key through the process-wide translator, falling back to the
// supplied message when no translator is installed or the key is missing.
// The fallback is formatted with args through the standard formatter.
func Text(key, fallback string, args ...any) string {
	if defaultTranslator != nil {
		if msg, err := defaultTranslator.Translate(defaultLocale, key, args...); err == nil {
			return msg
		}
	}
	if len(args) == 0 {
		return fallback
	}
	return fmt.Sprintf(fallback, args...)
}
