package markup

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// Attribute is a single name/value pair on a Tag. Values are escaped when the
// tag is rendered, never when they are set.
type Attribute struct {
	Name  string
	Value string
}

// Tag builds one XHTML element. Attributes render in the order they were
// first set; setting an existing attribute updates the value in place.
type Tag struct {
	name  string
	attrs []Attribute
}

// NewTag constructs a tag for the given element name.
func NewTag(name string) *Tag {
	return &Tag{name: strings.TrimSpace(name)}
}

// Name returns the element name.
func (t *Tag) Name() string {
	return t.name
}

// Set assigns an attribute, preserving the position of an existing attribute
// with the same name. Empty names are ignored.
func (t *Tag) Set(name, value string) *Tag {
	name = strings.TrimSpace(name)
	if name == "" {
		return t
	}
	for i := range t.attrs {
		if t.attrs[i].Name == name {
			t.attrs[i].Value = value
			return t
		}
	}
	t.attrs = append(t.attrs, Attribute{Name: name, Value: value})
	return t
}

// SetData assigns a data-* attribute.
func (t *Tag) SetData(name, value string) *Tag {
	name = strings.TrimSpace(name)
	if name == "" {
		return t
	}
	return t.Set("data-"+name, value)
}

// Remove drops an attribute if present.
func (t *Tag) Remove(name string) {
	for i := range t.attrs {
		if t.attrs[i].Name == name {
			t.attrs = append(t.attrs[:i], t.attrs[i+1:]...)
			return
		}
	}
}

// Get returns the current value of an attribute and whether it is set.
func (t *Tag) Get(name string) (string, bool) {
	for _, attr := range t.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Open writes the opening tag including attributes.
func (t *Tag) Open(w io.Writer) error {
	if t.name == "" {
		return fmt.Errorf("markup: cannot render tag without a name")
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(t.name)
	t.writeAttributes(&b)
	b.WriteByte('>')
	_, err := io.WriteString(w, b.String())
	return err
}

// Close writes the closing tag.
func (t *Tag) Close(w io.Writer) error {
	_, err := io.WriteString(w, "</"+t.name+">")
	return err
}

// SelfClose writes the tag in XHTML self-closing form, used for void elements
// such as input, img and link.
func (t *Tag) SelfClose(w io.Writer) error {
	if t.name == "" {
		return fmt.Errorf("markup: cannot render tag without a name")
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(t.name)
	t.writeAttributes(&b)
	b.WriteString(" />")
	_, err := io.WriteString(w, b.String())
	return err
}

// Display writes the tag wrapped around escaped text content.
func (t *Tag) Display(w io.Writer, content string) error {
	if err := t.Open(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, Escape(content)); err != nil {
		return err
	}
	return t.Close(w)
}

// DisplayRaw writes the tag wrapped around content that is already markup.
// The caller is responsible for having escaped or sanitized the content.
func (t *Tag) DisplayRaw(w io.Writer, content string) error {
	if err := t.Open(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, content); err != nil {
		return err
	}
	return t.Close(w)
}

func (t *Tag) writeAttributes(b *strings.Builder) {
	for _, attr := range t.attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(Escape(attr.Value))
		b.WriteByte('"')
	}
}

// Escape encodes text for safe inclusion in element content or attribute
// values.
func Escape(s string) string {
	return html.EscapeString(s)
}
