package controls

import (
	"io"

	"github.com/cviebrock/swat/pkg/markup"
	"github.com/cviebrock/swat/pkg/ui"
)

// Content is a static block rendered inside a form or container. Plain
// content is escaped; content flagged as markup is sanitized instead so
// user-supplied fragments cannot inject script.
type Content struct {
	ui.WidgetBase

	Content string
	// ContentIsMarkup routes Content through the rich-content sanitizer
	// instead of escaping it.
	ContentIsMarkup bool
}

// NewContent constructs a static content block.
func NewContent(content string) *Content {
	c := &Content{WidgetBase: ui.NewWidgetBase("content"), Content: content}
	c.Bind(c)
	return c
}

// Display renders the content wrapped in a div.
func (c *Content) Display(w io.Writer) error {
	if err := c.EnsureInitialized(); err != nil {
		return err
	}
	if err := c.WidgetBase.Display(w); err != nil {
		return err
	}
	if !c.Visible() {
		return nil
	}

	tag := markup.NewTag("div")
	tag.Set("class", classAttribute([]string{"swat-content"}, c))
	if id := c.ID(); id != "" {
		tag.Set("id", id)
	}
	body := markup.Escape(c.Content)
	if c.ContentIsMarkup {
		body = markup.SanitizeRich(c.Content)
	}
	return tag.DisplayRaw(w, body)
}

// Copy returns an independent clone with the parent link severed.
func (c *Content) Copy(idSuffix string) ui.Widget {
	clone := &Content{
		WidgetBase:      c.CopyBase(idSuffix),
		Content:         c.Content,
		ContentIsMarkup: c.ContentIsMarkup,
	}
	clone.Bind(clone)
	return clone
}
