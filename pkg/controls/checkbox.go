package controls

import (
	"io"

	"github.com/cviebrock/swat/pkg/markup"
	"github.com/cviebrock/swat/pkg/ui"
)

// Checkbox is a boolean input. An unchecked box is absent from the
// submission, so Process derives the value from field presence.
type Checkbox struct {
	ui.WidgetBase

	Value bool
}

// NewCheckbox constructs a checkbox. An empty id is assigned during Init.
func NewCheckbox(id string) *Checkbox {
	c := &Checkbox{WidgetBase: ui.NewWidgetBase("checkbox")}
	c.Bind(c)
	c.SetID(id)
	c.RequireID()
	return c
}

// Process sets Value from the presence of the checkbox field in the
// submission.
func (c *Checkbox) Process() error {
	if err := c.EnsureInitialized(); err != nil {
		return err
	}
	if err := c.WidgetBase.Process(); err != nil {
		return err
	}
	form, err := parentForm(c)
	if err != nil {
		return err
	}
	if !form.IsSubmitted() {
		return nil
	}
	c.Value = form.HasFormValue(c.ID())
	return nil
}

// Display renders the checkbox input.
func (c *Checkbox) Display(w io.Writer) error {
	if err := c.EnsureInitialized(); err != nil {
		return err
	}
	if err := c.WidgetBase.Display(w); err != nil {
		return err
	}
	if !c.Visible() {
		return nil
	}

	tag := markup.NewTag("input")
	tag.Set("type", "checkbox")
	tag.Set("id", c.ID())
	tag.Set("name", c.ID())
	tag.Set("value", "1")
	tag.Set("class", classAttribute([]string{"swat-checkbox"}, c))
	if c.Value {
		tag.Set("checked", "checked")
	}
	if !c.IsSensitive() {
		tag.Set("disabled", "disabled")
	}
	return tag.SelfClose(w)
}

// Copy returns an independent clone with the parent link severed.
func (c *Checkbox) Copy(idSuffix string) ui.Widget {
	clone := &Checkbox{
		WidgetBase: c.CopyBase(idSuffix),
		Value:      c.Value,
	}
	clone.Bind(clone)
	return clone
}
