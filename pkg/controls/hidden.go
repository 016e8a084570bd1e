package controls

import (
	"io"

	"github.com/cviebrock/swat/pkg/markup"
	"github.com/cviebrock/swat/pkg/ui"
)

// Hidden carries a value through the form round-trip without visible chrome.
type Hidden struct {
	ui.WidgetBase

	Value string
}

// NewHidden constructs a hidden input.
func NewHidden(id, value string) *Hidden {
	h := &Hidden{WidgetBase: ui.NewWidgetBase("hidden"), Value: value}
	h.Bind(h)
	h.SetID(id)
	h.RequireID()
	return h
}

// Process restores the submitted value.
func (h *Hidden) Process() error {
	if err := h.EnsureInitialized(); err != nil {
		return err
	}
	if err := h.WidgetBase.Process(); err != nil {
		return err
	}
	form, err := parentForm(h)
	if err != nil {
		return err
	}
	if !form.IsSubmitted() {
		return nil
	}
	h.Value = form.FormValue(h.ID())
	return nil
}

// Display renders the hidden input. Visibility flags are ignored; a hidden
// field must reach the submission even when its subtree chrome is hidden.
func (h *Hidden) Display(w io.Writer) error {
	if err := h.EnsureInitialized(); err != nil {
		return err
	}
	if err := h.WidgetBase.Display(w); err != nil {
		return err
	}

	tag := markup.NewTag("input")
	tag.Set("type", "hidden")
	tag.Set("id", h.ID())
	tag.Set("name", h.ID())
	tag.Set("value", h.Value)
	return tag.SelfClose(w)
}

// Copy returns an independent clone with the parent link severed.
func (h *Hidden) Copy(idSuffix string) ui.Widget {
	clone := &Hidden{
		WidgetBase: h.CopyBase(idSuffix),
		Value:      h.Value,
	}
	clone.Bind(clone)
	return clone
}
