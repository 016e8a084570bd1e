package controls

import (
	"io"
	"strconv"

	"github.com/cviebrock/swat/pkg/i18n"
	"github.com/cviebrock/swat/pkg/markup"
	"github.com/cviebrock/swat/pkg/ui"
)

// Entry is a single-line text input.
type Entry struct {
	ui.WidgetBase

	// Value is the current content, pre-populated before display and
	// replaced by the submitted content during Process.
	Value string
	// Required attaches an error message when the submission is empty.
	Required bool
	// MaxLength limits input length when greater than zero.
	MaxLength int
	// Size is the visible character width when greater than zero.
	Size int
}

// NewEntry constructs a text entry. An empty id is assigned during Init.
func NewEntry(id string) *Entry {
	e := &Entry{WidgetBase: ui.NewWidgetBase("entry")}
	e.Bind(e)
	e.SetID(id)
	e.RequireID()
	return e
}

// Process reads the submitted value and applies the required-field check.
func (e *Entry) Process() error {
	if err := e.EnsureInitialized(); err != nil {
		return err
	}
	if err := e.WidgetBase.Process(); err != nil {
		return err
	}
	form, err := parentForm(e)
	if err != nil {
		return err
	}
	if !form.IsSubmitted() {
		return nil
	}
	e.Value = form.FormValue(e.ID())
	if e.Required && e.Value == "" {
		e.AddMessage(ui.NewMessage(ui.MessageError,
			i18n.Text("swat.field-required", "This field is required.")))
	}
	return nil
}

// Display renders the input element.
func (e *Entry) Display(w io.Writer) error {
	if err := e.EnsureInitialized(); err != nil {
		return err
	}
	if err := e.WidgetBase.Display(w); err != nil {
		return err
	}
	if !e.Visible() {
		return nil
	}

	tag := markup.NewTag("input")
	tag.Set("type", "text")
	tag.Set("id", e.ID())
	tag.Set("name", e.ID())
	tag.Set("value", e.Value)
	tag.Set("class", classAttribute([]string{"swat-entry"}, e))
	if e.MaxLength > 0 {
		tag.Set("maxlength", strconv.Itoa(e.MaxLength))
	}
	if e.Size > 0 {
		tag.Set("size", strconv.Itoa(e.Size))
	}
	if !e.IsSensitive() {
		tag.Set("disabled", "disabled")
	}
	for _, attr := range e.DataAttributes() {
		tag.SetData(attr.Name, attr.Value)
	}
	return tag.SelfClose(w)
}

// Copy returns an independent clone with the parent link severed.
func (e *Entry) Copy(idSuffix string) ui.Widget {
	clone := &Entry{
		WidgetBase: e.CopyBase(idSuffix),
		Value:      e.Value,
		Required:   e.Required,
		MaxLength:  e.MaxLength,
		Size:       e.Size,
	}
	clone.Bind(clone)
	return clone
}
