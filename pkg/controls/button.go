package controls

import (
	"io"

	"github.com/cviebrock/swat/pkg/markup"
	"github.com/cviebrock/swat/pkg/ui"
)

// Button is a submit button. The client-side script may disable the button
// on click to prevent double submission; it then posts a hidden field
// carrying the button's name and value, so clicked detection only looks at
// field presence.
type Button struct {
	ui.WidgetBase

	// Title is the visible button label.
	Title string
	// ConfirmationMessage, when set, is rendered as a data attribute the
	// client-side script shows before submitting.
	ConfirmationMessage string
	// ShowThrobber marks the button for the client-side busy indicator.
	ShowThrobber bool

	clicked bool
}

// NewButton constructs a submit button with the given label.
func NewButton(id, title string) *Button {
	b := &Button{WidgetBase: ui.NewWidgetBase("button"), Title: title}
	b.Bind(b)
	b.SetID(id)
	b.RequireID()
	b.SetStylesheet("styles/swat-button.css")
	return b
}

// Clicked reports whether this button submitted the form. Valid after
// Process.
func (b *Button) Clicked() bool {
	return b.clicked
}

// Process detects whether this button's name was part of the submission. An
// insensitive button never registers a click.
func (b *Button) Process() error {
	if err := b.EnsureInitialized(); err != nil {
		return err
	}
	if err := b.WidgetBase.Process(); err != nil {
		return err
	}
	form, err := parentForm(b)
	if err != nil {
		return err
	}
	if !form.IsSubmitted() {
		return nil
	}
	b.clicked = b.IsSensitive() && form.HasFormValue(b.ID())
	return nil
}

// Display renders the submit input.
func (b *Button) Display(w io.Writer) error {
	if err := b.EnsureInitialized(); err != nil {
		return err
	}
	if err := b.WidgetBase.Display(w); err != nil {
		return err
	}
	if !b.Visible() {
		return nil
	}

	classes := []string{"swat-button"}
	if b.ShowThrobber {
		classes = append(classes, "swat-button-throbber")
	}

	tag := markup.NewTag("input")
	tag.Set("type", "submit")
	tag.Set("id", b.ID())
	tag.Set("name", b.ID())
	tag.Set("value", b.Title)
	tag.Set("class", classAttribute(classes, b))
	if b.ConfirmationMessage != "" {
		tag.SetData("confirmation-message", b.ConfirmationMessage)
	}
	if !b.IsSensitive() {
		tag.Set("disabled", "disabled")
	}
	return tag.SelfClose(w)
}

// Copy returns an independent clone with the parent link severed and the
// click state cleared.
func (b *Button) Copy(idSuffix string) ui.Widget {
	clone := &Button{
		WidgetBase:          b.CopyBase(idSuffix),
		Title:               b.Title,
		ConfirmationMessage: b.ConfirmationMessage,
		ShowThrobber:        b.ShowThrobber,
	}
	clone.Bind(clone)
	return clone
}
