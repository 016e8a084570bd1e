package controls

import (
	"io"

	"github.com/cviebrock/swat/pkg/i18n"
	"github.com/cviebrock/swat/pkg/markup"
	"github.com/cviebrock/swat/pkg/ui"
)

// Option is one selectable entry in a flydown. A divider renders as a
// disabled separator row and can never be selected.
type Option struct {
	Value   string
	Title   string
	Divider bool
}

// NewOption constructs a selectable option.
func NewOption(value, title string) Option {
	return Option{Value: value, Title: title}
}

// Flydown is a single-select control rendered as a select element.
type Flydown struct {
	ui.WidgetBase

	// Value is the selected option value, replaced from the submission
	// during Process.
	Value string
	// ShowBlank prepends a "choose one" option with an empty value.
	ShowBlank bool
	// BlankTitle overrides the default blank option label.
	BlankTitle string

	options []Option
}

// NewFlydown constructs a flydown with the blank option enabled.
func NewFlydown(id string) *Flydown {
	f := &Flydown{WidgetBase: ui.NewWidgetBase("flydown"), ShowBlank: true}
	f.Bind(f)
	f.SetID(id)
	f.RequireID()
	return f
}

// AddOption appends an option.
func (f *Flydown) AddOption(option Option) {
	f.options = append(f.options, option)
}

// AddOptionValues appends a value/title pair.
func (f *Flydown) AddOptionValues(value, title string) {
	f.AddOption(NewOption(value, title))
}

// AddDivider appends a separator row.
func (f *Flydown) AddDivider() {
	f.options = append(f.options, Option{Divider: true})
}

// Options returns the options in order.
func (f *Flydown) Options() []Option {
	return append([]Option(nil), f.options...)
}

// hasOptionValue reports whether value matches a selectable option.
func (f *Flydown) hasOptionValue(value string) bool {
	for _, option := range f.options {
		if !option.Divider && option.Value == value {
			return true
		}
	}
	return false
}

// Process reads the submitted selection, keeping the current value when the
// submission does not match any selectable option.
func (f *Flydown) Process() error {
	if err := f.EnsureInitialized(); err != nil {
		return err
	}
	if err := f.WidgetBase.Process(); err != nil {
		return err
	}
	form, err := parentForm(f)
	if err != nil {
		return err
	}
	if !form.IsSubmitted() {
		return nil
	}
	submitted := form.FormValue(f.ID())
	if submitted == "" || f.hasOptionValue(submitted) {
		f.Value = submitted
	}
	return nil
}

// Display renders the select element with its options.
func (f *Flydown) Display(w io.Writer) error {
	if err := f.EnsureInitialized(); err != nil {
		return err
	}
	if err := f.WidgetBase.Display(w); err != nil {
		return err
	}
	if !f.Visible() {
		return nil
	}

	tag := f.selectTag()
	if err := tag.Open(w); err != nil {
		return err
	}
	if err := f.displayBlankOption(w); err != nil {
		return err
	}
	for _, option := range f.options {
		if err := displayOption(w, option, f.Value, 0); err != nil {
			return err
		}
	}
	return tag.Close(w)
}

func (f *Flydown) selectTag() *markup.Tag {
	tag := markup.NewTag("select")
	tag.Set("id", f.ID())
	tag.Set("name", f.ID())
	tag.Set("class", classAttribute([]string{"swat-flydown"}, f))
	if !f.IsSensitive() {
		tag.Set("disabled", "disabled")
	}
	return tag
}

func (f *Flydown) displayBlankOption(w io.Writer) error {
	if !f.ShowBlank {
		return nil
	}
	title := f.BlankTitle
	if title == "" {
		title = i18n.Text("swat.flydown-blank", "choose one ...")
	}
	return displayOption(w, NewOption("", title), f.Value, 0)
}

// displayOption renders one option row. depth indents the title for
// flattened tree entries.
func displayOption(w io.Writer, option Option, selected string, depth int) error {
	tag := markup.NewTag("option")
	if option.Divider {
		tag.Set("value", "")
		tag.Set("disabled", "disabled")
		tag.Set("class", "swat-flydown-divider")
		return tag.Display(w, "------")
	}
	tag.Set("value", option.Value)
	if option.Value == selected {
		tag.Set("selected", "selected")
	}
	if err := tag.Open(w); err != nil {
		return err
	}
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, "&#160;&#160;"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, markup.Escape(option.Title)); err != nil {
		return err
	}
	return tag.Close(w)
}

// Copy returns an independent clone with the parent link severed.
func (f *Flydown) Copy(idSuffix string) ui.Widget {
	clone := &Flydown{
		WidgetBase: f.CopyBase(idSuffix),
		Value:      f.Value,
		ShowBlank:  f.ShowBlank,
		BlankTitle: f.BlankTitle,
		options:    append([]Option(nil), f.options...),
	}
	clone.Bind(clone)
	return clone
}
