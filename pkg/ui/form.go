package ui

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/cviebrock/swat/pkg/markup"
)

// ErrAuthenticationToken reports a submitted form whose authentication token
// did not match the process-wide token, indicating a forged or stale
// submission.
var ErrAuthenticationToken = errors.New("authentication token mismatch")

const (
	processFieldName   = "_swat_form_process"
	authTokenFieldName = "_swat_form_token"
)

var authenticationToken string

// SetAuthenticationToken installs the process-wide token rendered into every
// form and verified on submission. An empty token disables verification.
func SetAuthenticationToken(token string) {
	authenticationToken = token
}

// Form is the root container of a submittable widget tree. It renders the
// form element, carries application hidden fields, and holds the submitted
// values that descendant widgets consume during Process.
type Form struct {
	Container

	// Method is the form submission method, "post" unless overridden.
	Method string
	// Action is the submission target URI.
	Action string

	hiddenNames  []string
	hiddenValues map[string]string

	submitted url.Values
}

// NewForm constructs a form with the given id. Forms always require an id so
// submissions can be matched back to the tree that rendered them.
func NewForm(id string) *Form {
	f := &Form{
		Container: Container{WidgetBase: NewWidgetBase("form")},
		Method:    "post",
		Action:    "",
	}
	f.Bind(f)
	f.SetID(id)
	f.RequireID()
	f.SetStylesheet("styles/swat.css")
	f.AddClass("swat-form")
	return f
}

// AddHiddenField registers a name/value pair rendered as a hidden input and
// restored from the submitted values during Process.
func (f *Form) AddHiddenField(name, value string) {
	if f.hiddenValues == nil {
		f.hiddenValues = make(map[string]string)
	}
	if _, exists := f.hiddenValues[name]; !exists {
		f.hiddenNames = append(f.hiddenNames, name)
	}
	f.hiddenValues[name] = value
}

// HiddenField returns a registered hidden field value.
func (f *Form) HiddenField(name string) (string, bool) {
	value, ok := f.hiddenValues[name]
	return value, ok
}

// SetSubmittedValues stores the decoded form submission consumed by
// descendant widgets during Process.
func (f *Form) SetSubmittedValues(values url.Values) {
	f.submitted = values
}

// SubmittedValues returns the stored submission, which is nil before any
// submission was attached.
func (f *Form) SubmittedValues() url.Values {
	return f.submitted
}

// FormValue returns the first submitted value for name.
func (f *Form) FormValue(name string) string {
	if f.submitted == nil {
		return ""
	}
	return f.submitted.Get(name)
}

// HasFormValue reports whether name was part of the submission.
func (f *Form) HasFormValue(name string) bool {
	if f.submitted == nil {
		return false
	}
	_, ok := f.submitted[name]
	return ok
}

// Submit attaches values as a submission from this form and processes the
// tree. The process marker and the current authentication token are filled in,
// so this is the programmatic equivalent of posting the rendered form.
func (f *Form) Submit(values url.Values) error {
	if err := f.EnsureInitialized(); err != nil {
		return err
	}
	if values == nil {
		values = url.Values{}
	}
	values.Set(processFieldName, f.ID())
	if authenticationToken != "" {
		values.Set(authTokenFieldName, authenticationToken)
	}
	f.submitted = values
	return f.Process()
}

// IsSubmitted reports whether the stored values carry this form's process
// marker, i.e. the submission originated from this form.
func (f *Form) IsSubmitted() bool {
	return f.submitted != nil && f.FormValue(processFieldName) == f.ID()
}

// Process verifies the authentication token, restores hidden fields, and
// processes the child widgets. A form that was not submitted processes
// nothing beyond the base lifecycle.
func (f *Form) Process() error {
	if err := f.EnsureInitialized(); err != nil {
		return err
	}
	if err := f.WidgetBase.Process(); err != nil {
		return err
	}
	if !f.IsSubmitted() {
		return nil
	}
	if authenticationToken != "" && f.FormValue(authTokenFieldName) != authenticationToken {
		return fmt.Errorf("form %q: %w", f.ID(), ErrAuthenticationToken)
	}
	for _, name := range f.hiddenNames {
		if f.HasFormValue(name) {
			f.hiddenValues[name] = f.FormValue(name)
		}
	}
	return f.processChildren()
}

// Display renders the form element, the hidden-field block, and the child
// widgets.
func (f *Form) Display(w io.Writer) error {
	if err := f.EnsureInitialized(); err != nil {
		return err
	}
	if err := f.WidgetBase.Display(w); err != nil {
		return err
	}
	if !f.Visible() {
		return nil
	}

	method := strings.ToLower(strings.TrimSpace(f.Method))
	if method == "" {
		method = "post"
	}

	tag := markup.NewTag("form")
	tag.Set("id", f.ID())
	tag.Set("method", method)
	tag.Set("action", f.Action)
	tag.Set("class", joinClasses(append([]string{}, f.Classes()...)))
	for _, attr := range f.DataAttributes() {
		tag.SetData(attr.Name, attr.Value)
	}
	if err := tag.Open(w); err != nil {
		return err
	}
	if err := f.displayHiddenFields(w); err != nil {
		return err
	}
	if err := f.displayChildren(w); err != nil {
		return err
	}
	return tag.Close(w)
}

func (f *Form) displayHiddenFields(w io.Writer) error {
	div := markup.NewTag("div")
	div.Set("class", "swat-input-hidden")
	if err := div.Open(w); err != nil {
		return err
	}
	if err := displayHiddenInput(w, processFieldName, f.ID()); err != nil {
		return err
	}
	if authenticationToken != "" {
		if err := displayHiddenInput(w, authTokenFieldName, authenticationToken); err != nil {
			return err
		}
	}
	for _, name := range f.hiddenNames {
		if err := displayHiddenInput(w, name, f.hiddenValues[name]); err != nil {
			return err
		}
	}
	return div.Close(w)
}

func displayHiddenInput(w io.Writer, name, value string) error {
	input := markup.NewTag("input")
	input.Set("type", "hidden")
	input.Set("name", name)
	input.Set("value", value)
	return input.SelfClose(w)
}

// Copy deep-copies the form and its children. The submitted values are not
// carried over; a copy starts unsubmitted.
func (f *Form) Copy(idSuffix string) Widget {
	clone := &Form{
		Container: Container{WidgetBase: f.CopyBase(idSuffix)},
		Method:    f.Method,
		Action:    f.Action,
	}
	clone.Bind(clone)
	f.copyChildrenInto(&clone.Container, idSuffix)
	for _, name := range f.hiddenNames {
		clone.AddHiddenField(name, f.hiddenValues[name])
	}
	return clone
}
