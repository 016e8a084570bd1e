package table

import (
	"fmt"
	"io"
	"reflect"

	"github.com/cviebrock/swat/pkg/markup"
)

// CellRenderer renders one cell fragment for the current row. Renderers are
// stateful: a column applies the row's field mappings onto the renderer's
// properties, then asks it to render.
type CellRenderer interface {
	Render(w io.Writer) error
	Sensitive() bool
	SetSensitive(bool)
}

// RendererBase carries the state shared by cell renderers, including the
// class lists a column mirrors into its own class composition.
type RendererBase struct {
	sensitive bool

	inheritanceClasses []string
	baseClasses        []string
	dataClasses        []string
	userClasses        []string
}

// NewRendererBase constructs a sensitive renderer base.
func NewRendererBase() RendererBase {
	return RendererBase{sensitive: true}
}

// Sensitive returns the renderer's effective sensitivity.
func (r *RendererBase) Sensitive() bool {
	return r.sensitive
}

// SetSensitive sets the renderer's effective sensitivity.
func (r *RendererBase) SetSensitive(sensitive bool) {
	r.sensitive = sensitive
}

// InheritanceClasses returns classes derived from the renderer's type
// lineage.
func (r *RendererBase) InheritanceClasses() []string {
	return append([]string(nil), r.inheritanceClasses...)
}

// BaseClasses returns the renderer's own structural classes.
func (r *RendererBase) BaseClasses() []string {
	return append([]string(nil), r.baseClasses...)
}

// DataClasses returns classes that only apply when data mappings were
// applied to the renderer.
func (r *RendererBase) DataClasses() []string {
	return append([]string(nil), r.dataClasses...)
}

// UserClasses returns classes added by application code.
func (r *RendererBase) UserClasses() []string {
	return append([]string(nil), r.userClasses...)
}

// AddUserClass appends an application class.
func (r *RendererBase) AddUserClass(classes ...string) {
	r.userClasses = append(r.userClasses, classes...)
}

func (r *RendererBase) setClassLists(inheritance, base, data []string) {
	r.inheritanceClasses = inheritance
	r.baseClasses = base
	r.dataClasses = data
}

// TextCellRenderer renders its Text property as escaped content. Insensitive
// text renders wrapped in a dimmed span.
type TextCellRenderer struct {
	RendererBase

	Text string
}

// NewTextCellRenderer constructs a text renderer.
func NewTextCellRenderer() *TextCellRenderer {
	t := &TextCellRenderer{RendererBase: NewRendererBase()}
	t.setClassLists(
		[]string{"swat-cell-renderer"},
		[]string{"swat-text-cell-renderer"},
		[]string{"swat-text-cell-renderer-data"},
	)
	return t
}

// Render writes the escaped text.
func (t *TextCellRenderer) Render(w io.Writer) error {
	if !t.Sensitive() {
		span := markup.NewTag("span")
		span.Set("class", "swat-insensitive")
		return span.Display(w, t.Text)
	}
	_, err := io.WriteString(w, markup.Escape(t.Text))
	return err
}

// Mapping binds a row data field to a renderer property.
type Mapping struct {
	Property string
	Field    string
}

// applyMapping assigns a row field value onto a renderer property by name
// using reflection. The renderer must be a pointer to a struct with an
// exported field of the mapped name.
func applyMapping(renderer CellRenderer, property string, value any) error {
	rv := reflect.ValueOf(renderer)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cell renderer %T does not expose settable properties", renderer)
	}
	field := rv.Elem().FieldByName(property)
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf("cell renderer %T has no settable property %q", renderer, property)
	}
	vv := reflect.ValueOf(value)
	switch {
	case !vv.IsValid():
		field.SetZero()
	case vv.Type().AssignableTo(field.Type()):
		field.Set(vv)
	case vv.Type().ConvertibleTo(field.Type()):
		field.Set(vv.Convert(field.Type()))
	default:
		return fmt.Errorf("cannot assign %T to property %q of %T", value, property, renderer)
	}
	return nil
}

// rowField extracts a named field from a row data object, accepting maps
// keyed by string as well as structs and struct pointers.
func rowField(row any, field string) (any, error) {
	if mapped, ok := row.(map[string]any); ok {
		value, exists := mapped[field]
		if !exists {
			return nil, fmt.Errorf("row has no field %q", field)
		}
		return value, nil
	}
	rv := reflect.ValueOf(row)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("row type %T does not expose fields", row)
	}
	fv := rv.FieldByName(field)
	if !fv.IsValid() {
		return nil, fmt.Errorf("row type %T has no field %q", row, field)
	}
	return fv.Interface(), nil
}
