package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/cviebrock/swat/pkg/markup"
	"github.com/cviebrock/swat/pkg/ui"
)

// Column is one table-view column: an ordered sequence of cell renderers,
// at most one input cell, and a title for the header row.
type Column struct {
	ui.Base

	// Title is the header label.
	Title string

	id              string
	renderers       []CellRenderer
	mappings        map[CellRenderer][]Mapping
	inputCell       *InputCell
	view            *View
	mappingsApplied bool
}

// NewColumn constructs a column with the given header title.
func NewColumn(title string) *Column {
	return &Column{
		Base:  ui.NewBase(),
		Title: title,
	}
}

// ID returns the column id, assigned during Init when not set explicitly.
func (c *Column) ID() string {
	return c.id
}

// SetID assigns an explicit column id.
func (c *Column) SetID(id string) {
	c.id = id
}

// View returns the owning table view, nil until the column is appended.
func (c *Column) View() *View {
	return c.view
}

// Add attaches a child by capability: cell renderers append to the renderer
// sequence, an input cell fills the single input slot, and anything else is
// an invalid child. A second input cell is a duplicate violation.
func (c *Column) Add(child any) error {
	switch typed := child.(type) {
	case CellRenderer:
		c.renderers = append(c.renderers, typed)
		return nil
	case *InputCell:
		if c.inputCell != nil {
			return fmt.Errorf("column %q: input cell: %w", c.id, ui.ErrDuplicateKey)
		}
		c.inputCell = typed
		return nil
	default:
		return &ui.InvalidChildError{Parent: "table view column", Child: child}
	}
}

// Renderers returns the renderer sequence in order.
func (c *Column) Renderers() []CellRenderer {
	return append([]CellRenderer(nil), c.renderers...)
}

// InputCell returns the input cell, nil when none is set.
func (c *Column) InputCell() *InputCell {
	return c.inputCell
}

// AddMapping binds a row data field to a property of one of this column's
// renderers. Mappings apply in registration order on every displayed row.
func (c *Column) AddMapping(renderer CellRenderer, property, field string) {
	if c.mappings == nil {
		c.mappings = make(map[CellRenderer][]Mapping)
	}
	c.mappings[renderer] = append(c.mappings[renderer], Mapping{Property: property, Field: field})
}

// Init assigns an id when none is set and verifies the column has at least
// one renderer. A renderer-less column is a configuration violation.
func (c *Column) Init() error {
	if len(c.renderers) == 0 {
		return fmt.Errorf("column %q: no cell renderer: %w", c.Title, ui.ErrMissingElement)
	}
	if c.id == "" {
		c.id = ui.UniqueID("column")
	}
	return nil
}

// DisplayHeader renders the header cell.
func (c *Column) DisplayHeader(w io.Writer) error {
	th := markup.NewTag("th")
	th.Set("class", strings.Join(c.CSSClassNames(), " "))
	return th.Display(w, c.Title)
}

// DisplayCell renders one body cell for a row: a no-op when the column is
// not visible, otherwise the row's mappings are applied to each renderer,
// each renderer renders with its sensitivity ANDed with the owning view's,
// and the renderer outputs are space-joined inside one table cell.
func (c *Column) DisplayCell(w io.Writer, row any) error {
	if !c.IsVisible() {
		return nil
	}

	if err := c.applyMappings(row); err != nil {
		return err
	}
	dimmed := c.view != nil && !c.view.IsSensitive()

	td := markup.NewTag("td")
	td.Set("class", strings.Join(c.CSSClassNames(), " "))
	if err := td.Open(w); err != nil {
		return err
	}
	for i, renderer := range c.renderers {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		// Renderers are shared across view copies, so the view's
		// sensitivity applies only for the duration of this render.
		prior := renderer.Sensitive()
		if dimmed {
			renderer.SetSensitive(false)
		}
		err := renderer.Render(w)
		renderer.SetSensitive(prior)
		if err != nil {
			return err
		}
	}
	return td.Close(w)
}

func (c *Column) applyMappings(row any) error {
	for _, renderer := range c.renderers {
		for _, mapping := range c.mappings[renderer] {
			value, err := rowField(row, mapping.Field)
			if err != nil {
				return fmt.Errorf("column %q: %w", c.id, err)
			}
			if err := applyMapping(renderer, mapping.Property, value); err != nil {
				return fmt.Errorf("column %q: %w", c.id, err)
			}
			c.mappingsApplied = true
		}
	}
	return nil
}

// CSSClassNames composes the column class list in fixed precedence: the
// id-derived instance class, the column base class, user classes, then the
// classes mirrored from the first renderer (inheritance classes, base
// classes, data classes only when mappings were applied, user classes).
// The order is significant for stylesheet specificity.
func (c *Column) CSSClassNames() []string {
	var classes []string
	if c.id != "" {
		classes = append(classes, c.id)
	}
	classes = append(classes, "swat-table-view-column")
	classes = append(classes, c.Classes()...)

	if len(c.renderers) > 0 {
		if provider, ok := c.renderers[0].(rendererClassProvider); ok {
			classes = append(classes, provider.InheritanceClasses()...)
			classes = append(classes, provider.BaseClasses()...)
			if c.mappingsApplied {
				classes = append(classes, provider.DataClasses()...)
			}
			classes = append(classes, provider.UserClasses()...)
		}
	}
	return dedupeClasses(classes)
}

type rendererClassProvider interface {
	InheritanceClasses() []string
	BaseClasses() []string
	DataClasses() []string
	UserClasses() []string
}

func dedupeClasses(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		if class == "" {
			continue
		}
		if _, ok := seen[class]; ok {
			continue
		}
		seen[class] = struct{}{}
		out = append(out, class)
	}
	return out
}

// copyColumn clones the column structure for table-view copies. Renderers
// are shared prototypes in the original design, so the clone keeps the same
// renderer instances but its own sequence and mapping tables.
func (c *Column) copyColumn() *Column {
	clone := NewColumn(c.Title)
	clone.id = c.id
	clone.renderers = append([]CellRenderer(nil), c.renderers...)
	clone.inputCell = c.inputCell
	if c.mappings != nil {
		clone.mappings = make(map[CellRenderer][]Mapping, len(c.mappings))
		for renderer, mappings := range c.mappings {
			clone.mappings[renderer] = append([]Mapping(nil), mappings...)
		}
	}
	return clone
}
