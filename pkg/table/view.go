package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/cviebrock/swat/pkg/markup"
	"github.com/cviebrock/swat/pkg/ui"
)

// View is the table widget: an ordered set of columns over a row store.
type View struct {
	ui.WidgetBase

	store   *Store
	columns []*Column
}

// NewView constructs a table view.
func NewView(id string) *View {
	v := &View{WidgetBase: ui.NewWidgetBase("table-view")}
	v.Bind(v)
	v.SetID(id)
	v.RequireID()
	v.SetStylesheet("styles/swat-table-view.css")
	return v
}

// SetStore attaches the row store rendered by Display.
func (v *View) SetStore(store *Store) {
	v.store = store
}

// Store returns the attached row store.
func (v *View) Store() *Store {
	return v.store
}

// AppendColumn adds a column to the end of the column sequence. A column
// belongs to exactly one view.
func (v *View) AppendColumn(column *Column) error {
	if column.Parent() != nil {
		return fmt.Errorf("table view %q: append column: %w", v.ID(), ui.ErrAlreadyParented)
	}
	column.SetParent(v)
	column.view = v
	v.columns = append(v.columns, column)
	return nil
}

// Columns returns the column sequence in order.
func (v *View) Columns() []*Column {
	return append([]*Column(nil), v.columns...)
}

// VisibleColumns returns the columns whose effective visibility is true.
func (v *View) VisibleColumns() []*Column {
	out := make([]*Column, 0, len(v.columns))
	for _, column := range v.columns {
		if column.IsVisible() {
			out = append(out, column)
		}
	}
	return out
}

// Init initializes the base widget and every column.
func (v *View) Init() error {
	if err := v.WidgetBase.Init(); err != nil {
		return err
	}
	for _, column := range v.columns {
		if err := column.Init(); err != nil {
			return fmt.Errorf("table view %q: %w", v.ID(), err)
		}
	}
	return nil
}

// Display renders the table: a header row of column titles and one body row
// per store row. Columns with an input cell contribute an extra editing row
// after the data rows.
func (v *View) Display(w io.Writer) error {
	if err := v.EnsureInitialized(); err != nil {
		return err
	}
	if err := v.WidgetBase.Display(w); err != nil {
		return err
	}
	if !v.Visible() {
		return nil
	}
	if v.store == nil {
		return fmt.Errorf("table view %q: no store: %w", v.ID(), ui.ErrMissingElement)
	}

	table := markup.NewTag("table")
	table.Set("id", v.ID())
	table.Set("class", strings.Join(append([]string{"swat-table-view"}, v.Classes()...), " "))
	if err := table.Open(w); err != nil {
		return err
	}
	if err := v.displayHeader(w); err != nil {
		return err
	}
	if err := v.displayBody(w); err != nil {
		return err
	}
	return table.Close(w)
}

func (v *View) displayHeader(w io.Writer) error {
	thead := markup.NewTag("thead")
	if err := thead.Open(w); err != nil {
		return err
	}
	tr := markup.NewTag("tr")
	if err := tr.Open(w); err != nil {
		return err
	}
	for _, column := range v.VisibleColumns() {
		if err := column.DisplayHeader(w); err != nil {
			return err
		}
	}
	if err := tr.Close(w); err != nil {
		return err
	}
	return thead.Close(w)
}

func (v *View) displayBody(w io.Writer) error {
	tbody := markup.NewTag("tbody")
	if err := tbody.Open(w); err != nil {
		return err
	}
	for _, row := range v.store.Rows() {
		tr := markup.NewTag("tr")
		if err := tr.Open(w); err != nil {
			return err
		}
		for _, column := range v.columns {
			if err := column.DisplayCell(w, row); err != nil {
				return err
			}
		}
		if err := tr.Close(w); err != nil {
			return err
		}
	}
	if err := v.displayInputRow(w); err != nil {
		return err
	}
	return tbody.Close(w)
}

// displayInputRow renders one editing row when any column carries an input
// cell. Columns without an input cell contribute an empty cell.
func (v *View) displayInputRow(w io.Writer) error {
	hasInput := false
	for _, column := range v.columns {
		if column.InputCell() != nil {
			hasInput = true
			break
		}
	}
	if !hasInput {
		return nil
	}

	tr := markup.NewTag("tr")
	tr.Set("class", "swat-table-view-input-row")
	if err := tr.Open(w); err != nil {
		return err
	}
	for _, column := range v.columns {
		if !column.IsVisible() {
			continue
		}
		td := markup.NewTag("td")
		if err := td.Open(w); err != nil {
			return err
		}
		if cell := column.InputCell(); cell != nil {
			if err := cell.RenderRow(w, v.store.Count()); err != nil {
				return err
			}
		}
		if err := td.Close(w); err != nil {
			return err
		}
	}
	return tr.Close(w)
}

// Copy clones the view and its column structure. The store is shared; row
// data is opaque to the toolkit.
func (v *View) Copy(idSuffix string) ui.Widget {
	clone := &View{
		WidgetBase: v.CopyBase(idSuffix),
		store:      v.store,
	}
	clone.Bind(clone)
	for _, column := range v.columns {
		columnClone := column.copyColumn()
		columnClone.SetParent(clone)
		columnClone.view = clone
		clone.columns = append(clone.columns, columnClone)
	}
	return clone
}
