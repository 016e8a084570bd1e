package table

import (
	"fmt"
	"io"

	"github.com/cviebrock/swat/pkg/ui"
)

// InputCell embeds an editable widget in a table column. The configured
// widget is a prototype: each rendered row receives an independent copy with
// a row-specific id suffix so ids never collide.
type InputCell struct {
	prototype ui.Widget
}

// NewInputCell constructs an input cell around a prototype widget. The
// prototype must not belong to another tree.
func NewInputCell(prototype ui.Widget) *InputCell {
	return &InputCell{prototype: prototype}
}

// Prototype returns the configured widget.
func (c *InputCell) Prototype() ui.Widget {
	return c.prototype
}

// RenderRow displays an independent copy of the prototype for the given row
// index.
func (c *InputCell) RenderRow(w io.Writer, rowIndex int) error {
	if c.prototype == nil {
		return fmt.Errorf("input cell: %w", ui.ErrMissingElement)
	}
	clone := c.prototype.Copy(fmt.Sprintf("_row%d", rowIndex))
	return clone.Display(w)
}
