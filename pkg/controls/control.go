package controls

import (
	"fmt"
	"strings"

	"github.com/cviebrock/swat/pkg/ui"
)

// parentForm resolves the nearest ancestor form of a control. Controls can
// only consume submitted values inside a form tree.
func parentForm(w ui.Widget) (*ui.Form, error) {
	form, ok := ui.FirstAncestor[*ui.Form](w)
	if !ok {
		return nil, fmt.Errorf("widget %q: no ancestor form: %w", w.ID(), ui.ErrMissingElement)
	}
	return form, nil
}

// classAttribute composes the rendered class attribute from base classes and
// the widget's user classes, in that order.
func classAttribute(base []string, w ui.Widget) string {
	classes := append([]string(nil), base...)
	if styled, ok := w.(interface{ Classes() []string }); ok {
		classes = append(classes, styled.Classes()...)
	}
	if w.HasMessage() {
		classes = append(classes, "swat-error")
	}
	return strings.Join(classes, " ")
}
