// Package ui implements the widget tree at the heart of the toolkit: nodes
// with parent back-references and AND-chained visibility, widgets with the
// init/process/display lifecycle and lazily built composite sub-widgets,
// containers that propagate lifecycle calls over ordered children, and the
// deduplicated head-entry sets that collect page-level resources across the
// tree. Application code assembles a tree per request, feeds it the submitted
// form values, and displays it to the response stream.
package ui
