// Package controls provides the concrete form widgets: text entries,
// checkboxes, buttons, hidden inputs, static content blocks, the flydown
// select family including tree, optgroup-grouped, and IANA time-zone
// variants, and a date entry assembled from composite flydowns. Every
// control embeds
// ui.WidgetBase and consumes its submitted value from the nearest ancestor
// form during Process.
package controls
