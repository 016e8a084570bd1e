// Package table implements tabular rendering: an ordered row store of opaque
// data objects, columns that own cell renderers with field-to-property
// mappings, optional per-column input cells, and the table view widget that
// ties them together. Column visibility and view sensitivity gate what each
// cell renders.
package table
