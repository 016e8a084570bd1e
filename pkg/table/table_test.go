package table_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/cviebrock/swat/pkg/controls"
	"github.com/cviebrock/swat/pkg/table"
	"github.com/cviebrock/swat/pkg/ui"
)

type person struct {
	Name string
	Role string
}

func parseHTML(t *testing.T, fragment string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("NewDocumentFromReader: %v", err)
	}
	return doc
}

func textColumn(t *testing.T, title, field string) *table.Column {
	t.Helper()
	column := table.NewColumn(title)
	renderer := table.NewTextCellRenderer()
	if err := column.Add(renderer); err != nil {
		t.Fatalf("Add renderer: %v", err)
	}
	column.AddMapping(renderer, "Text", field)
	return column
}

func TestStoreKeepsRowOrder(t *testing.T) {
	store := table.NewStore()
	store.Add("b")
	store.Add("c")
	store.AddToStart("a")

	if store.Count() != 3 {
		t.Fatalf("count = %d, want 3", store.Count())
	}
	if diff := cmp.Diff([]any{"a", "b", "c"}, store.Rows()); diff != "" {
		t.Fatalf("row order mismatch (-want +got):\n%s", diff)
	}
	row, ok := store.Row(1)
	if !ok || row != "b" {
		t.Fatalf("Row(1) = %v, %v; want b", row, ok)
	}
	if _, ok := store.Row(9); ok {
		t.Fatal("out-of-range row must not be found")
	}
}

func TestColumnRequiresRenderer(t *testing.T) {
	view := table.NewView("people")
	view.SetStore(table.NewStore())
	if err := view.AppendColumn(table.NewColumn("Empty")); err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}

	if err := view.Init(); !errors.Is(err, ui.ErrMissingElement) {
		t.Fatalf("Init error = %v, want ErrMissingElement", err)
	}
}

func TestColumnRejectsInvalidChildren(t *testing.T) {
	column := table.NewColumn("Name")

	err := column.Add(42)
	var invalid *ui.InvalidChildError
	if !errors.As(err, &invalid) {
		t.Fatalf("Add error = %v, want InvalidChildError", err)
	}

	if err := column.Add(table.NewInputCell(controls.NewEntry("add"))); err != nil {
		t.Fatalf("Add input cell: %v", err)
	}
	err = column.Add(table.NewInputCell(controls.NewEntry("add2")))
	if !errors.Is(err, ui.ErrDuplicateKey) {
		t.Fatalf("second input cell error = %v, want ErrDuplicateKey", err)
	}
}

func TestColumnBelongsToOneView(t *testing.T) {
	column := textColumn(t, "Name", "Name")
	first := table.NewView("first")
	if err := first.AppendColumn(column); err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}
	second := table.NewView("second")
	if err := second.AppendColumn(column); !errors.Is(err, ui.ErrAlreadyParented) {
		t.Fatalf("AppendColumn error = %v, want ErrAlreadyParented", err)
	}
}

func TestViewDisplayMapsRowsToCells(t *testing.T) {
	view := table.NewView("people")
	store := table.NewStore()
	store.Add(person{Name: "Ada", Role: "engineer"})
	store.Add(person{Name: "Sam", Role: "writer"})
	view.SetStore(store)

	for _, column := range []*table.Column{
		textColumn(t, "Name", "Name"),
		textColumn(t, "Role", "Role"),
	} {
		if err := view.AppendColumn(column); err != nil {
			t.Fatalf("AppendColumn: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := view.Display(&buf); err != nil {
		t.Fatalf("Display: %v", err)
	}
	doc := parseHTML(t, buf.String())

	headers := doc.Find("table#people thead th")
	if headers.Length() != 2 {
		t.Fatalf("header count = %d, want 2", headers.Length())
	}
	if text := headers.First().Text(); text != "Name" {
		t.Fatalf("first header = %q, want Name", text)
	}

	rows := doc.Find("tbody tr")
	if rows.Length() != 2 {
		t.Fatalf("body rows = %d, want 2", rows.Length())
	}
	var cells []string
	rows.First().Find("td").Each(func(_ int, sel *goquery.Selection) {
		cells = append(cells, sel.Text())
	})
	if diff := cmp.Diff([]string{"Ada", "engineer"}, cells); diff != "" {
		t.Fatalf("first row cells mismatch (-want +got):\n%s", diff)
	}
}

func TestViewDisplayMapsMapRows(t *testing.T) {
	view := table.NewView("people")
	store := table.NewStore()
	store.Add(map[string]any{"Name": "Ada"})
	view.SetStore(store)
	if err := view.AppendColumn(textColumn(t, "Name", "Name")); err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}

	var buf bytes.Buffer
	if err := view.Display(&buf); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !strings.Contains(buf.String(), "Ada") {
		t.Fatalf("map row value missing:\n%s", buf.String())
	}
}

func TestViewWithoutStoreFailsDisplay(t *testing.T) {
	view := table.NewView("people")
	if err := view.AppendColumn(textColumn(t, "Name", "Name")); err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}
	if err := view.Display(&bytes.Buffer{}); !errors.Is(err, ui.ErrMissingElement) {
		t.Fatalf("Display error = %v, want ErrMissingElement", err)
	}
}

func TestHiddenColumnRendersNothing(t *testing.T) {
	view := table.NewView("people")
	store := table.NewStore()
	store.Add(person{Name: "Ada", Role: "engineer"})
	view.SetStore(store)

	name := textColumn(t, "Name", "Name")
	role := textColumn(t, "Role", "Role")
	role.SetVisible(false)
	for _, column := range []*table.Column{name, role} {
		if err := view.AppendColumn(column); err != nil {
			t.Fatalf("AppendColumn: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := view.Display(&buf); err != nil {
		t.Fatalf("Display: %v", err)
	}
	doc := parseHTML(t, buf.String())
	if n := doc.Find("thead th").Length(); n != 1 {
		t.Fatalf("header count = %d, want only the visible column", n)
	}
	if n := doc.Find("tbody tr").First().Find("td").Length(); n != 1 {
		t.Fatalf("cell count = %d, want only the visible column", n)
	}
}

func TestMultipleRenderersSpaceJoinInOneCell(t *testing.T) {
	view := table.NewView("people")
	store := table.NewStore()
	store.Add(person{Name: "Ada", Role: "engineer"})
	view.SetStore(store)

	column := table.NewColumn("Who")
	nameRenderer := table.NewTextCellRenderer()
	roleRenderer := table.NewTextCellRenderer()
	for _, renderer := range []table.CellRenderer{nameRenderer, roleRenderer} {
		if err := column.Add(renderer); err != nil {
			t.Fatalf("Add renderer: %v", err)
		}
	}
	column.AddMapping(nameRenderer, "Text", "Name")
	column.AddMapping(roleRenderer, "Text", "Role")
	if err := view.AppendColumn(column); err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}

	var buf bytes.Buffer
	if err := view.Display(&buf); err != nil {
		t.Fatalf("Display: %v", err)
	}
	doc := parseHTML(t, buf.String())
	cell := doc.Find("tbody td")
	if cell.Length() != 1 {
		t.Fatalf("cell count = %d, want one shared cell", cell.Length())
	}
	if text := cell.Text(); text != "Ada engineer" {
		t.Fatalf("cell text = %q, want space-joined renderer output", text)
	}
}

func TestInsensitiveViewDimsRenderers(t *testing.T) {
	view := table.NewView("people")
	view.SetSensitive(false)
	store := table.NewStore()
	store.Add(person{Name: "Ada"})
	view.SetStore(store)
	if err := view.AppendColumn(textColumn(t, "Name", "Name")); err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}

	var buf bytes.Buffer
	if err := view.Display(&buf); err != nil {
		t.Fatalf("Display: %v", err)
	}
	doc := parseHTML(t, buf.String())
	if n := doc.Find("td span.swat-insensitive").Length(); n != 1 {
		t.Fatalf("dimmed cells = %d, want 1", n)
	}
}

func TestInsensitiveViewLeavesRenderersSensitive(t *testing.T) {
	view := table.NewView("people")
	view.SetSensitive(false)
	store := table.NewStore()
	store.Add(person{Name: "Ada"})
	view.SetStore(store)

	column := textColumn(t, "Name", "Name")
	if err := view.AppendColumn(column); err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}

	var buf bytes.Buffer
	if err := view.Display(&buf); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !column.Renderers()[0].Sensitive() {
		t.Fatal("an insensitive view must not latch insensitivity onto the renderer")
	}

	clone, ok := view.Copy("_2").(*table.View)
	if !ok {
		t.Fatal("view copy must be a view")
	}
	clone.SetSensitive(true)
	buf.Reset()
	if err := clone.Display(&buf); err != nil {
		t.Fatalf("Display clone: %v", err)
	}
	doc := parseHTML(t, buf.String())
	if n := doc.Find("td span.swat-insensitive").Length(); n != 0 {
		t.Fatalf("dimmed cells in the sensitive copy = %d, want 0", n)
	}
	if doc.Find("td").First().Text() != "Ada" {
		t.Fatal("the sensitive copy must render plain cell text")
	}
}

func TestInputCellRendersCloneWithRowSuffix(t *testing.T) {
	view := table.NewView("people")
	store := table.NewStore()
	store.Add(person{Name: "Ada"})
	store.Add(person{Name: "Sam"})
	view.SetStore(store)

	column := textColumn(t, "Name", "Name")
	if err := column.Add(table.NewInputCell(controls.NewEntry("new_name"))); err != nil {
		t.Fatalf("Add input cell: %v", err)
	}
	if err := view.AppendColumn(column); err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}

	var buf bytes.Buffer
	if err := view.Display(&buf); err != nil {
		t.Fatalf("Display: %v", err)
	}
	doc := parseHTML(t, buf.String())
	if n := doc.Find(`tr.swat-table-view-input-row input#new_name_row2`).Length(); n != 1 {
		t.Fatalf("input row clones = %d, want an entry suffixed with the row index", n)
	}
}

func TestViewCopySharesStoreButNotColumns(t *testing.T) {
	view := table.NewView("people")
	store := table.NewStore()
	view.SetStore(store)
	if err := view.AppendColumn(textColumn(t, "Name", "Name")); err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}

	clone, ok := view.Copy("_2").(*table.View)
	if !ok {
		t.Fatal("view copy must be a view")
	}
	if clone.Store() != store {
		t.Fatal("copy must share the row store")
	}
	if len(clone.Columns()) != 1 {
		t.Fatalf("clone column count = %d, want 1", len(clone.Columns()))
	}
	if clone.Columns()[0] == view.Columns()[0] {
		t.Fatal("copy must hold its own column structure")
	}
	if clone.Columns()[0].View() != clone {
		t.Fatal("clone columns must point back at the clone")
	}
}
