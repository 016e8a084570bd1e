package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cviebrock/swat/pkg/ui"
)

func childIDs(c *ui.Container) []string {
	var ids []string
	for _, child := range c.Children() {
		ids = append(ids, child.ID())
	}
	return ids
}

func namedChild(id string) ui.Widget {
	child := newBaseWidget("child")
	child.SetID(id)
	return child
}

func TestContainerSequenceOperations(t *testing.T) {
	container := ui.NewContainer()
	first := namedChild("first")
	third := namedChild("third")

	for _, child := range []ui.Widget{first, third} {
		if err := container.Add(child); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	second := namedChild("second")
	if err := container.InsertBefore(second, third); err != nil {
		t.Fatalf("InsertBefore: %v", err)
	}
	if diff := cmp.Diff([]string{"first", "second", "third"}, childIDs(container)); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}

	replacement := namedChild("second-b")
	if err := container.Replace(second, replacement); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if second.Parent() != nil {
		t.Fatal("replaced child must have its parent link severed")
	}
	if replacement.Parent() != container {
		t.Fatal("replacement must be parented to the container")
	}

	if err := container.Remove(first); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if first.Parent() != nil {
		t.Fatal("removed child must have its parent link severed")
	}
	if diff := cmp.Diff([]string{"second-b", "third"}, childIDs(container)); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestContainerRejectsParentedChildren(t *testing.T) {
	owner := ui.NewContainer()
	child := namedChild("owned")
	if err := owner.Add(child); err != nil {
		t.Fatalf("Add: %v", err)
	}

	other := ui.NewContainer()
	if err := other.Add(child); !errors.Is(err, ui.ErrAlreadyParented) {
		t.Fatalf("Add error = %v, want ErrAlreadyParented", err)
	}
	if err := other.InsertBefore(child, nil); !errors.Is(err, ui.ErrAlreadyParented) {
		t.Fatalf("InsertBefore error = %v, want ErrAlreadyParented", err)
	}
}

func TestContainerMissingReferences(t *testing.T) {
	container := ui.NewContainer()
	stranger := namedChild("stranger")

	if err := container.Remove(stranger); !errors.Is(err, ui.ErrNotFound) {
		t.Fatalf("Remove error = %v, want ErrNotFound", err)
	}
	if err := container.InsertBefore(namedChild("new"), stranger); !errors.Is(err, ui.ErrNotFound) {
		t.Fatalf("InsertBefore error = %v, want ErrNotFound", err)
	}
	if err := container.Replace(stranger, namedChild("new")); !errors.Is(err, ui.ErrNotFound) {
		t.Fatalf("Replace error = %v, want ErrNotFound", err)
	}
}

func TestChildByIDSearchesSubtree(t *testing.T) {
	outer := ui.NewContainer()
	inner := ui.NewContainer()
	leaf := namedChild("leaf")

	if err := outer.Add(inner); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := inner.Add(leaf); err != nil {
		t.Fatalf("Add: %v", err)
	}

	found, ok := outer.ChildByID("leaf")
	if !ok || found != leaf {
		t.Fatalf("ChildByID = %v, %v; want the leaf", found, ok)
	}
	if _, ok := outer.ChildByID("missing"); ok {
		t.Fatal("missing id must not be found")
	}
}

func TestDescendantsFiltersDepthFirst(t *testing.T) {
	outer := ui.NewContainer()
	outer.SetID("outer")
	inner := ui.NewContainer()
	inner.SetID("inner")
	leaf := namedChild("leaf")

	if err := outer.Add(inner); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := inner.Add(leaf); err != nil {
		t.Fatalf("Add: %v", err)
	}

	containers := ui.Descendants[*ui.Container](outer)
	if len(containers) != 1 || containers[0].ID() != "inner" {
		t.Fatalf("container descendants = %v, want [inner]", containers)
	}
	widgets := ui.Descendants[ui.Widget](outer)
	if len(widgets) != 2 {
		t.Fatalf("widget descendants = %d, want 2", len(widgets))
	}
}

func TestContainerLifecycleRecursesInOrder(t *testing.T) {
	container := ui.NewContainer()
	first := namedChild("a")
	second := namedChild("b")
	for _, child := range []ui.Widget{first, second} {
		if err := container.Add(child); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := container.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !first.Initialized() || !second.Initialized() {
		t.Fatal("Init must recurse over children")
	}

	if err := container.Process(); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !first.Processed() || !second.Processed() {
		t.Fatal("Process must recurse over children")
	}

	var buf bytes.Buffer
	if err := container.Display(&buf); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !first.Displayed() || !second.Displayed() {
		t.Fatal("Display must recurse over children")
	}
}

func TestHiddenContainerDisplaysNothingButCompletes(t *testing.T) {
	container := ui.NewContainer()
	form := ui.NewForm("inner-form")
	if err := container.Add(form); err != nil {
		t.Fatalf("Add: %v", err)
	}
	container.SetVisible(false)

	var buf bytes.Buffer
	if err := container.Display(&buf); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("hidden container rendered output: %q", buf.String())
	}
	if !container.Displayed() {
		t.Fatal("display must still be recorded")
	}
}

func TestContainerCopyIsDeep(t *testing.T) {
	container := ui.NewContainer()
	container.SetID("panel")
	child := namedChild("item")
	if err := container.Add(child); err != nil {
		t.Fatalf("Add: %v", err)
	}

	clone, ok := container.Copy("_2").(*ui.Container)
	if !ok {
		t.Fatal("container copy must be a container")
	}
	if clone.ID() != "panel_2" {
		t.Fatalf("clone id = %q, want panel_2", clone.ID())
	}

	cloneChildren := clone.Children()
	if len(cloneChildren) != 1 {
		t.Fatalf("clone child count = %d, want 1", len(cloneChildren))
	}
	if cloneChildren[0] == child {
		t.Fatal("clone must hold copied children, not the originals")
	}
	if cloneChildren[0].ID() != "item_2" {
		t.Fatalf("clone child id = %q, want item_2", cloneChildren[0].ID())
	}
	if child.Parent() != container {
		t.Fatal("original child must stay parented to the original")
	}
}
