package controls

import (
	"io"
	"strings"

	"github.com/cviebrock/swat/pkg/markup"
	"github.com/cviebrock/swat/pkg/ui"
)

// TreeNode is one node of a hierarchical option tree. The root node itself
// is never rendered; its children form the first level of options.
type TreeNode struct {
	Value    string
	Title    string
	children []*TreeNode
}

// NewTreeNode constructs a tree node.
func NewTreeNode(value, title string) *TreeNode {
	return &TreeNode{Value: value, Title: title}
}

// AddChild appends a child node and returns it for chained assembly.
func (n *TreeNode) AddChild(child *TreeNode) *TreeNode {
	n.children = append(n.children, child)
	return child
}

// Children returns the child nodes in order.
func (n *TreeNode) Children() []*TreeNode {
	return append([]*TreeNode(nil), n.children...)
}

// copyTree deep-copies a node and its descendants.
func (n *TreeNode) copyTree() *TreeNode {
	clone := NewTreeNode(n.Value, n.Title)
	for _, child := range n.children {
		clone.AddChild(child.copyTree())
	}
	return clone
}

// pathValue joins the values from the tree root to a node so nested
// selections restore unambiguously.
func pathValue(prefix, value string) string {
	if prefix == "" {
		return value
	}
	return prefix + "/" + value
}

// TreeFlydown renders an option tree as a flat select list. Nested options
// carry slash-joined path values and indented titles.
type TreeFlydown struct {
	Flydown

	tree *TreeNode
}

// NewTreeFlydown constructs a tree flydown with an empty root.
func NewTreeFlydown(id string) *TreeFlydown {
	t := &TreeFlydown{Flydown: Flydown{WidgetBase: ui.NewWidgetBase("tree-flydown"), ShowBlank: true}}
	t.Bind(t)
	t.SetID(id)
	t.RequireID()
	t.tree = NewTreeNode("", "")
	return t
}

// SetTree replaces the option tree.
func (t *TreeFlydown) SetTree(root *TreeNode) {
	t.tree = root
}

// Tree returns the option tree root.
func (t *TreeFlydown) Tree() *TreeNode {
	return t.tree
}

// Init flattens the tree into the option sequence. Re-running Init after
// changing the tree rebuilds the options.
func (t *TreeFlydown) Init() error {
	if err := t.Flydown.Init(); err != nil {
		return err
	}
	t.options = nil
	if t.tree != nil {
		t.flatten(t.tree, "", 0)
	}
	return nil
}

func (t *TreeFlydown) flatten(node *TreeNode, prefix string, depth int) {
	for _, child := range node.children {
		value := pathValue(prefix, child.Value)
		title := strings.Repeat("  ", depth) + child.Title
		t.AddOption(NewOption(value, title))
		t.flatten(child, value, depth+1)
	}
}

// Copy returns an independent clone, including a deep copy of the tree.
func (t *TreeFlydown) Copy(idSuffix string) ui.Widget {
	clone := &TreeFlydown{
		Flydown: Flydown{
			WidgetBase: t.CopyBase(idSuffix),
			Value:      t.Value,
			ShowBlank:  t.ShowBlank,
			BlankTitle: t.BlankTitle,
			options:    append([]Option(nil), t.options...),
		},
	}
	clone.Bind(clone)
	if t.tree != nil {
		clone.tree = t.tree.copyTree()
	}
	return clone
}

// GroupedFlydown renders a two-level option tree as a select list whose
// first-level branch nodes become optgroup labels. Options nested deeper
// than the second level are flattened into their group with indentation.
type GroupedFlydown struct {
	TreeFlydown
}

// NewGroupedFlydown constructs a grouped flydown with an empty root.
func NewGroupedFlydown(id string) *GroupedFlydown {
	g := &GroupedFlydown{
		TreeFlydown: TreeFlydown{Flydown: Flydown{WidgetBase: ui.NewWidgetBase("grouped-flydown"), ShowBlank: true}},
	}
	g.Bind(g)
	g.SetID(id)
	g.RequireID()
	g.tree = NewTreeNode("", "")
	return g
}

// Init validates the tree without flattening; grouping happens at display
// time.
func (g *GroupedFlydown) Init() error {
	if err := g.Flydown.Init(); err != nil {
		return err
	}
	g.options = nil
	if g.tree != nil {
		g.collectValues(g.tree, "")
	}
	return nil
}

// collectValues registers every selectable path so Process can validate the
// submission against the tree.
func (g *GroupedFlydown) collectValues(node *TreeNode, prefix string) {
	for _, child := range node.children {
		value := pathValue(prefix, child.Value)
		if len(child.children) == 0 || prefix != "" {
			g.AddOption(NewOption(value, child.Title))
		}
		g.collectValues(child, value)
	}
}

// Display renders the select element with optgroup nesting.
func (g *GroupedFlydown) Display(w io.Writer) error {
	if err := g.EnsureInitialized(); err != nil {
		return err
	}
	if err := g.WidgetBase.Display(w); err != nil {
		return err
	}
	if !g.Visible() {
		return nil
	}

	tag := g.selectTag()
	if err := tag.Open(w); err != nil {
		return err
	}
	if err := g.displayBlankOption(w); err != nil {
		return err
	}
	if g.tree != nil {
		for _, child := range g.tree.children {
			if len(child.children) == 0 {
				if err := displayOption(w, NewOption(child.Value, child.Title), g.Value, 0); err != nil {
					return err
				}
				continue
			}
			group := markup.NewTag("optgroup")
			group.Set("label", child.Title)
			if err := group.Open(w); err != nil {
				return err
			}
			if err := g.displayGroupOptions(w, child, child.Value, 0); err != nil {
				return err
			}
			if err := group.Close(w); err != nil {
				return err
			}
		}
	}
	return tag.Close(w)
}

func (g *GroupedFlydown) displayGroupOptions(w io.Writer, node *TreeNode, prefix string, depth int) error {
	for _, child := range node.children {
		value := pathValue(prefix, child.Value)
		if err := displayOption(w, NewOption(value, child.Title), g.Value, depth); err != nil {
			return err
		}
		if err := g.displayGroupOptions(w, child, value, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns an independent clone, including a deep copy of the tree.
func (g *GroupedFlydown) Copy(idSuffix string) ui.Widget {
	clone := &GroupedFlydown{
		TreeFlydown: TreeFlydown{
			Flydown: Flydown{
				WidgetBase: g.CopyBase(idSuffix),
				Value:      g.Value,
				ShowBlank:  g.ShowBlank,
				BlankTitle: g.BlankTitle,
				options:    append([]Option(nil), g.options...),
			},
		},
	}
	clone.Bind(clone)
	if g.tree != nil {
		clone.tree = g.tree.copyTree()
	}
	return clone
}
