package ui

import (
	"fmt"
	"io"
)

// Container is a widget holding an ordered sequence of child widgets. The
// lifecycle methods recurse over the children in sequence order after the
// base widget behavior runs.
type Container struct {
	WidgetBase
	children []Widget
}

// NewContainer constructs an empty container.
func NewContainer() *Container {
	c := &Container{WidgetBase: NewWidgetBase("container")}
	c.Bind(c)
	return c
}

// Add appends a child. The child must not already have a parent.
func (c *Container) Add(child Widget) error {
	if child.Parent() != nil {
		return fmt.Errorf("container: add child: %w", ErrAlreadyParented)
	}
	child.SetParent(c.selfWidget())
	c.children = append(c.children, child)
	return nil
}

// InsertBefore places child immediately before reference in the sequence.
func (c *Container) InsertBefore(child, reference Widget) error {
	if child.Parent() != nil {
		return fmt.Errorf("container: insert child: %w", ErrAlreadyParented)
	}
	for i, existing := range c.children {
		if existing == reference {
			child.SetParent(c.selfWidget())
			c.children = append(c.children[:i], append([]Widget{child}, c.children[i:]...)...)
			return nil
		}
	}
	return fmt.Errorf("container: insert child: reference widget: %w", ErrNotFound)
}

// Replace swaps an existing child for a replacement, keeping the sequence
// position. The removed child's parent link is severed.
func (c *Container) Replace(existing, replacement Widget) error {
	if replacement.Parent() != nil {
		return fmt.Errorf("container: replace child: %w", ErrAlreadyParented)
	}
	for i, child := range c.children {
		if child == existing {
			replacement.SetParent(c.selfWidget())
			existing.SetParent(nil)
			c.children[i] = replacement
			return nil
		}
	}
	return fmt.Errorf("container: replace child: %w", ErrNotFound)
}

// Remove detaches a child from the sequence and severs its parent link.
func (c *Container) Remove(child Widget) error {
	for i, existing := range c.children {
		if existing == child {
			child.SetParent(nil)
			c.children = append(c.children[:i], c.children[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("container: remove child: %w", ErrNotFound)
}

// Children returns the child sequence in order.
func (c *Container) Children() []Widget {
	return append([]Widget(nil), c.children...)
}

// ChildByID searches the subtree for a widget with the given id.
func (c *Container) ChildByID(id string) (Widget, bool) {
	for _, child := range c.children {
		if child.ID() == id {
			return child, true
		}
		if parent, ok := child.(Parent); ok {
			if inner, found := childByID(parent, id); found {
				return inner, true
			}
		}
	}
	return nil, false
}

func childByID(parent Parent, id string) (Widget, bool) {
	for _, child := range parent.Children() {
		if child.ID() == id {
			return child, true
		}
		if inner, ok := child.(Parent); ok {
			if found, ok := childByID(inner, id); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Descendants returns every widget of type T in the subtree rooted at
// parent, in depth-first sequence order.
func Descendants[T any](parent Parent) []T {
	var out []T
	for _, child := range parent.Children() {
		if match, ok := child.(T); ok {
			out = append(out, match)
		}
		if inner, ok := child.(Parent); ok {
			out = append(out, Descendants[T](inner)...)
		}
	}
	return out
}

// Init initializes the base widget, then the children in sequence order.
func (c *Container) Init() error {
	if err := c.WidgetBase.Init(); err != nil {
		return err
	}
	for _, child := range c.children {
		if !child.Initialized() {
			if err := child.Init(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Process processes the base widget, then the children in sequence order.
func (c *Container) Process() error {
	if err := c.EnsureInitialized(); err != nil {
		return err
	}
	if err := c.WidgetBase.Process(); err != nil {
		return err
	}
	return c.processChildren()
}

func (c *Container) processChildren() error {
	for _, child := range c.children {
		if !child.Processed() {
			if err := child.Process(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Display renders the children in sequence order. A container that is not
// itself visible renders nothing, but still records that display ran.
func (c *Container) Display(w io.Writer) error {
	if err := c.EnsureInitialized(); err != nil {
		return err
	}
	if err := c.WidgetBase.Display(w); err != nil {
		return err
	}
	if !c.Visible() {
		return nil
	}
	return c.displayChildren(w)
}

func (c *Container) displayChildren(w io.Writer) error {
	for _, child := range c.children {
		if err := child.Display(w); err != nil {
			return err
		}
	}
	return nil
}

// Messages returns the widget's own messages followed by every child's.
func (c *Container) Messages() []Message {
	messages := c.WidgetBase.Messages()
	for _, child := range c.children {
		messages = append(messages, child.Messages()...)
	}
	return messages
}

// HasMessage reports whether this container or any descendant carries a
// message.
func (c *Container) HasMessage() bool {
	if c.WidgetBase.HasMessage() {
		return true
	}
	for _, child := range c.children {
		if child.HasMessage() {
			return true
		}
	}
	return false
}

// HeadEntries unions this container's visibility-gated entries with each
// visible child's.
func (c *Container) HeadEntries() *HeadEntrySet {
	set := c.WidgetBase.HeadEntries()
	if !c.IsVisible() {
		return set
	}
	for _, child := range c.children {
		set.AddSet(child.HeadEntries())
	}
	return set
}

// AvailableHeadEntries unions the entries of the whole subtree regardless of
// visibility.
func (c *Container) AvailableHeadEntries() *HeadEntrySet {
	set := c.WidgetBase.AvailableHeadEntries()
	for _, child := range c.children {
		set.AddSet(child.AvailableHeadEntries())
	}
	return set
}

// Copy deep-copies the container and its children. Child copies are
// re-parented to the clone; mutating them leaves the original subtree
// untouched.
func (c *Container) Copy(idSuffix string) Widget {
	clone := &Container{WidgetBase: c.CopyBase(idSuffix)}
	clone.Bind(clone)
	c.copyChildrenInto(clone, idSuffix)
	return clone
}

// copyChildrenInto clones the child sequence into target, which must be the
// container embedded in the copying widget.
func (c *Container) copyChildrenInto(target *Container, idSuffix string) {
	target.children = make([]Widget, 0, len(c.children))
	for _, child := range c.children {
		childClone := child.Copy(idSuffix)
		childClone.SetParent(target.selfWidget())
		target.children = append(target.children, childClone)
	}
}
