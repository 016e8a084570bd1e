package ui

// Node is the capability shared by every member of a UI tree: a non-owning
// parent back-reference, a visibility flag whose effective value is the AND
// of the whole ancestor chain, CSS classes, data attributes, and an owned
// head-entry set.
type Node interface {
	Parent() Node
	SetParent(Node)
	Visible() bool
	SetVisible(bool)
	IsVisible() bool
	HeadEntries() *HeadEntrySet
	AvailableHeadEntries() *HeadEntrySet
}

// FirstAncestor walks the parent chain and returns the first ancestor that is
// a T, or false if the root is reached without a match.
func FirstAncestor[T any](n Node) (T, bool) {
	if n != nil {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if match, ok := p.(T); ok {
				return match, true
			}
		}
	}
	var zero T
	return zero, false
}

// DataAttribute is an ordered data-* name/value pair rendered onto a node's
// root element.
type DataAttribute struct {
	Name  string
	Value string
}

// Base is the embedded implementation of Node. The zero value is unusable;
// construct with NewBase so the head-entry set exists.
type Base struct {
	parent      Node
	visible     bool
	classes     []string
	dataAttrs   []DataAttribute
	headEntries *HeadEntrySet
}

// NewBase constructs a visible Base with an initialized head-entry set.
func NewBase() Base {
	return Base{
		visible:     true,
		headEntries: NewHeadEntrySet(),
	}
}

// Parent returns the parent node, or nil at the root.
func (b *Base) Parent() Node {
	return b.parent
}

// SetParent stores the non-owning back-reference to the parent node.
func (b *Base) SetParent(parent Node) {
	b.parent = parent
}

// Visible returns this node's own visibility flag.
func (b *Base) Visible() bool {
	return b.visible
}

// SetVisible sets this node's own visibility flag.
func (b *Base) SetVisible(visible bool) {
	b.visible = visible
}

// IsVisible reports effective visibility: this node's flag ANDed with every
// ancestor's.
func (b *Base) IsVisible() bool {
	if !b.visible {
		return false
	}
	if b.parent == nil {
		return true
	}
	return b.parent.IsVisible()
}

// AddClass appends CSS classes, skipping ones already present.
func (b *Base) AddClass(classes ...string) {
	for _, class := range classes {
		if class == "" || b.hasClass(class) {
			continue
		}
		b.classes = append(b.classes, class)
	}
}

// RemoveClass drops a CSS class if present.
func (b *Base) RemoveClass(class string) {
	for i, existing := range b.classes {
		if existing == class {
			b.classes = append(b.classes[:i], b.classes[i+1:]...)
			return
		}
	}
}

// Classes returns the user classes in insertion order.
func (b *Base) Classes() []string {
	return append([]string(nil), b.classes...)
}

func (b *Base) hasClass(class string) bool {
	for _, existing := range b.classes {
		if existing == class {
			return true
		}
	}
	return false
}

// SetDataAttribute assigns a data-* attribute, updating the value in place
// when the name is already set.
func (b *Base) SetDataAttribute(name, value string) {
	for i := range b.dataAttrs {
		if b.dataAttrs[i].Name == name {
			b.dataAttrs[i].Value = value
			return
		}
	}
	b.dataAttrs = append(b.dataAttrs, DataAttribute{Name: name, Value: value})
}

// DataAttributes returns the data attributes in insertion order.
func (b *Base) DataAttributes() []DataAttribute {
	return append([]DataAttribute(nil), b.dataAttrs...)
}

// AddStyleSheet registers an external stylesheet on this node's head-entry
// set.
func (b *Base) AddStyleSheet(uri string) error {
	return b.addHeadEntry(HeadEntry{Kind: HeadEntryStyleSheet, URI: uri})
}

// AddJavaScript registers an external script file.
func (b *Base) AddJavaScript(uri string) error {
	return b.addHeadEntry(HeadEntry{Kind: HeadEntryJavaScript, URI: uri})
}

// AddInlineJavaScript registers an inline script, identified by its content.
func (b *Base) AddInlineJavaScript(script string) error {
	return b.addHeadEntry(HeadEntry{Kind: HeadEntryInlineJavaScript, Content: script})
}

// AddComment registers a head comment.
func (b *Base) AddComment(comment string) error {
	return b.addHeadEntry(HeadEntry{Kind: HeadEntryComment, Content: comment})
}

func (b *Base) addHeadEntry(entry HeadEntry) error {
	if b.headEntries == nil {
		return ErrHeadEntriesUnset
	}
	b.headEntries.Add(entry)
	return nil
}

// HeadEntries returns a copy of the owned set when this node is effectively
// visible, and an empty set otherwise. Hidden subtrees contribute no
// resources to the rendered page.
func (b *Base) HeadEntries() *HeadEntrySet {
	if !b.IsVisible() {
		return NewHeadEntrySet()
	}
	return b.AvailableHeadEntries()
}

// AvailableHeadEntries returns a copy of the owned set regardless of
// visibility, for callers that pre-compute what a client-side reveal might
// need.
func (b *Base) AvailableHeadEntries() *HeadEntrySet {
	if b.headEntries == nil {
		return NewHeadEntrySet()
	}
	return b.headEntries.Copy()
}

// copyBase returns a structural clone with the parent link severed.
func (b *Base) copyBase() Base {
	clone := Base{
		visible:   b.visible,
		classes:   append([]string(nil), b.classes...),
		dataAttrs: append([]DataAttribute(nil), b.dataAttrs...),
	}
	if b.headEntries != nil {
		clone.headEntries = b.headEntries.Copy()
	} else {
		clone.headEntries = NewHeadEntrySet()
	}
	return clone
}
