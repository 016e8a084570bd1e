package ui

import (
	"fmt"
	"io"
)

// Widget is a Node with the three-phase lifecycle. Init assigns ids and
// builds internal structure, Process consumes submitted form values, and
// Display renders markup to the response stream. The lifecycle flags are
// monotonic; only Copy produces a widget with fresh flags.
type Widget interface {
	Node

	ID() string
	SetID(string)

	Init() error
	Process() error
	Display(w io.Writer) error

	Initialized() bool
	Processed() bool
	Displayed() bool

	Sensitive() bool
	SetSensitive(bool)
	IsSensitive() bool

	AddMessage(Message)
	Messages() []Message
	HasMessage() bool

	AddCompositeWidget(child Widget, key string) error
	CompositeWidget(key string) (Widget, error)
	CompositeWidgets() ([]Widget, error)

	Copy(idSuffix string) Widget
}

// Parent is a widget that holds an ordered sequence of child widgets.
type Parent interface {
	Widget
	Children() []Widget
}

// WidgetBase carries the state and lifecycle plumbing shared by every
// widget. Concrete widgets embed it and call Bind with themselves so parent
// back-references point at the concrete type rather than the embedded base.
type WidgetBase struct {
	Base

	kind       string
	id         string
	requiresID bool
	stylesheet string

	sensitive bool
	messages  []Message

	initialized bool
	processed   bool
	displayed   bool

	self              Widget
	composites        map[string]Widget
	compositeKeys     []string
	compositesCreated bool
	compositeBuilder  func() error
}

// NewWidgetBase constructs a sensitive, visible base for a widget of the
// given kind. The kind doubles as the unique-id prefix.
func NewWidgetBase(kind string) WidgetBase {
	return WidgetBase{
		Base:      NewBase(),
		kind:      kind,
		sensitive: true,
	}
}

// Bind registers the outermost widget embedding this base. Children and
// composite widgets attached through the base receive it as their parent, so
// ancestor lookups see the concrete type.
func (w *WidgetBase) Bind(self Widget) {
	w.self = self
}

func (w *WidgetBase) selfWidget() Widget {
	if w.self != nil {
		return w.self
	}
	return w
}

// Kind returns the widget kind used as the unique-id prefix.
func (w *WidgetBase) Kind() string {
	return w.kind
}

// ID returns the widget id, which may be empty until Init runs.
func (w *WidgetBase) ID() string {
	return w.id
}

// SetID assigns an explicit id. Init never overwrites an assigned id.
func (w *WidgetBase) SetID(id string) {
	w.id = id
}

// RequireID makes Init assign a generated unique id when none is set.
func (w *WidgetBase) RequireID() {
	w.requiresID = true
}

// SetStylesheet configures a stylesheet resource added to the head-entry set
// during Init.
func (w *WidgetBase) SetStylesheet(uri string) {
	w.stylesheet = uri
}

// Init assigns a unique id when required, registers the configured
// stylesheet, and initializes all composite widgets, triggering their lazy
// creation. Callers should guard with Initialized; Init itself does not
// protect against re-running its body.
func (w *WidgetBase) Init() error {
	if w.requiresID && w.id == "" {
		w.id = UniqueID(w.kind)
	}
	if w.stylesheet != "" {
		if err := w.AddStyleSheet(w.stylesheet); err != nil {
			return err
		}
	}
	if err := w.ensureComposites(); err != nil {
		return err
	}
	for _, key := range w.compositeKeys {
		composite := w.composites[key]
		if !composite.Initialized() {
			if err := composite.Init(); err != nil {
				return err
			}
		}
	}
	w.initialized = true
	return nil
}

// EnsureInitialized runs Init when it has not happened yet, dispatching
// through the bound widget so an embedding type's own Init runs, not the
// base's.
func (w *WidgetBase) EnsureInitialized() error {
	if w.initialized {
		return nil
	}
	return w.selfWidget().Init()
}

// Process runs Init when it has not happened yet, then processes all
// composite widgets. Concrete widgets call it before consuming their own
// submitted values.
func (w *WidgetBase) Process() error {
	if err := w.EnsureInitialized(); err != nil {
		return err
	}
	for _, key := range w.compositeKeys {
		composite := w.composites[key]
		if !composite.Processed() {
			if err := composite.Process(); err != nil {
				return err
			}
		}
	}
	w.processed = true
	return nil
}

// Display runs Init when it has not happened yet and marks the widget
// displayed. The base widget renders no markup of its own.
func (w *WidgetBase) Display(io.Writer) error {
	if err := w.EnsureInitialized(); err != nil {
		return err
	}
	w.displayed = true
	return nil
}

// HeadEntries returns this widget's own entries unioned with those of its
// composite widgets, in registration order. A hidden widget contributes
// nothing; hidden composites are filtered by their own visibility.
func (w *WidgetBase) HeadEntries() *HeadEntrySet {
	if !w.IsVisible() {
		return NewHeadEntrySet()
	}
	set := w.Base.AvailableHeadEntries()
	for _, key := range w.compositeKeys {
		set.AddSet(w.composites[key].HeadEntries())
	}
	return set
}

// AvailableHeadEntries unions this widget's own entries with those of its
// composite widgets regardless of visibility.
func (w *WidgetBase) AvailableHeadEntries() *HeadEntrySet {
	set := w.Base.AvailableHeadEntries()
	for _, key := range w.compositeKeys {
		set.AddSet(w.composites[key].AvailableHeadEntries())
	}
	return set
}

// Initialized reports whether Init has completed.
func (w *WidgetBase) Initialized() bool {
	return w.initialized
}

// Processed reports whether Process has completed.
func (w *WidgetBase) Processed() bool {
	return w.processed
}

// Displayed reports whether Display has run.
func (w *WidgetBase) Displayed() bool {
	return w.displayed
}

// Sensitive returns this widget's own sensitivity flag.
func (w *WidgetBase) Sensitive() bool {
	return w.sensitive
}

// SetSensitive sets this widget's own sensitivity flag.
func (w *WidgetBase) SetSensitive(sensitive bool) {
	w.sensitive = sensitive
}

// IsSensitive reports effective sensitivity: this widget's flag ANDed with
// the nearest ancestor widget's effective sensitivity.
func (w *WidgetBase) IsSensitive() bool {
	if !w.sensitive {
		return false
	}
	if ancestor, ok := FirstAncestor[Widget](w.selfWidget()); ok {
		return ancestor.IsSensitive()
	}
	return true
}

// AddMessage attaches feedback to this widget.
func (w *WidgetBase) AddMessage(message Message) {
	w.messages = append(w.messages, message)
}

// Messages returns this widget's own messages followed by those of its
// composite widgets, in registration order. Composites that were never
// created contribute nothing.
func (w *WidgetBase) Messages() []Message {
	messages := append([]Message(nil), w.messages...)
	for _, key := range w.compositeKeys {
		messages = append(messages, w.composites[key].Messages()...)
	}
	return messages
}

// HasMessage reports whether this widget or any composite carries a message.
func (w *WidgetBase) HasMessage() bool {
	if len(w.messages) > 0 {
		return true
	}
	for _, key := range w.compositeKeys {
		if w.composites[key].HasMessage() {
			return true
		}
	}
	return false
}

// SetCompositeBuilder registers the hook that assembles composite widgets.
// The hook runs at most once, on first access through Init, Process,
// CompositeWidget or CompositeWidgets.
func (w *WidgetBase) SetCompositeBuilder(fn func() error) {
	w.compositeBuilder = fn
}

func (w *WidgetBase) ensureComposites() error {
	if w.compositesCreated {
		return nil
	}
	// Mark first so a failing builder is not re-run on the next access.
	w.compositesCreated = true
	if w.compositeBuilder == nil {
		return nil
	}
	return w.compositeBuilder()
}

// AddCompositeWidget registers child under key and makes this widget its
// parent. The key must be unused and the child must not already have a
// parent; on either violation the registration is left untouched.
func (w *WidgetBase) AddCompositeWidget(child Widget, key string) error {
	if w.composites == nil {
		w.composites = make(map[string]Widget)
	}
	if _, exists := w.composites[key]; exists {
		return fmt.Errorf("composite widget key %q: %w", key, ErrDuplicateKey)
	}
	if child.Parent() != nil {
		return fmt.Errorf("composite widget key %q: %w", key, ErrAlreadyParented)
	}
	child.SetParent(w.selfWidget())
	w.composites[key] = child
	w.compositeKeys = append(w.compositeKeys, key)
	return nil
}

// CompositeWidget triggers lazy creation and returns the composite
// registered under key.
func (w *WidgetBase) CompositeWidget(key string) (Widget, error) {
	if err := w.ensureComposites(); err != nil {
		return nil, err
	}
	child, ok := w.composites[key]
	if !ok {
		return nil, fmt.Errorf("composite widget key %q: %w", key, ErrNotFound)
	}
	return child, nil
}

// CompositeWidgets triggers lazy creation and returns all composites in
// registration order.
func (w *WidgetBase) CompositeWidgets() ([]Widget, error) {
	if err := w.ensureComposites(); err != nil {
		return nil, err
	}
	out := make([]Widget, 0, len(w.compositeKeys))
	for _, key := range w.compositeKeys {
		out = append(out, w.composites[key])
	}
	return out, nil
}

// CompositeWidgetsOf returns the composites of w that are a T, preserving
// registration order. A type with no matching composites yields an empty
// slice, not an error.
func CompositeWidgetsOf[T Widget](w Widget) ([]T, error) {
	all, err := w.CompositeWidgets()
	if err != nil {
		return nil, err
	}
	var out []T
	for _, composite := range all {
		if match, ok := composite.(T); ok {
			out = append(out, match)
		}
	}
	return out, nil
}

// CopyBase returns a structural clone of the base for embedding in a
// concrete widget's Copy: parent severed, lifecycle flags fresh, and
// composite state reset so composites regenerate on next access. A non-empty
// idSuffix is appended to an assigned id to avoid duplicate-id collisions.
// The composite builder is not carried over; widgets with composites
// re-register it against the clone.
func (w *WidgetBase) CopyBase(idSuffix string) WidgetBase {
	clone := WidgetBase{
		Base:       w.Base.copyBase(),
		kind:       w.kind,
		id:         w.id,
		requiresID: w.requiresID,
		stylesheet: w.stylesheet,
		sensitive:  w.sensitive,
		messages:   append([]Message(nil), w.messages...),
	}
	if clone.id != "" && idSuffix != "" {
		clone.id += idSuffix
	}
	return clone
}

// Copy returns an independent clone of a bare base widget.
func (w *WidgetBase) Copy(idSuffix string) Widget {
	clone := w.CopyBase(idSuffix)
	clone.Bind(&clone)
	return &clone
}
