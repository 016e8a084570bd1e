package ui

import (
	"io"

	"github.com/cviebrock/swat/pkg/markup"
)

// MessageType grades the severity of user-facing feedback attached to a
// widget.
type MessageType int

const (
	MessageNotice MessageType = iota
	MessageWarning
	MessageError
	MessageSystem
)

// Message is one piece of feedback attached to a widget, usually produced
// while processing submitted values. Secondary content may carry markup when
// RawSecondary is set; it is sanitized before display.
type Message struct {
	Type      MessageType
	Primary   string
	Secondary string
	// RawSecondary marks Secondary as markup rather than plain text.
	RawSecondary bool
}

// NewMessage constructs a plain-text message of the given severity.
func NewMessage(messageType MessageType, primary string) Message {
	return Message{Type: messageType, Primary: primary}
}

// CSSClassNames returns the severity-specific class list for message chrome.
func (m Message) CSSClassNames() []string {
	classes := []string{"swat-message"}
	switch m.Type {
	case MessageWarning:
		classes = append(classes, "swat-message-warning")
	case MessageError:
		classes = append(classes, "swat-message-error")
	case MessageSystem:
		classes = append(classes, "swat-message-system")
	default:
		classes = append(classes, "swat-message-notice")
	}
	return classes
}

// Display renders the message as a div with a primary span and optional
// secondary content.
func (m Message) Display(w io.Writer) error {
	tag := markup.NewTag("div")
	tag.Set("class", joinClasses(m.CSSClassNames()))
	if err := tag.Open(w); err != nil {
		return err
	}

	primary := markup.NewTag("span")
	primary.Set("class", "swat-message-primary")
	if err := primary.Display(w, m.Primary); err != nil {
		return err
	}

	if m.Secondary != "" {
		secondary := markup.NewTag("span")
		secondary.Set("class", "swat-message-secondary")
		content := markup.Escape(m.Secondary)
		if m.RawSecondary {
			content = markup.SanitizeRich(m.Secondary)
		}
		if err := secondary.DisplayRaw(w, content); err != nil {
			return err
		}
	}

	return tag.Close(w)
}

func joinClasses(classes []string) string {
	out := ""
	for i, class := range classes {
		if i > 0 {
			out += " "
		}
		out += class
	}
	return out
}
