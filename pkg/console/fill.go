package console

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cviebrock/swat/pkg/controls"
	"github.com/cviebrock/swat/pkg/ui"
)

// selectControl matches flydown-style controls, including the tree variants
// that embed the plain flydown.
type selectControl interface {
	ui.Widget
	Options() []controls.Option
}

// Fill prompts for every interactive control in the form, then submits the
// collected answers through the form's own processing path.
func Fill(ctx context.Context, form *ui.Form, driver PromptDriver) error {
	if form == nil {
		return fmt.Errorf("console: form is nil")
	}
	if driver == nil {
		return fmt.Errorf("console: driver is nil")
	}
	if !form.Initialized() {
		if err := form.Init(); err != nil {
			return fmt.Errorf("console: init form: %w", err)
		}
	}

	values := url.Values{}
	if err := fillWidgets(ctx, driver, form.Children(), values); err != nil {
		return err
	}
	return form.Submit(values)
}

func fillWidgets(ctx context.Context, driver PromptDriver, widgets []ui.Widget, values url.Values) error {
	for _, widget := range widgets {
		if !widget.IsVisible() || !widget.IsSensitive() {
			continue
		}
		switch control := widget.(type) {
		case *controls.Entry:
			if err := fillEntry(ctx, driver, control, values); err != nil {
				return err
			}
		case *controls.Checkbox:
			if err := fillCheckbox(ctx, driver, control, values); err != nil {
				return err
			}
		case *controls.DateEntry:
			if err := fillDateEntry(ctx, driver, control, values); err != nil {
				return err
			}
		case *controls.Hidden, *controls.Button, *controls.Content:
			// Nothing to ask; hidden fields and the submit marker are
			// restored by Submit.
		default:
			if selectable, ok := widget.(selectControl); ok {
				if err := fillSelect(ctx, driver, selectable, values); err != nil {
					return err
				}
				continue
			}
			if parent, ok := widget.(ui.Parent); ok {
				if err := fillWidgets(ctx, driver, parent.Children(), values); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func fillEntry(ctx context.Context, driver PromptDriver, entry *controls.Entry, values url.Values) error {
	answer, err := driver.Input(ctx, InputConfig{
		Message: promptMessage(entry),
		Default: entry.Value,
	})
	if err != nil {
		return err
	}
	values.Set(entry.ID(), answer)
	return nil
}

func fillCheckbox(ctx context.Context, driver PromptDriver, checkbox *controls.Checkbox, values url.Values) error {
	answer, err := driver.Confirm(ctx, ConfirmConfig{
		Message: promptMessage(checkbox),
		Default: checkbox.Value,
	})
	if err != nil {
		return err
	}
	if answer {
		values.Set(checkbox.ID(), "1")
	}
	return nil
}

func fillSelect(ctx context.Context, driver PromptDriver, control selectControl, values url.Values) error {
	var titles, optionValues []string
	for _, option := range control.Options() {
		if option.Divider {
			continue
		}
		titles = append(titles, option.Title)
		optionValues = append(optionValues, option.Value)
	}
	if len(titles) == 0 {
		return nil
	}
	index, err := driver.Select(ctx, SelectConfig{
		Message: promptMessage(control),
		Options: titles,
	})
	if err != nil {
		return err
	}
	if index < 0 || index >= len(optionValues) {
		return nil
	}
	values.Set(control.ID(), optionValues[index])
	return nil
}

func fillDateEntry(ctx context.Context, driver PromptDriver, date *controls.DateEntry, values url.Values) error {
	for _, key := range []string{"month", "day", "year"} {
		widget, err := date.CompositeWidget(key)
		if err != nil {
			return fmt.Errorf("console: date entry %q: %w", date.ID(), err)
		}
		flydown, ok := widget.(*controls.Flydown)
		if !ok {
			continue
		}
		if err := fillSelect(ctx, driver, flydown, values); err != nil {
			return err
		}
	}
	return nil
}

// promptMessage derives a readable label from a widget id.
func promptMessage(widget ui.Widget) string {
	return strings.ReplaceAll(widget.ID(), "_", " ")
}
