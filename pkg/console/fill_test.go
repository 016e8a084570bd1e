package console_test

import (
	"context"
	"testing"

	"github.com/cviebrock/swat/pkg/console"
	"github.com/cviebrock/swat/pkg/controls"
	"github.com/cviebrock/swat/pkg/ui"
)

// scriptedDriver replays canned answers keyed by prompt message.
type scriptedDriver struct {
	inputs   map[string]string
	confirms map[string]bool
	selects  map[string]int
	prompts  []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg console.InputConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	return d.inputs[cfg.Message], nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg console.ConfirmConfig) (bool, error) {
	d.prompts = append(d.prompts, cfg.Message)
	return d.confirms[cfg.Message], nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg console.SelectConfig) (int, error) {
	d.prompts = append(d.prompts, cfg.Message)
	return d.selects[cfg.Message], nil
}

func TestFillPromptsAndSubmits(t *testing.T) {
	form := ui.NewForm("signup")

	email := controls.NewEntry("email")
	newsletter := controls.NewCheckbox("newsletter")
	color := controls.NewFlydown("favorite_color")
	color.AddOptionValues("red", "Red")
	color.AddDivider()
	color.AddOptionValues("green", "Green")

	for _, widget := range []ui.Widget{email, newsletter, color, controls.NewButton("go", "Go")} {
		if err := form.Add(widget); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	driver := &scriptedDriver{
		inputs:   map[string]string{"email": "a@b.c"},
		confirms: map[string]bool{"newsletter": true},
		selects:  map[string]int{"favorite color": 1},
	}
	if err := console.Fill(context.Background(), form, driver); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if !form.IsSubmitted() {
		t.Fatal("filling must submit the form")
	}
	if email.Value != "a@b.c" {
		t.Fatalf("email value = %q", email.Value)
	}
	if !newsletter.Value {
		t.Fatal("confirmed checkbox must be checked")
	}
	if color.Value != "green" {
		t.Fatalf("color value = %q, want the divider-skipping selection", color.Value)
	}
	for _, prompt := range driver.prompts {
		if prompt == "go" {
			t.Fatal("buttons must not be prompted for")
		}
	}
}

func TestFillSkipsHiddenAndInsensitiveControls(t *testing.T) {
	form := ui.NewForm("signup")

	hidden := controls.NewEntry("hidden_entry")
	hidden.SetVisible(false)
	disabled := controls.NewEntry("disabled_entry")
	disabled.SetSensitive(false)

	for _, widget := range []ui.Widget{hidden, disabled} {
		if err := form.Add(widget); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	driver := &scriptedDriver{inputs: map[string]string{}}
	if err := console.Fill(context.Background(), form, driver); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if len(driver.prompts) != 0 {
		t.Fatalf("prompts = %v, want none", driver.prompts)
	}
}

func TestFillWalksNestedContainers(t *testing.T) {
	form := ui.NewForm("signup")
	section := ui.NewContainer()
	inner := controls.NewEntry("nested")
	if err := section.Add(inner); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := form.Add(section); err != nil {
		t.Fatalf("Add: %v", err)
	}

	driver := &scriptedDriver{inputs: map[string]string{"nested": "yes"}}
	if err := console.Fill(context.Background(), form, driver); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if inner.Value != "yes" {
		t.Fatalf("nested value = %q, want yes", inner.Value)
	}
}

func TestFillDateEntryPromptsComposites(t *testing.T) {
	form := ui.NewForm("signup")
	date := controls.NewDateEntry("birthday")
	date.StartYear = 2020
	date.EndYear = 2022
	if err := form.Add(date); err != nil {
		t.Fatalf("Add: %v", err)
	}

	driver := &scriptedDriver{selects: map[string]int{
		"birthday month": 3,
		"birthday day":   14,
		"birthday year":  1,
	}}
	if err := console.Fill(context.Background(), form, driver); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if date.Month != 4 || date.Day != 15 || date.Year != 2021 {
		t.Fatalf("date = %d-%d-%d, want 2021-4-15", date.Year, date.Month, date.Day)
	}
}

func TestFillRejectsNilArguments(t *testing.T) {
	if err := console.Fill(context.Background(), nil, &scriptedDriver{}); err == nil {
		t.Fatal("expected an error for a nil form")
	}
	if err := console.Fill(context.Background(), ui.NewForm("x"), nil); err == nil {
		t.Fatal("expected an error for a nil driver")
	}
}
