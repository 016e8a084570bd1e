package controls

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cviebrock/swat/pkg/i18n"
	"github.com/cviebrock/swat/pkg/ui"
)

// DateEntry is a date picker assembled from composite day/month/year
// flydowns. The composites stay internal; only this widget appears on the
// public tree, and its Display decides which parts to render.
type DateEntry struct {
	ui.WidgetBase

	// Year, Month and Day hold the selection after Process. Zero means no
	// selection.
	Year  int
	Month int
	Day   int

	// StartYear and EndYear bound the year flydown. When both are zero the
	// range covers ten years around the current year.
	StartYear int
	EndYear   int
}

const (
	dateEntryDayKey   = "day"
	dateEntryMonthKey = "month"
	dateEntryYearKey  = "year"
)

// NewDateEntry constructs a date entry.
func NewDateEntry(id string) *DateEntry {
	d := &DateEntry{WidgetBase: ui.NewWidgetBase("date-entry")}
	d.Bind(d)
	d.SetID(id)
	d.RequireID()
	d.SetCompositeBuilder(d.createComposites)
	return d
}

func (d *DateEntry) createComposites() error {
	day := NewFlydown(d.compositeID(dateEntryDayKey))
	for i := 1; i <= 31; i++ {
		day.AddOptionValues(strconv.Itoa(i), strconv.Itoa(i))
	}
	if err := d.AddCompositeWidget(day, dateEntryDayKey); err != nil {
		return err
	}

	month := NewFlydown(d.compositeID(dateEntryMonthKey))
	for i := 1; i <= 12; i++ {
		name := time.Month(i).String()
		month.AddOptionValues(strconv.Itoa(i), i18n.Text("swat.month-"+name, name))
	}
	if err := d.AddCompositeWidget(month, dateEntryMonthKey); err != nil {
		return err
	}

	start, end := d.yearRange()
	year := NewFlydown(d.compositeID(dateEntryYearKey))
	for i := start; i <= end; i++ {
		year.AddOptionValues(strconv.Itoa(i), strconv.Itoa(i))
	}
	return d.AddCompositeWidget(year, dateEntryYearKey)
}

func (d *DateEntry) compositeID(key string) string {
	if d.ID() == "" {
		return ""
	}
	return d.ID() + "_" + key
}

func (d *DateEntry) yearRange() (int, int) {
	start, end := d.StartYear, d.EndYear
	if start == 0 && end == 0 {
		current := time.Now().Year()
		return current - 5, current + 5
	}
	if end < start {
		start, end = end, start
	}
	return start, end
}

// Process runs the composite flydowns and assembles the numeric date parts.
func (d *DateEntry) Process() error {
	if err := d.EnsureInitialized(); err != nil {
		return err
	}
	if err := d.WidgetBase.Process(); err != nil {
		return err
	}

	var err error
	if d.Day, err = d.compositeIntValue(dateEntryDayKey); err != nil {
		return err
	}
	if d.Month, err = d.compositeIntValue(dateEntryMonthKey); err != nil {
		return err
	}
	d.Year, err = d.compositeIntValue(dateEntryYearKey)
	return err
}

func (d *DateEntry) compositeIntValue(key string) (int, error) {
	composite, err := d.CompositeWidget(key)
	if err != nil {
		return 0, err
	}
	flydown, ok := composite.(*Flydown)
	if !ok {
		return 0, fmt.Errorf("date entry %q: composite %q is not a flydown", d.ID(), key)
	}
	if flydown.Value == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(flydown.Value)
	if err != nil {
		return 0, nil
	}
	return value, nil
}

// Display renders the month, day and year flydowns in order.
func (d *DateEntry) Display(w io.Writer) error {
	if err := d.EnsureInitialized(); err != nil {
		return err
	}
	if err := d.WidgetBase.Display(w); err != nil {
		return err
	}
	if !d.Visible() {
		return nil
	}

	for _, key := range []string{dateEntryMonthKey, dateEntryDayKey, dateEntryYearKey} {
		composite, err := d.CompositeWidget(key)
		if err != nil {
			return err
		}
		if err := composite.Display(w); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns an independent clone whose composites regenerate on next
// access, so ids never collide with the original's.
func (d *DateEntry) Copy(idSuffix string) ui.Widget {
	clone := &DateEntry{
		WidgetBase: d.CopyBase(idSuffix),
		Year:       d.Year,
		Month:      d.Month,
		Day:        d.Day,
		StartYear:  d.StartYear,
		EndYear:    d.EndYear,
	}
	clone.Bind(clone)
	clone.SetCompositeBuilder(clone.createComposites)
	return clone
}
