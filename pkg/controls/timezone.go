package controls

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/cviebrock/swat/pkg/ui"
)

//go:embed data/iana_timezones.txt
var timeZoneData embed.FS

const timeZoneListPath = "data/iana_timezones.txt"

var (
	defaultZonesOnce sync.Once
	defaultZones     []string
	defaultZonesErr  error
)

// DefaultTimeZones returns the stock IANA zone list sorted by identifier.
// The returned slice is a copy and may be modified by the caller.
func DefaultTimeZones() ([]string, error) {
	defaultZonesOnce.Do(func() {
		f, err := timeZoneData.Open(timeZoneListPath)
		if err != nil {
			defaultZonesErr = err
			return
		}
		defer func() { _ = f.Close() }()
		defaultZones, defaultZonesErr = LoadTimeZones(f)
	})
	if defaultZonesErr != nil {
		return nil, defaultZonesErr
	}
	return append([]string(nil), defaultZones...), nil
}

// LoadTimeZones reads one zone identifier per line, skipping blank lines and
// lines beginning with "#". Duplicates are dropped and the result is sorted.
func LoadTimeZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("controls: missing time zone reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 128)
	seen := map[string]struct{}{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("controls: read time zones: %w", err)
	}

	sort.Strings(zones)
	return zones, nil
}

// TimeZoneFlydown is a grouped flydown pre-populated with IANA time zone
// identifiers. Zones are grouped by their leading region segment and the
// selected value is the full identifier, for example "America/New_York".
type TimeZoneFlydown struct {
	GroupedFlydown
}

// NewTimeZoneFlydown constructs a time-zone flydown backed by the stock zone
// list. Use SetZones to substitute a custom list.
func NewTimeZoneFlydown(id string) *TimeZoneFlydown {
	t := &TimeZoneFlydown{
		GroupedFlydown: GroupedFlydown{
			TreeFlydown: TreeFlydown{Flydown: Flydown{WidgetBase: ui.NewWidgetBase("time-zone-flydown"), ShowBlank: true}},
		},
	}
	t.Bind(t)
	t.SetID(id)
	t.RequireID()
	zones, err := DefaultTimeZones()
	if err != nil {
		zones = nil
	}
	t.SetZones(zones)
	return t
}

// SetZones rebuilds the option tree from the given zone identifiers. Zones
// without a region segment, like "UTC", become ungrouped options.
func (t *TimeZoneFlydown) SetZones(zones []string) {
	root := NewTreeNode("", "")
	regions := map[string]*TreeNode{}
	for _, zone := range zones {
		region, rest, ok := strings.Cut(zone, "/")
		if !ok {
			root.AddChild(NewTreeNode(zone, zone))
			continue
		}
		branch, found := regions[region]
		if !found {
			branch = root.AddChild(NewTreeNode(region, region))
			regions[region] = branch
		}
		branch.AddChild(NewTreeNode(rest, timeZoneTitle(rest)))
	}
	t.SetTree(root)
}

// timeZoneTitle turns the city portion of a zone identifier into a readable
// title, for example "Argentina/Buenos_Aires" becomes "Argentina - Buenos Aires".
func timeZoneTitle(rest string) string {
	title := strings.ReplaceAll(rest, "_", " ")
	return strings.ReplaceAll(title, "/", " - ")
}

// Copy returns an independent clone, including a deep copy of the zone tree.
func (t *TimeZoneFlydown) Copy(idSuffix string) ui.Widget {
	clone := &TimeZoneFlydown{
		GroupedFlydown: GroupedFlydown{
			TreeFlydown: TreeFlydown{
				Flydown: Flydown{
					WidgetBase: t.CopyBase(idSuffix),
					Value:      t.Value,
					ShowBlank:  t.ShowBlank,
					BlankTitle: t.BlankTitle,
					options:    append([]Option(nil), t.options...),
				},
			},
		},
	}
	clone.Bind(clone)
	if t.tree != nil {
		clone.tree = t.tree.copyTree()
	}
	return clone
}
