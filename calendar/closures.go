/*
closures.go - Company closure calendar loaded from YAML

PURPOSE:
  National holidays are computed (holidays.go); closure days are whatever
  the office announces - bridge days, summer shutdowns. Those arrive as a
  small YAML file and are layered over the national calendar with
  calendar.Composite.

FILE FORMAT:
  closures:
    - date: 2026-05-15
      name: "Bridge day after Ascension"
    - date: 2026-07-20
      name: "Summer shutdown"

  Dates use YYYY-MM-DD. Unknown years simply contribute no entries.
*/
package calendar

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ClosureCalendar serves extra closure days loaded from a YAML file.
type ClosureCalendar struct {
	byYear map[int][]Date
}

type closureFile struct {
	Closures []closureEntry `yaml:"closures"`
}

type closureEntry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// LoadClosures reads a closure file. A missing or empty file yields an
// empty calendar; a malformed date fails the load so a typo cannot
// silently drop a closure day.
func LoadClosures(path string) (*ClosureCalendar, error) {
	cal := &ClosureCalendar{byYear: map[int][]Date{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cal, nil
		}
		return nil, fmt.Errorf("read closures: %w", err)
	}

	var file closureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse closures: %w", err)
	}

	for _, entry := range file.Closures {
		t, err := time.ParseInLocation("2006-01-02", entry.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("closure %q: invalid date %q: %w", entry.Name, entry.Date, err)
		}
		d := DateOf(t)
		cal.byYear[d.Year()] = append(cal.byYear[d.Year()], d)
	}
	return cal, nil
}

func (c *ClosureCalendar) HolidaysFor(year int) HolidaySet {
	set := HolidaySet{}
	for _, d := range c.byYear[year] {
		set.Add(d)
	}
	return set
}
