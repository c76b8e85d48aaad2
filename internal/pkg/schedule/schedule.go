// Package schedule converts the restaurant's weekly opening hours
// between the persisted JSON form and the editable in-memory form.
// The persisted field is opaque to the rest of the system; this
// package is the only code that understands its layout.
package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Range is a single opening window within a day.
type Range struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// Day is one weekday's configuration. A closed day carries no ranges.
type Day struct {
	IsOpen bool    `json:"isOpen"`
	Ranges []Range `json:"ranges"`
}

// Week maps lowercase English day names to their configuration.
type Week map[string]Day

// DayOrder is the canonical monday-first iteration order.
var DayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DayLabels maps day keys to the Spanish labels shown on the site.
var DayLabels = map[string]string{
	"monday":    "Lunes",
	"tuesday":   "Martes",
	"wednesday": "Miércoles",
	"thursday":  "Jueves",
	"friday":    "Viernes",
	"saturday":  "Sábado",
	"sunday":    "Domingo",
}

const (
	defaultOpenTime  = "09:00"
	defaultCloseTime = "22:00"
)

// legacyDay is the older persisted shape with a single flat range.
type legacyDay struct {
	IsOpen    bool    `json:"isOpen"`
	Ranges    []Range `json:"ranges"`
	OpenTime  string  `json:"openTime"`
	CloseTime string  `json:"closeTime"`
}

// DefaultWeek returns the fallback schedule: every day open
// 09:00-22:00. New restaurants start open on purpose; an empty or
// broken schedule must never render the site as closed.
func DefaultWeek() Week {
	week := Week{}
	for _, day := range DayOrder {
		week[day] = Day{
			IsOpen: true,
			Ranges: []Range{{OpenTime: defaultOpenTime, CloseTime: defaultCloseTime}},
		}
	}
	return week
}

// Decode parses a persisted schedule. It accepts both the current
// ranges-array shape and the legacy flat openTime/closeTime shape,
// upgrading the latter. Missing or unparseable input yields the
// default-open week.
func Decode(raw []byte) Week {
	if len(raw) == 0 {
		return DefaultWeek()
	}

	var days map[string]legacyDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return DefaultWeek()
	}

	week := Week{}
	for _, name := range DayOrder {
		ld, ok := days[name]
		if !ok {
			week[name] = Day{
				IsOpen: true,
				Ranges: []Range{{OpenTime: defaultOpenTime, CloseTime: defaultCloseTime}},
			}
			continue
		}
		week[name] = upgradeDay(ld)
	}
	return week
}

func upgradeDay(ld legacyDay) Day {
	if !ld.IsOpen {
		return Day{IsOpen: false, Ranges: []Range{}}
	}
	if len(ld.Ranges) > 0 {
		return Day{IsOpen: true, Ranges: ld.Ranges}
	}
	// legacy shape: one flat range on the day itself
	if ld.OpenTime != "" && ld.CloseTime != "" {
		return Day{IsOpen: true, Ranges: []Range{{OpenTime: ld.OpenTime, CloseTime: ld.CloseTime}}}
	}
	return Day{IsOpen: true, Ranges: []Range{{OpenTime: defaultOpenTime, CloseTime: defaultCloseTime}}}
}

// Encode serializes a week in the current shape. Closed days always
// come out with an empty ranges array regardless of what they carried
// in memory.
func Encode(week Week) ([]byte, error) {
	out := map[string]Day{}
	for _, name := range DayOrder {
		day, ok := week[name]
		if !ok {
			day = Day{IsOpen: true, Ranges: []Range{{OpenTime: defaultOpenTime, CloseTime: defaultCloseTime}}}
		}
		if !day.IsOpen {
			day.Ranges = []Range{}
		} else if day.Ranges == nil {
			day.Ranges = []Range{}
		}
		out[name] = day
	}
	return json.Marshal(out)
}

// Preview renders the human-readable hours block shown on the menu
// page, one line per open day. If every day is closed the whole
// preview collapses to "Cerrado".
func Preview(week Week) string {
	var lines []string
	for _, name := range DayOrder {
		day, ok := week[name]
		if !ok || !day.IsOpen || len(day.Ranges) == 0 {
			continue
		}
		parts := make([]string, 0, len(day.Ranges))
		for _, r := range day.Ranges {
			parts = append(parts, fmt.Sprintf("%s - %s", r.OpenTime, r.CloseTime))
		}
		lines = append(lines, fmt.Sprintf("%s: %s", DayLabels[name], strings.Join(parts, ", ")))
	}
	if len(lines) == 0 {
		return "Cerrado"
	}
	return strings.Join(lines, "\n")
}
