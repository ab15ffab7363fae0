// Package daterange resolves dashboard date-range presets into concrete bounds.
package daterange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Preset string

const (
	Today      Preset = "today"
	Yesterday  Preset = "yesterday"
	Last7Days  Preset = "last_7_days"
	Last30Days Preset = "last_30_days"
	ThisMonth  Preset = "this_month"
	LastMonth  Preset = "last_month"
)

var (
	ErrUnknownPreset = errors.New("unknown date range preset")
	ErrInverted      = errors.New("date range start is after its end")
)

// Presets lists every preset in display order.
var Presets = []Preset{Today, Yesterday, Last7Days, Last30Days, ThisMonth, LastMonth}

// Range is an inclusive interval. A nil bound is open.
type Range struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// New builds a Range and rejects From after To.
func New(from, to *time.Time) (Range, error) {
	if from != nil && to != nil && from.After(*to) {
		return Range{}, fmt.Errorf("%w: %s > %s", ErrInverted, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return Range{From: from, To: to}, nil
}

func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// Resolve computes the bounds of p relative to now, in now's location.
// Bounds run from the start of the first day to the end of the last day.
func Resolve(p Preset, now time.Time) (Range, error) {
	today := startOfDay(now)

	switch p {
	case Today:
		return closed(today, endOfDay(today)), nil
	case Yesterday:
		y := today.AddDate(0, 0, -1)
		return closed(y, endOfDay(y)), nil
	case Last7Days:
		return closed(today.AddDate(0, 0, -6), endOfDay(today)), nil
	case Last30Days:
		return closed(today.AddDate(0, 0, -29), endOfDay(today)), nil
	case ThisMonth:
		return closed(startOfMonth(today), endOfDay(today)), nil
	case LastMonth:
		first := startOfMonth(today).AddDate(0, -1, 0)
		last := startOfMonth(today).AddDate(0, 0, -1)
		return closed(first, endOfDay(last)), nil
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
}

func (r Range) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

func (r Range) IsZero() bool {
	return r.From == nil && r.To == nil
}

func closed(from, to time.Time) Range {
	return Range{From: &from, To: &to}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
