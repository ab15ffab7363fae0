package daterange_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/retail-ops/internal/daterange"
)

func at(y int, m time.Month, d, hh, mm, ss, ns int) *time.Time {
	t := time.Date(y, m, d, hh, mm, ss, ns, time.UTC)
	return &t
}

func dayEnd(y int, m time.Month, d int) *time.Time {
	return at(y, m, d, 23, 59, 59, 999999999)
}

func TestResolve(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		preset daterange.Preset
		want   daterange.Range
	}{
		{daterange.Today, daterange.Range{From: at(2024, 3, 15, 0, 0, 0, 0), To: dayEnd(2024, 3, 15)}},
		{daterange.Yesterday, daterange.Range{From: at(2024, 3, 14, 0, 0, 0, 0), To: dayEnd(2024, 3, 14)}},
		{daterange.Last7Days, daterange.Range{From: at(2024, 3, 9, 0, 0, 0, 0), To: dayEnd(2024, 3, 15)}},
		{daterange.Last30Days, daterange.Range{From: at(2024, 2, 15, 0, 0, 0, 0), To: dayEnd(2024, 3, 15)}},
		{daterange.ThisMonth, daterange.Range{From: at(2024, 3, 1, 0, 0, 0, 0), To: dayEnd(2024, 3, 15)}},
		{daterange.LastMonth, daterange.Range{From: at(2024, 2, 1, 0, 0, 0, 0), To: dayEnd(2024, 2, 29)}},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			got, err := daterange.Resolve(tt.preset, now)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(%s) mismatch (-want +got):\n%s", tt.preset, diff)
			}
		})
	}
}

func TestResolve_LastMonthAcrossYear(t *testing.T) {
	now := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

	got, err := daterange.Resolve(daterange.LastMonth, now)
	require.NoError(t, err)

	want := daterange.Range{From: at(2023, 12, 1, 0, 0, 0, 0), To: dayEnd(2023, 12, 31)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2024, time.March, 15, 1, 0, 0, 0, loc)

	got, err := daterange.Resolve(daterange.Today, now)
	require.NoError(t, err)
	require.NotNil(t, got.From)

	assert.Equal(t, loc, got.From.Location())
	assert.Equal(t, 15, got.From.Day())
}

func TestResolve_Unknown(t *testing.T) {
	_, err := daterange.Resolve("next_week", time.Now())
	assert.ErrorIs(t, err, daterange.ErrUnknownPreset)
}

func TestParsePreset(t *testing.T) {
	p, err := daterange.ParsePreset("  Last_7_Days ")
	require.NoError(t, err)
	assert.Equal(t, daterange.Last7Days, p)

	_, err = daterange.ParsePreset("fortnight")
	assert.ErrorIs(t, err, daterange.ErrUnknownPreset)
}

func TestNew(t *testing.T) {
	_, err := daterange.New(at(2024, 3, 2, 0, 0, 0, 0), at(2024, 3, 1, 0, 0, 0, 0))
	assert.ErrorIs(t, err, daterange.ErrInverted)

	r, err := daterange.New(nil, at(2024, 3, 1, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.False(t, r.IsZero())
}

func TestRange_Contains(t *testing.T) {
	mid := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	from := at(2024, 3, 1, 0, 0, 0, 0)
	to := dayEnd(2024, 3, 31)

	tests := []struct {
		name string
		r    daterange.Range
		t    time.Time
		want bool
	}{
		{"open_both", daterange.Range{}, mid, true},
		{"inside", daterange.Range{From: from, To: to}, mid, true},
		{"on_lower_bound", daterange.Range{From: from, To: to}, *from, true},
		{"on_upper_bound", daterange.Range{From: from, To: to}, *to, true},
		{"before", daterange.Range{From: from}, from.Add(-time.Second), false},
		{"after", daterange.Range{To: to}, to.Add(time.Nanosecond), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.t))
		})
	}
}
