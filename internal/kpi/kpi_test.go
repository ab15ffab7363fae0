package kpi_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/retail-ops/internal/kpi"
	"github.com/vasiliy-maslov/retail-ops/internal/lookup"
)

func ptr(v float64) *float64 { return &v }

func TestNewMetric_FormatsValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 42, "42"},
		{"int64", int64(1200), "1200"},
		{"float", 19.5, "19.50"},
		{"string", "N/A", "N/A"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kpi.NewMetric("Revenue", tt.value, nil).Value)
		})
	}
}

func TestMetric_Polarity(t *testing.T) {
	assert.Equal(t, kpi.Positive, kpi.Metric{Change: ptr(4.2)}.Polarity())
	assert.Equal(t, kpi.Negative, kpi.Metric{Change: ptr(-0.1)}.Polarity())
	assert.Equal(t, kpi.Neutral, kpi.Metric{Change: ptr(0)}.Polarity())
	assert.Equal(t, kpi.Neutral, kpi.Metric{}.Polarity())
}

func TestMetric_ChangeLabel(t *testing.T) {
	assert.Equal(t, "+12.5%", kpi.Metric{Change: ptr(12.5)}.ChangeLabel())
	assert.Equal(t, "-3.0%", kpi.Metric{Change: ptr(-3)}.ChangeLabel())
	assert.Equal(t, "+0.0%", kpi.Metric{Change: ptr(0)}.ChangeLabel())
	assert.Empty(t, kpi.Metric{}.ChangeLabel())
}

func TestPercentChange(t *testing.T) {
	assert.Nil(t, kpi.PercentChange(0, 10))

	up := kpi.PercentChange(80, 100)
	require.NotNil(t, up)
	assert.InDelta(t, 25.0, *up, 1e-9)

	down := kpi.PercentChange(200, 150)
	require.NotNil(t, down)
	assert.InDelta(t, -25.0, *down, 1e-9)

	fromNegative := kpi.PercentChange(-50, -25)
	require.NotNil(t, fromNegative)
	assert.InDelta(t, 50.0, *fromNegative, 1e-9)
}

func TestSummaryMetrics(t *testing.T) {
	summary := lookup.Summary{
		TotalOrders:       3,
		TotalSpent:        60,
		AverageOrderValue: 20,
		OptInCount:        1,
		OptOutCount:       1,
		OptInRate:         100.0 / 3,
	}

	want := []kpi.Metric{
		{Title: "Total Orders", Value: "3"},
		{Title: "Total Spent", Value: "60.00"},
		{Title: "Average Order Value", Value: "20.00"},
		{Title: "Opt-in Rate", Value: "33.3%"},
	}
	if diff := cmp.Diff(want, kpi.SummaryMetrics(summary)); diff != "" {
		t.Errorf("SummaryMetrics mismatch (-want +got):\n%s", diff)
	}
}
