// Package kpi models the values shown on dashboard metric cards.
package kpi

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vasiliy-maslov/retail-ops/internal/lookup"
)

type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
	Neutral  Polarity = "neutral"
)

type Metric struct {
	Title  string   `json:"title"`
	Value  string   `json:"value"`
	Change *float64 `json:"change,omitempty"`
}

// NewMetric formats value for display. Floats keep two decimals; strings pass through.
func NewMetric(title string, value any, change *float64) Metric {
	return Metric{Title: title, Value: formatValue(value), Change: change}
}

func (m Metric) Polarity() Polarity {
	switch {
	case m.Change == nil || *m.Change == 0 || math.IsNaN(*m.Change):
		return Neutral
	case *m.Change > 0:
		return Positive
	default:
		return Negative
	}
}

// ChangeLabel renders Change as a signed percentage, e.g. "+12.5%".
func (m Metric) ChangeLabel() string {
	if m.Change == nil {
		return ""
	}
	return fmt.Sprintf("%+.1f%%", *m.Change)
}

// PercentChange returns the relative change from previous to current in percent,
// or nil when previous is zero.
func PercentChange(previous, current float64) *float64 {
	if previous == 0 {
		return nil
	}
	change := (current - previous) / math.Abs(previous) * 100
	return &change
}

// SummaryMetrics lays out a customer's order summary as metric cards.
func SummaryMetrics(s lookup.Summary) []Metric {
	return []Metric{
		NewMetric("Total Orders", s.TotalOrders, nil),
		NewMetric("Total Spent", s.TotalSpent, nil),
		NewMetric("Average Order Value", s.AverageOrderValue, nil),
		NewMetric("Opt-in Rate", fmt.Sprintf("%.1f%%", s.OptInRate), nil),
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', 2, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
