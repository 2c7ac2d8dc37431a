package main

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func TestPeriodString(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{
			name:     "basic period",
			start:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
			expected: "2025-03-01 - 2025-03-31",
		},
		{
			name:     "cross year period",
			start:    time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: "2024-12-15 - 2025-01-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Period{
				start: tt.start,
				end:   tt.end,
			}
			be.Equal(t, tt.expected, p.String())
		})
	}
}

func TestPeriodDates(t *testing.T) {
	p := &Period{
		start: time.Date(2025, 3, 1, 10, 30, 45, 0, time.UTC),
		end:   time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
	}

	be.Equal(t, "2025-03-01", p.startDate().String())
	be.Equal(t, "2025-03-31", p.endDate().String())
}

func TestPeriodSetPeriod(t *testing.T) {
	tests := []struct {
		name        string
		current     time.Time
		periodType  string
		expectStart time.Time
		expectEnd   time.Time
	}{
		{
			name:        "monthly period - mid month",
			current:     time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
			periodType:  monthlyPeriodType,
			expectStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:        "annual period",
			current:     time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
			periodType:  annualPeriodType,
			expectStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:        "default to monthly",
			current:     time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC),
			periodType:  "invalid",
			expectStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Period{}
			p.setPeriod(tt.current, tt.periodType)

			be.Equal(t, tt.expectStart, p.start)
			be.Equal(t, tt.expectEnd, p.end)
		})
	}
}
