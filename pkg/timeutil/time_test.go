package timeutil

import (
	"testing"
	"time"
)

func TestNow_AlwaysUTC(t *testing.T) {
	now := Now()

	if now.Location() != time.UTC {
		t.Errorf("Now() returned non-UTC timezone: %v", now.Location())
	}
}

func TestISODate(t *testing.T) {
	oslo := time.FixedZone("CET", 60*60)

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "midnight UTC",
			input:    time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			expected: "2025-11-20",
		},
		{
			name:     "late evening UTC",
			input:    time.Date(2025, 11, 20, 23, 59, 59, 0, time.UTC),
			expected: "2025-11-20",
		},
		{
			name:     "offset zone converted to UTC",
			input:    time.Date(2025, 11, 21, 0, 30, 0, 0, oslo),
			expected: "2025-11-20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISODate(tt.input); got != tt.expected {
				t.Errorf("ISODate() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDaysFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		days     int
		expected string
	}{
		{
			name:     "two days ahead",
			input:    time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC),
			days:     2,
			expected: "2025-11-22",
		},
		{
			name:     "across month boundary",
			input:    time.Date(2025, 11, 30, 8, 0, 0, 0, time.UTC),
			days:     2,
			expected: "2025-12-02",
		},
		{
			name:     "across leap day",
			input:    time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC),
			days:     2,
			expected: "2024-03-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysFrom(tt.input, tt.days); got != tt.expected {
				t.Errorf("DaysFrom() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseISODate(t *testing.T) {
	got, err := ParseISODate("2025-11-22")
	if err != nil {
		t.Fatalf("ParseISODate() error = %v", err)
	}
	if got.Location() != time.UTC {
		t.Errorf("ParseISODate() returned non-UTC: %v", got.Location())
	}
	if !got.Equal(time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseISODate() = %v, want midnight", got)
	}

	if _, err := ParseISODate("22.11.2025"); err == nil {
		t.Error("ParseISODate() expected error for non-ISO input")
	}
}
