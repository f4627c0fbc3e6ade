package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMonthGrid(t *testing.T) {
	tests := []struct {
		name          string
		year, month   int
		leadingBlanks int
		daysInMonth   int
	}{
		{"february leap year", 2024, 2, 4, 29},       // Feb 1 2024 is a Thursday
		{"february common year", 2023, 2, 3, 28},     // Feb 1 2023 is a Wednesday
		{"march 2025", 2025, 3, 6, 31},               // Mar 1 2025 is a Saturday
		{"month starting on sunday", 2024, 9, 0, 30}, // Sep 1 2024 is a Sunday
		{"january 2024", 2024, 1, 1, 31},             // Jan 1 2024 is a Monday
		{"century leap year", 2000, 2, 2, 29},
		{"century common year", 1900, 2, 4, 28},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid := BuildMonthGrid(tc.year, tc.month)
			assert.Equal(t, tc.year, grid.Year)
			assert.Equal(t, tc.month, grid.Month)
			assert.Equal(t, tc.leadingBlanks, grid.LeadingBlanks)
			assert.Equal(t, tc.daysInMonth, grid.DaysInMonth)
		})
	}
}

func TestBuildMonthGridNormalizesOutOfRangeMonths(t *testing.T) {
	next := BuildMonthGrid(2024, 13)
	assert.Equal(t, 2025, next.Year)
	assert.Equal(t, 1, next.Month)

	prev := BuildMonthGrid(2025, 0)
	assert.Equal(t, 2024, prev.Year)
	assert.Equal(t, 12, prev.Month)
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots()

	assert.Len(t, slots, 18)
	assert.Equal(t, "9:00", slots[0])
	assert.Equal(t, "9:30", slots[1])
	assert.Equal(t, "17:00", slots[16])
	assert.Equal(t, "17:30", slots[17])

	// The slot list is static; repeated calls always agree.
	assert.Equal(t, slots, GenerateTimeSlots())
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2025-03-12", FormatDate(2025, 3, 12))
	assert.Equal(t, "2024-01-05", FormatDate(2024, 1, 5))
	assert.Equal(t, "2024-12-31", FormatDate(2024, 12, 31))
}
