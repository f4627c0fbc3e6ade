package booking

import (
	"fmt"
	"time"
)

// MonthGrid describes the fixed 7-column day grid for one viewed month:
// leading blank cells up to the weekday of day 1 (Sunday = 0), then one
// cell per day of the month.
type MonthGrid struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	MonthName     string `json:"monthName"`
	LeadingBlanks int    `json:"leadingBlanks"`
	DaysInMonth   int    `json:"daysInMonth"`
}

// BuildMonthGrid computes the grid for the given month. Out-of-range month
// values are normalized the way time.Date normalizes them, so callers can
// shift months without wrap-around arithmetic.
func BuildMonthGrid(year, month int) MonthGrid {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return MonthGrid{
		Year:          first.Year(),
		Month:         int(first.Month()),
		MonthName:     first.Month().String(),
		LeadingBlanks: int(first.Weekday()),
		DaysInMonth:   daysInMonth(first.Year(), int(first.Month())),
	}
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GenerateTimeSlots returns the fixed half-hour slots offered for booking:
// 9:00 through 17:30, 18 entries, independent of the selected date. Slots
// are not filtered by availability or weekday.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, 18)
	for h := 9; h <= 17; h++ {
		slots = append(slots, fmt.Sprintf("%d:00", h))
		slots = append(slots, fmt.Sprintf("%d:30", h))
	}
	return slots
}

// FormatDate renders a calendar date the way the widget submits it.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func isValidSlot(slot string) bool {
	for _, s := range GenerateTimeSlots() {
		if s == slot {
			return true
		}
	}
	return false
}
