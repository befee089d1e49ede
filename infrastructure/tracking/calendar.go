package tracking

import "time"

// DayCell is one dated cell of the month grid. Cells with Day == 0 are
// leading/trailing blanks that pad the first and last week rows.
type DayCell struct {
	Day      int
	Date     time.Time
	Category Category
}

// Blank reports whether the cell is a padding placeholder.
func (c DayCell) Blank() bool {
	return c.Day == 0
}

// Week is one Sunday-first row of the month grid.
type Week [7]DayCell

// BuildGrid lays out the month as ordered week rows, classifying each day
// through resolve. The grid is derived state: identical inputs produce an
// identical grid, and callers rebuild it on every render.
func BuildGrid(year int, month time.Month, resolve func(time.Time) Category) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	weeks := make([]Week, (offset+daysInMonth+6)/7)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		slot := offset + day - 1
		weeks[slot/7][slot%7] = DayCell{
			Day:      day,
			Date:     date,
			Category: resolve(date),
		}
	}
	return weeks
}
