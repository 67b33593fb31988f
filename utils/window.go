package utils

import "time"

// WeekWindow returns the half-open window starting at the most recent Sunday
// at local midnight and ending seven days later.
func WeekWindow(now time.Time) (time.Time, time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := midnight.AddDate(0, 0, -int(now.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// MonthWindow returns the half-open window covering the current calendar
// month: the first of the month through the first of the next month.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// DayWindow returns the inclusive bounds of a single calendar day,
// 00:00:00.000 through 23:59:59.999 in the date's location.
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999e6, date.Location())
	return start, end
}

// ParseDate parses a calendar date path parameter in local time.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}
