package domain

import "time"

// weekdayNames is indexed by time.Weekday (Sunday = 0).
var weekdayNames = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// ProjectAggregate holds the per-project sums over all retained sessions
// that share the same project label.
type ProjectAggregate struct {
	Name         string
	Minutes      int
	Sessions     int
	LinesAdded   int
	FilesChanged int
}

// Totals holds the day-wide sums over all retained sessions.
type Totals struct {
	Minutes      int
	Sessions     int
	LinesAdded   int
	FilesChanged int
	Actions      int
}

// DayReport is the aggregated view of one day's activity log, ready for
// formatting. Projects are sorted by minutes descending; ties keep their
// first-encounter order.
type DayReport struct {
	Date     string
	Ghost    bool
	Projects []ProjectAggregate
	Totals   Totals
}

// Weekday returns the Japanese single-character day name for the report
// date, or "" when the date string does not parse as YYYY-MM-DD.
func (r *DayReport) Weekday() string {
	t, err := time.ParseInLocation("2006-01-02", r.Date, time.Local)
	if err != nil {
		return ""
	}
	return weekdayNames[t.Weekday()]
}
