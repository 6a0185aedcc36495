package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yurukusa/cc-standup/internal/domain"
)

// FormatMinutes converts raw minutes into "Xh Ym", or "Ym" under an hour.
func FormatMinutes(min int) string {
	if min < 0 {
		min = 0
	}
	h := min / 60
	m := min % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// Thousands renders n with thousands separators, e.g. 15000 -> "15,000".
func Thousands(n int) string {
	return humanize.Comma(int64(n))
}

// KiloLines renders an added-line count compactly: "+15.0K" from 1000 up,
// "+120" below.
func KiloLines(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("+%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("+%d", n)
}

// ShortDate renders a YYYY-MM-DD date as MM-DD, passing the input through
// unchanged when it does not parse.
func ShortDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("01-02")
}

// titleLine builds "<date> (<weekday>) の作業まとめ", omitting the weekday
// part when the date does not parse.
func titleLine(r *domain.DayReport) string {
	if wd := r.Weekday(); wd != "" {
		return fmt.Sprintf("📅 %s (%s) の作業まとめ", r.Date, wd)
	}
	return fmt.Sprintf("📅 %s の作業まとめ", r.Date)
}

// projectNames returns all project names sorted alphabetically, for the
// continuing line.
func projectNames(r *domain.DayReport) []string {
	names := make([]string, 0, len(r.Projects))
	for _, p := range r.Projects {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// totalsLine builds the shared totals segment:
// "1h 30m | 1 sessions | +120 lines | 3 files".
func totalsLine(t domain.Totals) string {
	return fmt.Sprintf("%s | %d sessions | %s lines | %d files",
		FormatMinutes(t.Minutes), t.Sessions,
		"+"+Thousands(t.LinesAdded), t.FilesChanged)
}

// joinLines joins non-empty report lines with single newlines.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
