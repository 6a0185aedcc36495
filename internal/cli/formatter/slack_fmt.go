package formatter

import (
	"fmt"
	"strings"

	"github.com/yurukusa/cc-standup/internal/domain"
)

// FormatSlack renders the report as Slack markup: bold title and totals
// label, project names as inline code, no blank lines, no per-project
// session counts and no footer. The continuing line is omitted when the day
// has no projects.
func FormatSlack(r *domain.DayReport) string {
	lines := []string{"*" + titleLine(r) + "*"}

	if r.Ghost {
		lines = append(lines, ghostNotice)
		return joinLines(lines)
	}

	for _, p := range r.Projects {
		lines = append(lines, fmt.Sprintf("• `%s`: %s (+%s lines)",
			p.Name, FormatMinutes(p.Minutes), Thousands(p.LinesAdded)))
	}

	lines = append(lines, "*合計:* "+totalsLine(r.Totals))

	if len(r.Projects) > 0 {
		quoted := make([]string, 0, len(r.Projects))
		for _, name := range projectNames(r) {
			quoted = append(quoted, "`"+name+"`")
		}
		lines = append(lines, "継続中: "+strings.Join(quoted, ", "))
	}
	return joinLines(lines)
}
