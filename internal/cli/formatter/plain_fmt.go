package formatter

import (
	"fmt"
	"strings"

	"github.com/yurukusa/cc-standup/internal/domain"
)

const (
	ghostNotice = "👻 この日の作業ログはありません"
	plainFooter = "Generated by cc-standup"
)

// FormatPlain renders the full terminal report: title, per-project bullets,
// totals, the continuing-projects line and a footer. Ghost days get a fixed
// notice instead of the project sections.
func FormatPlain(r *domain.DayReport) string {
	lines := []string{StyleHeader.Render(titleLine(r)), ""}

	if r.Ghost {
		lines = append(lines, ghostNotice, "", Dim(plainFooter))
		return joinLines(lines)
	}

	for _, p := range r.Projects {
		lines = append(lines, fmt.Sprintf("- %s: %s / %d sessions / +%s lines",
			Bold(p.Name), FormatMinutes(p.Minutes), p.Sessions, Thousands(p.LinesAdded)))
	}

	lines = append(lines,
		"",
		"合計: "+totalsLine(r.Totals),
		"",
		"継続中: "+strings.Join(projectNames(r), ", "),
		"",
		Dim(plainFooter),
	)
	return joinLines(lines)
}
