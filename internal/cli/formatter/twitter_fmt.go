package formatter

import (
	"fmt"

	"github.com/yurukusa/cc-standup/internal/domain"
)

const (
	// Twitter/X post limit.
	twitterMaxChars = 280

	twitterGhostLine = "👻 ノーコーディングデー"
	twitterHashtags  = "#ClaudeCode #日報"
)

// FormatTwitter renders a micro-post: MM-DD date line, the top 3 projects
// by minutes, a totals line and a fixed hashtag line. Output never exceeds
// 280 characters; longer posts are cut to 277 plus "...".
func FormatTwitter(r *domain.DayReport) string {
	lines := []string{"📅 " + ShortDate(r.Date)}

	if r.Ghost {
		lines = append(lines, twitterGhostLine, twitterHashtags)
		return capLength(joinLines(lines))
	}

	top := r.Projects
	if len(top) > 3 {
		top = top[:3]
	}
	for _, p := range top {
		line := fmt.Sprintf("%s %s", p.Name, FormatMinutes(p.Minutes))
		if p.LinesAdded > 0 {
			line += fmt.Sprintf(" %s lines", KiloLines(p.LinesAdded))
		}
		lines = append(lines, line)
	}

	lines = append(lines,
		fmt.Sprintf("合計 %s / %d sessions", FormatMinutes(r.Totals.Minutes), r.Totals.Sessions),
		twitterHashtags,
	)
	return capLength(joinLines(lines))
}

// capLength enforces the post limit in runes, not bytes, so multi-byte text
// counts the way the platform counts it.
func capLength(post string) string {
	runes := []rune(post)
	if len(runes) <= twitterMaxChars {
		return post
	}
	return string(runes[:twitterMaxChars-3]) + "..."
}
