// Package formatter renders day reports for the terminal, Slack and
// Twitter/X. All formatting functions are pure: DayReport in, string out.
package formatter

import "github.com/yurukusa/cc-standup/internal/domain"

// Format renders the report in the requested output format.
func Format(r *domain.DayReport, f domain.Format) string {
	switch f {
	case domain.FormatSlack:
		return FormatSlack(r)
	case domain.FormatTwitter:
		return FormatTwitter(r)
	default:
		return FormatPlain(r)
	}
}
