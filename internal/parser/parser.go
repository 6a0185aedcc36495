// Package parser turns the raw text of a daily activity log into session
// records. A log is a sequence of blocks, each opened by a header line and
// closed by the next header or end of file:
//
//	### 2026-02-27 09:00-10:30 (JST)
//	📁 alpha
//	CC: 7件
//	3ファイル変更 (+120/-5)
//	作業時間 (90分)
//
// The four field lines are optional and order-insensitive. Anything else is
// ignored.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yurukusa/cc-standup/internal/domain"
)

var (
	headerPattern   = regexp.MustCompile(`^###\s+(\d{4}-\d{2}-\d{2})\s+\d{1,2}:\d{2}-\d{1,2}:\d{2}\s+\S+$`)
	projectPattern  = regexp.MustCompile(`^📁\s*(.+)$`)
	actionsPattern  = regexp.MustCompile(`^CC:\s*(\d+)件$`)
	changesPattern  = regexp.MustCompile(`(\d+)ファイル変更\s*\(\+(\d+)/-(\d+)\)`)
	durationPattern = regexp.MustCompile(`\((\d+)分\)$`)
)

// Parse extracts the ordered session sequence from log text. Sessions
// without a project line are included; filtering happens in aggregation.
// Parse never fails: unrecognized lines and malformed numeric captures are
// skipped, leaving the prior field value in place.
func Parse(text string) []domain.Session {
	var sessions []domain.Session
	var open *domain.Session

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			if open != nil {
				sessions = append(sessions, *open)
			}
			open = &domain.Session{Date: m[1]}
			continue
		}
		if open == nil {
			// Field lines before the first header have no session to
			// attach to.
			continue
		}

		switch {
		case projectPattern.MatchString(line):
			m := projectPattern.FindStringSubmatch(line)
			open.Project = strings.TrimSpace(m[1])
		case actionsPattern.MatchString(line):
			m := actionsPattern.FindStringSubmatch(line)
			setInt(&open.Actions, m[1])
		case changesPattern.MatchString(line):
			m := changesPattern.FindStringSubmatch(line)
			setInt(&open.FilesChanged, m[1])
			setInt(&open.LinesAdded, m[2])
			setInt(&open.LinesRemoved, m[3])
		case durationPattern.MatchString(line):
			m := durationPattern.FindStringSubmatch(line)
			setInt(&open.Minutes, m[1])
		}
	}

	if open != nil {
		sessions = append(sessions, *open)
	}
	return sessions
}

// setInt assigns the parsed value, leaving dst untouched when the capture
// does not fit an int.
func setInt(dst *int, capture string) {
	n, err := strconv.Atoi(capture)
	if err != nil {
		return
	}
	*dst = n
}
