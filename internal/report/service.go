// Package report builds the aggregated day report from a daily activity log.
package report

import (
	"os"
	"path/filepath"

	"github.com/yurukusa/cc-standup/internal/config"
	"github.com/yurukusa/cc-standup/internal/domain"
	"github.com/yurukusa/cc-standup/internal/parser"
)

// Service locates and reads the activity log for a date and produces the
// DayReport. A missing or unreadable log is a ghost day, not an error.
type Service struct {
	cfg config.Config
}

func NewService(cfg config.Config) *Service {
	return &Service{cfg: cfg}
}

// Generate reads the log file for the given date and aggregates it. The
// date string is used verbatim to build the file name.
func (s *Service) Generate(date string) *domain.DayReport {
	path := filepath.Join(s.cfg.LogDir, date+s.cfg.LogExt)

	data, err := os.ReadFile(path)
	if err != nil {
		return Build(date, nil)
	}
	return Build(date, parser.Parse(string(data)))
}
