package report

import (
	"sort"

	"github.com/yurukusa/cc-standup/internal/domain"
)

// Build aggregates parsed sessions into a DayReport for the requested date.
// Sessions without a project are dropped. Project buckets keep their
// first-encounter order among equal minute totals.
func Build(date string, sessions []domain.Session) *domain.DayReport {
	index := make(map[string]int)
	var projects []domain.ProjectAggregate
	var totals domain.Totals

	for _, s := range sessions {
		if !s.HasProject() {
			continue
		}

		i, ok := index[s.Project]
		if !ok {
			projects = append(projects, domain.ProjectAggregate{Name: s.Project})
			i = len(projects) - 1
			index[s.Project] = i
		}

		p := &projects[i]
		p.Minutes += s.Minutes
		p.Sessions++
		p.LinesAdded += s.LinesAdded
		p.FilesChanged += s.FilesChanged

		totals.Minutes += s.Minutes
		totals.Sessions++
		totals.LinesAdded += s.LinesAdded
		totals.FilesChanged += s.FilesChanged
		totals.Actions += s.Actions
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Minutes > projects[j].Minutes
	})

	return &domain.DayReport{
		Date:     date,
		Ghost:    totals.Sessions == 0,
		Projects: projects,
		Totals:   totals,
	}
}
