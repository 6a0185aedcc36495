package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurukusa/cc-standup/internal/domain"
)

func TestBuild_GroupsByProject(t *testing.T) {
	sessions := []domain.Session{
		{Project: "alpha", Minutes: 60, LinesAdded: 100, FilesChanged: 2, Actions: 3},
		{Project: "beta", Minutes: 30, LinesAdded: 50, FilesChanged: 1, Actions: 1},
		{Project: "alpha", Minutes: 30, LinesAdded: 20, FilesChanged: 1, Actions: 2},
	}

	r := Build("2026-02-27", sessions)
	require.Len(t, r.Projects, 2)
	assert.False(t, r.Ghost)

	alpha := r.Projects[0]
	assert.Equal(t, "alpha", alpha.Name)
	assert.Equal(t, 90, alpha.Minutes)
	assert.Equal(t, 2, alpha.Sessions)
	assert.Equal(t, 120, alpha.LinesAdded)
	assert.Equal(t, 3, alpha.FilesChanged)

	assert.Equal(t, domain.Totals{
		Minutes: 120, Sessions: 3, LinesAdded: 170, FilesChanged: 4, Actions: 6,
	}, r.Totals)
}

func TestBuild_TotalMinutesEqualsProjectSum(t *testing.T) {
	sessions := []domain.Session{
		{Project: "a", Minutes: 25},
		{Project: "b", Minutes: 45},
		{Project: "a", Minutes: 10},
		{Minutes: 500}, // no project, must not count
	}

	r := Build("2026-02-27", sessions)

	sum := 0
	for _, p := range r.Projects {
		sum += p.Minutes
	}
	assert.Equal(t, 80, sum)
	assert.Equal(t, 80, r.Totals.Minutes)
}

func TestBuild_DropsSessionsWithoutProject(t *testing.T) {
	sessions := []domain.Session{
		{Minutes: 90, LinesAdded: 1000},
	}

	r := Build("2026-02-27", sessions)
	assert.Empty(t, r.Projects)
	assert.True(t, r.Ghost)
	assert.Zero(t, r.Totals.Minutes)
}

func TestBuild_SortsByMinutesDescending(t *testing.T) {
	sessions := []domain.Session{
		{Project: "alpha", Minutes: 30},
		{Project: "beta", Minutes: 90},
		{Project: "gamma", Minutes: 60},
	}

	r := Build("2026-02-27", sessions)
	require.Len(t, r.Projects, 3)
	assert.Equal(t, "beta", r.Projects[0].Name)
	assert.Equal(t, "gamma", r.Projects[1].Name)
	assert.Equal(t, "alpha", r.Projects[2].Name)
}

func TestBuild_TiesKeepEncounterOrder(t *testing.T) {
	sessions := []domain.Session{
		{Project: "zeta", Minutes: 30},
		{Project: "alpha", Minutes: 30},
		{Project: "mid", Minutes: 60},
	}

	r := Build("2026-02-27", sessions)
	require.Len(t, r.Projects, 3)
	assert.Equal(t, "mid", r.Projects[0].Name)
	assert.Equal(t, "zeta", r.Projects[1].Name)
	assert.Equal(t, "alpha", r.Projects[2].Name)
}

func TestBuild_GhostIffNoRetainedSessions(t *testing.T) {
	assert.True(t, Build("2026-02-27", nil).Ghost)
	assert.True(t, Build("2026-02-27", []domain.Session{{Minutes: 10}}).Ghost)
	assert.False(t, Build("2026-02-27", []domain.Session{{Project: "a"}}).Ghost)
}
