package domain

// Session is one contiguous work block extracted from a daily activity log,
// delimited by a header line and ending at the next header or end of file.
type Session struct {
	Date         string
	Minutes      int
	Project      string // "" means no project line was recognized
	Actions      int
	FilesChanged int
	LinesAdded   int
	LinesRemoved int
}

// HasProject reports whether the session carries a project label and is
// therefore retained for aggregation.
func (s *Session) HasProject() bool {
	return s.Project != ""
}
