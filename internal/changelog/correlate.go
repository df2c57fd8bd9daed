package changelog

import "strings"

// Correlate pairs every non-blank metadata line with the date and build lines
// at the same ordinal.
//
// Blank metadata lines are skipped but still consume their ordinal, so the
// line after a blank one reads dates[i+1], not dates[i]. Existing exports
// depend on this.
func Correlate(s *Sources) ([]Row, error) {
	rows := make([]Row, 0, len(s.PullRequests))

	for i, raw := range s.PullRequests {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		// +2: one for the dropped header, one for 1-based numbering.
		line := i + 2

		if i >= len(s.Dates) {
			return nil, &IndexOutOfRangeError{Source: RoleDates, Index: i, Length: len(s.Dates), Line: line}
		}
		if i >= len(s.Builds) {
			return nil, &IndexOutOfRangeError{Source: RoleBuilds, Index: i, Length: len(s.Builds), Line: line}
		}

		rows = append(rows, Row{
			Index:    i,
			Line:     line,
			Metadata: raw,
			Date:     s.Dates[i],
			Build:    s.Builds[i],
		})
	}

	return rows, nil
}
