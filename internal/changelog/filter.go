package changelog

// DefaultExcludeComponent is the internal-only component whose records are
// left out of the change log.
const DefaultExcludeComponent = "Verification"

// IsUserRelevant reports whether a record belongs in the change log.
// A record is dropped only when its sole component is the excluded one;
// records with no components or several components always pass.
func IsUserRelevant(rec Record, excluded string) bool {
	return !(len(rec.Components) == 1 && rec.Components[0] == excluded)
}

// Filter returns the user-relevant records, preserving input order.
func Filter(records []Record, excluded string) []Record {
	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if IsUserRelevant(rec, excluded) {
			kept = append(kept, rec)
		}
	}
	return kept
}
