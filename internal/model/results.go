package model

import "sort"

// ResultsVersion is the version written to persisted results documents.
const ResultsVersion = 1

// Results is a persisted results document: one snapshot per named test.
type Results struct {
	Version int
	Tests   map[string]ResultSnapshot
}

// NewResults returns an empty results document at the current version.
func NewResults() Results {
	return Results{
		Version: ResultsVersion,
		Tests:   map[string]ResultSnapshot{},
	}
}

// TestNames returns the test names in sorted order.
func (r Results) TestNames() []string {
	names := make([]string, 0, len(r.Tests))
	for name := range r.Tests {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
