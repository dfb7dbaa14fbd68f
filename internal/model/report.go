package model

// TestStatus is the outcome of comparing one test against its recorded results.
type TestStatus int

const (
	// Same indicates no issue was fixed or added. Moved issues count as same.
	Same TestStatus = iota
	// Better indicates issues were fixed and none were added.
	Better
	// Worse indicates at least one new issue.
	Worse
	// New indicates the test has no recorded results yet.
	New
	// Obsolete indicates recorded results for a test that no longer runs.
	Obsolete
)

func (s TestStatus) String() string {
	switch s {
	case Same:
		return "same"
	case Better:
		return "better"
	case Worse:
		return "worse"
	case New:
		return "new"
	case Obsolete:
		return "obsolete"
	default:
		return "unknown"
	}
}

// TestReport is the result of diffing one named test.
type TestReport struct {
	Name           string
	Status         TestStatus
	Diff           Diff
	ExpectedIssues int
	ResultIssues   int
}

// Changed reports whether accepting this report would rewrite the test's
// recorded results.
func (r TestReport) Changed() bool {
	return r.Status != Same
}
