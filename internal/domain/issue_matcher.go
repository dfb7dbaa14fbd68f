package domain

import (
	"fmt"
	"slices"

	m "github.com/manbearwiz/betterer/internal/model"
)

// IssueDiff classifies the issues of one matched file pair.
//
// Unchanged and Moved carry result side issues, Fixed carries expected side
// issues and New carries result side issues.
type IssueDiff struct {
	Unchanged []m.Issue
	Moved     []m.Issue
	Fixed     []m.Issue
	New       []m.Issue
}

// Existing returns the issues that are still present, unchanged first.
func (d IssueDiff) Existing() []m.Issue {
	if len(d.Unchanged)+len(d.Moved) == 0 {
		return nil
	}

	return slices.Concat(d.Unchanged, d.Moved)
}

// Reportable reports whether the file gained or lost an issue. Files whose
// issues only moved are not worth reporting.
func (d IssueDiff) Reportable() bool {
	return len(d.Fixed) > 0 || len(d.New) > 0
}

// FileDiff converts a reportable issue diff into its serialised form.
func (d IssueDiff) FileDiff() m.FileDiff {
	return m.FileDiff{
		Fixed:    m.SerialiseIssues(d.Fixed),
		New:      m.SerialiseIssues(d.New),
		Existing: m.SerialiseIssues(d.Existing()),
	}
}

// DiffIssues resolves issue identity between the expected and result issues
// of one file. Neither input is modified.
func DiffIssues(expected, result []m.Issue) IssueDiff {
	var diff IssueDiff

	// Expected indices by key, consumed front to back so duplicates pair one to one.
	pending := make(map[m.IssueKey][]int, len(expected))
	for i, issue := range expected {
		pending[issue.Key()] = append(pending[issue.Key()], i)
	}

	consumed := make([]bool, len(expected))
	newOrMoved := make([]m.Issue, 0, len(result))

	for _, issue := range result {
		queue := pending[issue.Key()]
		if len(queue) == 0 {
			newOrMoved = append(newOrMoved, issue)
			continue
		}

		consumed[queue[0]] = true
		pending[issue.Key()] = queue[1:]
		diff.Unchanged = append(diff.Unchanged, issue)
	}

	for i, issue := range expected {
		if consumed[i] {
			continue
		}

		candidates := make([]int, 0)

		for j, candidate := range newOrMoved {
			if candidate.Hash == issue.Hash {
				candidates = append(candidates, j)
			}
		}

		if len(candidates) == 0 {
			diff.Fixed = append(diff.Fixed, issue)
			continue
		}

		best := nearestIssue(issue, newOrMoved, candidates)
		diff.Moved = append(diff.Moved, newOrMoved[best])
		newOrMoved = slices.Delete(newOrMoved, best, best+1)
	}

	if len(newOrMoved) > 0 {
		diff.New = newOrMoved
	}

	return diff
}

// nearestIssue returns the index into pool of the candidate closest to
// target: smallest line distance, then smallest column distance. The first
// candidate wins unless a later one is strictly closer.
func nearestIssue(target m.Issue, pool []m.Issue, candidates []int) int {
	best := -1

	for _, i := range candidates {
		if best < 0 {
			best = i
			continue
		}

		candidateLine := distance(target.Line, pool[i].Line)
		bestLine := distance(target.Line, pool[best].Line)

		if candidateLine < bestLine {
			best = i
			continue
		}

		if candidateLine == bestLine && distance(target.Column, pool[i].Column) < distance(target.Column, pool[best].Column) {
			best = i
		}
	}

	if best < 0 {
		panic(fmt.Sprintf("no move candidate for issue %q at %d:%d", target.Hash, target.Line, target.Column))
	}

	return best
}

func distance(a, b uint) uint {
	if a > b {
		return a - b
	}

	return b - a
}
