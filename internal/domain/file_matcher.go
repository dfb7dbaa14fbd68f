package domain

import (
	"slices"

	m "github.com/manbearwiz/betterer/internal/model"
)

// FilePair links a file of the expected snapshot to its counterpart in the
// result snapshot.
type FilePair struct {
	Expected m.FileSnapshot
	Result   m.FileSnapshot
}

// FileMatch classifies every file of two snapshots.
//
// Unchanged, Changed and Moved hold the pairs that need issue level diffing.
// Fixed holds expected files that disappeared, New holds result files that
// have no counterpart.
type FileMatch struct {
	Unchanged []FilePair
	Changed   []FilePair
	Moved     []FilePair
	Fixed     []m.FileSnapshot
	New       []m.FileSnapshot
}

// Pairs returns the matched pairs keyed by result path.
func (fm FileMatch) Pairs() map[m.Path]FilePair {
	pairs := make(map[m.Path]FilePair, len(fm.Unchanged)+len(fm.Changed)+len(fm.Moved))

	for _, group := range [][]FilePair{fm.Unchanged, fm.Changed, fm.Moved} {
		for _, pair := range group {
			pairs[pair.Result.AbsolutePath] = pair
		}
	}

	return pairs
}

// MatchFiles resolves file identity between expected and result.
//
// A file that vanished from expected is paired with the first new result file
// carrying the same content hash. When several old files share a hash only
// the first is reported as moved. Files without a hash are never moves.
func MatchFiles(expected, result m.ResultSnapshot) FileMatch {
	var (
		match      FileMatch
		newOrMoved []m.FileSnapshot
	)

	for _, file := range result.Files() {
		prior, ok := expected.Get(file.AbsolutePath)

		switch {
		case !ok:
			newOrMoved = append(newOrMoved, file)
		case prior.Hash == file.Hash:
			match.Unchanged = append(match.Unchanged, FilePair{Expected: prior, Result: file})
		default:
			match.Changed = append(match.Changed, FilePair{Expected: prior, Result: file})
		}
	}

	for _, file := range expected.Files() {
		if result.Has(file.AbsolutePath) {
			continue
		}

		i := slices.IndexFunc(newOrMoved, func(candidate m.FileSnapshot) bool {
			return file.Hash != "" && candidate.Hash == file.Hash
		})
		if i < 0 {
			match.Fixed = append(match.Fixed, file)
			continue
		}

		match.Moved = append(match.Moved, FilePair{Expected: file, Result: newOrMoved[i]})
		newOrMoved = slices.Delete(newOrMoved, i, i+1)
	}

	match.New = newOrMoved

	return match
}
