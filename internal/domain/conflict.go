package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedConflict is returned for unbalanced git conflict markers.
var ErrMalformedConflict = errors.New("malformed merge conflict")

const (
	markerOurs   = "<<<<<<<"
	markerBase   = "|||||||"
	markerSplit  = "======="
	markerTheirs = ">>>>>>>"
)

// ConflictSides holds the two versions recovered from a conflicted document.
type ConflictSides struct {
	Ours       string
	Theirs     string
	Conflicted bool
}

type conflictState int

const (
	stateShared conflictState = iota
	stateOurs
	stateBase
	stateTheirs
)

// SplitConflict separates a document containing git conflict markers into
// "ours" and "theirs". Lines outside conflict hunks belong to both sides and
// diff3 base sections are dropped. A document without markers yields itself
// on both sides.
func SplitConflict(content string) (ConflictSides, error) {
	var (
		ours, theirs strings.Builder
		state        = stateShared
		conflicted   bool
	)

	lines := strings.SplitAfter(content, "\n")

	for i, line := range lines {
		marker := strings.TrimRight(line, "\r\n")

		switch {
		case strings.HasPrefix(marker, markerOurs):
			if state != stateShared {
				return ConflictSides{}, fmt.Errorf("%w: nested %s on line %d", ErrMalformedConflict, markerOurs, i+1)
			}

			state = stateOurs
			conflicted = true
		case strings.HasPrefix(marker, markerBase) && state == stateOurs:
			state = stateBase
		case marker == markerSplit && (state == stateOurs || state == stateBase):
			state = stateTheirs
		case strings.HasPrefix(marker, markerTheirs):
			if state != stateTheirs {
				return ConflictSides{}, fmt.Errorf("%w: unexpected %s on line %d", ErrMalformedConflict, markerTheirs, i+1)
			}

			state = stateShared
		default:
			switch state {
			case stateShared:
				ours.WriteString(line)
				theirs.WriteString(line)
			case stateOurs:
				ours.WriteString(line)
			case stateTheirs:
				theirs.WriteString(line)
			case stateBase:
			}
		}
	}

	if state != stateShared {
		return ConflictSides{}, fmt.Errorf("%w: unterminated conflict", ErrMalformedConflict)
	}

	return ConflictSides{Ours: ours.String(), Theirs: theirs.String(), Conflicted: conflicted}, nil
}
