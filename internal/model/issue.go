// Package model defines the data structures for tracking issues across runs.
package model

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// ErrInvalidIssue is returned when a serialised issue cannot be decoded.
var ErrInvalidIssue = errors.New("invalid issue")

// serialisedIssueLen is the number of elements of the storage tuple.
const serialisedIssueLen = 5

// Issue is a single finding located in a file.
//
// Line and Column are zero-based offsets as reported by the analyzer. Hash
// fingerprints the finding independently of its position and is only ever
// compared, never computed here.
type Issue struct {
	Line    uint
	Column  uint
	Length  uint
	Message string
	Hash    string
}

// IssueKey identifies an issue within a single file.
type IssueKey struct {
	Line   uint
	Column uint
	Length uint
	Hash   string
}

// Key returns the equality key of the issue.
func (i Issue) Key() IssueKey {
	return IssueKey{
		Line:   i.Line,
		Column: i.Column,
		Length: i.Length,
		Hash:   i.Hash,
	}
}

// SerialisedIssue is the storage form of an Issue:
// line, column, length, message, hash.
type SerialisedIssue [serialisedIssueLen]any

// Serialise converts the issue to its storage tuple.
func (i Issue) Serialise() SerialisedIssue {
	return SerialisedIssue{i.Line, i.Column, i.Length, i.Message, i.Hash}
}

// SerialiseIssues converts a list of issues to storage tuples.
func SerialiseIssues(issues []Issue) []SerialisedIssue {
	if len(issues) == 0 {
		return nil
	}

	serialised := make([]SerialisedIssue, 0, len(issues))
	for _, issue := range issues {
		serialised = append(serialised, issue.Serialise())
	}

	return serialised
}

// ParseSerialisedIssue decodes a storage tuple produced by any of the results
// codecs. Integer coordinates may arrive as any Go numeric type; negative or
// fractional values are rejected.
func ParseSerialisedIssue(raw []any) (Issue, error) {
	if len(raw) != serialisedIssueLen {
		return Issue{}, fmt.Errorf("%w: expected %d elements, got %d", ErrInvalidIssue, serialisedIssueLen, len(raw))
	}

	var (
		issue Issue
		err   error
	)

	if issue.Line, err = toUint(raw[0]); err != nil {
		return Issue{}, fmt.Errorf("%w: line: %w", ErrInvalidIssue, err)
	}

	if issue.Column, err = toUint(raw[1]); err != nil {
		return Issue{}, fmt.Errorf("%w: column: %w", ErrInvalidIssue, err)
	}

	if issue.Length, err = toUint(raw[2]); err != nil {
		return Issue{}, fmt.Errorf("%w: length: %w", ErrInvalidIssue, err)
	}

	var ok bool
	if issue.Message, ok = raw[3].(string); !ok {
		return Issue{}, fmt.Errorf("%w: message must be a string, got %T", ErrInvalidIssue, raw[3])
	}

	if issue.Hash, ok = raw[4].(string); !ok {
		return Issue{}, fmt.Errorf("%w: hash must be a string, got %T", ErrInvalidIssue, raw[4])
	}

	return issue, nil
}

func toUint(value any) (uint, error) {
	switch n := value.(type) {
	case uint:
		return n, nil
	case uint8:
		return safecast.Conv[uint](n)
	case uint16:
		return safecast.Conv[uint](n)
	case uint32:
		return safecast.Conv[uint](n)
	case uint64:
		return safecast.Conv[uint](n)
	case int:
		return safecast.Conv[uint](n)
	case int8:
		return safecast.Conv[uint](n)
	case int16:
		return safecast.Conv[uint](n)
	case int32:
		return safecast.Conv[uint](n)
	case int64:
		return safecast.Conv[uint](n)
	case float64:
		// Rejects negatives, fractions and values outside the uint range.
		return safecast.Convert[uint](n)
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", value)
	}
}
