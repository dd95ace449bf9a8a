package model

import "fmt"

// IssueKind classifies a non-fatal input problem. No issue ever aborts a
// run; the affected record is dropped or excluded and scheduling continues.
type IssueKind string

const (
	// IssueInvalidInterval marks a shift or occupancy whose start is not
	// before its end (including cross-midnight shifts, which are out of
	// scope)
	IssueInvalidInterval IssueKind = "invalid_interval"

	// IssueMalformedRow marks a row that could not be parsed at all
	IssueMalformedRow IssueKind = "malformed_row"

	// IssueInconsistentData marks a record referencing a room with no
	// corresponding entry elsewhere
	IssueInconsistentData IssueKind = "inconsistent_data"
)

// Issue is one dropped or excluded input record, reported so a single bad
// row never blocks scheduling for the rest of campus.
type Issue struct {
	Source string
	Line   int
	Kind   IssueKind
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s line %d [%s]: %s", i.Source, i.Line, i.Kind, i.Detail)
}
