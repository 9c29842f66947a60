package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyFile is returned when the workbook contains no sheets.
	ErrEmptyFile = errors.New("the Excel file is empty")
	// ErrEmptyData is returned when the first sheet has no data rows.
	ErrEmptyData = errors.New("no data found in Excel")
	// ErrMultipleRows is returned when the first sheet has more than one
	// data row. One upload encodes exactly one candidate profile;
	// rejecting loudly beats silently truncating a multi-candidate file.
	ErrMultipleRows = errors.New("the file must contain only one row of data")
)

// MissingColumnError reports that none of a field's accepted column
// names matched a populated cell. Aliases is the full search list so the
// message is actionable for the recruiter fixing the file.
type MissingColumnError struct {
	Aliases []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column not found, expected: %s", strings.Join(e.Aliases, ", "))
}

// InvalidSeniorityError reports a seniority cell outside the closed
// junior/senior domain.
type InvalidSeniorityError struct {
	Value string
}

func (e *InvalidSeniorityError) Error() string {
	return fmt.Sprintf(`seniority must be "junior" or "senior", got %q`, e.Value)
}

// InvalidYearsError reports a years-of-experience cell that is not a
// number in [0, 50].
type InvalidYearsError struct {
	Value string
}

func (e *InvalidYearsError) Error() string {
	return fmt.Sprintf("years of experience must be a number between 0 and 50, got %q", e.Value)
}
