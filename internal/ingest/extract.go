package ingest

import (
	"math"
	"strings"

	"github.com/Larissacdias1/scib-candidates-platform/internal/domain"
)

// Accepted column names per attribute, in priority order. This table is
// part of the upload format contract.
var (
	seniorityAliases    = []string{"seniority", "level"}
	yearsAliases        = []string{"years", "yearsofexperience", "years_of_experience", "experience"}
	availabilityAliases = []string{"availability", "available"}
)

// Attributes is the validated spreadsheet payload of one candidate.
type Attributes struct {
	Seniority         domain.Seniority
	YearsOfExperience int
	Availability      bool
}

// Parse runs the full ingestion pipeline on raw workbook bytes: decode
// the single data row, resolve each attribute column and validate its
// value domain. It fails on the first malformed input.
func Parse(data []byte) (Attributes, error) {
	row, err := ReadOne(data)
	if err != nil {
		return Attributes{}, err
	}
	return parseRow(row)
}

func parseRow(row Row) (Attributes, error) {
	seniority, err := extractSeniority(row)
	if err != nil {
		return Attributes{}, err
	}
	years, err := extractYears(row)
	if err != nil {
		return Attributes{}, err
	}
	availability, err := extractAvailability(row)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Seniority:         seniority,
		YearsOfExperience: years,
		Availability:      availability,
	}, nil
}

func extractSeniority(row Row) (domain.Seniority, error) {
	value, err := resolveColumn(row, seniorityAliases)
	if err != nil {
		return "", err
	}

	normalized := strings.TrimSpace(strings.ToLower(value.Text()))
	switch s := domain.Seniority(normalized); s {
	case domain.SeniorityJunior, domain.SenioritySenior:
		return s, nil
	default:
		return "", &InvalidSeniorityError{Value: value.Text()}
	}
}

func extractYears(row Row) (int, error) {
	value, err := resolveColumn(row, yearsAliases)
	if err != nil {
		return 0, err
	}

	parsed, ok := value.Float()
	if !ok || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed < 0 || parsed > 50 {
		return 0, &InvalidYearsError{Value: value.Text()}
	}
	// Decimal years are truncated, not rounded: 5.9 stores as 5.
	return int(math.Floor(parsed)), nil
}

// extractAvailability is deliberately lenient where the other extractors
// are strict: availability is free text in the wild, so any value
// outside the affirmative set degrades to "not available" instead of
// rejecting the upload. Never returns a validation error.
func extractAvailability(row Row) (bool, error) {
	value, err := resolveColumn(row, availabilityAliases)
	if err != nil {
		return false, err
	}

	if value.Kind == KindBool {
		return value.Bool, nil
	}

	switch strings.TrimSpace(strings.ToLower(value.Text())) {
	case "true", "yes", "1":
		return true, nil
	default:
		return false, nil
	}
}
