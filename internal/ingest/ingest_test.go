package ingest_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Larissacdias1/scib-candidates-platform/internal/domain"
	"github.com/Larissacdias1/scib-candidates-platform/internal/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// workbook builds a real xlsx file with the given header row and data
// rows on the first sheet.
func workbook(t *testing.T, headers []string, dataRows ...[]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, h))
	}
	for r, row := range dataRows {
		for col, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadOneRowCountLaw(t *testing.T) {
	headers := []string{"Seniority", "Years", "Availability"}

	t.Run("zero data rows", func(t *testing.T) {
		_, err := ingest.ReadOne(workbook(t, headers))
		assert.ErrorIs(t, err, ingest.ErrEmptyData)
	})

	t.Run("exactly one row proceeds", func(t *testing.T) {
		row, err := ingest.ReadOne(workbook(t, headers, []interface{}{"junior", 3, "yes"}))
		require.NoError(t, err)
		assert.Len(t, row, 3)
	})

	t.Run("more than one row", func(t *testing.T) {
		data := workbook(t, headers,
			[]interface{}{"junior", 3, "yes"},
			[]interface{}{"senior", 10, "no"},
		)
		_, err := ingest.ReadOne(data)
		assert.ErrorIs(t, err, ingest.ErrMultipleRows)
	})

	t.Run("unreadable bytes", func(t *testing.T) {
		_, err := ingest.ReadOne([]byte("this is not a workbook"))
		assert.Error(t, err)
	})
}

func TestReadOneUsesFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "seniority"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "junior"))

	// A second sheet full of rows must be ignored.
	_, err := f.NewSheet("Extra")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Extra", "A1", "seniority"))
	require.NoError(t, f.SetCellValue("Extra", "A2", "senior"))
	require.NoError(t, f.SetCellValue("Extra", "A3", "senior"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	row, err := ingest.ReadOne(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, row, 1)
	assert.Equal(t, "junior", row[0].Value.Text())
}

func TestParseHappyPath(t *testing.T) {
	data := workbook(t,
		[]string{"Seniority", "Years", "Availability"},
		[]interface{}{"SENIOR", "7", "Yes"},
	)

	attrs, err := ingest.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, domain.SenioritySenior, attrs.Seniority)
	assert.Equal(t, 7, attrs.YearsOfExperience)
	assert.True(t, attrs.Availability)
}

func TestParseColumnNameInsensitivity(t *testing.T) {
	for _, header := range []string{"years", "Years", "YearsOfExperience", "Years_Of_Experience", "YEARS OF EXPERIENCE", "experience"} {
		t.Run(header, func(t *testing.T) {
			data := workbook(t,
				[]string{"seniority", header, "availability"},
				[]interface{}{"junior", 3, "yes"},
			)
			attrs, err := ingest.Parse(data)
			require.NoError(t, err)
			assert.Equal(t, 3, attrs.YearsOfExperience)
		})
	}
}

func TestParseSeniority(t *testing.T) {
	cases := []struct {
		value   interface{}
		want    domain.Seniority
		invalid bool
	}{
		{value: "junior", want: domain.SeniorityJunior},
		{value: "SENIOR", want: domain.SenioritySenior},
		{value: " Senior ", want: domain.SenioritySenior},
		{value: "mid", invalid: true},
		{value: "principal", invalid: true},
	}

	for _, tc := range cases {
		data := workbook(t,
			[]string{"seniority", "years", "availability"},
			[]interface{}{tc.value, 1, "no"},
		)
		attrs, err := ingest.Parse(data)
		if tc.invalid {
			var senErr *ingest.InvalidSeniorityError
			assert.ErrorAs(t, err, &senErr, "value %v", tc.value)
			continue
		}
		require.NoError(t, err, "value %v", tc.value)
		assert.Equal(t, tc.want, attrs.Seniority)
	}
}

func TestParseYears(t *testing.T) {
	cases := []struct {
		value   interface{}
		want    int
		invalid bool
	}{
		{value: 0, want: 0},
		{value: 50, want: 50},
		{value: 5.9, want: 5},
		{value: "5.9", want: 5},
		{value: "7", want: 7},
		{value: -1, invalid: true},
		{value: 51, invalid: true},
		{value: 50.1, invalid: true},
		{value: "twelve", invalid: true},
	}

	for _, tc := range cases {
		data := workbook(t,
			[]string{"seniority", "years", "availability"},
			[]interface{}{"junior", tc.value, "no"},
		)
		attrs, err := ingest.Parse(data)
		if tc.invalid {
			var yearsErr *ingest.InvalidYearsError
			assert.ErrorAs(t, err, &yearsErr, "value %v", tc.value)
			continue
		}
		require.NoError(t, err, "value %v", tc.value)
		assert.Equal(t, tc.want, attrs.YearsOfExperience, "value %v", tc.value)
	}
}

func TestParseAvailabilityCoercion(t *testing.T) {
	cases := []struct {
		value interface{}
		want  bool
	}{
		{value: "yes", want: true},
		{value: "Yes ", want: true},
		{value: "TRUE", want: true},
		{value: "1", want: true},
		{value: 1, want: true},
		{value: true, want: true},
		{value: "no", want: false},
		{value: "maybe", want: false},
		{value: "0", want: false},
		{value: false, want: false},
	}

	for _, tc := range cases {
		data := workbook(t,
			[]string{"seniority", "years", "availability"},
			[]interface{}{"junior", 2, tc.value},
		)
		attrs, err := ingest.Parse(data)
		// Lenient by design: unrecognized values degrade to false,
		// they never fail the upload.
		require.NoError(t, err, "value %v", tc.value)
		assert.Equal(t, tc.want, attrs.Availability, "value %v", tc.value)
	}
}

func TestParseMissingColumn(t *testing.T) {
	t.Run("no alias matches", func(t *testing.T) {
		data := workbook(t,
			[]string{"seniority", "availability"},
			[]interface{}{"junior", "yes"},
		)
		_, err := ingest.Parse(data)

		var missingErr *ingest.MissingColumnError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"years", "yearsofexperience", "years_of_experience", "experience"}, missingErr.Aliases)
	})

	t.Run("empty cell counts as missing", func(t *testing.T) {
		// An availability column that exists but holds an empty string
		// is "present but unset", not a lenient false.
		data := workbook(t,
			[]string{"seniority", "years", "availability"},
			[]interface{}{"junior", 2, nil},
		)
		_, err := ingest.Parse(data)

		var missingErr *ingest.MissingColumnError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"availability", "available"}, missingErr.Aliases)
	})
}

func TestResolverPriorityOrder(t *testing.T) {
	// "seniority" outranks "level" even when level appears first in the
	// sheet.
	data := workbook(t,
		[]string{"level", "seniority", "years", "availability"},
		[]interface{}{"junior", "senior", 4, "yes"},
	)
	attrs, err := ingest.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, domain.SenioritySenior, attrs.Seniority)
}

func TestResolverFallsBackToNextAlias(t *testing.T) {
	// The high-priority column is present but empty; the lower-priority
	// alias supplies the value.
	data := workbook(t,
		[]string{"seniority", "level", "years", "availability"},
		[]interface{}{nil, "junior", 4, "yes"},
	)
	attrs, err := ingest.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, domain.SeniorityJunior, attrs.Seniority)
}

func TestParseErrorKindsAreDistinct(t *testing.T) {
	data := workbook(t,
		[]string{"seniority", "years", "availability"},
		[]interface{}{"junior", 99, "yes"},
	)
	_, err := ingest.Parse(data)

	var yearsErr *ingest.InvalidYearsError
	require.ErrorAs(t, err, &yearsErr)
	assert.False(t, errors.Is(err, ingest.ErrEmptyData))
	assert.False(t, errors.Is(err, ingest.ErrMultipleRows))
}
