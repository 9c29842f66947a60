package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadOne decodes xlsx bytes and returns the single data row of the
// first sheet. The first sheet's first row supplies column headers; any
// further sheets are ignored. Exactly one data row is accepted.
func ReadOne(data []byte) (Row, error) {
	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyData
	}
	if len(rows) > 1 {
		return nil, ErrMultipleRows
	}
	return rows[0], nil
}

func readRows(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyData
	}

	headers := raw[0]
	var rows []Row
	for i, cells := range raw[1:] {
		row := make(Row, 0, len(headers))
		empty := true
		for j, header := range headers {
			if header == "" {
				// Unnamed columns can never match an alias.
				continue
			}
			var text string
			if j < len(cells) {
				text = cells[j]
			}
			if text != "" {
				empty = false
			}
			row = append(row, Cell{Column: header, Value: cellValue(f, sheet, j, i+1, text)})
		}
		if empty {
			// Blank spreadsheet rows are formatting noise, not data.
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellValue tags the rendered cell text with the cell's storage type so
// booleans survive as booleans and numeric cells parse once, here.
func cellValue(f *excelize.File, sheet string, col, row int, text string) Value {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return stringValue(text)
	}
	ct, err := f.GetCellType(sheet, name)
	if err != nil {
		return stringValue(text)
	}

	switch ct {
	case excelize.CellTypeBool:
		return boolValue(text == "TRUE")
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		// Cells without an explicit type attribute are numeric unless
		// the rendered text says otherwise.
		if v := stringValue(text); v.IsEmpty() {
			return v
		}
		if n, ok := stringValue(text).Float(); ok {
			return numberValue(n)
		}
		return stringValue(text)
	default:
		return stringValue(text)
	}
}
