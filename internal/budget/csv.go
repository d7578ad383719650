package budget

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deeppockets-dev/deeppockets/internal/model"
)

const (
	numFields      = 5
	colID          = 0
	colCategoryID  = 1
	colName        = 2
	colDisplayType = 3
	colAmount      = 4
)

// WriteCSV writes budget lines with amounts rounded to cents.
func WriteCSV(w io.Writer, lines []Line) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"line_id", "category_id", "name", "display_type", "amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, l := range lines {
		if err := cw.Write(MarshalLine(l)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads budget lines written by WriteCSV.
func ReadCSV(r io.Reader) ([]Line, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading budget CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var lines []Line
	for i, rec := range records[1:] {
		l, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// MarshalLine converts a Line to a CSV row.
func MarshalLine(l Line) []string {
	row := make([]string, numFields)
	row[colID] = l.ID.String()
	row[colCategoryID] = l.CategoryID
	row[colName] = l.Name
	row[colDisplayType] = string(l.DisplayType)
	row[colAmount] = l.Amount.StringFixed(2)
	return row
}

// UnmarshalLine converts a CSV row to a Line.
func UnmarshalLine(record []string) (Line, error) {
	if len(record) != numFields {
		return Line{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := uuid.Parse(record[colID])
	if err != nil {
		return Line{}, fmt.Errorf("parsing line_id %q: %w", record[colID], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Line{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	dt := model.DisplayType(record[colDisplayType])
	if dt != model.DisplayMonthly && dt != model.DisplayTotal {
		return Line{}, fmt.Errorf("unknown display_type %q", record[colDisplayType])
	}

	return Line{
		ID:          id,
		CategoryID:  record[colCategoryID],
		Name:        record[colName],
		DisplayType: dt,
		Amount:      amount,
	}, nil
}
