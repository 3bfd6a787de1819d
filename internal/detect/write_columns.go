package detect

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteCSVColumns serializes columns back to CSV, header row first.
func WriteCSVColumns(columns []Column) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range rowsFromColumns(columns) {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteXLSXColumns serializes columns to a single-sheet xlsx workbook,
// header row first.
func WriteXLSXColumns(columns []Column) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	for i, row := range rowsFromColumns(columns) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("xlsx cell name: %w", err)
		}
		if err := workbook.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write xlsx row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func rowsFromColumns(columns []Column) [][]string {
	maxRows := 0
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Name
		if len(col.Values) > maxRows {
			maxRows = len(col.Values)
		}
	}

	rows := make([][]string, 0, maxRows+1)
	rows = append(rows, header)
	for r := 0; r < maxRows; r++ {
		row := make([]string, len(columns))
		for i, col := range columns {
			if r < len(col.Values) {
				row[i] = col.Values[r]
			}
		}
		rows = append(rows, row)
	}

	return rows
}
