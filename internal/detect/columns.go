package detect

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadCSVColumns parses CSV content into named columns. The first row is
// treated as the header; short rows are tolerated.
func ReadCSVColumns(r io.Reader) ([]Column, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return columnsFromRows(rows), nil
}

// ReadXLSXColumns parses the first sheet of an xlsx workbook into named
// columns, header row first.
func ReadXLSXColumns(content []byte) ([]Column, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}

	return columnsFromRows(rows), nil
}

func columnsFromRows(rows [][]string) []Column {
	if len(rows) == 0 {
		return nil
	}

	header := rows[0]
	columns := make([]Column, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		columns[i] = Column{Name: name}
	}

	for _, row := range rows[1:] {
		for i := range columns {
			if i < len(row) {
				columns[i].Values = append(columns[i].Values, row[i])
			}
		}
	}

	return columns
}
