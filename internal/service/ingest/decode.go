package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var xlsxMagic = []byte("PK\x03\x04")

// Decode turns raw upload bytes into a Table. XLSX files are recognized
// by the zip magic rather than the filename, since browsers mislabel
// both formats routinely. Any failure comes back as a *DecodeError.
func Decode(name string, data []byte, maxRows int) (*Table, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Name: name, Err: errors.New("empty file")}
	}

	var (
		table *Table
		err   error
	)
	if bytes.HasPrefix(data, xlsxMagic) {
		table, err = decodeXLSX(data, maxRows)
	} else {
		table, err = decodeCSV(data, maxRows)
	}
	if err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}
	return table, nil
}

func decodeCSV(data []byte, maxRows int) (*Table, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		records = append(records, record)
	}

	return buildTable(records, maxRows)
}

func decodeXLSX(data []byte, maxRows int) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	// First sheet only; exports put their data there.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	return buildTable(rows, maxRows)
}

// buildTable takes the first non-empty record as the header row and maps
// every following record by header name. Ragged rows are tolerated.
func buildTable(records [][]string, maxRows int) (*Table, error) {
	var headers []string
	start := -1
	for i, record := range records {
		if !emptyRecord(record) {
			headers = trimAll(record)
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, errors.New("no header row found")
	}

	if maxRows > 0 && len(records)-start > maxRows {
		return nil, fmt.Errorf("%d rows exceeds the %d row limit", len(records)-start, maxRows)
	}

	table := &Table{Headers: headers}
	for _, record := range records[start:] {
		if emptyRecord(record) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func emptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func trimAll(record []string) []string {
	out := make([]string, len(record))
	for i, cell := range record {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}
