package bulkimport

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by column header. Cell values stay
// opaque strings; account and mobile numbers must never round-trip
// through floats.
type Row map[string]string

// Sheet is a parsed spreadsheet: the header order plus every data row.
type Sheet struct {
	Headers []string
	Rows    []Row
}

var spreadsheetTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel": true,
}

// ErrNotSpreadsheet rejects uploads by declared file type, before any
// parsing is attempted.
var ErrNotSpreadsheet = errors.New("Please select a valid Excel file (.xlsx or .xls)")

// CheckFileType validates the declared content type of an upload.
func CheckFileType(contentType string) error {
	base := contentType
	if idx := strings.Index(base, ";"); idx >= 0 {
		base = base[:idx]
	}
	if !spreadsheetTypes[strings.TrimSpace(base)] {
		return ErrNotSpreadsheet
	}
	return nil
}

// Parse reads the first worksheet into header-keyed rows. Rows that are
// entirely blank are dropped, matching what the dashboard preview showed.
func Parse(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	raw, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return &Sheet{}, nil
	}

	headers := make([]string, 0, len(raw[0]))
	for _, h := range raw[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	sheet := &Sheet{Headers: headers}
	for _, cells := range raw[1:] {
		row := make(Row, len(headers))
		blank := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			if strings.TrimSpace(value) != "" {
				blank = false
			}
			row[header] = value
		}
		if blank {
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}
