package bulkimport

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// templateHeaders is the full column set of the bank upload format, in
// sheet order. Only a subset is validated; the rest passes through.
var templateHeaders = []string{
	ColTransactionAmount,
	ColBeneficiaryCode,
	ColTransactionType,
	"Remitter LEI Information",
	"Beneficiary LEI Information",
	ColAccountNumber,
	ColIfscCode,
	ColEmail,
	"Payment Details 1",
	"Value Date",
	ColBeneficiaryName,
	ColMobileNumber,
	"Debit Account",
	"Source Narration",
	"Target Narration",
	"Customer Ref No",
}

var templateSamples = [][]string{
	{"18900", "222026", "IMPS", "", "", "110052871682", "CNRB0013015", "sai@example.com", "", "", "sai kumar", "9876543210", "259178886877", "", "", "28759"},
	{"25000", "222027", "NEFT", "", "", "110052871683", "SBIN0001234", "john@example.com", "", "", "John Doe", "9876543211", "259178886878", "", "", "28760"},
}

// WriteTemplate renders the standardized upload template with sample
// rows, ready to stream as an attachment.
func WriteTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Beneficiaries"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, header := range templateHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStr(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, sample := range templateSamples {
		for col, value := range sample {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			// Cells are written as strings so account numbers keep
			// their digits.
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
