package bulkimport

import (
	"fmt"
	"strings"
)

// Column headers of the upload template.
const (
	ColTransactionAmount = "Transaction Amount"
	ColBeneficiaryCode   = "Beneficiary Code"
	ColTransactionType   = "Transaction Type"
	ColAccountNumber     = "Beneficiary A/c No."
	ColIfscCode          = "IFSC Code"
	ColEmail             = "Beneficiary Email ID"
	ColBeneficiaryName   = "Beneficiary Name"
	ColMobileNumber      = "Beneficiary Mobile No"
	ColPanNumber         = "Beneficiary PAN"
)

// RequiredColumns must be present in every upload. Callers add the
// contextual PAN/mobile/email columns when their flow needs them.
var RequiredColumns = []string{
	ColTransactionType,
	ColAccountNumber,
	ColIfscCode,
	ColBeneficiaryName,
}

// Result accumulates every violation found in an upload. Validation is
// exhaustive; the caller surfaces only the first message to the user.
type Result struct {
	Errors         []string
	MissingColumns []string
}

// Valid reports whether the upload passed.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// First returns the message shown to the user, or "" when valid.
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Validate checks the parsed sheet: emptiness, required headers in the
// first row, then every row's mandatory fields. Row numbers are 1-based.
func Validate(sheet *Sheet, extraRequired ...string) *Result {
	result := &Result{}

	if len(sheet.Rows) == 0 {
		result.Errors = append(result.Errors, "Excel file is empty")
		return result
	}

	required := append(append([]string{}, RequiredColumns...), extraRequired...)
	first := sheet.Rows[0]
	for _, col := range required {
		if _, ok := first[col]; !ok {
			result.MissingColumns = append(result.MissingColumns, col)
		}
	}
	if len(result.MissingColumns) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Missing required columns: %s", strings.Join(result.MissingColumns, ", ")))
	}

	for i, row := range sheet.Rows {
		if strings.TrimSpace(row[ColBeneficiaryName]) == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Beneficiary Name is required", i+1))
		}
		if row[ColAccountNumber] == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Beneficiary Account Number is required", i+1))
		}
		if strings.TrimSpace(row[ColIfscCode]) == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: IFSC Code is required", i+1))
		}
	}

	return result
}
