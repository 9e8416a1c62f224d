package utils

import (
	"encoding/json"
	"strings"

	"paydash/payoutapi"
)

// The backend stores the structured beneficiary address serialized into
// the single beneficiaryAddress string field.

// SerializeAddress flattens the structured address for storage.
func SerializeAddress(a payoutapi.Address) string {
	raw, err := json.Marshal(a)
	if err != nil {
		return ""
	}
	return string(raw)
}

// ParseAddress recovers the structured fields from the stored form.
// Blank or unparseable input yields a zero address, which the views
// render as "Address not available".
func ParseAddress(s string) payoutapi.Address {
	var a payoutapi.Address
	if strings.TrimSpace(s) == "" {
		return a
	}
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return payoutapi.Address{}
	}
	return a
}
