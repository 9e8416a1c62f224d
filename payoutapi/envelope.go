package payoutapi

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Envelope is the uniform wrapper the backend returns on every call:
// {response, message, data, status, timestamp}. response=false marks an
// application-level failure regardless of HTTP status. The status field
// is loosely typed upstream (sometimes "OK", sometimes a bare 401), so
// it is kept raw and interpreted on demand.
type Envelope struct {
	Response  bool            `json:"response"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Status    json.RawMessage `json:"status"`
	Timestamp string          `json:"timestamp"`
}

// StatusCode extracts a numeric status embedded in the envelope status
// field, or 0 when the field is absent or non-numeric.
func (e *Envelope) StatusCode() int {
	raw := strings.TrimSpace(string(e.Status))
	if raw == "" {
		return 0
	}
	raw = strings.Trim(raw, `"`)
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return code
}

// StatusText returns the envelope status as a display string.
func (e *Envelope) StatusText() string {
	return strings.Trim(strings.TrimSpace(string(e.Status)), `"`)
}

// DecodeData unmarshals the envelope payload into v.
func (e *Envelope) DecodeData(v interface{}) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}
