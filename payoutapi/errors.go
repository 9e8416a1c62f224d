package payoutapi

import (
	"encoding/json"
	"errors"
	"strings"
)

// Kind classifies a normalized backend failure.
type Kind string

const (
	KindAuthExpired         Kind = "AUTH_EXPIRED"
	KindServiceUnavailable  Kind = "SERVICE_UNAVAILABLE"
	KindInternalServerError Kind = "INTERNAL_SERVER_ERROR"
	KindApplicationError    Kind = "APPLICATION_ERROR"
	KindUnknown             Kind = "UNKNOWN"
)

const genericRetryMessage = "Please try again after sometime"

// APIError is the single error shape the client wrapper produces. Every
// network or HTTP failure is normalized here once; callers only ever see
// a kind plus a human-readable message.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// KindOf returns the failure kind of err, or KindUnknown for errors that
// did not come from the client wrapper.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// extractor probes one candidate error-body location and reports whether
// it found a usable string there.
type extractor func(body []byte) (string, bool)

// messageExtractors are tried in order; the first string found wins.
// Mirrors the priority chain of error envelope shapes the backend has
// been seen to return.
var messageExtractors = []extractor{
	detailMessage, // data.details[0].message
	dataMessage,   // data.message
	topMessage,    // message
	rawBody,       // the body itself, when it is a plain string
}

func extractMessage(body []byte) string {
	for _, probe := range messageExtractors {
		if msg, ok := probe(body); ok {
			return msg
		}
	}
	return genericRetryMessage
}

func detailMessage(body []byte) (string, bool) {
	var shape struct {
		Data struct {
			Details []struct {
				Message string `json:"message"`
			} `json:"details"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		return "", false
	}
	if len(shape.Data.Details) == 0 || shape.Data.Details[0].Message == "" {
		return "", false
	}
	return shape.Data.Details[0].Message, true
}

func dataMessage(body []byte) (string, bool) {
	var shape struct {
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		return "", false
	}
	if shape.Data.Message == "" {
		return "", false
	}
	return shape.Data.Message, true
}

func topMessage(body []byte) (string, bool) {
	var shape struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		return "", false
	}
	if shape.Message == "" {
		return "", false
	}
	return shape.Message, true
}

func rawBody(body []byte) (string, bool) {
	// JSON string body first, then bare text that is clearly not JSON.
	var s string
	if err := json.Unmarshal(body, &s); err == nil && s != "" {
		return s, true
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return "", false
	}
	return trimmed, true
}
