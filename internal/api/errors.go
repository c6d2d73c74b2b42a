package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the backend.
type Error struct {
	Detail     string // the "detail" field of the response, if any
	Body       string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	if e.Body != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Message returns the most useful description of the failure:
// the server detail when present, otherwise the raw body.
func (e *Error) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Body != "" {
		return e.Body
	}
	return http.StatusText(e.StatusCode)
}

func newError(status int, body []byte) *Error {
	return &Error{
		StatusCode: status,
		Body:       strings.TrimSpace(string(body)),
		Detail:     extractDetail(body),
	}
}

// extractDetail pulls "detail" out of an error body. The backend sends
// either a string or a list of validation problems with a "msg" each.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var problems []struct {
		Msg string `json:"msg"`
		Loc []any  `json:"loc"`
	}
	if err := json.Unmarshal(envelope.Detail, &problems); err == nil && len(problems) > 0 {
		msgs := make([]string, 0, len(problems))
		for _, p := range problems {
			if len(p.Loc) > 0 {
				msgs = append(msgs, fmt.Sprintf("%v: %s", p.Loc[len(p.Loc)-1], p.Msg))
				continue
			}
			msgs = append(msgs, p.Msg)
		}
		return strings.Join(msgs, "; ")
	}

	if string(envelope.Detail) == "null" {
		return ""
	}
	return string(envelope.Detail)
}
