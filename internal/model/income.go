package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for income dates.
const DateLayout = "2006-01-02"

// IncomeSubmission is the request body for creating an income record.
type IncomeSubmission struct {
	Date           string  `json:"date"`
	IncomeCategory string  `json:"income_category"`
	Description    string  `json:"description"`
	Total          float64 `json:"total"`
}

// MarshalJSON writes a NaN or infinite total as null, which is what a
// browser client sends for an unparseable amount. The server decides.
func (s IncomeSubmission) MarshalJSON() ([]byte, error) {
	var total *float64
	if !math.IsNaN(s.Total) && !math.IsInf(s.Total, 0) {
		t := s.Total
		total = &t
	}

	return json.Marshal(struct {
		Total          *float64 `json:"total"`
		Date           string   `json:"date"`
		IncomeCategory string   `json:"income_category"`
		Description    string   `json:"description"`
	}{
		Date:           s.Date,
		IncomeCategory: s.IncomeCategory,
		Description:    s.Description,
		Total:          total,
	})
}

// IncomeRecord is an income entry as created by the remote API.
type IncomeRecord struct {
	CreatedAt      time.Time
	Total          decimal.Decimal
	RemoteID       string
	Date           string
	IncomeCategory string
	Description    string
	Raw            json.RawMessage // response body exactly as the API returned it
	ID             int64           // local store id, zero until persisted
}

// UnmarshalJSON decodes an API record. The remote id may be a number or a string.
func (r *IncomeRecord) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID             json.RawMessage `json:"id"`
		Total          decimal.Decimal `json:"total"`
		Date           string          `json:"date"`
		IncomeCategory string          `json:"income_category"`
		Description    string          `json:"description"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode income record: %w", err)
	}

	r.RemoteID = rawID(wire.ID)
	r.Total = wire.Total
	r.Date = wire.Date
	r.IncomeCategory = wire.IncomeCategory
	r.Description = wire.Description
	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the API shape of the record.
func (r IncomeRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID             string          `json:"id,omitempty"`
		Total          decimal.Decimal `json:"total"`
		Date           string          `json:"date"`
		IncomeCategory string          `json:"income_category"`
		Description    string          `json:"description"`
	}{
		ID:             r.RemoteID,
		Total:          r.Total,
		Date:           r.Date,
		IncomeCategory: r.IncomeCategory,
		Description:    r.Description,
	})
}

func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
