package income

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrInvalidRow marks a CSV row that cannot become a form.
var ErrInvalidRow = errors.New("invalid income row")

// importColumns are the recognised CSV headers. Only date is required.
var importColumns = map[string]bool{
	"date":        true,
	"category":    false,
	"description": false,
	"total":       false,
}

// ReadCSV turns a CSV export into forms ready for submission.
// The header row names the columns (date, category, description, total) in
// any order. Dates may be YYYY-MM-DD or dd/MM/yyyy; categories may be a
// catalog key or a label. An empty category means Salary.
func ReadCSV(r io.Reader) ([]Form, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, known := importColumns[name]; known {
			index[name] = i
		}
	}
	for name, required := range importColumns {
		if _, ok := index[name]; required && !ok {
			return nil, fmt.Errorf("%w: missing %q column", ErrInvalidRow, name)
		}
	}

	var forms []Form
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		date, err := ParseDate(field("date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		form := NewForm(date)
		if category := field("category"); category != "" {
			form.SelectCategory(category)
		}
		form.Description = field("description")
		form.Total = field("total")
		forms = append(forms, form)
	}

	return forms, nil
}

// ParseDate accepts the submission format (YYYY-MM-DD) or the display format (dd/MM/yyyy).
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", DisplayLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD or dd/MM/yyyy", ErrInvalidRow, s)
}
