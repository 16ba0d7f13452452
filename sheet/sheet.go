// Package sheet maps check-in records to and from spreadsheet rows
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/internal/timeutil"
)

// Column names of the exchange format. Import looks columns up by
// header name, not by position, so reordered or extended sheets still
// round-trip.
const (
	colDateTime = "datetime"
	colContent  = "content"
	colDuration = "duration"
	colMakeup   = "is_makeup"
)

// Header is the first row of every exported sheet.
var Header = []string{colDateTime, colContent, colDuration, colMakeup}

// Export writes one row per record in the exchange layout.
func Export(w io.Writer, records []*record.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.StartTime.Format(timeutil.DateTimeFormat),
			r.Content,
			r.Duration,
			strconv.FormatBool(r.IsMakeup),
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// Import parses an exported sheet back into records. Every row gets a
// freshly generated id; the end time is reconstructed from the datetime
// and duration columns. Rows that cannot produce a valid record fail
// the whole import.
func Import(r io.Reader) ([]*record.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, ErrImportFormat.Wrap(err)
	}

	if len(rows) == 0 {
		return nil, ErrImportFormat.Wrap(fmt.Errorf("the file is empty"))
	}

	idx, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]*record.Record, 0, len(rows)-1)

	for i, row := range rows[1:] {
		rec, err := importRow(row, idx)
		if err != nil {
			return nil, ErrImportFormat.Wrap(
				fmt.Errorf("row %d: %w", i+2, err),
			)
		}

		records = append(records, rec)
	}

	return records, nil
}

// columnIndex maps the header row to column positions. The datetime and
// duration columns are required; content and the make-up flag default
// when absent.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))

	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{colDateTime, colDuration} {
		if _, ok := idx[required]; !ok {
			return nil, ErrImportFormat.Wrap(
				fmt.Errorf("missing required column %q", required),
			)
		}
	}

	return idx, nil
}

func importRow(row []string, idx map[string]int) (*record.Record, error) {
	start, err := parseDateTime(field(row, idx, colDateTime))
	if err != nil {
		return nil, err
	}

	d, err := timeutil.ParseDuration(field(row, idx, colDuration))
	if err != nil {
		return nil, err
	}

	if d <= 0 {
		return nil, fmt.Errorf("duration must be greater than zero")
	}

	// ParseBool fails on the empty string, which simply means the
	// column is absent; the flag defaults to false then.
	makeup, _ := strconv.ParseBool(field(row, idx, colMakeup))

	return record.New(start, start.Add(d), field(row, idx, colContent), makeup)
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range []string{
		timeutil.DateTimeFormat,
		"2006-01-02 15:04",
		timeutil.DayFormat,
	} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}
