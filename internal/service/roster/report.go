package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// FormatDuration renders minutes as "{h}h {m}m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// ExportRow is one line of the detailed attendance export.
type ExportRow struct {
	Date          string
	EmployeeName  string
	EmployeeEmail string
	EmployeeCode  string
	Status        string
	CheckIn       string
	LateMinutes   int
	CheckOut      string
	Working       string
	Overtime      string
}

var csvHeader = []string{
	"Date",
	"Employee",
	"Email",
	"EID",
	"Status",
	"Check-In",
	"Late(min)",
	"Check-Out",
	"Working",
	"OT",
}

// BuildCSV serializes export rows with standard CSV quoting (embedded
// quotes doubled). One data row is written per input row.
func BuildCSV(rows []ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, row := range rows {
		rec := []string{
			row.Date,
			row.EmployeeName,
			row.EmployeeEmail,
			row.EmployeeCode,
			row.Status,
			row.CheckIn,
			strconv.Itoa(row.LateMinutes),
			row.CheckOut,
			row.Working,
			row.Overtime,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
