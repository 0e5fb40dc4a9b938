package valueobject

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// EntryDate is a value object for calendar dates stored as "YYYY-MM-DD".
//
// It deliberately never constructs a time.Time: period matching splits the
// string and compares integers, so a date entered as 2025-03-01 stays in
// March regardless of the server or client timezone.
type EntryDate struct {
	value string
}

var entryDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NewEntryDate creates an EntryDate from a "YYYY-MM-DD" string
func NewEntryDate(value string) (EntryDate, error) {
	if !entryDatePattern.MatchString(value) {
		return EntryDate{}, fmt.Errorf("invalid entry date %q: expected YYYY-MM-DD", value)
	}
	parts := strings.SplitN(value, "-", 3)
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return EntryDate{}, fmt.Errorf("invalid entry date %q: month or day out of range", value)
	}
	return EntryDate{value: value}, nil
}

// MustNewEntryDate creates an EntryDate and panics on error
func MustNewEntryDate(value string) EntryDate {
	d, err := NewEntryDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the "YYYY-MM-DD" representation
func (d EntryDate) String() string {
	return d.value
}

// IsZero reports whether the date is unset
func (d EntryDate) IsZero() bool {
	return d.value == ""
}

// Year returns the year component as an integer
func (d EntryDate) Year() int {
	if d.value == "" {
		return 0
	}
	y, _ := strconv.Atoi(d.value[:4])
	return y
}

// Month returns the month component as an integer (1-12)
func (d EntryDate) Month() int {
	if d.value == "" {
		return 0
	}
	m, _ := strconv.Atoi(d.value[5:7])
	return m
}

// InPeriod reports whether the date falls in the given month and year
func (d EntryDate) InPeriod(month, year int) bool {
	if d.value == "" {
		return false
	}
	return d.Month() == month && d.Year() == year
}

// OnOrBeforePeriod reports whether the date is in or before the given month
// and year. Used for payroll: an employee hired in March counts from March on.
func (d EntryDate) OnOrBeforePeriod(month, year int) bool {
	if d.value == "" {
		return false
	}
	return d.Year() < year || (d.Year() == year && d.Month() <= month)
}

// MarshalJSON implements json.Marshaler
func (d EntryDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *EntryDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = EntryDate{}
		return nil
	}
	parsed, err := NewEntryDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer for database storage
func (d EntryDate) Value() (driver.Value, error) {
	if d.value == "" {
		return nil, nil
	}
	return d.value, nil
}

// Scan implements sql.Scanner for database retrieval
func (d *EntryDate) Scan(value interface{}) error {
	if value == nil {
		*d = EntryDate{}
		return nil
	}
	switch v := value.(type) {
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case time.Time:
		// DATE columns arrive as time.Time from the sql drivers. Format the
		// value's own components, no timezone conversion.
		return d.scanString(v.Format("2006-01-02"))
	default:
		return errors.New("cannot scan entry date: unsupported type")
	}
}

func (d *EntryDate) scanString(s string) error {
	// Postgres DATE columns may come back with a time suffix.
	if len(s) > 10 {
		s = s[:10]
	}
	parsed, err := NewEntryDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
