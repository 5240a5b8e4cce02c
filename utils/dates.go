package utils

import (
	"time"

	"github.com/jinzhu/now"
	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// Today is the creation-day default for enrollment and grade dates.
func Today() datatypes.Date {
	return datatypes.Date(now.BeginningOfDay())
}

// ParseDate parses an ISO YYYY-MM-DD date.
func ParseDate(value string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// FormatDate renders a date column as YYYY-MM-DD, or nil for the zero date.
func FormatDate(d datatypes.Date) *string {
	t := time.Time(d)
	if t.IsZero() {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
