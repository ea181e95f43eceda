package timeutil

import "time"

// ISODateLayout is the calendar date format the provider expects (YYYY-MM-DD)
const ISODateLayout = "2006-01-02"

// Now returns the current time in UTC
// Always use this instead of time.Now() to ensure timezone consistency
func Now() time.Time {
	return time.Now().UTC()
}

// ISODate formats t as a calendar date in UTC
func ISODate(t time.Time) string {
	return t.UTC().Format(ISODateLayout)
}

// ParseISODate parses a YYYY-MM-DD string into a UTC midnight time
func ParseISODate(value string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// DaysFrom returns the calendar date n days after t, formatted as ISO date
func DaysFrom(t time.Time, n int) string {
	return ISODate(t.UTC().AddDate(0, 0, n))
}
