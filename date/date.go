package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DisplayFormat is the Finnish day.month.year format used for display.
const DisplayFormat = "02.01.2006"

// monthDisplayFormat displays dates known to the month only.
const monthDisplayFormat = "01.2006"

// readFormats are the accepted layouts, tried in order.
//
// The source sends local date-times without offset, but any ISO-8601 date or
// date-time is accepted. Go layouts accept fractional seconds after the
// seconds field even if the layout does not declare them.
var readFormats = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04Z07",
	"2006-01-02T15",
	"2006-01-02T15Z07:00",
	"2006-01-02T15Z0700",
	"2006-01-02T15Z07",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04",
	"2006-1-2", // Permissive read date format (allows single-digit month/day).
	"20060102",
	"20060102T150405",
	"20060102T150405Z0700",
	"20060102T150405Z07",
	"20060102T1504",
	"20060102T1504Z0700",
	"20060102T1504Z07",
	"2006-002", // ordinal date
	"2006002",
}

// weekDate matches ISO-8601 week dates, extended or basic, with an optional
// time part that is ignored.
var weekDate = regexp.MustCompile(`^(\d{4})-?W(\d{2})-?([1-7])(T.*)?$`)

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Display formats the date as day.month.year, e.g. "16.10.2025".
func (d Date) Display() string { return d.time().Format(DisplayFormat) }

// Parse parses a Date from an ISO-8601 date or date-time string.
//
// Only the calendar date is kept, as written: a date-time with an offset is
// not converted to any other time zone.
func Parse(str string) (Date, error) {
	s := strings.TrimSpace(str)
	for _, layout := range readFormats {
		if on, err := time.Parse(layout, s); err == nil {
			return New(on.Date()), nil
		}
	}
	if d, ok := parseWeekDate(s); ok {
		return d, nil
	}
	return Date{}, fmt.Errorf("invalid date %q want ISO-8601 format like %q", str, "2006-01-02")
}

// parseWeekDate parses a week date like "2025-W42-4".
func parseWeekDate(s string) (Date, bool) {
	m := weekDate.FindStringSubmatch(s)
	if m == nil {
		return Date{}, false
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if m[4] != "" {
		if _, err := time.Parse("T15:04:05Z07:00", m[4]); err != nil {
			if _, err := time.Parse("T15:04:05", m[4]); err != nil {
				return Date{}, false
			}
		}
	}
	// the last week of the year is the week of December 28th.
	if _, last := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek(); week < 1 || week > last {
		return Date{}, false
	}
	// week 1 is the week of January 4th, weeks start on monday.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := 4 - (int(jan4.Weekday())+6)%7
	return New(year, time.January, monday+(week-1)*7+day-1), true
}

// Format formats a raw date as received from a remote source for display.
//
// An empty string stays empty, a parseable date is formatted with
// [DisplayFormat], a year and month like "2025-10" as "10.2025". Anything
// else is returned unchanged.
func Format(raw string) string {
	if raw == "" {
		return ""
	}
	d, err := Parse(raw)
	if err == nil {
		return d.Display()
	}
	if on, err := time.Parse("2006-01", strings.TrimSpace(raw)); err == nil {
		return on.Format(monthDisplayFormat)
	}
	return raw
}
