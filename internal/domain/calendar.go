package domain

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// DateOf drops the time-of-day of t, keeping the calendar date as seen in
// t's own location. The result is midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekEnding returns the Sunday on or after today.
// If today is a Sunday, today is returned.
func WeekEnding(today time.Time) time.Time {
	d := DateOf(today)
	days := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, days)
}

// Calendar yields the current instant and calendar date in a fixed zone.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar returns a Calendar reading the wall clock in loc.
// A nil loc means UTC.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc, now: time.Now}
}

// FixedCalendar returns a Calendar frozen at t, in t's location.
func FixedCalendar(t time.Time) Calendar {
	return Calendar{loc: t.Location(), now: func() time.Time { return t }}
}

// Now returns the current instant in UTC.
func (c Calendar) Now() time.Time {
	if c.now == nil {
		return time.Now().UTC()
	}
	return c.now().UTC()
}

// Today returns the current calendar date in the calendar's zone.
func (c Calendar) Today() time.Time {
	loc := c.loc
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	return DateOf(now().In(loc))
}
