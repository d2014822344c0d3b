package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateDay drops the time-of-day part of t, keeping its calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts the calendar days in [from, to]. It returns 0 when to is before from.
func DaysInclusive(from, to time.Time) int {
	from, to = TruncateDay(from), TruncateDay(to)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// EachDay calls fn for every calendar day in [from, to].
func EachDay(from, to time.Time, fn func(day time.Time)) {
	from, to = TruncateDay(from), TruncateDay(to)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Days returns the number of days covered by the range.
func (r DateRange) Days() int {
	return DaysInclusive(r.From, r.To)
}

func (r DateRange) String() string {
	return FormatDate(r.From) + ".." + FormatDate(r.To)
}

// MaxBackfillChunkDays is the upper bound on the length of one backfill chunk.
const MaxBackfillChunkDays = 30

// SplitRange splits [from, to] into consecutive, non-overlapping chunks of at most
// maxDays days each. Every day of the input belongs to exactly one chunk and only the
// last chunk may be shorter. A single-day range yields one chunk.
func SplitRange(from, to time.Time, maxDays int) []DateRange {
	from, to = TruncateDay(from), TruncateDay(to)
	if to.Before(from) {
		return nil
	}
	if maxDays <= 0 {
		maxDays = 1
	}

	var chunks []DateRange
	for start := from; !start.After(to); start = start.AddDate(0, 0, maxDays) {
		end := start.AddDate(0, 0, maxDays-1)
		if end.After(to) {
			end = to
		}
		chunks = append(chunks, DateRange{From: start, To: end})
	}
	return chunks
}
