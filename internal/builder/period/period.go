// Package period resolves DHIS2 relative period keywords (LAST_12_MONTHS,
// THIS_QUARTER, ...) into concrete period ids.
//
// Ids use the DHIS2 formats: daily 20240115, weekly 2024W3 (ISO week),
// monthly 202401, quarterly 2024Q1 and yearly 2024. Multi-period keywords
// expand oldest first and never include the period containing today unless
// the keyword names it (THIS_*, *_THIS_YEAR).
package period

import (
	"fmt"
	"time"
)

// Resolver expands relative period keywords.
type Resolver interface {
	// Expand returns the concrete ids for keyword, or nil when keyword is
	// not a relative period.
	Expand(keyword string) []string
	IsRelative(id string) bool
}

// Keywords
const (
	Today            = "TODAY"
	Yesterday        = "YESTERDAY"
	Last7Days        = "LAST_7_DAYS"
	ThisWeek         = "THIS_WEEK"
	LastWeek         = "LAST_WEEK"
	Last4Weeks       = "LAST_4_WEEKS"
	Last12Weeks      = "LAST_12_WEEKS"
	ThisMonth        = "THIS_MONTH"
	LastMonth        = "LAST_MONTH"
	Last3Months      = "LAST_3_MONTHS"
	Last6Months      = "LAST_6_MONTHS"
	Last12Months     = "LAST_12_MONTHS"
	MonthsThisYear   = "MONTHS_THIS_YEAR"
	ThisQuarter      = "THIS_QUARTER"
	LastQuarter      = "LAST_QUARTER"
	Last4Quarters    = "LAST_4_QUARTERS"
	QuartersThisYear = "QUARTERS_THIS_YEAR"
	ThisYear         = "THIS_YEAR"
	LastYear         = "LAST_YEAR"
	Last5Years       = "LAST_5_YEARS"
)

type expander func(now time.Time) []string

var keywords = map[string]expander{
	Today:            func(now time.Time) []string { return days(now, 0, 1) },
	Yesterday:        func(now time.Time) []string { return days(now, 1, 1) },
	Last7Days:        func(now time.Time) []string { return days(now, 1, 7) },
	ThisWeek:         func(now time.Time) []string { return weeks(now, 0, 1) },
	LastWeek:         func(now time.Time) []string { return weeks(now, 1, 1) },
	Last4Weeks:       func(now time.Time) []string { return weeks(now, 1, 4) },
	Last12Weeks:      func(now time.Time) []string { return weeks(now, 1, 12) },
	ThisMonth:        func(now time.Time) []string { return months(now, 0, 1) },
	LastMonth:        func(now time.Time) []string { return months(now, 1, 1) },
	Last3Months:      func(now time.Time) []string { return months(now, 1, 3) },
	Last6Months:      func(now time.Time) []string { return months(now, 1, 6) },
	Last12Months:     func(now time.Time) []string { return months(now, 1, 12) },
	MonthsThisYear:   func(now time.Time) []string { return months(endOfYear(now), 0, 12) },
	ThisQuarter:      func(now time.Time) []string { return quarters(now, 0, 1) },
	LastQuarter:      func(now time.Time) []string { return quarters(now, 1, 1) },
	Last4Quarters:    func(now time.Time) []string { return quarters(now, 1, 4) },
	QuartersThisYear: func(now time.Time) []string { return quarters(endOfYear(now), 0, 4) },
	ThisYear:         func(now time.Time) []string { return years(now, 0, 1) },
	LastYear:         func(now time.Time) []string { return years(now, 1, 1) },
	Last5Years:       func(now time.Time) []string { return years(now, 1, 5) },
}

// Keywords returns every supported keyword.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	return out
}

type resolver struct {
	clock func() time.Time
}

// NewResolver returns a Resolver reading the current date from clock.
// A nil clock uses time.Now.
func NewResolver(clock func() time.Time) Resolver {
	if clock == nil {
		clock = time.Now
	}
	return &resolver{clock: clock}
}

func (r *resolver) IsRelative(id string) bool {
	_, ok := keywords[id]
	return ok
}

func (r *resolver) Expand(keyword string) []string {
	fn, ok := keywords[keyword]
	if !ok {
		return nil
	}
	now := r.clock()
	return fn(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}

// days returns count daily ids ending skip days before now.
func days(now time.Time, skip, count int) []string {
	out := make([]string, 0, count)
	for i := skip + count - 1; i >= skip; i-- {
		out = append(out, now.AddDate(0, 0, -i).Format("20060102"))
	}
	return out
}

func weeks(now time.Time, skip, count int) []string {
	monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	out := make([]string, 0, count)
	for i := skip + count - 1; i >= skip; i-- {
		year, week := monday.AddDate(0, 0, -7*i).ISOWeek()
		out = append(out, fmt.Sprintf("%dW%d", year, week))
	}
	return out
}

func months(now time.Time, skip, count int) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]string, 0, count)
	for i := skip + count - 1; i >= skip; i-- {
		out = append(out, first.AddDate(0, -i, 0).Format("200601"))
	}
	return out
}

func quarters(now time.Time, skip, count int) []string {
	index := now.Year()*4 + (int(now.Month())-1)/3
	out := make([]string, 0, count)
	for i := skip + count - 1; i >= skip; i-- {
		q := index - i
		out = append(out, fmt.Sprintf("%dQ%d", q/4, q%4+1))
	}
	return out
}

func years(now time.Time, skip, count int) []string {
	out := make([]string, 0, count)
	for i := skip + count - 1; i >= skip; i-- {
		out = append(out, fmt.Sprintf("%d", now.Year()-i))
	}
	return out
}

func endOfYear(now time.Time) time.Time {
	return time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
}
