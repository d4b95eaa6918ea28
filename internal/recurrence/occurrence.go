package recurrence

import (
	"sort"
	"time"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// Iteration guards. A never-ending rule walks candidate positions until it
// leaves the window, so it gets a looser cap than a bounded rule, which must
// also walk to its end date to compute the series total.
const (
	maxIterationsUnbounded = 10000
	maxIterationsBounded   = 1000

	defaultMaxPerRun = 1000

	// A period that yields no days (day 31 in a 30-day month) is skipped; a
	// rule for which every period is empty would otherwise spin inside one
	// iterator call, out of reach of the caller's iteration guard.
	maxEmptyPeriods = 48
)

// Options bound a single expansion run.
type Options struct {
	// WindowStart/WindowEnd select the half-open interval [start, end) of
	// occurrence positions to emit.
	WindowStart time.Time
	WindowEnd   time.Time
	// MaxPerRun caps emitted occurrences; 0 means defaultMaxPerRun.
	MaxPerRun int
}

// Occurrence is one position in a series.
type Occurrence struct {
	Start          time.Time
	SequenceNumber int
}

// Expansion is the result of expanding a rule over a window.
type Expansion struct {
	Occurrences []Occurrence
	// TotalCount is the full series length for bounded rules, nil for
	// never-ending rules or when the walk hit an iteration guard before
	// reaching the series end.
	TotalCount *int
	// Truncated is set when an iteration or per-run guard cut the walk short.
	Truncated bool
}

// Expand walks the rule from its series anchor and returns every occurrence
// position inside the window. Sequence numbers count from 1 at the anchor
// across the whole series, so the same position gets the same number no
// matter which window a run asks for.
func Expand(rule *domain.RecurrenceRule, opts Options) (Expansion, error) {
	if opts.WindowEnd.Before(opts.WindowStart) {
		return Expansion{}, domain.NewValidationError("window", "Window end must not be before window start")
	}

	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}
	anchor := rule.RecurrenceStartDate.UTC()

	iter, err := newCandidates(rule, anchor, interval)
	if err != nil {
		return Expansion{}, err
	}

	maxIter := maxIterationsBounded
	if rule.IsNeverEnding() {
		maxIter = maxIterationsUnbounded
	}
	limit := opts.MaxPerRun
	if limit <= 0 {
		limit = defaultMaxPerRun
	}

	var (
		out              Expansion
		seq              int
		reachedSeriesEnd bool
	)
	for i := 0; i < maxIter; i++ {
		t, ok := iter()
		if !ok {
			reachedSeriesEnd = true
			break
		}
		if t.Before(anchor) {
			continue
		}
		if rule.RecurrenceEndDate != nil && t.After(*rule.RecurrenceEndDate) {
			reachedSeriesEnd = true
			break
		}
		seq++
		if rule.Count != nil && seq > *rule.Count {
			reachedSeriesEnd = true
			break
		}

		inWindow := !t.Before(opts.WindowStart) && t.Before(opts.WindowEnd)
		if inWindow {
			if len(out.Occurrences) >= limit {
				out.Truncated = true
				break
			}
			out.Occurrences = append(out.Occurrences, Occurrence{Start: t, SequenceNumber: seq})
		}

		// Past the window there is nothing left to emit. Bounded rules keep
		// walking so the series total below is exact; a count-based total is
		// already known and a never-ending series has none.
		if !t.Before(opts.WindowEnd) && (rule.RecurrenceEndDate == nil || rule.Count != nil) {
			break
		}
	}

	switch {
	case rule.Count != nil:
		out.TotalCount = rule.Count
	case rule.RecurrenceEndDate != nil:
		if reachedSeriesEnd {
			total := seq
			out.TotalCount = &total
		} else {
			out.Truncated = true
		}
	}
	return out, nil
}

// candidates is a pull iterator over the raw candidate positions of a rule,
// in ascending order, before window/count/end-date filtering.
type candidates func() (time.Time, bool)

func newCandidates(rule *domain.RecurrenceRule, anchor time.Time, interval int) (candidates, error) {
	switch rule.Frequency {
	case domain.FrequencyDaily:
		return stepDays(anchor, interval), nil
	case domain.FrequencyWeekly:
		if len(rule.ByDay) > 0 {
			return weeklyByDay(anchor, interval, rule.ByDay)
		}
		return stepDays(anchor, 7*interval), nil
	case domain.FrequencyMonthly:
		return monthly(rule, anchor, interval)
	case domain.FrequencyYearly:
		return yearly(rule, anchor, interval)
	default:
		return nil, domain.NewValidationError("frequency", "Invalid frequency: "+rule.Frequency.String())
	}
}

func stepDays(anchor time.Time, days int) candidates {
	next := anchor
	return func() (time.Time, bool) {
		t := next
		next = next.AddDate(0, 0, days)
		return t, true
	}
}

// weeklyByDay emits matching weekdays within every interval-th week. Weeks
// start on Sunday and the anchor's week is week zero.
func weeklyByDay(anchor time.Time, interval int, byDay []string) (candidates, error) {
	match := make(map[time.Weekday]bool, len(byDay))
	for _, code := range byDay {
		_, wd, ok := parseDayCode(code)
		if !ok {
			return nil, domain.NewValidationError("byDay", "Invalid day code: "+code)
		}
		match[wd] = true
	}
	weekZero := startOfWeek(anchor)

	cur := anchor
	return func() (time.Time, bool) {
		for {
			t := cur
			cur = cur.AddDate(0, 0, 1)
			week := int(startOfWeek(t).Sub(weekZero).Hours()) / (24 * 7)
			if week%interval == 0 && match[t.Weekday()] {
				return t, true
			}
			// In an off week, jump straight to the next on-week instead of
			// scanning day by day.
			if week%interval != 0 {
				skip := (interval - week%interval) * 7
				cur = startOfWeek(t).AddDate(0, 0, skip)
				cur = withClock(cur, anchor)
			}
		}
	}, nil
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// monthly handles three pattern shapes, checked in this order: ordinal BYDAY
// ("2WE" = second Wednesday, "-1SU" = last Sunday), BYMONTHDAY, and plain
// same-day-of-month. Months lacking the requested day yield nothing.
func monthly(rule *domain.RecurrenceRule, anchor time.Time, interval int) (candidates, error) {
	if len(rule.ByDay) > 0 {
		pick, err := ordinalDayPicker(rule.ByDay, anchor)
		if err != nil {
			return nil, err
		}
		return perMonth(anchor, interval, pick), nil
	}

	if len(rule.ByMonthDay) > 0 {
		return perMonth(anchor, interval, func(year int, month time.Month) []int {
			var days []int
			for _, d := range rule.ByMonthDay {
				if d <= daysInMonth(year, month) {
					days = append(days, d)
				}
			}
			return days
		}), nil
	}

	day := anchor.Day()
	return perMonth(anchor, interval, func(year int, month time.Month) []int {
		if day > daysInMonth(year, month) {
			return nil
		}
		return []int{day}
	}), nil
}

// perMonth steps through interval-spaced months from the anchor's month and
// emits the days pick returns for each, at the anchor's time of day.
func perMonth(anchor time.Time, interval int, pick func(year int, month time.Month) []int) candidates {
	monthIdx := 0
	empty := 0
	var queue []time.Time
	return func() (time.Time, bool) {
		for len(queue) == 0 {
			if empty >= maxEmptyPeriods {
				return time.Time{}, false
			}
			first := time.Date(anchor.Year(), anchor.Month(), 1, anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), time.UTC)
			first = first.AddDate(0, monthIdx*interval, 0)
			monthIdx++
			days := pick(first.Year(), first.Month())
			sort.Ints(days)
			for _, d := range days {
				queue = append(queue, time.Date(first.Year(), first.Month(), d, anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), time.UTC))
			}
			if len(days) == 0 {
				empty++
			} else {
				empty = 0
			}
		}
		t := queue[0]
		queue = queue[1:]
		return t, true
	}
}

// yearly emits positions in the anchor's (or BYMONTH's) months every
// interval-th year. Days come from ordinal BYDAY codes ("1MO" = first
// Monday of each selected month) when present, else BYMONTHDAY, else the
// anchor's day of month. Invalid dates (February 30th) are skipped.
func yearly(rule *domain.RecurrenceRule, anchor time.Time, interval int) (candidates, error) {
	months := rule.ByMonth
	if len(months) == 0 {
		months = []int{int(anchor.Month())}
	}
	months = append([]int(nil), months...)
	sort.Ints(months)

	var pickDays func(year int, month time.Month) []int
	switch {
	case len(rule.ByDay) > 0:
		pick, err := ordinalDayPicker(rule.ByDay, anchor)
		if err != nil {
			return nil, err
		}
		pickDays = pick
	case len(rule.ByMonthDay) > 0:
		days := append([]int(nil), rule.ByMonthDay...)
		sort.Ints(days)
		pickDays = func(year int, month time.Month) []int {
			var out []int
			for _, d := range days {
				if d <= daysInMonth(year, month) {
					out = append(out, d)
				}
			}
			return out
		}
	default:
		day := anchor.Day()
		pickDays = func(year int, month time.Month) []int {
			if day > daysInMonth(year, month) {
				return nil
			}
			return []int{day}
		}
	}

	yearIdx := 0
	empty := 0
	var queue []time.Time
	return func() (time.Time, bool) {
		for len(queue) == 0 {
			if empty >= maxEmptyPeriods {
				return time.Time{}, false
			}
			year := anchor.Year() + yearIdx*interval
			yearIdx++
			for _, m := range months {
				days := pickDays(year, time.Month(m))
				sort.Ints(days)
				for _, d := range days {
					queue = append(queue, time.Date(year, time.Month(m), d, anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), time.UTC))
				}
			}
			if len(queue) == 0 {
				empty++
			} else {
				empty = 0
			}
		}
		t := queue[0]
		queue = queue[1:]
		return t, true
	}, nil
}

// ordinalDayPicker resolves BYDAY codes into a per-month day picker. A code
// without an ordinal prefix inherits the anchor's week of month, so a plain
// "WE" on a second-Wednesday anchor keeps meaning "second Wednesday".
func ordinalDayPicker(byDay []string, anchor time.Time) (func(year int, month time.Month) []int, error) {
	type ordDay struct {
		ord int
		wd  time.Weekday
	}
	ords := make([]ordDay, 0, len(byDay))
	for _, code := range byDay {
		ord, wd, ok := parseDayCode(code)
		if !ok {
			return nil, domain.NewValidationError("byDay", "Invalid day code: "+code)
		}
		if ord == 0 {
			ord = weekOfMonth(anchor.Day())
		}
		ords = append(ords, ordDay{ord, wd})
	}
	return func(year int, month time.Month) []int {
		var days []int
		for _, o := range ords {
			if d, ok := nthWeekdayOfMonth(year, month, o.wd, o.ord); ok {
				days = append(days, d)
			}
		}
		return days
	}, nil
}

// weekOfMonth maps a day of month onto its ordinal week: days 1-7 are week
// one, 8-14 week two, and so on.
func weekOfMonth(day int) int {
	return (day-1)/7 + 1
}

// nthWeekdayOfMonth finds the day of month of the n-th given weekday, where
// n of -1 means the last one.
func nthWeekdayOfMonth(year int, month time.Month, wd time.Weekday, n int) (int, bool) {
	last := daysInMonth(year, month)
	if n == -1 {
		for d := last; d >= 1; d-- {
			if time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday() == wd {
				return d, true
			}
		}
		return 0, false
	}
	count := 0
	for d := 1; d <= last; d++ {
		if time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday() == wd {
			count++
			if count == n {
				return d, true
			}
		}
	}
	return 0, false
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func withClock(day time.Time, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), time.UTC)
}
