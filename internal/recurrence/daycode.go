package recurrence

import (
	"regexp"
	"strconv"
	"time"

	"github.com/teambition/rrule-go"
)

// Day codes follow the RFC 5545 BYDAY shape: an optional ordinal prefix
// (1-5 or -1 for "last") followed by a two-letter weekday. Ordinals are
// only meaningful for monthly and yearly rules.
var dayCodeRe = regexp.MustCompile(`^(-1|[1-5])?(SU|MO|TU|WE|TH|FR|SA)$`)

var weekdayByCode = map[string]time.Weekday{
	"SU": time.Sunday,
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
}

var rruleWeekdayByCode = map[string]rrule.Weekday{
	"SU": rrule.SU,
	"MO": rrule.MO,
	"TU": rrule.TU,
	"WE": rrule.WE,
	"TH": rrule.TH,
	"FR": rrule.FR,
	"SA": rrule.SA,
}

// parseDayCode splits a BYDAY code into its ordinal and weekday parts.
// ord is 0 for plain codes, 1..5 for "nth weekday of month", -1 for "last".
func parseDayCode(code string) (ord int, wd time.Weekday, ok bool) {
	m := dayCodeRe.FindStringSubmatch(code)
	if m == nil {
		return 0, 0, false
	}
	switch m[1] {
	case "":
		ord = 0
	case "-1":
		ord = -1
	default:
		ord = int(m[1][0] - '0')
	}
	return ord, weekdayByCode[m[2]], true
}

// codeByRRuleDay indexes two-letter codes by rrule-go's weekday numbering,
// which starts at Monday.
var codeByRRuleDay = [7]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// dayCodeOf renders an rrule-go weekday back into BYDAY code form.
func dayCodeOf(wd rrule.Weekday) string {
	code := codeByRRuleDay[wd.Day()]
	if n := wd.N(); n != 0 {
		return strconv.Itoa(n) + code
	}
	return code
}

// rruleWeekday converts a parsed day code into the rrule-go representation,
// carrying the ordinal through for monthly patterns.
func rruleWeekday(code string) (rrule.Weekday, bool) {
	ord, _, ok := parseDayCode(code)
	if !ok {
		return rrule.Weekday{}, false
	}
	base := rruleWeekdayByCode[code[len(code)-2:]]
	if ord == 0 {
		return base, true
	}
	return base.Nth(ord), true
}
