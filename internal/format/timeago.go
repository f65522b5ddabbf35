package format

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Calendar units use Gregorian averages so a month is exactly a twelfth of a year.
const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Year  = time.Duration(365.2425 * float64(Day))
	Month = Year / 12
)

// Each unit gets two rungs: the singular one below twice the unit and the
// plural one below the next unit. humanize divides with integer division,
// which gives the floor of the elapsed count.
var agoMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Second, Format: "1 second %s", DivBy: 1},
	{D: time.Minute, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * Day, Format: "1 day %s", DivBy: 1},
	{D: Week, Format: "%d days %s", DivBy: Day},
	{D: 2 * Week, Format: "1 week %s", DivBy: 1},
	{D: Month, Format: "%d weeks %s", DivBy: Week},
	{D: 2 * Month, Format: "1 month %s", DivBy: 1},
	{D: Year, Format: "%d months %s", DivBy: Month},
	{D: 2 * Year, Format: "1 year %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years %s", DivBy: Year},
}

// TimeAgo describes how long before now the instant then was, using the
// largest whole unit, e.g. "3 hours ago". Instants after now read "... from now".
func TimeAgo(then, now time.Time) string {
	return humanize.CustomRelTime(then, now, "ago", "from now", agoMagnitudes)
}
