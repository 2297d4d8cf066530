package usecase

import (
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultRegularSeasonWeeks = 18
	daysPerWeek               = 7
)

// SeasonCalendar maps wall-clock time to an NFL week of one season. Weeks are
// seven-day blocks counted from Start.
type SeasonCalendar struct {
	season       int
	start        time.Time
	regularWeeks int
	clock        clockwork.Clock
}

func NewSeasonCalendar(season int, start time.Time, regularWeeks int, clock clockwork.Clock) SeasonCalendar {
	if regularWeeks < 1 {
		regularWeeks = DefaultRegularSeasonWeeks
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return SeasonCalendar{
		season:       season,
		start:        start.UTC(),
		regularWeeks: regularWeeks,
		clock:        clock,
	}
}

func (c SeasonCalendar) Season() int {
	return c.season
}

// WeekAt returns false before the season start. Later dates are clamped to
// the last regular season week.
func (c SeasonCalendar) WeekAt(now time.Time) (int, bool) {
	if now.Before(c.start) {
		return 0, false
	}

	days := int(now.Sub(c.start) / (24 * time.Hour))
	week := days/daysPerWeek + 1
	if week > c.regularWeeks {
		week = c.regularWeeks
	}
	return week, true
}

func (c SeasonCalendar) Current() (season, week int, ok bool) {
	week, ok = c.WeekAt(c.clock.Now())
	return c.season, week, ok
}

func (c SeasonCalendar) Now() time.Time {
	return c.clock.Now()
}
