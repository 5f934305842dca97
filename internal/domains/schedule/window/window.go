package window

import (
	"time"

	"riminspect/config"
	"riminspect/shared/failure"
	"riminspect/shared/timezone"
)

const (
	dateLayout        = "2006-01-02"
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
)

// Policy selects a configured slot duration. The duration depends on the
// creation path: regular bookings get the standard policy, immediate-start
// and update paths get the short one.
type Policy string

const (
	PolicyStandard Policy = "standard"
	PolicyShort    Policy = "short"
)

// Duration resolves a policy against the configured minutes.
func Duration(cfg *config.Config, policy Policy) time.Duration {
	switch policy {
	case PolicyShort:
		return time.Duration(cfg.App.Schedule.ShortDurationMinutes) * time.Minute
	default:
		return time.Duration(cfg.App.Schedule.StandardDurationMinutes) * time.Minute
	}
}

// Window is a schedule's computed time slot. Start and End are normalized
// times-of-day (zero date) used for storage and overlap checks; StartAt and
// EndAt are the absolute instants handed to the transition queue.
type Window struct {
	Date    time.Time
	Start   time.Time
	End     time.Time
	StartAt time.Time
	EndAt   time.Time
}

// Compute derives the window for a caller-supplied date and start time.
// The end instant is always start + duration; callers never supply it.
func Compute(dateStr, timeStr string, duration time.Duration) (Window, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, timezone.GetLocation())
	if err != nil {
		return Window{}, failure.BadRequestFromString("scheduled_date must be a valid date (YYYY-MM-DD)")
	}

	start, err := parseTimeOfDay(timeStr)
	if err != nil {
		return Window{}, failure.BadRequestFromString("scheduled_time must be a valid time (HH:MM or HH:MM:SS)")
	}

	startAt := time.Date(
		date.Year(), date.Month(), date.Day(),
		start.Hour(), start.Minute(), start.Second(), 0,
		timezone.GetLocation(),
	)

	return build(date, startAt, duration)
}

// FromInstant derives the window for the immediate-start paths, anchored at
// the current clock reading.
func FromInstant(now time.Time, duration time.Duration) (Window, error) {
	now = timezone.ToAppTime(now).Truncate(time.Second)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return build(date, now, duration)
}

func build(date, startAt time.Time, duration time.Duration) (Window, error) {
	if duration <= 0 {
		return Window{}, failure.BadRequestFromString("slot duration must be positive")
	}

	endAt := startAt.Add(duration)

	// Slots are bucketed per calendar date; a window reaching past midnight
	// has no well-defined bucket, so it is rejected outright.
	if endAt.Year() != startAt.Year() || endAt.YearDay() != startAt.YearDay() {
		return Window{}, failure.BadRequestFromString("schedule must not cross midnight")
	}

	return Window{
		Date:    date,
		Start:   TimeOfDay(startAt),
		End:     TimeOfDay(endAt),
		StartAt: startAt,
		EndAt:   endAt,
	}, nil
}

// TimeOfDay strips the calendar date so stored time bounds compare purely as
// times within a day.
func TimeOfDay(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func parseTimeOfDay(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err == nil {
		return t, nil
	}

	return time.Parse(timeLayoutSeconds, value)
}
