package service

import (
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

// NewWindow returns the attendance day that contains now.
// The day starts at dayStartHour:00:00 in loc; before that hour "today" is still
// the previous calendar day.
func NewWindow(now time.Time, loc *time.Location, dayStartHour int) entity.Window {
	start := dayStart(now, loc, dayStartHour)

	return entity.Window{
		Now:   now.In(loc),
		Start: start,
		Label: start.Format(domain.DayLabelLayout),
		Date:  start.Format(domain.DateKeyLayout),
	}
}

// EffectiveDay returns the label and date key of the attendance day a unix
// timestamp falls into.
func EffectiveDay(timestamp int64, loc *time.Location, dayStartHour int) (label, date string) {
	start := dayStart(time.Unix(timestamp, 0), loc, dayStartHour)
	return start.Format(domain.DayLabelLayout), start.Format(domain.DateKeyLayout)
}

func dayStart(now time.Time, loc *time.Location, dayStartHour int) time.Time {
	local := now.In(loc)

	start := time.Date(local.Year(), local.Month(), local.Day(), dayStartHour, 0, 0, 0, loc)
	if local.Hour() < dayStartHour {
		start = time.Date(local.Year(), local.Month(), local.Day()-1, dayStartHour, 0, 0, 0, loc)
	}

	return start
}
