package horario

import (
	"errors"
	"time"

	"github.com/go-playground/locales"
)

const dateLayout = "2006-01-02"

// ErrInvalidRange reports a range whose start date falls after its end date.
var ErrInvalidRange = errors.New("el inicio del rango es posterior al fin")

// parseDate interprets an ISO date as a local civil day. Parsing in the local
// zone keeps the weekday attached to the intended date instead of shifting to
// a neighbor through UTC.
func parseDate(iso string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, iso, time.Local)
}

// WeekdayName returns the long weekday name of an ISO date in the locale of
// the given translator ("miércoles" for 2026-03-04 under es_CO).
func WeekdayName(iso string, trans locales.Translator) (string, error) {
	d, err := parseDate(iso)
	if err != nil {
		return "", err
	}
	return trans.WeekdayWide(d.Weekday()), nil
}

// MonthBuckets lists every "YYYY-MM" month overlapping [from, to], in order.
// Only the year and month components matter for the bucket boundaries.
func MonthBuckets(from, to string) ([]string, error) {
	a, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	b, err := parseDate(to)
	if err != nil {
		return nil, err
	}
	if a.After(b) {
		return nil, ErrInvalidRange
	}

	cur := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, time.Local)
	end := time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, time.Local)

	months := []string{}
	for !cur.After(end) {
		months = append(months, cur.Format("2006-01"))
		cur = cur.AddDate(0, 1, 0)
	}
	return months, nil
}
