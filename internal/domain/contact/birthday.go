package contact

import (
	"time"
)

// BirthdayWindowDays is the horizon for the upcoming-birthdays listing.
// A birthday falling on the current day counts as day zero of the window.
const BirthdayWindowDays = 7

// NextBirthday returns the next occurrence of a birthday relative to today.
// Only the month and day of born matter. A birthday whose month and day equal
// today's resolves to today, not to next year. Feb 29 clamps to Feb 28 when
// the target year is not a leap year.
func NextBirthday(today, born time.Time) time.Time {
	year := today.Year()
	switch {
	case born.Month() > today.Month():
		// this year
	case born.Month() < today.Month():
		year++
	default:
		if born.Day() < today.Day() {
			year++
		}
	}

	return occurrenceIn(year, born.Month(), born.Day(), today.Location())
}

// UpcomingBirthdays filters contacts whose next birthday falls within
// [today, today+BirthdayWindowDays]. Contacts without a birth date cannot be
// evaluated and are skipped. Input order is preserved.
func UpcomingBirthdays(today time.Time, contacts Contacts) Contacts {
	day := startOfDay(today)

	var result Contacts
	for _, c := range contacts {
		if c.BornDate.IsZero() {
			continue
		}
		// Calendar-date comparison: a duration-based check would shift the
		// boundary by an hour across DST transitions.
		next := NextBirthday(day, c.BornDate)
		if !next.After(day.AddDate(0, 0, BirthdayWindowDays)) {
			result = append(result, c)
		}
	}

	return result
}

func occurrenceIn(year int, month time.Month, day int, loc *time.Location) time.Time {
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
