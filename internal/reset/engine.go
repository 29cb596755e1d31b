// Package reset holds the guided program table and the progress arithmetic:
// day-index derivation, bounds-clamped task lookup, and the consecutive-day
// streak rule. Everything here is pure; persistence lives in the handlers.
package reset

import "time"

// ProgramDays is the advertised length of the program. The day number shown
// to users is capped here even after every task is done.
const ProgramDays = 90

// TaskByID returns the program task with the given id.
func TaskByID(id string) (Task, bool) {
	for _, t := range Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// DayIndex derives the 0-based program position from how many tasks the user
// has completed.
func DayIndex(completed []string) int {
	return len(completed)
}

// TaskForDayIndex returns the active task for a day index. Past the end of
// the table it keeps returning the final task instead of indexing out of
// range.
func TaskForDayIndex(dayIndex int) Task {
	if dayIndex < 0 {
		dayIndex = 0
	}
	if dayIndex > len(Tasks)-1 {
		dayIndex = len(Tasks) - 1
	}
	return Tasks[dayIndex]
}

// DayNumber is the 1-based day shown to the user, capped at ProgramDays.
func DayNumber(dayIndex int) int {
	n := dayIndex + 1
	if n > ProgramDays {
		n = ProgramDays
	}
	return n
}

// Midnight truncates a timestamp to the start of its calendar day. Streak
// comparisons work on whole days; time of day never matters.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextStreak applies the streak rule for a state-changing completion on
// today, given the previous streak and the last completion date (nil when no
// task was ever completed):
//
//	no prior completion      -> 1
//	exactly one day later    -> streak + 1
//	more than one day later  -> 1
//	same day                 -> streak unchanged
func NextStreak(streak int, lastCompleted *time.Time, today time.Time) int {
	if lastCompleted == nil {
		return 1
	}
	diff := daysBetween(Midnight(*lastCompleted), Midnight(today))
	switch {
	case diff == 1:
		return streak + 1
	case diff > 1:
		return 1
	default:
		return streak
	}
}

func daysBetween(a, b time.Time) int {
	// Compare calendar dates in UTC so a DST transition cannot shave the
	// gap below a whole day.
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
