package reset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProgramTableShape(t *testing.T) {
	require.Len(t, Tasks, 84, "12 weeks of 7 tasks")

	seen := map[string]bool{}
	i := 0
	for week := 1; week <= 12; week++ {
		for day := 1; day <= 7; day++ {
			task := Tasks[i]
			assert.Equal(t, week, task.Week)
			assert.Equal(t, day, task.Day)
			assert.NotEmpty(t, task.Title)
			assert.False(t, seen[task.ID], "duplicate task id %s", task.ID)
			seen[task.ID] = true
			i++
		}
	}
}

func TestTaskForDayIndex(t *testing.T) {
	assert.Equal(t, "w1d1", TaskForDayIndex(0).ID, "fresh plan starts at week 1 day 1")
	assert.Equal(t, Tasks[5].ID, TaskForDayIndex(5).ID)

	last := Tasks[len(Tasks)-1]
	assert.Equal(t, last.ID, TaskForDayIndex(len(Tasks)).ID, "past the end keeps presenting the final task")
	assert.Equal(t, last.ID, TaskForDayIndex(90).ID)
	assert.Equal(t, last.ID, TaskForDayIndex(500).ID)
	assert.Equal(t, "w1d1", TaskForDayIndex(-1).ID)
}

func TestDayNumber(t *testing.T) {
	assert.Equal(t, 1, DayNumber(0))
	assert.Equal(t, 42, DayNumber(41))
	assert.Equal(t, 90, DayNumber(89))
	assert.Equal(t, 90, DayNumber(90), "shown day number caps at 90")
	assert.Equal(t, 90, DayNumber(200))
}

func TestDayIndexCountsCompletions(t *testing.T) {
	assert.Equal(t, 0, DayIndex(nil))
	assert.Equal(t, 3, DayIndex([]string{"w1d1", "w1d2", "w1d3"}))
}

func TestTaskByID(t *testing.T) {
	task, ok := TaskByID("w3d5")
	require.True(t, ok)
	assert.Equal(t, 3, task.Week)
	assert.Equal(t, 5, task.Day)

	_, ok = TaskByID("w99d1")
	assert.False(t, ok)
}

func TestNextStreak(t *testing.T) {
	monday := date(2025, time.March, 10)

	tests := []struct {
		name   string
		streak int
		last   *time.Time
		today  time.Time
		want   int
	}{
		{"first ever completion", 0, nil, monday, 1},
		{"consecutive day increments", 4, &monday, monday.AddDate(0, 0, 1), 5},
		{"two-day gap resets", 4, &monday, monday.AddDate(0, 0, 2), 1},
		{"week-long gap resets", 12, &monday, monday.AddDate(0, 0, 7), 1},
		{"same day unchanged", 4, &monday, monday, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.streak, tt.last, tt.today))
		})
	}
}

func TestNextStreakIgnoresTimeOfDay(t *testing.T) {
	// Completed late Monday evening, then again early Tuesday morning:
	// calendar days are consecutive even though less than a day elapsed.
	lastEvening := time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC)
	nextMorning := time.Date(2025, time.March, 11, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 3, NextStreak(2, &lastEvening, nextMorning))

	// Early Monday then late Monday is still the same day.
	morning := time.Date(2025, time.March, 10, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.March, 10, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, NextStreak(2, &morning, evening))
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2025, time.July, 4, 18, 45, 12, 999, time.UTC)
	got := Midnight(ts)
	assert.Equal(t, date(2025, time.July, 4), got)
}
