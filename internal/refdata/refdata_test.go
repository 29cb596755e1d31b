package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogs(t *testing.T) {
	assert.Len(t, Scriptures, 30)
	assert.Len(t, Countries, 18)
	assert.Len(t, Currencies, 15)
	assert.Len(t, ResetGoals, 4)
	assert.Len(t, DefaultCategories, 10)

	for code := range CountryCurrencies {
		assert.Len(t, code, 2, "country code %s", code)
	}
	assert.Equal(t, "USD", CountryCurrencies["US"])
	assert.Equal(t, "NGN", CountryCurrencies["NG"])
}

func TestValidResetGoal(t *testing.T) {
	for _, g := range ResetGoals {
		assert.True(t, ValidResetGoal(g.Value))
	}
	assert.False(t, ValidResetGoal("get_rich_quick"))
	assert.False(t, ValidResetGoal(""))
}

func TestDailyScriptureMatchesGoalThemes(t *testing.T) {
	for goal, themes := range ThemesForGoal {
		allowed := map[string]bool{}
		for _, th := range themes {
			allowed[th] = true
		}
		for day := 0; day < 30; day++ {
			s := DailyScripture(goal, day)
			assert.True(t, allowed[s.Theme], "goal %s day %d got theme %s", goal, day, s.Theme)
		}
	}
}

func TestDailyScriptureRotates(t *testing.T) {
	first := DailyScripture("budget_discipline", 0)
	second := DailyScripture("budget_discipline", 1)
	assert.NotEqual(t, first.ID, second.ID)

	// The rotation wraps instead of running out of verses.
	far := DailyScripture("budget_discipline", 1000)
	require.NotEmpty(t, far.ID)
}

func TestDailyScriptureUnknownGoalFallsBack(t *testing.T) {
	s := DailyScripture("unknown_goal", 0)
	assert.Contains(t, []string{"wisdom", "stewardship", "diligence"}, s.Theme)

	// Negative indexes clamp rather than panic.
	s = DailyScripture("budget_discipline", -5)
	assert.NotEmpty(t, s.ID)
}
