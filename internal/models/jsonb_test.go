package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	l := StringList{"w1d1", "w1d2"}
	v, err := l.Value()
	require.NoError(t, err)

	var back StringList
	require.NoError(t, back.Scan(v))
	assert.Equal(t, l, back)
}

func TestStringListScanNilLeavesEmpty(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)
}

func TestStringListContains(t *testing.T) {
	l := StringList{"w1d1", "w2d3"}
	assert.True(t, l.Contains("w2d3"))
	assert.False(t, l.Contains("w2d4"))
	assert.False(t, StringList(nil).Contains("w1d1"))
}

func TestWeeklyReflectionsRoundTrip(t *testing.T) {
	refl := WeeklyReflections{{Week: 1, Wins: "stuck to the budget", Challenges: "eating out", NextSteps: "meal plan"}}
	v, err := refl.Value()
	require.NoError(t, err)

	var back WeeklyReflections
	require.NoError(t, back.Scan(string(v.([]byte))), "scan accepts text too")
	require.Len(t, back, 1)
	assert.Equal(t, refl[0].Wins, back[0].Wins)
}
