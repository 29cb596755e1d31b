package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.org", "UPPER@EXAMPLE.COM"}
	for _, e := range valid {
		assert.True(t, ValidateEmail(e), e)
	}
	invalid := []string{"", "plain", "missing@tld", "@example.com", "a b@example.com"}
	for _, e := range invalid {
		assert.False(t, ValidateEmail(e), e)
	}
}

func TestValidateNameAndPassword(t *testing.T) {
	assert.False(t, ValidateName("x"))
	assert.True(t, ValidateName("Jo"))

	assert.False(t, ValidatePassword("short"))
	assert.True(t, ValidatePassword("longenough"))
}

func TestValidMonth(t *testing.T) {
	assert.False(t, ValidMonth(0))
	assert.True(t, ValidMonth(1))
	assert.True(t, ValidMonth(12))
	assert.False(t, ValidMonth(13))
}

func TestValidBudgetYear(t *testing.T) {
	assert.False(t, ValidBudgetYear(2019))
	assert.True(t, ValidBudgetYear(2020))
}

func TestOneOf(t *testing.T) {
	assert.True(t, OneOf("tithe", "tithe", "offering", "seed", "charity"))
	assert.False(t, OneOf("loan", "tithe", "offering", "seed", "charity"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("15/03/2025")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}
