package util

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidateName(name string) bool {
	return len(name) >= 2
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}

func ValidMonth(m int) bool {
	return m >= 1 && m <= 12
}

func ValidBudgetYear(y int) bool {
	return y >= 2020
}

func OneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
