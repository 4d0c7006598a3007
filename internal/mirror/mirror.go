// Package mirror classifies clock times into mirror, reversed, and regular
// hours and derives the numerological root number.
//
// All functions expect a pre-validated "HH:MM" string (see validation.ValidateTime);
// they have no failure mode of their own.
package mirror

import (
	"strings"

	"mirrortime/internal/models"
)

func splitTime(t string) (hh, mm string) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return t, ""
	}
	return parts[0], parts[1]
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsMirrorHour reports whether the hour and minute components are identical,
// e.g. "12:12" or "05:05".
func IsMirrorHour(t string) bool {
	hh, mm := splitTime(t)
	return hh == mm
}

// IsReversedHour reports whether the hour component equals the minute
// component reversed character-by-character, e.g. "12:21" or "03:30".
func IsReversedHour(t string) bool {
	hh, mm := splitTime(t)
	return hh == reverse(mm)
}

// TimeType classifies a time string. Mirror takes precedence over reversed:
// a palindromic hour like "11:11" satisfies both tests but is reported as a
// mirror hour.
func TimeType(t string) string {
	if IsMirrorHour(t) {
		return models.TypeMirrorHour
	}
	if IsReversedHour(t) {
		return models.TypeReversedHour
	}
	return models.TypeRegularHour
}

// RootNumber sums the digits of the time (separator ignored) and reduces the
// sum to a single digit, e.g. "12:34" -> 1+2+3+4 = 10 -> 1.
func RootNumber(t string) int {
	sum := 0
	for _, r := range t {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	for sum > 9 {
		next := 0
		for sum > 0 {
			next += sum % 10
			sum /= 10
		}
		sum = next
	}
	return sum
}
