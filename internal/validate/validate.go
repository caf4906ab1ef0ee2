package validate

import (
	"regexp"
	"strings"
)

var (
	reID         = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reDealStatus = regexp.MustCompile(`^(active|tracked|purchased|sold|ignored)$`)
	reItemStatus = regexp.MustCompile(`^(in_inventory|listed|sold|returned)$`)
)

// ID validates a resource identifier from a path parameter.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Title validates a displayable title with a reasonable max length.
func Title(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 200 {
		return "", false
	}
	return s, true
}

// Name validates short display names (alerts, templates, stats).
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Price accepts any non-negative amount. Zero is a valid observed price.
func Price(v float64) bool { return v >= 0 }

// PositivePrice rejects zero; used where a missing number must read as absent
// (the AI routes treat currentPrice == 0 as "not provided").
func PositivePrice(v float64) bool { return v > 0 }

func DealStatus(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reDealStatus.MatchString(s)
}

func ItemStatus(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reItemStatus.MatchString(s)
}

// Score clamps a match/confidence score into 0..100.
func Score(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
