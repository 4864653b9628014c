// Package policy implements the client-side password policy. A fixed table
// of rules is evaluated into a validity verdict, user-facing messages for the
// failed requirements, and a coarse strength rating the UI renders as a
// progress indicator.
package policy

import (
	"strings"
	"unicode/utf8"
)

// Strength is the qualitative rating derived from the normalized rule score.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthFair   Strength = "fair"
	StrengthGood   Strength = "good"
	StrengthStrong Strength = "strong"
)

const (
	// minLength is the minimum accepted password length, in runes.
	minLength = 8
	// recommendedLength is the advisory length that earns extra score.
	recommendedLength = 12
	// specialChars is the fixed set of accepted special characters.
	specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// commonFragments are denylisted fragments matched case-insensitively
// anywhere in the password. A match lowers the score but never blocks
// acceptance.
var commonFragments = []string{"password", "123456", "qwerty", "abc123", "password123"}

// Rule is a single evaluation criterion.
type Rule struct {
	// Check reports whether the password satisfies the rule.
	Check func(password string) bool
	// Message is shown to the user when a required rule fails.
	Message string
	// Weight is the rule's contribution to the strength score.
	Weight float64
}

// requiredRules must all pass for a password to be accepted. Failure
// messages are reported in the order the rules appear here.
var requiredRules = []Rule{
	{Check: hasMinLength, Message: "Password must be at least 8 characters long", Weight: 1.0},
	{Check: hasUppercase, Message: "Password must contain at least one uppercase letter", Weight: 1.0},
	{Check: hasLowercase, Message: "Password must contain at least one lowercase letter", Weight: 1.0},
	{Check: hasDigit, Message: "Password must contain at least one number", Weight: 1.0},
	{Check: hasSpecial, Message: "Password must contain at least one special character", Weight: 1.0},
}

// advisoryRules affect only the strength rating, never acceptance, and their
// failures are never reported to the user.
var advisoryRules = []Rule{
	{Check: hasRecommendedLength, Message: "Password should be at least 12 characters long", Weight: 0.5},
	{Check: hasNoTripleRepeat, Message: "Password should not repeat a character three times in a row", Weight: 0.5},
	{Check: isNotAllDigits, Message: "Password should not consist of numbers only", Weight: 0.5},
	{Check: hasNoCommonFragment, Message: "Password should not contain common patterns", Weight: 0.5},
}

// strengthBands maps a minimum score ratio (inclusive) to a rating,
// scanned from strongest to weakest.
var strengthBands = []struct {
	min    float64
	rating Strength
}{
	{0.8, StrengthStrong},
	{0.6, StrengthGood},
	{0.4, StrengthFair},
	{0.0, StrengthWeak},
}

// Evaluation is the outcome of checking one candidate password.
type Evaluation struct {
	// Valid is true when every required rule passed.
	Valid bool
	// Errors lists the messages of the failed required rules, in rule order.
	Errors []string
	// Strength is the qualitative rating of the password.
	Strength Strength
}

// Evaluate checks a candidate password against the policy. It accepts any
// string, never fails, and has no side effects; identical inputs always
// produce identical results.
func Evaluate(password string) Evaluation {
	var (
		score    float64
		maxScore float64
		errs     []string
	)

	for _, rule := range requiredRules {
		maxScore += rule.Weight
		if rule.Check(password) {
			score += rule.Weight
			continue
		}
		errs = append(errs, rule.Message)
	}

	for _, rule := range advisoryRules {
		maxScore += rule.Weight
		if rule.Check(password) {
			score += rule.Weight
		}
	}

	return Evaluation{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Strength: rateStrength(score / maxScore),
	}
}

func rateStrength(ratio float64) Strength {
	for _, band := range strengthBands {
		if ratio >= band.min {
			return band.rating
		}
	}
	return StrengthWeak
}

// Rule predicates. The character-class checks are ASCII-only: non-ASCII
// runes count toward length but satisfy none of them.

func hasMinLength(password string) bool {
	return utf8.RuneCountInString(password) >= minLength
}

func hasRecommendedLength(password string) bool {
	return utf8.RuneCountInString(password) >= recommendedLength
}

func hasUppercase(password string) bool {
	return strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' })
}

func hasLowercase(password string) bool {
	return strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' })
}

func hasDigit(password string) bool {
	return strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' })
}

func hasSpecial(password string) bool {
	return strings.ContainsAny(password, specialChars)
}

func hasNoTripleRepeat(password string) bool {
	var prev rune
	run := 0
	for _, r := range password {
		if r == prev {
			run++
			if run >= 3 {
				return false
			}
			continue
		}
		prev = r
		run = 1
	}
	return true
}

func isNotAllDigits(password string) bool {
	if password == "" {
		return true
	}
	for _, r := range password {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}

func hasNoCommonFragment(password string) bool {
	lowered := strings.ToLower(password)
	for _, fragment := range commonFragments {
		if strings.Contains(lowered, fragment) {
			return false
		}
	}
	return true
}
