package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Structural rules for signup and company payloads. These are static checks
// over the candidate record; uniqueness is a separate store query.
var (
	// Roll numbers look like 22MCF1R01: admission year, programme code,
	// section digit, stream letter, serial.
	RollNoPattern = `^(\d{2})[A-Z]{3}\d[A-Z]\d{2}$`

	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	PasswordMinLength = 8

	// Course length in years, added to the admission year to get the
	// graduating batch.
	CourseYears = 3
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	RollNo *regexp.Regexp
	Email  *regexp.Regexp
}{
	RollNo: regexp.MustCompile(RollNoPattern),
	Email:  regexp.MustCompile(EmailPattern),
}

// ValidRollNo reports whether rollNo matches the institutional format.
func ValidRollNo(rollNo string) bool {
	return CompiledPatterns.RollNo.MatchString(rollNo)
}

// BatchFromRollNo derives the graduating batch year from the roll number
// prefix (22MCF1R01 => 2025). Returns 0 for a malformed roll number.
func BatchFromRollNo(rollNo string) int {
	m := CompiledPatterns.RollNo.FindStringSubmatch(rollNo)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return 2000 + year + CourseYears
}

// ValidEmail checks the general shape and, when domain is non-empty, that the
// address belongs to the institutional domain.
func ValidEmail(email, domain string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if !CompiledPatterns.Email.MatchString(email) {
		return false
	}
	if domain == "" {
		return true
	}
	return strings.HasSuffix(email, "@"+strings.TrimPrefix(domain, "@"))
}

// ValidPassword requires the configured minimum length plus at least one
// letter and one digit.
func ValidPassword(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// ValidCGPA bounds a CGPA to the 0..10 scale.
func ValidCGPA(cgpa float64) bool {
	return cgpa >= 0 && cgpa <= 10
}

// ValidPercentage bounds a percentage to 0..100.
func ValidPercentage(pct float64) bool {
	return pct >= 0 && pct <= 100
}
