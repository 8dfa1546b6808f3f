// Package validation owns the field rules for reservations and contact
// messages. The same predicates and message keys back both the form-level
// checks used by the client workflow and the validator/v10 tags checked at
// the persistence boundary.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// CountryRule is the national number length accepted for a dialing prefix.
type CountryRule struct {
	Code      string
	MinDigits int
	MaxDigits int
}

// Countries lists the dialing prefixes the reservation form offers.
var Countries = []CountryRule{
	{Code: "+41", MinDigits: 9, MaxDigits: 9},
	{Code: "+91", MinDigits: 10, MaxDigits: 10},
	{Code: "+33", MinDigits: 9, MaxDigits: 9},
	{Code: "+49", MinDigits: 10, MaxDigits: 11},
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[\p{L}\s]+$`)
	clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

func LookupCountry(code string) (CountryRule, bool) {
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return CountryRule{}, false
}

// Digits strips everything except ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NationalDigits returns the national significant number of a locally
// written phone number: digits only, without the single trunk 0 that all
// supported countries prefix domestic numbers with.
func NationalDigits(phone string) string {
	return strings.TrimPrefix(Digits(phone), "0")
}

// ValidatePhone reports whether phone, as typed next to countryCode, has the
// number of digits that country requires. A retyped dialing prefix is
// ignored, the same way NormalizePhone drops it.
func ValidatePhone(countryCode, phone string) bool {
	rule, ok := LookupCountry(countryCode)
	if !ok {
		return false
	}
	phone = strings.TrimPrefix(strings.TrimSpace(phone), countryCode)
	n := len(NationalDigits(phone))
	return n >= rule.MinDigits && n <= rule.MaxDigits
}

// NormalizePhone produces the stored form: dialing prefix followed by the
// national digits. Without a country code the number must already be
// international; it keeps its leading + and loses all formatting.
func NormalizePhone(countryCode, phone string) string {
	phone = strings.TrimSpace(phone)
	if countryCode == "" {
		if strings.HasPrefix(phone, "+") {
			return "+" + Digits(phone)
		}
		return Digits(phone)
	}
	phone = strings.TrimPrefix(phone, countryCode)
	return countryCode + NationalDigits(phone)
}

// ValidInternationalPhone checks a stored phone value against the country
// table, e.g. +41791234567.
func ValidInternationalPhone(phone string) bool {
	for _, rule := range Countries {
		if !strings.HasPrefix(phone, rule.Code) {
			continue
		}
		rest := phone[len(rule.Code):]
		if rest != Digits(rest) {
			return false
		}
		return len(rest) >= rule.MinDigits && len(rest) <= rule.MaxDigits
	}
	return false
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// EmailInDomains reports whether email belongs to one of domains. An empty
// list accepts every domain.
func EmailInDomains(email string, domains []string) bool {
	if len(domains) == 0 {
		return true
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	host := strings.ToLower(email[at+1:])
	for _, d := range domains {
		if host == strings.ToLower(strings.TrimPrefix(d, "@")) {
			return true
		}
	}
	return false
}

// ValidName accepts letters (any script) and spaces only.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidClockTime accepts zero-padded 24 hour HH:MM.
func ValidClockTime(s string) bool {
	if !clockPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// GuestNumber parses the guest count as typed into a form. ok is false for
// empty or non-numeric input.
func GuestNumber(s string) (n int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func blank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
