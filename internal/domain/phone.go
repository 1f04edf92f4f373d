package domain

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// PhoneNormalizer turns user-typed numbers into lookup keys.
type PhoneNormalizer struct {
	region string
}

// NewPhoneNormalizer builds a normalizer. With an empty region numbers are only
// stripped of spaces and dashes; with a region (ISO 3166-1 alpha-2, e.g. "CL")
// valid numbers are formatted to E.164.
func NewPhoneNormalizer(region string) *PhoneNormalizer {
	return &PhoneNormalizer{region: strings.ToUpper(strings.TrimSpace(region))}
}

// Normalize returns "" when nothing is left after stripping.
func (p *PhoneNormalizer) Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")

	if s == "" || p == nil || p.region == "" {
		return s
	}

	num, err := phonenumbers.Parse(s, p.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return s
	}

	return phonenumbers.Format(num, phonenumbers.E164)
}
