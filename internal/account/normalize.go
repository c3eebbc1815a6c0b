// Package account manages account records: contact stubs, endpoint
// normalization and the email validation flow.
package account

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	errs "planora.io/planora/internal/pkg/errors"
)

// defaultRegion is assumed for phone numbers given without a country
// prefix.
const defaultRegion = "US"

// NormalizeEmail lowercases the domain part of an address. The local
// part is case-sensitive per RFC and left alone.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// NormalizePhone parses a phone number and returns its E.164 form.
// Numbers are stored and compared only in this form, so the same
// endpoint written differently still resolves to one account.
func NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", errs.BadRequest("PHONE_INVALID", "phone number could not be parsed")
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", errs.BadRequest("PHONE_INVALID", "phone number is not valid")
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
