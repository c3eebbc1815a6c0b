package notification

import (
	"fmt"
	"net/url"
	"strings"
)

// URLBuilder composes the frontend URLs embedded in outbound
// notifications. The frontend itself is an external collaborator; only
// its route shapes are known here.
type URLBuilder struct {
	base     string
	register string
}

// NewURLBuilder creates a URL builder. Trailing slashes on base are
// stripped so route joins stay predictable.
func NewURLBuilder(base, register string) *URLBuilder {
	return &URLBuilder{
		base:     strings.TrimRight(base, "/"),
		register: register,
	}
}

// SiteURL returns the frontend base URL.
func (b *URLBuilder) SiteURL() string { return b.base }

// RegisterURL returns the sign-up URL.
func (b *URLBuilder) RegisterURL() string { return b.register }

// RSVPURL returns the RSVP page for an event. A non-empty token is
// appended so a stub guest can act on their own RSVP without
// authenticating; full accounts get the bare URL and authenticate
// instead.
func (b *URLBuilder) RSVPURL(eventID, token string) string {
	u := fmt.Sprintf("%s/events/%s/rsvp", b.base, url.PathEscape(eventID))
	if token != "" {
		u += "?t=" + url.QueryEscape(token)
	}
	return u
}

// EventCancelledURL returns the cancellation notice page for an event.
func (b *URLBuilder) EventCancelledURL(eventID string) string {
	return fmt.Sprintf("%s/events/%s/cancelled", b.base, url.PathEscape(eventID))
}

// HostProfileURL returns the public profile page of an account.
func (b *URLBuilder) HostProfileURL(accountID string) string {
	return fmt.Sprintf("%s/profiles/%s", b.base, url.PathEscape(accountID))
}

// ActivationURL returns the email confirmation URL for a validation
// token.
func (b *URLBuilder) ActivationURL(token string) string {
	return fmt.Sprintf("%s/validate-email?t=%s", b.base, url.QueryEscape(token))
}

// PasswordResetURL returns the password reset confirmation URL for a
// reset request and its computed token.
func (b *URLBuilder) PasswordResetURL(requestID, token string) string {
	return fmt.Sprintf("%s/password-reset/%s?t=%s",
		b.base, url.PathEscape(requestID), url.QueryEscape(token))
}
