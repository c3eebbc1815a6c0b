// Package domain defines the notification vocabulary of the Planora
// core: notification types, subject references, intents, and the
// tracked-field change detector.
package domain

import "fmt"

// NotificationType identifies what happened to the subject entity.
type NotificationType string

const (
	NotifyEventInvite   NotificationType = "EVENT_INVITE"
	NotifyEventCancel   NotificationType = "EVENT_CANCEL"
	NotifyEventUpdate   NotificationType = "EVENT_UPDATE"
	NotifyEmailValidate NotificationType = "ACCOUNT_EMAIL_VALIDATE"

	// Reserved: declared in the enumeration but not yet bound to any
	// template or dispatch path.
	NotifyGuestRSVP       NotificationType = "EVENTGUEST_RSVP"
	NotifyAlbumFileUpload NotificationType = "ALBUMFILE_UPLOAD"
)

// Valid reports whether t is a member of the enumeration.
func (t NotificationType) Valid() bool {
	switch t {
	case NotifyEventInvite, NotifyEventCancel, NotifyEventUpdate,
		NotifyEmailValidate, NotifyGuestRSVP, NotifyAlbumFileUpload:
		return true
	}
	return false
}

// PreferenceCategory is the per-account setting a notification type is
// gated on.
type PreferenceCategory string

const (
	CategoryRSVPUpdates    PreferenceCategory = "rsvp_updates"
	CategorySocialActivity PreferenceCategory = "social_activity"
)

// Category returns the preference category gating external delivery of
// this notification type. RSVP changes are gated on "rsvp updates";
// everything else on "social activity".
func (t NotificationType) Category() PreferenceCategory {
	if t == NotifyGuestRSVP {
		return CategoryRSVPUpdates
	}
	return CategorySocialActivity
}

// SubjectKind tags the entity kind a notification is about. The set is
// closed; code that consumes a SubjectRef switches exhaustively on the
// kind instead of doing a runtime type lookup.
type SubjectKind string

const (
	SubjectEvent     SubjectKind = "EVENT"
	SubjectAlbumFile SubjectKind = "ALBUM_FILE"
	SubjectComment   SubjectKind = "COMMENT"
	SubjectAccount   SubjectKind = "ACCOUNT"
)

// SubjectRef is a typed reference to the entity a notification is about.
type SubjectRef struct {
	Kind SubjectKind `json:"kind"`
	ID   string      `json:"id"`
}

// EventRef builds a SubjectRef for an event.
func EventRef(id string) SubjectRef { return SubjectRef{Kind: SubjectEvent, ID: id} }

// AlbumFileRef builds a SubjectRef for an album file.
func AlbumFileRef(id string) SubjectRef { return SubjectRef{Kind: SubjectAlbumFile, ID: id} }

// AccountRef builds a SubjectRef for an account.
func AccountRef(id string) SubjectRef { return SubjectRef{Kind: SubjectAccount, ID: id} }

// Validate checks that the reference is well-formed.
func (r SubjectRef) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("subject id is empty")
	}
	switch r.Kind {
	case SubjectEvent, SubjectAlbumFile, SubjectComment, SubjectAccount:
		return nil
	default:
		return fmt.Errorf("unknown subject kind %q", r.Kind)
	}
}

// Intent is an in-memory request to notify a set of recipients about a
// subject entity. It is produced by the change detector or directly by
// a lifecycle transition, consumed exactly once by the dispatcher, and
// never persisted.
type Intent struct {
	Type         NotificationType
	SenderID     string
	RecipientIDs []string
	Subject      SubjectRef
}

// Validate checks the intent before fan-out.
func (i Intent) Validate() error {
	if !i.Type.Valid() {
		return fmt.Errorf("unknown notification type %q", i.Type)
	}
	if i.SenderID == "" {
		return fmt.Errorf("sender id is empty")
	}
	return i.Subject.Validate()
}
