// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// AccountSettings is the predicate function for accountsettings builders.
type AccountSettings func(*sql.Selector)

// Album is the predicate function for album builders.
type Album func(*sql.Selector)

// AlbumFile is the predicate function for albumfile builders.
type AlbumFile func(*sql.Selector)

// AlbumType is the predicate function for albumtype builders.
type AlbumType func(*sql.Selector)

// CommChannel is the predicate function for commchannel builders.
type CommChannel func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// EventGuest is the predicate function for eventguest builders.
type EventGuest func(*sql.Selector)

// InAppNotification is the predicate function for inappnotification builders.
type InAppNotification func(*sql.Selector)

// PasswordReset is the predicate function for passwordreset builders.
type PasswordReset func(*sql.Selector)

// Thumbnail is the predicate function for thumbnail builders.
type Thumbnail func(*sql.Selector)
