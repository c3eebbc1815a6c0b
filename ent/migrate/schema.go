// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 40},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"CONTACT", "SIGNED_UP", "ACTIVE", "DELETED", "DEACTIVATED"}, Default: "SIGNED_UP"},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "profile_privacy", Type: field.TypeEnum, Enums: []string{"PUBLIC", "PRIVATE"}, Default: "PUBLIC"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "date_joined", Type: field.TypeTime, Nullable: true},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_email",
				Unique:  true,
				Columns: []*schema.Column{AccountsColumns[3]},
			},
			{
				Name:    "account_phone",
				Unique:  true,
				Columns: []*schema.Column{AccountsColumns[4]},
			},
			{
				Name:    "account_status",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[6]},
			},
		},
	}
	// AccountSettingsColumns holds the columns for the "account_settings" table.
	AccountSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email_rsvp_updates", Type: field.TypeBool, Default: true},
		{Name: "email_social_activity", Type: field.TypeBool, Default: true},
		{Name: "email_promotions", Type: field.TypeBool, Default: true},
		{Name: "text_rsvp_updates", Type: field.TypeBool, Nullable: true},
		{Name: "text_social_activity", Type: field.TypeBool, Nullable: true},
		{Name: "text_promotions", Type: field.TypeBool, Nullable: true},
		{Name: "default_event_privacy", Type: field.TypeEnum, Enums: []string{"PUBLIC", "PRIVATE"}, Default: "PRIVATE"},
		{Name: "account_id", Type: field.TypeString, Unique: true},
	}
	// AccountSettingsTable holds the schema information for the "account_settings" table.
	AccountSettingsTable = &schema.Table{
		Name:       "account_settings",
		Columns:    AccountSettingsColumns,
		PrimaryKey: []*schema.Column{AccountSettingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "account_settings_accounts_settings",
				Columns:    []*schema.Column{AccountSettingsColumns[10]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "accountsettings_account_id",
				Unique:  true,
				Columns: []*schema.Column{AccountSettingsColumns[10]},
			},
		},
	}
	// AlbumsColumns holds the columns for the "albums" table.
	AlbumsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "INACTIVE", "DELETED"}, Default: "ACTIVE"},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "album_type_id", Type: field.TypeInt},
		{Name: "event_id", Type: field.TypeString, Nullable: true},
	}
	// AlbumsTable holds the schema information for the "albums" table.
	AlbumsTable = &schema.Table{
		Name:       "albums",
		Columns:    AlbumsColumns,
		PrimaryKey: []*schema.Column{AlbumsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "albums_accounts_albums",
				Columns:    []*schema.Column{AlbumsColumns[6]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "albums_album_types_albums",
				Columns:    []*schema.Column{AlbumsColumns[7]},
				RefColumns: []*schema.Column{AlbumTypesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "albums_events_albums",
				Columns:    []*schema.Column{AlbumsColumns[8]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "album_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{AlbumsColumns[6], AlbumsColumns[5]},
			},
		},
	}
	// AlbumFilesColumns holds the columns for the "album_files" table.
	AlbumFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "file_url", Type: field.TypeString, Nullable: true},
		{Name: "width", Type: field.TypeInt},
		{Name: "height", Type: field.TypeInt},
		{Name: "size_bytes", Type: field.TypeInt},
		{Name: "file_type", Type: field.TypeEnum, Enums: []string{"PHOTO", "VIDEO"}, Default: "PHOTO"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PROCESSING", "ACTIVE", "INACTIVE", "ERROR", "DELETED"}, Default: "PROCESSING"},
		{Name: "bucket", Type: field.TypeString},
		{Name: "object_key", Type: field.TypeString},
		{Name: "media_created", Type: field.TypeTime, Nullable: true},
		{Name: "owner_id", Type: field.TypeString},
	}
	// AlbumFilesTable holds the schema information for the "album_files" table.
	AlbumFilesTable = &schema.Table{
		Name:       "album_files",
		Columns:    AlbumFilesColumns,
		PrimaryKey: []*schema.Column{AlbumFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "album_files_accounts_album_files",
				Columns:    []*schema.Column{AlbumFilesColumns[14]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "albumfile_bucket_object_key",
				Unique:  true,
				Columns: []*schema.Column{AlbumFilesColumns[11], AlbumFilesColumns[12]},
			},
			{
				Name:    "albumfile_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{AlbumFilesColumns[14], AlbumFilesColumns[10]},
			},
		},
	}
	// AlbumTypesColumns holds the columns for the "album_types" table.
	AlbumTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 40},
		{Name: "description", Type: field.TypeString, Size: 80},
		{Name: "sort_order", Type: field.TypeInt},
		{Name: "is_virtual", Type: field.TypeBool},
		{Name: "is_deletable", Type: field.TypeBool},
	}
	// AlbumTypesTable holds the schema information for the "album_types" table.
	AlbumTypesTable = &schema.Table{
		Name:       "album_types",
		Columns:    AlbumTypesColumns,
		PrimaryKey: []*schema.Column{AlbumTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "albumtype_name",
				Unique:  true,
				Columns: []*schema.Column{AlbumTypesColumns[3]},
			},
		},
	}
	// CommChannelsColumns holds the columns for the "comm_channels" table.
	CommChannelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "comm_type", Type: field.TypeEnum, Enums: []string{"EMAIL", "PHONE"}},
		{Name: "endpoint", Type: field.TypeString, Size: 100},
		{Name: "validation_token", Type: field.TypeString, Unique: true},
		{Name: "validation_date", Type: field.TypeTime, Nullable: true},
		{Name: "message_sent_date", Type: field.TypeTime, Nullable: true},
		{Name: "account_id", Type: field.TypeString},
	}
	// CommChannelsTable holds the schema information for the "comm_channels" table.
	CommChannelsTable = &schema.Table{
		Name:       "comm_channels",
		Columns:    CommChannelsColumns,
		PrimaryKey: []*schema.Column{CommChannelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comm_channels_accounts_comm_channels",
				Columns:    []*schema.Column{CommChannelsColumns[8]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "commchannel_account_id_comm_type",
				Unique:  false,
				Columns: []*schema.Column{CommChannelsColumns[8], CommChannelsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 100},
		{Name: "start", Type: field.TypeTime},
		{Name: "end", Type: field.TypeTime},
		{Name: "timezone", Type: field.TypeString, Size: 40},
		{Name: "privacy", Type: field.TypeEnum, Enums: []string{"PUBLIC", "PRIVATE"}, Default: "PUBLIC"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"DRAFT", "ACTIVE", "CANCELLED"}, Default: "DRAFT"},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 250},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lon", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_all_day", Type: field.TypeBool, Default: false},
		{Name: "owner_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_accounts_events",
				Columns:    []*schema.Column{EventsColumns[13]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[13], EventsColumns[8]},
			},
			{
				Name:    "event_start",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// EventGuestsColumns holds the columns for the "event_guests" table.
	EventGuestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "rsvp", Type: field.TypeEnum, Enums: []string{"UNDECIDED", "YES", "NO", "MAYBE"}, Default: "UNDECIDED"},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
	}
	// EventGuestsTable holds the schema information for the "event_guests" table.
	EventGuestsTable = &schema.Table{
		Name:       "event_guests",
		Columns:    EventGuestsColumns,
		PrimaryKey: []*schema.Column{EventGuestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "event_guests_accounts_guest_entries",
				Columns:    []*schema.Column{EventGuestsColumns[6]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "event_guests_events_guests",
				Columns:    []*schema.Column{EventGuestsColumns[7]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "eventguest_event_id_account_id",
				Unique:  true,
				Columns: []*schema.Column{EventGuestsColumns[7], EventGuestsColumns[6]},
			},
			{
				Name:    "eventguest_event_id_token",
				Unique:  true,
				Columns: []*schema.Column{EventGuestsColumns[7], EventGuestsColumns[5]},
			},
		},
	}
	// InAppNotificationsColumns holds the columns for the "in_app_notifications" table.
	InAppNotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "notification_type", Type: field.TypeEnum, Enums: []string{"EVENT_INVITE", "EVENT_CANCEL", "EVENT_UPDATE", "EVENTGUEST_RSVP", "ALBUMFILE_UPLOAD", "ACCOUNT_EMAIL_VALIDATE"}},
		{Name: "subject_kind", Type: field.TypeEnum, Enums: []string{"EVENT", "ALBUM_FILE", "COMMENT", "ACCOUNT"}},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "sender_id", Type: field.TypeString},
		{Name: "recipient_id", Type: field.TypeString},
	}
	// InAppNotificationsTable holds the schema information for the "in_app_notifications" table.
	InAppNotificationsTable = &schema.Table{
		Name:       "in_app_notifications",
		Columns:    InAppNotificationsColumns,
		PrimaryKey: []*schema.Column{InAppNotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "in_app_notifications_accounts_sent_notifications",
				Columns:    []*schema.Column{InAppNotificationsColumns[5]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "in_app_notifications_accounts_received_notifications",
				Columns:    []*schema.Column{InAppNotificationsColumns[6]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inappnotification_recipient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InAppNotificationsColumns[6], InAppNotificationsColumns[1]},
			},
		},
	}
	// PasswordResetsColumns holds the columns for the "password_resets" table.
	PasswordResetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString},
		{Name: "token_salt", Type: field.TypeString},
		{Name: "message_sent_date", Type: field.TypeTime, Nullable: true},
		{Name: "reset_date", Type: field.TypeTime, Nullable: true},
		{Name: "account_id", Type: field.TypeString},
	}
	// PasswordResetsTable holds the schema information for the "password_resets" table.
	PasswordResetsTable = &schema.Table{
		Name:       "password_resets",
		Columns:    PasswordResetsColumns,
		PrimaryKey: []*schema.Column{PasswordResetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "password_resets_accounts_password_resets",
				Columns:    []*schema.Column{PasswordResetsColumns[7]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "passwordreset_email",
				Unique:  false,
				Columns: []*schema.Column{PasswordResetsColumns[3]},
			},
			{
				Name:    "passwordreset_account_id_message_sent_date",
				Unique:  false,
				Columns: []*schema.Column{PasswordResetsColumns[7], PasswordResetsColumns[5]},
			},
		},
	}
	// ThumbnailsColumns holds the columns for the "thumbnails" table.
	ThumbnailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "size_type", Type: field.TypeInt},
		{Name: "file_url", Type: field.TypeString},
		{Name: "width", Type: field.TypeInt},
		{Name: "height", Type: field.TypeInt},
		{Name: "size_bytes", Type: field.TypeInt},
		{Name: "albumfile_id", Type: field.TypeString},
	}
	// ThumbnailsTable holds the schema information for the "thumbnails" table.
	ThumbnailsTable = &schema.Table{
		Name:       "thumbnails",
		Columns:    ThumbnailsColumns,
		PrimaryKey: []*schema.Column{ThumbnailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "thumbnails_album_files_thumbnails",
				Columns:    []*schema.Column{ThumbnailsColumns[8]},
				RefColumns: []*schema.Column{AlbumFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "thumbnail_albumfile_id_size_type",
				Unique:  true,
				Columns: []*schema.Column{ThumbnailsColumns[8], ThumbnailsColumns[3]},
			},
		},
	}
	// AlbumFileAssignmentsColumns holds the columns for the "album_file_assignments" table.
	AlbumFileAssignmentsColumns = []*schema.Column{
		{Name: "album_id", Type: field.TypeString},
		{Name: "album_file_id", Type: field.TypeString},
	}
	// AlbumFileAssignmentsTable holds the schema information for the "album_file_assignments" table.
	AlbumFileAssignmentsTable = &schema.Table{
		Name:       "album_file_assignments",
		Columns:    AlbumFileAssignmentsColumns,
		PrimaryKey: []*schema.Column{AlbumFileAssignmentsColumns[0], AlbumFileAssignmentsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "album_file_assignments_album_id",
				Columns:    []*schema.Column{AlbumFileAssignmentsColumns[0]},
				RefColumns: []*schema.Column{AlbumsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "album_file_assignments_album_file_id",
				Columns:    []*schema.Column{AlbumFileAssignmentsColumns[1]},
				RefColumns: []*schema.Column{AlbumFilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		AccountSettingsTable,
		AlbumsTable,
		AlbumFilesTable,
		AlbumTypesTable,
		CommChannelsTable,
		EventsTable,
		EventGuestsTable,
		InAppNotificationsTable,
		PasswordResetsTable,
		ThumbnailsTable,
		AlbumFileAssignmentsTable,
	}
)

func init() {
	AccountSettingsTable.ForeignKeys[0].RefTable = AccountsTable
	AlbumsTable.ForeignKeys[0].RefTable = AccountsTable
	AlbumsTable.ForeignKeys[1].RefTable = AlbumTypesTable
	AlbumsTable.ForeignKeys[2].RefTable = EventsTable
	AlbumFilesTable.ForeignKeys[0].RefTable = AccountsTable
	CommChannelsTable.ForeignKeys[0].RefTable = AccountsTable
	EventsTable.ForeignKeys[0].RefTable = AccountsTable
	EventGuestsTable.ForeignKeys[0].RefTable = AccountsTable
	EventGuestsTable.ForeignKeys[1].RefTable = EventsTable
	InAppNotificationsTable.ForeignKeys[0].RefTable = AccountsTable
	InAppNotificationsTable.ForeignKeys[1].RefTable = AccountsTable
	PasswordResetsTable.ForeignKeys[0].RefTable = AccountsTable
	ThumbnailsTable.ForeignKeys[0].RefTable = AlbumFilesTable
	AlbumFileAssignmentsTable.ForeignKeys[0].RefTable = AlbumsTable
	AlbumFileAssignmentsTable.ForeignKeys[1].RefTable = AlbumFilesTable
}
