// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"planora.io/planora/ent/account"
	"planora.io/planora/ent/accountsettings"
	"planora.io/planora/ent/album"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/albumtype"
	"planora.io/planora/ent/commchannel"
	"planora.io/planora/ent/event"
	"planora.io/planora/ent/eventguest"
	"planora.io/planora/ent/inappnotification"
	"planora.io/planora/ent/passwordreset"
	"planora.io/planora/ent/schema"
	"planora.io/planora/ent/thumbnail"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountMixin := schema.Account{}.Mixin()
	accountMixinFields0 := accountMixin[0].Fields()
	_ = accountMixinFields0
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountMixinFields0[0].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountMixinFields0[1].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[1].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescPhone is the schema descriptor for phone field.
	accountDescPhone := accountFields[2].Descriptor()
	// account.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	account.PhoneValidator = accountDescPhone.Validators[0].(func(string) error)
	// accountDescName is the schema descriptor for name field.
	accountDescName := accountFields[3].Descriptor()
	// account.NameValidator is a validator for the "name" field. It is called by the builders before save.
	account.NameValidator = accountDescName.Validators[0].(func(string) error)
	accountsettingsMixin := schema.AccountSettings{}.Mixin()
	accountsettingsMixinFields0 := accountsettingsMixin[0].Fields()
	_ = accountsettingsMixinFields0
	accountsettingsFields := schema.AccountSettings{}.Fields()
	_ = accountsettingsFields
	// accountsettingsDescCreatedAt is the schema descriptor for created_at field.
	accountsettingsDescCreatedAt := accountsettingsMixinFields0[0].Descriptor()
	// accountsettings.DefaultCreatedAt holds the default value on creation for the created_at field.
	accountsettings.DefaultCreatedAt = accountsettingsDescCreatedAt.Default.(func() time.Time)
	// accountsettingsDescUpdatedAt is the schema descriptor for updated_at field.
	accountsettingsDescUpdatedAt := accountsettingsMixinFields0[1].Descriptor()
	// accountsettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	accountsettings.DefaultUpdatedAt = accountsettingsDescUpdatedAt.Default.(func() time.Time)
	// accountsettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	accountsettings.UpdateDefaultUpdatedAt = accountsettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// accountsettingsDescEmailRsvpUpdates is the schema descriptor for email_rsvp_updates field.
	accountsettingsDescEmailRsvpUpdates := accountsettingsFields[2].Descriptor()
	// accountsettings.DefaultEmailRsvpUpdates holds the default value on creation for the email_rsvp_updates field.
	accountsettings.DefaultEmailRsvpUpdates = accountsettingsDescEmailRsvpUpdates.Default.(bool)
	// accountsettingsDescEmailSocialActivity is the schema descriptor for email_social_activity field.
	accountsettingsDescEmailSocialActivity := accountsettingsFields[3].Descriptor()
	// accountsettings.DefaultEmailSocialActivity holds the default value on creation for the email_social_activity field.
	accountsettings.DefaultEmailSocialActivity = accountsettingsDescEmailSocialActivity.Default.(bool)
	// accountsettingsDescEmailPromotions is the schema descriptor for email_promotions field.
	accountsettingsDescEmailPromotions := accountsettingsFields[4].Descriptor()
	// accountsettings.DefaultEmailPromotions holds the default value on creation for the email_promotions field.
	accountsettings.DefaultEmailPromotions = accountsettingsDescEmailPromotions.Default.(bool)
	albumMixin := schema.Album{}.Mixin()
	albumMixinFields0 := albumMixin[0].Fields()
	_ = albumMixinFields0
	albumFields := schema.Album{}.Fields()
	_ = albumFields
	// albumDescCreatedAt is the schema descriptor for created_at field.
	albumDescCreatedAt := albumMixinFields0[0].Descriptor()
	// album.DefaultCreatedAt holds the default value on creation for the created_at field.
	album.DefaultCreatedAt = albumDescCreatedAt.Default.(func() time.Time)
	// albumDescUpdatedAt is the schema descriptor for updated_at field.
	albumDescUpdatedAt := albumMixinFields0[1].Descriptor()
	// album.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	album.DefaultUpdatedAt = albumDescUpdatedAt.Default.(func() time.Time)
	// album.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	album.UpdateDefaultUpdatedAt = albumDescUpdatedAt.UpdateDefault.(func() time.Time)
	// albumDescName is the schema descriptor for name field.
	albumDescName := albumFields[4].Descriptor()
	// album.NameValidator is a validator for the "name" field. It is called by the builders before save.
	album.NameValidator = func() func(string) error {
		validators := albumDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	albumfileMixin := schema.AlbumFile{}.Mixin()
	albumfileMixinFields0 := albumfileMixin[0].Fields()
	_ = albumfileMixinFields0
	albumfileFields := schema.AlbumFile{}.Fields()
	_ = albumfileFields
	// albumfileDescCreatedAt is the schema descriptor for created_at field.
	albumfileDescCreatedAt := albumfileMixinFields0[0].Descriptor()
	// albumfile.DefaultCreatedAt holds the default value on creation for the created_at field.
	albumfile.DefaultCreatedAt = albumfileDescCreatedAt.Default.(func() time.Time)
	// albumfileDescUpdatedAt is the schema descriptor for updated_at field.
	albumfileDescUpdatedAt := albumfileMixinFields0[1].Descriptor()
	// albumfile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	albumfile.DefaultUpdatedAt = albumfileDescUpdatedAt.Default.(func() time.Time)
	// albumfile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	albumfile.UpdateDefaultUpdatedAt = albumfileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// albumfileDescName is the schema descriptor for name field.
	albumfileDescName := albumfileFields[2].Descriptor()
	// albumfile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	albumfile.NameValidator = albumfileDescName.Validators[0].(func(string) error)
	// albumfileDescWidth is the schema descriptor for width field.
	albumfileDescWidth := albumfileFields[5].Descriptor()
	// albumfile.WidthValidator is a validator for the "width" field. It is called by the builders before save.
	albumfile.WidthValidator = albumfileDescWidth.Validators[0].(func(int) error)
	// albumfileDescHeight is the schema descriptor for height field.
	albumfileDescHeight := albumfileFields[6].Descriptor()
	// albumfile.HeightValidator is a validator for the "height" field. It is called by the builders before save.
	albumfile.HeightValidator = albumfileDescHeight.Validators[0].(func(int) error)
	// albumfileDescSizeBytes is the schema descriptor for size_bytes field.
	albumfileDescSizeBytes := albumfileFields[7].Descriptor()
	// albumfile.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	albumfile.SizeBytesValidator = albumfileDescSizeBytes.Validators[0].(func(int) error)
	// albumfileDescBucket is the schema descriptor for bucket field.
	albumfileDescBucket := albumfileFields[10].Descriptor()
	// albumfile.BucketValidator is a validator for the "bucket" field. It is called by the builders before save.
	albumfile.BucketValidator = albumfileDescBucket.Validators[0].(func(string) error)
	// albumfileDescObjectKey is the schema descriptor for object_key field.
	albumfileDescObjectKey := albumfileFields[11].Descriptor()
	// albumfile.ObjectKeyValidator is a validator for the "object_key" field. It is called by the builders before save.
	albumfile.ObjectKeyValidator = albumfileDescObjectKey.Validators[0].(func(string) error)
	albumtypeMixin := schema.AlbumType{}.Mixin()
	albumtypeMixinFields0 := albumtypeMixin[0].Fields()
	_ = albumtypeMixinFields0
	albumtypeFields := schema.AlbumType{}.Fields()
	_ = albumtypeFields
	// albumtypeDescCreatedAt is the schema descriptor for created_at field.
	albumtypeDescCreatedAt := albumtypeMixinFields0[0].Descriptor()
	// albumtype.DefaultCreatedAt holds the default value on creation for the created_at field.
	albumtype.DefaultCreatedAt = albumtypeDescCreatedAt.Default.(func() time.Time)
	// albumtypeDescUpdatedAt is the schema descriptor for updated_at field.
	albumtypeDescUpdatedAt := albumtypeMixinFields0[1].Descriptor()
	// albumtype.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	albumtype.DefaultUpdatedAt = albumtypeDescUpdatedAt.Default.(func() time.Time)
	// albumtype.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	albumtype.UpdateDefaultUpdatedAt = albumtypeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// albumtypeDescName is the schema descriptor for name field.
	albumtypeDescName := albumtypeFields[1].Descriptor()
	// albumtype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	albumtype.NameValidator = func() func(string) error {
		validators := albumtypeDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// albumtypeDescDescription is the schema descriptor for description field.
	albumtypeDescDescription := albumtypeFields[2].Descriptor()
	// albumtype.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	albumtype.DescriptionValidator = albumtypeDescDescription.Validators[0].(func(string) error)
	// albumtypeDescSortOrder is the schema descriptor for sort_order field.
	albumtypeDescSortOrder := albumtypeFields[3].Descriptor()
	// albumtype.SortOrderValidator is a validator for the "sort_order" field. It is called by the builders before save.
	albumtype.SortOrderValidator = albumtypeDescSortOrder.Validators[0].(func(int) error)
	// albumtypeDescID is the schema descriptor for id field.
	albumtypeDescID := albumtypeFields[0].Descriptor()
	// albumtype.IDValidator is a validator for the "id" field. It is called by the builders before save.
	albumtype.IDValidator = albumtypeDescID.Validators[0].(func(int) error)
	commchannelMixin := schema.CommChannel{}.Mixin()
	commchannelMixinFields0 := commchannelMixin[0].Fields()
	_ = commchannelMixinFields0
	commchannelFields := schema.CommChannel{}.Fields()
	_ = commchannelFields
	// commchannelDescCreatedAt is the schema descriptor for created_at field.
	commchannelDescCreatedAt := commchannelMixinFields0[0].Descriptor()
	// commchannel.DefaultCreatedAt holds the default value on creation for the created_at field.
	commchannel.DefaultCreatedAt = commchannelDescCreatedAt.Default.(func() time.Time)
	// commchannelDescUpdatedAt is the schema descriptor for updated_at field.
	commchannelDescUpdatedAt := commchannelMixinFields0[1].Descriptor()
	// commchannel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	commchannel.DefaultUpdatedAt = commchannelDescUpdatedAt.Default.(func() time.Time)
	// commchannel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	commchannel.UpdateDefaultUpdatedAt = commchannelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// commchannelDescEndpoint is the schema descriptor for endpoint field.
	commchannelDescEndpoint := commchannelFields[3].Descriptor()
	// commchannel.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	commchannel.EndpointValidator = func() func(string) error {
		validators := commchannelDescEndpoint.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(endpoint string) error {
			for _, fn := range fns {
				if err := fn(endpoint); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	eventMixin := schema.Event{}.Mixin()
	eventMixinFields0 := eventMixin[0].Fields()
	_ = eventMixinFields0
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventMixinFields0[0].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventMixinFields0[1].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// eventDescTitle is the schema descriptor for title field.
	eventDescTitle := eventFields[2].Descriptor()
	// event.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	event.TitleValidator = func() func(string) error {
		validators := eventDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// eventDescTimezone is the schema descriptor for timezone field.
	eventDescTimezone := eventFields[5].Descriptor()
	// event.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	event.TimezoneValidator = eventDescTimezone.Validators[0].(func(string) error)
	// eventDescLocation is the schema descriptor for location field.
	eventDescLocation := eventFields[8].Descriptor()
	// event.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	event.LocationValidator = eventDescLocation.Validators[0].(func(string) error)
	// eventDescIsAllDay is the schema descriptor for is_all_day field.
	eventDescIsAllDay := eventFields[11].Descriptor()
	// event.DefaultIsAllDay holds the default value on creation for the is_all_day field.
	event.DefaultIsAllDay = eventDescIsAllDay.Default.(bool)
	eventguestMixin := schema.EventGuest{}.Mixin()
	eventguestMixinFields0 := eventguestMixin[0].Fields()
	_ = eventguestMixinFields0
	eventguestFields := schema.EventGuest{}.Fields()
	_ = eventguestFields
	// eventguestDescCreatedAt is the schema descriptor for created_at field.
	eventguestDescCreatedAt := eventguestMixinFields0[0].Descriptor()
	// eventguest.DefaultCreatedAt holds the default value on creation for the created_at field.
	eventguest.DefaultCreatedAt = eventguestDescCreatedAt.Default.(func() time.Time)
	// eventguestDescUpdatedAt is the schema descriptor for updated_at field.
	eventguestDescUpdatedAt := eventguestMixinFields0[1].Descriptor()
	// eventguest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	eventguest.DefaultUpdatedAt = eventguestDescUpdatedAt.Default.(func() time.Time)
	// eventguest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	eventguest.UpdateDefaultUpdatedAt = eventguestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// eventguestDescName is the schema descriptor for name field.
	eventguestDescName := eventguestFields[3].Descriptor()
	// eventguest.NameValidator is a validator for the "name" field. It is called by the builders before save.
	eventguest.NameValidator = eventguestDescName.Validators[0].(func(string) error)
	inappnotificationMixin := schema.InAppNotification{}.Mixin()
	inappnotificationMixinFields0 := inappnotificationMixin[0].Fields()
	_ = inappnotificationMixinFields0
	inappnotificationFields := schema.InAppNotification{}.Fields()
	_ = inappnotificationFields
	// inappnotificationDescCreatedAt is the schema descriptor for created_at field.
	inappnotificationDescCreatedAt := inappnotificationMixinFields0[0].Descriptor()
	// inappnotification.DefaultCreatedAt holds the default value on creation for the created_at field.
	inappnotification.DefaultCreatedAt = inappnotificationDescCreatedAt.Default.(func() time.Time)
	passwordresetMixin := schema.PasswordReset{}.Mixin()
	passwordresetMixinFields0 := passwordresetMixin[0].Fields()
	_ = passwordresetMixinFields0
	passwordresetFields := schema.PasswordReset{}.Fields()
	_ = passwordresetFields
	// passwordresetDescCreatedAt is the schema descriptor for created_at field.
	passwordresetDescCreatedAt := passwordresetMixinFields0[0].Descriptor()
	// passwordreset.DefaultCreatedAt holds the default value on creation for the created_at field.
	passwordreset.DefaultCreatedAt = passwordresetDescCreatedAt.Default.(func() time.Time)
	// passwordresetDescUpdatedAt is the schema descriptor for updated_at field.
	passwordresetDescUpdatedAt := passwordresetMixinFields0[1].Descriptor()
	// passwordreset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	passwordreset.DefaultUpdatedAt = passwordresetDescUpdatedAt.Default.(func() time.Time)
	// passwordreset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	passwordreset.UpdateDefaultUpdatedAt = passwordresetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// passwordresetDescEmail is the schema descriptor for email field.
	passwordresetDescEmail := passwordresetFields[2].Descriptor()
	// passwordreset.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	passwordreset.EmailValidator = passwordresetDescEmail.Validators[0].(func(string) error)
	thumbnailMixin := schema.Thumbnail{}.Mixin()
	thumbnailMixinFields0 := thumbnailMixin[0].Fields()
	_ = thumbnailMixinFields0
	thumbnailFields := schema.Thumbnail{}.Fields()
	_ = thumbnailFields
	// thumbnailDescCreatedAt is the schema descriptor for created_at field.
	thumbnailDescCreatedAt := thumbnailMixinFields0[0].Descriptor()
	// thumbnail.DefaultCreatedAt holds the default value on creation for the created_at field.
	thumbnail.DefaultCreatedAt = thumbnailDescCreatedAt.Default.(func() time.Time)
	// thumbnailDescUpdatedAt is the schema descriptor for updated_at field.
	thumbnailDescUpdatedAt := thumbnailMixinFields0[1].Descriptor()
	// thumbnail.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	thumbnail.DefaultUpdatedAt = thumbnailDescUpdatedAt.Default.(func() time.Time)
	// thumbnail.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	thumbnail.UpdateDefaultUpdatedAt = thumbnailDescUpdatedAt.UpdateDefault.(func() time.Time)
	// thumbnailDescSizeType is the schema descriptor for size_type field.
	thumbnailDescSizeType := thumbnailFields[2].Descriptor()
	// thumbnail.SizeTypeValidator is a validator for the "size_type" field. It is called by the builders before save.
	thumbnail.SizeTypeValidator = thumbnailDescSizeType.Validators[0].(func(int) error)
	// thumbnailDescFileURL is the schema descriptor for file_url field.
	thumbnailDescFileURL := thumbnailFields[3].Descriptor()
	// thumbnail.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	thumbnail.FileURLValidator = thumbnailDescFileURL.Validators[0].(func(string) error)
	// thumbnailDescWidth is the schema descriptor for width field.
	thumbnailDescWidth := thumbnailFields[4].Descriptor()
	// thumbnail.WidthValidator is a validator for the "width" field. It is called by the builders before save.
	thumbnail.WidthValidator = thumbnailDescWidth.Validators[0].(func(int) error)
	// thumbnailDescHeight is the schema descriptor for height field.
	thumbnailDescHeight := thumbnailFields[5].Descriptor()
	// thumbnail.HeightValidator is a validator for the "height" field. It is called by the builders before save.
	thumbnail.HeightValidator = thumbnailDescHeight.Validators[0].(func(int) error)
	// thumbnailDescSizeBytes is the schema descriptor for size_bytes field.
	thumbnailDescSizeBytes := thumbnailFields[6].Descriptor()
	// thumbnail.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	thumbnail.SizeBytesValidator = thumbnailDescSizeBytes.Validators[0].(func(int) error)
}
