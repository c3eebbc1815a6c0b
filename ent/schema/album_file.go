package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlbumFile holds the schema definition for uploaded media files.
//
// A file is created in PROCESSING with its storage locator (bucket,
// object_key) already assigned; the external thumbnailing pipeline later
// reports per-size artifacts through the finalize callback, which flips
// the status to ACTIVE exactly once. ERROR, INACTIVE and DELETED exist
// as values but the finalize path never transitions into them.
type AlbumFile struct {
	ent.Schema
}

// Mixin of the AlbumFile.
func (AlbumFile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the AlbumFile.
func (AlbumFile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id"),
		field.String("name").
			Optional().
			MaxLen(255),
		field.String("description").
			Optional(),
		field.String("file_url").
			Optional(),
		field.Int("width").
			NonNegative(),
		field.Int("height").
			NonNegative(),
		field.Int("size_bytes").
			NonNegative(),
		field.Enum("file_type").
			Values("PHOTO", "VIDEO").
			Default("PHOTO"),
		field.Enum("status").
			Values("PROCESSING", "ACTIVE", "INACTIVE", "ERROR", "DELETED").
			Default("PROCESSING"),
		field.String("bucket").
			NotEmpty(),
		field.String("object_key").
			NotEmpty(),
		field.Time("media_created").
			Optional().
			Nillable(),
	}
}

// Edges of the AlbumFile.
func (AlbumFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", Account.Type).
			Ref("album_files").
			Field("owner_id").
			Unique().
			Required(),
		edge.From("albums", Album.Type).
			Ref("files"),
		edge.To("thumbnails", Thumbnail.Type),
	}
}

// Indexes of the AlbumFile.
func (AlbumFile) Indexes() []ent.Index {
	return []ent.Index{
		// The storage locator is the identity the pipeline reports back.
		index.Fields("bucket", "object_key").Unique(),
		index.Fields("owner_id", "status"),
	}
}
