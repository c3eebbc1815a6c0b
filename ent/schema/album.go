package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Album holds the schema definition for media albums. An album may be
// bound to an event (the event's shared album) or stand alone.
type Album struct {
	ent.Schema
}

// Mixin of the Album.
func (Album) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Album.
func (Album) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id"),
		field.String("event_id").
			Optional(),
		field.Int("album_type_id"),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			Optional(),
		field.Enum("status").
			Values("ACTIVE", "INACTIVE", "DELETED").
			Default("ACTIVE"),
	}
}

// Edges of the Album.
func (Album) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", Account.Type).
			Ref("albums").
			Field("owner_id").
			Unique().
			Required(),
		edge.From("event", Event.Type).
			Ref("albums").
			Field("event_id").
			Unique(),
		edge.From("album_type", AlbumType.Type).
			Ref("albums").
			Field("album_type_id").
			Unique().
			Required(),
		// The default join-table name "album_files" collides with the
		// AlbumFile entity table, so the storage key must be explicit.
		edge.To("files", AlbumFile.Type).
			StorageKey(edge.Table("album_file_assignments"), edge.Columns("album_id", "album_file_id")),
	}
}

// Indexes of the Album.
func (Album) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status"),
	}
}
