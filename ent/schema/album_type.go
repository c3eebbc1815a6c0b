package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlbumType is the closed catalog of album kinds (e.g. ALLMEDIA,
// EVENTALBUM). Rows are seeded, not created at runtime; lookups by name
// go through the lazily-populated service in internal/service.
type AlbumType struct {
	ent.Schema
}

// Mixin of the AlbumType.
func (AlbumType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the AlbumType.
func (AlbumType) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Positive().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(40),
		field.String("description").
			MaxLen(80),
		field.Int("sort_order").
			NonNegative(),
		field.Bool("is_virtual"),
		field.Bool("is_deletable"),
	}
}

// Edges of the AlbumType.
func (AlbumType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("albums", Album.Type),
	}
}

// Indexes of the AlbumType.
func (AlbumType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
