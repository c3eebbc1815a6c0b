package schema

import (
	"fmt"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThumbnailSizes is the closed set of thumbnail size classes the
// pipeline produces. A payload never has to carry all of them at once;
// repeated finalize callbacks converge on the full set.
var ThumbnailSizes = []int{48, 100, 144, 205, 320, 610, 960}

// Thumbnail holds one per-size artifact of an AlbumFile. At most one
// row exists per (albumfile, size_type); the finalize callback upserts
// on that key so redelivery is idempotent.
type Thumbnail struct {
	ent.Schema
}

// Mixin of the Thumbnail.
func (Thumbnail) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Thumbnail.
func (Thumbnail) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("albumfile_id"),
		field.Int("size_type").
			Validate(func(v int) error {
				for _, s := range ThumbnailSizes {
					if v == s {
						return nil
					}
				}
				return fmt.Errorf("size_type %d is not a known thumbnail size", v)
			}),
		field.String("file_url").
			NotEmpty(),
		field.Int("width").
			NonNegative(),
		field.Int("height").
			NonNegative(),
		field.Int("size_bytes").
			NonNegative(),
	}
}

// Edges of the Thumbnail.
func (Thumbnail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("albumfile", AlbumFile.Type).
			Ref("thumbnails").
			Field("albumfile_id").
			Unique().
			Required(),
	}
}

// Indexes of the Thumbnail.
func (Thumbnail) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("albumfile_id", "size_type").Unique(),
	}
}
