// Code generated by ent, DO NOT EDIT.

package thumbnail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"planora.io/planora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldUpdatedAt, v))
}

// AlbumfileID applies equality check predicate on the "albumfile_id" field. It's identical to AlbumfileIDEQ.
func AlbumfileID(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldAlbumfileID, v))
}

// SizeType applies equality check predicate on the "size_type" field. It's identical to SizeTypeEQ.
func SizeType(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldSizeType, v))
}

// FileURL applies equality check predicate on the "file_url" field. It's identical to FileURLEQ.
func FileURL(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldFileURL, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldHeight, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldSizeBytes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLTE(FieldUpdatedAt, v))
}

// AlbumfileIDEQ applies the EQ predicate on the "albumfile_id" field.
func AlbumfileIDEQ(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldAlbumfileID, v))
}

// AlbumfileIDNEQ applies the NEQ predicate on the "albumfile_id" field.
func AlbumfileIDNEQ(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNEQ(FieldAlbumfileID, v))
}

// AlbumfileIDIn applies the In predicate on the "albumfile_id" field.
func AlbumfileIDIn(vs ...string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldIn(FieldAlbumfileID, vs...))
}

// AlbumfileIDNotIn applies the NotIn predicate on the "albumfile_id" field.
func AlbumfileIDNotIn(vs ...string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNotIn(FieldAlbumfileID, vs...))
}

// AlbumfileIDGT applies the GT predicate on the "albumfile_id" field.
func AlbumfileIDGT(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGT(FieldAlbumfileID, v))
}

// AlbumfileIDGTE applies the GTE predicate on the "albumfile_id" field.
func AlbumfileIDGTE(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGTE(FieldAlbumfileID, v))
}

// AlbumfileIDLT applies the LT predicate on the "albumfile_id" field.
func AlbumfileIDLT(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLT(FieldAlbumfileID, v))
}

// AlbumfileIDLTE applies the LTE predicate on the "albumfile_id" field.
func AlbumfileIDLTE(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLTE(FieldAlbumfileID, v))
}

// AlbumfileIDContains applies the Contains predicate on the "albumfile_id" field.
func AlbumfileIDContains(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldContains(FieldAlbumfileID, v))
}

// AlbumfileIDHasPrefix applies the HasPrefix predicate on the "albumfile_id" field.
func AlbumfileIDHasPrefix(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldHasPrefix(FieldAlbumfileID, v))
}

// AlbumfileIDHasSuffix applies the HasSuffix predicate on the "albumfile_id" field.
func AlbumfileIDHasSuffix(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldHasSuffix(FieldAlbumfileID, v))
}

// AlbumfileIDEqualFold applies the EqualFold predicate on the "albumfile_id" field.
func AlbumfileIDEqualFold(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEqualFold(FieldAlbumfileID, v))
}

// AlbumfileIDContainsFold applies the ContainsFold predicate on the "albumfile_id" field.
func AlbumfileIDContainsFold(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldContainsFold(FieldAlbumfileID, v))
}

// SizeTypeEQ applies the EQ predicate on the "size_type" field.
func SizeTypeEQ(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldSizeType, v))
}

// SizeTypeNEQ applies the NEQ predicate on the "size_type" field.
func SizeTypeNEQ(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNEQ(FieldSizeType, v))
}

// SizeTypeIn applies the In predicate on the "size_type" field.
func SizeTypeIn(vs ...int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldIn(FieldSizeType, vs...))
}

// SizeTypeNotIn applies the NotIn predicate on the "size_type" field.
func SizeTypeNotIn(vs ...int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNotIn(FieldSizeType, vs...))
}

// SizeTypeGT applies the GT predicate on the "size_type" field.
func SizeTypeGT(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGT(FieldSizeType, v))
}

// SizeTypeGTE applies the GTE predicate on the "size_type" field.
func SizeTypeGTE(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGTE(FieldSizeType, v))
}

// SizeTypeLT applies the LT predicate on the "size_type" field.
func SizeTypeLT(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLT(FieldSizeType, v))
}

// SizeTypeLTE applies the LTE predicate on the "size_type" field.
func SizeTypeLTE(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLTE(FieldSizeType, v))
}

// FileURLEQ applies the EQ predicate on the "file_url" field.
func FileURLEQ(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldFileURL, v))
}

// FileURLNEQ applies the NEQ predicate on the "file_url" field.
func FileURLNEQ(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNEQ(FieldFileURL, v))
}

// FileURLIn applies the In predicate on the "file_url" field.
func FileURLIn(vs ...string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldIn(FieldFileURL, vs...))
}

// FileURLNotIn applies the NotIn predicate on the "file_url" field.
func FileURLNotIn(vs ...string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNotIn(FieldFileURL, vs...))
}

// FileURLGT applies the GT predicate on the "file_url" field.
func FileURLGT(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGT(FieldFileURL, v))
}

// FileURLGTE applies the GTE predicate on the "file_url" field.
func FileURLGTE(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGTE(FieldFileURL, v))
}

// FileURLLT applies the LT predicate on the "file_url" field.
func FileURLLT(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLT(FieldFileURL, v))
}

// FileURLLTE applies the LTE predicate on the "file_url" field.
func FileURLLTE(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLTE(FieldFileURL, v))
}

// FileURLContains applies the Contains predicate on the "file_url" field.
func FileURLContains(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldContains(FieldFileURL, v))
}

// FileURLHasPrefix applies the HasPrefix predicate on the "file_url" field.
func FileURLHasPrefix(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldHasPrefix(FieldFileURL, v))
}

// FileURLHasSuffix applies the HasSuffix predicate on the "file_url" field.
func FileURLHasSuffix(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldHasSuffix(FieldFileURL, v))
}

// FileURLEqualFold applies the EqualFold predicate on the "file_url" field.
func FileURLEqualFold(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEqualFold(FieldFileURL, v))
}

// FileURLContainsFold applies the ContainsFold predicate on the "file_url" field.
func FileURLContainsFold(v string) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldContainsFold(FieldFileURL, v))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLTE(FieldWidth, v))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLTE(FieldHeight, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int) predicate.Thumbnail {
	return predicate.Thumbnail(sql.FieldLTE(FieldSizeBytes, v))
}

// HasAlbumfile applies the HasEdge predicate on the "albumfile" edge.
func HasAlbumfile() predicate.Thumbnail {
	return predicate.Thumbnail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AlbumfileTable, AlbumfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlbumfileWith applies the HasEdge predicate on the "albumfile" edge with a given conditions (other predicates).
func HasAlbumfileWith(preds ...predicate.AlbumFile) predicate.Thumbnail {
	return predicate.Thumbnail(func(s *sql.Selector) {
		step := newAlbumfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Thumbnail) predicate.Thumbnail {
	return predicate.Thumbnail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Thumbnail) predicate.Thumbnail {
	return predicate.Thumbnail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Thumbnail) predicate.Thumbnail {
	return predicate.Thumbnail(sql.NotPredicates(p))
}
