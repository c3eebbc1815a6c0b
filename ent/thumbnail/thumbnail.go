// Code generated by ent, DO NOT EDIT.

package thumbnail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the thumbnail type in the database.
	Label = "thumbnail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAlbumfileID holds the string denoting the albumfile_id field in the database.
	FieldAlbumfileID = "albumfile_id"
	// FieldSizeType holds the string denoting the size_type field in the database.
	FieldSizeType = "size_type"
	// FieldFileURL holds the string denoting the file_url field in the database.
	FieldFileURL = "file_url"
	// FieldWidth holds the string denoting the width field in the database.
	FieldWidth = "width"
	// FieldHeight holds the string denoting the height field in the database.
	FieldHeight = "height"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// EdgeAlbumfile holds the string denoting the albumfile edge name in mutations.
	EdgeAlbumfile = "albumfile"
	// Table holds the table name of the thumbnail in the database.
	Table = "thumbnails"
	// AlbumfileTable is the table that holds the albumfile relation/edge.
	AlbumfileTable = "thumbnails"
	// AlbumfileInverseTable is the table name for the AlbumFile entity.
	// It exists in this package in order to avoid circular dependency with the "albumfile" package.
	AlbumfileInverseTable = "album_files"
	// AlbumfileColumn is the table column denoting the albumfile relation/edge.
	AlbumfileColumn = "albumfile_id"
)

// Columns holds all SQL columns for thumbnail fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAlbumfileID,
	FieldSizeType,
	FieldFileURL,
	FieldWidth,
	FieldHeight,
	FieldSizeBytes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SizeTypeValidator is a validator for the "size_type" field. It is called by the builders before save.
	SizeTypeValidator func(int) error
	// FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	FileURLValidator func(string) error
	// WidthValidator is a validator for the "width" field. It is called by the builders before save.
	WidthValidator func(int) error
	// HeightValidator is a validator for the "height" field. It is called by the builders before save.
	HeightValidator func(int) error
	// SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	SizeBytesValidator func(int) error
)

// OrderOption defines the ordering options for the Thumbnail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAlbumfileID orders the results by the albumfile_id field.
func ByAlbumfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlbumfileID, opts...).ToFunc()
}

// BySizeType orders the results by the size_type field.
func BySizeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeType, opts...).ToFunc()
}

// ByFileURL orders the results by the file_url field.
func ByFileURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileURL, opts...).ToFunc()
}

// ByWidth orders the results by the width field.
func ByWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWidth, opts...).ToFunc()
}

// ByHeight orders the results by the height field.
func ByHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeight, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByAlbumfileField orders the results by albumfile field.
func ByAlbumfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlbumfileStep(), sql.OrderByField(field, opts...))
	}
}
func newAlbumfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlbumfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AlbumfileTable, AlbumfileColumn),
	)
}
