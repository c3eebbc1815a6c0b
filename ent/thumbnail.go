// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/thumbnail"
)

// Thumbnail is the model entity for the Thumbnail schema.
type Thumbnail struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// AlbumfileID holds the value of the "albumfile_id" field.
	AlbumfileID string `json:"albumfile_id,omitempty"`
	// SizeType holds the value of the "size_type" field.
	SizeType int `json:"size_type,omitempty"`
	// FileURL holds the value of the "file_url" field.
	FileURL string `json:"file_url,omitempty"`
	// Width holds the value of the "width" field.
	Width int `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height int `json:"height,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int `json:"size_bytes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ThumbnailQuery when eager-loading is set.
	Edges        ThumbnailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ThumbnailEdges holds the relations/edges for other nodes in the graph.
type ThumbnailEdges struct {
	// Albumfile holds the value of the albumfile edge.
	Albumfile *AlbumFile `json:"albumfile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AlbumfileOrErr returns the Albumfile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ThumbnailEdges) AlbumfileOrErr() (*AlbumFile, error) {
	if e.Albumfile != nil {
		return e.Albumfile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: albumfile.Label}
	}
	return nil, &NotLoadedError{edge: "albumfile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Thumbnail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case thumbnail.FieldSizeType, thumbnail.FieldWidth, thumbnail.FieldHeight, thumbnail.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case thumbnail.FieldID, thumbnail.FieldAlbumfileID, thumbnail.FieldFileURL:
			values[i] = new(sql.NullString)
		case thumbnail.FieldCreatedAt, thumbnail.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Thumbnail fields.
func (_m *Thumbnail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case thumbnail.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case thumbnail.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case thumbnail.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case thumbnail.FieldAlbumfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field albumfile_id", values[i])
			} else if value.Valid {
				_m.AlbumfileID = value.String
			}
		case thumbnail.FieldSizeType:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_type", values[i])
			} else if value.Valid {
				_m.SizeType = int(value.Int64)
			}
		case thumbnail.FieldFileURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_url", values[i])
			} else if value.Valid {
				_m.FileURL = value.String
			}
		case thumbnail.FieldWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				_m.Width = int(value.Int64)
			}
		case thumbnail.FieldHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = int(value.Int64)
			}
		case thumbnail.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Thumbnail.
// This includes values selected through modifiers, order, etc.
func (_m *Thumbnail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAlbumfile queries the "albumfile" edge of the Thumbnail entity.
func (_m *Thumbnail) QueryAlbumfile() *AlbumFileQuery {
	return NewThumbnailClient(_m.config).QueryAlbumfile(_m)
}

// Update returns a builder for updating this Thumbnail.
// Note that you need to call Thumbnail.Unwrap() before calling this method if this Thumbnail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Thumbnail) Update() *ThumbnailUpdateOne {
	return NewThumbnailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Thumbnail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Thumbnail) Unwrap() *Thumbnail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Thumbnail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Thumbnail) String() string {
	var builder strings.Builder
	builder.WriteString("Thumbnail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("albumfile_id=")
	builder.WriteString(_m.AlbumfileID)
	builder.WriteString(", ")
	builder.WriteString("size_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeType))
	builder.WriteString(", ")
	builder.WriteString("file_url=")
	builder.WriteString(_m.FileURL)
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", _m.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteByte(')')
	return builder.String()
}

// Thumbnails is a parsable slice of Thumbnail.
type Thumbnails []*Thumbnail
