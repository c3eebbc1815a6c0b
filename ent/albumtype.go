// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"planora.io/planora/ent/albumtype"
)

// AlbumType is the model entity for the AlbumType schema.
type AlbumType struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// IsVirtual holds the value of the "is_virtual" field.
	IsVirtual bool `json:"is_virtual,omitempty"`
	// IsDeletable holds the value of the "is_deletable" field.
	IsDeletable bool `json:"is_deletable,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlbumTypeQuery when eager-loading is set.
	Edges        AlbumTypeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlbumTypeEdges holds the relations/edges for other nodes in the graph.
type AlbumTypeEdges struct {
	// Albums holds the value of the albums edge.
	Albums []*Album `json:"albums,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AlbumsOrErr returns the Albums value or an error if the edge
// was not loaded in eager-loading.
func (e AlbumTypeEdges) AlbumsOrErr() ([]*Album, error) {
	if e.loadedTypes[0] {
		return e.Albums, nil
	}
	return nil, &NotLoadedError{edge: "albums"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlbumType) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case albumtype.FieldIsVirtual, albumtype.FieldIsDeletable:
			values[i] = new(sql.NullBool)
		case albumtype.FieldID, albumtype.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case albumtype.FieldName, albumtype.FieldDescription:
			values[i] = new(sql.NullString)
		case albumtype.FieldCreatedAt, albumtype.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlbumType fields.
func (_m *AlbumType) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case albumtype.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case albumtype.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case albumtype.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case albumtype.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case albumtype.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case albumtype.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case albumtype.FieldIsVirtual:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_virtual", values[i])
			} else if value.Valid {
				_m.IsVirtual = value.Bool
			}
		case albumtype.FieldIsDeletable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deletable", values[i])
			} else if value.Valid {
				_m.IsDeletable = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AlbumType.
// This includes values selected through modifiers, order, etc.
func (_m *AlbumType) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAlbums queries the "albums" edge of the AlbumType entity.
func (_m *AlbumType) QueryAlbums() *AlbumQuery {
	return NewAlbumTypeClient(_m.config).QueryAlbums(_m)
}

// Update returns a builder for updating this AlbumType.
// Note that you need to call AlbumType.Unwrap() before calling this method if this AlbumType
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlbumType) Update() *AlbumTypeUpdateOne {
	return NewAlbumTypeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlbumType entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlbumType) Unwrap() *AlbumType {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlbumType is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlbumType) String() string {
	var builder strings.Builder
	builder.WriteString("AlbumType(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("is_virtual=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVirtual))
	builder.WriteString(", ")
	builder.WriteString("is_deletable=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDeletable))
	builder.WriteByte(')')
	return builder.String()
}

// AlbumTypes is a parsable slice of AlbumType.
type AlbumTypes []*AlbumType
