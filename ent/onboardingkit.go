// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/onboardingkit"
)

// OnboardingKit is the model entity for the OnboardingKit schema.
type OnboardingKit struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ID of the owning client
	ClientID int `json:"client_id,omitempty"`
	// Program month (1-8)
	Month int `json:"month,omitempty"`
	// Whether the month's documents have been generated
	Generated bool `json:"generated,omitempty"`
	// When the month's documents were generated
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OnboardingKitQuery when eager-loading is set.
	Edges        OnboardingKitEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OnboardingKitEdges holds the relations/edges for other nodes in the graph.
type OnboardingKitEdges struct {
	// Client holds the value of the client edge.
	Client *Creator `json:"client,omitempty"`
	// The month's five documents
	Documents []*Document `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OnboardingKitEdges) ClientOrErr() (*Creator, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: creator.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e OnboardingKitEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OnboardingKit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case onboardingkit.FieldGenerated:
			values[i] = new(sql.NullBool)
		case onboardingkit.FieldID, onboardingkit.FieldClientID, onboardingkit.FieldMonth:
			values[i] = new(sql.NullInt64)
		case onboardingkit.FieldGeneratedAt, onboardingkit.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OnboardingKit fields.
func (_m *OnboardingKit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case onboardingkit.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case onboardingkit.FieldClientID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				_m.ClientID = int(value.Int64)
			}
		case onboardingkit.FieldMonth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				_m.Month = int(value.Int64)
			}
		case onboardingkit.FieldGenerated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field generated", values[i])
			} else if value.Valid {
				_m.Generated = value.Bool
			}
		case onboardingkit.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = new(time.Time)
				*_m.GeneratedAt = value.Time
			}
		case onboardingkit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OnboardingKit.
// This includes values selected through modifiers, order, etc.
func (_m *OnboardingKit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClient queries the "client" edge of the OnboardingKit entity.
func (_m *OnboardingKit) QueryClient() *CreatorQuery {
	return NewOnboardingKitClient(_m.config).QueryClient(_m)
}

// QueryDocuments queries the "documents" edge of the OnboardingKit entity.
func (_m *OnboardingKit) QueryDocuments() *DocumentQuery {
	return NewOnboardingKitClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this OnboardingKit.
// Note that you need to call OnboardingKit.Unwrap() before calling this method if this OnboardingKit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OnboardingKit) Update() *OnboardingKitUpdateOne {
	return NewOnboardingKitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OnboardingKit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OnboardingKit) Unwrap() *OnboardingKit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OnboardingKit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OnboardingKit) String() string {
	var builder strings.Builder
	builder.WriteString("OnboardingKit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteString(", ")
	builder.WriteString("month=")
	builder.WriteString(fmt.Sprintf("%v", _m.Month))
	builder.WriteString(", ")
	builder.WriteString("generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Generated))
	builder.WriteString(", ")
	if v := _m.GeneratedAt; v != nil {
		builder.WriteString("generated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OnboardingKits is a parsable slice of OnboardingKit.
type OnboardingKits []*OnboardingKit
