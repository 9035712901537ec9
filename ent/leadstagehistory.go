// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/user"
)

// LeadStageHistory is the model entity for the LeadStageHistory schema.
type LeadStageHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ID of the lead whose stage changed
	LeadID int `json:"lead_id,omitempty"`
	// ID of the user who changed the stage
	UserID int `json:"user_id,omitempty"`
	// Previous stage (null for initial stage)
	OldStage *leadstagehistory.OldStage `json:"old_stage,omitempty"`
	// New stage after the change
	NewStage leadstagehistory.NewStage `json:"new_stage,omitempty"`
	// Optional reason for the stage change
	Reason string `json:"reason,omitempty"`
	// When the stage change occurred
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadStageHistoryQuery when eager-loading is set.
	Edges        LeadStageHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadStageHistoryEdges holds the relations/edges for other nodes in the graph.
type LeadStageHistoryEdges struct {
	// Lead holds the value of the lead edge.
	Lead *Lead `json:"lead,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadStageHistoryEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadStageHistoryEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeadStageHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leadstagehistory.FieldID, leadstagehistory.FieldLeadID, leadstagehistory.FieldUserID:
			values[i] = new(sql.NullInt64)
		case leadstagehistory.FieldOldStage, leadstagehistory.FieldNewStage, leadstagehistory.FieldReason:
			values[i] = new(sql.NullString)
		case leadstagehistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeadStageHistory fields.
func (_m *LeadStageHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leadstagehistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case leadstagehistory.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case leadstagehistory.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case leadstagehistory.FieldOldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_stage", values[i])
			} else if value.Valid {
				_m.OldStage = new(leadstagehistory.OldStage)
				*_m.OldStage = leadstagehistory.OldStage(value.String)
			}
		case leadstagehistory.FieldNewStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_stage", values[i])
			} else if value.Valid {
				_m.NewStage = leadstagehistory.NewStage(value.String)
			}
		case leadstagehistory.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case leadstagehistory.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LeadStageHistory.
// This includes values selected through modifiers, order, etc.
func (_m *LeadStageHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLead queries the "lead" edge of the LeadStageHistory entity.
func (_m *LeadStageHistory) QueryLead() *LeadQuery {
	return NewLeadStageHistoryClient(_m.config).QueryLead(_m)
}

// QueryUser queries the "user" edge of the LeadStageHistory entity.
func (_m *LeadStageHistory) QueryUser() *UserQuery {
	return NewLeadStageHistoryClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this LeadStageHistory.
// Note that you need to call LeadStageHistory.Unwrap() before calling this method if this LeadStageHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeadStageHistory) Update() *LeadStageHistoryUpdateOne {
	return NewLeadStageHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeadStageHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeadStageHistory) Unwrap() *LeadStageHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeadStageHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeadStageHistory) String() string {
	var builder strings.Builder
	builder.WriteString("LeadStageHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.OldStage; v != nil {
		builder.WriteString("old_stage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("new_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewStage))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeadStageHistories is a parsable slice of LeadStageHistory.
type LeadStageHistories []*LeadStageHistory
