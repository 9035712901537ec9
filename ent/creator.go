// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/schema"
)

// Creator is the model entity for the Creator schema.
type Creator struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Creator name
	Name string `json:"name,omitempty"`
	// Contact email
	Email string `json:"email,omitempty"`
	// Brand or company name
	Company string `json:"company,omitempty"`
	// Program journey stage
	JourneyStage creator.JourneyStage `json:"journey_stage,omitempty"`
	// Overall program progress (0-100)
	JourneyProgress int `json:"journey_progress,omitempty"`
	// Weighted composite health score (0-100)
	HealthScore int `json:"health_score,omitempty"`
	// Per-factor score and weight from the last recompute
	HealthFactors map[string]schema.HealthFactor `json:"health_factors,omitempty"`
	// When the health score was last recomputed
	HealthUpdatedAt *time.Time `json:"health_updated_at,omitempty"`
	// Lead this client was converted from
	ConvertedFromLeadID *int `json:"converted_from_lead_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreatorQuery when eager-loading is set.
	Edges        CreatorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreatorEdges holds the relations/edges for other nodes in the graph.
type CreatorEdges struct {
	// Program milestones for this client
	Milestones []*Milestone `json:"milestones,omitempty"`
	// Monthly onboarding kits
	Kits []*OnboardingKit `json:"kits,omitempty"`
	// Activity log entries
	Activities []*Activity `json:"activities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MilestonesOrErr returns the Milestones value or an error if the edge
// was not loaded in eager-loading.
func (e CreatorEdges) MilestonesOrErr() ([]*Milestone, error) {
	if e.loadedTypes[0] {
		return e.Milestones, nil
	}
	return nil, &NotLoadedError{edge: "milestones"}
}

// KitsOrErr returns the Kits value or an error if the edge
// was not loaded in eager-loading.
func (e CreatorEdges) KitsOrErr() ([]*OnboardingKit, error) {
	if e.loadedTypes[1] {
		return e.Kits, nil
	}
	return nil, &NotLoadedError{edge: "kits"}
}

// ActivitiesOrErr returns the Activities value or an error if the edge
// was not loaded in eager-loading.
func (e CreatorEdges) ActivitiesOrErr() ([]*Activity, error) {
	if e.loadedTypes[2] {
		return e.Activities, nil
	}
	return nil, &NotLoadedError{edge: "activities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Creator) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creator.FieldHealthFactors:
			values[i] = new([]byte)
		case creator.FieldID, creator.FieldJourneyProgress, creator.FieldHealthScore, creator.FieldConvertedFromLeadID:
			values[i] = new(sql.NullInt64)
		case creator.FieldName, creator.FieldEmail, creator.FieldCompany, creator.FieldJourneyStage:
			values[i] = new(sql.NullString)
		case creator.FieldHealthUpdatedAt, creator.FieldCreatedAt, creator.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Creator fields.
func (_m *Creator) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creator.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case creator.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case creator.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case creator.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case creator.FieldJourneyStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field journey_stage", values[i])
			} else if value.Valid {
				_m.JourneyStage = creator.JourneyStage(value.String)
			}
		case creator.FieldJourneyProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field journey_progress", values[i])
			} else if value.Valid {
				_m.JourneyProgress = int(value.Int64)
			}
		case creator.FieldHealthScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field health_score", values[i])
			} else if value.Valid {
				_m.HealthScore = int(value.Int64)
			}
		case creator.FieldHealthFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field health_factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HealthFactors); err != nil {
					return fmt.Errorf("unmarshal field health_factors: %w", err)
				}
			}
		case creator.FieldHealthUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field health_updated_at", values[i])
			} else if value.Valid {
				_m.HealthUpdatedAt = new(time.Time)
				*_m.HealthUpdatedAt = value.Time
			}
		case creator.FieldConvertedFromLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field converted_from_lead_id", values[i])
			} else if value.Valid {
				_m.ConvertedFromLeadID = new(int)
				*_m.ConvertedFromLeadID = int(value.Int64)
			}
		case creator.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case creator.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Creator.
// This includes values selected through modifiers, order, etc.
func (_m *Creator) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMilestones queries the "milestones" edge of the Creator entity.
func (_m *Creator) QueryMilestones() *MilestoneQuery {
	return NewCreatorClient(_m.config).QueryMilestones(_m)
}

// QueryKits queries the "kits" edge of the Creator entity.
func (_m *Creator) QueryKits() *OnboardingKitQuery {
	return NewCreatorClient(_m.config).QueryKits(_m)
}

// QueryActivities queries the "activities" edge of the Creator entity.
func (_m *Creator) QueryActivities() *ActivityQuery {
	return NewCreatorClient(_m.config).QueryActivities(_m)
}

// Update returns a builder for updating this Creator.
// Note that you need to call Creator.Unwrap() before calling this method if this Creator
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Creator) Update() *CreatorUpdateOne {
	return NewCreatorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Creator entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Creator) Unwrap() *Creator {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Creator is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Creator) String() string {
	var builder strings.Builder
	builder.WriteString("Creator(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("journey_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.JourneyStage))
	builder.WriteString(", ")
	builder.WriteString("journey_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.JourneyProgress))
	builder.WriteString(", ")
	builder.WriteString("health_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.HealthScore))
	builder.WriteString(", ")
	builder.WriteString("health_factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.HealthFactors))
	builder.WriteString(", ")
	if v := _m.HealthUpdatedAt; v != nil {
		builder.WriteString("health_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ConvertedFromLeadID; v != nil {
		builder.WriteString("converted_from_lead_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Creators is a parsable slice of Creator.
type Creators []*Creator
