// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/creatorbridge/api/ent/lead"
)

// Lead is the model entity for the Lead schema.
type Lead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Creator name
	Name string `json:"name,omitempty"`
	// Contact email
	Email string `json:"email,omitempty"`
	// Brand or company name
	Company string `json:"company,omitempty"`
	// Where the lead came from (referral, outreach, inbound)
	Source string `json:"source,omitempty"`
	// Free-text summary used as input to fit analysis
	Summary string `json:"summary,omitempty"`
	// Structured questionnaire answers
	Answers map[string]string `json:"answers,omitempty"`
	// Pipeline stage
	Stage lead.Stage `json:"stage,omitempty"`
	// When the stage was last changed
	StageChangedAt time.Time `json:"stage_changed_at,omitempty"`
	// Externally computed suitability rating (0-100)
	FitScore *int `json:"fit_score,omitempty"`
	// Sentiment of the lead's answers (0-1)
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
	// Analysis summary
	AiSummary string `json:"ai_summary,omitempty"`
	// Strengths identified by the analysis
	Strengths []string `json:"strengths,omitempty"`
	// Concerns identified by the analysis
	Concerns []string `json:"concerns,omitempty"`
	// Recommended next steps from the analysis
	Recommendations string `json:"recommendations,omitempty"`
	// Estimated revenue potential (e.g. "$50k-$100k/yr")
	EstimatedRevenuePotential string `json:"estimated_revenue_potential,omitempty"`
	// When the last successful analysis completed
	AnalyzedAt *time.Time `json:"analyzed_at,omitempty"`
	// Client created from this lead; set once, never cleared
	ConvertedClientID *int `json:"converted_client_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadQuery when eager-loading is set.
	Edges        LeadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadEdges holds the relations/edges for other nodes in the graph.
type LeadEdges struct {
	// History of stage changes for this lead
	StageHistory []*LeadStageHistory `json:"stage_history,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StageHistoryOrErr returns the StageHistory value or an error if the edge
// was not loaded in eager-loading.
func (e LeadEdges) StageHistoryOrErr() ([]*LeadStageHistory, error) {
	if e.loadedTypes[0] {
		return e.StageHistory, nil
	}
	return nil, &NotLoadedError{edge: "stage_history"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lead.FieldAnswers, lead.FieldStrengths, lead.FieldConcerns:
			values[i] = new([]byte)
		case lead.FieldSentimentScore:
			values[i] = new(sql.NullFloat64)
		case lead.FieldID, lead.FieldFitScore, lead.FieldConvertedClientID:
			values[i] = new(sql.NullInt64)
		case lead.FieldName, lead.FieldEmail, lead.FieldCompany, lead.FieldSource, lead.FieldSummary, lead.FieldStage, lead.FieldAiSummary, lead.FieldRecommendations, lead.FieldEstimatedRevenuePotential:
			values[i] = new(sql.NullString)
		case lead.FieldStageChangedAt, lead.FieldAnalyzedAt, lead.FieldCreatedAt, lead.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lead fields.
func (_m *Lead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lead.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case lead.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case lead.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case lead.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case lead.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case lead.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case lead.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = lead.Stage(value.String)
			}
		case lead.FieldStageChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stage_changed_at", values[i])
			} else if value.Valid {
				_m.StageChangedAt = value.Time
			}
		case lead.FieldFitScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fit_score", values[i])
			} else if value.Valid {
				_m.FitScore = new(int)
				*_m.FitScore = int(value.Int64)
			}
		case lead.FieldSentimentScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_score", values[i])
			} else if value.Valid {
				_m.SentimentScore = new(float64)
				*_m.SentimentScore = value.Float64
			}
		case lead.FieldAiSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_summary", values[i])
			} else if value.Valid {
				_m.AiSummary = value.String
			}
		case lead.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case lead.FieldConcerns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concerns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Concerns); err != nil {
					return fmt.Errorf("unmarshal field concerns: %w", err)
				}
			}
		case lead.FieldRecommendations:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value.Valid {
				_m.Recommendations = value.String
			}
		case lead.FieldEstimatedRevenuePotential:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_revenue_potential", values[i])
			} else if value.Valid {
				_m.EstimatedRevenuePotential = value.String
			}
		case lead.FieldAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analyzed_at", values[i])
			} else if value.Valid {
				_m.AnalyzedAt = new(time.Time)
				*_m.AnalyzedAt = value.Time
			}
		case lead.FieldConvertedClientID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field converted_client_id", values[i])
			} else if value.Valid {
				_m.ConvertedClientID = new(int)
				*_m.ConvertedClientID = int(value.Int64)
			}
		case lead.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lead.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Lead.
// This includes values selected through modifiers, order, etc.
func (_m *Lead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStageHistory queries the "stage_history" edge of the Lead entity.
func (_m *Lead) QueryStageHistory() *LeadStageHistoryQuery {
	return NewLeadClient(_m.config).QueryStageHistory(_m)
}

// Update returns a builder for updating this Lead.
// Note that you need to call Lead.Unwrap() before calling this method if this Lead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lead) Update() *LeadUpdateOne {
	return NewLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lead) Unwrap() *Lead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lead) String() string {
	var builder strings.Builder
	builder.WriteString("Lead(")
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
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("stage_changed_at=")
	builder.WriteString(_m.StageChangedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FitScore; v != nil {
		builder.WriteString("fit_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SentimentScore; v != nil {
		builder.WriteString("sentiment_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("ai_summary=")
	builder.WriteString(_m.AiSummary)
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("concerns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Concerns))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(_m.Recommendations)
	builder.WriteString(", ")
	builder.WriteString("estimated_revenue_potential=")
	builder.WriteString(_m.EstimatedRevenuePotential)
	builder.WriteString(", ")
	if v := _m.AnalyzedAt; v != nil {
		builder.WriteString("analyzed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ConvertedClientID; v != nil {
		builder.WriteString("converted_client_id=")
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

// Leads is a parsable slice of Lead.
type Leads []*Lead
