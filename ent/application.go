// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/creatorbridge/api/ent/application"
	"github.com/creatorbridge/api/ent/user"
)

// Application is the model entity for the Application schema.
type Application struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ID of the applicant user
	UserID int `json:"user_id,omitempty"`
	// Creator or brand name
	CreatorName string `json:"creator_name,omitempty"`
	// YouTube channel handle
	YoutubeHandle string `json:"youtube_handle,omitempty"`
	// TikTok handle
	TiktokHandle string `json:"tiktok_handle,omitempty"`
	// Instagram handle
	InstagramHandle string `json:"instagram_handle,omitempty"`
	// YouTube subscriber count
	YoutubeFollowers int `json:"youtube_followers,omitempty"`
	// TikTok follower count
	TiktokFollowers int `json:"tiktok_followers,omitempty"`
	// Instagram follower count
	InstagramFollowers int `json:"instagram_followers,omitempty"`
	// Personal or brand website
	Website string `json:"website,omitempty"`
	// What the applicant wants to build in the program
	ProjectIdea string `json:"project_idea,omitempty"`
	// Who the project is for
	TargetAudience string `json:"target_audience,omitempty"`
	// Why the applicant wants to join
	WhyJoin string `json:"why_join,omitempty"`
	// S3 URL of the uploaded pitch deck PDF
	PitchDeckURL string `json:"pitch_deck_url,omitempty"`
	// S3 URL of the uploaded media kit PDF
	MediaKitURL string `json:"media_kit_url,omitempty"`
	// Application review status
	Status application.Status `json:"status,omitempty"`
	// Free-text reviewer notes
	AdminNotes string `json:"admin_notes,omitempty"`
	// Reviewer tags (e.g. [strong-video, needs-followup])
	Tags []string `json:"tags,omitempty"`
	// When the application was submitted
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicationQuery when eager-loading is set.
	Edges        ApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicationEdges holds the relations/edges for other nodes in the graph.
type ApplicationEdges struct {
	// Applicant holds the value of the applicant edge.
	Applicant *User `json:"applicant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicantOrErr returns the Applicant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) ApplicantOrErr() (*User, error) {
	if e.Applicant != nil {
		return e.Applicant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "applicant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Application) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case application.FieldTags:
			values[i] = new([]byte)
		case application.FieldID, application.FieldUserID, application.FieldYoutubeFollowers, application.FieldTiktokFollowers, application.FieldInstagramFollowers:
			values[i] = new(sql.NullInt64)
		case application.FieldCreatorName, application.FieldYoutubeHandle, application.FieldTiktokHandle, application.FieldInstagramHandle, application.FieldWebsite, application.FieldProjectIdea, application.FieldTargetAudience, application.FieldWhyJoin, application.FieldPitchDeckURL, application.FieldMediaKitURL, application.FieldStatus, application.FieldAdminNotes:
			values[i] = new(sql.NullString)
		case application.FieldSubmittedAt, application.FieldCreatedAt, application.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Application fields.
func (_m *Application) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case application.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case application.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case application.FieldCreatorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_name", values[i])
			} else if value.Valid {
				_m.CreatorName = value.String
			}
		case application.FieldYoutubeHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field youtube_handle", values[i])
			} else if value.Valid {
				_m.YoutubeHandle = value.String
			}
		case application.FieldTiktokHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tiktok_handle", values[i])
			} else if value.Valid {
				_m.TiktokHandle = value.String
			}
		case application.FieldInstagramHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instagram_handle", values[i])
			} else if value.Valid {
				_m.InstagramHandle = value.String
			}
		case application.FieldYoutubeFollowers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field youtube_followers", values[i])
			} else if value.Valid {
				_m.YoutubeFollowers = int(value.Int64)
			}
		case application.FieldTiktokFollowers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tiktok_followers", values[i])
			} else if value.Valid {
				_m.TiktokFollowers = int(value.Int64)
			}
		case application.FieldInstagramFollowers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field instagram_followers", values[i])
			} else if value.Valid {
				_m.InstagramFollowers = int(value.Int64)
			}
		case application.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case application.FieldProjectIdea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_idea", values[i])
			} else if value.Valid {
				_m.ProjectIdea = value.String
			}
		case application.FieldTargetAudience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_audience", values[i])
			} else if value.Valid {
				_m.TargetAudience = value.String
			}
		case application.FieldWhyJoin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field why_join", values[i])
			} else if value.Valid {
				_m.WhyJoin = value.String
			}
		case application.FieldPitchDeckURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pitch_deck_url", values[i])
			} else if value.Valid {
				_m.PitchDeckURL = value.String
			}
		case application.FieldMediaKitURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_kit_url", values[i])
			} else if value.Valid {
				_m.MediaKitURL = value.String
			}
		case application.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = application.Status(value.String)
			}
		case application.FieldAdminNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_notes", values[i])
			} else if value.Valid {
				_m.AdminNotes = value.String
			}
		case application.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case application.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = new(time.Time)
				*_m.SubmittedAt = value.Time
			}
		case application.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case application.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Application.
// This includes values selected through modifiers, order, etc.
func (_m *Application) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplicant queries the "applicant" edge of the Application entity.
func (_m *Application) QueryApplicant() *UserQuery {
	return NewApplicationClient(_m.config).QueryApplicant(_m)
}

// Update returns a builder for updating this Application.
// Note that you need to call Application.Unwrap() before calling this method if this Application
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Application) Update() *ApplicationUpdateOne {
	return NewApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Application entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Application) Unwrap() *Application {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Application is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Application) String() string {
	var builder strings.Builder
	builder.WriteString("Application(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("creator_name=")
	builder.WriteString(_m.CreatorName)
	builder.WriteString(", ")
	builder.WriteString("youtube_handle=")
	builder.WriteString(_m.YoutubeHandle)
	builder.WriteString(", ")
	builder.WriteString("tiktok_handle=")
	builder.WriteString(_m.TiktokHandle)
	builder.WriteString(", ")
	builder.WriteString("instagram_handle=")
	builder.WriteString(_m.InstagramHandle)
	builder.WriteString(", ")
	builder.WriteString("youtube_followers=")
	builder.WriteString(fmt.Sprintf("%v", _m.YoutubeFollowers))
	builder.WriteString(", ")
	builder.WriteString("tiktok_followers=")
	builder.WriteString(fmt.Sprintf("%v", _m.TiktokFollowers))
	builder.WriteString(", ")
	builder.WriteString("instagram_followers=")
	builder.WriteString(fmt.Sprintf("%v", _m.InstagramFollowers))
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	builder.WriteString("project_idea=")
	builder.WriteString(_m.ProjectIdea)
	builder.WriteString(", ")
	builder.WriteString("target_audience=")
	builder.WriteString(_m.TargetAudience)
	builder.WriteString(", ")
	builder.WriteString("why_join=")
	builder.WriteString(_m.WhyJoin)
	builder.WriteString(", ")
	builder.WriteString("pitch_deck_url=")
	builder.WriteString(_m.PitchDeckURL)
	builder.WriteString(", ")
	builder.WriteString("media_kit_url=")
	builder.WriteString(_m.MediaKitURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("admin_notes=")
	builder.WriteString(_m.AdminNotes)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	if v := _m.SubmittedAt; v != nil {
		builder.WriteString("submitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// Applications is a parsable slice of Application.
type Applications []*Application
