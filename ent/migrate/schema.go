// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"email", "call", "meeting", "note", "system"}},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeInt},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activities_clients_activities",
				Columns:    []*schema.Column{ActivitiesColumns[4]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activity_client_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[4], ActivitiesColumns[3]},
			},
			{
				Name:    "activity_client_id_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[4], ActivitiesColumns[1], ActivitiesColumns[3]},
			},
		},
	}
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "creator_name", Type: field.TypeString},
		{Name: "youtube_handle", Type: field.TypeString, Nullable: true},
		{Name: "tiktok_handle", Type: field.TypeString, Nullable: true},
		{Name: "instagram_handle", Type: field.TypeString, Nullable: true},
		{Name: "youtube_followers", Type: field.TypeInt, Default: 0},
		{Name: "tiktok_followers", Type: field.TypeInt, Default: 0},
		{Name: "instagram_followers", Type: field.TypeInt, Default: 0},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "project_idea", Type: field.TypeString, Size: 2147483647},
		{Name: "target_audience", Type: field.TypeString, Size: 2147483647},
		{Name: "why_join", Type: field.TypeString, Size: 2147483647},
		{Name: "pitch_deck_url", Type: field.TypeString, Nullable: true},
		{Name: "media_kit_url", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"not_submitted", "under_review", "accepted", "rejected"}, Default: "not_submitted"},
		{Name: "admin_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "applications_users_applications",
				Columns:    []*schema.Column{ApplicationsColumns[20]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "application_status",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[14]},
			},
			{
				Name:    "application_user_id",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[20]},
			},
			{
				Name:    "application_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[17]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"application_reviewed", "lead_stage_changed", "lead_converted", "document_approved", "document_revision_requested", "month_generated", "health_recomputed", "user_login"}},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "critical"}, Default: "info"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_users_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[7], AuditLogsColumns[6]},
			},
			{
				Name:    "auditlog_action_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[6]},
			},
		},
	}
	// ClientsColumns holds the columns for the "clients" table.
	ClientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "journey_stage", Type: field.TypeEnum, Enums: []string{"foundation", "prep", "launch", "growth_expansion"}, Default: "foundation"},
		{Name: "journey_progress", Type: field.TypeInt, Default: 0},
		{Name: "health_score", Type: field.TypeInt, Default: 0},
		{Name: "health_factors", Type: field.TypeJSON, Nullable: true},
		{Name: "health_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "converted_from_lead_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClientsTable holds the schema information for the "clients" table.
	ClientsTable = &schema.Table{
		Name:       "clients",
		Columns:    ClientsColumns,
		PrimaryKey: []*schema.Column{ClientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "creator_journey_stage",
				Unique:  false,
				Columns: []*schema.Column{ClientsColumns[4]},
			},
			{
				Name:    "creator_health_score",
				Unique:  false,
				Columns: []*schema.Column{ClientsColumns[6]},
			},
			{
				Name:    "creator_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClientsColumns[10]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slot", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"not_generated", "generated", "sent", "viewed", "revision_requested", "approved"}, Default: "not_generated"},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "revision_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status_changed_at", Type: field.TypeTime},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "kit_id", Type: field.TypeInt},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_onboarding_kits_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{OnboardingKitsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_kit_id_slot",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[1]},
			},
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"warm", "interested", "almost_onboarded", "onboarded", "rejected"}, Default: "warm"},
		{Name: "stage_changed_at", Type: field.TypeTime},
		{Name: "fit_score", Type: field.TypeInt, Nullable: true},
		{Name: "sentiment_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "ai_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "concerns", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "estimated_revenue_potential", Type: field.TypeString, Nullable: true},
		{Name: "analyzed_at", Type: field.TypeTime, Nullable: true},
		{Name: "converted_client_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_stage",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[7]},
			},
			{
				Name:    "lead_email",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[2]},
			},
			{
				Name:    "lead_fit_score",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[18]},
			},
		},
	}
	// LeadStageHistoriesColumns holds the columns for the "lead_stage_histories" table.
	LeadStageHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "old_stage", Type: field.TypeEnum, Nullable: true, Enums: []string{"warm", "interested", "almost_onboarded", "onboarded", "rejected"}},
		{Name: "new_stage", Type: field.TypeEnum, Enums: []string{"warm", "interested", "almost_onboarded", "onboarded", "rejected"}},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// LeadStageHistoriesTable holds the schema information for the "lead_stage_histories" table.
	LeadStageHistoriesTable = &schema.Table{
		Name:       "lead_stage_histories",
		Columns:    LeadStageHistoriesColumns,
		PrimaryKey: []*schema.Column{LeadStageHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_stage_histories_leads_stage_history",
				Columns:    []*schema.Column{LeadStageHistoriesColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "lead_stage_histories_users_lead_stage_changes",
				Columns:    []*schema.Column{LeadStageHistoriesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_lead_stage_history_lead_time",
				Unique:  false,
				Columns: []*schema.Column{LeadStageHistoriesColumns[5], LeadStageHistoriesColumns[4]},
			},
			{
				Name:    "idx_lead_stage_history_stage_time",
				Unique:  false,
				Columns: []*schema.Column{LeadStageHistoriesColumns[2], LeadStageHistoriesColumns[4]},
			},
		},
	}
	// MilestonesColumns holds the columns for the "milestones" table.
	MilestonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"not_started", "in_progress", "completed"}, Default: "not_started"},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeInt},
	}
	// MilestonesTable holds the schema information for the "milestones" table.
	MilestonesTable = &schema.Table{
		Name:       "milestones",
		Columns:    MilestonesColumns,
		PrimaryKey: []*schema.Column{MilestonesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "milestones_clients_milestones",
				Columns:    []*schema.Column{MilestonesColumns[7]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "milestone_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{MilestonesColumns[7], MilestonesColumns[2]},
			},
		},
	}
	// OnboardingKitsColumns holds the columns for the "onboarding_kits" table.
	OnboardingKitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "month", Type: field.TypeInt},
		{Name: "generated", Type: field.TypeBool, Default: false},
		{Name: "generated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeInt},
	}
	// OnboardingKitsTable holds the schema information for the "onboarding_kits" table.
	OnboardingKitsTable = &schema.Table{
		Name:       "onboarding_kits",
		Columns:    OnboardingKitsColumns,
		PrimaryKey: []*schema.Column{OnboardingKitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "onboarding_kits_clients_kits",
				Columns:    []*schema.Column{OnboardingKitsColumns[5]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "onboardingkit_client_id_month",
				Unique:  true,
				Columns: []*schema.Column{OnboardingKitsColumns[5], OnboardingKitsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "oauth_provider", Type: field.TypeString, Nullable: true},
		{Name: "oauth_id", Type: field.TypeString, Nullable: true},
		{Name: "magic_link_token_hash", Type: field.TypeString, Nullable: true},
		{Name: "magic_link_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		ApplicationsTable,
		AuditLogsTable,
		ClientsTable,
		DocumentsTable,
		LeadsTable,
		LeadStageHistoriesTable,
		MilestonesTable,
		OnboardingKitsTable,
		UsersTable,
	}
)

func init() {
	ActivitiesTable.ForeignKeys[0].RefTable = ClientsTable
	ApplicationsTable.ForeignKeys[0].RefTable = UsersTable
	AuditLogsTable.ForeignKeys[0].RefTable = UsersTable
	ClientsTable.Annotation = &entsql.Annotation{
		Table: "clients",
	}
	DocumentsTable.ForeignKeys[0].RefTable = OnboardingKitsTable
	LeadStageHistoriesTable.ForeignKeys[0].RefTable = LeadsTable
	LeadStageHistoriesTable.ForeignKeys[1].RefTable = UsersTable
	MilestonesTable.ForeignKeys[0].RefTable = ClientsTable
	OnboardingKitsTable.ForeignKeys[0].RefTable = ClientsTable
}
