package audit

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/auditlog"
)

// Service handles audit logging
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// LogEntry represents an audit log entry
type LogEntry struct {
	UserID       *int
	Action       auditlog.Action
	ResourceType string
	ResourceID   string
	Metadata     map[string]interface{}
	Severity     auditlog.Severity
}

// Log creates a new audit log entry
func (s *Service) Log(ctx context.Context, entry LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.AuditLog.Create().
		SetAction(entry.Action).
		SetSeverity(entry.Severity)

	if entry.UserID != nil {
		create = create.SetUserID(*entry.UserID)
	}
	if entry.ResourceType != "" {
		create = create.SetResourceType(entry.ResourceType)
	}
	if entry.ResourceID != "" {
		create = create.SetResourceID(entry.ResourceID)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	_, err := create.Save(ctx)
	return err
}

// LogBestEffort logs an entry and only reports failure server-side.
// Audit writes never fail the operation they describe.
func (s *Service) LogBestEffort(ctx context.Context, entry LogEntry) {
	if err := s.Log(ctx, entry); err != nil {
		log.Printf("⚠️ Failed to write audit log for action %s: %v", entry.Action, err)
	}
}

// LogUserLogin logs a successful sign-in.
func (s *Service) LogUserLogin(ctx context.Context, userID int, method string) {
	s.LogBestEffort(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionUserLogin,
		ResourceType: "user",
		ResourceID:   strconv.Itoa(userID),
		Metadata:     map[string]interface{}{"method": method},
		Severity:     auditlog.SeverityInfo,
	})
}

// LogApplicationReviewed logs an admin review decision on an application.
func (s *Service) LogApplicationReviewed(ctx context.Context, adminID, applicationID int, status string) {
	s.LogBestEffort(ctx, LogEntry{
		UserID:       &adminID,
		Action:       auditlog.ActionApplicationReviewed,
		ResourceType: "application",
		ResourceID:   strconv.Itoa(applicationID),
		Metadata:     map[string]interface{}{"status": status},
		Severity:     auditlog.SeverityInfo,
	})
}

// LogLeadStageChanged logs a lead pipeline stage transition.
func (s *Service) LogLeadStageChanged(ctx context.Context, userID, leadID int, oldStage, newStage string) {
	s.LogBestEffort(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionLeadStageChanged,
		ResourceType: "lead",
		ResourceID:   strconv.Itoa(leadID),
		Metadata: map[string]interface{}{
			"old_stage": oldStage,
			"new_stage": newStage,
		},
		Severity: auditlog.SeverityInfo,
	})
}

// LogLeadConverted logs the one-way conversion of a lead into a client.
func (s *Service) LogLeadConverted(ctx context.Context, userID, leadID, clientID int) {
	s.LogBestEffort(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionLeadConverted,
		ResourceType: "lead",
		ResourceID:   strconv.Itoa(leadID),
		Metadata:     map[string]interface{}{"client_id": clientID},
		Severity:     auditlog.SeverityWarning,
	})
}

// LogDocumentApproved logs a terminal document approval.
func (s *Service) LogDocumentApproved(ctx context.Context, userID, documentID, clientID, month int) {
	s.LogBestEffort(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionDocumentApproved,
		ResourceType: "document",
		ResourceID:   strconv.Itoa(documentID),
		Metadata: map[string]interface{}{
			"client_id": clientID,
			"month":     month,
		},
		Severity: auditlog.SeverityInfo,
	})
}

// LogDocumentRevisionRequested logs a revision request on a document.
func (s *Service) LogDocumentRevisionRequested(ctx context.Context, userID, documentID int, notes string) {
	s.LogBestEffort(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionDocumentRevisionRequested,
		ResourceType: "document",
		ResourceID:   strconv.Itoa(documentID),
		Metadata:     map[string]interface{}{"notes": notes},
		Severity:     auditlog.SeverityInfo,
	})
}

// LogMonthGenerated logs a successful month generation.
func (s *Service) LogMonthGenerated(ctx context.Context, userID, clientID, month int) {
	s.LogBestEffort(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionMonthGenerated,
		ResourceType: "client",
		ResourceID:   strconv.Itoa(clientID),
		Metadata:     map[string]interface{}{"month": month},
		Severity:     auditlog.SeverityInfo,
	})
}

// LogHealthRecomputed logs a manual health recompute.
func (s *Service) LogHealthRecomputed(ctx context.Context, userID, clientID, score int) {
	s.LogBestEffort(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionHealthRecomputed,
		ResourceType: "client",
		ResourceID:   strconv.Itoa(clientID),
		Metadata:     map[string]interface{}{"score": score},
		Severity:     auditlog.SeverityInfo,
	})
}

// GetRecentLogs retrieves recent audit logs (for admin)
func (s *Service) GetRecentLogs(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetLogsByAction retrieves logs filtered by action
func (s *Service) GetLogsByAction(ctx context.Context, action auditlog.Action, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Where(auditlog.ActionEQ(action)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
