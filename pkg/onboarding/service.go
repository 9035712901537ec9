package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/pkg/ai/llm"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/models"
)

var (
	// ErrClientNotFound is returned when the client doesn't exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidMonth is returned for months outside 1-8.
	ErrInvalidMonth = errors.New("month must be between 1 and 8")
	// ErrMonthLocked is returned when the preceding month is not complete.
	ErrMonthLocked = errors.New("month is locked")
	// ErrAlreadyGenerated is returned when the month was generated before.
	ErrAlreadyGenerated = errors.New("month already generated")
	// ErrNotGenerated is returned for document operations on an ungenerated month.
	ErrNotGenerated = errors.New("month not generated")
	// ErrDocumentNotFound is returned when the slot doesn't resolve to a document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidTransition is returned for a disallowed lifecycle transition.
	ErrInvalidTransition = errors.New("invalid document status transition")
	// ErrEmptyRevisionNotes is returned when revision notes are empty or whitespace.
	ErrEmptyRevisionNotes = errors.New("revision notes must not be empty")
)

// Service manages onboarding kits and the document lifecycle.
type Service struct {
	db    *ent.Client
	llm   llm.Client
	audit *audit.Service
}

// NewService creates a new onboarding service.
func NewService(db *ent.Client, llmClient llm.Client, auditSvc *audit.Service) *Service {
	return &Service{db: db, llm: llmClient, audit: auditSvc}
}

// GenerateMonth generates all five documents for a program month in one
// transaction. The month must be unlocked and not yet generated. Content
// generation falls back to a deterministic template per document when the
// model call fails, so the write is all-or-nothing at the database level.
func (s *Service) GenerateMonth(ctx context.Context, clientID, month int, actorID int) (*models.MonthResponse, error) {
	names, err := DocumentNames(month)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	cl, err := s.db.Creator.Get(ctx, clientID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	unlocked, err := s.monthUnlocked(ctx, clientID, month)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, ErrMonthLocked
	}

	kit, err := s.db.OnboardingKit.Query().
		Where(onboardingkit.ClientID(clientID), onboardingkit.MonthEQ(month)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to fetch kit: %w", err)
	}
	if kit != nil && kit.Generated {
		return nil, ErrAlreadyGenerated
	}

	// Generate all content up front. This step cannot fail: each document
	// falls back to its template when the model is unavailable.
	contents := make([]string, DocumentsPerMonth)
	for i, name := range names {
		contents[i] = s.generateContent(ctx, cl.Name, month, name)
	}

	now := time.Now()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	if kit == nil {
		kit, err = tx.OnboardingKit.Create().
			SetClientID(clientID).
			SetMonth(month).
			SetGenerated(true).
			SetGeneratedAt(now).
			Save(ctx)
	} else {
		kit, err = tx.OnboardingKit.UpdateOneID(kit.ID).
			SetGenerated(true).
			SetGeneratedAt(now).
			Save(ctx)
	}
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to save kit: %w", err)
	}

	docs := make([]*ent.Document, 0, DocumentsPerMonth)
	for i, name := range names {
		doc, err := tx.Document.Create().
			SetKitID(kit.ID).
			SetSlot(i + 1).
			SetName(name).
			SetStatus(document.StatusGenerated).
			SetContent(contents[i]).
			SetStatusChangedAt(now).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create document %q: %w", name, err)
		}
		docs = append(docs, doc)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Generated month %d kit for client %d (%d documents)", month, clientID, len(docs))
	s.audit.LogMonthGenerated(ctx, actorID, clientID, month)

	resp := monthResponse(kit, docs)
	return &resp, nil
}

// MarkSent transitions a document from generated to sent.
func (s *Service) MarkSent(ctx context.Context, clientID, month, slot int) (*models.DocumentResponse, error) {
	return s.transition(ctx, clientID, month, slot,
		[]document.Status{document.StatusGenerated},
		document.StatusSent, nil)
}

// MarkViewed transitions a document from sent to viewed.
func (s *Service) MarkViewed(ctx context.Context, clientID, month, slot int) (*models.DocumentResponse, error) {
	return s.transition(ctx, clientID, month, slot,
		[]document.Status{document.StatusSent},
		document.StatusViewed, nil)
}

// Approve moves a document to its terminal approved state. Allowed from
// any generated state; approving an approved document is rejected.
func (s *Service) Approve(ctx context.Context, clientID, month, slot int, actorID int) (*models.DocumentResponse, error) {
	now := time.Now()
	resp, err := s.transition(ctx, clientID, month, slot,
		[]document.Status{
			document.StatusGenerated,
			document.StatusSent,
			document.StatusViewed,
			document.StatusRevisionRequested,
		},
		document.StatusApproved,
		func(u *ent.DocumentUpdateOne) {
			u.SetApprovedAt(now)
		})
	if err != nil {
		return nil, err
	}

	s.audit.LogDocumentApproved(ctx, actorID, resp.ID, clientID, month)
	log.Printf("✅ Approved document %d (client %d, month %d, slot %d)", resp.ID, clientID, month, slot)
	return resp, nil
}

// RequestRevision moves a document into revision_requested with the
// reviewer's notes. Empty or whitespace-only notes are rejected without
// touching the document.
func (s *Service) RequestRevision(ctx context.Context, clientID, month, slot int, notes string, actorID int) (*models.DocumentResponse, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, ErrEmptyRevisionNotes
	}

	resp, err := s.transition(ctx, clientID, month, slot,
		[]document.Status{
			document.StatusGenerated,
			document.StatusSent,
			document.StatusViewed,
		},
		document.StatusRevisionRequested,
		func(u *ent.DocumentUpdateOne) {
			u.SetRevisionNotes(notes)
		})
	if err != nil {
		return nil, err
	}

	s.audit.LogDocumentRevisionRequested(ctx, actorID, resp.ID, notes)
	return resp, nil
}

// Regenerate re-generates a single document that is in revision_requested,
// incorporating the reviewer's notes, and returns it to generated.
func (s *Service) Regenerate(ctx context.Context, clientID, month, slot int) (*models.DocumentResponse, error) {
	cl, err := s.db.Creator.Get(ctx, clientID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	doc, err := s.findDocument(ctx, clientID, month, slot)
	if err != nil {
		return nil, err
	}
	if doc.Status != document.StatusRevisionRequested {
		return nil, ErrInvalidTransition
	}

	content := s.regenerateContent(ctx, cl.Name, month, doc.Name, doc.RevisionNotes)

	updated, err := s.db.Document.UpdateOneID(doc.ID).
		SetContent(content).
		SetStatus(document.StatusGenerated).
		SetStatusChangedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	log.Printf("✅ Regenerated document %d (client %d, month %d, slot %d)", doc.ID, clientID, month, slot)
	resp := documentResponse(updated)
	return &resp, nil
}

// Download returns the markdown content and attachment filename for a
// generated document.
func (s *Service) Download(ctx context.Context, clientID, month, slot int) (filename, content string, err error) {
	doc, err := s.findDocument(ctx, clientID, month, slot)
	if err != nil {
		return "", "", err
	}
	if doc.Status == document.StatusNotGenerated || doc.Content == "" {
		return "", "", ErrNotGenerated
	}
	return Slugify(doc.Name) + ".md", doc.Content, nil
}

// GetKit returns the full eight-month view for a client. Lock state and
// the current month are derived from document approvals on every read.
func (s *Service) GetKit(ctx context.Context, clientID int) (*models.KitResponse, error) {
	cl, err := s.db.Creator.Get(ctx, clientID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	kits, err := s.db.OnboardingKit.Query().
		Where(onboardingkit.ClientID(cl.ID)).
		WithDocuments(func(q *ent.DocumentQuery) {
			q.Order(ent.Asc(document.FieldSlot))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kits: %w", err)
	}

	byMonth := make(map[int]*ent.OnboardingKit, len(kits))
	for _, k := range kits {
		byMonth[k.Month] = k
	}

	resp := &models.KitResponse{
		ClientID:     clientID,
		CurrentMonth: MonthCount,
		Months:       make([]models.MonthResponse, 0, MonthCount),
	}

	unlocked := true // month 1 always starts unlocked
	currentSet := false
	for month := 1; month <= MonthCount; month++ {
		var mr models.MonthResponse
		if kit, ok := byMonth[month]; ok {
			mr = monthResponse(kit, kit.Edges.Documents)
		} else {
			mr = placeholderMonth(month)
		}
		mr.Locked = !unlocked

		if unlocked && !mr.Complete && !currentSet {
			resp.CurrentMonth = month
			currentSet = true
		}

		// The next month unlocks only when this one is complete, so once
		// a month is incomplete everything after it stays locked.
		unlocked = unlocked && mr.Complete
		resp.Months = append(resp.Months, mr)
	}

	return resp, nil
}

// transition validates the document's current status against the allowed
// set and applies the new status in a single update.
func (s *Service) transition(ctx context.Context, clientID, month, slot int, from []document.Status, to document.Status, extra func(*ent.DocumentUpdateOne)) (*models.DocumentResponse, error) {
	doc, err := s.findDocument(ctx, clientID, month, slot)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, st := range from {
		if doc.Status == st {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	update := s.db.Document.UpdateOneID(doc.ID).
		SetStatus(to).
		SetStatusChangedAt(time.Now())
	if extra != nil {
		extra(update)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	resp := documentResponse(updated)
	return &resp, nil
}

func (s *Service) findDocument(ctx context.Context, clientID, month, slot int) (*ent.Document, error) {
	if month < 1 || month > MonthCount {
		return nil, ErrInvalidMonth
	}
	if slot < 1 || slot > DocumentsPerMonth {
		return nil, ErrDocumentNotFound
	}

	kit, err := s.db.OnboardingKit.Query().
		Where(onboardingkit.ClientID(clientID), onboardingkit.MonthEQ(month)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotGenerated
		}
		return nil, fmt.Errorf("failed to fetch kit: %w", err)
	}
	if !kit.Generated {
		return nil, ErrNotGenerated
	}

	doc, err := s.db.Document.Query().
		Where(document.KitID(kit.ID), document.SlotEQ(slot)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return doc, nil
}

// monthUnlocked reports whether a month can be generated or interacted
// with: month 1 always, month N only when month N-1 has all five
// documents approved.
func (s *Service) monthUnlocked(ctx context.Context, clientID, month int) (bool, error) {
	if month == 1 {
		return true, nil
	}

	approved, err := s.db.Document.Query().
		Where(
			document.StatusEQ(document.StatusApproved),
			document.HasKitWith(
				onboardingkit.ClientID(clientID),
				onboardingkit.MonthEQ(month-1),
			),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count approved documents: %w", err)
	}
	return approved == DocumentsPerMonth, nil
}

func (s *Service) generateContent(ctx context.Context, clientName string, month int, docName string) string {
	prompt := fmt.Sprintf(
		"Write the %q onboarding document for creator %q, month %d of an 8-month creator accelerator program. "+
			"Return well-structured markdown with practical, fill-in-able sections.",
		docName, clientName, month)

	return s.complete(ctx, prompt, docName, clientName, month)
}

func (s *Service) regenerateContent(ctx context.Context, clientName string, month int, docName, revisionNotes string) string {
	prompt := fmt.Sprintf(
		"Rewrite the %q onboarding document for creator %q, month %d of an 8-month creator accelerator program. "+
			"Address this reviewer feedback: %s. Return well-structured markdown.",
		docName, clientName, month, revisionNotes)

	return s.complete(ctx, prompt, docName, clientName, month)
}

func (s *Service) complete(ctx context.Context, prompt, docName, clientName string, month int) string {
	if s.llm == nil {
		return fallbackContent(docName, clientName, month)
	}

	genCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	content, err := s.llm.Complete(genCtx, prompt,
		"You are a creator-relations manager writing onboarding documents for an accelerator program.")
	if err != nil {
		log.Printf("⚠️ Content generation failed for %q, using template: %v", docName, err)
		return fallbackContent(docName, clientName, month)
	}
	return content
}

func documentResponse(doc *ent.Document) models.DocumentResponse {
	return models.DocumentResponse{
		ID:              doc.ID,
		Slot:            doc.Slot,
		Name:            doc.Name,
		Status:          string(doc.Status),
		RevisionNotes:   doc.RevisionNotes,
		StatusChangedAt: doc.StatusChangedAt,
		ApprovedAt:      doc.ApprovedAt,
	}
}

func monthResponse(kit *ent.OnboardingKit, docs []*ent.Document) models.MonthResponse {
	mr := models.MonthResponse{
		Month:       kit.Month,
		Generated:   kit.Generated,
		GeneratedAt: kit.GeneratedAt,
		Documents:   make([]models.DocumentResponse, 0, len(docs)),
	}

	approved := 0
	for _, doc := range docs {
		mr.Documents = append(mr.Documents, documentResponse(doc))
		if doc.Status == document.StatusApproved {
			approved++
		}
	}
	mr.Complete = approved == DocumentsPerMonth
	return mr
}

// placeholderMonth synthesizes the view of a month that has no kit row
// yet: the template names with not_generated status.
func placeholderMonth(month int) models.MonthResponse {
	names := documentTemplates[month-1]
	docs := make([]models.DocumentResponse, 0, DocumentsPerMonth)
	for i, name := range names {
		docs = append(docs, models.DocumentResponse{
			Slot:   i + 1,
			Name:   name,
			Status: string(document.StatusNotGenerated),
		})
	}
	return models.MonthResponse{
		Month:     month,
		Documents: docs,
	}
}
