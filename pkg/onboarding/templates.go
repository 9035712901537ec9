package onboarding

import (
	"fmt"
	"strings"
	"time"
)

// MonthCount is the length of the program in months.
const MonthCount = 8

// DocumentsPerMonth is the fixed number of documents in every month's kit.
const DocumentsPerMonth = 5

// documentTemplates maps each program month to its five document names.
// The table is fixed: every client gets the same names for a given month.
var documentTemplates = [MonthCount][DocumentsPerMonth]string{
	{ // Month 1 — foundation
		"Welcome & Program Overview",
		"Brand Identity Worksheet",
		"Audience Persona Canvas",
		"Content Pillars Blueprint",
		"90-Day Goal Map",
	},
	{ // Month 2 — content engine
		"Content Calendar Framework",
		"Platform Strategy Guide",
		"Hook & Headline Playbook",
		"Production Workflow Checklist",
		"Analytics Baseline Report",
	},
	{ // Month 3 — monetization prep
		"Monetization Readiness Audit",
		"Sponsorship Pitch Template",
		"Media Kit Outline",
		"Rate Card Worksheet",
		"Outreach Email Scripts",
	},
	{ // Month 4 — community
		"Community Building Playbook",
		"Engagement Ritual Guide",
		"Collaboration Shortlist",
		"Newsletter Launch Plan",
		"Feedback Loop Survey",
	},
	{ // Month 5 — offer design
		"Product Ideation Workshop",
		"Offer Validation Checklist",
		"Pricing Strategy Brief",
		"Landing Page Wireframe",
		"Pre-Launch Email Sequence",
	},
	{ // Month 6 — launch
		"Launch Runbook",
		"Sales Funnel Map",
		"Affiliate & Partner Brief",
		"Customer Onboarding Flow",
		"Post-Launch Retro Template",
	},
	{ // Month 7 — scale
		"Scaling Systems Audit",
		"Team & Delegation Plan",
		"Content Repurposing Matrix",
		"Paid Growth Experiment Plan",
		"Quarterly KPI Dashboard",
	},
	{ // Month 8 — graduation
		"Year-Ahead Strategy Deck",
		"Revenue Diversification Map",
		"Brand Partnership Roadmap",
		"Creator Ops Handbook",
		"Graduation Review & Next Steps",
	},
}

// DocumentNames returns the five template names for a program month (1-8).
func DocumentNames(month int) ([DocumentsPerMonth]string, error) {
	if month < 1 || month > MonthCount {
		return [DocumentsPerMonth]string{}, fmt.Errorf("month must be between 1 and %d, got %d", MonthCount, month)
	}
	return documentTemplates[month-1], nil
}

// Slugify converts a document name to a filename-safe slug:
// lowercase, non-alphanumerics collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// fallbackContent is the deterministic markdown used when content
// generation is unavailable, so month generation never partially fails.
func fallbackContent(docName, clientName string, month int) string {
	return fmt.Sprintf(`# %s

**Client:** %s
**Program month:** %d
**Prepared:** %s

## Purpose

This document is part of your month %d onboarding kit. Work through each
section with your creator-relations manager and bring questions to your
next check-in.

## Worksheet

1. Review the goals you set for this month.
2. Fill in each section below before your next session.
3. Mark items you want to discuss during the review call.

## Notes

_Add your notes here._
`, docName, clientName, month, time.Now().Format("January 2, 2006"), month)
}
