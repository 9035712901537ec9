// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Creator is the predicate function for creator builders.
type Creator func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// LeadStageHistory is the predicate function for leadstagehistory builders.
type LeadStageHistory func(*sql.Selector)

// Milestone is the predicate function for milestone builders.
type Milestone func(*sql.Selector)

// OnboardingKit is the predicate function for onboardingkit builders.
type OnboardingKit func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
