package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/activity"
	entclient "github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/milestone"
)

// Creator niches used for generated summaries and company names.
var niches = []string{
	"tech reviews", "cooking", "fitness", "personal finance", "travel vlogs",
	"DIY crafts", "gaming", "language learning", "home workouts", "photography",
}

var leadSources = []string{"inbound", "referral", "outreach", "conference", "social"}

var leadStages = []lead.Stage{
	lead.StageWarm,
	lead.StageInterested,
	lead.StageAlmostOnboarded,
	lead.StageOnboarded,
	lead.StageRejected,
}

var journeyStages = []entclient.JourneyStage{
	entclient.JourneyStageFoundation,
	entclient.JourneyStagePrep,
	entclient.JourneyStageLaunch,
	entclient.JourneyStageGrowthExpansion,
}

var activityTypes = []activity.Type{
	activity.TypeEmail,
	activity.TypeCall,
	activity.TypeMeeting,
	activity.TypeNote,
}

var milestoneTitles = []string{
	"Publish first program video",
	"Complete brand identity worksheet",
	"Launch newsletter",
	"Close first sponsorship deal",
	"Hit 10k followers milestone",
	"Finish audience persona canvas",
	"Record product launch video",
}

// SeedLeads inserts count fake leads at various pipeline stages.
func SeedLeads(ctx context.Context, db *ent.Client, count int) error {
	for i := 0; i < count; i++ {
		niche := niches[rand.Intn(len(niches))]
		name := gofakeit.Name()

		builder := db.Lead.Create().
			SetName(name).
			SetEmail(fakeEmail(name)).
			SetCompany(gofakeit.Company()).
			SetSource(leadSources[rand.Intn(len(leadSources))]).
			SetSummary(fmt.Sprintf("Creator focused on %s, around %dk followers.",
				niche, 10+rand.Intn(490))).
			SetAnswers(map[string]string{
				"goal":     gofakeit.Sentence(8),
				"audience": gofakeit.Sentence(6),
			}).
			SetStage(leadStages[rand.Intn(len(leadStages))]).
			SetCreatedAt(randomPastTime(90))

		// Roughly two thirds of seeded leads have an analysis result.
		if rand.Float64() < 0.66 {
			builder = builder.
				SetFitScore(rand.Intn(101)).
				SetSentimentScore(rand.Float64()).
				SetAiSummary(gofakeit.Paragraph(1, 3, 12, " ")).
				SetStrengths([]string{gofakeit.BuzzWord(), gofakeit.BuzzWord()}).
				SetConcerns([]string{gofakeit.BuzzWord()}).
				SetRecommendations(gofakeit.Sentence(10)).
				SetEstimatedRevenuePotential(fmt.Sprintf("$%dk-$%dk/yr", 10+rand.Intn(40), 60+rand.Intn(140))).
				SetAnalyzedAt(time.Now())
		}

		if err := builder.Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed lead %d: %w", i, err)
		}
	}
	return nil
}

// SeedClients inserts count fake clients, each with milestones and a
// recent activity trail.
func SeedClients(ctx context.Context, db *ent.Client, count int) error {
	for i := 0; i < count; i++ {
		name := gofakeit.Name()
		cl, err := db.Creator.Create().
			SetName(name).
			SetEmail(fakeEmail(name)).
			SetCompany(gofakeit.Company()).
			SetJourneyStage(journeyStages[rand.Intn(len(journeyStages))]).
			SetJourneyProgress(rand.Intn(101)).
			SetCreatedAt(randomPastTime(240)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed client %d: %w", i, err)
		}

		nMilestones := 3 + rand.Intn(4)
		for j := 0; j < nMilestones; j++ {
			builder := db.Milestone.Create().
				SetClientID(cl.ID).
				SetTitle(milestoneTitles[rand.Intn(len(milestoneTitles))])
			if rand.Float64() < 0.5 {
				builder = builder.
					SetStatus(milestone.StatusCompleted).
					SetCompletedAt(randomPastTime(60))
			}
			if err := builder.Exec(ctx); err != nil {
				return fmt.Errorf("failed to seed milestone: %w", err)
			}
		}

		nActivities := 2 + rand.Intn(8)
		for j := 0; j < nActivities; j++ {
			err := db.Activity.Create().
				SetClientID(cl.ID).
				SetType(activityTypes[rand.Intn(len(activityTypes))]).
				SetDescription(gofakeit.Sentence(8)).
				SetCreatedAt(randomPastTime(45)).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed activity: %w", err)
			}
		}
	}
	return nil
}

// SeedApplications inserts count fake applications, each with its own
// applicant user.
func SeedApplications(ctx context.Context, db *ent.Client, count int) error {
	for i := 0; i < count; i++ {
		name := gofakeit.Name()
		u, err := db.User.Create().
			SetEmail(fmt.Sprintf("applicant%d.%s", i, fakeEmail(name))).
			SetName(name).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed applicant: %w", err)
		}

		niche := niches[rand.Intn(len(niches))]
		submitted := randomPastTime(30)
		err = db.Application.Create().
			SetUserID(u.ID).
			SetCreatorName(name).
			SetYoutubeHandle("@" + gofakeit.Username()).
			SetYoutubeFollowers(rand.Intn(500000)).
			SetInstagramFollowers(rand.Intn(200000)).
			SetProjectIdea(fmt.Sprintf("A %s course built around my channel.", niche)).
			SetTargetAudience(fmt.Sprintf("Beginners interested in %s.", niche)).
			SetWhyJoin(gofakeit.Paragraph(1, 2, 10, " ")).
			SetSubmittedAt(submitted).
			SetCreatedAt(submitted).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed application: %w", err)
		}
	}
	return nil
}

// SeedAll populates a development database with a realistic spread of
// leads, clients, and applications.
func SeedAll(ctx context.Context, db *ent.Client) error {
	if err := SeedLeads(ctx, db, 40); err != nil {
		return err
	}
	if err := SeedClients(ctx, db, 12); err != nil {
		return err
	}
	return SeedApplications(ctx, db, 20)
}

func fakeEmail(name string) string {
	handle := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s@%s", handle, gofakeit.DomainName())
}

func randomPastTime(maxDays int) time.Time {
	return time.Now().AddDate(0, 0, -rand.Intn(maxDays+1)).Add(-time.Duration(rand.Intn(86400)) * time.Second)
}
