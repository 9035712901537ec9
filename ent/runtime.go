// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/creatorbridge/api/ent/activity"
	"github.com/creatorbridge/api/ent/application"
	"github.com/creatorbridge/api/ent/auditlog"
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/ent/milestone"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/ent/schema"
	"github.com/creatorbridge/api/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescClientID is the schema descriptor for client_id field.
	activityDescClientID := activityFields[0].Descriptor()
	// activity.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	activity.ClientIDValidator = activityDescClientID.Validators[0].(func(int) error)
	// activityDescDescription is the schema descriptor for description field.
	activityDescDescription := activityFields[2].Descriptor()
	// activity.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	activity.DescriptionValidator = activityDescDescription.Validators[0].(func(string) error)
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[3].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescUserID is the schema descriptor for user_id field.
	applicationDescUserID := applicationFields[0].Descriptor()
	// application.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	application.UserIDValidator = applicationDescUserID.Validators[0].(func(int) error)
	// applicationDescCreatorName is the schema descriptor for creator_name field.
	applicationDescCreatorName := applicationFields[1].Descriptor()
	// application.CreatorNameValidator is a validator for the "creator_name" field. It is called by the builders before save.
	application.CreatorNameValidator = applicationDescCreatorName.Validators[0].(func(string) error)
	// applicationDescYoutubeFollowers is the schema descriptor for youtube_followers field.
	applicationDescYoutubeFollowers := applicationFields[5].Descriptor()
	// application.DefaultYoutubeFollowers holds the default value on creation for the youtube_followers field.
	application.DefaultYoutubeFollowers = applicationDescYoutubeFollowers.Default.(int)
	// application.YoutubeFollowersValidator is a validator for the "youtube_followers" field. It is called by the builders before save.
	application.YoutubeFollowersValidator = applicationDescYoutubeFollowers.Validators[0].(func(int) error)
	// applicationDescTiktokFollowers is the schema descriptor for tiktok_followers field.
	applicationDescTiktokFollowers := applicationFields[6].Descriptor()
	// application.DefaultTiktokFollowers holds the default value on creation for the tiktok_followers field.
	application.DefaultTiktokFollowers = applicationDescTiktokFollowers.Default.(int)
	// application.TiktokFollowersValidator is a validator for the "tiktok_followers" field. It is called by the builders before save.
	application.TiktokFollowersValidator = applicationDescTiktokFollowers.Validators[0].(func(int) error)
	// applicationDescInstagramFollowers is the schema descriptor for instagram_followers field.
	applicationDescInstagramFollowers := applicationFields[7].Descriptor()
	// application.DefaultInstagramFollowers holds the default value on creation for the instagram_followers field.
	application.DefaultInstagramFollowers = applicationDescInstagramFollowers.Default.(int)
	// application.InstagramFollowersValidator is a validator for the "instagram_followers" field. It is called by the builders before save.
	application.InstagramFollowersValidator = applicationDescInstagramFollowers.Validators[0].(func(int) error)
	// applicationDescProjectIdea is the schema descriptor for project_idea field.
	applicationDescProjectIdea := applicationFields[9].Descriptor()
	// application.ProjectIdeaValidator is a validator for the "project_idea" field. It is called by the builders before save.
	application.ProjectIdeaValidator = applicationDescProjectIdea.Validators[0].(func(string) error)
	// applicationDescTargetAudience is the schema descriptor for target_audience field.
	applicationDescTargetAudience := applicationFields[10].Descriptor()
	// application.TargetAudienceValidator is a validator for the "target_audience" field. It is called by the builders before save.
	application.TargetAudienceValidator = applicationDescTargetAudience.Validators[0].(func(string) error)
	// applicationDescWhyJoin is the schema descriptor for why_join field.
	applicationDescWhyJoin := applicationFields[11].Descriptor()
	// application.WhyJoinValidator is a validator for the "why_join" field. It is called by the builders before save.
	application.WhyJoinValidator = applicationDescWhyJoin.Validators[0].(func(string) error)
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[18].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[19].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[6].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	creatorFields := schema.Creator{}.Fields()
	_ = creatorFields
	// creatorDescName is the schema descriptor for name field.
	creatorDescName := creatorFields[0].Descriptor()
	// creator.NameValidator is a validator for the "name" field. It is called by the builders before save.
	creator.NameValidator = creatorDescName.Validators[0].(func(string) error)
	// creatorDescJourneyProgress is the schema descriptor for journey_progress field.
	creatorDescJourneyProgress := creatorFields[4].Descriptor()
	// creator.DefaultJourneyProgress holds the default value on creation for the journey_progress field.
	creator.DefaultJourneyProgress = creatorDescJourneyProgress.Default.(int)
	// creator.JourneyProgressValidator is a validator for the "journey_progress" field. It is called by the builders before save.
	creator.JourneyProgressValidator = func() func(int) error {
		validators := creatorDescJourneyProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(journey_progress int) error {
			for _, fn := range fns {
				if err := fn(journey_progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// creatorDescHealthScore is the schema descriptor for health_score field.
	creatorDescHealthScore := creatorFields[5].Descriptor()
	// creator.DefaultHealthScore holds the default value on creation for the health_score field.
	creator.DefaultHealthScore = creatorDescHealthScore.Default.(int)
	// creator.HealthScoreValidator is a validator for the "health_score" field. It is called by the builders before save.
	creator.HealthScoreValidator = func() func(int) error {
		validators := creatorDescHealthScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(health_score int) error {
			for _, fn := range fns {
				if err := fn(health_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// creatorDescCreatedAt is the schema descriptor for created_at field.
	creatorDescCreatedAt := creatorFields[9].Descriptor()
	// creator.DefaultCreatedAt holds the default value on creation for the created_at field.
	creator.DefaultCreatedAt = creatorDescCreatedAt.Default.(func() time.Time)
	// creatorDescUpdatedAt is the schema descriptor for updated_at field.
	creatorDescUpdatedAt := creatorFields[10].Descriptor()
	// creator.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creator.DefaultUpdatedAt = creatorDescUpdatedAt.Default.(func() time.Time)
	// creator.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creator.UpdateDefaultUpdatedAt = creatorDescUpdatedAt.UpdateDefault.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescKitID is the schema descriptor for kit_id field.
	documentDescKitID := documentFields[0].Descriptor()
	// document.KitIDValidator is a validator for the "kit_id" field. It is called by the builders before save.
	document.KitIDValidator = documentDescKitID.Validators[0].(func(int) error)
	// documentDescSlot is the schema descriptor for slot field.
	documentDescSlot := documentFields[1].Descriptor()
	// document.SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	document.SlotValidator = func() func(int) error {
		validators := documentDescSlot.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(slot int) error {
			for _, fn := range fns {
				if err := fn(slot); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescName is the schema descriptor for name field.
	documentDescName := documentFields[2].Descriptor()
	// document.NameValidator is a validator for the "name" field. It is called by the builders before save.
	document.NameValidator = documentDescName.Validators[0].(func(string) error)
	// documentDescStatusChangedAt is the schema descriptor for status_changed_at field.
	documentDescStatusChangedAt := documentFields[6].Descriptor()
	// document.DefaultStatusChangedAt holds the default value on creation for the status_changed_at field.
	document.DefaultStatusChangedAt = documentDescStatusChangedAt.Default.(func() time.Time)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[8].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[9].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[0].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescStageChangedAt is the schema descriptor for stage_changed_at field.
	leadDescStageChangedAt := leadFields[7].Descriptor()
	// lead.DefaultStageChangedAt holds the default value on creation for the stage_changed_at field.
	lead.DefaultStageChangedAt = leadDescStageChangedAt.Default.(func() time.Time)
	// leadDescFitScore is the schema descriptor for fit_score field.
	leadDescFitScore := leadFields[8].Descriptor()
	// lead.FitScoreValidator is a validator for the "fit_score" field. It is called by the builders before save.
	lead.FitScoreValidator = func() func(int) error {
		validators := leadDescFitScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(fit_score int) error {
			for _, fn := range fns {
				if err := fn(fit_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[17].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[18].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadstagehistoryFields := schema.LeadStageHistory{}.Fields()
	_ = leadstagehistoryFields
	// leadstagehistoryDescLeadID is the schema descriptor for lead_id field.
	leadstagehistoryDescLeadID := leadstagehistoryFields[0].Descriptor()
	// leadstagehistory.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	leadstagehistory.LeadIDValidator = leadstagehistoryDescLeadID.Validators[0].(func(int) error)
	// leadstagehistoryDescUserID is the schema descriptor for user_id field.
	leadstagehistoryDescUserID := leadstagehistoryFields[1].Descriptor()
	// leadstagehistory.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	leadstagehistory.UserIDValidator = leadstagehistoryDescUserID.Validators[0].(func(int) error)
	// leadstagehistoryDescReason is the schema descriptor for reason field.
	leadstagehistoryDescReason := leadstagehistoryFields[4].Descriptor()
	// leadstagehistory.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	leadstagehistory.ReasonValidator = leadstagehistoryDescReason.Validators[0].(func(string) error)
	// leadstagehistoryDescCreatedAt is the schema descriptor for created_at field.
	leadstagehistoryDescCreatedAt := leadstagehistoryFields[5].Descriptor()
	// leadstagehistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadstagehistory.DefaultCreatedAt = leadstagehistoryDescCreatedAt.Default.(func() time.Time)
	milestoneFields := schema.Milestone{}.Fields()
	_ = milestoneFields
	// milestoneDescClientID is the schema descriptor for client_id field.
	milestoneDescClientID := milestoneFields[0].Descriptor()
	// milestone.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	milestone.ClientIDValidator = milestoneDescClientID.Validators[0].(func(int) error)
	// milestoneDescTitle is the schema descriptor for title field.
	milestoneDescTitle := milestoneFields[1].Descriptor()
	// milestone.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	milestone.TitleValidator = milestoneDescTitle.Validators[0].(func(string) error)
	// milestoneDescCreatedAt is the schema descriptor for created_at field.
	milestoneDescCreatedAt := milestoneFields[5].Descriptor()
	// milestone.DefaultCreatedAt holds the default value on creation for the created_at field.
	milestone.DefaultCreatedAt = milestoneDescCreatedAt.Default.(func() time.Time)
	// milestoneDescUpdatedAt is the schema descriptor for updated_at field.
	milestoneDescUpdatedAt := milestoneFields[6].Descriptor()
	// milestone.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	milestone.DefaultUpdatedAt = milestoneDescUpdatedAt.Default.(func() time.Time)
	// milestone.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	milestone.UpdateDefaultUpdatedAt = milestoneDescUpdatedAt.UpdateDefault.(func() time.Time)
	onboardingkitFields := schema.OnboardingKit{}.Fields()
	_ = onboardingkitFields
	// onboardingkitDescClientID is the schema descriptor for client_id field.
	onboardingkitDescClientID := onboardingkitFields[0].Descriptor()
	// onboardingkit.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	onboardingkit.ClientIDValidator = onboardingkitDescClientID.Validators[0].(func(int) error)
	// onboardingkitDescMonth is the schema descriptor for month field.
	onboardingkitDescMonth := onboardingkitFields[1].Descriptor()
	// onboardingkit.MonthValidator is a validator for the "month" field. It is called by the builders before save.
	onboardingkit.MonthValidator = func() func(int) error {
		validators := onboardingkitDescMonth.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(month int) error {
			for _, fn := range fns {
				if err := fn(month); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// onboardingkitDescGenerated is the schema descriptor for generated field.
	onboardingkitDescGenerated := onboardingkitFields[2].Descriptor()
	// onboardingkit.DefaultGenerated holds the default value on creation for the generated field.
	onboardingkit.DefaultGenerated = onboardingkitDescGenerated.Default.(bool)
	// onboardingkitDescCreatedAt is the schema descriptor for created_at field.
	onboardingkitDescCreatedAt := onboardingkitFields[4].Descriptor()
	// onboardingkit.DefaultCreatedAt holds the default value on creation for the created_at field.
	onboardingkit.DefaultCreatedAt = onboardingkitDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
