// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorbridge/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUserID, v))
}

// CreatorName applies equality check predicate on the "creator_name" field. It's identical to CreatorNameEQ.
func CreatorName(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatorName, v))
}

// YoutubeHandle applies equality check predicate on the "youtube_handle" field. It's identical to YoutubeHandleEQ.
func YoutubeHandle(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldYoutubeHandle, v))
}

// TiktokHandle applies equality check predicate on the "tiktok_handle" field. It's identical to TiktokHandleEQ.
func TiktokHandle(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTiktokHandle, v))
}

// InstagramHandle applies equality check predicate on the "instagram_handle" field. It's identical to InstagramHandleEQ.
func InstagramHandle(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldInstagramHandle, v))
}

// YoutubeFollowers applies equality check predicate on the "youtube_followers" field. It's identical to YoutubeFollowersEQ.
func YoutubeFollowers(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldYoutubeFollowers, v))
}

// TiktokFollowers applies equality check predicate on the "tiktok_followers" field. It's identical to TiktokFollowersEQ.
func TiktokFollowers(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTiktokFollowers, v))
}

// InstagramFollowers applies equality check predicate on the "instagram_followers" field. It's identical to InstagramFollowersEQ.
func InstagramFollowers(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldInstagramFollowers, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldWebsite, v))
}

// ProjectIdea applies equality check predicate on the "project_idea" field. It's identical to ProjectIdeaEQ.
func ProjectIdea(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldProjectIdea, v))
}

// TargetAudience applies equality check predicate on the "target_audience" field. It's identical to TargetAudienceEQ.
func TargetAudience(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTargetAudience, v))
}

// WhyJoin applies equality check predicate on the "why_join" field. It's identical to WhyJoinEQ.
func WhyJoin(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldWhyJoin, v))
}

// PitchDeckURL applies equality check predicate on the "pitch_deck_url" field. It's identical to PitchDeckURLEQ.
func PitchDeckURL(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPitchDeckURL, v))
}

// MediaKitURL applies equality check predicate on the "media_kit_url" field. It's identical to MediaKitURLEQ.
func MediaKitURL(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldMediaKitURL, v))
}

// AdminNotes applies equality check predicate on the "admin_notes" field. It's identical to AdminNotesEQ.
func AdminNotes(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAdminNotes, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSubmittedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUserID, vs...))
}

// CreatorNameEQ applies the EQ predicate on the "creator_name" field.
func CreatorNameEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatorName, v))
}

// CreatorNameNEQ applies the NEQ predicate on the "creator_name" field.
func CreatorNameNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatorName, v))
}

// CreatorNameIn applies the In predicate on the "creator_name" field.
func CreatorNameIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatorName, vs...))
}

// CreatorNameNotIn applies the NotIn predicate on the "creator_name" field.
func CreatorNameNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatorName, vs...))
}

// CreatorNameGT applies the GT predicate on the "creator_name" field.
func CreatorNameGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatorName, v))
}

// CreatorNameGTE applies the GTE predicate on the "creator_name" field.
func CreatorNameGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatorName, v))
}

// CreatorNameLT applies the LT predicate on the "creator_name" field.
func CreatorNameLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatorName, v))
}

// CreatorNameLTE applies the LTE predicate on the "creator_name" field.
func CreatorNameLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatorName, v))
}

// CreatorNameContains applies the Contains predicate on the "creator_name" field.
func CreatorNameContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldCreatorName, v))
}

// CreatorNameHasPrefix applies the HasPrefix predicate on the "creator_name" field.
func CreatorNameHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldCreatorName, v))
}

// CreatorNameHasSuffix applies the HasSuffix predicate on the "creator_name" field.
func CreatorNameHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldCreatorName, v))
}

// CreatorNameEqualFold applies the EqualFold predicate on the "creator_name" field.
func CreatorNameEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldCreatorName, v))
}

// CreatorNameContainsFold applies the ContainsFold predicate on the "creator_name" field.
func CreatorNameContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldCreatorName, v))
}

// YoutubeHandleEQ applies the EQ predicate on the "youtube_handle" field.
func YoutubeHandleEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldYoutubeHandle, v))
}

// YoutubeHandleNEQ applies the NEQ predicate on the "youtube_handle" field.
func YoutubeHandleNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldYoutubeHandle, v))
}

// YoutubeHandleIn applies the In predicate on the "youtube_handle" field.
func YoutubeHandleIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldYoutubeHandle, vs...))
}

// YoutubeHandleNotIn applies the NotIn predicate on the "youtube_handle" field.
func YoutubeHandleNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldYoutubeHandle, vs...))
}

// YoutubeHandleGT applies the GT predicate on the "youtube_handle" field.
func YoutubeHandleGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldYoutubeHandle, v))
}

// YoutubeHandleGTE applies the GTE predicate on the "youtube_handle" field.
func YoutubeHandleGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldYoutubeHandle, v))
}

// YoutubeHandleLT applies the LT predicate on the "youtube_handle" field.
func YoutubeHandleLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldYoutubeHandle, v))
}

// YoutubeHandleLTE applies the LTE predicate on the "youtube_handle" field.
func YoutubeHandleLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldYoutubeHandle, v))
}

// YoutubeHandleContains applies the Contains predicate on the "youtube_handle" field.
func YoutubeHandleContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldYoutubeHandle, v))
}

// YoutubeHandleHasPrefix applies the HasPrefix predicate on the "youtube_handle" field.
func YoutubeHandleHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldYoutubeHandle, v))
}

// YoutubeHandleHasSuffix applies the HasSuffix predicate on the "youtube_handle" field.
func YoutubeHandleHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldYoutubeHandle, v))
}

// YoutubeHandleIsNil applies the IsNil predicate on the "youtube_handle" field.
func YoutubeHandleIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldYoutubeHandle))
}

// YoutubeHandleNotNil applies the NotNil predicate on the "youtube_handle" field.
func YoutubeHandleNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldYoutubeHandle))
}

// YoutubeHandleEqualFold applies the EqualFold predicate on the "youtube_handle" field.
func YoutubeHandleEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldYoutubeHandle, v))
}

// YoutubeHandleContainsFold applies the ContainsFold predicate on the "youtube_handle" field.
func YoutubeHandleContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldYoutubeHandle, v))
}

// TiktokHandleEQ applies the EQ predicate on the "tiktok_handle" field.
func TiktokHandleEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTiktokHandle, v))
}

// TiktokHandleNEQ applies the NEQ predicate on the "tiktok_handle" field.
func TiktokHandleNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldTiktokHandle, v))
}

// TiktokHandleIn applies the In predicate on the "tiktok_handle" field.
func TiktokHandleIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldTiktokHandle, vs...))
}

// TiktokHandleNotIn applies the NotIn predicate on the "tiktok_handle" field.
func TiktokHandleNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldTiktokHandle, vs...))
}

// TiktokHandleGT applies the GT predicate on the "tiktok_handle" field.
func TiktokHandleGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldTiktokHandle, v))
}

// TiktokHandleGTE applies the GTE predicate on the "tiktok_handle" field.
func TiktokHandleGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldTiktokHandle, v))
}

// TiktokHandleLT applies the LT predicate on the "tiktok_handle" field.
func TiktokHandleLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldTiktokHandle, v))
}

// TiktokHandleLTE applies the LTE predicate on the "tiktok_handle" field.
func TiktokHandleLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldTiktokHandle, v))
}

// TiktokHandleContains applies the Contains predicate on the "tiktok_handle" field.
func TiktokHandleContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldTiktokHandle, v))
}

// TiktokHandleHasPrefix applies the HasPrefix predicate on the "tiktok_handle" field.
func TiktokHandleHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldTiktokHandle, v))
}

// TiktokHandleHasSuffix applies the HasSuffix predicate on the "tiktok_handle" field.
func TiktokHandleHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldTiktokHandle, v))
}

// TiktokHandleIsNil applies the IsNil predicate on the "tiktok_handle" field.
func TiktokHandleIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldTiktokHandle))
}

// TiktokHandleNotNil applies the NotNil predicate on the "tiktok_handle" field.
func TiktokHandleNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldTiktokHandle))
}

// TiktokHandleEqualFold applies the EqualFold predicate on the "tiktok_handle" field.
func TiktokHandleEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldTiktokHandle, v))
}

// TiktokHandleContainsFold applies the ContainsFold predicate on the "tiktok_handle" field.
func TiktokHandleContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldTiktokHandle, v))
}

// InstagramHandleEQ applies the EQ predicate on the "instagram_handle" field.
func InstagramHandleEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldInstagramHandle, v))
}

// InstagramHandleNEQ applies the NEQ predicate on the "instagram_handle" field.
func InstagramHandleNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldInstagramHandle, v))
}

// InstagramHandleIn applies the In predicate on the "instagram_handle" field.
func InstagramHandleIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldInstagramHandle, vs...))
}

// InstagramHandleNotIn applies the NotIn predicate on the "instagram_handle" field.
func InstagramHandleNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldInstagramHandle, vs...))
}

// InstagramHandleGT applies the GT predicate on the "instagram_handle" field.
func InstagramHandleGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldInstagramHandle, v))
}

// InstagramHandleGTE applies the GTE predicate on the "instagram_handle" field.
func InstagramHandleGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldInstagramHandle, v))
}

// InstagramHandleLT applies the LT predicate on the "instagram_handle" field.
func InstagramHandleLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldInstagramHandle, v))
}

// InstagramHandleLTE applies the LTE predicate on the "instagram_handle" field.
func InstagramHandleLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldInstagramHandle, v))
}

// InstagramHandleContains applies the Contains predicate on the "instagram_handle" field.
func InstagramHandleContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldInstagramHandle, v))
}

// InstagramHandleHasPrefix applies the HasPrefix predicate on the "instagram_handle" field.
func InstagramHandleHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldInstagramHandle, v))
}

// InstagramHandleHasSuffix applies the HasSuffix predicate on the "instagram_handle" field.
func InstagramHandleHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldInstagramHandle, v))
}

// InstagramHandleIsNil applies the IsNil predicate on the "instagram_handle" field.
func InstagramHandleIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldInstagramHandle))
}

// InstagramHandleNotNil applies the NotNil predicate on the "instagram_handle" field.
func InstagramHandleNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldInstagramHandle))
}

// InstagramHandleEqualFold applies the EqualFold predicate on the "instagram_handle" field.
func InstagramHandleEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldInstagramHandle, v))
}

// InstagramHandleContainsFold applies the ContainsFold predicate on the "instagram_handle" field.
func InstagramHandleContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldInstagramHandle, v))
}

// YoutubeFollowersEQ applies the EQ predicate on the "youtube_followers" field.
func YoutubeFollowersEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldYoutubeFollowers, v))
}

// YoutubeFollowersNEQ applies the NEQ predicate on the "youtube_followers" field.
func YoutubeFollowersNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldYoutubeFollowers, v))
}

// YoutubeFollowersIn applies the In predicate on the "youtube_followers" field.
func YoutubeFollowersIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldYoutubeFollowers, vs...))
}

// YoutubeFollowersNotIn applies the NotIn predicate on the "youtube_followers" field.
func YoutubeFollowersNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldYoutubeFollowers, vs...))
}

// YoutubeFollowersGT applies the GT predicate on the "youtube_followers" field.
func YoutubeFollowersGT(v int) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldYoutubeFollowers, v))
}

// YoutubeFollowersGTE applies the GTE predicate on the "youtube_followers" field.
func YoutubeFollowersGTE(v int) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldYoutubeFollowers, v))
}

// YoutubeFollowersLT applies the LT predicate on the "youtube_followers" field.
func YoutubeFollowersLT(v int) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldYoutubeFollowers, v))
}

// YoutubeFollowersLTE applies the LTE predicate on the "youtube_followers" field.
func YoutubeFollowersLTE(v int) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldYoutubeFollowers, v))
}

// TiktokFollowersEQ applies the EQ predicate on the "tiktok_followers" field.
func TiktokFollowersEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTiktokFollowers, v))
}

// TiktokFollowersNEQ applies the NEQ predicate on the "tiktok_followers" field.
func TiktokFollowersNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldTiktokFollowers, v))
}

// TiktokFollowersIn applies the In predicate on the "tiktok_followers" field.
func TiktokFollowersIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldTiktokFollowers, vs...))
}

// TiktokFollowersNotIn applies the NotIn predicate on the "tiktok_followers" field.
func TiktokFollowersNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldTiktokFollowers, vs...))
}

// TiktokFollowersGT applies the GT predicate on the "tiktok_followers" field.
func TiktokFollowersGT(v int) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldTiktokFollowers, v))
}

// TiktokFollowersGTE applies the GTE predicate on the "tiktok_followers" field.
func TiktokFollowersGTE(v int) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldTiktokFollowers, v))
}

// TiktokFollowersLT applies the LT predicate on the "tiktok_followers" field.
func TiktokFollowersLT(v int) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldTiktokFollowers, v))
}

// TiktokFollowersLTE applies the LTE predicate on the "tiktok_followers" field.
func TiktokFollowersLTE(v int) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldTiktokFollowers, v))
}

// InstagramFollowersEQ applies the EQ predicate on the "instagram_followers" field.
func InstagramFollowersEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldInstagramFollowers, v))
}

// InstagramFollowersNEQ applies the NEQ predicate on the "instagram_followers" field.
func InstagramFollowersNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldInstagramFollowers, v))
}

// InstagramFollowersIn applies the In predicate on the "instagram_followers" field.
func InstagramFollowersIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldInstagramFollowers, vs...))
}

// InstagramFollowersNotIn applies the NotIn predicate on the "instagram_followers" field.
func InstagramFollowersNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldInstagramFollowers, vs...))
}

// InstagramFollowersGT applies the GT predicate on the "instagram_followers" field.
func InstagramFollowersGT(v int) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldInstagramFollowers, v))
}

// InstagramFollowersGTE applies the GTE predicate on the "instagram_followers" field.
func InstagramFollowersGTE(v int) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldInstagramFollowers, v))
}

// InstagramFollowersLT applies the LT predicate on the "instagram_followers" field.
func InstagramFollowersLT(v int) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldInstagramFollowers, v))
}

// InstagramFollowersLTE applies the LTE predicate on the "instagram_followers" field.
func InstagramFollowersLTE(v int) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldInstagramFollowers, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldWebsite, v))
}

// ProjectIdeaEQ applies the EQ predicate on the "project_idea" field.
func ProjectIdeaEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldProjectIdea, v))
}

// ProjectIdeaNEQ applies the NEQ predicate on the "project_idea" field.
func ProjectIdeaNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldProjectIdea, v))
}

// ProjectIdeaIn applies the In predicate on the "project_idea" field.
func ProjectIdeaIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldProjectIdea, vs...))
}

// ProjectIdeaNotIn applies the NotIn predicate on the "project_idea" field.
func ProjectIdeaNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldProjectIdea, vs...))
}

// ProjectIdeaGT applies the GT predicate on the "project_idea" field.
func ProjectIdeaGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldProjectIdea, v))
}

// ProjectIdeaGTE applies the GTE predicate on the "project_idea" field.
func ProjectIdeaGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldProjectIdea, v))
}

// ProjectIdeaLT applies the LT predicate on the "project_idea" field.
func ProjectIdeaLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldProjectIdea, v))
}

// ProjectIdeaLTE applies the LTE predicate on the "project_idea" field.
func ProjectIdeaLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldProjectIdea, v))
}

// ProjectIdeaContains applies the Contains predicate on the "project_idea" field.
func ProjectIdeaContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldProjectIdea, v))
}

// ProjectIdeaHasPrefix applies the HasPrefix predicate on the "project_idea" field.
func ProjectIdeaHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldProjectIdea, v))
}

// ProjectIdeaHasSuffix applies the HasSuffix predicate on the "project_idea" field.
func ProjectIdeaHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldProjectIdea, v))
}

// ProjectIdeaEqualFold applies the EqualFold predicate on the "project_idea" field.
func ProjectIdeaEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldProjectIdea, v))
}

// ProjectIdeaContainsFold applies the ContainsFold predicate on the "project_idea" field.
func ProjectIdeaContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldProjectIdea, v))
}

// TargetAudienceEQ applies the EQ predicate on the "target_audience" field.
func TargetAudienceEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTargetAudience, v))
}

// TargetAudienceNEQ applies the NEQ predicate on the "target_audience" field.
func TargetAudienceNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldTargetAudience, v))
}

// TargetAudienceIn applies the In predicate on the "target_audience" field.
func TargetAudienceIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldTargetAudience, vs...))
}

// TargetAudienceNotIn applies the NotIn predicate on the "target_audience" field.
func TargetAudienceNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldTargetAudience, vs...))
}

// TargetAudienceGT applies the GT predicate on the "target_audience" field.
func TargetAudienceGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldTargetAudience, v))
}

// TargetAudienceGTE applies the GTE predicate on the "target_audience" field.
func TargetAudienceGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldTargetAudience, v))
}

// TargetAudienceLT applies the LT predicate on the "target_audience" field.
func TargetAudienceLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldTargetAudience, v))
}

// TargetAudienceLTE applies the LTE predicate on the "target_audience" field.
func TargetAudienceLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldTargetAudience, v))
}

// TargetAudienceContains applies the Contains predicate on the "target_audience" field.
func TargetAudienceContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldTargetAudience, v))
}

// TargetAudienceHasPrefix applies the HasPrefix predicate on the "target_audience" field.
func TargetAudienceHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldTargetAudience, v))
}

// TargetAudienceHasSuffix applies the HasSuffix predicate on the "target_audience" field.
func TargetAudienceHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldTargetAudience, v))
}

// TargetAudienceEqualFold applies the EqualFold predicate on the "target_audience" field.
func TargetAudienceEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldTargetAudience, v))
}

// TargetAudienceContainsFold applies the ContainsFold predicate on the "target_audience" field.
func TargetAudienceContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldTargetAudience, v))
}

// WhyJoinEQ applies the EQ predicate on the "why_join" field.
func WhyJoinEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldWhyJoin, v))
}

// WhyJoinNEQ applies the NEQ predicate on the "why_join" field.
func WhyJoinNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldWhyJoin, v))
}

// WhyJoinIn applies the In predicate on the "why_join" field.
func WhyJoinIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldWhyJoin, vs...))
}

// WhyJoinNotIn applies the NotIn predicate on the "why_join" field.
func WhyJoinNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldWhyJoin, vs...))
}

// WhyJoinGT applies the GT predicate on the "why_join" field.
func WhyJoinGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldWhyJoin, v))
}

// WhyJoinGTE applies the GTE predicate on the "why_join" field.
func WhyJoinGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldWhyJoin, v))
}

// WhyJoinLT applies the LT predicate on the "why_join" field.
func WhyJoinLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldWhyJoin, v))
}

// WhyJoinLTE applies the LTE predicate on the "why_join" field.
func WhyJoinLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldWhyJoin, v))
}

// WhyJoinContains applies the Contains predicate on the "why_join" field.
func WhyJoinContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldWhyJoin, v))
}

// WhyJoinHasPrefix applies the HasPrefix predicate on the "why_join" field.
func WhyJoinHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldWhyJoin, v))
}

// WhyJoinHasSuffix applies the HasSuffix predicate on the "why_join" field.
func WhyJoinHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldWhyJoin, v))
}

// WhyJoinEqualFold applies the EqualFold predicate on the "why_join" field.
func WhyJoinEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldWhyJoin, v))
}

// WhyJoinContainsFold applies the ContainsFold predicate on the "why_join" field.
func WhyJoinContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldWhyJoin, v))
}

// PitchDeckURLEQ applies the EQ predicate on the "pitch_deck_url" field.
func PitchDeckURLEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPitchDeckURL, v))
}

// PitchDeckURLNEQ applies the NEQ predicate on the "pitch_deck_url" field.
func PitchDeckURLNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldPitchDeckURL, v))
}

// PitchDeckURLIn applies the In predicate on the "pitch_deck_url" field.
func PitchDeckURLIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldPitchDeckURL, vs...))
}

// PitchDeckURLNotIn applies the NotIn predicate on the "pitch_deck_url" field.
func PitchDeckURLNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldPitchDeckURL, vs...))
}

// PitchDeckURLGT applies the GT predicate on the "pitch_deck_url" field.
func PitchDeckURLGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldPitchDeckURL, v))
}

// PitchDeckURLGTE applies the GTE predicate on the "pitch_deck_url" field.
func PitchDeckURLGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldPitchDeckURL, v))
}

// PitchDeckURLLT applies the LT predicate on the "pitch_deck_url" field.
func PitchDeckURLLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldPitchDeckURL, v))
}

// PitchDeckURLLTE applies the LTE predicate on the "pitch_deck_url" field.
func PitchDeckURLLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldPitchDeckURL, v))
}

// PitchDeckURLContains applies the Contains predicate on the "pitch_deck_url" field.
func PitchDeckURLContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldPitchDeckURL, v))
}

// PitchDeckURLHasPrefix applies the HasPrefix predicate on the "pitch_deck_url" field.
func PitchDeckURLHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldPitchDeckURL, v))
}

// PitchDeckURLHasSuffix applies the HasSuffix predicate on the "pitch_deck_url" field.
func PitchDeckURLHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldPitchDeckURL, v))
}

// PitchDeckURLIsNil applies the IsNil predicate on the "pitch_deck_url" field.
func PitchDeckURLIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldPitchDeckURL))
}

// PitchDeckURLNotNil applies the NotNil predicate on the "pitch_deck_url" field.
func PitchDeckURLNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldPitchDeckURL))
}

// PitchDeckURLEqualFold applies the EqualFold predicate on the "pitch_deck_url" field.
func PitchDeckURLEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldPitchDeckURL, v))
}

// PitchDeckURLContainsFold applies the ContainsFold predicate on the "pitch_deck_url" field.
func PitchDeckURLContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldPitchDeckURL, v))
}

// MediaKitURLEQ applies the EQ predicate on the "media_kit_url" field.
func MediaKitURLEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldMediaKitURL, v))
}

// MediaKitURLNEQ applies the NEQ predicate on the "media_kit_url" field.
func MediaKitURLNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldMediaKitURL, v))
}

// MediaKitURLIn applies the In predicate on the "media_kit_url" field.
func MediaKitURLIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldMediaKitURL, vs...))
}

// MediaKitURLNotIn applies the NotIn predicate on the "media_kit_url" field.
func MediaKitURLNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldMediaKitURL, vs...))
}

// MediaKitURLGT applies the GT predicate on the "media_kit_url" field.
func MediaKitURLGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldMediaKitURL, v))
}

// MediaKitURLGTE applies the GTE predicate on the "media_kit_url" field.
func MediaKitURLGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldMediaKitURL, v))
}

// MediaKitURLLT applies the LT predicate on the "media_kit_url" field.
func MediaKitURLLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldMediaKitURL, v))
}

// MediaKitURLLTE applies the LTE predicate on the "media_kit_url" field.
func MediaKitURLLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldMediaKitURL, v))
}

// MediaKitURLContains applies the Contains predicate on the "media_kit_url" field.
func MediaKitURLContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldMediaKitURL, v))
}

// MediaKitURLHasPrefix applies the HasPrefix predicate on the "media_kit_url" field.
func MediaKitURLHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldMediaKitURL, v))
}

// MediaKitURLHasSuffix applies the HasSuffix predicate on the "media_kit_url" field.
func MediaKitURLHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldMediaKitURL, v))
}

// MediaKitURLIsNil applies the IsNil predicate on the "media_kit_url" field.
func MediaKitURLIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldMediaKitURL))
}

// MediaKitURLNotNil applies the NotNil predicate on the "media_kit_url" field.
func MediaKitURLNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldMediaKitURL))
}

// MediaKitURLEqualFold applies the EqualFold predicate on the "media_kit_url" field.
func MediaKitURLEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldMediaKitURL, v))
}

// MediaKitURLContainsFold applies the ContainsFold predicate on the "media_kit_url" field.
func MediaKitURLContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldMediaKitURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatus, vs...))
}

// AdminNotesEQ applies the EQ predicate on the "admin_notes" field.
func AdminNotesEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAdminNotes, v))
}

// AdminNotesNEQ applies the NEQ predicate on the "admin_notes" field.
func AdminNotesNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldAdminNotes, v))
}

// AdminNotesIn applies the In predicate on the "admin_notes" field.
func AdminNotesIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldAdminNotes, vs...))
}

// AdminNotesNotIn applies the NotIn predicate on the "admin_notes" field.
func AdminNotesNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldAdminNotes, vs...))
}

// AdminNotesGT applies the GT predicate on the "admin_notes" field.
func AdminNotesGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldAdminNotes, v))
}

// AdminNotesGTE applies the GTE predicate on the "admin_notes" field.
func AdminNotesGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldAdminNotes, v))
}

// AdminNotesLT applies the LT predicate on the "admin_notes" field.
func AdminNotesLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldAdminNotes, v))
}

// AdminNotesLTE applies the LTE predicate on the "admin_notes" field.
func AdminNotesLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldAdminNotes, v))
}

// AdminNotesContains applies the Contains predicate on the "admin_notes" field.
func AdminNotesContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldAdminNotes, v))
}

// AdminNotesHasPrefix applies the HasPrefix predicate on the "admin_notes" field.
func AdminNotesHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldAdminNotes, v))
}

// AdminNotesHasSuffix applies the HasSuffix predicate on the "admin_notes" field.
func AdminNotesHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldAdminNotes, v))
}

// AdminNotesIsNil applies the IsNil predicate on the "admin_notes" field.
func AdminNotesIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldAdminNotes))
}

// AdminNotesNotNil applies the NotNil predicate on the "admin_notes" field.
func AdminNotesNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldAdminNotes))
}

// AdminNotesEqualFold applies the EqualFold predicate on the "admin_notes" field.
func AdminNotesEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldAdminNotes, v))
}

// AdminNotesContainsFold applies the ContainsFold predicate on the "admin_notes" field.
func AdminNotesContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldAdminNotes, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldTags))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldSubmittedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplicant applies the HasEdge predicate on the "applicant" edge.
func HasApplicant() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicantTable, ApplicantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicantWith applies the HasEdge predicate on the "applicant" edge with a given conditions (other predicates).
func HasApplicantWith(preds ...predicate.User) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newApplicantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
