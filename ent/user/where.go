// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorbridge/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// OauthProvider applies equality check predicate on the "oauth_provider" field. It's identical to OauthProviderEQ.
func OauthProvider(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOauthProvider, v))
}

// OauthID applies equality check predicate on the "oauth_id" field. It's identical to OauthIDEQ.
func OauthID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOauthID, v))
}

// MagicLinkTokenHash applies equality check predicate on the "magic_link_token_hash" field. It's identical to MagicLinkTokenHashEQ.
func MagicLinkTokenHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldMagicLinkTokenHash, v))
}

// MagicLinkExpiresAt applies equality check predicate on the "magic_link_expires_at" field. It's identical to MagicLinkExpiresAtEQ.
func MagicLinkExpiresAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldMagicLinkExpiresAt, v))
}

// LastLoginAt applies equality check predicate on the "last_login_at" field. It's identical to LastLoginAtEQ.
func LastLoginAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// OauthProviderEQ applies the EQ predicate on the "oauth_provider" field.
func OauthProviderEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOauthProvider, v))
}

// OauthProviderNEQ applies the NEQ predicate on the "oauth_provider" field.
func OauthProviderNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOauthProvider, v))
}

// OauthProviderIn applies the In predicate on the "oauth_provider" field.
func OauthProviderIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldOauthProvider, vs...))
}

// OauthProviderNotIn applies the NotIn predicate on the "oauth_provider" field.
func OauthProviderNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOauthProvider, vs...))
}

// OauthProviderGT applies the GT predicate on the "oauth_provider" field.
func OauthProviderGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldOauthProvider, v))
}

// OauthProviderGTE applies the GTE predicate on the "oauth_provider" field.
func OauthProviderGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOauthProvider, v))
}

// OauthProviderLT applies the LT predicate on the "oauth_provider" field.
func OauthProviderLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldOauthProvider, v))
}

// OauthProviderLTE applies the LTE predicate on the "oauth_provider" field.
func OauthProviderLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOauthProvider, v))
}

// OauthProviderContains applies the Contains predicate on the "oauth_provider" field.
func OauthProviderContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldOauthProvider, v))
}

// OauthProviderHasPrefix applies the HasPrefix predicate on the "oauth_provider" field.
func OauthProviderHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldOauthProvider, v))
}

// OauthProviderHasSuffix applies the HasSuffix predicate on the "oauth_provider" field.
func OauthProviderHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldOauthProvider, v))
}

// OauthProviderIsNil applies the IsNil predicate on the "oauth_provider" field.
func OauthProviderIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldOauthProvider))
}

// OauthProviderNotNil applies the NotNil predicate on the "oauth_provider" field.
func OauthProviderNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldOauthProvider))
}

// OauthProviderEqualFold applies the EqualFold predicate on the "oauth_provider" field.
func OauthProviderEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldOauthProvider, v))
}

// OauthProviderContainsFold applies the ContainsFold predicate on the "oauth_provider" field.
func OauthProviderContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldOauthProvider, v))
}

// OauthIDEQ applies the EQ predicate on the "oauth_id" field.
func OauthIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOauthID, v))
}

// OauthIDNEQ applies the NEQ predicate on the "oauth_id" field.
func OauthIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOauthID, v))
}

// OauthIDIn applies the In predicate on the "oauth_id" field.
func OauthIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldOauthID, vs...))
}

// OauthIDNotIn applies the NotIn predicate on the "oauth_id" field.
func OauthIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOauthID, vs...))
}

// OauthIDGT applies the GT predicate on the "oauth_id" field.
func OauthIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldOauthID, v))
}

// OauthIDGTE applies the GTE predicate on the "oauth_id" field.
func OauthIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOauthID, v))
}

// OauthIDLT applies the LT predicate on the "oauth_id" field.
func OauthIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldOauthID, v))
}

// OauthIDLTE applies the LTE predicate on the "oauth_id" field.
func OauthIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOauthID, v))
}

// OauthIDContains applies the Contains predicate on the "oauth_id" field.
func OauthIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldOauthID, v))
}

// OauthIDHasPrefix applies the HasPrefix predicate on the "oauth_id" field.
func OauthIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldOauthID, v))
}

// OauthIDHasSuffix applies the HasSuffix predicate on the "oauth_id" field.
func OauthIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldOauthID, v))
}

// OauthIDIsNil applies the IsNil predicate on the "oauth_id" field.
func OauthIDIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldOauthID))
}

// OauthIDNotNil applies the NotNil predicate on the "oauth_id" field.
func OauthIDNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldOauthID))
}

// OauthIDEqualFold applies the EqualFold predicate on the "oauth_id" field.
func OauthIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldOauthID, v))
}

// OauthIDContainsFold applies the ContainsFold predicate on the "oauth_id" field.
func OauthIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldOauthID, v))
}

// MagicLinkTokenHashEQ applies the EQ predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashNEQ applies the NEQ predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashIn applies the In predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldMagicLinkTokenHash, vs...))
}

// MagicLinkTokenHashNotIn applies the NotIn predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldMagicLinkTokenHash, vs...))
}

// MagicLinkTokenHashGT applies the GT predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashGTE applies the GTE predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashLT applies the LT predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashLTE applies the LTE predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashContains applies the Contains predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashHasPrefix applies the HasPrefix predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashHasSuffix applies the HasSuffix predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashIsNil applies the IsNil predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldMagicLinkTokenHash))
}

// MagicLinkTokenHashNotNil applies the NotNil predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldMagicLinkTokenHash))
}

// MagicLinkTokenHashEqualFold applies the EqualFold predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldMagicLinkTokenHash, v))
}

// MagicLinkTokenHashContainsFold applies the ContainsFold predicate on the "magic_link_token_hash" field.
func MagicLinkTokenHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldMagicLinkTokenHash, v))
}

// MagicLinkExpiresAtEQ applies the EQ predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldMagicLinkExpiresAt, v))
}

// MagicLinkExpiresAtNEQ applies the NEQ predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldMagicLinkExpiresAt, v))
}

// MagicLinkExpiresAtIn applies the In predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldMagicLinkExpiresAt, vs...))
}

// MagicLinkExpiresAtNotIn applies the NotIn predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldMagicLinkExpiresAt, vs...))
}

// MagicLinkExpiresAtGT applies the GT predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldMagicLinkExpiresAt, v))
}

// MagicLinkExpiresAtGTE applies the GTE predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldMagicLinkExpiresAt, v))
}

// MagicLinkExpiresAtLT applies the LT predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldMagicLinkExpiresAt, v))
}

// MagicLinkExpiresAtLTE applies the LTE predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldMagicLinkExpiresAt, v))
}

// MagicLinkExpiresAtIsNil applies the IsNil predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldMagicLinkExpiresAt))
}

// MagicLinkExpiresAtNotNil applies the NotNil predicate on the "magic_link_expires_at" field.
func MagicLinkExpiresAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldMagicLinkExpiresAt))
}

// LastLoginAtEQ applies the EQ predicate on the "last_login_at" field.
func LastLoginAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// LastLoginAtNEQ applies the NEQ predicate on the "last_login_at" field.
func LastLoginAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLoginAt, v))
}

// LastLoginAtIn applies the In predicate on the "last_login_at" field.
func LastLoginAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLoginAt, vs...))
}

// LastLoginAtNotIn applies the NotIn predicate on the "last_login_at" field.
func LastLoginAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLoginAt, vs...))
}

// LastLoginAtGT applies the GT predicate on the "last_login_at" field.
func LastLoginAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLoginAt, v))
}

// LastLoginAtGTE applies the GTE predicate on the "last_login_at" field.
func LastLoginAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLoginAt, v))
}

// LastLoginAtLT applies the LT predicate on the "last_login_at" field.
func LastLoginAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLoginAt, v))
}

// LastLoginAtLTE applies the LTE predicate on the "last_login_at" field.
func LastLoginAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLoginAt, v))
}

// LastLoginAtIsNil applies the IsNil predicate on the "last_login_at" field.
func LastLoginAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLoginAt))
}

// LastLoginAtNotNil applies the NotNil predicate on the "last_login_at" field.
func LastLoginAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLoginAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplications applies the HasEdge predicate on the "applications" edge.
func HasApplications() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationsWith applies the HasEdge predicate on the "applications" edge with a given conditions (other predicates).
func HasApplicationsWith(preds ...predicate.Application) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditLogs applies the HasEdge predicate on the "audit_logs" edge.
func HasAuditLogs() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditLogsWith applies the HasEdge predicate on the "audit_logs" edge with a given conditions (other predicates).
func HasAuditLogsWith(preds ...predicate.AuditLog) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newAuditLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLeadStageChanges applies the HasEdge predicate on the "lead_stage_changes" edge.
func HasLeadStageChanges() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LeadStageChangesTable, LeadStageChangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadStageChangesWith applies the HasEdge predicate on the "lead_stage_changes" edge with a given conditions (other predicates).
func HasLeadStageChangesWith(preds ...predicate.LeadStageHistory) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newLeadStageChangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
