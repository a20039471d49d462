// Code generated by ent, DO NOT EDIT.

package menusession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kaiseki-io/kaiseki/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldContainsFold(FieldID, id))
}

// UploadRef applies equality check predicate on the "upload_ref" field. It's identical to UploadRefEQ.
func UploadRef(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldUploadRef, v))
}

// TotalItems applies equality check predicate on the "total_items" field. It's identical to TotalItemsEQ.
func TotalItems(v int) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldTotalItems, v))
}

// LastSeq applies equality check predicate on the "last_seq" field. It's identical to LastSeqEQ.
func LastSeq(v int64) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldLastSeq, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldErrorMessage, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldCancelRequested, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldPodID, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldDeletedAt, v))
}

// UploadRefEQ applies the EQ predicate on the "upload_ref" field.
func UploadRefEQ(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldUploadRef, v))
}

// UploadRefNEQ applies the NEQ predicate on the "upload_ref" field.
func UploadRefNEQ(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldUploadRef, v))
}

// UploadRefIn applies the In predicate on the "upload_ref" field.
func UploadRefIn(vs ...string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldUploadRef, vs...))
}

// UploadRefNotIn applies the NotIn predicate on the "upload_ref" field.
func UploadRefNotIn(vs ...string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldUploadRef, vs...))
}

// UploadRefGT applies the GT predicate on the "upload_ref" field.
func UploadRefGT(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldUploadRef, v))
}

// UploadRefGTE applies the GTE predicate on the "upload_ref" field.
func UploadRefGTE(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldUploadRef, v))
}

// UploadRefLT applies the LT predicate on the "upload_ref" field.
func UploadRefLT(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldUploadRef, v))
}

// UploadRefLTE applies the LTE predicate on the "upload_ref" field.
func UploadRefLTE(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldUploadRef, v))
}

// UploadRefContains applies the Contains predicate on the "upload_ref" field.
func UploadRefContains(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldContains(FieldUploadRef, v))
}

// UploadRefHasPrefix applies the HasPrefix predicate on the "upload_ref" field.
func UploadRefHasPrefix(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldHasPrefix(FieldUploadRef, v))
}

// UploadRefHasSuffix applies the HasSuffix predicate on the "upload_ref" field.
func UploadRefHasSuffix(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldHasSuffix(FieldUploadRef, v))
}

// UploadRefEqualFold applies the EqualFold predicate on the "upload_ref" field.
func UploadRefEqualFold(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEqualFold(FieldUploadRef, v))
}

// UploadRefContainsFold applies the ContainsFold predicate on the "upload_ref" field.
func UploadRefContainsFold(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldContainsFold(FieldUploadRef, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalItemsEQ applies the EQ predicate on the "total_items" field.
func TotalItemsEQ(v int) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldTotalItems, v))
}

// TotalItemsNEQ applies the NEQ predicate on the "total_items" field.
func TotalItemsNEQ(v int) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldTotalItems, v))
}

// TotalItemsIn applies the In predicate on the "total_items" field.
func TotalItemsIn(vs ...int) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldTotalItems, vs...))
}

// TotalItemsNotIn applies the NotIn predicate on the "total_items" field.
func TotalItemsNotIn(vs ...int) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldTotalItems, vs...))
}

// TotalItemsGT applies the GT predicate on the "total_items" field.
func TotalItemsGT(v int) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldTotalItems, v))
}

// TotalItemsGTE applies the GTE predicate on the "total_items" field.
func TotalItemsGTE(v int) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldTotalItems, v))
}

// TotalItemsLT applies the LT predicate on the "total_items" field.
func TotalItemsLT(v int) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldTotalItems, v))
}

// TotalItemsLTE applies the LTE predicate on the "total_items" field.
func TotalItemsLTE(v int) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldTotalItems, v))
}

// TotalItemsIsNil applies the IsNil predicate on the "total_items" field.
func TotalItemsIsNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIsNull(FieldTotalItems))
}

// TotalItemsNotNil applies the NotNil predicate on the "total_items" field.
func TotalItemsNotNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotNull(FieldTotalItems))
}

// LastSeqEQ applies the EQ predicate on the "last_seq" field.
func LastSeqEQ(v int64) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldLastSeq, v))
}

// LastSeqNEQ applies the NEQ predicate on the "last_seq" field.
func LastSeqNEQ(v int64) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldLastSeq, v))
}

// LastSeqIn applies the In predicate on the "last_seq" field.
func LastSeqIn(vs ...int64) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldLastSeq, vs...))
}

// LastSeqNotIn applies the NotIn predicate on the "last_seq" field.
func LastSeqNotIn(vs ...int64) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldLastSeq, vs...))
}

// LastSeqGT applies the GT predicate on the "last_seq" field.
func LastSeqGT(v int64) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldLastSeq, v))
}

// LastSeqGTE applies the GTE predicate on the "last_seq" field.
func LastSeqGTE(v int64) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldLastSeq, v))
}

// LastSeqLT applies the LT predicate on the "last_seq" field.
func LastSeqLT(v int64) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldLastSeq, v))
}

// LastSeqLTE applies the LTE predicate on the "last_seq" field.
func LastSeqLTE(v int64) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldLastSeq, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldCancelRequested, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldContainsFold(FieldPodID, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.MenuSession {
	return predicate.MenuSession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.MenuSession {
	return predicate.MenuSession(sql.FieldNotNull(FieldDeletedAt))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.MenuSession {
	return predicate.MenuSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.MenuItem) predicate.MenuSession {
	return predicate.MenuSession(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.MenuSession {
	return predicate.MenuSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.PipelineEvent) predicate.MenuSession {
	return predicate.MenuSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.MenuSession {
	return predicate.MenuSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.MenuSession {
	return predicate.MenuSession(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MenuSession) predicate.MenuSession {
	return predicate.MenuSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MenuSession) predicate.MenuSession {
	return predicate.MenuSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MenuSession) predicate.MenuSession {
	return predicate.MenuSession(sql.NotPredicates(p))
}
