// Code generated by ent, DO NOT EDIT.

package menuitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kaiseki-io/kaiseki/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldSessionID, v))
}

// ItemIndex applies equality check predicate on the "item_index" field. It's identical to ItemIndexEQ.
func ItemIndex(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldItemIndex, v))
}

// SourceText applies equality check predicate on the "source_text" field. It's identical to SourceTextEQ.
func SourceText(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldSourceText, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldCategory, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldPrice, v))
}

// EnglishText applies equality check predicate on the "english_text" field. It's identical to EnglishTextEQ.
func EnglishText(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldEnglishText, v))
}

// FallbackUsed applies equality check predicate on the "fallback_used" field. It's identical to FallbackUsedEQ.
func FallbackUsed(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldFallbackUsed, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldDescription, v))
}

// ImageRef applies equality check predicate on the "image_ref" field. It's identical to ImageRefEQ.
func ImageRef(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImageRef, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImagePath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// TranslateAttempt applies equality check predicate on the "translate_attempt" field. It's identical to TranslateAttemptEQ.
func TranslateAttempt(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldTranslateAttempt, v))
}

// TranslateError applies equality check predicate on the "translate_error" field. It's identical to TranslateErrorEQ.
func TranslateError(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldTranslateError, v))
}

// DescribeAttempt applies equality check predicate on the "describe_attempt" field. It's identical to DescribeAttemptEQ.
func DescribeAttempt(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldDescribeAttempt, v))
}

// DescribeError applies equality check predicate on the "describe_error" field. It's identical to DescribeErrorEQ.
func DescribeError(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldDescribeError, v))
}

// AllergensAttempt applies equality check predicate on the "allergens_attempt" field. It's identical to AllergensAttemptEQ.
func AllergensAttempt(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldAllergensAttempt, v))
}

// AllergensError applies equality check predicate on the "allergens_error" field. It's identical to AllergensErrorEQ.
func AllergensError(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldAllergensError, v))
}

// IngredientsAttempt applies equality check predicate on the "ingredients_attempt" field. It's identical to IngredientsAttemptEQ.
func IngredientsAttempt(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIngredientsAttempt, v))
}

// IngredientsError applies equality check predicate on the "ingredients_error" field. It's identical to IngredientsErrorEQ.
func IngredientsError(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIngredientsError, v))
}

// ImageAttempt applies equality check predicate on the "image_attempt" field. It's identical to ImageAttemptEQ.
func ImageAttempt(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImageAttempt, v))
}

// ImageError applies equality check predicate on the "image_error" field. It's identical to ImageErrorEQ.
func ImageError(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImageError, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldSessionID, v))
}

// ItemIndexEQ applies the EQ predicate on the "item_index" field.
func ItemIndexEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldItemIndex, v))
}

// ItemIndexNEQ applies the NEQ predicate on the "item_index" field.
func ItemIndexNEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldItemIndex, v))
}

// ItemIndexIn applies the In predicate on the "item_index" field.
func ItemIndexIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldItemIndex, vs...))
}

// ItemIndexNotIn applies the NotIn predicate on the "item_index" field.
func ItemIndexNotIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldItemIndex, vs...))
}

// ItemIndexGT applies the GT predicate on the "item_index" field.
func ItemIndexGT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldItemIndex, v))
}

// ItemIndexGTE applies the GTE predicate on the "item_index" field.
func ItemIndexGTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldItemIndex, v))
}

// ItemIndexLT applies the LT predicate on the "item_index" field.
func ItemIndexLT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldItemIndex, v))
}

// ItemIndexLTE applies the LTE predicate on the "item_index" field.
func ItemIndexLTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldItemIndex, v))
}

// SourceTextEQ applies the EQ predicate on the "source_text" field.
func SourceTextEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldSourceText, v))
}

// SourceTextNEQ applies the NEQ predicate on the "source_text" field.
func SourceTextNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldSourceText, v))
}

// SourceTextIn applies the In predicate on the "source_text" field.
func SourceTextIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldSourceText, vs...))
}

// SourceTextNotIn applies the NotIn predicate on the "source_text" field.
func SourceTextNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldSourceText, vs...))
}

// SourceTextGT applies the GT predicate on the "source_text" field.
func SourceTextGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldSourceText, v))
}

// SourceTextGTE applies the GTE predicate on the "source_text" field.
func SourceTextGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldSourceText, v))
}

// SourceTextLT applies the LT predicate on the "source_text" field.
func SourceTextLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldSourceText, v))
}

// SourceTextLTE applies the LTE predicate on the "source_text" field.
func SourceTextLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldSourceText, v))
}

// SourceTextContains applies the Contains predicate on the "source_text" field.
func SourceTextContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldSourceText, v))
}

// SourceTextHasPrefix applies the HasPrefix predicate on the "source_text" field.
func SourceTextHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldSourceText, v))
}

// SourceTextHasSuffix applies the HasSuffix predicate on the "source_text" field.
func SourceTextHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldSourceText, v))
}

// SourceTextEqualFold applies the EqualFold predicate on the "source_text" field.
func SourceTextEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldSourceText, v))
}

// SourceTextContainsFold applies the ContainsFold predicate on the "source_text" field.
func SourceTextContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldSourceText, v))
}

// BoxIsNil applies the IsNil predicate on the "box" field.
func BoxIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldBox))
}

// BoxNotNil applies the NotNil predicate on the "box" field.
func BoxNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldBox))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldCategory, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldPrice, v))
}

// PriceContains applies the Contains predicate on the "price" field.
func PriceContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldPrice, v))
}

// PriceHasPrefix applies the HasPrefix predicate on the "price" field.
func PriceHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldPrice, v))
}

// PriceHasSuffix applies the HasSuffix predicate on the "price" field.
func PriceHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldPrice))
}

// PriceEqualFold applies the EqualFold predicate on the "price" field.
func PriceEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldPrice, v))
}

// PriceContainsFold applies the ContainsFold predicate on the "price" field.
func PriceContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldPrice, v))
}

// EnglishTextEQ applies the EQ predicate on the "english_text" field.
func EnglishTextEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldEnglishText, v))
}

// EnglishTextNEQ applies the NEQ predicate on the "english_text" field.
func EnglishTextNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldEnglishText, v))
}

// EnglishTextIn applies the In predicate on the "english_text" field.
func EnglishTextIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldEnglishText, vs...))
}

// EnglishTextNotIn applies the NotIn predicate on the "english_text" field.
func EnglishTextNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldEnglishText, vs...))
}

// EnglishTextGT applies the GT predicate on the "english_text" field.
func EnglishTextGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldEnglishText, v))
}

// EnglishTextGTE applies the GTE predicate on the "english_text" field.
func EnglishTextGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldEnglishText, v))
}

// EnglishTextLT applies the LT predicate on the "english_text" field.
func EnglishTextLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldEnglishText, v))
}

// EnglishTextLTE applies the LTE predicate on the "english_text" field.
func EnglishTextLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldEnglishText, v))
}

// EnglishTextContains applies the Contains predicate on the "english_text" field.
func EnglishTextContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldEnglishText, v))
}

// EnglishTextHasPrefix applies the HasPrefix predicate on the "english_text" field.
func EnglishTextHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldEnglishText, v))
}

// EnglishTextHasSuffix applies the HasSuffix predicate on the "english_text" field.
func EnglishTextHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldEnglishText, v))
}

// EnglishTextIsNil applies the IsNil predicate on the "english_text" field.
func EnglishTextIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldEnglishText))
}

// EnglishTextNotNil applies the NotNil predicate on the "english_text" field.
func EnglishTextNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldEnglishText))
}

// EnglishTextEqualFold applies the EqualFold predicate on the "english_text" field.
func EnglishTextEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldEnglishText, v))
}

// EnglishTextContainsFold applies the ContainsFold predicate on the "english_text" field.
func EnglishTextContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldEnglishText, v))
}

// FallbackUsedEQ applies the EQ predicate on the "fallback_used" field.
func FallbackUsedEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldFallbackUsed, v))
}

// FallbackUsedNEQ applies the NEQ predicate on the "fallback_used" field.
func FallbackUsedNEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldFallbackUsed, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldDescription, v))
}

// AllergenEntriesIsNil applies the IsNil predicate on the "allergen_entries" field.
func AllergenEntriesIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldAllergenEntries))
}

// AllergenEntriesNotNil applies the NotNil predicate on the "allergen_entries" field.
func AllergenEntriesNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldAllergenEntries))
}

// IngredientEntriesIsNil applies the IsNil predicate on the "ingredient_entries" field.
func IngredientEntriesIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldIngredientEntries))
}

// IngredientEntriesNotNil applies the NotNil predicate on the "ingredient_entries" field.
func IngredientEntriesNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldIngredientEntries))
}

// ImageRefEQ applies the EQ predicate on the "image_ref" field.
func ImageRefEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImageRef, v))
}

// ImageRefNEQ applies the NEQ predicate on the "image_ref" field.
func ImageRefNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldImageRef, v))
}

// ImageRefIn applies the In predicate on the "image_ref" field.
func ImageRefIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldImageRef, vs...))
}

// ImageRefNotIn applies the NotIn predicate on the "image_ref" field.
func ImageRefNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldImageRef, vs...))
}

// ImageRefGT applies the GT predicate on the "image_ref" field.
func ImageRefGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldImageRef, v))
}

// ImageRefGTE applies the GTE predicate on the "image_ref" field.
func ImageRefGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldImageRef, v))
}

// ImageRefLT applies the LT predicate on the "image_ref" field.
func ImageRefLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldImageRef, v))
}

// ImageRefLTE applies the LTE predicate on the "image_ref" field.
func ImageRefLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldImageRef, v))
}

// ImageRefContains applies the Contains predicate on the "image_ref" field.
func ImageRefContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldImageRef, v))
}

// ImageRefHasPrefix applies the HasPrefix predicate on the "image_ref" field.
func ImageRefHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldImageRef, v))
}

// ImageRefHasSuffix applies the HasSuffix predicate on the "image_ref" field.
func ImageRefHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldImageRef, v))
}

// ImageRefIsNil applies the IsNil predicate on the "image_ref" field.
func ImageRefIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldImageRef))
}

// ImageRefNotNil applies the NotNil predicate on the "image_ref" field.
func ImageRefNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldImageRef))
}

// ImageRefEqualFold applies the EqualFold predicate on the "image_ref" field.
func ImageRefEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldImageRef, v))
}

// ImageRefContainsFold applies the ContainsFold predicate on the "image_ref" field.
func ImageRefContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldImageRef, v))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathIsNil applies the IsNil predicate on the "image_path" field.
func ImagePathIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldImagePath))
}

// ImagePathNotNil applies the NotNil predicate on the "image_path" field.
func ImagePathNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldImagePath))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldImagePath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// TranslateStatusEQ applies the EQ predicate on the "translate_status" field.
func TranslateStatusEQ(v TranslateStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldTranslateStatus, v))
}

// TranslateStatusNEQ applies the NEQ predicate on the "translate_status" field.
func TranslateStatusNEQ(v TranslateStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldTranslateStatus, v))
}

// TranslateStatusIn applies the In predicate on the "translate_status" field.
func TranslateStatusIn(vs ...TranslateStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldTranslateStatus, vs...))
}

// TranslateStatusNotIn applies the NotIn predicate on the "translate_status" field.
func TranslateStatusNotIn(vs ...TranslateStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldTranslateStatus, vs...))
}

// TranslateAttemptEQ applies the EQ predicate on the "translate_attempt" field.
func TranslateAttemptEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldTranslateAttempt, v))
}

// TranslateAttemptNEQ applies the NEQ predicate on the "translate_attempt" field.
func TranslateAttemptNEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldTranslateAttempt, v))
}

// TranslateAttemptIn applies the In predicate on the "translate_attempt" field.
func TranslateAttemptIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldTranslateAttempt, vs...))
}

// TranslateAttemptNotIn applies the NotIn predicate on the "translate_attempt" field.
func TranslateAttemptNotIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldTranslateAttempt, vs...))
}

// TranslateAttemptGT applies the GT predicate on the "translate_attempt" field.
func TranslateAttemptGT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldTranslateAttempt, v))
}

// TranslateAttemptGTE applies the GTE predicate on the "translate_attempt" field.
func TranslateAttemptGTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldTranslateAttempt, v))
}

// TranslateAttemptLT applies the LT predicate on the "translate_attempt" field.
func TranslateAttemptLT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldTranslateAttempt, v))
}

// TranslateAttemptLTE applies the LTE predicate on the "translate_attempt" field.
func TranslateAttemptLTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldTranslateAttempt, v))
}

// TranslateErrorEQ applies the EQ predicate on the "translate_error" field.
func TranslateErrorEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldTranslateError, v))
}

// TranslateErrorNEQ applies the NEQ predicate on the "translate_error" field.
func TranslateErrorNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldTranslateError, v))
}

// TranslateErrorIn applies the In predicate on the "translate_error" field.
func TranslateErrorIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldTranslateError, vs...))
}

// TranslateErrorNotIn applies the NotIn predicate on the "translate_error" field.
func TranslateErrorNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldTranslateError, vs...))
}

// TranslateErrorGT applies the GT predicate on the "translate_error" field.
func TranslateErrorGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldTranslateError, v))
}

// TranslateErrorGTE applies the GTE predicate on the "translate_error" field.
func TranslateErrorGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldTranslateError, v))
}

// TranslateErrorLT applies the LT predicate on the "translate_error" field.
func TranslateErrorLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldTranslateError, v))
}

// TranslateErrorLTE applies the LTE predicate on the "translate_error" field.
func TranslateErrorLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldTranslateError, v))
}

// TranslateErrorContains applies the Contains predicate on the "translate_error" field.
func TranslateErrorContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldTranslateError, v))
}

// TranslateErrorHasPrefix applies the HasPrefix predicate on the "translate_error" field.
func TranslateErrorHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldTranslateError, v))
}

// TranslateErrorHasSuffix applies the HasSuffix predicate on the "translate_error" field.
func TranslateErrorHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldTranslateError, v))
}

// TranslateErrorIsNil applies the IsNil predicate on the "translate_error" field.
func TranslateErrorIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldTranslateError))
}

// TranslateErrorNotNil applies the NotNil predicate on the "translate_error" field.
func TranslateErrorNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldTranslateError))
}

// TranslateErrorEqualFold applies the EqualFold predicate on the "translate_error" field.
func TranslateErrorEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldTranslateError, v))
}

// TranslateErrorContainsFold applies the ContainsFold predicate on the "translate_error" field.
func TranslateErrorContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldTranslateError, v))
}

// DescribeStatusEQ applies the EQ predicate on the "describe_status" field.
func DescribeStatusEQ(v DescribeStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldDescribeStatus, v))
}

// DescribeStatusNEQ applies the NEQ predicate on the "describe_status" field.
func DescribeStatusNEQ(v DescribeStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldDescribeStatus, v))
}

// DescribeStatusIn applies the In predicate on the "describe_status" field.
func DescribeStatusIn(vs ...DescribeStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldDescribeStatus, vs...))
}

// DescribeStatusNotIn applies the NotIn predicate on the "describe_status" field.
func DescribeStatusNotIn(vs ...DescribeStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldDescribeStatus, vs...))
}

// DescribeAttemptEQ applies the EQ predicate on the "describe_attempt" field.
func DescribeAttemptEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldDescribeAttempt, v))
}

// DescribeAttemptNEQ applies the NEQ predicate on the "describe_attempt" field.
func DescribeAttemptNEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldDescribeAttempt, v))
}

// DescribeAttemptIn applies the In predicate on the "describe_attempt" field.
func DescribeAttemptIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldDescribeAttempt, vs...))
}

// DescribeAttemptNotIn applies the NotIn predicate on the "describe_attempt" field.
func DescribeAttemptNotIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldDescribeAttempt, vs...))
}

// DescribeAttemptGT applies the GT predicate on the "describe_attempt" field.
func DescribeAttemptGT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldDescribeAttempt, v))
}

// DescribeAttemptGTE applies the GTE predicate on the "describe_attempt" field.
func DescribeAttemptGTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldDescribeAttempt, v))
}

// DescribeAttemptLT applies the LT predicate on the "describe_attempt" field.
func DescribeAttemptLT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldDescribeAttempt, v))
}

// DescribeAttemptLTE applies the LTE predicate on the "describe_attempt" field.
func DescribeAttemptLTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldDescribeAttempt, v))
}

// DescribeErrorEQ applies the EQ predicate on the "describe_error" field.
func DescribeErrorEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldDescribeError, v))
}

// DescribeErrorNEQ applies the NEQ predicate on the "describe_error" field.
func DescribeErrorNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldDescribeError, v))
}

// DescribeErrorIn applies the In predicate on the "describe_error" field.
func DescribeErrorIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldDescribeError, vs...))
}

// DescribeErrorNotIn applies the NotIn predicate on the "describe_error" field.
func DescribeErrorNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldDescribeError, vs...))
}

// DescribeErrorGT applies the GT predicate on the "describe_error" field.
func DescribeErrorGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldDescribeError, v))
}

// DescribeErrorGTE applies the GTE predicate on the "describe_error" field.
func DescribeErrorGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldDescribeError, v))
}

// DescribeErrorLT applies the LT predicate on the "describe_error" field.
func DescribeErrorLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldDescribeError, v))
}

// DescribeErrorLTE applies the LTE predicate on the "describe_error" field.
func DescribeErrorLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldDescribeError, v))
}

// DescribeErrorContains applies the Contains predicate on the "describe_error" field.
func DescribeErrorContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldDescribeError, v))
}

// DescribeErrorHasPrefix applies the HasPrefix predicate on the "describe_error" field.
func DescribeErrorHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldDescribeError, v))
}

// DescribeErrorHasSuffix applies the HasSuffix predicate on the "describe_error" field.
func DescribeErrorHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldDescribeError, v))
}

// DescribeErrorIsNil applies the IsNil predicate on the "describe_error" field.
func DescribeErrorIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldDescribeError))
}

// DescribeErrorNotNil applies the NotNil predicate on the "describe_error" field.
func DescribeErrorNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldDescribeError))
}

// DescribeErrorEqualFold applies the EqualFold predicate on the "describe_error" field.
func DescribeErrorEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldDescribeError, v))
}

// DescribeErrorContainsFold applies the ContainsFold predicate on the "describe_error" field.
func DescribeErrorContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldDescribeError, v))
}

// AllergensStatusEQ applies the EQ predicate on the "allergens_status" field.
func AllergensStatusEQ(v AllergensStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldAllergensStatus, v))
}

// AllergensStatusNEQ applies the NEQ predicate on the "allergens_status" field.
func AllergensStatusNEQ(v AllergensStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldAllergensStatus, v))
}

// AllergensStatusIn applies the In predicate on the "allergens_status" field.
func AllergensStatusIn(vs ...AllergensStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldAllergensStatus, vs...))
}

// AllergensStatusNotIn applies the NotIn predicate on the "allergens_status" field.
func AllergensStatusNotIn(vs ...AllergensStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldAllergensStatus, vs...))
}

// AllergensAttemptEQ applies the EQ predicate on the "allergens_attempt" field.
func AllergensAttemptEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldAllergensAttempt, v))
}

// AllergensAttemptNEQ applies the NEQ predicate on the "allergens_attempt" field.
func AllergensAttemptNEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldAllergensAttempt, v))
}

// AllergensAttemptIn applies the In predicate on the "allergens_attempt" field.
func AllergensAttemptIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldAllergensAttempt, vs...))
}

// AllergensAttemptNotIn applies the NotIn predicate on the "allergens_attempt" field.
func AllergensAttemptNotIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldAllergensAttempt, vs...))
}

// AllergensAttemptGT applies the GT predicate on the "allergens_attempt" field.
func AllergensAttemptGT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldAllergensAttempt, v))
}

// AllergensAttemptGTE applies the GTE predicate on the "allergens_attempt" field.
func AllergensAttemptGTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldAllergensAttempt, v))
}

// AllergensAttemptLT applies the LT predicate on the "allergens_attempt" field.
func AllergensAttemptLT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldAllergensAttempt, v))
}

// AllergensAttemptLTE applies the LTE predicate on the "allergens_attempt" field.
func AllergensAttemptLTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldAllergensAttempt, v))
}

// AllergensErrorEQ applies the EQ predicate on the "allergens_error" field.
func AllergensErrorEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldAllergensError, v))
}

// AllergensErrorNEQ applies the NEQ predicate on the "allergens_error" field.
func AllergensErrorNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldAllergensError, v))
}

// AllergensErrorIn applies the In predicate on the "allergens_error" field.
func AllergensErrorIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldAllergensError, vs...))
}

// AllergensErrorNotIn applies the NotIn predicate on the "allergens_error" field.
func AllergensErrorNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldAllergensError, vs...))
}

// AllergensErrorGT applies the GT predicate on the "allergens_error" field.
func AllergensErrorGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldAllergensError, v))
}

// AllergensErrorGTE applies the GTE predicate on the "allergens_error" field.
func AllergensErrorGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldAllergensError, v))
}

// AllergensErrorLT applies the LT predicate on the "allergens_error" field.
func AllergensErrorLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldAllergensError, v))
}

// AllergensErrorLTE applies the LTE predicate on the "allergens_error" field.
func AllergensErrorLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldAllergensError, v))
}

// AllergensErrorContains applies the Contains predicate on the "allergens_error" field.
func AllergensErrorContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldAllergensError, v))
}

// AllergensErrorHasPrefix applies the HasPrefix predicate on the "allergens_error" field.
func AllergensErrorHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldAllergensError, v))
}

// AllergensErrorHasSuffix applies the HasSuffix predicate on the "allergens_error" field.
func AllergensErrorHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldAllergensError, v))
}

// AllergensErrorIsNil applies the IsNil predicate on the "allergens_error" field.
func AllergensErrorIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldAllergensError))
}

// AllergensErrorNotNil applies the NotNil predicate on the "allergens_error" field.
func AllergensErrorNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldAllergensError))
}

// AllergensErrorEqualFold applies the EqualFold predicate on the "allergens_error" field.
func AllergensErrorEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldAllergensError, v))
}

// AllergensErrorContainsFold applies the ContainsFold predicate on the "allergens_error" field.
func AllergensErrorContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldAllergensError, v))
}

// IngredientsStatusEQ applies the EQ predicate on the "ingredients_status" field.
func IngredientsStatusEQ(v IngredientsStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIngredientsStatus, v))
}

// IngredientsStatusNEQ applies the NEQ predicate on the "ingredients_status" field.
func IngredientsStatusNEQ(v IngredientsStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldIngredientsStatus, v))
}

// IngredientsStatusIn applies the In predicate on the "ingredients_status" field.
func IngredientsStatusIn(vs ...IngredientsStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldIngredientsStatus, vs...))
}

// IngredientsStatusNotIn applies the NotIn predicate on the "ingredients_status" field.
func IngredientsStatusNotIn(vs ...IngredientsStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldIngredientsStatus, vs...))
}

// IngredientsAttemptEQ applies the EQ predicate on the "ingredients_attempt" field.
func IngredientsAttemptEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIngredientsAttempt, v))
}

// IngredientsAttemptNEQ applies the NEQ predicate on the "ingredients_attempt" field.
func IngredientsAttemptNEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldIngredientsAttempt, v))
}

// IngredientsAttemptIn applies the In predicate on the "ingredients_attempt" field.
func IngredientsAttemptIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldIngredientsAttempt, vs...))
}

// IngredientsAttemptNotIn applies the NotIn predicate on the "ingredients_attempt" field.
func IngredientsAttemptNotIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldIngredientsAttempt, vs...))
}

// IngredientsAttemptGT applies the GT predicate on the "ingredients_attempt" field.
func IngredientsAttemptGT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldIngredientsAttempt, v))
}

// IngredientsAttemptGTE applies the GTE predicate on the "ingredients_attempt" field.
func IngredientsAttemptGTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldIngredientsAttempt, v))
}

// IngredientsAttemptLT applies the LT predicate on the "ingredients_attempt" field.
func IngredientsAttemptLT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldIngredientsAttempt, v))
}

// IngredientsAttemptLTE applies the LTE predicate on the "ingredients_attempt" field.
func IngredientsAttemptLTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldIngredientsAttempt, v))
}

// IngredientsErrorEQ applies the EQ predicate on the "ingredients_error" field.
func IngredientsErrorEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIngredientsError, v))
}

// IngredientsErrorNEQ applies the NEQ predicate on the "ingredients_error" field.
func IngredientsErrorNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldIngredientsError, v))
}

// IngredientsErrorIn applies the In predicate on the "ingredients_error" field.
func IngredientsErrorIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldIngredientsError, vs...))
}

// IngredientsErrorNotIn applies the NotIn predicate on the "ingredients_error" field.
func IngredientsErrorNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldIngredientsError, vs...))
}

// IngredientsErrorGT applies the GT predicate on the "ingredients_error" field.
func IngredientsErrorGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldIngredientsError, v))
}

// IngredientsErrorGTE applies the GTE predicate on the "ingredients_error" field.
func IngredientsErrorGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldIngredientsError, v))
}

// IngredientsErrorLT applies the LT predicate on the "ingredients_error" field.
func IngredientsErrorLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldIngredientsError, v))
}

// IngredientsErrorLTE applies the LTE predicate on the "ingredients_error" field.
func IngredientsErrorLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldIngredientsError, v))
}

// IngredientsErrorContains applies the Contains predicate on the "ingredients_error" field.
func IngredientsErrorContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldIngredientsError, v))
}

// IngredientsErrorHasPrefix applies the HasPrefix predicate on the "ingredients_error" field.
func IngredientsErrorHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldIngredientsError, v))
}

// IngredientsErrorHasSuffix applies the HasSuffix predicate on the "ingredients_error" field.
func IngredientsErrorHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldIngredientsError, v))
}

// IngredientsErrorIsNil applies the IsNil predicate on the "ingredients_error" field.
func IngredientsErrorIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldIngredientsError))
}

// IngredientsErrorNotNil applies the NotNil predicate on the "ingredients_error" field.
func IngredientsErrorNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldIngredientsError))
}

// IngredientsErrorEqualFold applies the EqualFold predicate on the "ingredients_error" field.
func IngredientsErrorEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldIngredientsError, v))
}

// IngredientsErrorContainsFold applies the ContainsFold predicate on the "ingredients_error" field.
func IngredientsErrorContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldIngredientsError, v))
}

// ImageStatusEQ applies the EQ predicate on the "image_status" field.
func ImageStatusEQ(v ImageStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImageStatus, v))
}

// ImageStatusNEQ applies the NEQ predicate on the "image_status" field.
func ImageStatusNEQ(v ImageStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldImageStatus, v))
}

// ImageStatusIn applies the In predicate on the "image_status" field.
func ImageStatusIn(vs ...ImageStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldImageStatus, vs...))
}

// ImageStatusNotIn applies the NotIn predicate on the "image_status" field.
func ImageStatusNotIn(vs ...ImageStatus) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldImageStatus, vs...))
}

// ImageAttemptEQ applies the EQ predicate on the "image_attempt" field.
func ImageAttemptEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImageAttempt, v))
}

// ImageAttemptNEQ applies the NEQ predicate on the "image_attempt" field.
func ImageAttemptNEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldImageAttempt, v))
}

// ImageAttemptIn applies the In predicate on the "image_attempt" field.
func ImageAttemptIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldImageAttempt, vs...))
}

// ImageAttemptNotIn applies the NotIn predicate on the "image_attempt" field.
func ImageAttemptNotIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldImageAttempt, vs...))
}

// ImageAttemptGT applies the GT predicate on the "image_attempt" field.
func ImageAttemptGT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldImageAttempt, v))
}

// ImageAttemptGTE applies the GTE predicate on the "image_attempt" field.
func ImageAttemptGTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldImageAttempt, v))
}

// ImageAttemptLT applies the LT predicate on the "image_attempt" field.
func ImageAttemptLT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldImageAttempt, v))
}

// ImageAttemptLTE applies the LTE predicate on the "image_attempt" field.
func ImageAttemptLTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldImageAttempt, v))
}

// ImageErrorEQ applies the EQ predicate on the "image_error" field.
func ImageErrorEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImageError, v))
}

// ImageErrorNEQ applies the NEQ predicate on the "image_error" field.
func ImageErrorNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldImageError, v))
}

// ImageErrorIn applies the In predicate on the "image_error" field.
func ImageErrorIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldImageError, vs...))
}

// ImageErrorNotIn applies the NotIn predicate on the "image_error" field.
func ImageErrorNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldImageError, vs...))
}

// ImageErrorGT applies the GT predicate on the "image_error" field.
func ImageErrorGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldImageError, v))
}

// ImageErrorGTE applies the GTE predicate on the "image_error" field.
func ImageErrorGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldImageError, v))
}

// ImageErrorLT applies the LT predicate on the "image_error" field.
func ImageErrorLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldImageError, v))
}

// ImageErrorLTE applies the LTE predicate on the "image_error" field.
func ImageErrorLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldImageError, v))
}

// ImageErrorContains applies the Contains predicate on the "image_error" field.
func ImageErrorContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldImageError, v))
}

// ImageErrorHasPrefix applies the HasPrefix predicate on the "image_error" field.
func ImageErrorHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldImageError, v))
}

// ImageErrorHasSuffix applies the HasSuffix predicate on the "image_error" field.
func ImageErrorHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldImageError, v))
}

// ImageErrorIsNil applies the IsNil predicate on the "image_error" field.
func ImageErrorIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldImageError))
}

// ImageErrorNotNil applies the NotNil predicate on the "image_error" field.
func ImageErrorNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldImageError))
}

// ImageErrorEqualFold applies the EqualFold predicate on the "image_error" field.
func ImageErrorEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldImageError, v))
}

// ImageErrorContainsFold applies the ContainsFold predicate on the "image_error" field.
func ImageErrorContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldImageError, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.MenuItem {
	return predicate.MenuItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.MenuSession) predicate.MenuItem {
	return predicate.MenuItem(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MenuItem) predicate.MenuItem {
	return predicate.MenuItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MenuItem) predicate.MenuItem {
	return predicate.MenuItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MenuItem) predicate.MenuItem {
	return predicate.MenuItem(sql.NotPredicates(p))
}
