// Code generated by ent, DO NOT EDIT.

package menuitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the menuitem type in the database.
	Label = "menu_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldItemIndex holds the string denoting the item_index field in the database.
	FieldItemIndex = "item_index"
	// FieldSourceText holds the string denoting the source_text field in the database.
	FieldSourceText = "source_text"
	// FieldBox holds the string denoting the box field in the database.
	FieldBox = "box"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldEnglishText holds the string denoting the english_text field in the database.
	FieldEnglishText = "english_text"
	// FieldFallbackUsed holds the string denoting the fallback_used field in the database.
	FieldFallbackUsed = "fallback_used"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAllergenEntries holds the string denoting the allergen_entries field in the database.
	FieldAllergenEntries = "allergen_entries"
	// FieldIngredientEntries holds the string denoting the ingredient_entries field in the database.
	FieldIngredientEntries = "ingredient_entries"
	// FieldImageRef holds the string denoting the image_ref field in the database.
	FieldImageRef = "image_ref"
	// FieldImagePath holds the string denoting the image_path field in the database.
	FieldImagePath = "image_path"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTranslateStatus holds the string denoting the translate_status field in the database.
	FieldTranslateStatus = "translate_status"
	// FieldTranslateAttempt holds the string denoting the translate_attempt field in the database.
	FieldTranslateAttempt = "translate_attempt"
	// FieldTranslateError holds the string denoting the translate_error field in the database.
	FieldTranslateError = "translate_error"
	// FieldDescribeStatus holds the string denoting the describe_status field in the database.
	FieldDescribeStatus = "describe_status"
	// FieldDescribeAttempt holds the string denoting the describe_attempt field in the database.
	FieldDescribeAttempt = "describe_attempt"
	// FieldDescribeError holds the string denoting the describe_error field in the database.
	FieldDescribeError = "describe_error"
	// FieldAllergensStatus holds the string denoting the allergens_status field in the database.
	FieldAllergensStatus = "allergens_status"
	// FieldAllergensAttempt holds the string denoting the allergens_attempt field in the database.
	FieldAllergensAttempt = "allergens_attempt"
	// FieldAllergensError holds the string denoting the allergens_error field in the database.
	FieldAllergensError = "allergens_error"
	// FieldIngredientsStatus holds the string denoting the ingredients_status field in the database.
	FieldIngredientsStatus = "ingredients_status"
	// FieldIngredientsAttempt holds the string denoting the ingredients_attempt field in the database.
	FieldIngredientsAttempt = "ingredients_attempt"
	// FieldIngredientsError holds the string denoting the ingredients_error field in the database.
	FieldIngredientsError = "ingredients_error"
	// FieldImageStatus holds the string denoting the image_status field in the database.
	FieldImageStatus = "image_status"
	// FieldImageAttempt holds the string denoting the image_attempt field in the database.
	FieldImageAttempt = "image_attempt"
	// FieldImageError holds the string denoting the image_error field in the database.
	FieldImageError = "image_error"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// MenuSessionFieldID holds the string denoting the ID field of the MenuSession.
	MenuSessionFieldID = "session_id"
	// Table holds the table name of the menuitem in the database.
	Table = "menu_items"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "menu_items"
	// SessionInverseTable is the table name for the MenuSession entity.
	// It exists in this package in order to avoid circular dependency with the "menusession" package.
	SessionInverseTable = "menu_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for menuitem fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldItemIndex,
	FieldSourceText,
	FieldBox,
	FieldCategory,
	FieldPrice,
	FieldEnglishText,
	FieldFallbackUsed,
	FieldDescription,
	FieldAllergenEntries,
	FieldIngredientEntries,
	FieldImageRef,
	FieldImagePath,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTranslateStatus,
	FieldTranslateAttempt,
	FieldTranslateError,
	FieldDescribeStatus,
	FieldDescribeAttempt,
	FieldDescribeError,
	FieldAllergensStatus,
	FieldAllergensAttempt,
	FieldAllergensError,
	FieldIngredientsStatus,
	FieldIngredientsAttempt,
	FieldIngredientsError,
	FieldImageStatus,
	FieldImageAttempt,
	FieldImageError,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultFallbackUsed holds the default value on creation for the "fallback_used" field.
	DefaultFallbackUsed bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultTranslateAttempt holds the default value on creation for the "translate_attempt" field.
	DefaultTranslateAttempt int
	// DefaultDescribeAttempt holds the default value on creation for the "describe_attempt" field.
	DefaultDescribeAttempt int
	// DefaultAllergensAttempt holds the default value on creation for the "allergens_attempt" field.
	DefaultAllergensAttempt int
	// DefaultIngredientsAttempt holds the default value on creation for the "ingredients_attempt" field.
	DefaultIngredientsAttempt int
	// DefaultImageAttempt holds the default value on creation for the "image_attempt" field.
	DefaultImageAttempt int
)

// TranslateStatus defines the type for the "translate_status" enum field.
type TranslateStatus string

// TranslateStatusPending is the default value of the TranslateStatus enum.
const DefaultTranslateStatus = TranslateStatusPending

// TranslateStatus values.
const (
	TranslateStatusPending   TranslateStatus = "pending"
	TranslateStatusInFlight  TranslateStatus = "in_flight"
	TranslateStatusCompleted TranslateStatus = "completed"
	TranslateStatusFailed    TranslateStatus = "failed"
	TranslateStatusSkipped   TranslateStatus = "skipped"
)

func (ts TranslateStatus) String() string {
	return string(ts)
}

// TranslateStatusValidator is a validator for the "translate_status" field enum values. It is called by the builders before save.
func TranslateStatusValidator(ts TranslateStatus) error {
	switch ts {
	case TranslateStatusPending, TranslateStatusInFlight, TranslateStatusCompleted, TranslateStatusFailed, TranslateStatusSkipped:
		return nil
	default:
		return fmt.Errorf("menuitem: invalid enum value for translate_status field: %q", ts)
	}
}

// DescribeStatus defines the type for the "describe_status" enum field.
type DescribeStatus string

// DescribeStatusPending is the default value of the DescribeStatus enum.
const DefaultDescribeStatus = DescribeStatusPending

// DescribeStatus values.
const (
	DescribeStatusPending   DescribeStatus = "pending"
	DescribeStatusInFlight  DescribeStatus = "in_flight"
	DescribeStatusCompleted DescribeStatus = "completed"
	DescribeStatusFailed    DescribeStatus = "failed"
	DescribeStatusSkipped   DescribeStatus = "skipped"
)

func (ds DescribeStatus) String() string {
	return string(ds)
}

// DescribeStatusValidator is a validator for the "describe_status" field enum values. It is called by the builders before save.
func DescribeStatusValidator(ds DescribeStatus) error {
	switch ds {
	case DescribeStatusPending, DescribeStatusInFlight, DescribeStatusCompleted, DescribeStatusFailed, DescribeStatusSkipped:
		return nil
	default:
		return fmt.Errorf("menuitem: invalid enum value for describe_status field: %q", ds)
	}
}

// AllergensStatus defines the type for the "allergens_status" enum field.
type AllergensStatus string

// AllergensStatusPending is the default value of the AllergensStatus enum.
const DefaultAllergensStatus = AllergensStatusPending

// AllergensStatus values.
const (
	AllergensStatusPending   AllergensStatus = "pending"
	AllergensStatusInFlight  AllergensStatus = "in_flight"
	AllergensStatusCompleted AllergensStatus = "completed"
	AllergensStatusFailed    AllergensStatus = "failed"
	AllergensStatusSkipped   AllergensStatus = "skipped"
)

func (as AllergensStatus) String() string {
	return string(as)
}

// AllergensStatusValidator is a validator for the "allergens_status" field enum values. It is called by the builders before save.
func AllergensStatusValidator(as AllergensStatus) error {
	switch as {
	case AllergensStatusPending, AllergensStatusInFlight, AllergensStatusCompleted, AllergensStatusFailed, AllergensStatusSkipped:
		return nil
	default:
		return fmt.Errorf("menuitem: invalid enum value for allergens_status field: %q", as)
	}
}

// IngredientsStatus defines the type for the "ingredients_status" enum field.
type IngredientsStatus string

// IngredientsStatusPending is the default value of the IngredientsStatus enum.
const DefaultIngredientsStatus = IngredientsStatusPending

// IngredientsStatus values.
const (
	IngredientsStatusPending   IngredientsStatus = "pending"
	IngredientsStatusInFlight  IngredientsStatus = "in_flight"
	IngredientsStatusCompleted IngredientsStatus = "completed"
	IngredientsStatusFailed    IngredientsStatus = "failed"
	IngredientsStatusSkipped   IngredientsStatus = "skipped"
)

func (is IngredientsStatus) String() string {
	return string(is)
}

// IngredientsStatusValidator is a validator for the "ingredients_status" field enum values. It is called by the builders before save.
func IngredientsStatusValidator(is IngredientsStatus) error {
	switch is {
	case IngredientsStatusPending, IngredientsStatusInFlight, IngredientsStatusCompleted, IngredientsStatusFailed, IngredientsStatusSkipped:
		return nil
	default:
		return fmt.Errorf("menuitem: invalid enum value for ingredients_status field: %q", is)
	}
}

// ImageStatus defines the type for the "image_status" enum field.
type ImageStatus string

// ImageStatusPending is the default value of the ImageStatus enum.
const DefaultImageStatus = ImageStatusPending

// ImageStatus values.
const (
	ImageStatusPending   ImageStatus = "pending"
	ImageStatusInFlight  ImageStatus = "in_flight"
	ImageStatusCompleted ImageStatus = "completed"
	ImageStatusFailed    ImageStatus = "failed"
	ImageStatusSkipped   ImageStatus = "skipped"
)

func (is ImageStatus) String() string {
	return string(is)
}

// ImageStatusValidator is a validator for the "image_status" field enum values. It is called by the builders before save.
func ImageStatusValidator(is ImageStatus) error {
	switch is {
	case ImageStatusPending, ImageStatusInFlight, ImageStatusCompleted, ImageStatusFailed, ImageStatusSkipped:
		return nil
	default:
		return fmt.Errorf("menuitem: invalid enum value for image_status field: %q", is)
	}
}

// OrderOption defines the ordering options for the MenuItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByItemIndex orders the results by the item_index field.
func ByItemIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemIndex, opts...).ToFunc()
}

// BySourceText orders the results by the source_text field.
func BySourceText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceText, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByEnglishText orders the results by the english_text field.
func ByEnglishText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnglishText, opts...).ToFunc()
}

// ByFallbackUsed orders the results by the fallback_used field.
func ByFallbackUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallbackUsed, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByImageRef orders the results by the image_ref field.
func ByImageRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageRef, opts...).ToFunc()
}

// ByImagePath orders the results by the image_path field.
func ByImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagePath, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTranslateStatus orders the results by the translate_status field.
func ByTranslateStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslateStatus, opts...).ToFunc()
}

// ByTranslateAttempt orders the results by the translate_attempt field.
func ByTranslateAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslateAttempt, opts...).ToFunc()
}

// ByTranslateError orders the results by the translate_error field.
func ByTranslateError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslateError, opts...).ToFunc()
}

// ByDescribeStatus orders the results by the describe_status field.
func ByDescribeStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescribeStatus, opts...).ToFunc()
}

// ByDescribeAttempt orders the results by the describe_attempt field.
func ByDescribeAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescribeAttempt, opts...).ToFunc()
}

// ByDescribeError orders the results by the describe_error field.
func ByDescribeError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescribeError, opts...).ToFunc()
}

// ByAllergensStatus orders the results by the allergens_status field.
func ByAllergensStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllergensStatus, opts...).ToFunc()
}

// ByAllergensAttempt orders the results by the allergens_attempt field.
func ByAllergensAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllergensAttempt, opts...).ToFunc()
}

// ByAllergensError orders the results by the allergens_error field.
func ByAllergensError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllergensError, opts...).ToFunc()
}

// ByIngredientsStatus orders the results by the ingredients_status field.
func ByIngredientsStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngredientsStatus, opts...).ToFunc()
}

// ByIngredientsAttempt orders the results by the ingredients_attempt field.
func ByIngredientsAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngredientsAttempt, opts...).ToFunc()
}

// ByIngredientsError orders the results by the ingredients_error field.
func ByIngredientsError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngredientsError, opts...).ToFunc()
}

// ByImageStatus orders the results by the image_status field.
func ByImageStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageStatus, opts...).ToFunc()
}

// ByImageAttempt orders the results by the image_attempt field.
func ByImageAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageAttempt, opts...).ToFunc()
}

// ByImageError orders the results by the image_error field.
func ByImageError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageError, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, MenuSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
