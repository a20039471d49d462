// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kaiseki-io/kaiseki/ent/menuitem"
	"github.com/kaiseki-io/kaiseki/ent/predicate"
)

// MenuItemUpdate is the builder for updating MenuItem entities.
type MenuItemUpdate struct {
	config
	hooks    []Hook
	mutation *MenuItemMutation
}

// Where appends a list predicates to the MenuItemUpdate builder.
func (_u *MenuItemUpdate) Where(ps ...predicate.MenuItem) *MenuItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *MenuItemUpdate) SetSourceText(v string) *MenuItemUpdate {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableSourceText(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// SetBox sets the "box" field.
func (_u *MenuItemUpdate) SetBox(v [][2]int) *MenuItemUpdate {
	_u.mutation.SetBox(v)
	return _u
}

// AppendBox appends value to the "box" field.
func (_u *MenuItemUpdate) AppendBox(v [][2]int) *MenuItemUpdate {
	_u.mutation.AppendBox(v)
	return _u
}

// ClearBox clears the value of the "box" field.
func (_u *MenuItemUpdate) ClearBox() *MenuItemUpdate {
	_u.mutation.ClearBox()
	return _u
}

// SetCategory sets the "category" field.
func (_u *MenuItemUpdate) SetCategory(v string) *MenuItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableCategory(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *MenuItemUpdate) SetPrice(v string) *MenuItemUpdate {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillablePrice(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *MenuItemUpdate) ClearPrice() *MenuItemUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetEnglishText sets the "english_text" field.
func (_u *MenuItemUpdate) SetEnglishText(v string) *MenuItemUpdate {
	_u.mutation.SetEnglishText(v)
	return _u
}

// SetNillableEnglishText sets the "english_text" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableEnglishText(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetEnglishText(*v)
	}
	return _u
}

// ClearEnglishText clears the value of the "english_text" field.
func (_u *MenuItemUpdate) ClearEnglishText() *MenuItemUpdate {
	_u.mutation.ClearEnglishText()
	return _u
}

// SetFallbackUsed sets the "fallback_used" field.
func (_u *MenuItemUpdate) SetFallbackUsed(v bool) *MenuItemUpdate {
	_u.mutation.SetFallbackUsed(v)
	return _u
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableFallbackUsed(v *bool) *MenuItemUpdate {
	if v != nil {
		_u.SetFallbackUsed(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MenuItemUpdate) SetDescription(v string) *MenuItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableDescription(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MenuItemUpdate) ClearDescription() *MenuItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAllergenEntries sets the "allergen_entries" field.
func (_u *MenuItemUpdate) SetAllergenEntries(v []map[string]interface{}) *MenuItemUpdate {
	_u.mutation.SetAllergenEntries(v)
	return _u
}

// AppendAllergenEntries appends value to the "allergen_entries" field.
func (_u *MenuItemUpdate) AppendAllergenEntries(v []map[string]interface{}) *MenuItemUpdate {
	_u.mutation.AppendAllergenEntries(v)
	return _u
}

// ClearAllergenEntries clears the value of the "allergen_entries" field.
func (_u *MenuItemUpdate) ClearAllergenEntries() *MenuItemUpdate {
	_u.mutation.ClearAllergenEntries()
	return _u
}

// SetIngredientEntries sets the "ingredient_entries" field.
func (_u *MenuItemUpdate) SetIngredientEntries(v []map[string]interface{}) *MenuItemUpdate {
	_u.mutation.SetIngredientEntries(v)
	return _u
}

// AppendIngredientEntries appends value to the "ingredient_entries" field.
func (_u *MenuItemUpdate) AppendIngredientEntries(v []map[string]interface{}) *MenuItemUpdate {
	_u.mutation.AppendIngredientEntries(v)
	return _u
}

// ClearIngredientEntries clears the value of the "ingredient_entries" field.
func (_u *MenuItemUpdate) ClearIngredientEntries() *MenuItemUpdate {
	_u.mutation.ClearIngredientEntries()
	return _u
}

// SetImageRef sets the "image_ref" field.
func (_u *MenuItemUpdate) SetImageRef(v string) *MenuItemUpdate {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableImageRef(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// ClearImageRef clears the value of the "image_ref" field.
func (_u *MenuItemUpdate) ClearImageRef() *MenuItemUpdate {
	_u.mutation.ClearImageRef()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *MenuItemUpdate) SetImagePath(v string) *MenuItemUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableImagePath(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *MenuItemUpdate) ClearImagePath() *MenuItemUpdate {
	_u.mutation.ClearImagePath()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MenuItemUpdate) SetUpdatedAt(v time.Time) *MenuItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTranslateStatus sets the "translate_status" field.
func (_u *MenuItemUpdate) SetTranslateStatus(v menuitem.TranslateStatus) *MenuItemUpdate {
	_u.mutation.SetTranslateStatus(v)
	return _u
}

// SetNillableTranslateStatus sets the "translate_status" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableTranslateStatus(v *menuitem.TranslateStatus) *MenuItemUpdate {
	if v != nil {
		_u.SetTranslateStatus(*v)
	}
	return _u
}

// SetTranslateAttempt sets the "translate_attempt" field.
func (_u *MenuItemUpdate) SetTranslateAttempt(v int) *MenuItemUpdate {
	_u.mutation.ResetTranslateAttempt()
	_u.mutation.SetTranslateAttempt(v)
	return _u
}

// SetNillableTranslateAttempt sets the "translate_attempt" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableTranslateAttempt(v *int) *MenuItemUpdate {
	if v != nil {
		_u.SetTranslateAttempt(*v)
	}
	return _u
}

// AddTranslateAttempt adds value to the "translate_attempt" field.
func (_u *MenuItemUpdate) AddTranslateAttempt(v int) *MenuItemUpdate {
	_u.mutation.AddTranslateAttempt(v)
	return _u
}

// SetTranslateError sets the "translate_error" field.
func (_u *MenuItemUpdate) SetTranslateError(v string) *MenuItemUpdate {
	_u.mutation.SetTranslateError(v)
	return _u
}

// SetNillableTranslateError sets the "translate_error" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableTranslateError(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetTranslateError(*v)
	}
	return _u
}

// ClearTranslateError clears the value of the "translate_error" field.
func (_u *MenuItemUpdate) ClearTranslateError() *MenuItemUpdate {
	_u.mutation.ClearTranslateError()
	return _u
}

// SetDescribeStatus sets the "describe_status" field.
func (_u *MenuItemUpdate) SetDescribeStatus(v menuitem.DescribeStatus) *MenuItemUpdate {
	_u.mutation.SetDescribeStatus(v)
	return _u
}

// SetNillableDescribeStatus sets the "describe_status" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableDescribeStatus(v *menuitem.DescribeStatus) *MenuItemUpdate {
	if v != nil {
		_u.SetDescribeStatus(*v)
	}
	return _u
}

// SetDescribeAttempt sets the "describe_attempt" field.
func (_u *MenuItemUpdate) SetDescribeAttempt(v int) *MenuItemUpdate {
	_u.mutation.ResetDescribeAttempt()
	_u.mutation.SetDescribeAttempt(v)
	return _u
}

// SetNillableDescribeAttempt sets the "describe_attempt" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableDescribeAttempt(v *int) *MenuItemUpdate {
	if v != nil {
		_u.SetDescribeAttempt(*v)
	}
	return _u
}

// AddDescribeAttempt adds value to the "describe_attempt" field.
func (_u *MenuItemUpdate) AddDescribeAttempt(v int) *MenuItemUpdate {
	_u.mutation.AddDescribeAttempt(v)
	return _u
}

// SetDescribeError sets the "describe_error" field.
func (_u *MenuItemUpdate) SetDescribeError(v string) *MenuItemUpdate {
	_u.mutation.SetDescribeError(v)
	return _u
}

// SetNillableDescribeError sets the "describe_error" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableDescribeError(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetDescribeError(*v)
	}
	return _u
}

// ClearDescribeError clears the value of the "describe_error" field.
func (_u *MenuItemUpdate) ClearDescribeError() *MenuItemUpdate {
	_u.mutation.ClearDescribeError()
	return _u
}

// SetAllergensStatus sets the "allergens_status" field.
func (_u *MenuItemUpdate) SetAllergensStatus(v menuitem.AllergensStatus) *MenuItemUpdate {
	_u.mutation.SetAllergensStatus(v)
	return _u
}

// SetNillableAllergensStatus sets the "allergens_status" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableAllergensStatus(v *menuitem.AllergensStatus) *MenuItemUpdate {
	if v != nil {
		_u.SetAllergensStatus(*v)
	}
	return _u
}

// SetAllergensAttempt sets the "allergens_attempt" field.
func (_u *MenuItemUpdate) SetAllergensAttempt(v int) *MenuItemUpdate {
	_u.mutation.ResetAllergensAttempt()
	_u.mutation.SetAllergensAttempt(v)
	return _u
}

// SetNillableAllergensAttempt sets the "allergens_attempt" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableAllergensAttempt(v *int) *MenuItemUpdate {
	if v != nil {
		_u.SetAllergensAttempt(*v)
	}
	return _u
}

// AddAllergensAttempt adds value to the "allergens_attempt" field.
func (_u *MenuItemUpdate) AddAllergensAttempt(v int) *MenuItemUpdate {
	_u.mutation.AddAllergensAttempt(v)
	return _u
}

// SetAllergensError sets the "allergens_error" field.
func (_u *MenuItemUpdate) SetAllergensError(v string) *MenuItemUpdate {
	_u.mutation.SetAllergensError(v)
	return _u
}

// SetNillableAllergensError sets the "allergens_error" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableAllergensError(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetAllergensError(*v)
	}
	return _u
}

// ClearAllergensError clears the value of the "allergens_error" field.
func (_u *MenuItemUpdate) ClearAllergensError() *MenuItemUpdate {
	_u.mutation.ClearAllergensError()
	return _u
}

// SetIngredientsStatus sets the "ingredients_status" field.
func (_u *MenuItemUpdate) SetIngredientsStatus(v menuitem.IngredientsStatus) *MenuItemUpdate {
	_u.mutation.SetIngredientsStatus(v)
	return _u
}

// SetNillableIngredientsStatus sets the "ingredients_status" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableIngredientsStatus(v *menuitem.IngredientsStatus) *MenuItemUpdate {
	if v != nil {
		_u.SetIngredientsStatus(*v)
	}
	return _u
}

// SetIngredientsAttempt sets the "ingredients_attempt" field.
func (_u *MenuItemUpdate) SetIngredientsAttempt(v int) *MenuItemUpdate {
	_u.mutation.ResetIngredientsAttempt()
	_u.mutation.SetIngredientsAttempt(v)
	return _u
}

// SetNillableIngredientsAttempt sets the "ingredients_attempt" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableIngredientsAttempt(v *int) *MenuItemUpdate {
	if v != nil {
		_u.SetIngredientsAttempt(*v)
	}
	return _u
}

// AddIngredientsAttempt adds value to the "ingredients_attempt" field.
func (_u *MenuItemUpdate) AddIngredientsAttempt(v int) *MenuItemUpdate {
	_u.mutation.AddIngredientsAttempt(v)
	return _u
}

// SetIngredientsError sets the "ingredients_error" field.
func (_u *MenuItemUpdate) SetIngredientsError(v string) *MenuItemUpdate {
	_u.mutation.SetIngredientsError(v)
	return _u
}

// SetNillableIngredientsError sets the "ingredients_error" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableIngredientsError(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetIngredientsError(*v)
	}
	return _u
}

// ClearIngredientsError clears the value of the "ingredients_error" field.
func (_u *MenuItemUpdate) ClearIngredientsError() *MenuItemUpdate {
	_u.mutation.ClearIngredientsError()
	return _u
}

// SetImageStatus sets the "image_status" field.
func (_u *MenuItemUpdate) SetImageStatus(v menuitem.ImageStatus) *MenuItemUpdate {
	_u.mutation.SetImageStatus(v)
	return _u
}

// SetNillableImageStatus sets the "image_status" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableImageStatus(v *menuitem.ImageStatus) *MenuItemUpdate {
	if v != nil {
		_u.SetImageStatus(*v)
	}
	return _u
}

// SetImageAttempt sets the "image_attempt" field.
func (_u *MenuItemUpdate) SetImageAttempt(v int) *MenuItemUpdate {
	_u.mutation.ResetImageAttempt()
	_u.mutation.SetImageAttempt(v)
	return _u
}

// SetNillableImageAttempt sets the "image_attempt" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableImageAttempt(v *int) *MenuItemUpdate {
	if v != nil {
		_u.SetImageAttempt(*v)
	}
	return _u
}

// AddImageAttempt adds value to the "image_attempt" field.
func (_u *MenuItemUpdate) AddImageAttempt(v int) *MenuItemUpdate {
	_u.mutation.AddImageAttempt(v)
	return _u
}

// SetImageError sets the "image_error" field.
func (_u *MenuItemUpdate) SetImageError(v string) *MenuItemUpdate {
	_u.mutation.SetImageError(v)
	return _u
}

// SetNillableImageError sets the "image_error" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableImageError(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetImageError(*v)
	}
	return _u
}

// ClearImageError clears the value of the "image_error" field.
func (_u *MenuItemUpdate) ClearImageError() *MenuItemUpdate {
	_u.mutation.ClearImageError()
	return _u
}

// Mutation returns the MenuItemMutation object of the builder.
func (_u *MenuItemUpdate) Mutation() *MenuItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MenuItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MenuItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MenuItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MenuItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MenuItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := menuitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MenuItemUpdate) check() error {
	if v, ok := _u.mutation.TranslateStatus(); ok {
		if err := menuitem.TranslateStatusValidator(v); err != nil {
			return &ValidationError{Name: "translate_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.translate_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DescribeStatus(); ok {
		if err := menuitem.DescribeStatusValidator(v); err != nil {
			return &ValidationError{Name: "describe_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.describe_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AllergensStatus(); ok {
		if err := menuitem.AllergensStatusValidator(v); err != nil {
			return &ValidationError{Name: "allergens_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.allergens_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IngredientsStatus(); ok {
		if err := menuitem.IngredientsStatusValidator(v); err != nil {
			return &ValidationError{Name: "ingredients_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.ingredients_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageStatus(); ok {
		if err := menuitem.ImageStatusValidator(v); err != nil {
			return &ValidationError{Name: "image_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.image_status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MenuItem.session"`)
	}
	return nil
}

func (_u *MenuItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(menuitem.Table, menuitem.Columns, sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(menuitem.FieldSourceText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Box(); ok {
		_spec.SetField(menuitem.FieldBox, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBox(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, menuitem.FieldBox, value)
		})
	}
	if _u.mutation.BoxCleared() {
		_spec.ClearField(menuitem.FieldBox, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(menuitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(menuitem.FieldPrice, field.TypeString, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(menuitem.FieldPrice, field.TypeString)
	}
	if value, ok := _u.mutation.EnglishText(); ok {
		_spec.SetField(menuitem.FieldEnglishText, field.TypeString, value)
	}
	if _u.mutation.EnglishTextCleared() {
		_spec.ClearField(menuitem.FieldEnglishText, field.TypeString)
	}
	if value, ok := _u.mutation.FallbackUsed(); ok {
		_spec.SetField(menuitem.FieldFallbackUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(menuitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(menuitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AllergenEntries(); ok {
		_spec.SetField(menuitem.FieldAllergenEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergenEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, menuitem.FieldAllergenEntries, value)
		})
	}
	if _u.mutation.AllergenEntriesCleared() {
		_spec.ClearField(menuitem.FieldAllergenEntries, field.TypeJSON)
	}
	if value, ok := _u.mutation.IngredientEntries(); ok {
		_spec.SetField(menuitem.FieldIngredientEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIngredientEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, menuitem.FieldIngredientEntries, value)
		})
	}
	if _u.mutation.IngredientEntriesCleared() {
		_spec.ClearField(menuitem.FieldIngredientEntries, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(menuitem.FieldImageRef, field.TypeString, value)
	}
	if _u.mutation.ImageRefCleared() {
		_spec.ClearField(menuitem.FieldImageRef, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(menuitem.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(menuitem.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(menuitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TranslateStatus(); ok {
		_spec.SetField(menuitem.FieldTranslateStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TranslateAttempt(); ok {
		_spec.SetField(menuitem.FieldTranslateAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranslateAttempt(); ok {
		_spec.AddField(menuitem.FieldTranslateAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TranslateError(); ok {
		_spec.SetField(menuitem.FieldTranslateError, field.TypeString, value)
	}
	if _u.mutation.TranslateErrorCleared() {
		_spec.ClearField(menuitem.FieldTranslateError, field.TypeString)
	}
	if value, ok := _u.mutation.DescribeStatus(); ok {
		_spec.SetField(menuitem.FieldDescribeStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DescribeAttempt(); ok {
		_spec.SetField(menuitem.FieldDescribeAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDescribeAttempt(); ok {
		_spec.AddField(menuitem.FieldDescribeAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DescribeError(); ok {
		_spec.SetField(menuitem.FieldDescribeError, field.TypeString, value)
	}
	if _u.mutation.DescribeErrorCleared() {
		_spec.ClearField(menuitem.FieldDescribeError, field.TypeString)
	}
	if value, ok := _u.mutation.AllergensStatus(); ok {
		_spec.SetField(menuitem.FieldAllergensStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllergensAttempt(); ok {
		_spec.SetField(menuitem.FieldAllergensAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllergensAttempt(); ok {
		_spec.AddField(menuitem.FieldAllergensAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllergensError(); ok {
		_spec.SetField(menuitem.FieldAllergensError, field.TypeString, value)
	}
	if _u.mutation.AllergensErrorCleared() {
		_spec.ClearField(menuitem.FieldAllergensError, field.TypeString)
	}
	if value, ok := _u.mutation.IngredientsStatus(); ok {
		_spec.SetField(menuitem.FieldIngredientsStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IngredientsAttempt(); ok {
		_spec.SetField(menuitem.FieldIngredientsAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIngredientsAttempt(); ok {
		_spec.AddField(menuitem.FieldIngredientsAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IngredientsError(); ok {
		_spec.SetField(menuitem.FieldIngredientsError, field.TypeString, value)
	}
	if _u.mutation.IngredientsErrorCleared() {
		_spec.ClearField(menuitem.FieldIngredientsError, field.TypeString)
	}
	if value, ok := _u.mutation.ImageStatus(); ok {
		_spec.SetField(menuitem.FieldImageStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ImageAttempt(); ok {
		_spec.SetField(menuitem.FieldImageAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageAttempt(); ok {
		_spec.AddField(menuitem.FieldImageAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImageError(); ok {
		_spec.SetField(menuitem.FieldImageError, field.TypeString, value)
	}
	if _u.mutation.ImageErrorCleared() {
		_spec.ClearField(menuitem.FieldImageError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{menuitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MenuItemUpdateOne is the builder for updating a single MenuItem entity.
type MenuItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MenuItemMutation
}

// SetSourceText sets the "source_text" field.
func (_u *MenuItemUpdateOne) SetSourceText(v string) *MenuItemUpdateOne {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableSourceText(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// SetBox sets the "box" field.
func (_u *MenuItemUpdateOne) SetBox(v [][2]int) *MenuItemUpdateOne {
	_u.mutation.SetBox(v)
	return _u
}

// AppendBox appends value to the "box" field.
func (_u *MenuItemUpdateOne) AppendBox(v [][2]int) *MenuItemUpdateOne {
	_u.mutation.AppendBox(v)
	return _u
}

// ClearBox clears the value of the "box" field.
func (_u *MenuItemUpdateOne) ClearBox() *MenuItemUpdateOne {
	_u.mutation.ClearBox()
	return _u
}

// SetCategory sets the "category" field.
func (_u *MenuItemUpdateOne) SetCategory(v string) *MenuItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableCategory(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *MenuItemUpdateOne) SetPrice(v string) *MenuItemUpdateOne {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillablePrice(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *MenuItemUpdateOne) ClearPrice() *MenuItemUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetEnglishText sets the "english_text" field.
func (_u *MenuItemUpdateOne) SetEnglishText(v string) *MenuItemUpdateOne {
	_u.mutation.SetEnglishText(v)
	return _u
}

// SetNillableEnglishText sets the "english_text" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableEnglishText(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetEnglishText(*v)
	}
	return _u
}

// ClearEnglishText clears the value of the "english_text" field.
func (_u *MenuItemUpdateOne) ClearEnglishText() *MenuItemUpdateOne {
	_u.mutation.ClearEnglishText()
	return _u
}

// SetFallbackUsed sets the "fallback_used" field.
func (_u *MenuItemUpdateOne) SetFallbackUsed(v bool) *MenuItemUpdateOne {
	_u.mutation.SetFallbackUsed(v)
	return _u
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableFallbackUsed(v *bool) *MenuItemUpdateOne {
	if v != nil {
		_u.SetFallbackUsed(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MenuItemUpdateOne) SetDescription(v string) *MenuItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableDescription(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MenuItemUpdateOne) ClearDescription() *MenuItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAllergenEntries sets the "allergen_entries" field.
func (_u *MenuItemUpdateOne) SetAllergenEntries(v []map[string]interface{}) *MenuItemUpdateOne {
	_u.mutation.SetAllergenEntries(v)
	return _u
}

// AppendAllergenEntries appends value to the "allergen_entries" field.
func (_u *MenuItemUpdateOne) AppendAllergenEntries(v []map[string]interface{}) *MenuItemUpdateOne {
	_u.mutation.AppendAllergenEntries(v)
	return _u
}

// ClearAllergenEntries clears the value of the "allergen_entries" field.
func (_u *MenuItemUpdateOne) ClearAllergenEntries() *MenuItemUpdateOne {
	_u.mutation.ClearAllergenEntries()
	return _u
}

// SetIngredientEntries sets the "ingredient_entries" field.
func (_u *MenuItemUpdateOne) SetIngredientEntries(v []map[string]interface{}) *MenuItemUpdateOne {
	_u.mutation.SetIngredientEntries(v)
	return _u
}

// AppendIngredientEntries appends value to the "ingredient_entries" field.
func (_u *MenuItemUpdateOne) AppendIngredientEntries(v []map[string]interface{}) *MenuItemUpdateOne {
	_u.mutation.AppendIngredientEntries(v)
	return _u
}

// ClearIngredientEntries clears the value of the "ingredient_entries" field.
func (_u *MenuItemUpdateOne) ClearIngredientEntries() *MenuItemUpdateOne {
	_u.mutation.ClearIngredientEntries()
	return _u
}

// SetImageRef sets the "image_ref" field.
func (_u *MenuItemUpdateOne) SetImageRef(v string) *MenuItemUpdateOne {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableImageRef(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// ClearImageRef clears the value of the "image_ref" field.
func (_u *MenuItemUpdateOne) ClearImageRef() *MenuItemUpdateOne {
	_u.mutation.ClearImageRef()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *MenuItemUpdateOne) SetImagePath(v string) *MenuItemUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableImagePath(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *MenuItemUpdateOne) ClearImagePath() *MenuItemUpdateOne {
	_u.mutation.ClearImagePath()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MenuItemUpdateOne) SetUpdatedAt(v time.Time) *MenuItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTranslateStatus sets the "translate_status" field.
func (_u *MenuItemUpdateOne) SetTranslateStatus(v menuitem.TranslateStatus) *MenuItemUpdateOne {
	_u.mutation.SetTranslateStatus(v)
	return _u
}

// SetNillableTranslateStatus sets the "translate_status" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableTranslateStatus(v *menuitem.TranslateStatus) *MenuItemUpdateOne {
	if v != nil {
		_u.SetTranslateStatus(*v)
	}
	return _u
}

// SetTranslateAttempt sets the "translate_attempt" field.
func (_u *MenuItemUpdateOne) SetTranslateAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.ResetTranslateAttempt()
	_u.mutation.SetTranslateAttempt(v)
	return _u
}

// SetNillableTranslateAttempt sets the "translate_attempt" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableTranslateAttempt(v *int) *MenuItemUpdateOne {
	if v != nil {
		_u.SetTranslateAttempt(*v)
	}
	return _u
}

// AddTranslateAttempt adds value to the "translate_attempt" field.
func (_u *MenuItemUpdateOne) AddTranslateAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.AddTranslateAttempt(v)
	return _u
}

// SetTranslateError sets the "translate_error" field.
func (_u *MenuItemUpdateOne) SetTranslateError(v string) *MenuItemUpdateOne {
	_u.mutation.SetTranslateError(v)
	return _u
}

// SetNillableTranslateError sets the "translate_error" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableTranslateError(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetTranslateError(*v)
	}
	return _u
}

// ClearTranslateError clears the value of the "translate_error" field.
func (_u *MenuItemUpdateOne) ClearTranslateError() *MenuItemUpdateOne {
	_u.mutation.ClearTranslateError()
	return _u
}

// SetDescribeStatus sets the "describe_status" field.
func (_u *MenuItemUpdateOne) SetDescribeStatus(v menuitem.DescribeStatus) *MenuItemUpdateOne {
	_u.mutation.SetDescribeStatus(v)
	return _u
}

// SetNillableDescribeStatus sets the "describe_status" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableDescribeStatus(v *menuitem.DescribeStatus) *MenuItemUpdateOne {
	if v != nil {
		_u.SetDescribeStatus(*v)
	}
	return _u
}

// SetDescribeAttempt sets the "describe_attempt" field.
func (_u *MenuItemUpdateOne) SetDescribeAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.ResetDescribeAttempt()
	_u.mutation.SetDescribeAttempt(v)
	return _u
}

// SetNillableDescribeAttempt sets the "describe_attempt" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableDescribeAttempt(v *int) *MenuItemUpdateOne {
	if v != nil {
		_u.SetDescribeAttempt(*v)
	}
	return _u
}

// AddDescribeAttempt adds value to the "describe_attempt" field.
func (_u *MenuItemUpdateOne) AddDescribeAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.AddDescribeAttempt(v)
	return _u
}

// SetDescribeError sets the "describe_error" field.
func (_u *MenuItemUpdateOne) SetDescribeError(v string) *MenuItemUpdateOne {
	_u.mutation.SetDescribeError(v)
	return _u
}

// SetNillableDescribeError sets the "describe_error" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableDescribeError(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetDescribeError(*v)
	}
	return _u
}

// ClearDescribeError clears the value of the "describe_error" field.
func (_u *MenuItemUpdateOne) ClearDescribeError() *MenuItemUpdateOne {
	_u.mutation.ClearDescribeError()
	return _u
}

// SetAllergensStatus sets the "allergens_status" field.
func (_u *MenuItemUpdateOne) SetAllergensStatus(v menuitem.AllergensStatus) *MenuItemUpdateOne {
	_u.mutation.SetAllergensStatus(v)
	return _u
}

// SetNillableAllergensStatus sets the "allergens_status" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableAllergensStatus(v *menuitem.AllergensStatus) *MenuItemUpdateOne {
	if v != nil {
		_u.SetAllergensStatus(*v)
	}
	return _u
}

// SetAllergensAttempt sets the "allergens_attempt" field.
func (_u *MenuItemUpdateOne) SetAllergensAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.ResetAllergensAttempt()
	_u.mutation.SetAllergensAttempt(v)
	return _u
}

// SetNillableAllergensAttempt sets the "allergens_attempt" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableAllergensAttempt(v *int) *MenuItemUpdateOne {
	if v != nil {
		_u.SetAllergensAttempt(*v)
	}
	return _u
}

// AddAllergensAttempt adds value to the "allergens_attempt" field.
func (_u *MenuItemUpdateOne) AddAllergensAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.AddAllergensAttempt(v)
	return _u
}

// SetAllergensError sets the "allergens_error" field.
func (_u *MenuItemUpdateOne) SetAllergensError(v string) *MenuItemUpdateOne {
	_u.mutation.SetAllergensError(v)
	return _u
}

// SetNillableAllergensError sets the "allergens_error" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableAllergensError(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetAllergensError(*v)
	}
	return _u
}

// ClearAllergensError clears the value of the "allergens_error" field.
func (_u *MenuItemUpdateOne) ClearAllergensError() *MenuItemUpdateOne {
	_u.mutation.ClearAllergensError()
	return _u
}

// SetIngredientsStatus sets the "ingredients_status" field.
func (_u *MenuItemUpdateOne) SetIngredientsStatus(v menuitem.IngredientsStatus) *MenuItemUpdateOne {
	_u.mutation.SetIngredientsStatus(v)
	return _u
}

// SetNillableIngredientsStatus sets the "ingredients_status" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableIngredientsStatus(v *menuitem.IngredientsStatus) *MenuItemUpdateOne {
	if v != nil {
		_u.SetIngredientsStatus(*v)
	}
	return _u
}

// SetIngredientsAttempt sets the "ingredients_attempt" field.
func (_u *MenuItemUpdateOne) SetIngredientsAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.ResetIngredientsAttempt()
	_u.mutation.SetIngredientsAttempt(v)
	return _u
}

// SetNillableIngredientsAttempt sets the "ingredients_attempt" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableIngredientsAttempt(v *int) *MenuItemUpdateOne {
	if v != nil {
		_u.SetIngredientsAttempt(*v)
	}
	return _u
}

// AddIngredientsAttempt adds value to the "ingredients_attempt" field.
func (_u *MenuItemUpdateOne) AddIngredientsAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.AddIngredientsAttempt(v)
	return _u
}

// SetIngredientsError sets the "ingredients_error" field.
func (_u *MenuItemUpdateOne) SetIngredientsError(v string) *MenuItemUpdateOne {
	_u.mutation.SetIngredientsError(v)
	return _u
}

// SetNillableIngredientsError sets the "ingredients_error" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableIngredientsError(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetIngredientsError(*v)
	}
	return _u
}

// ClearIngredientsError clears the value of the "ingredients_error" field.
func (_u *MenuItemUpdateOne) ClearIngredientsError() *MenuItemUpdateOne {
	_u.mutation.ClearIngredientsError()
	return _u
}

// SetImageStatus sets the "image_status" field.
func (_u *MenuItemUpdateOne) SetImageStatus(v menuitem.ImageStatus) *MenuItemUpdateOne {
	_u.mutation.SetImageStatus(v)
	return _u
}

// SetNillableImageStatus sets the "image_status" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableImageStatus(v *menuitem.ImageStatus) *MenuItemUpdateOne {
	if v != nil {
		_u.SetImageStatus(*v)
	}
	return _u
}

// SetImageAttempt sets the "image_attempt" field.
func (_u *MenuItemUpdateOne) SetImageAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.ResetImageAttempt()
	_u.mutation.SetImageAttempt(v)
	return _u
}

// SetNillableImageAttempt sets the "image_attempt" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableImageAttempt(v *int) *MenuItemUpdateOne {
	if v != nil {
		_u.SetImageAttempt(*v)
	}
	return _u
}

// AddImageAttempt adds value to the "image_attempt" field.
func (_u *MenuItemUpdateOne) AddImageAttempt(v int) *MenuItemUpdateOne {
	_u.mutation.AddImageAttempt(v)
	return _u
}

// SetImageError sets the "image_error" field.
func (_u *MenuItemUpdateOne) SetImageError(v string) *MenuItemUpdateOne {
	_u.mutation.SetImageError(v)
	return _u
}

// SetNillableImageError sets the "image_error" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableImageError(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetImageError(*v)
	}
	return _u
}

// ClearImageError clears the value of the "image_error" field.
func (_u *MenuItemUpdateOne) ClearImageError() *MenuItemUpdateOne {
	_u.mutation.ClearImageError()
	return _u
}

// Mutation returns the MenuItemMutation object of the builder.
func (_u *MenuItemUpdateOne) Mutation() *MenuItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the MenuItemUpdate builder.
func (_u *MenuItemUpdateOne) Where(ps ...predicate.MenuItem) *MenuItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MenuItemUpdateOne) Select(field string, fields ...string) *MenuItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MenuItem entity.
func (_u *MenuItemUpdateOne) Save(ctx context.Context) (*MenuItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MenuItemUpdateOne) SaveX(ctx context.Context) *MenuItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MenuItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MenuItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MenuItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := menuitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MenuItemUpdateOne) check() error {
	if v, ok := _u.mutation.TranslateStatus(); ok {
		if err := menuitem.TranslateStatusValidator(v); err != nil {
			return &ValidationError{Name: "translate_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.translate_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DescribeStatus(); ok {
		if err := menuitem.DescribeStatusValidator(v); err != nil {
			return &ValidationError{Name: "describe_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.describe_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AllergensStatus(); ok {
		if err := menuitem.AllergensStatusValidator(v); err != nil {
			return &ValidationError{Name: "allergens_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.allergens_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IngredientsStatus(); ok {
		if err := menuitem.IngredientsStatusValidator(v); err != nil {
			return &ValidationError{Name: "ingredients_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.ingredients_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageStatus(); ok {
		if err := menuitem.ImageStatusValidator(v); err != nil {
			return &ValidationError{Name: "image_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.image_status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MenuItem.session"`)
	}
	return nil
}

func (_u *MenuItemUpdateOne) sqlSave(ctx context.Context) (_node *MenuItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(menuitem.Table, menuitem.Columns, sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MenuItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, menuitem.FieldID)
		for _, f := range fields {
			if !menuitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != menuitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(menuitem.FieldSourceText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Box(); ok {
		_spec.SetField(menuitem.FieldBox, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBox(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, menuitem.FieldBox, value)
		})
	}
	if _u.mutation.BoxCleared() {
		_spec.ClearField(menuitem.FieldBox, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(menuitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(menuitem.FieldPrice, field.TypeString, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(menuitem.FieldPrice, field.TypeString)
	}
	if value, ok := _u.mutation.EnglishText(); ok {
		_spec.SetField(menuitem.FieldEnglishText, field.TypeString, value)
	}
	if _u.mutation.EnglishTextCleared() {
		_spec.ClearField(menuitem.FieldEnglishText, field.TypeString)
	}
	if value, ok := _u.mutation.FallbackUsed(); ok {
		_spec.SetField(menuitem.FieldFallbackUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(menuitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(menuitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AllergenEntries(); ok {
		_spec.SetField(menuitem.FieldAllergenEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergenEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, menuitem.FieldAllergenEntries, value)
		})
	}
	if _u.mutation.AllergenEntriesCleared() {
		_spec.ClearField(menuitem.FieldAllergenEntries, field.TypeJSON)
	}
	if value, ok := _u.mutation.IngredientEntries(); ok {
		_spec.SetField(menuitem.FieldIngredientEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIngredientEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, menuitem.FieldIngredientEntries, value)
		})
	}
	if _u.mutation.IngredientEntriesCleared() {
		_spec.ClearField(menuitem.FieldIngredientEntries, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(menuitem.FieldImageRef, field.TypeString, value)
	}
	if _u.mutation.ImageRefCleared() {
		_spec.ClearField(menuitem.FieldImageRef, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(menuitem.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(menuitem.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(menuitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TranslateStatus(); ok {
		_spec.SetField(menuitem.FieldTranslateStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TranslateAttempt(); ok {
		_spec.SetField(menuitem.FieldTranslateAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranslateAttempt(); ok {
		_spec.AddField(menuitem.FieldTranslateAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TranslateError(); ok {
		_spec.SetField(menuitem.FieldTranslateError, field.TypeString, value)
	}
	if _u.mutation.TranslateErrorCleared() {
		_spec.ClearField(menuitem.FieldTranslateError, field.TypeString)
	}
	if value, ok := _u.mutation.DescribeStatus(); ok {
		_spec.SetField(menuitem.FieldDescribeStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DescribeAttempt(); ok {
		_spec.SetField(menuitem.FieldDescribeAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDescribeAttempt(); ok {
		_spec.AddField(menuitem.FieldDescribeAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DescribeError(); ok {
		_spec.SetField(menuitem.FieldDescribeError, field.TypeString, value)
	}
	if _u.mutation.DescribeErrorCleared() {
		_spec.ClearField(menuitem.FieldDescribeError, field.TypeString)
	}
	if value, ok := _u.mutation.AllergensStatus(); ok {
		_spec.SetField(menuitem.FieldAllergensStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllergensAttempt(); ok {
		_spec.SetField(menuitem.FieldAllergensAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllergensAttempt(); ok {
		_spec.AddField(menuitem.FieldAllergensAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllergensError(); ok {
		_spec.SetField(menuitem.FieldAllergensError, field.TypeString, value)
	}
	if _u.mutation.AllergensErrorCleared() {
		_spec.ClearField(menuitem.FieldAllergensError, field.TypeString)
	}
	if value, ok := _u.mutation.IngredientsStatus(); ok {
		_spec.SetField(menuitem.FieldIngredientsStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IngredientsAttempt(); ok {
		_spec.SetField(menuitem.FieldIngredientsAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIngredientsAttempt(); ok {
		_spec.AddField(menuitem.FieldIngredientsAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IngredientsError(); ok {
		_spec.SetField(menuitem.FieldIngredientsError, field.TypeString, value)
	}
	if _u.mutation.IngredientsErrorCleared() {
		_spec.ClearField(menuitem.FieldIngredientsError, field.TypeString)
	}
	if value, ok := _u.mutation.ImageStatus(); ok {
		_spec.SetField(menuitem.FieldImageStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ImageAttempt(); ok {
		_spec.SetField(menuitem.FieldImageAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageAttempt(); ok {
		_spec.AddField(menuitem.FieldImageAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImageError(); ok {
		_spec.SetField(menuitem.FieldImageError, field.TypeString, value)
	}
	if _u.mutation.ImageErrorCleared() {
		_spec.ClearField(menuitem.FieldImageError, field.TypeString)
	}
	_node = &MenuItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{menuitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
