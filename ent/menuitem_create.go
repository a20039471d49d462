// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kaiseki-io/kaiseki/ent/menuitem"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
)

// MenuItemCreate is the builder for creating a MenuItem entity.
type MenuItemCreate struct {
	config
	mutation *MenuItemMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *MenuItemCreate) SetSessionID(v string) *MenuItemCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetItemIndex sets the "item_index" field.
func (_c *MenuItemCreate) SetItemIndex(v int) *MenuItemCreate {
	_c.mutation.SetItemIndex(v)
	return _c
}

// SetSourceText sets the "source_text" field.
func (_c *MenuItemCreate) SetSourceText(v string) *MenuItemCreate {
	_c.mutation.SetSourceText(v)
	return _c
}

// SetBox sets the "box" field.
func (_c *MenuItemCreate) SetBox(v [][2]int) *MenuItemCreate {
	_c.mutation.SetBox(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *MenuItemCreate) SetCategory(v string) *MenuItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *MenuItemCreate) SetPrice(v string) *MenuItemCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillablePrice(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetEnglishText sets the "english_text" field.
func (_c *MenuItemCreate) SetEnglishText(v string) *MenuItemCreate {
	_c.mutation.SetEnglishText(v)
	return _c
}

// SetNillableEnglishText sets the "english_text" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableEnglishText(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetEnglishText(*v)
	}
	return _c
}

// SetFallbackUsed sets the "fallback_used" field.
func (_c *MenuItemCreate) SetFallbackUsed(v bool) *MenuItemCreate {
	_c.mutation.SetFallbackUsed(v)
	return _c
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableFallbackUsed(v *bool) *MenuItemCreate {
	if v != nil {
		_c.SetFallbackUsed(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *MenuItemCreate) SetDescription(v string) *MenuItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableDescription(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAllergenEntries sets the "allergen_entries" field.
func (_c *MenuItemCreate) SetAllergenEntries(v []map[string]interface{}) *MenuItemCreate {
	_c.mutation.SetAllergenEntries(v)
	return _c
}

// SetIngredientEntries sets the "ingredient_entries" field.
func (_c *MenuItemCreate) SetIngredientEntries(v []map[string]interface{}) *MenuItemCreate {
	_c.mutation.SetIngredientEntries(v)
	return _c
}

// SetImageRef sets the "image_ref" field.
func (_c *MenuItemCreate) SetImageRef(v string) *MenuItemCreate {
	_c.mutation.SetImageRef(v)
	return _c
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableImageRef(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetImageRef(*v)
	}
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *MenuItemCreate) SetImagePath(v string) *MenuItemCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableImagePath(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetImagePath(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MenuItemCreate) SetCreatedAt(v time.Time) *MenuItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableCreatedAt(v *time.Time) *MenuItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MenuItemCreate) SetUpdatedAt(v time.Time) *MenuItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableUpdatedAt(v *time.Time) *MenuItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTranslateStatus sets the "translate_status" field.
func (_c *MenuItemCreate) SetTranslateStatus(v menuitem.TranslateStatus) *MenuItemCreate {
	_c.mutation.SetTranslateStatus(v)
	return _c
}

// SetNillableTranslateStatus sets the "translate_status" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableTranslateStatus(v *menuitem.TranslateStatus) *MenuItemCreate {
	if v != nil {
		_c.SetTranslateStatus(*v)
	}
	return _c
}

// SetTranslateAttempt sets the "translate_attempt" field.
func (_c *MenuItemCreate) SetTranslateAttempt(v int) *MenuItemCreate {
	_c.mutation.SetTranslateAttempt(v)
	return _c
}

// SetNillableTranslateAttempt sets the "translate_attempt" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableTranslateAttempt(v *int) *MenuItemCreate {
	if v != nil {
		_c.SetTranslateAttempt(*v)
	}
	return _c
}

// SetTranslateError sets the "translate_error" field.
func (_c *MenuItemCreate) SetTranslateError(v string) *MenuItemCreate {
	_c.mutation.SetTranslateError(v)
	return _c
}

// SetNillableTranslateError sets the "translate_error" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableTranslateError(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetTranslateError(*v)
	}
	return _c
}

// SetDescribeStatus sets the "describe_status" field.
func (_c *MenuItemCreate) SetDescribeStatus(v menuitem.DescribeStatus) *MenuItemCreate {
	_c.mutation.SetDescribeStatus(v)
	return _c
}

// SetNillableDescribeStatus sets the "describe_status" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableDescribeStatus(v *menuitem.DescribeStatus) *MenuItemCreate {
	if v != nil {
		_c.SetDescribeStatus(*v)
	}
	return _c
}

// SetDescribeAttempt sets the "describe_attempt" field.
func (_c *MenuItemCreate) SetDescribeAttempt(v int) *MenuItemCreate {
	_c.mutation.SetDescribeAttempt(v)
	return _c
}

// SetNillableDescribeAttempt sets the "describe_attempt" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableDescribeAttempt(v *int) *MenuItemCreate {
	if v != nil {
		_c.SetDescribeAttempt(*v)
	}
	return _c
}

// SetDescribeError sets the "describe_error" field.
func (_c *MenuItemCreate) SetDescribeError(v string) *MenuItemCreate {
	_c.mutation.SetDescribeError(v)
	return _c
}

// SetNillableDescribeError sets the "describe_error" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableDescribeError(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetDescribeError(*v)
	}
	return _c
}

// SetAllergensStatus sets the "allergens_status" field.
func (_c *MenuItemCreate) SetAllergensStatus(v menuitem.AllergensStatus) *MenuItemCreate {
	_c.mutation.SetAllergensStatus(v)
	return _c
}

// SetNillableAllergensStatus sets the "allergens_status" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableAllergensStatus(v *menuitem.AllergensStatus) *MenuItemCreate {
	if v != nil {
		_c.SetAllergensStatus(*v)
	}
	return _c
}

// SetAllergensAttempt sets the "allergens_attempt" field.
func (_c *MenuItemCreate) SetAllergensAttempt(v int) *MenuItemCreate {
	_c.mutation.SetAllergensAttempt(v)
	return _c
}

// SetNillableAllergensAttempt sets the "allergens_attempt" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableAllergensAttempt(v *int) *MenuItemCreate {
	if v != nil {
		_c.SetAllergensAttempt(*v)
	}
	return _c
}

// SetAllergensError sets the "allergens_error" field.
func (_c *MenuItemCreate) SetAllergensError(v string) *MenuItemCreate {
	_c.mutation.SetAllergensError(v)
	return _c
}

// SetNillableAllergensError sets the "allergens_error" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableAllergensError(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetAllergensError(*v)
	}
	return _c
}

// SetIngredientsStatus sets the "ingredients_status" field.
func (_c *MenuItemCreate) SetIngredientsStatus(v menuitem.IngredientsStatus) *MenuItemCreate {
	_c.mutation.SetIngredientsStatus(v)
	return _c
}

// SetNillableIngredientsStatus sets the "ingredients_status" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableIngredientsStatus(v *menuitem.IngredientsStatus) *MenuItemCreate {
	if v != nil {
		_c.SetIngredientsStatus(*v)
	}
	return _c
}

// SetIngredientsAttempt sets the "ingredients_attempt" field.
func (_c *MenuItemCreate) SetIngredientsAttempt(v int) *MenuItemCreate {
	_c.mutation.SetIngredientsAttempt(v)
	return _c
}

// SetNillableIngredientsAttempt sets the "ingredients_attempt" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableIngredientsAttempt(v *int) *MenuItemCreate {
	if v != nil {
		_c.SetIngredientsAttempt(*v)
	}
	return _c
}

// SetIngredientsError sets the "ingredients_error" field.
func (_c *MenuItemCreate) SetIngredientsError(v string) *MenuItemCreate {
	_c.mutation.SetIngredientsError(v)
	return _c
}

// SetNillableIngredientsError sets the "ingredients_error" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableIngredientsError(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetIngredientsError(*v)
	}
	return _c
}

// SetImageStatus sets the "image_status" field.
func (_c *MenuItemCreate) SetImageStatus(v menuitem.ImageStatus) *MenuItemCreate {
	_c.mutation.SetImageStatus(v)
	return _c
}

// SetNillableImageStatus sets the "image_status" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableImageStatus(v *menuitem.ImageStatus) *MenuItemCreate {
	if v != nil {
		_c.SetImageStatus(*v)
	}
	return _c
}

// SetImageAttempt sets the "image_attempt" field.
func (_c *MenuItemCreate) SetImageAttempt(v int) *MenuItemCreate {
	_c.mutation.SetImageAttempt(v)
	return _c
}

// SetNillableImageAttempt sets the "image_attempt" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableImageAttempt(v *int) *MenuItemCreate {
	if v != nil {
		_c.SetImageAttempt(*v)
	}
	return _c
}

// SetImageError sets the "image_error" field.
func (_c *MenuItemCreate) SetImageError(v string) *MenuItemCreate {
	_c.mutation.SetImageError(v)
	return _c
}

// SetNillableImageError sets the "image_error" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableImageError(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetImageError(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the MenuSession entity.
func (_c *MenuItemCreate) SetSession(v *MenuSession) *MenuItemCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the MenuItemMutation object of the builder.
func (_c *MenuItemCreate) Mutation() *MenuItemMutation {
	return _c.mutation
}

// Save creates the MenuItem in the database.
func (_c *MenuItemCreate) Save(ctx context.Context) (*MenuItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MenuItemCreate) SaveX(ctx context.Context) *MenuItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MenuItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MenuItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MenuItemCreate) defaults() {
	if _, ok := _c.mutation.FallbackUsed(); !ok {
		v := menuitem.DefaultFallbackUsed
		_c.mutation.SetFallbackUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := menuitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := menuitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TranslateStatus(); !ok {
		v := menuitem.DefaultTranslateStatus
		_c.mutation.SetTranslateStatus(v)
	}
	if _, ok := _c.mutation.TranslateAttempt(); !ok {
		v := menuitem.DefaultTranslateAttempt
		_c.mutation.SetTranslateAttempt(v)
	}
	if _, ok := _c.mutation.DescribeStatus(); !ok {
		v := menuitem.DefaultDescribeStatus
		_c.mutation.SetDescribeStatus(v)
	}
	if _, ok := _c.mutation.DescribeAttempt(); !ok {
		v := menuitem.DefaultDescribeAttempt
		_c.mutation.SetDescribeAttempt(v)
	}
	if _, ok := _c.mutation.AllergensStatus(); !ok {
		v := menuitem.DefaultAllergensStatus
		_c.mutation.SetAllergensStatus(v)
	}
	if _, ok := _c.mutation.AllergensAttempt(); !ok {
		v := menuitem.DefaultAllergensAttempt
		_c.mutation.SetAllergensAttempt(v)
	}
	if _, ok := _c.mutation.IngredientsStatus(); !ok {
		v := menuitem.DefaultIngredientsStatus
		_c.mutation.SetIngredientsStatus(v)
	}
	if _, ok := _c.mutation.IngredientsAttempt(); !ok {
		v := menuitem.DefaultIngredientsAttempt
		_c.mutation.SetIngredientsAttempt(v)
	}
	if _, ok := _c.mutation.ImageStatus(); !ok {
		v := menuitem.DefaultImageStatus
		_c.mutation.SetImageStatus(v)
	}
	if _, ok := _c.mutation.ImageAttempt(); !ok {
		v := menuitem.DefaultImageAttempt
		_c.mutation.SetImageAttempt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MenuItemCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "MenuItem.session_id"`)}
	}
	if _, ok := _c.mutation.ItemIndex(); !ok {
		return &ValidationError{Name: "item_index", err: errors.New(`ent: missing required field "MenuItem.item_index"`)}
	}
	if _, ok := _c.mutation.SourceText(); !ok {
		return &ValidationError{Name: "source_text", err: errors.New(`ent: missing required field "MenuItem.source_text"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "MenuItem.category"`)}
	}
	if _, ok := _c.mutation.FallbackUsed(); !ok {
		return &ValidationError{Name: "fallback_used", err: errors.New(`ent: missing required field "MenuItem.fallback_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MenuItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MenuItem.updated_at"`)}
	}
	if _, ok := _c.mutation.TranslateStatus(); !ok {
		return &ValidationError{Name: "translate_status", err: errors.New(`ent: missing required field "MenuItem.translate_status"`)}
	}
	if v, ok := _c.mutation.TranslateStatus(); ok {
		if err := menuitem.TranslateStatusValidator(v); err != nil {
			return &ValidationError{Name: "translate_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.translate_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TranslateAttempt(); !ok {
		return &ValidationError{Name: "translate_attempt", err: errors.New(`ent: missing required field "MenuItem.translate_attempt"`)}
	}
	if _, ok := _c.mutation.DescribeStatus(); !ok {
		return &ValidationError{Name: "describe_status", err: errors.New(`ent: missing required field "MenuItem.describe_status"`)}
	}
	if v, ok := _c.mutation.DescribeStatus(); ok {
		if err := menuitem.DescribeStatusValidator(v); err != nil {
			return &ValidationError{Name: "describe_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.describe_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DescribeAttempt(); !ok {
		return &ValidationError{Name: "describe_attempt", err: errors.New(`ent: missing required field "MenuItem.describe_attempt"`)}
	}
	if _, ok := _c.mutation.AllergensStatus(); !ok {
		return &ValidationError{Name: "allergens_status", err: errors.New(`ent: missing required field "MenuItem.allergens_status"`)}
	}
	if v, ok := _c.mutation.AllergensStatus(); ok {
		if err := menuitem.AllergensStatusValidator(v); err != nil {
			return &ValidationError{Name: "allergens_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.allergens_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllergensAttempt(); !ok {
		return &ValidationError{Name: "allergens_attempt", err: errors.New(`ent: missing required field "MenuItem.allergens_attempt"`)}
	}
	if _, ok := _c.mutation.IngredientsStatus(); !ok {
		return &ValidationError{Name: "ingredients_status", err: errors.New(`ent: missing required field "MenuItem.ingredients_status"`)}
	}
	if v, ok := _c.mutation.IngredientsStatus(); ok {
		if err := menuitem.IngredientsStatusValidator(v); err != nil {
			return &ValidationError{Name: "ingredients_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.ingredients_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IngredientsAttempt(); !ok {
		return &ValidationError{Name: "ingredients_attempt", err: errors.New(`ent: missing required field "MenuItem.ingredients_attempt"`)}
	}
	if _, ok := _c.mutation.ImageStatus(); !ok {
		return &ValidationError{Name: "image_status", err: errors.New(`ent: missing required field "MenuItem.image_status"`)}
	}
	if v, ok := _c.mutation.ImageStatus(); ok {
		if err := menuitem.ImageStatusValidator(v); err != nil {
			return &ValidationError{Name: "image_status", err: fmt.Errorf(`ent: validator failed for field "MenuItem.image_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImageAttempt(); !ok {
		return &ValidationError{Name: "image_attempt", err: errors.New(`ent: missing required field "MenuItem.image_attempt"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "MenuItem.session"`)}
	}
	return nil
}

func (_c *MenuItemCreate) sqlSave(ctx context.Context) (*MenuItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MenuItemCreate) createSpec() (*MenuItem, *sqlgraph.CreateSpec) {
	var (
		_node = &MenuItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(menuitem.Table, sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemIndex(); ok {
		_spec.SetField(menuitem.FieldItemIndex, field.TypeInt, value)
		_node.ItemIndex = value
	}
	if value, ok := _c.mutation.SourceText(); ok {
		_spec.SetField(menuitem.FieldSourceText, field.TypeString, value)
		_node.SourceText = value
	}
	if value, ok := _c.mutation.Box(); ok {
		_spec.SetField(menuitem.FieldBox, field.TypeJSON, value)
		_node.Box = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(menuitem.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(menuitem.FieldPrice, field.TypeString, value)
		_node.Price = &value
	}
	if value, ok := _c.mutation.EnglishText(); ok {
		_spec.SetField(menuitem.FieldEnglishText, field.TypeString, value)
		_node.EnglishText = &value
	}
	if value, ok := _c.mutation.FallbackUsed(); ok {
		_spec.SetField(menuitem.FieldFallbackUsed, field.TypeBool, value)
		_node.FallbackUsed = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(menuitem.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.AllergenEntries(); ok {
		_spec.SetField(menuitem.FieldAllergenEntries, field.TypeJSON, value)
		_node.AllergenEntries = value
	}
	if value, ok := _c.mutation.IngredientEntries(); ok {
		_spec.SetField(menuitem.FieldIngredientEntries, field.TypeJSON, value)
		_node.IngredientEntries = value
	}
	if value, ok := _c.mutation.ImageRef(); ok {
		_spec.SetField(menuitem.FieldImageRef, field.TypeString, value)
		_node.ImageRef = &value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(menuitem.FieldImagePath, field.TypeString, value)
		_node.ImagePath = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(menuitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(menuitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TranslateStatus(); ok {
		_spec.SetField(menuitem.FieldTranslateStatus, field.TypeEnum, value)
		_node.TranslateStatus = value
	}
	if value, ok := _c.mutation.TranslateAttempt(); ok {
		_spec.SetField(menuitem.FieldTranslateAttempt, field.TypeInt, value)
		_node.TranslateAttempt = value
	}
	if value, ok := _c.mutation.TranslateError(); ok {
		_spec.SetField(menuitem.FieldTranslateError, field.TypeString, value)
		_node.TranslateError = &value
	}
	if value, ok := _c.mutation.DescribeStatus(); ok {
		_spec.SetField(menuitem.FieldDescribeStatus, field.TypeEnum, value)
		_node.DescribeStatus = value
	}
	if value, ok := _c.mutation.DescribeAttempt(); ok {
		_spec.SetField(menuitem.FieldDescribeAttempt, field.TypeInt, value)
		_node.DescribeAttempt = value
	}
	if value, ok := _c.mutation.DescribeError(); ok {
		_spec.SetField(menuitem.FieldDescribeError, field.TypeString, value)
		_node.DescribeError = &value
	}
	if value, ok := _c.mutation.AllergensStatus(); ok {
		_spec.SetField(menuitem.FieldAllergensStatus, field.TypeEnum, value)
		_node.AllergensStatus = value
	}
	if value, ok := _c.mutation.AllergensAttempt(); ok {
		_spec.SetField(menuitem.FieldAllergensAttempt, field.TypeInt, value)
		_node.AllergensAttempt = value
	}
	if value, ok := _c.mutation.AllergensError(); ok {
		_spec.SetField(menuitem.FieldAllergensError, field.TypeString, value)
		_node.AllergensError = &value
	}
	if value, ok := _c.mutation.IngredientsStatus(); ok {
		_spec.SetField(menuitem.FieldIngredientsStatus, field.TypeEnum, value)
		_node.IngredientsStatus = value
	}
	if value, ok := _c.mutation.IngredientsAttempt(); ok {
		_spec.SetField(menuitem.FieldIngredientsAttempt, field.TypeInt, value)
		_node.IngredientsAttempt = value
	}
	if value, ok := _c.mutation.IngredientsError(); ok {
		_spec.SetField(menuitem.FieldIngredientsError, field.TypeString, value)
		_node.IngredientsError = &value
	}
	if value, ok := _c.mutation.ImageStatus(); ok {
		_spec.SetField(menuitem.FieldImageStatus, field.TypeEnum, value)
		_node.ImageStatus = value
	}
	if value, ok := _c.mutation.ImageAttempt(); ok {
		_spec.SetField(menuitem.FieldImageAttempt, field.TypeInt, value)
		_node.ImageAttempt = value
	}
	if value, ok := _c.mutation.ImageError(); ok {
		_spec.SetField(menuitem.FieldImageError, field.TypeString, value)
		_node.ImageError = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   menuitem.SessionTable,
			Columns: []string{menuitem.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(menusession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MenuItemCreateBulk is the builder for creating many MenuItem entities in bulk.
type MenuItemCreateBulk struct {
	config
	err      error
	builders []*MenuItemCreate
}

// Save creates the MenuItem entities in the database.
func (_c *MenuItemCreateBulk) Save(ctx context.Context) ([]*MenuItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MenuItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MenuItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MenuItemCreateBulk) SaveX(ctx context.Context) []*MenuItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MenuItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MenuItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
