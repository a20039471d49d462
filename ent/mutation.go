// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kaiseki-io/kaiseki/ent/menuitem"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/ent/pipelineevent"
	"github.com/kaiseki-io/kaiseki/ent/predicate"
	"github.com/kaiseki-io/kaiseki/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeMenuItem      = "MenuItem"
	TypeMenuSession   = "MenuSession"
	TypePipelineEvent = "PipelineEvent"
	TypeTask          = "Task"
)

// MenuItemMutation represents an operation that mutates the MenuItem nodes in the graph.
type MenuItemMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	item_index               *int
	additem_index            *int
	source_text              *string
	box                      *[][2]int
	appendbox                [][2]int
	category                 *string
	price                    *string
	english_text             *string
	fallback_used            *bool
	description              *string
	allergen_entries         *[]map[string]interface{}
	appendallergen_entries   []map[string]interface{}
	ingredient_entries       *[]map[string]interface{}
	appendingredient_entries []map[string]interface{}
	image_ref                *string
	image_path               *string
	created_at               *time.Time
	updated_at               *time.Time
	translate_status         *menuitem.TranslateStatus
	translate_attempt        *int
	addtranslate_attempt     *int
	translate_error          *string
	describe_status          *menuitem.DescribeStatus
	describe_attempt         *int
	adddescribe_attempt      *int
	describe_error           *string
	allergens_status         *menuitem.AllergensStatus
	allergens_attempt        *int
	addallergens_attempt     *int
	allergens_error          *string
	ingredients_status       *menuitem.IngredientsStatus
	ingredients_attempt      *int
	addingredients_attempt   *int
	ingredients_error        *string
	image_status             *menuitem.ImageStatus
	image_attempt            *int
	addimage_attempt         *int
	image_error              *string
	clearedFields            map[string]struct{}
	session                  *string
	clearedsession           bool
	done                     bool
	oldValue                 func(context.Context) (*MenuItem, error)
	predicates               []predicate.MenuItem
}

var _ ent.Mutation = (*MenuItemMutation)(nil)

// menuitemOption allows management of the mutation configuration using functional options.
type menuitemOption func(*MenuItemMutation)

// newMenuItemMutation creates new mutation for the MenuItem entity.
func newMenuItemMutation(c config, op Op, opts ...menuitemOption) *MenuItemMutation {
	m := &MenuItemMutation{
		config:        c,
		op:            op,
		typ:           TypeMenuItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMenuItemID sets the ID field of the mutation.
func withMenuItemID(id int) menuitemOption {
	return func(m *MenuItemMutation) {
		var (
			err   error
			once  sync.Once
			value *MenuItem
		)
		m.oldValue = func(ctx context.Context) (*MenuItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MenuItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMenuItem sets the old MenuItem of the mutation.
func withMenuItem(node *MenuItem) menuitemOption {
	return func(m *MenuItemMutation) {
		m.oldValue = func(context.Context) (*MenuItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MenuItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MenuItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MenuItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MenuItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MenuItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MenuItemMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MenuItemMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MenuItemMutation) ResetSessionID() {
	m.session = nil
}

// SetItemIndex sets the "item_index" field.
func (m *MenuItemMutation) SetItemIndex(i int) {
	m.item_index = &i
	m.additem_index = nil
}

// ItemIndex returns the value of the "item_index" field in the mutation.
func (m *MenuItemMutation) ItemIndex() (r int, exists bool) {
	v := m.item_index
	if v == nil {
		return
	}
	return *v, true
}

// OldItemIndex returns the old "item_index" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldItemIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemIndex: %w", err)
	}
	return oldValue.ItemIndex, nil
}

// AddItemIndex adds i to the "item_index" field.
func (m *MenuItemMutation) AddItemIndex(i int) {
	if m.additem_index != nil {
		*m.additem_index += i
	} else {
		m.additem_index = &i
	}
}

// AddedItemIndex returns the value that was added to the "item_index" field in this mutation.
func (m *MenuItemMutation) AddedItemIndex() (r int, exists bool) {
	v := m.additem_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemIndex resets all changes to the "item_index" field.
func (m *MenuItemMutation) ResetItemIndex() {
	m.item_index = nil
	m.additem_index = nil
}

// SetSourceText sets the "source_text" field.
func (m *MenuItemMutation) SetSourceText(s string) {
	m.source_text = &s
}

// SourceText returns the value of the "source_text" field in the mutation.
func (m *MenuItemMutation) SourceText() (r string, exists bool) {
	v := m.source_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceText returns the old "source_text" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldSourceText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceText: %w", err)
	}
	return oldValue.SourceText, nil
}

// ResetSourceText resets all changes to the "source_text" field.
func (m *MenuItemMutation) ResetSourceText() {
	m.source_text = nil
}

// SetBox sets the "box" field.
func (m *MenuItemMutation) SetBox(i [][2]int) {
	m.box = &i
	m.appendbox = nil
}

// Box returns the value of the "box" field in the mutation.
func (m *MenuItemMutation) Box() (r [][2]int, exists bool) {
	v := m.box
	if v == nil {
		return
	}
	return *v, true
}

// OldBox returns the old "box" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldBox(ctx context.Context) (v [][2]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBox is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBox requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBox: %w", err)
	}
	return oldValue.Box, nil
}

// AppendBox adds i to the "box" field.
func (m *MenuItemMutation) AppendBox(i [][2]int) {
	m.appendbox = append(m.appendbox, i...)
}

// AppendedBox returns the list of values that were appended to the "box" field in this mutation.
func (m *MenuItemMutation) AppendedBox() ([][2]int, bool) {
	if len(m.appendbox) == 0 {
		return nil, false
	}
	return m.appendbox, true
}

// ClearBox clears the value of the "box" field.
func (m *MenuItemMutation) ClearBox() {
	m.box = nil
	m.appendbox = nil
	m.clearedFields[menuitem.FieldBox] = struct{}{}
}

// BoxCleared returns if the "box" field was cleared in this mutation.
func (m *MenuItemMutation) BoxCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldBox]
	return ok
}

// ResetBox resets all changes to the "box" field.
func (m *MenuItemMutation) ResetBox() {
	m.box = nil
	m.appendbox = nil
	delete(m.clearedFields, menuitem.FieldBox)
}

// SetCategory sets the "category" field.
func (m *MenuItemMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *MenuItemMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *MenuItemMutation) ResetCategory() {
	m.category = nil
}

// SetPrice sets the "price" field.
func (m *MenuItemMutation) SetPrice(s string) {
	m.price = &s
}

// Price returns the value of the "price" field in the mutation.
func (m *MenuItemMutation) Price() (r string, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldPrice(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// ClearPrice clears the value of the "price" field.
func (m *MenuItemMutation) ClearPrice() {
	m.price = nil
	m.clearedFields[menuitem.FieldPrice] = struct{}{}
}

// PriceCleared returns if the "price" field was cleared in this mutation.
func (m *MenuItemMutation) PriceCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldPrice]
	return ok
}

// ResetPrice resets all changes to the "price" field.
func (m *MenuItemMutation) ResetPrice() {
	m.price = nil
	delete(m.clearedFields, menuitem.FieldPrice)
}

// SetEnglishText sets the "english_text" field.
func (m *MenuItemMutation) SetEnglishText(s string) {
	m.english_text = &s
}

// EnglishText returns the value of the "english_text" field in the mutation.
func (m *MenuItemMutation) EnglishText() (r string, exists bool) {
	v := m.english_text
	if v == nil {
		return
	}
	return *v, true
}

// OldEnglishText returns the old "english_text" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldEnglishText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnglishText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnglishText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnglishText: %w", err)
	}
	return oldValue.EnglishText, nil
}

// ClearEnglishText clears the value of the "english_text" field.
func (m *MenuItemMutation) ClearEnglishText() {
	m.english_text = nil
	m.clearedFields[menuitem.FieldEnglishText] = struct{}{}
}

// EnglishTextCleared returns if the "english_text" field was cleared in this mutation.
func (m *MenuItemMutation) EnglishTextCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldEnglishText]
	return ok
}

// ResetEnglishText resets all changes to the "english_text" field.
func (m *MenuItemMutation) ResetEnglishText() {
	m.english_text = nil
	delete(m.clearedFields, menuitem.FieldEnglishText)
}

// SetFallbackUsed sets the "fallback_used" field.
func (m *MenuItemMutation) SetFallbackUsed(b bool) {
	m.fallback_used = &b
}

// FallbackUsed returns the value of the "fallback_used" field in the mutation.
func (m *MenuItemMutation) FallbackUsed() (r bool, exists bool) {
	v := m.fallback_used
	if v == nil {
		return
	}
	return *v, true
}

// OldFallbackUsed returns the old "fallback_used" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldFallbackUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallbackUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallbackUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallbackUsed: %w", err)
	}
	return oldValue.FallbackUsed, nil
}

// ResetFallbackUsed resets all changes to the "fallback_used" field.
func (m *MenuItemMutation) ResetFallbackUsed() {
	m.fallback_used = nil
}

// SetDescription sets the "description" field.
func (m *MenuItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MenuItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MenuItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[menuitem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MenuItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MenuItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, menuitem.FieldDescription)
}

// SetAllergenEntries sets the "allergen_entries" field.
func (m *MenuItemMutation) SetAllergenEntries(value []map[string]interface{}) {
	m.allergen_entries = &value
	m.appendallergen_entries = nil
}

// AllergenEntries returns the value of the "allergen_entries" field in the mutation.
func (m *MenuItemMutation) AllergenEntries() (r []map[string]interface{}, exists bool) {
	v := m.allergen_entries
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergenEntries returns the old "allergen_entries" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldAllergenEntries(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergenEntries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergenEntries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergenEntries: %w", err)
	}
	return oldValue.AllergenEntries, nil
}

// AppendAllergenEntries adds value to the "allergen_entries" field.
func (m *MenuItemMutation) AppendAllergenEntries(value []map[string]interface{}) {
	m.appendallergen_entries = append(m.appendallergen_entries, value...)
}

// AppendedAllergenEntries returns the list of values that were appended to the "allergen_entries" field in this mutation.
func (m *MenuItemMutation) AppendedAllergenEntries() ([]map[string]interface{}, bool) {
	if len(m.appendallergen_entries) == 0 {
		return nil, false
	}
	return m.appendallergen_entries, true
}

// ClearAllergenEntries clears the value of the "allergen_entries" field.
func (m *MenuItemMutation) ClearAllergenEntries() {
	m.allergen_entries = nil
	m.appendallergen_entries = nil
	m.clearedFields[menuitem.FieldAllergenEntries] = struct{}{}
}

// AllergenEntriesCleared returns if the "allergen_entries" field was cleared in this mutation.
func (m *MenuItemMutation) AllergenEntriesCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldAllergenEntries]
	return ok
}

// ResetAllergenEntries resets all changes to the "allergen_entries" field.
func (m *MenuItemMutation) ResetAllergenEntries() {
	m.allergen_entries = nil
	m.appendallergen_entries = nil
	delete(m.clearedFields, menuitem.FieldAllergenEntries)
}

// SetIngredientEntries sets the "ingredient_entries" field.
func (m *MenuItemMutation) SetIngredientEntries(value []map[string]interface{}) {
	m.ingredient_entries = &value
	m.appendingredient_entries = nil
}

// IngredientEntries returns the value of the "ingredient_entries" field in the mutation.
func (m *MenuItemMutation) IngredientEntries() (r []map[string]interface{}, exists bool) {
	v := m.ingredient_entries
	if v == nil {
		return
	}
	return *v, true
}

// OldIngredientEntries returns the old "ingredient_entries" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIngredientEntries(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngredientEntries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngredientEntries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngredientEntries: %w", err)
	}
	return oldValue.IngredientEntries, nil
}

// AppendIngredientEntries adds value to the "ingredient_entries" field.
func (m *MenuItemMutation) AppendIngredientEntries(value []map[string]interface{}) {
	m.appendingredient_entries = append(m.appendingredient_entries, value...)
}

// AppendedIngredientEntries returns the list of values that were appended to the "ingredient_entries" field in this mutation.
func (m *MenuItemMutation) AppendedIngredientEntries() ([]map[string]interface{}, bool) {
	if len(m.appendingredient_entries) == 0 {
		return nil, false
	}
	return m.appendingredient_entries, true
}

// ClearIngredientEntries clears the value of the "ingredient_entries" field.
func (m *MenuItemMutation) ClearIngredientEntries() {
	m.ingredient_entries = nil
	m.appendingredient_entries = nil
	m.clearedFields[menuitem.FieldIngredientEntries] = struct{}{}
}

// IngredientEntriesCleared returns if the "ingredient_entries" field was cleared in this mutation.
func (m *MenuItemMutation) IngredientEntriesCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldIngredientEntries]
	return ok
}

// ResetIngredientEntries resets all changes to the "ingredient_entries" field.
func (m *MenuItemMutation) ResetIngredientEntries() {
	m.ingredient_entries = nil
	m.appendingredient_entries = nil
	delete(m.clearedFields, menuitem.FieldIngredientEntries)
}

// SetImageRef sets the "image_ref" field.
func (m *MenuItemMutation) SetImageRef(s string) {
	m.image_ref = &s
}

// ImageRef returns the value of the "image_ref" field in the mutation.
func (m *MenuItemMutation) ImageRef() (r string, exists bool) {
	v := m.image_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldImageRef returns the old "image_ref" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldImageRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageRef: %w", err)
	}
	return oldValue.ImageRef, nil
}

// ClearImageRef clears the value of the "image_ref" field.
func (m *MenuItemMutation) ClearImageRef() {
	m.image_ref = nil
	m.clearedFields[menuitem.FieldImageRef] = struct{}{}
}

// ImageRefCleared returns if the "image_ref" field was cleared in this mutation.
func (m *MenuItemMutation) ImageRefCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldImageRef]
	return ok
}

// ResetImageRef resets all changes to the "image_ref" field.
func (m *MenuItemMutation) ResetImageRef() {
	m.image_ref = nil
	delete(m.clearedFields, menuitem.FieldImageRef)
}

// SetImagePath sets the "image_path" field.
func (m *MenuItemMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *MenuItemMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldImagePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ClearImagePath clears the value of the "image_path" field.
func (m *MenuItemMutation) ClearImagePath() {
	m.image_path = nil
	m.clearedFields[menuitem.FieldImagePath] = struct{}{}
}

// ImagePathCleared returns if the "image_path" field was cleared in this mutation.
func (m *MenuItemMutation) ImagePathCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldImagePath]
	return ok
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *MenuItemMutation) ResetImagePath() {
	m.image_path = nil
	delete(m.clearedFields, menuitem.FieldImagePath)
}

// SetCreatedAt sets the "created_at" field.
func (m *MenuItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MenuItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MenuItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MenuItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MenuItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MenuItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTranslateStatus sets the "translate_status" field.
func (m *MenuItemMutation) SetTranslateStatus(ms menuitem.TranslateStatus) {
	m.translate_status = &ms
}

// TranslateStatus returns the value of the "translate_status" field in the mutation.
func (m *MenuItemMutation) TranslateStatus() (r menuitem.TranslateStatus, exists bool) {
	v := m.translate_status
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslateStatus returns the old "translate_status" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldTranslateStatus(ctx context.Context) (v menuitem.TranslateStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslateStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslateStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslateStatus: %w", err)
	}
	return oldValue.TranslateStatus, nil
}

// ResetTranslateStatus resets all changes to the "translate_status" field.
func (m *MenuItemMutation) ResetTranslateStatus() {
	m.translate_status = nil
}

// SetTranslateAttempt sets the "translate_attempt" field.
func (m *MenuItemMutation) SetTranslateAttempt(i int) {
	m.translate_attempt = &i
	m.addtranslate_attempt = nil
}

// TranslateAttempt returns the value of the "translate_attempt" field in the mutation.
func (m *MenuItemMutation) TranslateAttempt() (r int, exists bool) {
	v := m.translate_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslateAttempt returns the old "translate_attempt" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldTranslateAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslateAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslateAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslateAttempt: %w", err)
	}
	return oldValue.TranslateAttempt, nil
}

// AddTranslateAttempt adds i to the "translate_attempt" field.
func (m *MenuItemMutation) AddTranslateAttempt(i int) {
	if m.addtranslate_attempt != nil {
		*m.addtranslate_attempt += i
	} else {
		m.addtranslate_attempt = &i
	}
}

// AddedTranslateAttempt returns the value that was added to the "translate_attempt" field in this mutation.
func (m *MenuItemMutation) AddedTranslateAttempt() (r int, exists bool) {
	v := m.addtranslate_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetTranslateAttempt resets all changes to the "translate_attempt" field.
func (m *MenuItemMutation) ResetTranslateAttempt() {
	m.translate_attempt = nil
	m.addtranslate_attempt = nil
}

// SetTranslateError sets the "translate_error" field.
func (m *MenuItemMutation) SetTranslateError(s string) {
	m.translate_error = &s
}

// TranslateError returns the value of the "translate_error" field in the mutation.
func (m *MenuItemMutation) TranslateError() (r string, exists bool) {
	v := m.translate_error
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslateError returns the old "translate_error" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldTranslateError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslateError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslateError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslateError: %w", err)
	}
	return oldValue.TranslateError, nil
}

// ClearTranslateError clears the value of the "translate_error" field.
func (m *MenuItemMutation) ClearTranslateError() {
	m.translate_error = nil
	m.clearedFields[menuitem.FieldTranslateError] = struct{}{}
}

// TranslateErrorCleared returns if the "translate_error" field was cleared in this mutation.
func (m *MenuItemMutation) TranslateErrorCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldTranslateError]
	return ok
}

// ResetTranslateError resets all changes to the "translate_error" field.
func (m *MenuItemMutation) ResetTranslateError() {
	m.translate_error = nil
	delete(m.clearedFields, menuitem.FieldTranslateError)
}

// SetDescribeStatus sets the "describe_status" field.
func (m *MenuItemMutation) SetDescribeStatus(ms menuitem.DescribeStatus) {
	m.describe_status = &ms
}

// DescribeStatus returns the value of the "describe_status" field in the mutation.
func (m *MenuItemMutation) DescribeStatus() (r menuitem.DescribeStatus, exists bool) {
	v := m.describe_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDescribeStatus returns the old "describe_status" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldDescribeStatus(ctx context.Context) (v menuitem.DescribeStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescribeStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescribeStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescribeStatus: %w", err)
	}
	return oldValue.DescribeStatus, nil
}

// ResetDescribeStatus resets all changes to the "describe_status" field.
func (m *MenuItemMutation) ResetDescribeStatus() {
	m.describe_status = nil
}

// SetDescribeAttempt sets the "describe_attempt" field.
func (m *MenuItemMutation) SetDescribeAttempt(i int) {
	m.describe_attempt = &i
	m.adddescribe_attempt = nil
}

// DescribeAttempt returns the value of the "describe_attempt" field in the mutation.
func (m *MenuItemMutation) DescribeAttempt() (r int, exists bool) {
	v := m.describe_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldDescribeAttempt returns the old "describe_attempt" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldDescribeAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescribeAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescribeAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescribeAttempt: %w", err)
	}
	return oldValue.DescribeAttempt, nil
}

// AddDescribeAttempt adds i to the "describe_attempt" field.
func (m *MenuItemMutation) AddDescribeAttempt(i int) {
	if m.adddescribe_attempt != nil {
		*m.adddescribe_attempt += i
	} else {
		m.adddescribe_attempt = &i
	}
}

// AddedDescribeAttempt returns the value that was added to the "describe_attempt" field in this mutation.
func (m *MenuItemMutation) AddedDescribeAttempt() (r int, exists bool) {
	v := m.adddescribe_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetDescribeAttempt resets all changes to the "describe_attempt" field.
func (m *MenuItemMutation) ResetDescribeAttempt() {
	m.describe_attempt = nil
	m.adddescribe_attempt = nil
}

// SetDescribeError sets the "describe_error" field.
func (m *MenuItemMutation) SetDescribeError(s string) {
	m.describe_error = &s
}

// DescribeError returns the value of the "describe_error" field in the mutation.
func (m *MenuItemMutation) DescribeError() (r string, exists bool) {
	v := m.describe_error
	if v == nil {
		return
	}
	return *v, true
}

// OldDescribeError returns the old "describe_error" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldDescribeError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescribeError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescribeError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescribeError: %w", err)
	}
	return oldValue.DescribeError, nil
}

// ClearDescribeError clears the value of the "describe_error" field.
func (m *MenuItemMutation) ClearDescribeError() {
	m.describe_error = nil
	m.clearedFields[menuitem.FieldDescribeError] = struct{}{}
}

// DescribeErrorCleared returns if the "describe_error" field was cleared in this mutation.
func (m *MenuItemMutation) DescribeErrorCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldDescribeError]
	return ok
}

// ResetDescribeError resets all changes to the "describe_error" field.
func (m *MenuItemMutation) ResetDescribeError() {
	m.describe_error = nil
	delete(m.clearedFields, menuitem.FieldDescribeError)
}

// SetAllergensStatus sets the "allergens_status" field.
func (m *MenuItemMutation) SetAllergensStatus(ms menuitem.AllergensStatus) {
	m.allergens_status = &ms
}

// AllergensStatus returns the value of the "allergens_status" field in the mutation.
func (m *MenuItemMutation) AllergensStatus() (r menuitem.AllergensStatus, exists bool) {
	v := m.allergens_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergensStatus returns the old "allergens_status" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldAllergensStatus(ctx context.Context) (v menuitem.AllergensStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergensStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergensStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergensStatus: %w", err)
	}
	return oldValue.AllergensStatus, nil
}

// ResetAllergensStatus resets all changes to the "allergens_status" field.
func (m *MenuItemMutation) ResetAllergensStatus() {
	m.allergens_status = nil
}

// SetAllergensAttempt sets the "allergens_attempt" field.
func (m *MenuItemMutation) SetAllergensAttempt(i int) {
	m.allergens_attempt = &i
	m.addallergens_attempt = nil
}

// AllergensAttempt returns the value of the "allergens_attempt" field in the mutation.
func (m *MenuItemMutation) AllergensAttempt() (r int, exists bool) {
	v := m.allergens_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergensAttempt returns the old "allergens_attempt" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldAllergensAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergensAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergensAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergensAttempt: %w", err)
	}
	return oldValue.AllergensAttempt, nil
}

// AddAllergensAttempt adds i to the "allergens_attempt" field.
func (m *MenuItemMutation) AddAllergensAttempt(i int) {
	if m.addallergens_attempt != nil {
		*m.addallergens_attempt += i
	} else {
		m.addallergens_attempt = &i
	}
}

// AddedAllergensAttempt returns the value that was added to the "allergens_attempt" field in this mutation.
func (m *MenuItemMutation) AddedAllergensAttempt() (r int, exists bool) {
	v := m.addallergens_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAllergensAttempt resets all changes to the "allergens_attempt" field.
func (m *MenuItemMutation) ResetAllergensAttempt() {
	m.allergens_attempt = nil
	m.addallergens_attempt = nil
}

// SetAllergensError sets the "allergens_error" field.
func (m *MenuItemMutation) SetAllergensError(s string) {
	m.allergens_error = &s
}

// AllergensError returns the value of the "allergens_error" field in the mutation.
func (m *MenuItemMutation) AllergensError() (r string, exists bool) {
	v := m.allergens_error
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergensError returns the old "allergens_error" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldAllergensError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergensError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergensError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergensError: %w", err)
	}
	return oldValue.AllergensError, nil
}

// ClearAllergensError clears the value of the "allergens_error" field.
func (m *MenuItemMutation) ClearAllergensError() {
	m.allergens_error = nil
	m.clearedFields[menuitem.FieldAllergensError] = struct{}{}
}

// AllergensErrorCleared returns if the "allergens_error" field was cleared in this mutation.
func (m *MenuItemMutation) AllergensErrorCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldAllergensError]
	return ok
}

// ResetAllergensError resets all changes to the "allergens_error" field.
func (m *MenuItemMutation) ResetAllergensError() {
	m.allergens_error = nil
	delete(m.clearedFields, menuitem.FieldAllergensError)
}

// SetIngredientsStatus sets the "ingredients_status" field.
func (m *MenuItemMutation) SetIngredientsStatus(ms menuitem.IngredientsStatus) {
	m.ingredients_status = &ms
}

// IngredientsStatus returns the value of the "ingredients_status" field in the mutation.
func (m *MenuItemMutation) IngredientsStatus() (r menuitem.IngredientsStatus, exists bool) {
	v := m.ingredients_status
	if v == nil {
		return
	}
	return *v, true
}

// OldIngredientsStatus returns the old "ingredients_status" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIngredientsStatus(ctx context.Context) (v menuitem.IngredientsStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngredientsStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngredientsStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngredientsStatus: %w", err)
	}
	return oldValue.IngredientsStatus, nil
}

// ResetIngredientsStatus resets all changes to the "ingredients_status" field.
func (m *MenuItemMutation) ResetIngredientsStatus() {
	m.ingredients_status = nil
}

// SetIngredientsAttempt sets the "ingredients_attempt" field.
func (m *MenuItemMutation) SetIngredientsAttempt(i int) {
	m.ingredients_attempt = &i
	m.addingredients_attempt = nil
}

// IngredientsAttempt returns the value of the "ingredients_attempt" field in the mutation.
func (m *MenuItemMutation) IngredientsAttempt() (r int, exists bool) {
	v := m.ingredients_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldIngredientsAttempt returns the old "ingredients_attempt" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIngredientsAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngredientsAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngredientsAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngredientsAttempt: %w", err)
	}
	return oldValue.IngredientsAttempt, nil
}

// AddIngredientsAttempt adds i to the "ingredients_attempt" field.
func (m *MenuItemMutation) AddIngredientsAttempt(i int) {
	if m.addingredients_attempt != nil {
		*m.addingredients_attempt += i
	} else {
		m.addingredients_attempt = &i
	}
}

// AddedIngredientsAttempt returns the value that was added to the "ingredients_attempt" field in this mutation.
func (m *MenuItemMutation) AddedIngredientsAttempt() (r int, exists bool) {
	v := m.addingredients_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetIngredientsAttempt resets all changes to the "ingredients_attempt" field.
func (m *MenuItemMutation) ResetIngredientsAttempt() {
	m.ingredients_attempt = nil
	m.addingredients_attempt = nil
}

// SetIngredientsError sets the "ingredients_error" field.
func (m *MenuItemMutation) SetIngredientsError(s string) {
	m.ingredients_error = &s
}

// IngredientsError returns the value of the "ingredients_error" field in the mutation.
func (m *MenuItemMutation) IngredientsError() (r string, exists bool) {
	v := m.ingredients_error
	if v == nil {
		return
	}
	return *v, true
}

// OldIngredientsError returns the old "ingredients_error" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIngredientsError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngredientsError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngredientsError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngredientsError: %w", err)
	}
	return oldValue.IngredientsError, nil
}

// ClearIngredientsError clears the value of the "ingredients_error" field.
func (m *MenuItemMutation) ClearIngredientsError() {
	m.ingredients_error = nil
	m.clearedFields[menuitem.FieldIngredientsError] = struct{}{}
}

// IngredientsErrorCleared returns if the "ingredients_error" field was cleared in this mutation.
func (m *MenuItemMutation) IngredientsErrorCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldIngredientsError]
	return ok
}

// ResetIngredientsError resets all changes to the "ingredients_error" field.
func (m *MenuItemMutation) ResetIngredientsError() {
	m.ingredients_error = nil
	delete(m.clearedFields, menuitem.FieldIngredientsError)
}

// SetImageStatus sets the "image_status" field.
func (m *MenuItemMutation) SetImageStatus(ms menuitem.ImageStatus) {
	m.image_status = &ms
}

// ImageStatus returns the value of the "image_status" field in the mutation.
func (m *MenuItemMutation) ImageStatus() (r menuitem.ImageStatus, exists bool) {
	v := m.image_status
	if v == nil {
		return
	}
	return *v, true
}

// OldImageStatus returns the old "image_status" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldImageStatus(ctx context.Context) (v menuitem.ImageStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageStatus: %w", err)
	}
	return oldValue.ImageStatus, nil
}

// ResetImageStatus resets all changes to the "image_status" field.
func (m *MenuItemMutation) ResetImageStatus() {
	m.image_status = nil
}

// SetImageAttempt sets the "image_attempt" field.
func (m *MenuItemMutation) SetImageAttempt(i int) {
	m.image_attempt = &i
	m.addimage_attempt = nil
}

// ImageAttempt returns the value of the "image_attempt" field in the mutation.
func (m *MenuItemMutation) ImageAttempt() (r int, exists bool) {
	v := m.image_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldImageAttempt returns the old "image_attempt" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldImageAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageAttempt: %w", err)
	}
	return oldValue.ImageAttempt, nil
}

// AddImageAttempt adds i to the "image_attempt" field.
func (m *MenuItemMutation) AddImageAttempt(i int) {
	if m.addimage_attempt != nil {
		*m.addimage_attempt += i
	} else {
		m.addimage_attempt = &i
	}
}

// AddedImageAttempt returns the value that was added to the "image_attempt" field in this mutation.
func (m *MenuItemMutation) AddedImageAttempt() (r int, exists bool) {
	v := m.addimage_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetImageAttempt resets all changes to the "image_attempt" field.
func (m *MenuItemMutation) ResetImageAttempt() {
	m.image_attempt = nil
	m.addimage_attempt = nil
}

// SetImageError sets the "image_error" field.
func (m *MenuItemMutation) SetImageError(s string) {
	m.image_error = &s
}

// ImageError returns the value of the "image_error" field in the mutation.
func (m *MenuItemMutation) ImageError() (r string, exists bool) {
	v := m.image_error
	if v == nil {
		return
	}
	return *v, true
}

// OldImageError returns the old "image_error" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldImageError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageError: %w", err)
	}
	return oldValue.ImageError, nil
}

// ClearImageError clears the value of the "image_error" field.
func (m *MenuItemMutation) ClearImageError() {
	m.image_error = nil
	m.clearedFields[menuitem.FieldImageError] = struct{}{}
}

// ImageErrorCleared returns if the "image_error" field was cleared in this mutation.
func (m *MenuItemMutation) ImageErrorCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldImageError]
	return ok
}

// ResetImageError resets all changes to the "image_error" field.
func (m *MenuItemMutation) ResetImageError() {
	m.image_error = nil
	delete(m.clearedFields, menuitem.FieldImageError)
}

// ClearSession clears the "session" edge to the MenuSession entity.
func (m *MenuItemMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[menuitem.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the MenuSession entity was cleared.
func (m *MenuItemMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *MenuItemMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *MenuItemMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the MenuItemMutation builder.
func (m *MenuItemMutation) Where(ps ...predicate.MenuItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MenuItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MenuItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MenuItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MenuItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MenuItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MenuItem).
func (m *MenuItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MenuItemMutation) Fields() []string {
	fields := make([]string, 0, 30)
	if m.session != nil {
		fields = append(fields, menuitem.FieldSessionID)
	}
	if m.item_index != nil {
		fields = append(fields, menuitem.FieldItemIndex)
	}
	if m.source_text != nil {
		fields = append(fields, menuitem.FieldSourceText)
	}
	if m.box != nil {
		fields = append(fields, menuitem.FieldBox)
	}
	if m.category != nil {
		fields = append(fields, menuitem.FieldCategory)
	}
	if m.price != nil {
		fields = append(fields, menuitem.FieldPrice)
	}
	if m.english_text != nil {
		fields = append(fields, menuitem.FieldEnglishText)
	}
	if m.fallback_used != nil {
		fields = append(fields, menuitem.FieldFallbackUsed)
	}
	if m.description != nil {
		fields = append(fields, menuitem.FieldDescription)
	}
	if m.allergen_entries != nil {
		fields = append(fields, menuitem.FieldAllergenEntries)
	}
	if m.ingredient_entries != nil {
		fields = append(fields, menuitem.FieldIngredientEntries)
	}
	if m.image_ref != nil {
		fields = append(fields, menuitem.FieldImageRef)
	}
	if m.image_path != nil {
		fields = append(fields, menuitem.FieldImagePath)
	}
	if m.created_at != nil {
		fields = append(fields, menuitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, menuitem.FieldUpdatedAt)
	}
	if m.translate_status != nil {
		fields = append(fields, menuitem.FieldTranslateStatus)
	}
	if m.translate_attempt != nil {
		fields = append(fields, menuitem.FieldTranslateAttempt)
	}
	if m.translate_error != nil {
		fields = append(fields, menuitem.FieldTranslateError)
	}
	if m.describe_status != nil {
		fields = append(fields, menuitem.FieldDescribeStatus)
	}
	if m.describe_attempt != nil {
		fields = append(fields, menuitem.FieldDescribeAttempt)
	}
	if m.describe_error != nil {
		fields = append(fields, menuitem.FieldDescribeError)
	}
	if m.allergens_status != nil {
		fields = append(fields, menuitem.FieldAllergensStatus)
	}
	if m.allergens_attempt != nil {
		fields = append(fields, menuitem.FieldAllergensAttempt)
	}
	if m.allergens_error != nil {
		fields = append(fields, menuitem.FieldAllergensError)
	}
	if m.ingredients_status != nil {
		fields = append(fields, menuitem.FieldIngredientsStatus)
	}
	if m.ingredients_attempt != nil {
		fields = append(fields, menuitem.FieldIngredientsAttempt)
	}
	if m.ingredients_error != nil {
		fields = append(fields, menuitem.FieldIngredientsError)
	}
	if m.image_status != nil {
		fields = append(fields, menuitem.FieldImageStatus)
	}
	if m.image_attempt != nil {
		fields = append(fields, menuitem.FieldImageAttempt)
	}
	if m.image_error != nil {
		fields = append(fields, menuitem.FieldImageError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MenuItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case menuitem.FieldSessionID:
		return m.SessionID()
	case menuitem.FieldItemIndex:
		return m.ItemIndex()
	case menuitem.FieldSourceText:
		return m.SourceText()
	case menuitem.FieldBox:
		return m.Box()
	case menuitem.FieldCategory:
		return m.Category()
	case menuitem.FieldPrice:
		return m.Price()
	case menuitem.FieldEnglishText:
		return m.EnglishText()
	case menuitem.FieldFallbackUsed:
		return m.FallbackUsed()
	case menuitem.FieldDescription:
		return m.Description()
	case menuitem.FieldAllergenEntries:
		return m.AllergenEntries()
	case menuitem.FieldIngredientEntries:
		return m.IngredientEntries()
	case menuitem.FieldImageRef:
		return m.ImageRef()
	case menuitem.FieldImagePath:
		return m.ImagePath()
	case menuitem.FieldCreatedAt:
		return m.CreatedAt()
	case menuitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case menuitem.FieldTranslateStatus:
		return m.TranslateStatus()
	case menuitem.FieldTranslateAttempt:
		return m.TranslateAttempt()
	case menuitem.FieldTranslateError:
		return m.TranslateError()
	case menuitem.FieldDescribeStatus:
		return m.DescribeStatus()
	case menuitem.FieldDescribeAttempt:
		return m.DescribeAttempt()
	case menuitem.FieldDescribeError:
		return m.DescribeError()
	case menuitem.FieldAllergensStatus:
		return m.AllergensStatus()
	case menuitem.FieldAllergensAttempt:
		return m.AllergensAttempt()
	case menuitem.FieldAllergensError:
		return m.AllergensError()
	case menuitem.FieldIngredientsStatus:
		return m.IngredientsStatus()
	case menuitem.FieldIngredientsAttempt:
		return m.IngredientsAttempt()
	case menuitem.FieldIngredientsError:
		return m.IngredientsError()
	case menuitem.FieldImageStatus:
		return m.ImageStatus()
	case menuitem.FieldImageAttempt:
		return m.ImageAttempt()
	case menuitem.FieldImageError:
		return m.ImageError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MenuItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case menuitem.FieldSessionID:
		return m.OldSessionID(ctx)
	case menuitem.FieldItemIndex:
		return m.OldItemIndex(ctx)
	case menuitem.FieldSourceText:
		return m.OldSourceText(ctx)
	case menuitem.FieldBox:
		return m.OldBox(ctx)
	case menuitem.FieldCategory:
		return m.OldCategory(ctx)
	case menuitem.FieldPrice:
		return m.OldPrice(ctx)
	case menuitem.FieldEnglishText:
		return m.OldEnglishText(ctx)
	case menuitem.FieldFallbackUsed:
		return m.OldFallbackUsed(ctx)
	case menuitem.FieldDescription:
		return m.OldDescription(ctx)
	case menuitem.FieldAllergenEntries:
		return m.OldAllergenEntries(ctx)
	case menuitem.FieldIngredientEntries:
		return m.OldIngredientEntries(ctx)
	case menuitem.FieldImageRef:
		return m.OldImageRef(ctx)
	case menuitem.FieldImagePath:
		return m.OldImagePath(ctx)
	case menuitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case menuitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case menuitem.FieldTranslateStatus:
		return m.OldTranslateStatus(ctx)
	case menuitem.FieldTranslateAttempt:
		return m.OldTranslateAttempt(ctx)
	case menuitem.FieldTranslateError:
		return m.OldTranslateError(ctx)
	case menuitem.FieldDescribeStatus:
		return m.OldDescribeStatus(ctx)
	case menuitem.FieldDescribeAttempt:
		return m.OldDescribeAttempt(ctx)
	case menuitem.FieldDescribeError:
		return m.OldDescribeError(ctx)
	case menuitem.FieldAllergensStatus:
		return m.OldAllergensStatus(ctx)
	case menuitem.FieldAllergensAttempt:
		return m.OldAllergensAttempt(ctx)
	case menuitem.FieldAllergensError:
		return m.OldAllergensError(ctx)
	case menuitem.FieldIngredientsStatus:
		return m.OldIngredientsStatus(ctx)
	case menuitem.FieldIngredientsAttempt:
		return m.OldIngredientsAttempt(ctx)
	case menuitem.FieldIngredientsError:
		return m.OldIngredientsError(ctx)
	case menuitem.FieldImageStatus:
		return m.OldImageStatus(ctx)
	case menuitem.FieldImageAttempt:
		return m.OldImageAttempt(ctx)
	case menuitem.FieldImageError:
		return m.OldImageError(ctx)
	}
	return nil, fmt.Errorf("unknown MenuItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MenuItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case menuitem.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case menuitem.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemIndex(v)
		return nil
	case menuitem.FieldSourceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceText(v)
		return nil
	case menuitem.FieldBox:
		v, ok := value.([][2]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBox(v)
		return nil
	case menuitem.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case menuitem.FieldPrice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case menuitem.FieldEnglishText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnglishText(v)
		return nil
	case menuitem.FieldFallbackUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallbackUsed(v)
		return nil
	case menuitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case menuitem.FieldAllergenEntries:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergenEntries(v)
		return nil
	case menuitem.FieldIngredientEntries:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngredientEntries(v)
		return nil
	case menuitem.FieldImageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageRef(v)
		return nil
	case menuitem.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case menuitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case menuitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case menuitem.FieldTranslateStatus:
		v, ok := value.(menuitem.TranslateStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslateStatus(v)
		return nil
	case menuitem.FieldTranslateAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslateAttempt(v)
		return nil
	case menuitem.FieldTranslateError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslateError(v)
		return nil
	case menuitem.FieldDescribeStatus:
		v, ok := value.(menuitem.DescribeStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescribeStatus(v)
		return nil
	case menuitem.FieldDescribeAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescribeAttempt(v)
		return nil
	case menuitem.FieldDescribeError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescribeError(v)
		return nil
	case menuitem.FieldAllergensStatus:
		v, ok := value.(menuitem.AllergensStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergensStatus(v)
		return nil
	case menuitem.FieldAllergensAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergensAttempt(v)
		return nil
	case menuitem.FieldAllergensError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergensError(v)
		return nil
	case menuitem.FieldIngredientsStatus:
		v, ok := value.(menuitem.IngredientsStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngredientsStatus(v)
		return nil
	case menuitem.FieldIngredientsAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngredientsAttempt(v)
		return nil
	case menuitem.FieldIngredientsError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngredientsError(v)
		return nil
	case menuitem.FieldImageStatus:
		v, ok := value.(menuitem.ImageStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageStatus(v)
		return nil
	case menuitem.FieldImageAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageAttempt(v)
		return nil
	case menuitem.FieldImageError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageError(v)
		return nil
	}
	return fmt.Errorf("unknown MenuItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MenuItemMutation) AddedFields() []string {
	var fields []string
	if m.additem_index != nil {
		fields = append(fields, menuitem.FieldItemIndex)
	}
	if m.addtranslate_attempt != nil {
		fields = append(fields, menuitem.FieldTranslateAttempt)
	}
	if m.adddescribe_attempt != nil {
		fields = append(fields, menuitem.FieldDescribeAttempt)
	}
	if m.addallergens_attempt != nil {
		fields = append(fields, menuitem.FieldAllergensAttempt)
	}
	if m.addingredients_attempt != nil {
		fields = append(fields, menuitem.FieldIngredientsAttempt)
	}
	if m.addimage_attempt != nil {
		fields = append(fields, menuitem.FieldImageAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MenuItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case menuitem.FieldItemIndex:
		return m.AddedItemIndex()
	case menuitem.FieldTranslateAttempt:
		return m.AddedTranslateAttempt()
	case menuitem.FieldDescribeAttempt:
		return m.AddedDescribeAttempt()
	case menuitem.FieldAllergensAttempt:
		return m.AddedAllergensAttempt()
	case menuitem.FieldIngredientsAttempt:
		return m.AddedIngredientsAttempt()
	case menuitem.FieldImageAttempt:
		return m.AddedImageAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MenuItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case menuitem.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemIndex(v)
		return nil
	case menuitem.FieldTranslateAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTranslateAttempt(v)
		return nil
	case menuitem.FieldDescribeAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDescribeAttempt(v)
		return nil
	case menuitem.FieldAllergensAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAllergensAttempt(v)
		return nil
	case menuitem.FieldIngredientsAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIngredientsAttempt(v)
		return nil
	case menuitem.FieldImageAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImageAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown MenuItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MenuItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(menuitem.FieldBox) {
		fields = append(fields, menuitem.FieldBox)
	}
	if m.FieldCleared(menuitem.FieldPrice) {
		fields = append(fields, menuitem.FieldPrice)
	}
	if m.FieldCleared(menuitem.FieldEnglishText) {
		fields = append(fields, menuitem.FieldEnglishText)
	}
	if m.FieldCleared(menuitem.FieldDescription) {
		fields = append(fields, menuitem.FieldDescription)
	}
	if m.FieldCleared(menuitem.FieldAllergenEntries) {
		fields = append(fields, menuitem.FieldAllergenEntries)
	}
	if m.FieldCleared(menuitem.FieldIngredientEntries) {
		fields = append(fields, menuitem.FieldIngredientEntries)
	}
	if m.FieldCleared(menuitem.FieldImageRef) {
		fields = append(fields, menuitem.FieldImageRef)
	}
	if m.FieldCleared(menuitem.FieldImagePath) {
		fields = append(fields, menuitem.FieldImagePath)
	}
	if m.FieldCleared(menuitem.FieldTranslateError) {
		fields = append(fields, menuitem.FieldTranslateError)
	}
	if m.FieldCleared(menuitem.FieldDescribeError) {
		fields = append(fields, menuitem.FieldDescribeError)
	}
	if m.FieldCleared(menuitem.FieldAllergensError) {
		fields = append(fields, menuitem.FieldAllergensError)
	}
	if m.FieldCleared(menuitem.FieldIngredientsError) {
		fields = append(fields, menuitem.FieldIngredientsError)
	}
	if m.FieldCleared(menuitem.FieldImageError) {
		fields = append(fields, menuitem.FieldImageError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MenuItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MenuItemMutation) ClearField(name string) error {
	switch name {
	case menuitem.FieldBox:
		m.ClearBox()
		return nil
	case menuitem.FieldPrice:
		m.ClearPrice()
		return nil
	case menuitem.FieldEnglishText:
		m.ClearEnglishText()
		return nil
	case menuitem.FieldDescription:
		m.ClearDescription()
		return nil
	case menuitem.FieldAllergenEntries:
		m.ClearAllergenEntries()
		return nil
	case menuitem.FieldIngredientEntries:
		m.ClearIngredientEntries()
		return nil
	case menuitem.FieldImageRef:
		m.ClearImageRef()
		return nil
	case menuitem.FieldImagePath:
		m.ClearImagePath()
		return nil
	case menuitem.FieldTranslateError:
		m.ClearTranslateError()
		return nil
	case menuitem.FieldDescribeError:
		m.ClearDescribeError()
		return nil
	case menuitem.FieldAllergensError:
		m.ClearAllergensError()
		return nil
	case menuitem.FieldIngredientsError:
		m.ClearIngredientsError()
		return nil
	case menuitem.FieldImageError:
		m.ClearImageError()
		return nil
	}
	return fmt.Errorf("unknown MenuItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MenuItemMutation) ResetField(name string) error {
	switch name {
	case menuitem.FieldSessionID:
		m.ResetSessionID()
		return nil
	case menuitem.FieldItemIndex:
		m.ResetItemIndex()
		return nil
	case menuitem.FieldSourceText:
		m.ResetSourceText()
		return nil
	case menuitem.FieldBox:
		m.ResetBox()
		return nil
	case menuitem.FieldCategory:
		m.ResetCategory()
		return nil
	case menuitem.FieldPrice:
		m.ResetPrice()
		return nil
	case menuitem.FieldEnglishText:
		m.ResetEnglishText()
		return nil
	case menuitem.FieldFallbackUsed:
		m.ResetFallbackUsed()
		return nil
	case menuitem.FieldDescription:
		m.ResetDescription()
		return nil
	case menuitem.FieldAllergenEntries:
		m.ResetAllergenEntries()
		return nil
	case menuitem.FieldIngredientEntries:
		m.ResetIngredientEntries()
		return nil
	case menuitem.FieldImageRef:
		m.ResetImageRef()
		return nil
	case menuitem.FieldImagePath:
		m.ResetImagePath()
		return nil
	case menuitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case menuitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case menuitem.FieldTranslateStatus:
		m.ResetTranslateStatus()
		return nil
	case menuitem.FieldTranslateAttempt:
		m.ResetTranslateAttempt()
		return nil
	case menuitem.FieldTranslateError:
		m.ResetTranslateError()
		return nil
	case menuitem.FieldDescribeStatus:
		m.ResetDescribeStatus()
		return nil
	case menuitem.FieldDescribeAttempt:
		m.ResetDescribeAttempt()
		return nil
	case menuitem.FieldDescribeError:
		m.ResetDescribeError()
		return nil
	case menuitem.FieldAllergensStatus:
		m.ResetAllergensStatus()
		return nil
	case menuitem.FieldAllergensAttempt:
		m.ResetAllergensAttempt()
		return nil
	case menuitem.FieldAllergensError:
		m.ResetAllergensError()
		return nil
	case menuitem.FieldIngredientsStatus:
		m.ResetIngredientsStatus()
		return nil
	case menuitem.FieldIngredientsAttempt:
		m.ResetIngredientsAttempt()
		return nil
	case menuitem.FieldIngredientsError:
		m.ResetIngredientsError()
		return nil
	case menuitem.FieldImageStatus:
		m.ResetImageStatus()
		return nil
	case menuitem.FieldImageAttempt:
		m.ResetImageAttempt()
		return nil
	case menuitem.FieldImageError:
		m.ResetImageError()
		return nil
	}
	return fmt.Errorf("unknown MenuItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MenuItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, menuitem.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MenuItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case menuitem.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MenuItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MenuItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MenuItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, menuitem.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MenuItemMutation) EdgeCleared(name string) bool {
	switch name {
	case menuitem.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MenuItemMutation) ClearEdge(name string) error {
	switch name {
	case menuitem.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown MenuItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MenuItemMutation) ResetEdge(name string) error {
	switch name {
	case menuitem.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown MenuItem edge %s", name)
}

// MenuSessionMutation represents an operation that mutates the MenuSession nodes in the graph.
type MenuSessionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	upload_ref       *string
	status           *menusession.Status
	total_items      *int
	addtotal_items   *int
	last_seq         *int64
	addlast_seq      *int64
	created_at       *time.Time
	updated_at       *time.Time
	completed_at     *time.Time
	error_message    *string
	cancel_requested *bool
	pod_id           *string
	deleted_at       *time.Time
	clearedFields    map[string]struct{}
	items            map[int]struct{}
	removeditems     map[int]struct{}
	cleareditems     bool
	events           map[int]struct{}
	removedevents    map[int]struct{}
	clearedevents    bool
	tasks            map[string]struct{}
	removedtasks     map[string]struct{}
	clearedtasks     bool
	done             bool
	oldValue         func(context.Context) (*MenuSession, error)
	predicates       []predicate.MenuSession
}

var _ ent.Mutation = (*MenuSessionMutation)(nil)

// menusessionOption allows management of the mutation configuration using functional options.
type menusessionOption func(*MenuSessionMutation)

// newMenuSessionMutation creates new mutation for the MenuSession entity.
func newMenuSessionMutation(c config, op Op, opts ...menusessionOption) *MenuSessionMutation {
	m := &MenuSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeMenuSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMenuSessionID sets the ID field of the mutation.
func withMenuSessionID(id string) menusessionOption {
	return func(m *MenuSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *MenuSession
		)
		m.oldValue = func(ctx context.Context) (*MenuSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MenuSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMenuSession sets the old MenuSession of the mutation.
func withMenuSession(node *MenuSession) menusessionOption {
	return func(m *MenuSessionMutation) {
		m.oldValue = func(context.Context) (*MenuSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MenuSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MenuSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MenuSession entities.
func (m *MenuSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MenuSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MenuSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MenuSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUploadRef sets the "upload_ref" field.
func (m *MenuSessionMutation) SetUploadRef(s string) {
	m.upload_ref = &s
}

// UploadRef returns the value of the "upload_ref" field in the mutation.
func (m *MenuSessionMutation) UploadRef() (r string, exists bool) {
	v := m.upload_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadRef returns the old "upload_ref" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldUploadRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadRef: %w", err)
	}
	return oldValue.UploadRef, nil
}

// ResetUploadRef resets all changes to the "upload_ref" field.
func (m *MenuSessionMutation) ResetUploadRef() {
	m.upload_ref = nil
}

// SetStatus sets the "status" field.
func (m *MenuSessionMutation) SetStatus(value menusession.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MenuSessionMutation) Status() (r menusession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldStatus(ctx context.Context) (v menusession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MenuSessionMutation) ResetStatus() {
	m.status = nil
}

// SetTotalItems sets the "total_items" field.
func (m *MenuSessionMutation) SetTotalItems(i int) {
	m.total_items = &i
	m.addtotal_items = nil
}

// TotalItems returns the value of the "total_items" field in the mutation.
func (m *MenuSessionMutation) TotalItems() (r int, exists bool) {
	v := m.total_items
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalItems returns the old "total_items" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldTotalItems(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalItems: %w", err)
	}
	return oldValue.TotalItems, nil
}

// AddTotalItems adds i to the "total_items" field.
func (m *MenuSessionMutation) AddTotalItems(i int) {
	if m.addtotal_items != nil {
		*m.addtotal_items += i
	} else {
		m.addtotal_items = &i
	}
}

// AddedTotalItems returns the value that was added to the "total_items" field in this mutation.
func (m *MenuSessionMutation) AddedTotalItems() (r int, exists bool) {
	v := m.addtotal_items
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalItems clears the value of the "total_items" field.
func (m *MenuSessionMutation) ClearTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
	m.clearedFields[menusession.FieldTotalItems] = struct{}{}
}

// TotalItemsCleared returns if the "total_items" field was cleared in this mutation.
func (m *MenuSessionMutation) TotalItemsCleared() bool {
	_, ok := m.clearedFields[menusession.FieldTotalItems]
	return ok
}

// ResetTotalItems resets all changes to the "total_items" field.
func (m *MenuSessionMutation) ResetTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
	delete(m.clearedFields, menusession.FieldTotalItems)
}

// SetLastSeq sets the "last_seq" field.
func (m *MenuSessionMutation) SetLastSeq(i int64) {
	m.last_seq = &i
	m.addlast_seq = nil
}

// LastSeq returns the value of the "last_seq" field in the mutation.
func (m *MenuSessionMutation) LastSeq() (r int64, exists bool) {
	v := m.last_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeq returns the old "last_seq" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldLastSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeq: %w", err)
	}
	return oldValue.LastSeq, nil
}

// AddLastSeq adds i to the "last_seq" field.
func (m *MenuSessionMutation) AddLastSeq(i int64) {
	if m.addlast_seq != nil {
		*m.addlast_seq += i
	} else {
		m.addlast_seq = &i
	}
}

// AddedLastSeq returns the value that was added to the "last_seq" field in this mutation.
func (m *MenuSessionMutation) AddedLastSeq() (r int64, exists bool) {
	v := m.addlast_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeq resets all changes to the "last_seq" field.
func (m *MenuSessionMutation) ResetLastSeq() {
	m.last_seq = nil
	m.addlast_seq = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MenuSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MenuSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MenuSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MenuSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MenuSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MenuSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *MenuSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MenuSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MenuSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[menusession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MenuSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[menusession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MenuSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, menusession.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *MenuSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MenuSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MenuSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[menusession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MenuSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[menusession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MenuSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, menusession.FieldErrorMessage)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *MenuSessionMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *MenuSessionMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *MenuSessionMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetPodID sets the "pod_id" field.
func (m *MenuSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *MenuSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *MenuSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[menusession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *MenuSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[menusession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *MenuSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, menusession.FieldPodID)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MenuSessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MenuSessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the MenuSession entity.
// If the MenuSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuSessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MenuSessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[menusession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MenuSessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[menusession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MenuSessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, menusession.FieldDeletedAt)
}

// AddItemIDs adds the "items" edge to the MenuItem entity by ids.
func (m *MenuSessionMutation) AddItemIDs(ids ...int) {
	if m.items == nil {
		m.items = make(map[int]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the MenuItem entity.
func (m *MenuSessionMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the MenuItem entity was cleared.
func (m *MenuSessionMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the MenuItem entity by IDs.
func (m *MenuSessionMutation) RemoveItemIDs(ids ...int) {
	if m.removeditems == nil {
		m.removeditems = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the MenuItem entity.
func (m *MenuSessionMutation) RemovedItemsIDs() (ids []int) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *MenuSessionMutation) ItemsIDs() (ids []int) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *MenuSessionMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddEventIDs adds the "events" edge to the PipelineEvent entity by ids.
func (m *MenuSessionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the PipelineEvent entity.
func (m *MenuSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the PipelineEvent entity was cleared.
func (m *MenuSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the PipelineEvent entity by IDs.
func (m *MenuSessionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the PipelineEvent entity.
func (m *MenuSessionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *MenuSessionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *MenuSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *MenuSessionMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *MenuSessionMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *MenuSessionMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *MenuSessionMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *MenuSessionMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *MenuSessionMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *MenuSessionMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the MenuSessionMutation builder.
func (m *MenuSessionMutation) Where(ps ...predicate.MenuSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MenuSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MenuSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MenuSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MenuSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MenuSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MenuSession).
func (m *MenuSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MenuSessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.upload_ref != nil {
		fields = append(fields, menusession.FieldUploadRef)
	}
	if m.status != nil {
		fields = append(fields, menusession.FieldStatus)
	}
	if m.total_items != nil {
		fields = append(fields, menusession.FieldTotalItems)
	}
	if m.last_seq != nil {
		fields = append(fields, menusession.FieldLastSeq)
	}
	if m.created_at != nil {
		fields = append(fields, menusession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, menusession.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, menusession.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, menusession.FieldErrorMessage)
	}
	if m.cancel_requested != nil {
		fields = append(fields, menusession.FieldCancelRequested)
	}
	if m.pod_id != nil {
		fields = append(fields, menusession.FieldPodID)
	}
	if m.deleted_at != nil {
		fields = append(fields, menusession.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MenuSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case menusession.FieldUploadRef:
		return m.UploadRef()
	case menusession.FieldStatus:
		return m.Status()
	case menusession.FieldTotalItems:
		return m.TotalItems()
	case menusession.FieldLastSeq:
		return m.LastSeq()
	case menusession.FieldCreatedAt:
		return m.CreatedAt()
	case menusession.FieldUpdatedAt:
		return m.UpdatedAt()
	case menusession.FieldCompletedAt:
		return m.CompletedAt()
	case menusession.FieldErrorMessage:
		return m.ErrorMessage()
	case menusession.FieldCancelRequested:
		return m.CancelRequested()
	case menusession.FieldPodID:
		return m.PodID()
	case menusession.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MenuSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case menusession.FieldUploadRef:
		return m.OldUploadRef(ctx)
	case menusession.FieldStatus:
		return m.OldStatus(ctx)
	case menusession.FieldTotalItems:
		return m.OldTotalItems(ctx)
	case menusession.FieldLastSeq:
		return m.OldLastSeq(ctx)
	case menusession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case menusession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case menusession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case menusession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case menusession.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case menusession.FieldPodID:
		return m.OldPodID(ctx)
	case menusession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MenuSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MenuSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case menusession.FieldUploadRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadRef(v)
		return nil
	case menusession.FieldStatus:
		v, ok := value.(menusession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case menusession.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalItems(v)
		return nil
	case menusession.FieldLastSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeq(v)
		return nil
	case menusession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case menusession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case menusession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case menusession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case menusession.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case menusession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case menusession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MenuSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MenuSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_items != nil {
		fields = append(fields, menusession.FieldTotalItems)
	}
	if m.addlast_seq != nil {
		fields = append(fields, menusession.FieldLastSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MenuSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case menusession.FieldTotalItems:
		return m.AddedTotalItems()
	case menusession.FieldLastSeq:
		return m.AddedLastSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MenuSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case menusession.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalItems(v)
		return nil
	case menusession.FieldLastSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeq(v)
		return nil
	}
	return fmt.Errorf("unknown MenuSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MenuSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(menusession.FieldTotalItems) {
		fields = append(fields, menusession.FieldTotalItems)
	}
	if m.FieldCleared(menusession.FieldCompletedAt) {
		fields = append(fields, menusession.FieldCompletedAt)
	}
	if m.FieldCleared(menusession.FieldErrorMessage) {
		fields = append(fields, menusession.FieldErrorMessage)
	}
	if m.FieldCleared(menusession.FieldPodID) {
		fields = append(fields, menusession.FieldPodID)
	}
	if m.FieldCleared(menusession.FieldDeletedAt) {
		fields = append(fields, menusession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MenuSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MenuSessionMutation) ClearField(name string) error {
	switch name {
	case menusession.FieldTotalItems:
		m.ClearTotalItems()
		return nil
	case menusession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case menusession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case menusession.FieldPodID:
		m.ClearPodID()
		return nil
	case menusession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown MenuSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MenuSessionMutation) ResetField(name string) error {
	switch name {
	case menusession.FieldUploadRef:
		m.ResetUploadRef()
		return nil
	case menusession.FieldStatus:
		m.ResetStatus()
		return nil
	case menusession.FieldTotalItems:
		m.ResetTotalItems()
		return nil
	case menusession.FieldLastSeq:
		m.ResetLastSeq()
		return nil
	case menusession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case menusession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case menusession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case menusession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case menusession.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case menusession.FieldPodID:
		m.ResetPodID()
		return nil
	case menusession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown MenuSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MenuSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.items != nil {
		edges = append(edges, menusession.EdgeItems)
	}
	if m.events != nil {
		edges = append(edges, menusession.EdgeEvents)
	}
	if m.tasks != nil {
		edges = append(edges, menusession.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MenuSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case menusession.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case menusession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case menusession.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MenuSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeditems != nil {
		edges = append(edges, menusession.EdgeItems)
	}
	if m.removedevents != nil {
		edges = append(edges, menusession.EdgeEvents)
	}
	if m.removedtasks != nil {
		edges = append(edges, menusession.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MenuSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case menusession.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case menusession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case menusession.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MenuSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareditems {
		edges = append(edges, menusession.EdgeItems)
	}
	if m.clearedevents {
		edges = append(edges, menusession.EdgeEvents)
	}
	if m.clearedtasks {
		edges = append(edges, menusession.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MenuSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case menusession.EdgeItems:
		return m.cleareditems
	case menusession.EdgeEvents:
		return m.clearedevents
	case menusession.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MenuSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown MenuSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MenuSessionMutation) ResetEdge(name string) error {
	switch name {
	case menusession.EdgeItems:
		m.ResetItems()
		return nil
	case menusession.EdgeEvents:
		m.ResetEvents()
		return nil
	case menusession.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown MenuSession edge %s", name)
}

// PipelineEventMutation represents an operation that mutates the PipelineEvent nodes in the graph.
type PipelineEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	seq            *int64
	addseq         *int64
	kind           *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*PipelineEvent, error)
	predicates     []predicate.PipelineEvent
}

var _ ent.Mutation = (*PipelineEventMutation)(nil)

// pipelineeventOption allows management of the mutation configuration using functional options.
type pipelineeventOption func(*PipelineEventMutation)

// newPipelineEventMutation creates new mutation for the PipelineEvent entity.
func newPipelineEventMutation(c config, op Op, opts ...pipelineeventOption) *PipelineEventMutation {
	m := &PipelineEventMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineEventID sets the ID field of the mutation.
func withPipelineEventID(id int) pipelineeventOption {
	return func(m *PipelineEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineEvent
		)
		m.oldValue = func(ctx context.Context) (*PipelineEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineEvent sets the old PipelineEvent of the mutation.
func withPipelineEvent(node *PipelineEvent) pipelineeventOption {
	return func(m *PipelineEventMutation) {
		m.oldValue = func(context.Context) (*PipelineEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PipelineEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PipelineEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PipelineEventMutation) ResetSessionID() {
	m.session = nil
}

// SetSeq sets the "seq" field.
func (m *PipelineEventMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *PipelineEventMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *PipelineEventMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *PipelineEventMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *PipelineEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetKind sets the "kind" field.
func (m *PipelineEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PipelineEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PipelineEventMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *PipelineEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PipelineEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *PipelineEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[pipelineevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *PipelineEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[pipelineevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *PipelineEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, pipelineevent.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineEvent entity.
// If the PipelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the MenuSession entity.
func (m *PipelineEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[pipelineevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the MenuSession entity was cleared.
func (m *PipelineEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *PipelineEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *PipelineEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the PipelineEventMutation builder.
func (m *PipelineEventMutation) Where(ps ...predicate.PipelineEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineEvent).
func (m *PipelineEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, pipelineevent.FieldSessionID)
	}
	if m.seq != nil {
		fields = append(fields, pipelineevent.FieldSeq)
	}
	if m.kind != nil {
		fields = append(fields, pipelineevent.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, pipelineevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, pipelineevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelineevent.FieldSessionID:
		return m.SessionID()
	case pipelineevent.FieldSeq:
		return m.Seq()
	case pipelineevent.FieldKind:
		return m.Kind()
	case pipelineevent.FieldPayload:
		return m.Payload()
	case pipelineevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelineevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case pipelineevent.FieldSeq:
		return m.OldSeq(ctx)
	case pipelineevent.FieldKind:
		return m.OldKind(ctx)
	case pipelineevent.FieldPayload:
		return m.OldPayload(ctx)
	case pipelineevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelineevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case pipelineevent.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case pipelineevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case pipelineevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case pipelineevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineEventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, pipelineevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelineevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelineevent.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelineevent.FieldPayload) {
		fields = append(fields, pipelineevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineEventMutation) ClearField(name string) error {
	switch name {
	case pipelineevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineEventMutation) ResetField(name string) error {
	switch name {
	case pipelineevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case pipelineevent.FieldSeq:
		m.ResetSeq()
		return nil
	case pipelineevent.FieldKind:
		m.ResetKind()
		return nil
	case pipelineevent.FieldPayload:
		m.ResetPayload()
		return nil
	case pipelineevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, pipelineevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelineevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, pipelineevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineEventMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelineevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineEventMutation) ClearEdge(name string) error {
	switch name {
	case pipelineevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineEventMutation) ResetEdge(name string) error {
	switch name {
	case pipelineevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown PipelineEvent edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op             Op
	typ            string
	id             *string
	queue          *string
	stage          *string
	item_index     *int
	additem_index  *int
	status         *task.Status
	attempt        *int
	addattempt     *int
	not_before     *time.Time
	claimed_at     *time.Time
	claimed_by     *string
	last_error     *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Task, error)
	predicates     []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TaskMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TaskMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TaskMutation) ResetSessionID() {
	m.session = nil
}

// SetQueue sets the "queue" field.
func (m *TaskMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *TaskMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *TaskMutation) ResetQueue() {
	m.queue = nil
}

// SetStage sets the "stage" field.
func (m *TaskMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *TaskMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *TaskMutation) ResetStage() {
	m.stage = nil
}

// SetItemIndex sets the "item_index" field.
func (m *TaskMutation) SetItemIndex(i int) {
	m.item_index = &i
	m.additem_index = nil
}

// ItemIndex returns the value of the "item_index" field in the mutation.
func (m *TaskMutation) ItemIndex() (r int, exists bool) {
	v := m.item_index
	if v == nil {
		return
	}
	return *v, true
}

// OldItemIndex returns the old "item_index" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldItemIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemIndex: %w", err)
	}
	return oldValue.ItemIndex, nil
}

// AddItemIndex adds i to the "item_index" field.
func (m *TaskMutation) AddItemIndex(i int) {
	if m.additem_index != nil {
		*m.additem_index += i
	} else {
		m.additem_index = &i
	}
}

// AddedItemIndex returns the value that was added to the "item_index" field in this mutation.
func (m *TaskMutation) AddedItemIndex() (r int, exists bool) {
	v := m.additem_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearItemIndex clears the value of the "item_index" field.
func (m *TaskMutation) ClearItemIndex() {
	m.item_index = nil
	m.additem_index = nil
	m.clearedFields[task.FieldItemIndex] = struct{}{}
}

// ItemIndexCleared returns if the "item_index" field was cleared in this mutation.
func (m *TaskMutation) ItemIndexCleared() bool {
	_, ok := m.clearedFields[task.FieldItemIndex]
	return ok
}

// ResetItemIndex resets all changes to the "item_index" field.
func (m *TaskMutation) ResetItemIndex() {
	m.item_index = nil
	m.additem_index = nil
	delete(m.clearedFields, task.FieldItemIndex)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetAttempt sets the "attempt" field.
func (m *TaskMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *TaskMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *TaskMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *TaskMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *TaskMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetNotBefore sets the "not_before" field.
func (m *TaskMutation) SetNotBefore(t time.Time) {
	m.not_before = &t
}

// NotBefore returns the value of the "not_before" field in the mutation.
func (m *TaskMutation) NotBefore() (r time.Time, exists bool) {
	v := m.not_before
	if v == nil {
		return
	}
	return *v, true
}

// OldNotBefore returns the old "not_before" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldNotBefore(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotBefore: %w", err)
	}
	return oldValue.NotBefore, nil
}

// ResetNotBefore resets all changes to the "not_before" field.
func (m *TaskMutation) ResetNotBefore() {
	m.not_before = nil
}

// SetClaimedAt sets the "claimed_at" field.
func (m *TaskMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *TaskMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *TaskMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[task.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *TaskMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *TaskMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, task.FieldClaimedAt)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *TaskMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *TaskMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *TaskMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[task.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *TaskMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *TaskMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, task.FieldClaimedBy)
}

// SetLastError sets the "last_error" field.
func (m *TaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[task.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, task.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the MenuSession entity.
func (m *TaskMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[task.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the MenuSession entity was cleared.
func (m *TaskMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *TaskMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.session != nil {
		fields = append(fields, task.FieldSessionID)
	}
	if m.queue != nil {
		fields = append(fields, task.FieldQueue)
	}
	if m.stage != nil {
		fields = append(fields, task.FieldStage)
	}
	if m.item_index != nil {
		fields = append(fields, task.FieldItemIndex)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.attempt != nil {
		fields = append(fields, task.FieldAttempt)
	}
	if m.not_before != nil {
		fields = append(fields, task.FieldNotBefore)
	}
	if m.claimed_at != nil {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.last_error != nil {
		fields = append(fields, task.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldSessionID:
		return m.SessionID()
	case task.FieldQueue:
		return m.Queue()
	case task.FieldStage:
		return m.Stage()
	case task.FieldItemIndex:
		return m.ItemIndex()
	case task.FieldStatus:
		return m.Status()
	case task.FieldAttempt:
		return m.Attempt()
	case task.FieldNotBefore:
		return m.NotBefore()
	case task.FieldClaimedAt:
		return m.ClaimedAt()
	case task.FieldClaimedBy:
		return m.ClaimedBy()
	case task.FieldLastError:
		return m.LastError()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldSessionID:
		return m.OldSessionID(ctx)
	case task.FieldQueue:
		return m.OldQueue(ctx)
	case task.FieldStage:
		return m.OldStage(ctx)
	case task.FieldItemIndex:
		return m.OldItemIndex(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldAttempt:
		return m.OldAttempt(ctx)
	case task.FieldNotBefore:
		return m.OldNotBefore(ctx)
	case task.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case task.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case task.FieldLastError:
		return m.OldLastError(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case task.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case task.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case task.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemIndex(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case task.FieldNotBefore:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotBefore(v)
		return nil
	case task.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case task.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case task.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.additem_index != nil {
		fields = append(fields, task.FieldItemIndex)
	}
	if m.addattempt != nil {
		fields = append(fields, task.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldItemIndex:
		return m.AddedItemIndex()
	case task.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemIndex(v)
		return nil
	case task.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldItemIndex) {
		fields = append(fields, task.FieldItemIndex)
	}
	if m.FieldCleared(task.FieldClaimedAt) {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.FieldCleared(task.FieldClaimedBy) {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.FieldCleared(task.FieldLastError) {
		fields = append(fields, task.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldItemIndex:
		m.ClearItemIndex()
		return nil
	case task.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case task.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case task.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldSessionID:
		m.ResetSessionID()
		return nil
	case task.FieldQueue:
		m.ResetQueue()
		return nil
	case task.FieldStage:
		m.ResetStage()
		return nil
	case task.FieldItemIndex:
		m.ResetItemIndex()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldAttempt:
		m.ResetAttempt()
		return nil
	case task.FieldNotBefore:
		m.ResetNotBefore()
		return nil
	case task.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case task.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case task.FieldLastError:
		m.ResetLastError()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, task.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, task.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
