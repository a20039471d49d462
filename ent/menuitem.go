// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kaiseki-io/kaiseki/ent/menuitem"
	"github.com/kaiseki-io/kaiseki/ent/menusession"
)

// MenuItem is the model entity for the MenuItem schema.
type MenuItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Position within the session, assigned by categorize
	ItemIndex int `json:"item_index,omitempty"`
	// Original Japanese text as recognized
	SourceText string `json:"source_text,omitempty"`
	// Bounding region: four corners in pixel coordinates
	Box [][2]int `json:"box,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Price holds the value of the "price" field.
	Price *string `json:"price,omitempty"`
	// EnglishText holds the value of the "english_text" field.
	EnglishText *string `json:"english_text,omitempty"`
	// Identity translation fallback was applied
	FallbackUsed bool `json:"fallback_used,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// AllergenEntries holds the value of the "allergen_entries" field.
	AllergenEntries []map[string]interface{} `json:"allergen_entries,omitempty"`
	// IngredientEntries holds the value of the "ingredient_entries" field.
	IngredientEntries []map[string]interface{} `json:"ingredient_entries,omitempty"`
	// URL or image store key
	ImageRef *string `json:"image_ref,omitempty"`
	// Which image path won: search or synthesis
	ImagePath *string `json:"image_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TranslateStatus holds the value of the "translate_status" field.
	TranslateStatus menuitem.TranslateStatus `json:"translate_status,omitempty"`
	// TranslateAttempt holds the value of the "translate_attempt" field.
	TranslateAttempt int `json:"translate_attempt,omitempty"`
	// TranslateError holds the value of the "translate_error" field.
	TranslateError *string `json:"translate_error,omitempty"`
	// DescribeStatus holds the value of the "describe_status" field.
	DescribeStatus menuitem.DescribeStatus `json:"describe_status,omitempty"`
	// DescribeAttempt holds the value of the "describe_attempt" field.
	DescribeAttempt int `json:"describe_attempt,omitempty"`
	// DescribeError holds the value of the "describe_error" field.
	DescribeError *string `json:"describe_error,omitempty"`
	// AllergensStatus holds the value of the "allergens_status" field.
	AllergensStatus menuitem.AllergensStatus `json:"allergens_status,omitempty"`
	// AllergensAttempt holds the value of the "allergens_attempt" field.
	AllergensAttempt int `json:"allergens_attempt,omitempty"`
	// AllergensError holds the value of the "allergens_error" field.
	AllergensError *string `json:"allergens_error,omitempty"`
	// IngredientsStatus holds the value of the "ingredients_status" field.
	IngredientsStatus menuitem.IngredientsStatus `json:"ingredients_status,omitempty"`
	// IngredientsAttempt holds the value of the "ingredients_attempt" field.
	IngredientsAttempt int `json:"ingredients_attempt,omitempty"`
	// IngredientsError holds the value of the "ingredients_error" field.
	IngredientsError *string `json:"ingredients_error,omitempty"`
	// ImageStatus holds the value of the "image_status" field.
	ImageStatus menuitem.ImageStatus `json:"image_status,omitempty"`
	// ImageAttempt holds the value of the "image_attempt" field.
	ImageAttempt int `json:"image_attempt,omitempty"`
	// ImageError holds the value of the "image_error" field.
	ImageError *string `json:"image_error,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MenuItemQuery when eager-loading is set.
	Edges        MenuItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MenuItemEdges holds the relations/edges for other nodes in the graph.
type MenuItemEdges struct {
	// Session holds the value of the session edge.
	Session *MenuSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MenuItemEdges) SessionOrErr() (*MenuSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: menusession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MenuItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case menuitem.FieldBox, menuitem.FieldAllergenEntries, menuitem.FieldIngredientEntries:
			values[i] = new([]byte)
		case menuitem.FieldFallbackUsed:
			values[i] = new(sql.NullBool)
		case menuitem.FieldID, menuitem.FieldItemIndex, menuitem.FieldTranslateAttempt, menuitem.FieldDescribeAttempt, menuitem.FieldAllergensAttempt, menuitem.FieldIngredientsAttempt, menuitem.FieldImageAttempt:
			values[i] = new(sql.NullInt64)
		case menuitem.FieldSessionID, menuitem.FieldSourceText, menuitem.FieldCategory, menuitem.FieldPrice, menuitem.FieldEnglishText, menuitem.FieldDescription, menuitem.FieldImageRef, menuitem.FieldImagePath, menuitem.FieldTranslateStatus, menuitem.FieldTranslateError, menuitem.FieldDescribeStatus, menuitem.FieldDescribeError, menuitem.FieldAllergensStatus, menuitem.FieldAllergensError, menuitem.FieldIngredientsStatus, menuitem.FieldIngredientsError, menuitem.FieldImageStatus, menuitem.FieldImageError:
			values[i] = new(sql.NullString)
		case menuitem.FieldCreatedAt, menuitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MenuItem fields.
func (_m *MenuItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case menuitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case menuitem.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case menuitem.FieldItemIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_index", values[i])
			} else if value.Valid {
				_m.ItemIndex = int(value.Int64)
			}
		case menuitem.FieldSourceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_text", values[i])
			} else if value.Valid {
				_m.SourceText = value.String
			}
		case menuitem.FieldBox:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field box", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Box); err != nil {
					return fmt.Errorf("unmarshal field box: %w", err)
				}
			}
		case menuitem.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case menuitem.FieldPrice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = new(string)
				*_m.Price = value.String
			}
		case menuitem.FieldEnglishText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field english_text", values[i])
			} else if value.Valid {
				_m.EnglishText = new(string)
				*_m.EnglishText = value.String
			}
		case menuitem.FieldFallbackUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback_used", values[i])
			} else if value.Valid {
				_m.FallbackUsed = value.Bool
			}
		case menuitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case menuitem.FieldAllergenEntries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allergen_entries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllergenEntries); err != nil {
					return fmt.Errorf("unmarshal field allergen_entries: %w", err)
				}
			}
		case menuitem.FieldIngredientEntries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ingredient_entries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IngredientEntries); err != nil {
					return fmt.Errorf("unmarshal field ingredient_entries: %w", err)
				}
			}
		case menuitem.FieldImageRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_ref", values[i])
			} else if value.Valid {
				_m.ImageRef = new(string)
				*_m.ImageRef = value.String
			}
		case menuitem.FieldImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_path", values[i])
			} else if value.Valid {
				_m.ImagePath = new(string)
				*_m.ImagePath = value.String
			}
		case menuitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case menuitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case menuitem.FieldTranslateStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translate_status", values[i])
			} else if value.Valid {
				_m.TranslateStatus = menuitem.TranslateStatus(value.String)
			}
		case menuitem.FieldTranslateAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field translate_attempt", values[i])
			} else if value.Valid {
				_m.TranslateAttempt = int(value.Int64)
			}
		case menuitem.FieldTranslateError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translate_error", values[i])
			} else if value.Valid {
				_m.TranslateError = new(string)
				*_m.TranslateError = value.String
			}
		case menuitem.FieldDescribeStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field describe_status", values[i])
			} else if value.Valid {
				_m.DescribeStatus = menuitem.DescribeStatus(value.String)
			}
		case menuitem.FieldDescribeAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field describe_attempt", values[i])
			} else if value.Valid {
				_m.DescribeAttempt = int(value.Int64)
			}
		case menuitem.FieldDescribeError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field describe_error", values[i])
			} else if value.Valid {
				_m.DescribeError = new(string)
				*_m.DescribeError = value.String
			}
		case menuitem.FieldAllergensStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field allergens_status", values[i])
			} else if value.Valid {
				_m.AllergensStatus = menuitem.AllergensStatus(value.String)
			}
		case menuitem.FieldAllergensAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field allergens_attempt", values[i])
			} else if value.Valid {
				_m.AllergensAttempt = int(value.Int64)
			}
		case menuitem.FieldAllergensError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field allergens_error", values[i])
			} else if value.Valid {
				_m.AllergensError = new(string)
				*_m.AllergensError = value.String
			}
		case menuitem.FieldIngredientsStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ingredients_status", values[i])
			} else if value.Valid {
				_m.IngredientsStatus = menuitem.IngredientsStatus(value.String)
			}
		case menuitem.FieldIngredientsAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ingredients_attempt", values[i])
			} else if value.Valid {
				_m.IngredientsAttempt = int(value.Int64)
			}
		case menuitem.FieldIngredientsError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ingredients_error", values[i])
			} else if value.Valid {
				_m.IngredientsError = new(string)
				*_m.IngredientsError = value.String
			}
		case menuitem.FieldImageStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_status", values[i])
			} else if value.Valid {
				_m.ImageStatus = menuitem.ImageStatus(value.String)
			}
		case menuitem.FieldImageAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field image_attempt", values[i])
			} else if value.Valid {
				_m.ImageAttempt = int(value.Int64)
			}
		case menuitem.FieldImageError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_error", values[i])
			} else if value.Valid {
				_m.ImageError = new(string)
				*_m.ImageError = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MenuItem.
// This includes values selected through modifiers, order, etc.
func (_m *MenuItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the MenuItem entity.
func (_m *MenuItem) QuerySession() *MenuSessionQuery {
	return NewMenuItemClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this MenuItem.
// Note that you need to call MenuItem.Unwrap() before calling this method if this MenuItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MenuItem) Update() *MenuItemUpdateOne {
	return NewMenuItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MenuItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MenuItem) Unwrap() *MenuItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MenuItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MenuItem) String() string {
	var builder strings.Builder
	builder.WriteString("MenuItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("item_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemIndex))
	builder.WriteString(", ")
	builder.WriteString("source_text=")
	builder.WriteString(_m.SourceText)
	builder.WriteString(", ")
	builder.WriteString("box=")
	builder.WriteString(fmt.Sprintf("%v", _m.Box))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	if v := _m.Price; v != nil {
		builder.WriteString("price=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EnglishText; v != nil {
		builder.WriteString("english_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("fallback_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.FallbackUsed))
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("allergen_entries=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllergenEntries))
	builder.WriteString(", ")
	builder.WriteString("ingredient_entries=")
	builder.WriteString(fmt.Sprintf("%v", _m.IngredientEntries))
	builder.WriteString(", ")
	if v := _m.ImageRef; v != nil {
		builder.WriteString("image_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImagePath; v != nil {
		builder.WriteString("image_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("translate_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranslateStatus))
	builder.WriteString(", ")
	builder.WriteString("translate_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranslateAttempt))
	builder.WriteString(", ")
	if v := _m.TranslateError; v != nil {
		builder.WriteString("translate_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("describe_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.DescribeStatus))
	builder.WriteString(", ")
	builder.WriteString("describe_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.DescribeAttempt))
	builder.WriteString(", ")
	if v := _m.DescribeError; v != nil {
		builder.WriteString("describe_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("allergens_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllergensStatus))
	builder.WriteString(", ")
	builder.WriteString("allergens_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllergensAttempt))
	builder.WriteString(", ")
	if v := _m.AllergensError; v != nil {
		builder.WriteString("allergens_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ingredients_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.IngredientsStatus))
	builder.WriteString(", ")
	builder.WriteString("ingredients_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.IngredientsAttempt))
	builder.WriteString(", ")
	if v := _m.IngredientsError; v != nil {
		builder.WriteString("ingredients_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("image_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageStatus))
	builder.WriteString(", ")
	builder.WriteString("image_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageAttempt))
	builder.WriteString(", ")
	if v := _m.ImageError; v != nil {
		builder.WriteString("image_error=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// MenuItems is a parsable slice of MenuItem.
type MenuItems []*MenuItem
