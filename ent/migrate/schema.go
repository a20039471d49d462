// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MenuItemsColumns holds the columns for the "menu_items" table.
	MenuItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_index", Type: field.TypeInt},
		{Name: "source_text", Type: field.TypeString, Size: 2147483647},
		{Name: "box", Type: field.TypeJSON, Nullable: true},
		{Name: "category", Type: field.TypeString},
		{Name: "price", Type: field.TypeString, Nullable: true},
		{Name: "english_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fallback_used", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "allergen_entries", Type: field.TypeJSON, Nullable: true},
		{Name: "ingredient_entries", Type: field.TypeJSON, Nullable: true},
		{Name: "image_ref", Type: field.TypeString, Nullable: true},
		{Name: "image_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "translate_status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "translate_attempt", Type: field.TypeInt, Default: 0},
		{Name: "translate_error", Type: field.TypeString, Nullable: true},
		{Name: "describe_status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "describe_attempt", Type: field.TypeInt, Default: 0},
		{Name: "describe_error", Type: field.TypeString, Nullable: true},
		{Name: "allergens_status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "allergens_attempt", Type: field.TypeInt, Default: 0},
		{Name: "allergens_error", Type: field.TypeString, Nullable: true},
		{Name: "ingredients_status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "ingredients_attempt", Type: field.TypeInt, Default: 0},
		{Name: "ingredients_error", Type: field.TypeString, Nullable: true},
		{Name: "image_status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "image_attempt", Type: field.TypeInt, Default: 0},
		{Name: "image_error", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// MenuItemsTable holds the schema information for the "menu_items" table.
	MenuItemsTable = &schema.Table{
		Name:       "menu_items",
		Columns:    MenuItemsColumns,
		PrimaryKey: []*schema.Column{MenuItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "menu_items_menu_sessions_items",
				Columns:    []*schema.Column{MenuItemsColumns[30]},
				RefColumns: []*schema.Column{MenuSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "menuitem_session_id_item_index",
				Unique:  true,
				Columns: []*schema.Column{MenuItemsColumns[30], MenuItemsColumns[1]},
			},
		},
	}
	// MenuSessionsColumns holds the columns for the "menu_sessions" table.
	MenuSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "upload_ref", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "total_items", Type: field.TypeInt, Nullable: true},
		{Name: "last_seq", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// MenuSessionsTable holds the schema information for the "menu_sessions" table.
	MenuSessionsTable = &schema.Table{
		Name:       "menu_sessions",
		Columns:    MenuSessionsColumns,
		PrimaryKey: []*schema.Column{MenuSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "menusession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{MenuSessionsColumns[2], MenuSessionsColumns[5]},
			},
			{
				Name:    "menusession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{MenuSessionsColumns[11]},
			},
		},
	}
	// PipelineEventsColumns holds the columns for the "pipeline_events" table.
	PipelineEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// PipelineEventsTable holds the schema information for the "pipeline_events" table.
	PipelineEventsTable = &schema.Table{
		Name:       "pipeline_events",
		Columns:    PipelineEventsColumns,
		PrimaryKey: []*schema.Column{PipelineEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_events_menu_sessions_events",
				Columns:    []*schema.Column{PipelineEventsColumns[5]},
				RefColumns: []*schema.Column{MenuSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelineevent_session_id_seq",
				Unique:  true,
				Columns: []*schema.Column{PipelineEventsColumns[5], PipelineEventsColumns[1]},
			},
			{
				Name:    "pipelineevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineEventsColumns[4]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "item_index", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "done", "dead"}, Default: "pending"},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "not_before", Type: field.TypeTime},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_menu_sessions_tasks",
				Columns:    []*schema.Column{TasksColumns[12]},
				RefColumns: []*schema.Column{MenuSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_queue_status_not_before",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[4], TasksColumns[6]},
			},
			{
				Name:    "task_session_id_stage_item_index",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[12], TasksColumns[2], TasksColumns[3]},
			},
			{
				Name:    "task_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MenuItemsTable,
		MenuSessionsTable,
		PipelineEventsTable,
		TasksTable,
	}
)

func init() {
	MenuItemsTable.ForeignKeys[0].RefTable = MenuSessionsTable
	PipelineEventsTable.ForeignKeys[0].RefTable = MenuSessionsTable
	TasksTable.ForeignKeys[0].RefTable = MenuSessionsTable
}
