// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MenuItem is the predicate function for menuitem builders.
type MenuItem func(*sql.Selector)

// MenuSession is the predicate function for menusession builders.
type MenuSession func(*sql.Selector)

// PipelineEvent is the predicate function for pipelineevent builders.
type PipelineEvent func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
