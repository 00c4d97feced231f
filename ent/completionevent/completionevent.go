// Code generated by ent, DO NOT EDIT.

package completionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the completionevent type in the database.
	Label = "completion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPlanDate holds the string denoting the plan_date field in the database.
	FieldPlanDate = "plan_date"
	// FieldQuestTitle holds the string denoting the quest_title field in the database.
	FieldQuestTitle = "quest_title"
	// FieldPattern holds the string denoting the pattern field in the database.
	FieldPattern = "pattern"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldPlannedMinutes holds the string denoting the planned_minutes field in the database.
	FieldPlannedMinutes = "planned_minutes"
	// FieldActualMinutes holds the string denoting the actual_minutes field in the database.
	FieldActualMinutes = "actual_minutes"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// Table holds the table name of the completionevent in the database.
	Table = "completion_events"
)

// Columns holds all SQL columns for completionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPlanDate,
	FieldQuestTitle,
	FieldPattern,
	FieldDifficulty,
	FieldPlannedMinutes,
	FieldActualMinutes,
	FieldCompleted,
	FieldRating,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// PlanDateValidator is a validator for the "plan_date" field. It is called by the builders before save.
	PlanDateValidator func(string) error
	// QuestTitleValidator is a validator for the "quest_title" field. It is called by the builders before save.
	QuestTitleValidator func(string) error
	// PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	PatternValidator func(string) error
	// DefaultActualMinutes holds the default value on creation for the "actual_minutes" field.
	DefaultActualMinutes int
	// DefaultRating holds the default value on creation for the "rating" field.
	DefaultRating int
)

// OrderOption defines the ordering options for the CompletionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPlanDate orders the results by the plan_date field.
func ByPlanDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanDate, opts...).ToFunc()
}

// ByQuestTitle orders the results by the quest_title field.
func ByQuestTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestTitle, opts...).ToFunc()
}

// ByPattern orders the results by the pattern field.
func ByPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPattern, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByPlannedMinutes orders the results by the planned_minutes field.
func ByPlannedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannedMinutes, opts...).ToFunc()
}

// ByActualMinutes orders the results by the actual_minutes field.
func ByActualMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualMinutes, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}
