// Code generated by ent, DO NOT EDIT.

package adjustmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adjustmentevent type in the database.
	Label = "adjustment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldQuestTitle holds the string denoting the quest_title field in the database.
	FieldQuestTitle = "quest_title"
	// FieldAdjustmentType holds the string denoting the adjustment_type field in the database.
	FieldAdjustmentType = "adjustment_type"
	// FieldMagnitude holds the string denoting the magnitude field in the database.
	FieldMagnitude = "magnitude"
	// FieldPreviousDifficulty holds the string denoting the previous_difficulty field in the database.
	FieldPreviousDifficulty = "previous_difficulty"
	// FieldNewDifficulty holds the string denoting the new_difficulty field in the database.
	FieldNewDifficulty = "new_difficulty"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldRollback holds the string denoting the rollback field in the database.
	FieldRollback = "rollback"
	// FieldReversesSequence holds the string denoting the reverses_sequence field in the database.
	FieldReversesSequence = "reverses_sequence"
	// FieldCompletionMark holds the string denoting the completion_mark field in the database.
	FieldCompletionMark = "completion_mark"
	// Table holds the table name of the adjustmentevent in the database.
	Table = "adjustment_events"
)

// Columns holds all SQL columns for adjustmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldQuestTitle,
	FieldAdjustmentType,
	FieldMagnitude,
	FieldPreviousDifficulty,
	FieldNewDifficulty,
	FieldConfidence,
	FieldReasoning,
	FieldRollback,
	FieldReversesSequence,
	FieldCompletionMark,
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
	// DefaultQuestTitle holds the default value on creation for the "quest_title" field.
	DefaultQuestTitle string
	// AdjustmentTypeValidator is a validator for the "adjustment_type" field. It is called by the builders before save.
	AdjustmentTypeValidator func(string) error
	// DefaultMagnitude holds the default value on creation for the "magnitude" field.
	DefaultMagnitude string
	// DefaultReasoning holds the default value on creation for the "reasoning" field.
	DefaultReasoning string
	// DefaultRollback holds the default value on creation for the "rollback" field.
	DefaultRollback bool
	// DefaultReversesSequence holds the default value on creation for the "reverses_sequence" field.
	DefaultReversesSequence int64
	// DefaultCompletionMark holds the default value on creation for the "completion_mark" field.
	DefaultCompletionMark int
)

// OrderOption defines the ordering options for the AdjustmentEvent queries.
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

// ByQuestTitle orders the results by the quest_title field.
func ByQuestTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestTitle, opts...).ToFunc()
}

// ByAdjustmentType orders the results by the adjustment_type field.
func ByAdjustmentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdjustmentType, opts...).ToFunc()
}

// ByMagnitude orders the results by the magnitude field.
func ByMagnitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMagnitude, opts...).ToFunc()
}

// ByPreviousDifficulty orders the results by the previous_difficulty field.
func ByPreviousDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousDifficulty, opts...).ToFunc()
}

// ByNewDifficulty orders the results by the new_difficulty field.
func ByNewDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewDifficulty, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByRollback orders the results by the rollback field.
func ByRollback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRollback, opts...).ToFunc()
}

// ByReversesSequence orders the results by the reverses_sequence field.
func ByReversesSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReversesSequence, opts...).ToFunc()
}

// ByCompletionMark orders the results by the completion_mark field.
func ByCompletionMark(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionMark, opts...).ToFunc()
}
