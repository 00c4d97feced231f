// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the planevent type in the database.
	Label = "plan_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldPlanDate holds the string denoting the plan_date field in the database.
	FieldPlanDate = "plan_date"
	// FieldDayType holds the string denoting the day_type field in the database.
	FieldDayType = "day_type"
	// FieldTotalMinutes holds the string denoting the total_minutes field in the database.
	FieldTotalMinutes = "total_minutes"
	// FieldQuestCount holds the string denoting the quest_count field in the database.
	FieldQuestCount = "quest_count"
	// FieldQuests holds the string denoting the quests field in the database.
	FieldQuests = "quests"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldFallbackUsed holds the string denoting the fallback_used field in the database.
	FieldFallbackUsed = "fallback_used"
	// Table holds the table name of the planevent in the database.
	Table = "plan_events"
)

// Columns holds all SQL columns for planevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPlanID,
	FieldPlanDate,
	FieldDayType,
	FieldTotalMinutes,
	FieldQuestCount,
	FieldQuests,
	FieldRationale,
	FieldFallbackUsed,
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
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// PlanDateValidator is a validator for the "plan_date" field. It is called by the builders before save.
	PlanDateValidator func(string) error
	// DayTypeValidator is a validator for the "day_type" field. It is called by the builders before save.
	DayTypeValidator func(string) error
	// DefaultFallbackUsed holds the default value on creation for the "fallback_used" field.
	DefaultFallbackUsed bool
)

// OrderOption defines the ordering options for the PlanEvent queries.
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

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByPlanDate orders the results by the plan_date field.
func ByPlanDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanDate, opts...).ToFunc()
}

// ByDayType orders the results by the day_type field.
func ByDayType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayType, opts...).ToFunc()
}

// ByTotalMinutes orders the results by the total_minutes field.
func ByTotalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMinutes, opts...).ToFunc()
}

// ByQuestCount orders the results by the quest_count field.
func ByQuestCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestCount, opts...).ToFunc()
}

// ByFallbackUsed orders the results by the fallback_used field.
func ByFallbackUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallbackUsed, opts...).ToFunc()
}
