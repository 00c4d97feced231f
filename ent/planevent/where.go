// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanID, v))
}

// PlanDate applies equality check predicate on the "plan_date" field. It's identical to PlanDateEQ.
func PlanDate(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanDate, v))
}

// DayType applies equality check predicate on the "day_type" field. It's identical to DayTypeEQ.
func DayType(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldDayType, v))
}

// TotalMinutes applies equality check predicate on the "total_minutes" field. It's identical to TotalMinutesEQ.
func TotalMinutes(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTotalMinutes, v))
}

// QuestCount applies equality check predicate on the "quest_count" field. It's identical to QuestCountEQ.
func QuestCount(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldQuestCount, v))
}

// FallbackUsed applies equality check predicate on the "fallback_used" field. It's identical to FallbackUsedEQ.
func FallbackUsed(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldFallbackUsed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldPlanID, v))
}

// PlanDateEQ applies the EQ predicate on the "plan_date" field.
func PlanDateEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanDate, v))
}

// PlanDateNEQ applies the NEQ predicate on the "plan_date" field.
func PlanDateNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldPlanDate, v))
}

// PlanDateIn applies the In predicate on the "plan_date" field.
func PlanDateIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldPlanDate, vs...))
}

// PlanDateNotIn applies the NotIn predicate on the "plan_date" field.
func PlanDateNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldPlanDate, vs...))
}

// PlanDateGT applies the GT predicate on the "plan_date" field.
func PlanDateGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldPlanDate, v))
}

// PlanDateGTE applies the GTE predicate on the "plan_date" field.
func PlanDateGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldPlanDate, v))
}

// PlanDateLT applies the LT predicate on the "plan_date" field.
func PlanDateLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldPlanDate, v))
}

// PlanDateLTE applies the LTE predicate on the "plan_date" field.
func PlanDateLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldPlanDate, v))
}

// PlanDateContains applies the Contains predicate on the "plan_date" field.
func PlanDateContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldPlanDate, v))
}

// PlanDateHasPrefix applies the HasPrefix predicate on the "plan_date" field.
func PlanDateHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldPlanDate, v))
}

// PlanDateHasSuffix applies the HasSuffix predicate on the "plan_date" field.
func PlanDateHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldPlanDate, v))
}

// PlanDateEqualFold applies the EqualFold predicate on the "plan_date" field.
func PlanDateEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldPlanDate, v))
}

// PlanDateContainsFold applies the ContainsFold predicate on the "plan_date" field.
func PlanDateContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldPlanDate, v))
}

// DayTypeEQ applies the EQ predicate on the "day_type" field.
func DayTypeEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldDayType, v))
}

// DayTypeNEQ applies the NEQ predicate on the "day_type" field.
func DayTypeNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldDayType, v))
}

// DayTypeIn applies the In predicate on the "day_type" field.
func DayTypeIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldDayType, vs...))
}

// DayTypeNotIn applies the NotIn predicate on the "day_type" field.
func DayTypeNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldDayType, vs...))
}

// DayTypeGT applies the GT predicate on the "day_type" field.
func DayTypeGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldDayType, v))
}

// DayTypeGTE applies the GTE predicate on the "day_type" field.
func DayTypeGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldDayType, v))
}

// DayTypeLT applies the LT predicate on the "day_type" field.
func DayTypeLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldDayType, v))
}

// DayTypeLTE applies the LTE predicate on the "day_type" field.
func DayTypeLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldDayType, v))
}

// DayTypeContains applies the Contains predicate on the "day_type" field.
func DayTypeContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldDayType, v))
}

// DayTypeHasPrefix applies the HasPrefix predicate on the "day_type" field.
func DayTypeHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldDayType, v))
}

// DayTypeHasSuffix applies the HasSuffix predicate on the "day_type" field.
func DayTypeHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldDayType, v))
}

// DayTypeEqualFold applies the EqualFold predicate on the "day_type" field.
func DayTypeEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldDayType, v))
}

// DayTypeContainsFold applies the ContainsFold predicate on the "day_type" field.
func DayTypeContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldDayType, v))
}

// TotalMinutesEQ applies the EQ predicate on the "total_minutes" field.
func TotalMinutesEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTotalMinutes, v))
}

// TotalMinutesNEQ applies the NEQ predicate on the "total_minutes" field.
func TotalMinutesNEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldTotalMinutes, v))
}

// TotalMinutesIn applies the In predicate on the "total_minutes" field.
func TotalMinutesIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldTotalMinutes, vs...))
}

// TotalMinutesNotIn applies the NotIn predicate on the "total_minutes" field.
func TotalMinutesNotIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldTotalMinutes, vs...))
}

// TotalMinutesGT applies the GT predicate on the "total_minutes" field.
func TotalMinutesGT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldTotalMinutes, v))
}

// TotalMinutesGTE applies the GTE predicate on the "total_minutes" field.
func TotalMinutesGTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldTotalMinutes, v))
}

// TotalMinutesLT applies the LT predicate on the "total_minutes" field.
func TotalMinutesLT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldTotalMinutes, v))
}

// TotalMinutesLTE applies the LTE predicate on the "total_minutes" field.
func TotalMinutesLTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldTotalMinutes, v))
}

// QuestCountEQ applies the EQ predicate on the "quest_count" field.
func QuestCountEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldQuestCount, v))
}

// QuestCountNEQ applies the NEQ predicate on the "quest_count" field.
func QuestCountNEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldQuestCount, v))
}

// QuestCountIn applies the In predicate on the "quest_count" field.
func QuestCountIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldQuestCount, vs...))
}

// QuestCountNotIn applies the NotIn predicate on the "quest_count" field.
func QuestCountNotIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldQuestCount, vs...))
}

// QuestCountGT applies the GT predicate on the "quest_count" field.
func QuestCountGT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldQuestCount, v))
}

// QuestCountGTE applies the GTE predicate on the "quest_count" field.
func QuestCountGTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldQuestCount, v))
}

// QuestCountLT applies the LT predicate on the "quest_count" field.
func QuestCountLT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldQuestCount, v))
}

// QuestCountLTE applies the LTE predicate on the "quest_count" field.
func QuestCountLTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldQuestCount, v))
}

// FallbackUsedEQ applies the EQ predicate on the "fallback_used" field.
func FallbackUsedEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldFallbackUsed, v))
}

// FallbackUsedNEQ applies the NEQ predicate on the "fallback_used" field.
func FallbackUsedNEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldFallbackUsed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.NotPredicates(p))
}
