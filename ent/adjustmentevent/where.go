// Code generated by ent, DO NOT EDIT.

package adjustmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestTitle applies equality check predicate on the "quest_title" field. It's identical to QuestTitleEQ.
func QuestTitle(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldQuestTitle, v))
}

// AdjustmentType applies equality check predicate on the "adjustment_type" field. It's identical to AdjustmentTypeEQ.
func AdjustmentType(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldAdjustmentType, v))
}

// Magnitude applies equality check predicate on the "magnitude" field. It's identical to MagnitudeEQ.
func Magnitude(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldMagnitude, v))
}

// PreviousDifficulty applies equality check predicate on the "previous_difficulty" field. It's identical to PreviousDifficultyEQ.
func PreviousDifficulty(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldPreviousDifficulty, v))
}

// NewDifficulty applies equality check predicate on the "new_difficulty" field. It's identical to NewDifficultyEQ.
func NewDifficulty(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldNewDifficulty, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldReasoning, v))
}

// Rollback applies equality check predicate on the "rollback" field. It's identical to RollbackEQ.
func Rollback(v bool) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldRollback, v))
}

// ReversesSequence applies equality check predicate on the "reverses_sequence" field. It's identical to ReversesSequenceEQ.
func ReversesSequence(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldReversesSequence, v))
}

// CompletionMark applies equality check predicate on the "completion_mark" field. It's identical to CompletionMarkEQ.
func CompletionMark(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldCompletionMark, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestTitleEQ applies the EQ predicate on the "quest_title" field.
func QuestTitleEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldQuestTitle, v))
}

// QuestTitleNEQ applies the NEQ predicate on the "quest_title" field.
func QuestTitleNEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldQuestTitle, v))
}

// QuestTitleIn applies the In predicate on the "quest_title" field.
func QuestTitleIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldQuestTitle, vs...))
}

// QuestTitleNotIn applies the NotIn predicate on the "quest_title" field.
func QuestTitleNotIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldQuestTitle, vs...))
}

// QuestTitleGT applies the GT predicate on the "quest_title" field.
func QuestTitleGT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldQuestTitle, v))
}

// QuestTitleGTE applies the GTE predicate on the "quest_title" field.
func QuestTitleGTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldQuestTitle, v))
}

// QuestTitleLT applies the LT predicate on the "quest_title" field.
func QuestTitleLT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldQuestTitle, v))
}

// QuestTitleLTE applies the LTE predicate on the "quest_title" field.
func QuestTitleLTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldQuestTitle, v))
}

// QuestTitleContains applies the Contains predicate on the "quest_title" field.
func QuestTitleContains(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContains(FieldQuestTitle, v))
}

// QuestTitleHasPrefix applies the HasPrefix predicate on the "quest_title" field.
func QuestTitleHasPrefix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasPrefix(FieldQuestTitle, v))
}

// QuestTitleHasSuffix applies the HasSuffix predicate on the "quest_title" field.
func QuestTitleHasSuffix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasSuffix(FieldQuestTitle, v))
}

// QuestTitleEqualFold applies the EqualFold predicate on the "quest_title" field.
func QuestTitleEqualFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEqualFold(FieldQuestTitle, v))
}

// QuestTitleContainsFold applies the ContainsFold predicate on the "quest_title" field.
func QuestTitleContainsFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContainsFold(FieldQuestTitle, v))
}

// AdjustmentTypeEQ applies the EQ predicate on the "adjustment_type" field.
func AdjustmentTypeEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldAdjustmentType, v))
}

// AdjustmentTypeNEQ applies the NEQ predicate on the "adjustment_type" field.
func AdjustmentTypeNEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldAdjustmentType, v))
}

// AdjustmentTypeIn applies the In predicate on the "adjustment_type" field.
func AdjustmentTypeIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldAdjustmentType, vs...))
}

// AdjustmentTypeNotIn applies the NotIn predicate on the "adjustment_type" field.
func AdjustmentTypeNotIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldAdjustmentType, vs...))
}

// AdjustmentTypeGT applies the GT predicate on the "adjustment_type" field.
func AdjustmentTypeGT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldAdjustmentType, v))
}

// AdjustmentTypeGTE applies the GTE predicate on the "adjustment_type" field.
func AdjustmentTypeGTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldAdjustmentType, v))
}

// AdjustmentTypeLT applies the LT predicate on the "adjustment_type" field.
func AdjustmentTypeLT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldAdjustmentType, v))
}

// AdjustmentTypeLTE applies the LTE predicate on the "adjustment_type" field.
func AdjustmentTypeLTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldAdjustmentType, v))
}

// AdjustmentTypeContains applies the Contains predicate on the "adjustment_type" field.
func AdjustmentTypeContains(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContains(FieldAdjustmentType, v))
}

// AdjustmentTypeHasPrefix applies the HasPrefix predicate on the "adjustment_type" field.
func AdjustmentTypeHasPrefix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasPrefix(FieldAdjustmentType, v))
}

// AdjustmentTypeHasSuffix applies the HasSuffix predicate on the "adjustment_type" field.
func AdjustmentTypeHasSuffix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasSuffix(FieldAdjustmentType, v))
}

// AdjustmentTypeEqualFold applies the EqualFold predicate on the "adjustment_type" field.
func AdjustmentTypeEqualFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEqualFold(FieldAdjustmentType, v))
}

// AdjustmentTypeContainsFold applies the ContainsFold predicate on the "adjustment_type" field.
func AdjustmentTypeContainsFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContainsFold(FieldAdjustmentType, v))
}

// MagnitudeEQ applies the EQ predicate on the "magnitude" field.
func MagnitudeEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldMagnitude, v))
}

// MagnitudeNEQ applies the NEQ predicate on the "magnitude" field.
func MagnitudeNEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldMagnitude, v))
}

// MagnitudeIn applies the In predicate on the "magnitude" field.
func MagnitudeIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldMagnitude, vs...))
}

// MagnitudeNotIn applies the NotIn predicate on the "magnitude" field.
func MagnitudeNotIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldMagnitude, vs...))
}

// MagnitudeGT applies the GT predicate on the "magnitude" field.
func MagnitudeGT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldMagnitude, v))
}

// MagnitudeGTE applies the GTE predicate on the "magnitude" field.
func MagnitudeGTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldMagnitude, v))
}

// MagnitudeLT applies the LT predicate on the "magnitude" field.
func MagnitudeLT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldMagnitude, v))
}

// MagnitudeLTE applies the LTE predicate on the "magnitude" field.
func MagnitudeLTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldMagnitude, v))
}

// MagnitudeContains applies the Contains predicate on the "magnitude" field.
func MagnitudeContains(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContains(FieldMagnitude, v))
}

// MagnitudeHasPrefix applies the HasPrefix predicate on the "magnitude" field.
func MagnitudeHasPrefix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasPrefix(FieldMagnitude, v))
}

// MagnitudeHasSuffix applies the HasSuffix predicate on the "magnitude" field.
func MagnitudeHasSuffix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasSuffix(FieldMagnitude, v))
}

// MagnitudeEqualFold applies the EqualFold predicate on the "magnitude" field.
func MagnitudeEqualFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEqualFold(FieldMagnitude, v))
}

// MagnitudeContainsFold applies the ContainsFold predicate on the "magnitude" field.
func MagnitudeContainsFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContainsFold(FieldMagnitude, v))
}

// PreviousDifficultyEQ applies the EQ predicate on the "previous_difficulty" field.
func PreviousDifficultyEQ(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldPreviousDifficulty, v))
}

// PreviousDifficultyNEQ applies the NEQ predicate on the "previous_difficulty" field.
func PreviousDifficultyNEQ(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldPreviousDifficulty, v))
}

// PreviousDifficultyIn applies the In predicate on the "previous_difficulty" field.
func PreviousDifficultyIn(vs ...float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldPreviousDifficulty, vs...))
}

// PreviousDifficultyNotIn applies the NotIn predicate on the "previous_difficulty" field.
func PreviousDifficultyNotIn(vs ...float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldPreviousDifficulty, vs...))
}

// PreviousDifficultyGT applies the GT predicate on the "previous_difficulty" field.
func PreviousDifficultyGT(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldPreviousDifficulty, v))
}

// PreviousDifficultyGTE applies the GTE predicate on the "previous_difficulty" field.
func PreviousDifficultyGTE(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldPreviousDifficulty, v))
}

// PreviousDifficultyLT applies the LT predicate on the "previous_difficulty" field.
func PreviousDifficultyLT(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldPreviousDifficulty, v))
}

// PreviousDifficultyLTE applies the LTE predicate on the "previous_difficulty" field.
func PreviousDifficultyLTE(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldPreviousDifficulty, v))
}

// NewDifficultyEQ applies the EQ predicate on the "new_difficulty" field.
func NewDifficultyEQ(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldNewDifficulty, v))
}

// NewDifficultyNEQ applies the NEQ predicate on the "new_difficulty" field.
func NewDifficultyNEQ(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldNewDifficulty, v))
}

// NewDifficultyIn applies the In predicate on the "new_difficulty" field.
func NewDifficultyIn(vs ...float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldNewDifficulty, vs...))
}

// NewDifficultyNotIn applies the NotIn predicate on the "new_difficulty" field.
func NewDifficultyNotIn(vs ...float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldNewDifficulty, vs...))
}

// NewDifficultyGT applies the GT predicate on the "new_difficulty" field.
func NewDifficultyGT(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldNewDifficulty, v))
}

// NewDifficultyGTE applies the GTE predicate on the "new_difficulty" field.
func NewDifficultyGTE(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldNewDifficulty, v))
}

// NewDifficultyLT applies the LT predicate on the "new_difficulty" field.
func NewDifficultyLT(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldNewDifficulty, v))
}

// NewDifficultyLTE applies the LTE predicate on the "new_difficulty" field.
func NewDifficultyLTE(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldNewDifficulty, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldConfidence, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// RollbackEQ applies the EQ predicate on the "rollback" field.
func RollbackEQ(v bool) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldRollback, v))
}

// RollbackNEQ applies the NEQ predicate on the "rollback" field.
func RollbackNEQ(v bool) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldRollback, v))
}

// ReversesSequenceEQ applies the EQ predicate on the "reverses_sequence" field.
func ReversesSequenceEQ(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldReversesSequence, v))
}

// ReversesSequenceNEQ applies the NEQ predicate on the "reverses_sequence" field.
func ReversesSequenceNEQ(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldReversesSequence, v))
}

// ReversesSequenceIn applies the In predicate on the "reverses_sequence" field.
func ReversesSequenceIn(vs ...int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldReversesSequence, vs...))
}

// ReversesSequenceNotIn applies the NotIn predicate on the "reverses_sequence" field.
func ReversesSequenceNotIn(vs ...int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldReversesSequence, vs...))
}

// ReversesSequenceGT applies the GT predicate on the "reverses_sequence" field.
func ReversesSequenceGT(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldReversesSequence, v))
}

// ReversesSequenceGTE applies the GTE predicate on the "reverses_sequence" field.
func ReversesSequenceGTE(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldReversesSequence, v))
}

// ReversesSequenceLT applies the LT predicate on the "reverses_sequence" field.
func ReversesSequenceLT(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldReversesSequence, v))
}

// ReversesSequenceLTE applies the LTE predicate on the "reverses_sequence" field.
func ReversesSequenceLTE(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldReversesSequence, v))
}

// CompletionMarkEQ applies the EQ predicate on the "completion_mark" field.
func CompletionMarkEQ(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldCompletionMark, v))
}

// CompletionMarkNEQ applies the NEQ predicate on the "completion_mark" field.
func CompletionMarkNEQ(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldCompletionMark, v))
}

// CompletionMarkIn applies the In predicate on the "completion_mark" field.
func CompletionMarkIn(vs ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldCompletionMark, vs...))
}

// CompletionMarkNotIn applies the NotIn predicate on the "completion_mark" field.
func CompletionMarkNotIn(vs ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldCompletionMark, vs...))
}

// CompletionMarkGT applies the GT predicate on the "completion_mark" field.
func CompletionMarkGT(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldCompletionMark, v))
}

// CompletionMarkGTE applies the GTE predicate on the "completion_mark" field.
func CompletionMarkGTE(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldCompletionMark, v))
}

// CompletionMarkLT applies the LT predicate on the "completion_mark" field.
func CompletionMarkLT(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldCompletionMark, v))
}

// CompletionMarkLTE applies the LTE predicate on the "completion_mark" field.
func CompletionMarkLTE(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldCompletionMark, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdjustmentEvent) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdjustmentEvent) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdjustmentEvent) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.NotPredicates(p))
}
