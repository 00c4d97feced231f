// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/questforge/ent/adjustmentevent"
	"github.com/abhisek/questforge/ent/completionevent"
	"github.com/abhisek/questforge/ent/llmrequestevent"
	"github.com/abhisek/questforge/ent/planevent"
	"github.com/abhisek/questforge/ent/schema"
	"github.com/abhisek/questforge/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adjustmenteventMixin := schema.AdjustmentEvent{}.Mixin()
	adjustmenteventMixinFields0 := adjustmenteventMixin[0].Fields()
	_ = adjustmenteventMixinFields0
	adjustmenteventFields := schema.AdjustmentEvent{}.Fields()
	_ = adjustmenteventFields
	// adjustmenteventDescTimestamp is the schema descriptor for timestamp field.
	adjustmenteventDescTimestamp := adjustmenteventMixinFields0[1].Descriptor()
	// adjustmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	adjustmentevent.DefaultTimestamp = adjustmenteventDescTimestamp.Default.(func() time.Time)
	// adjustmenteventDescQuestTitle is the schema descriptor for quest_title field.
	adjustmenteventDescQuestTitle := adjustmenteventFields[0].Descriptor()
	// adjustmentevent.DefaultQuestTitle holds the default value on creation for the quest_title field.
	adjustmentevent.DefaultQuestTitle = adjustmenteventDescQuestTitle.Default.(string)
	// adjustmenteventDescAdjustmentType is the schema descriptor for adjustment_type field.
	adjustmenteventDescAdjustmentType := adjustmenteventFields[1].Descriptor()
	// adjustmentevent.AdjustmentTypeValidator is a validator for the "adjustment_type" field. It is called by the builders before save.
	adjustmentevent.AdjustmentTypeValidator = adjustmenteventDescAdjustmentType.Validators[0].(func(string) error)
	// adjustmenteventDescMagnitude is the schema descriptor for magnitude field.
	adjustmenteventDescMagnitude := adjustmenteventFields[2].Descriptor()
	// adjustmentevent.DefaultMagnitude holds the default value on creation for the magnitude field.
	adjustmentevent.DefaultMagnitude = adjustmenteventDescMagnitude.Default.(string)
	// adjustmenteventDescReasoning is the schema descriptor for reasoning field.
	adjustmenteventDescReasoning := adjustmenteventFields[6].Descriptor()
	// adjustmentevent.DefaultReasoning holds the default value on creation for the reasoning field.
	adjustmentevent.DefaultReasoning = adjustmenteventDescReasoning.Default.(string)
	// adjustmenteventDescRollback is the schema descriptor for rollback field.
	adjustmenteventDescRollback := adjustmenteventFields[7].Descriptor()
	// adjustmentevent.DefaultRollback holds the default value on creation for the rollback field.
	adjustmentevent.DefaultRollback = adjustmenteventDescRollback.Default.(bool)
	// adjustmenteventDescReversesSequence is the schema descriptor for reverses_sequence field.
	adjustmenteventDescReversesSequence := adjustmenteventFields[8].Descriptor()
	// adjustmentevent.DefaultReversesSequence holds the default value on creation for the reverses_sequence field.
	adjustmentevent.DefaultReversesSequence = adjustmenteventDescReversesSequence.Default.(int64)
	// adjustmenteventDescCompletionMark is the schema descriptor for completion_mark field.
	adjustmenteventDescCompletionMark := adjustmenteventFields[9].Descriptor()
	// adjustmentevent.DefaultCompletionMark holds the default value on creation for the completion_mark field.
	adjustmentevent.DefaultCompletionMark = adjustmenteventDescCompletionMark.Default.(int)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescPlanDate is the schema descriptor for plan_date field.
	completioneventDescPlanDate := completioneventFields[0].Descriptor()
	// completionevent.PlanDateValidator is a validator for the "plan_date" field. It is called by the builders before save.
	completionevent.PlanDateValidator = completioneventDescPlanDate.Validators[0].(func(string) error)
	// completioneventDescQuestTitle is the schema descriptor for quest_title field.
	completioneventDescQuestTitle := completioneventFields[1].Descriptor()
	// completionevent.QuestTitleValidator is a validator for the "quest_title" field. It is called by the builders before save.
	completionevent.QuestTitleValidator = completioneventDescQuestTitle.Validators[0].(func(string) error)
	// completioneventDescPattern is the schema descriptor for pattern field.
	completioneventDescPattern := completioneventFields[2].Descriptor()
	// completionevent.PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	completionevent.PatternValidator = completioneventDescPattern.Validators[0].(func(string) error)
	// completioneventDescActualMinutes is the schema descriptor for actual_minutes field.
	completioneventDescActualMinutes := completioneventFields[5].Descriptor()
	// completionevent.DefaultActualMinutes holds the default value on creation for the actual_minutes field.
	completionevent.DefaultActualMinutes = completioneventDescActualMinutes.Default.(int)
	// completioneventDescRating is the schema descriptor for rating field.
	completioneventDescRating := completioneventFields[7].Descriptor()
	// completionevent.DefaultRating holds the default value on creation for the rating field.
	completionevent.DefaultRating = completioneventDescRating.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	planeventMixin := schema.PlanEvent{}.Mixin()
	planeventMixinFields0 := planeventMixin[0].Fields()
	_ = planeventMixinFields0
	planeventFields := schema.PlanEvent{}.Fields()
	_ = planeventFields
	// planeventDescTimestamp is the schema descriptor for timestamp field.
	planeventDescTimestamp := planeventMixinFields0[1].Descriptor()
	// planevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	planevent.DefaultTimestamp = planeventDescTimestamp.Default.(func() time.Time)
	// planeventDescPlanID is the schema descriptor for plan_id field.
	planeventDescPlanID := planeventFields[0].Descriptor()
	// planevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	planevent.PlanIDValidator = planeventDescPlanID.Validators[0].(func(string) error)
	// planeventDescPlanDate is the schema descriptor for plan_date field.
	planeventDescPlanDate := planeventFields[1].Descriptor()
	// planevent.PlanDateValidator is a validator for the "plan_date" field. It is called by the builders before save.
	planevent.PlanDateValidator = planeventDescPlanDate.Validators[0].(func(string) error)
	// planeventDescDayType is the schema descriptor for day_type field.
	planeventDescDayType := planeventFields[2].Descriptor()
	// planevent.DayTypeValidator is a validator for the "day_type" field. It is called by the builders before save.
	planevent.DayTypeValidator = planeventDescDayType.Validators[0].(func(string) error)
	// planeventDescFallbackUsed is the schema descriptor for fallback_used field.
	planeventDescFallbackUsed := planeventFields[7].Descriptor()
	// planevent.DefaultFallbackUsed holds the default value on creation for the fallback_used field.
	planevent.DefaultFallbackUsed = planeventDescFallbackUsed.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
