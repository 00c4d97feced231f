// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questforge/ent/adjustmentevent"
	"github.com/abhisek/questforge/ent/predicate"
)

// AdjustmentEventUpdate is the builder for updating AdjustmentEvent entities.
type AdjustmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdjustmentEventMutation
}

// Where appends a list predicates to the AdjustmentEventUpdate builder.
func (_u *AdjustmentEventUpdate) Where(ps ...predicate.AdjustmentEvent) *AdjustmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestTitle sets the "quest_title" field.
func (_u *AdjustmentEventUpdate) SetQuestTitle(v string) *AdjustmentEventUpdate {
	_u.mutation.SetQuestTitle(v)
	return _u
}

// SetNillableQuestTitle sets the "quest_title" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableQuestTitle(v *string) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetQuestTitle(*v)
	}
	return _u
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_u *AdjustmentEventUpdate) SetAdjustmentType(v string) *AdjustmentEventUpdate {
	_u.mutation.SetAdjustmentType(v)
	return _u
}

// SetNillableAdjustmentType sets the "adjustment_type" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableAdjustmentType(v *string) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetAdjustmentType(*v)
	}
	return _u
}

// SetMagnitude sets the "magnitude" field.
func (_u *AdjustmentEventUpdate) SetMagnitude(v string) *AdjustmentEventUpdate {
	_u.mutation.SetMagnitude(v)
	return _u
}

// SetNillableMagnitude sets the "magnitude" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableMagnitude(v *string) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetMagnitude(*v)
	}
	return _u
}

// SetPreviousDifficulty sets the "previous_difficulty" field.
func (_u *AdjustmentEventUpdate) SetPreviousDifficulty(v float64) *AdjustmentEventUpdate {
	_u.mutation.ResetPreviousDifficulty()
	_u.mutation.SetPreviousDifficulty(v)
	return _u
}

// SetNillablePreviousDifficulty sets the "previous_difficulty" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillablePreviousDifficulty(v *float64) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetPreviousDifficulty(*v)
	}
	return _u
}

// AddPreviousDifficulty adds value to the "previous_difficulty" field.
func (_u *AdjustmentEventUpdate) AddPreviousDifficulty(v float64) *AdjustmentEventUpdate {
	_u.mutation.AddPreviousDifficulty(v)
	return _u
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_u *AdjustmentEventUpdate) SetNewDifficulty(v float64) *AdjustmentEventUpdate {
	_u.mutation.ResetNewDifficulty()
	_u.mutation.SetNewDifficulty(v)
	return _u
}

// SetNillableNewDifficulty sets the "new_difficulty" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableNewDifficulty(v *float64) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetNewDifficulty(*v)
	}
	return _u
}

// AddNewDifficulty adds value to the "new_difficulty" field.
func (_u *AdjustmentEventUpdate) AddNewDifficulty(v float64) *AdjustmentEventUpdate {
	_u.mutation.AddNewDifficulty(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AdjustmentEventUpdate) SetConfidence(v float64) *AdjustmentEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableConfidence(v *float64) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AdjustmentEventUpdate) AddConfidence(v float64) *AdjustmentEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AdjustmentEventUpdate) SetReasoning(v string) *AdjustmentEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableReasoning(v *string) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetRollback sets the "rollback" field.
func (_u *AdjustmentEventUpdate) SetRollback(v bool) *AdjustmentEventUpdate {
	_u.mutation.SetRollback(v)
	return _u
}

// SetNillableRollback sets the "rollback" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableRollback(v *bool) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetRollback(*v)
	}
	return _u
}

// SetReversesSequence sets the "reverses_sequence" field.
func (_u *AdjustmentEventUpdate) SetReversesSequence(v int64) *AdjustmentEventUpdate {
	_u.mutation.ResetReversesSequence()
	_u.mutation.SetReversesSequence(v)
	return _u
}

// SetNillableReversesSequence sets the "reverses_sequence" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableReversesSequence(v *int64) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetReversesSequence(*v)
	}
	return _u
}

// AddReversesSequence adds value to the "reverses_sequence" field.
func (_u *AdjustmentEventUpdate) AddReversesSequence(v int64) *AdjustmentEventUpdate {
	_u.mutation.AddReversesSequence(v)
	return _u
}

// SetCompletionMark sets the "completion_mark" field.
func (_u *AdjustmentEventUpdate) SetCompletionMark(v int) *AdjustmentEventUpdate {
	_u.mutation.ResetCompletionMark()
	_u.mutation.SetCompletionMark(v)
	return _u
}

// SetNillableCompletionMark sets the "completion_mark" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableCompletionMark(v *int) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetCompletionMark(*v)
	}
	return _u
}

// AddCompletionMark adds value to the "completion_mark" field.
func (_u *AdjustmentEventUpdate) AddCompletionMark(v int) *AdjustmentEventUpdate {
	_u.mutation.AddCompletionMark(v)
	return _u
}

// Mutation returns the AdjustmentEventMutation object of the builder.
func (_u *AdjustmentEventUpdate) Mutation() *AdjustmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdjustmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdjustmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdjustmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdjustmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdjustmentEventUpdate) check() error {
	if v, ok := _u.mutation.AdjustmentType(); ok {
		if err := adjustmentevent.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.adjustment_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AdjustmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adjustmentevent.Table, adjustmentevent.Columns, sqlgraph.NewFieldSpec(adjustmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestTitle(); ok {
		_spec.SetField(adjustmentevent.FieldQuestTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdjustmentType(); ok {
		_spec.SetField(adjustmentevent.FieldAdjustmentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Magnitude(); ok {
		_spec.SetField(adjustmentevent.FieldMagnitude, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousDifficulty(); ok {
		_spec.SetField(adjustmentevent.FieldPreviousDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPreviousDifficulty(); ok {
		_spec.AddField(adjustmentevent.FieldPreviousDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewDifficulty(); ok {
		_spec.SetField(adjustmentevent.FieldNewDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewDifficulty(); ok {
		_spec.AddField(adjustmentevent.FieldNewDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(adjustmentevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(adjustmentevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(adjustmentevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rollback(); ok {
		_spec.SetField(adjustmentevent.FieldRollback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReversesSequence(); ok {
		_spec.SetField(adjustmentevent.FieldReversesSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedReversesSequence(); ok {
		_spec.AddField(adjustmentevent.FieldReversesSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionMark(); ok {
		_spec.SetField(adjustmentevent.FieldCompletionMark, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionMark(); ok {
		_spec.AddField(adjustmentevent.FieldCompletionMark, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adjustmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdjustmentEventUpdateOne is the builder for updating a single AdjustmentEvent entity.
type AdjustmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdjustmentEventMutation
}

// SetQuestTitle sets the "quest_title" field.
func (_u *AdjustmentEventUpdateOne) SetQuestTitle(v string) *AdjustmentEventUpdateOne {
	_u.mutation.SetQuestTitle(v)
	return _u
}

// SetNillableQuestTitle sets the "quest_title" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableQuestTitle(v *string) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetQuestTitle(*v)
	}
	return _u
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_u *AdjustmentEventUpdateOne) SetAdjustmentType(v string) *AdjustmentEventUpdateOne {
	_u.mutation.SetAdjustmentType(v)
	return _u
}

// SetNillableAdjustmentType sets the "adjustment_type" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableAdjustmentType(v *string) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetAdjustmentType(*v)
	}
	return _u
}

// SetMagnitude sets the "magnitude" field.
func (_u *AdjustmentEventUpdateOne) SetMagnitude(v string) *AdjustmentEventUpdateOne {
	_u.mutation.SetMagnitude(v)
	return _u
}

// SetNillableMagnitude sets the "magnitude" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableMagnitude(v *string) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetMagnitude(*v)
	}
	return _u
}

// SetPreviousDifficulty sets the "previous_difficulty" field.
func (_u *AdjustmentEventUpdateOne) SetPreviousDifficulty(v float64) *AdjustmentEventUpdateOne {
	_u.mutation.ResetPreviousDifficulty()
	_u.mutation.SetPreviousDifficulty(v)
	return _u
}

// SetNillablePreviousDifficulty sets the "previous_difficulty" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillablePreviousDifficulty(v *float64) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetPreviousDifficulty(*v)
	}
	return _u
}

// AddPreviousDifficulty adds value to the "previous_difficulty" field.
func (_u *AdjustmentEventUpdateOne) AddPreviousDifficulty(v float64) *AdjustmentEventUpdateOne {
	_u.mutation.AddPreviousDifficulty(v)
	return _u
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_u *AdjustmentEventUpdateOne) SetNewDifficulty(v float64) *AdjustmentEventUpdateOne {
	_u.mutation.ResetNewDifficulty()
	_u.mutation.SetNewDifficulty(v)
	return _u
}

// SetNillableNewDifficulty sets the "new_difficulty" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableNewDifficulty(v *float64) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetNewDifficulty(*v)
	}
	return _u
}

// AddNewDifficulty adds value to the "new_difficulty" field.
func (_u *AdjustmentEventUpdateOne) AddNewDifficulty(v float64) *AdjustmentEventUpdateOne {
	_u.mutation.AddNewDifficulty(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AdjustmentEventUpdateOne) SetConfidence(v float64) *AdjustmentEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableConfidence(v *float64) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AdjustmentEventUpdateOne) AddConfidence(v float64) *AdjustmentEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AdjustmentEventUpdateOne) SetReasoning(v string) *AdjustmentEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableReasoning(v *string) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetRollback sets the "rollback" field.
func (_u *AdjustmentEventUpdateOne) SetRollback(v bool) *AdjustmentEventUpdateOne {
	_u.mutation.SetRollback(v)
	return _u
}

// SetNillableRollback sets the "rollback" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableRollback(v *bool) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetRollback(*v)
	}
	return _u
}

// SetReversesSequence sets the "reverses_sequence" field.
func (_u *AdjustmentEventUpdateOne) SetReversesSequence(v int64) *AdjustmentEventUpdateOne {
	_u.mutation.ResetReversesSequence()
	_u.mutation.SetReversesSequence(v)
	return _u
}

// SetNillableReversesSequence sets the "reverses_sequence" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableReversesSequence(v *int64) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetReversesSequence(*v)
	}
	return _u
}

// AddReversesSequence adds value to the "reverses_sequence" field.
func (_u *AdjustmentEventUpdateOne) AddReversesSequence(v int64) *AdjustmentEventUpdateOne {
	_u.mutation.AddReversesSequence(v)
	return _u
}

// SetCompletionMark sets the "completion_mark" field.
func (_u *AdjustmentEventUpdateOne) SetCompletionMark(v int) *AdjustmentEventUpdateOne {
	_u.mutation.ResetCompletionMark()
	_u.mutation.SetCompletionMark(v)
	return _u
}

// SetNillableCompletionMark sets the "completion_mark" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableCompletionMark(v *int) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetCompletionMark(*v)
	}
	return _u
}

// AddCompletionMark adds value to the "completion_mark" field.
func (_u *AdjustmentEventUpdateOne) AddCompletionMark(v int) *AdjustmentEventUpdateOne {
	_u.mutation.AddCompletionMark(v)
	return _u
}

// Mutation returns the AdjustmentEventMutation object of the builder.
func (_u *AdjustmentEventUpdateOne) Mutation() *AdjustmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdjustmentEventUpdate builder.
func (_u *AdjustmentEventUpdateOne) Where(ps ...predicate.AdjustmentEvent) *AdjustmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdjustmentEventUpdateOne) Select(field string, fields ...string) *AdjustmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdjustmentEvent entity.
func (_u *AdjustmentEventUpdateOne) Save(ctx context.Context) (*AdjustmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdjustmentEventUpdateOne) SaveX(ctx context.Context) *AdjustmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdjustmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdjustmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdjustmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.AdjustmentType(); ok {
		if err := adjustmentevent.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.adjustment_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AdjustmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AdjustmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adjustmentevent.Table, adjustmentevent.Columns, sqlgraph.NewFieldSpec(adjustmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdjustmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adjustmentevent.FieldID)
		for _, f := range fields {
			if !adjustmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adjustmentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestTitle(); ok {
		_spec.SetField(adjustmentevent.FieldQuestTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdjustmentType(); ok {
		_spec.SetField(adjustmentevent.FieldAdjustmentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Magnitude(); ok {
		_spec.SetField(adjustmentevent.FieldMagnitude, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousDifficulty(); ok {
		_spec.SetField(adjustmentevent.FieldPreviousDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPreviousDifficulty(); ok {
		_spec.AddField(adjustmentevent.FieldPreviousDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewDifficulty(); ok {
		_spec.SetField(adjustmentevent.FieldNewDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewDifficulty(); ok {
		_spec.AddField(adjustmentevent.FieldNewDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(adjustmentevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(adjustmentevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(adjustmentevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rollback(); ok {
		_spec.SetField(adjustmentevent.FieldRollback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReversesSequence(); ok {
		_spec.SetField(adjustmentevent.FieldReversesSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedReversesSequence(); ok {
		_spec.AddField(adjustmentevent.FieldReversesSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionMark(); ok {
		_spec.SetField(adjustmentevent.FieldCompletionMark, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionMark(); ok {
		_spec.AddField(adjustmentevent.FieldCompletionMark, field.TypeInt, value)
	}
	_node = &AdjustmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adjustmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
