// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questforge/ent/adjustmentevent"
)

// AdjustmentEventCreate is the builder for creating a AdjustmentEvent entity.
type AdjustmentEventCreate struct {
	config
	mutation *AdjustmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AdjustmentEventCreate) SetSequence(v int64) *AdjustmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AdjustmentEventCreate) SetTimestamp(v time.Time) *AdjustmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableTimestamp(v *time.Time) *AdjustmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestTitle sets the "quest_title" field.
func (_c *AdjustmentEventCreate) SetQuestTitle(v string) *AdjustmentEventCreate {
	_c.mutation.SetQuestTitle(v)
	return _c
}

// SetNillableQuestTitle sets the "quest_title" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableQuestTitle(v *string) *AdjustmentEventCreate {
	if v != nil {
		_c.SetQuestTitle(*v)
	}
	return _c
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_c *AdjustmentEventCreate) SetAdjustmentType(v string) *AdjustmentEventCreate {
	_c.mutation.SetAdjustmentType(v)
	return _c
}

// SetMagnitude sets the "magnitude" field.
func (_c *AdjustmentEventCreate) SetMagnitude(v string) *AdjustmentEventCreate {
	_c.mutation.SetMagnitude(v)
	return _c
}

// SetNillableMagnitude sets the "magnitude" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableMagnitude(v *string) *AdjustmentEventCreate {
	if v != nil {
		_c.SetMagnitude(*v)
	}
	return _c
}

// SetPreviousDifficulty sets the "previous_difficulty" field.
func (_c *AdjustmentEventCreate) SetPreviousDifficulty(v float64) *AdjustmentEventCreate {
	_c.mutation.SetPreviousDifficulty(v)
	return _c
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_c *AdjustmentEventCreate) SetNewDifficulty(v float64) *AdjustmentEventCreate {
	_c.mutation.SetNewDifficulty(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AdjustmentEventCreate) SetConfidence(v float64) *AdjustmentEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *AdjustmentEventCreate) SetReasoning(v string) *AdjustmentEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableReasoning(v *string) *AdjustmentEventCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetRollback sets the "rollback" field.
func (_c *AdjustmentEventCreate) SetRollback(v bool) *AdjustmentEventCreate {
	_c.mutation.SetRollback(v)
	return _c
}

// SetNillableRollback sets the "rollback" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableRollback(v *bool) *AdjustmentEventCreate {
	if v != nil {
		_c.SetRollback(*v)
	}
	return _c
}

// SetReversesSequence sets the "reverses_sequence" field.
func (_c *AdjustmentEventCreate) SetReversesSequence(v int64) *AdjustmentEventCreate {
	_c.mutation.SetReversesSequence(v)
	return _c
}

// SetNillableReversesSequence sets the "reverses_sequence" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableReversesSequence(v *int64) *AdjustmentEventCreate {
	if v != nil {
		_c.SetReversesSequence(*v)
	}
	return _c
}

// SetCompletionMark sets the "completion_mark" field.
func (_c *AdjustmentEventCreate) SetCompletionMark(v int) *AdjustmentEventCreate {
	_c.mutation.SetCompletionMark(v)
	return _c
}

// SetNillableCompletionMark sets the "completion_mark" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableCompletionMark(v *int) *AdjustmentEventCreate {
	if v != nil {
		_c.SetCompletionMark(*v)
	}
	return _c
}

// Mutation returns the AdjustmentEventMutation object of the builder.
func (_c *AdjustmentEventCreate) Mutation() *AdjustmentEventMutation {
	return _c.mutation
}

// Save creates the AdjustmentEvent in the database.
func (_c *AdjustmentEventCreate) Save(ctx context.Context) (*AdjustmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdjustmentEventCreate) SaveX(ctx context.Context) *AdjustmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdjustmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdjustmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdjustmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := adjustmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestTitle(); !ok {
		v := adjustmentevent.DefaultQuestTitle
		_c.mutation.SetQuestTitle(v)
	}
	if _, ok := _c.mutation.Magnitude(); !ok {
		v := adjustmentevent.DefaultMagnitude
		_c.mutation.SetMagnitude(v)
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := adjustmentevent.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
	if _, ok := _c.mutation.Rollback(); !ok {
		v := adjustmentevent.DefaultRollback
		_c.mutation.SetRollback(v)
	}
	if _, ok := _c.mutation.ReversesSequence(); !ok {
		v := adjustmentevent.DefaultReversesSequence
		_c.mutation.SetReversesSequence(v)
	}
	if _, ok := _c.mutation.CompletionMark(); !ok {
		v := adjustmentevent.DefaultCompletionMark
		_c.mutation.SetCompletionMark(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdjustmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AdjustmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AdjustmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestTitle(); !ok {
		return &ValidationError{Name: "quest_title", err: errors.New(`ent: missing required field "AdjustmentEvent.quest_title"`)}
	}
	if _, ok := _c.mutation.AdjustmentType(); !ok {
		return &ValidationError{Name: "adjustment_type", err: errors.New(`ent: missing required field "AdjustmentEvent.adjustment_type"`)}
	}
	if v, ok := _c.mutation.AdjustmentType(); ok {
		if err := adjustmentevent.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.adjustment_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Magnitude(); !ok {
		return &ValidationError{Name: "magnitude", err: errors.New(`ent: missing required field "AdjustmentEvent.magnitude"`)}
	}
	if _, ok := _c.mutation.PreviousDifficulty(); !ok {
		return &ValidationError{Name: "previous_difficulty", err: errors.New(`ent: missing required field "AdjustmentEvent.previous_difficulty"`)}
	}
	if _, ok := _c.mutation.NewDifficulty(); !ok {
		return &ValidationError{Name: "new_difficulty", err: errors.New(`ent: missing required field "AdjustmentEvent.new_difficulty"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AdjustmentEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "AdjustmentEvent.reasoning"`)}
	}
	if _, ok := _c.mutation.Rollback(); !ok {
		return &ValidationError{Name: "rollback", err: errors.New(`ent: missing required field "AdjustmentEvent.rollback"`)}
	}
	if _, ok := _c.mutation.ReversesSequence(); !ok {
		return &ValidationError{Name: "reverses_sequence", err: errors.New(`ent: missing required field "AdjustmentEvent.reverses_sequence"`)}
	}
	if _, ok := _c.mutation.CompletionMark(); !ok {
		return &ValidationError{Name: "completion_mark", err: errors.New(`ent: missing required field "AdjustmentEvent.completion_mark"`)}
	}
	return nil
}

func (_c *AdjustmentEventCreate) sqlSave(ctx context.Context) (*AdjustmentEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdjustmentEventCreate) createSpec() (*AdjustmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AdjustmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adjustmentevent.Table, sqlgraph.NewFieldSpec(adjustmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(adjustmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(adjustmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestTitle(); ok {
		_spec.SetField(adjustmentevent.FieldQuestTitle, field.TypeString, value)
		_node.QuestTitle = value
	}
	if value, ok := _c.mutation.AdjustmentType(); ok {
		_spec.SetField(adjustmentevent.FieldAdjustmentType, field.TypeString, value)
		_node.AdjustmentType = value
	}
	if value, ok := _c.mutation.Magnitude(); ok {
		_spec.SetField(adjustmentevent.FieldMagnitude, field.TypeString, value)
		_node.Magnitude = value
	}
	if value, ok := _c.mutation.PreviousDifficulty(); ok {
		_spec.SetField(adjustmentevent.FieldPreviousDifficulty, field.TypeFloat64, value)
		_node.PreviousDifficulty = value
	}
	if value, ok := _c.mutation.NewDifficulty(); ok {
		_spec.SetField(adjustmentevent.FieldNewDifficulty, field.TypeFloat64, value)
		_node.NewDifficulty = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(adjustmentevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(adjustmentevent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Rollback(); ok {
		_spec.SetField(adjustmentevent.FieldRollback, field.TypeBool, value)
		_node.Rollback = value
	}
	if value, ok := _c.mutation.ReversesSequence(); ok {
		_spec.SetField(adjustmentevent.FieldReversesSequence, field.TypeInt64, value)
		_node.ReversesSequence = value
	}
	if value, ok := _c.mutation.CompletionMark(); ok {
		_spec.SetField(adjustmentevent.FieldCompletionMark, field.TypeInt, value)
		_node.CompletionMark = value
	}
	return _node, _spec
}

// AdjustmentEventCreateBulk is the builder for creating many AdjustmentEvent entities in bulk.
type AdjustmentEventCreateBulk struct {
	config
	err      error
	builders []*AdjustmentEventCreate
}

// Save creates the AdjustmentEvent entities in the database.
func (_c *AdjustmentEventCreateBulk) Save(ctx context.Context) ([]*AdjustmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdjustmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdjustmentEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AdjustmentEventCreateBulk) SaveX(ctx context.Context) []*AdjustmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdjustmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdjustmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
