// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questforge/ent/completionevent"
)

// CompletionEventCreate is the builder for creating a CompletionEvent entity.
type CompletionEventCreate struct {
	config
	mutation *CompletionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CompletionEventCreate) SetSequence(v int64) *CompletionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CompletionEventCreate) SetTimestamp(v time.Time) *CompletionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableTimestamp(v *time.Time) *CompletionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPlanDate sets the "plan_date" field.
func (_c *CompletionEventCreate) SetPlanDate(v string) *CompletionEventCreate {
	_c.mutation.SetPlanDate(v)
	return _c
}

// SetQuestTitle sets the "quest_title" field.
func (_c *CompletionEventCreate) SetQuestTitle(v string) *CompletionEventCreate {
	_c.mutation.SetQuestTitle(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *CompletionEventCreate) SetPattern(v string) *CompletionEventCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CompletionEventCreate) SetDifficulty(v float64) *CompletionEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_c *CompletionEventCreate) SetPlannedMinutes(v int) *CompletionEventCreate {
	_c.mutation.SetPlannedMinutes(v)
	return _c
}

// SetActualMinutes sets the "actual_minutes" field.
func (_c *CompletionEventCreate) SetActualMinutes(v int) *CompletionEventCreate {
	_c.mutation.SetActualMinutes(v)
	return _c
}

// SetNillableActualMinutes sets the "actual_minutes" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableActualMinutes(v *int) *CompletionEventCreate {
	if v != nil {
		_c.SetActualMinutes(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *CompletionEventCreate) SetCompleted(v bool) *CompletionEventCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *CompletionEventCreate) SetRating(v int) *CompletionEventCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableRating(v *int) *CompletionEventCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_c *CompletionEventCreate) Mutation() *CompletionEventMutation {
	return _c.mutation
}

// Save creates the CompletionEvent in the database.
func (_c *CompletionEventCreate) Save(ctx context.Context) (*CompletionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionEventCreate) SaveX(ctx context.Context) *CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := completionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ActualMinutes(); !ok {
		v := completionevent.DefaultActualMinutes
		_c.mutation.SetActualMinutes(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := completionevent.DefaultRating
		_c.mutation.SetRating(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CompletionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CompletionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PlanDate(); !ok {
		return &ValidationError{Name: "plan_date", err: errors.New(`ent: missing required field "CompletionEvent.plan_date"`)}
	}
	if v, ok := _c.mutation.PlanDate(); ok {
		if err := completionevent.PlanDateValidator(v); err != nil {
			return &ValidationError{Name: "plan_date", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.plan_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestTitle(); !ok {
		return &ValidationError{Name: "quest_title", err: errors.New(`ent: missing required field "CompletionEvent.quest_title"`)}
	}
	if v, ok := _c.mutation.QuestTitle(); ok {
		if err := completionevent.QuestTitleValidator(v); err != nil {
			return &ValidationError{Name: "quest_title", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.quest_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required field "CompletionEvent.pattern"`)}
	}
	if v, ok := _c.mutation.Pattern(); ok {
		if err := completionevent.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "CompletionEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.PlannedMinutes(); !ok {
		return &ValidationError{Name: "planned_minutes", err: errors.New(`ent: missing required field "CompletionEvent.planned_minutes"`)}
	}
	if _, ok := _c.mutation.ActualMinutes(); !ok {
		return &ValidationError{Name: "actual_minutes", err: errors.New(`ent: missing required field "CompletionEvent.actual_minutes"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "CompletionEvent.completed"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "CompletionEvent.rating"`)}
	}
	return nil
}

func (_c *CompletionEventCreate) sqlSave(ctx context.Context) (*CompletionEvent, error) {
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

func (_c *CompletionEventCreate) createSpec() (*CompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completionevent.Table, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(completionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(completionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PlanDate(); ok {
		_spec.SetField(completionevent.FieldPlanDate, field.TypeString, value)
		_node.PlanDate = value
	}
	if value, ok := _c.mutation.QuestTitle(); ok {
		_spec.SetField(completionevent.FieldQuestTitle, field.TypeString, value)
		_node.QuestTitle = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(completionevent.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(completionevent.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.PlannedMinutes(); ok {
		_spec.SetField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
		_node.PlannedMinutes = value
	}
	if value, ok := _c.mutation.ActualMinutes(); ok {
		_spec.SetField(completionevent.FieldActualMinutes, field.TypeInt, value)
		_node.ActualMinutes = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(completionevent.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(completionevent.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	return _node, _spec
}

// CompletionEventCreateBulk is the builder for creating many CompletionEvent entities in bulk.
type CompletionEventCreateBulk struct {
	config
	err      error
	builders []*CompletionEventCreate
}

// Save creates the CompletionEvent entities in the database.
func (_c *CompletionEventCreateBulk) Save(ctx context.Context) ([]*CompletionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompletionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionEventMutation)
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
func (_c *CompletionEventCreateBulk) SaveX(ctx context.Context) []*CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
