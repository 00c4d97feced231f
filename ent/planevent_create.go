// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questforge/ent/planevent"
)

// PlanEventCreate is the builder for creating a PlanEvent entity.
type PlanEventCreate struct {
	config
	mutation *PlanEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PlanEventCreate) SetSequence(v int64) *PlanEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlanEventCreate) SetTimestamp(v time.Time) *PlanEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableTimestamp(v *time.Time) *PlanEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *PlanEventCreate) SetPlanID(v string) *PlanEventCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetPlanDate sets the "plan_date" field.
func (_c *PlanEventCreate) SetPlanDate(v string) *PlanEventCreate {
	_c.mutation.SetPlanDate(v)
	return _c
}

// SetDayType sets the "day_type" field.
func (_c *PlanEventCreate) SetDayType(v string) *PlanEventCreate {
	_c.mutation.SetDayType(v)
	return _c
}

// SetTotalMinutes sets the "total_minutes" field.
func (_c *PlanEventCreate) SetTotalMinutes(v int) *PlanEventCreate {
	_c.mutation.SetTotalMinutes(v)
	return _c
}

// SetQuestCount sets the "quest_count" field.
func (_c *PlanEventCreate) SetQuestCount(v int) *PlanEventCreate {
	_c.mutation.SetQuestCount(v)
	return _c
}

// SetQuests sets the "quests" field.
func (_c *PlanEventCreate) SetQuests(v []map[string]interface{}) *PlanEventCreate {
	_c.mutation.SetQuests(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *PlanEventCreate) SetRationale(v []map[string]interface{}) *PlanEventCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetFallbackUsed sets the "fallback_used" field.
func (_c *PlanEventCreate) SetFallbackUsed(v bool) *PlanEventCreate {
	_c.mutation.SetFallbackUsed(v)
	return _c
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableFallbackUsed(v *bool) *PlanEventCreate {
	if v != nil {
		_c.SetFallbackUsed(*v)
	}
	return _c
}

// Mutation returns the PlanEventMutation object of the builder.
func (_c *PlanEventCreate) Mutation() *PlanEventMutation {
	return _c.mutation
}

// Save creates the PlanEvent in the database.
func (_c *PlanEventCreate) Save(ctx context.Context) (*PlanEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanEventCreate) SaveX(ctx context.Context) *PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := planevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.FallbackUsed(); !ok {
		v := planevent.DefaultFallbackUsed
		_c.mutation.SetFallbackUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlanEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlanEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "PlanEvent.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := planevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanDate(); !ok {
		return &ValidationError{Name: "plan_date", err: errors.New(`ent: missing required field "PlanEvent.plan_date"`)}
	}
	if v, ok := _c.mutation.PlanDate(); ok {
		if err := planevent.PlanDateValidator(v); err != nil {
			return &ValidationError{Name: "plan_date", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DayType(); !ok {
		return &ValidationError{Name: "day_type", err: errors.New(`ent: missing required field "PlanEvent.day_type"`)}
	}
	if v, ok := _c.mutation.DayType(); ok {
		if err := planevent.DayTypeValidator(v); err != nil {
			return &ValidationError{Name: "day_type", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.day_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		return &ValidationError{Name: "total_minutes", err: errors.New(`ent: missing required field "PlanEvent.total_minutes"`)}
	}
	if _, ok := _c.mutation.QuestCount(); !ok {
		return &ValidationError{Name: "quest_count", err: errors.New(`ent: missing required field "PlanEvent.quest_count"`)}
	}
	if _, ok := _c.mutation.Quests(); !ok {
		return &ValidationError{Name: "quests", err: errors.New(`ent: missing required field "PlanEvent.quests"`)}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "PlanEvent.rationale"`)}
	}
	if _, ok := _c.mutation.FallbackUsed(); !ok {
		return &ValidationError{Name: "fallback_used", err: errors.New(`ent: missing required field "PlanEvent.fallback_used"`)}
	}
	return nil
}

func (_c *PlanEventCreate) sqlSave(ctx context.Context) (*PlanEvent, error) {
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

func (_c *PlanEventCreate) createSpec() (*PlanEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planevent.Table, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(planevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(planevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(planevent.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.PlanDate(); ok {
		_spec.SetField(planevent.FieldPlanDate, field.TypeString, value)
		_node.PlanDate = value
	}
	if value, ok := _c.mutation.DayType(); ok {
		_spec.SetField(planevent.FieldDayType, field.TypeString, value)
		_node.DayType = value
	}
	if value, ok := _c.mutation.TotalMinutes(); ok {
		_spec.SetField(planevent.FieldTotalMinutes, field.TypeInt, value)
		_node.TotalMinutes = value
	}
	if value, ok := _c.mutation.QuestCount(); ok {
		_spec.SetField(planevent.FieldQuestCount, field.TypeInt, value)
		_node.QuestCount = value
	}
	if value, ok := _c.mutation.Quests(); ok {
		_spec.SetField(planevent.FieldQuests, field.TypeJSON, value)
		_node.Quests = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(planevent.FieldRationale, field.TypeJSON, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.FallbackUsed(); ok {
		_spec.SetField(planevent.FieldFallbackUsed, field.TypeBool, value)
		_node.FallbackUsed = value
	}
	return _node, _spec
}

// PlanEventCreateBulk is the builder for creating many PlanEvent entities in bulk.
type PlanEventCreateBulk struct {
	config
	err      error
	builders []*PlanEventCreate
}

// Save creates the PlanEvent entities in the database.
func (_c *PlanEventCreateBulk) Save(ctx context.Context) ([]*PlanEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanEventMutation)
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
func (_c *PlanEventCreateBulk) SaveX(ctx context.Context) []*PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
