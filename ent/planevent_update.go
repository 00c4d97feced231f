// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questforge/ent/planevent"
	"github.com/abhisek/questforge/ent/predicate"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanEventUpdate) SetPlanID(v string) *PlanEventUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillablePlanID(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetPlanDate sets the "plan_date" field.
func (_u *PlanEventUpdate) SetPlanDate(v string) *PlanEventUpdate {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillablePlanDate(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// SetDayType sets the "day_type" field.
func (_u *PlanEventUpdate) SetDayType(v string) *PlanEventUpdate {
	_u.mutation.SetDayType(v)
	return _u
}

// SetNillableDayType sets the "day_type" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableDayType(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetDayType(*v)
	}
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *PlanEventUpdate) SetTotalMinutes(v int) *PlanEventUpdate {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableTotalMinutes(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *PlanEventUpdate) AddTotalMinutes(v int) *PlanEventUpdate {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetQuestCount sets the "quest_count" field.
func (_u *PlanEventUpdate) SetQuestCount(v int) *PlanEventUpdate {
	_u.mutation.ResetQuestCount()
	_u.mutation.SetQuestCount(v)
	return _u
}

// SetNillableQuestCount sets the "quest_count" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableQuestCount(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetQuestCount(*v)
	}
	return _u
}

// AddQuestCount adds value to the "quest_count" field.
func (_u *PlanEventUpdate) AddQuestCount(v int) *PlanEventUpdate {
	_u.mutation.AddQuestCount(v)
	return _u
}

// SetQuests sets the "quests" field.
func (_u *PlanEventUpdate) SetQuests(v []map[string]interface{}) *PlanEventUpdate {
	_u.mutation.SetQuests(v)
	return _u
}

// AppendQuests appends value to the "quests" field.
func (_u *PlanEventUpdate) AppendQuests(v []map[string]interface{}) *PlanEventUpdate {
	_u.mutation.AppendQuests(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *PlanEventUpdate) SetRationale(v []map[string]interface{}) *PlanEventUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// AppendRationale appends value to the "rationale" field.
func (_u *PlanEventUpdate) AppendRationale(v []map[string]interface{}) *PlanEventUpdate {
	_u.mutation.AppendRationale(v)
	return _u
}

// SetFallbackUsed sets the "fallback_used" field.
func (_u *PlanEventUpdate) SetFallbackUsed(v bool) *PlanEventUpdate {
	_u.mutation.SetFallbackUsed(v)
	return _u
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableFallbackUsed(v *bool) *PlanEventUpdate {
	if v != nil {
		_u.SetFallbackUsed(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdate) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanDate(); ok {
		if err := planevent.PlanDateValidator(v); err != nil {
			return &ValidationError{Name: "plan_date", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DayType(); ok {
		if err := planevent.DayTypeValidator(v); err != nil {
			return &ValidationError{Name: "day_type", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.day_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(planevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(planevent.FieldPlanDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.DayType(); ok {
		_spec.SetField(planevent.FieldDayType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(planevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(planevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestCount(); ok {
		_spec.SetField(planevent.FieldQuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestCount(); ok {
		_spec.AddField(planevent.FieldQuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quests(); ok {
		_spec.SetField(planevent.FieldQuests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldQuests, value)
		})
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(planevent.FieldRationale, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRationale(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldRationale, value)
		})
	}
	if value, ok := _u.mutation.FallbackUsed(); ok {
		_spec.SetField(planevent.FieldFallbackUsed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanEventUpdateOne) SetPlanID(v string) *PlanEventUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillablePlanID(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetPlanDate sets the "plan_date" field.
func (_u *PlanEventUpdateOne) SetPlanDate(v string) *PlanEventUpdateOne {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillablePlanDate(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// SetDayType sets the "day_type" field.
func (_u *PlanEventUpdateOne) SetDayType(v string) *PlanEventUpdateOne {
	_u.mutation.SetDayType(v)
	return _u
}

// SetNillableDayType sets the "day_type" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableDayType(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetDayType(*v)
	}
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *PlanEventUpdateOne) SetTotalMinutes(v int) *PlanEventUpdateOne {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableTotalMinutes(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *PlanEventUpdateOne) AddTotalMinutes(v int) *PlanEventUpdateOne {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetQuestCount sets the "quest_count" field.
func (_u *PlanEventUpdateOne) SetQuestCount(v int) *PlanEventUpdateOne {
	_u.mutation.ResetQuestCount()
	_u.mutation.SetQuestCount(v)
	return _u
}

// SetNillableQuestCount sets the "quest_count" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableQuestCount(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetQuestCount(*v)
	}
	return _u
}

// AddQuestCount adds value to the "quest_count" field.
func (_u *PlanEventUpdateOne) AddQuestCount(v int) *PlanEventUpdateOne {
	_u.mutation.AddQuestCount(v)
	return _u
}

// SetQuests sets the "quests" field.
func (_u *PlanEventUpdateOne) SetQuests(v []map[string]interface{}) *PlanEventUpdateOne {
	_u.mutation.SetQuests(v)
	return _u
}

// AppendQuests appends value to the "quests" field.
func (_u *PlanEventUpdateOne) AppendQuests(v []map[string]interface{}) *PlanEventUpdateOne {
	_u.mutation.AppendQuests(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *PlanEventUpdateOne) SetRationale(v []map[string]interface{}) *PlanEventUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// AppendRationale appends value to the "rationale" field.
func (_u *PlanEventUpdateOne) AppendRationale(v []map[string]interface{}) *PlanEventUpdateOne {
	_u.mutation.AppendRationale(v)
	return _u
}

// SetFallbackUsed sets the "fallback_used" field.
func (_u *PlanEventUpdateOne) SetFallbackUsed(v bool) *PlanEventUpdateOne {
	_u.mutation.SetFallbackUsed(v)
	return _u
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableFallbackUsed(v *bool) *PlanEventUpdateOne {
	if v != nil {
		_u.SetFallbackUsed(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdateOne) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanDate(); ok {
		if err := planevent.PlanDateValidator(v); err != nil {
			return &ValidationError{Name: "plan_date", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DayType(); ok {
		if err := planevent.DayTypeValidator(v); err != nil {
			return &ValidationError{Name: "day_type", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.day_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(planevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(planevent.FieldPlanDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.DayType(); ok {
		_spec.SetField(planevent.FieldDayType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(planevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(planevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestCount(); ok {
		_spec.SetField(planevent.FieldQuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestCount(); ok {
		_spec.AddField(planevent.FieldQuestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quests(); ok {
		_spec.SetField(planevent.FieldQuests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldQuests, value)
		})
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(planevent.FieldRationale, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRationale(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldRationale, value)
		})
	}
	if value, ok := _u.mutation.FallbackUsed(); ok {
		_spec.SetField(planevent.FieldFallbackUsed, field.TypeBool, value)
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
