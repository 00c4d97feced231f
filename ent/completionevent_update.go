// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questforge/ent/completionevent"
	"github.com/abhisek/questforge/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanDate sets the "plan_date" field.
func (_u *CompletionEventUpdate) SetPlanDate(v string) *CompletionEventUpdate {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillablePlanDate(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// SetQuestTitle sets the "quest_title" field.
func (_u *CompletionEventUpdate) SetQuestTitle(v string) *CompletionEventUpdate {
	_u.mutation.SetQuestTitle(v)
	return _u
}

// SetNillableQuestTitle sets the "quest_title" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableQuestTitle(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetQuestTitle(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *CompletionEventUpdate) SetPattern(v string) *CompletionEventUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillablePattern(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CompletionEventUpdate) SetDifficulty(v float64) *CompletionEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableDifficulty(v *float64) *CompletionEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CompletionEventUpdate) AddDifficulty(v float64) *CompletionEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_u *CompletionEventUpdate) SetPlannedMinutes(v int) *CompletionEventUpdate {
	_u.mutation.ResetPlannedMinutes()
	_u.mutation.SetPlannedMinutes(v)
	return _u
}

// SetNillablePlannedMinutes sets the "planned_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillablePlannedMinutes(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetPlannedMinutes(*v)
	}
	return _u
}

// AddPlannedMinutes adds value to the "planned_minutes" field.
func (_u *CompletionEventUpdate) AddPlannedMinutes(v int) *CompletionEventUpdate {
	_u.mutation.AddPlannedMinutes(v)
	return _u
}

// SetActualMinutes sets the "actual_minutes" field.
func (_u *CompletionEventUpdate) SetActualMinutes(v int) *CompletionEventUpdate {
	_u.mutation.ResetActualMinutes()
	_u.mutation.SetActualMinutes(v)
	return _u
}

// SetNillableActualMinutes sets the "actual_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableActualMinutes(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetActualMinutes(*v)
	}
	return _u
}

// AddActualMinutes adds value to the "actual_minutes" field.
func (_u *CompletionEventUpdate) AddActualMinutes(v int) *CompletionEventUpdate {
	_u.mutation.AddActualMinutes(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *CompletionEventUpdate) SetCompleted(v bool) *CompletionEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableCompleted(v *bool) *CompletionEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *CompletionEventUpdate) SetRating(v int) *CompletionEventUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableRating(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *CompletionEventUpdate) AddRating(v int) *CompletionEventUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.PlanDate(); ok {
		if err := completionevent.PlanDateValidator(v); err != nil {
			return &ValidationError{Name: "plan_date", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.plan_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestTitle(); ok {
		if err := completionevent.QuestTitleValidator(v); err != nil {
			return &ValidationError{Name: "quest_title", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.quest_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := completionevent.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(completionevent.FieldPlanDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestTitle(); ok {
		_spec.SetField(completionevent.FieldQuestTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(completionevent.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(completionevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(completionevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PlannedMinutes(); ok {
		_spec.SetField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMinutes(); ok {
		_spec.AddField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualMinutes(); ok {
		_spec.SetField(completionevent.FieldActualMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualMinutes(); ok {
		_spec.AddField(completionevent.FieldActualMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(completionevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(completionevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(completionevent.FieldRating, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetPlanDate sets the "plan_date" field.
func (_u *CompletionEventUpdateOne) SetPlanDate(v string) *CompletionEventUpdateOne {
	_u.mutation.SetPlanDate(v)
	return _u
}

// SetNillablePlanDate sets the "plan_date" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillablePlanDate(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetPlanDate(*v)
	}
	return _u
}

// SetQuestTitle sets the "quest_title" field.
func (_u *CompletionEventUpdateOne) SetQuestTitle(v string) *CompletionEventUpdateOne {
	_u.mutation.SetQuestTitle(v)
	return _u
}

// SetNillableQuestTitle sets the "quest_title" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableQuestTitle(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetQuestTitle(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *CompletionEventUpdateOne) SetPattern(v string) *CompletionEventUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillablePattern(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CompletionEventUpdateOne) SetDifficulty(v float64) *CompletionEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableDifficulty(v *float64) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CompletionEventUpdateOne) AddDifficulty(v float64) *CompletionEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (_u *CompletionEventUpdateOne) SetPlannedMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetPlannedMinutes()
	_u.mutation.SetPlannedMinutes(v)
	return _u
}

// SetNillablePlannedMinutes sets the "planned_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillablePlannedMinutes(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetPlannedMinutes(*v)
	}
	return _u
}

// AddPlannedMinutes adds value to the "planned_minutes" field.
func (_u *CompletionEventUpdateOne) AddPlannedMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.AddPlannedMinutes(v)
	return _u
}

// SetActualMinutes sets the "actual_minutes" field.
func (_u *CompletionEventUpdateOne) SetActualMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetActualMinutes()
	_u.mutation.SetActualMinutes(v)
	return _u
}

// SetNillableActualMinutes sets the "actual_minutes" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableActualMinutes(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetActualMinutes(*v)
	}
	return _u
}

// AddActualMinutes adds value to the "actual_minutes" field.
func (_u *CompletionEventUpdateOne) AddActualMinutes(v int) *CompletionEventUpdateOne {
	_u.mutation.AddActualMinutes(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *CompletionEventUpdateOne) SetCompleted(v bool) *CompletionEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableCompleted(v *bool) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *CompletionEventUpdateOne) SetRating(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableRating(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *CompletionEventUpdateOne) AddRating(v int) *CompletionEventUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.PlanDate(); ok {
		if err := completionevent.PlanDateValidator(v); err != nil {
			return &ValidationError{Name: "plan_date", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.plan_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestTitle(); ok {
		if err := completionevent.QuestTitleValidator(v); err != nil {
			return &ValidationError{Name: "quest_title", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.quest_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := completionevent.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
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
	if value, ok := _u.mutation.PlanDate(); ok {
		_spec.SetField(completionevent.FieldPlanDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestTitle(); ok {
		_spec.SetField(completionevent.FieldQuestTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(completionevent.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(completionevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(completionevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PlannedMinutes(); ok {
		_spec.SetField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMinutes(); ok {
		_spec.AddField(completionevent.FieldPlannedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualMinutes(); ok {
		_spec.SetField(completionevent.FieldActualMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualMinutes(); ok {
		_spec.AddField(completionevent.FieldActualMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(completionevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(completionevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(completionevent.FieldRating, field.TypeInt, value)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
