// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questforge/ent/adjustmentevent"
	"github.com/abhisek/questforge/ent/predicate"
)

// AdjustmentEventDelete is the builder for deleting a AdjustmentEvent entity.
type AdjustmentEventDelete struct {
	config
	hooks    []Hook
	mutation *AdjustmentEventMutation
}

// Where appends a list predicates to the AdjustmentEventDelete builder.
func (_d *AdjustmentEventDelete) Where(ps ...predicate.AdjustmentEvent) *AdjustmentEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdjustmentEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdjustmentEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdjustmentEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(adjustmentevent.Table, sqlgraph.NewFieldSpec(adjustmentevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdjustmentEventDeleteOne is the builder for deleting a single AdjustmentEvent entity.
type AdjustmentEventDeleteOne struct {
	_d *AdjustmentEventDelete
}

// Where appends a list predicates to the AdjustmentEventDelete builder.
func (_d *AdjustmentEventDeleteOne) Where(ps ...predicate.AdjustmentEvent) *AdjustmentEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdjustmentEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{adjustmentevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdjustmentEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
