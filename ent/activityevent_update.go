// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/activityevent"
	"github.com/abhisek/pathwise/ent/predicate"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ActivityEventUpdate) SetStudentID(v string) *ActivityEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableStudentID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ActivityEventUpdate) SetSubject(v string) *ActivityEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableSubject(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ActivityEventUpdate) SetTopic(v string) *ActivityEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableTopic(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetScoreRatio sets the "score_ratio" field.
func (_u *ActivityEventUpdate) SetScoreRatio(v float64) *ActivityEventUpdate {
	_u.mutation.ResetScoreRatio()
	_u.mutation.SetScoreRatio(v)
	return _u
}

// SetNillableScoreRatio sets the "score_ratio" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableScoreRatio(v *float64) *ActivityEventUpdate {
	if v != nil {
		_u.SetScoreRatio(*v)
	}
	return _u
}

// AddScoreRatio adds value to the "score_ratio" field.
func (_u *ActivityEventUpdate) AddScoreRatio(v float64) *ActivityEventUpdate {
	_u.mutation.AddScoreRatio(v)
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ActivityEventUpdate) SetOccurredAt(v time.Time) *ActivityEventUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableOccurredAt(v *time.Time) *ActivityEventUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := activityevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := activityevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := activityevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScoreRatio(); ok {
		if err := activityevent.ScoreRatioValidator(v); err != nil {
			return &ValidationError{Name: "score_ratio", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.score_ratio": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(activityevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(activityevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(activityevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreRatio(); ok {
		_spec.SetField(activityevent.FieldScoreRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreRatio(); ok {
		_spec.AddField(activityevent.FieldScoreRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(activityevent.FieldOccurredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *ActivityEventUpdateOne) SetStudentID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableStudentID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ActivityEventUpdateOne) SetSubject(v string) *ActivityEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableSubject(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ActivityEventUpdateOne) SetTopic(v string) *ActivityEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableTopic(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetScoreRatio sets the "score_ratio" field.
func (_u *ActivityEventUpdateOne) SetScoreRatio(v float64) *ActivityEventUpdateOne {
	_u.mutation.ResetScoreRatio()
	_u.mutation.SetScoreRatio(v)
	return _u
}

// SetNillableScoreRatio sets the "score_ratio" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableScoreRatio(v *float64) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetScoreRatio(*v)
	}
	return _u
}

// AddScoreRatio adds value to the "score_ratio" field.
func (_u *ActivityEventUpdateOne) AddScoreRatio(v float64) *ActivityEventUpdateOne {
	_u.mutation.AddScoreRatio(v)
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ActivityEventUpdateOne) SetOccurredAt(v time.Time) *ActivityEventUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableOccurredAt(v *time.Time) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := activityevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := activityevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := activityevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScoreRatio(); ok {
		if err := activityevent.ScoreRatioValidator(v); err != nil {
			return &ValidationError{Name: "score_ratio", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.score_ratio": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(activityevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(activityevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(activityevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreRatio(); ok {
		_spec.SetField(activityevent.FieldScoreRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreRatio(); ok {
		_spec.AddField(activityevent.FieldScoreRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(activityevent.FieldOccurredAt, field.TypeTime, value)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
