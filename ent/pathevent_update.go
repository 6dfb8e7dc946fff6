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
	"github.com/abhisek/pathwise/ent/pathevent"
	"github.com/abhisek/pathwise/ent/predicate"
)

// PathEventUpdate is the builder for updating PathEvent entities.
type PathEventUpdate struct {
	config
	hooks    []Hook
	mutation *PathEventMutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdate) Where(ps ...predicate.PathEvent) *PathEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *PathEventUpdate) SetStudentID(v string) *PathEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableStudentID(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PathEventUpdate) SetSubject(v string) *PathEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableSubject(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *PathEventUpdate) SetStrategy(v string) *PathEventUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableStrategy(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetTopicIds sets the "topic_ids" field.
func (_u *PathEventUpdate) SetTopicIds(v []string) *PathEventUpdate {
	_u.mutation.SetTopicIds(v)
	return _u
}

// AppendTopicIds appends value to the "topic_ids" field.
func (_u *PathEventUpdate) AppendTopicIds(v []string) *PathEventUpdate {
	_u.mutation.AppendTopicIds(v)
	return _u
}

// SetTopicCount sets the "topic_count" field.
func (_u *PathEventUpdate) SetTopicCount(v int) *PathEventUpdate {
	_u.mutation.ResetTopicCount()
	_u.mutation.SetTopicCount(v)
	return _u
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableTopicCount(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetTopicCount(*v)
	}
	return _u
}

// AddTopicCount adds value to the "topic_count" field.
func (_u *PathEventUpdate) AddTopicCount(v int) *PathEventUpdate {
	_u.mutation.AddTopicCount(v)
	return _u
}

// SetMilestoneCount sets the "milestone_count" field.
func (_u *PathEventUpdate) SetMilestoneCount(v int) *PathEventUpdate {
	_u.mutation.ResetMilestoneCount()
	_u.mutation.SetMilestoneCount(v)
	return _u
}

// SetNillableMilestoneCount sets the "milestone_count" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableMilestoneCount(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetMilestoneCount(*v)
	}
	return _u
}

// AddMilestoneCount adds value to the "milestone_count" field.
func (_u *PathEventUpdate) AddMilestoneCount(v int) *PathEventUpdate {
	_u.mutation.AddMilestoneCount(v)
	return _u
}

// SetEstimatedDays sets the "estimated_days" field.
func (_u *PathEventUpdate) SetEstimatedDays(v int) *PathEventUpdate {
	_u.mutation.ResetEstimatedDays()
	_u.mutation.SetEstimatedDays(v)
	return _u
}

// SetNillableEstimatedDays sets the "estimated_days" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableEstimatedDays(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetEstimatedDays(*v)
	}
	return _u
}

// AddEstimatedDays adds value to the "estimated_days" field.
func (_u *PathEventUpdate) AddEstimatedDays(v int) *PathEventUpdate {
	_u.mutation.AddEstimatedDays(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PathEventUpdate) SetConfidence(v float64) *PathEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableConfidence(v *float64) *PathEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PathEventUpdate) AddConfidence(v float64) *PathEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdate) Mutation() *PathEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := pathevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := pathevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PathEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := pathevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "PathEvent.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := pathevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PathEvent.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *PathEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(pathevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(pathevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(pathevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicIds(); ok {
		_spec.SetField(pathevent.FieldTopicIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathevent.FieldTopicIds, value)
		})
	}
	if value, ok := _u.mutation.TopicCount(); ok {
		_spec.SetField(pathevent.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicCount(); ok {
		_spec.AddField(pathevent.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MilestoneCount(); ok {
		_spec.SetField(pathevent.FieldMilestoneCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMilestoneCount(); ok {
		_spec.AddField(pathevent.FieldMilestoneCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedDays(); ok {
		_spec.SetField(pathevent.FieldEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDays(); ok {
		_spec.AddField(pathevent.FieldEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pathevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pathevent.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathEventUpdateOne is the builder for updating a single PathEvent entity.
type PathEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *PathEventUpdateOne) SetStudentID(v string) *PathEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableStudentID(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PathEventUpdateOne) SetSubject(v string) *PathEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableSubject(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *PathEventUpdateOne) SetStrategy(v string) *PathEventUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableStrategy(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetTopicIds sets the "topic_ids" field.
func (_u *PathEventUpdateOne) SetTopicIds(v []string) *PathEventUpdateOne {
	_u.mutation.SetTopicIds(v)
	return _u
}

// AppendTopicIds appends value to the "topic_ids" field.
func (_u *PathEventUpdateOne) AppendTopicIds(v []string) *PathEventUpdateOne {
	_u.mutation.AppendTopicIds(v)
	return _u
}

// SetTopicCount sets the "topic_count" field.
func (_u *PathEventUpdateOne) SetTopicCount(v int) *PathEventUpdateOne {
	_u.mutation.ResetTopicCount()
	_u.mutation.SetTopicCount(v)
	return _u
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableTopicCount(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetTopicCount(*v)
	}
	return _u
}

// AddTopicCount adds value to the "topic_count" field.
func (_u *PathEventUpdateOne) AddTopicCount(v int) *PathEventUpdateOne {
	_u.mutation.AddTopicCount(v)
	return _u
}

// SetMilestoneCount sets the "milestone_count" field.
func (_u *PathEventUpdateOne) SetMilestoneCount(v int) *PathEventUpdateOne {
	_u.mutation.ResetMilestoneCount()
	_u.mutation.SetMilestoneCount(v)
	return _u
}

// SetNillableMilestoneCount sets the "milestone_count" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableMilestoneCount(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetMilestoneCount(*v)
	}
	return _u
}

// AddMilestoneCount adds value to the "milestone_count" field.
func (_u *PathEventUpdateOne) AddMilestoneCount(v int) *PathEventUpdateOne {
	_u.mutation.AddMilestoneCount(v)
	return _u
}

// SetEstimatedDays sets the "estimated_days" field.
func (_u *PathEventUpdateOne) SetEstimatedDays(v int) *PathEventUpdateOne {
	_u.mutation.ResetEstimatedDays()
	_u.mutation.SetEstimatedDays(v)
	return _u
}

// SetNillableEstimatedDays sets the "estimated_days" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableEstimatedDays(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetEstimatedDays(*v)
	}
	return _u
}

// AddEstimatedDays adds value to the "estimated_days" field.
func (_u *PathEventUpdateOne) AddEstimatedDays(v int) *PathEventUpdateOne {
	_u.mutation.AddEstimatedDays(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PathEventUpdateOne) SetConfidence(v float64) *PathEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableConfidence(v *float64) *PathEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PathEventUpdateOne) AddConfidence(v float64) *PathEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdateOne) Mutation() *PathEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdateOne) Where(ps ...predicate.PathEvent) *PathEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathEventUpdateOne) Select(field string, fields ...string) *PathEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathEvent entity.
func (_u *PathEventUpdateOne) Save(ctx context.Context) (*PathEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdateOne) SaveX(ctx context.Context) *PathEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := pathevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := pathevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PathEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := pathevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "PathEvent.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := pathevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PathEvent.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *PathEventUpdateOne) sqlSave(ctx context.Context) (_node *PathEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathevent.FieldID)
		for _, f := range fields {
			if !pathevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathevent.FieldID {
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
		_spec.SetField(pathevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(pathevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(pathevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicIds(); ok {
		_spec.SetField(pathevent.FieldTopicIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathevent.FieldTopicIds, value)
		})
	}
	if value, ok := _u.mutation.TopicCount(); ok {
		_spec.SetField(pathevent.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicCount(); ok {
		_spec.AddField(pathevent.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MilestoneCount(); ok {
		_spec.SetField(pathevent.FieldMilestoneCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMilestoneCount(); ok {
		_spec.AddField(pathevent.FieldMilestoneCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedDays(); ok {
		_spec.SetField(pathevent.FieldEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDays(); ok {
		_spec.AddField(pathevent.FieldEstimatedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pathevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pathevent.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &PathEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
