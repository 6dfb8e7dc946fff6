// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/pathevent"
)

// PathEventCreate is the builder for creating a PathEvent entity.
type PathEventCreate struct {
	config
	mutation *PathEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PathEventCreate) SetSequence(v int64) *PathEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PathEventCreate) SetTimestamp(v time.Time) *PathEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PathEventCreate) SetNillableTimestamp(v *time.Time) *PathEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *PathEventCreate) SetStudentID(v string) *PathEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PathEventCreate) SetSubject(v string) *PathEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *PathEventCreate) SetStrategy(v string) *PathEventCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetTopicIds sets the "topic_ids" field.
func (_c *PathEventCreate) SetTopicIds(v []string) *PathEventCreate {
	_c.mutation.SetTopicIds(v)
	return _c
}

// SetTopicCount sets the "topic_count" field.
func (_c *PathEventCreate) SetTopicCount(v int) *PathEventCreate {
	_c.mutation.SetTopicCount(v)
	return _c
}

// SetMilestoneCount sets the "milestone_count" field.
func (_c *PathEventCreate) SetMilestoneCount(v int) *PathEventCreate {
	_c.mutation.SetMilestoneCount(v)
	return _c
}

// SetEstimatedDays sets the "estimated_days" field.
func (_c *PathEventCreate) SetEstimatedDays(v int) *PathEventCreate {
	_c.mutation.SetEstimatedDays(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PathEventCreate) SetConfidence(v float64) *PathEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// Mutation returns the PathEventMutation object of the builder.
func (_c *PathEventCreate) Mutation() *PathEventMutation {
	return _c.mutation
}

// Save creates the PathEvent in the database.
func (_c *PathEventCreate) Save(ctx context.Context) (*PathEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathEventCreate) SaveX(ctx context.Context) *PathEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pathevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PathEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PathEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "PathEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := pathevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "PathEvent.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := pathevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PathEvent.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "PathEvent.strategy"`)}
	}
	if v, ok := _c.mutation.Strategy(); ok {
		if err := pathevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "PathEvent.strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicIds(); !ok {
		return &ValidationError{Name: "topic_ids", err: errors.New(`ent: missing required field "PathEvent.topic_ids"`)}
	}
	if _, ok := _c.mutation.TopicCount(); !ok {
		return &ValidationError{Name: "topic_count", err: errors.New(`ent: missing required field "PathEvent.topic_count"`)}
	}
	if _, ok := _c.mutation.MilestoneCount(); !ok {
		return &ValidationError{Name: "milestone_count", err: errors.New(`ent: missing required field "PathEvent.milestone_count"`)}
	}
	if _, ok := _c.mutation.EstimatedDays(); !ok {
		return &ValidationError{Name: "estimated_days", err: errors.New(`ent: missing required field "PathEvent.estimated_days"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PathEvent.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := pathevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PathEvent.confidence": %w`, err)}
		}
	}
	return nil
}

func (_c *PathEventCreate) sqlSave(ctx context.Context) (*PathEvent, error) {
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

func (_c *PathEventCreate) createSpec() (*PathEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PathEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathevent.Table, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pathevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pathevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(pathevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(pathevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(pathevent.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.TopicIds(); ok {
		_spec.SetField(pathevent.FieldTopicIds, field.TypeJSON, value)
		_node.TopicIds = value
	}
	if value, ok := _c.mutation.TopicCount(); ok {
		_spec.SetField(pathevent.FieldTopicCount, field.TypeInt, value)
		_node.TopicCount = value
	}
	if value, ok := _c.mutation.MilestoneCount(); ok {
		_spec.SetField(pathevent.FieldMilestoneCount, field.TypeInt, value)
		_node.MilestoneCount = value
	}
	if value, ok := _c.mutation.EstimatedDays(); ok {
		_spec.SetField(pathevent.FieldEstimatedDays, field.TypeInt, value)
		_node.EstimatedDays = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(pathevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	return _node, _spec
}

// PathEventCreateBulk is the builder for creating many PathEvent entities in bulk.
type PathEventCreateBulk struct {
	config
	err      error
	builders []*PathEventCreate
}

// Save creates the PathEvent entities in the database.
func (_c *PathEventCreateBulk) Save(ctx context.Context) ([]*PathEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathEventMutation)
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
func (_c *PathEventCreateBulk) SaveX(ctx context.Context) []*PathEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
