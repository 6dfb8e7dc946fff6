// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/pathevent"
)

// PathEvent is the model entity for the PathEvent schema.
type PathEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Student the path was generated for
	StudentID string `json:"student_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// conservative, balanced, or aggressive
	Strategy string `json:"strategy,omitempty"`
	// Ordered topic IDs of the path
	TopicIds []string `json:"topic_ids,omitempty"`
	// TopicCount holds the value of the "topic_count" field.
	TopicCount int `json:"topic_count,omitempty"`
	// MilestoneCount holds the value of the "milestone_count" field.
	MilestoneCount int `json:"milestone_count,omitempty"`
	// Aggregate duration estimate
	EstimatedDays int `json:"estimated_days,omitempty"`
	// Confidence score when generated via recommendations, else 0
	Confidence   float64 `json:"confidence,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathevent.FieldTopicIds:
			values[i] = new([]byte)
		case pathevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case pathevent.FieldID, pathevent.FieldSequence, pathevent.FieldTopicCount, pathevent.FieldMilestoneCount, pathevent.FieldEstimatedDays:
			values[i] = new(sql.NullInt64)
		case pathevent.FieldStudentID, pathevent.FieldSubject, pathevent.FieldStrategy:
			values[i] = new(sql.NullString)
		case pathevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathEvent fields.
func (_m *PathEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case pathevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case pathevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case pathevent.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case pathevent.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = value.String
			}
		case pathevent.FieldTopicIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topic_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopicIds); err != nil {
					return fmt.Errorf("unmarshal field topic_ids: %w", err)
				}
			}
		case pathevent.FieldTopicCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_count", values[i])
			} else if value.Valid {
				_m.TopicCount = int(value.Int64)
			}
		case pathevent.FieldMilestoneCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field milestone_count", values[i])
			} else if value.Valid {
				_m.MilestoneCount = int(value.Int64)
			}
		case pathevent.FieldEstimatedDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_days", values[i])
			} else if value.Valid {
				_m.EstimatedDays = int(value.Int64)
			}
		case pathevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PathEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PathEvent.
// Note that you need to call PathEvent.Unwrap() before calling this method if this PathEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathEvent) Update() *PathEventUpdateOne {
	return NewPathEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathEvent) Unwrap() *PathEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PathEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(_m.Strategy)
	builder.WriteString(", ")
	builder.WriteString("topic_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicIds))
	builder.WriteString(", ")
	builder.WriteString("topic_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicCount))
	builder.WriteString(", ")
	builder.WriteString("milestone_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MilestoneCount))
	builder.WriteString(", ")
	builder.WriteString("estimated_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedDays))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// PathEvents is a parsable slice of PathEvent.
type PathEvents []*PathEvent
