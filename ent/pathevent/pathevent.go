// Code generated by ent, DO NOT EDIT.

package pathevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathevent type in the database.
	Label = "path_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldTopicIds holds the string denoting the topic_ids field in the database.
	FieldTopicIds = "topic_ids"
	// FieldTopicCount holds the string denoting the topic_count field in the database.
	FieldTopicCount = "topic_count"
	// FieldMilestoneCount holds the string denoting the milestone_count field in the database.
	FieldMilestoneCount = "milestone_count"
	// FieldEstimatedDays holds the string denoting the estimated_days field in the database.
	FieldEstimatedDays = "estimated_days"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// Table holds the table name of the pathevent in the database.
	Table = "path_events"
)

// Columns holds all SQL columns for pathevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldSubject,
	FieldStrategy,
	FieldTopicIds,
	FieldTopicCount,
	FieldMilestoneCount,
	FieldEstimatedDays,
	FieldConfidence,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	StrategyValidator func(string) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
)

// OrderOption defines the ordering options for the PathEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByTopicCount orders the results by the topic_count field.
func ByTopicCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicCount, opts...).ToFunc()
}

// ByMilestoneCount orders the results by the milestone_count field.
func ByMilestoneCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMilestoneCount, opts...).ToFunc()
}

// ByEstimatedDays orders the results by the estimated_days field.
func ByEstimatedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDays, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}
