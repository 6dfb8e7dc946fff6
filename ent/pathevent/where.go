// Code generated by ent, DO NOT EDIT.

package pathevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldStudentID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSubject, v))
}

// Strategy applies equality check predicate on the "strategy" field. It's identical to StrategyEQ.
func Strategy(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldStrategy, v))
}

// TopicCount applies equality check predicate on the "topic_count" field. It's identical to TopicCountEQ.
func TopicCount(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTopicCount, v))
}

// MilestoneCount applies equality check predicate on the "milestone_count" field. It's identical to MilestoneCountEQ.
func MilestoneCount(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldMilestoneCount, v))
}

// EstimatedDays applies equality check predicate on the "estimated_days" field. It's identical to EstimatedDaysEQ.
func EstimatedDays(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldEstimatedDays, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldConfidence, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldSubject, v))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldStrategy, vs...))
}

// StrategyGT applies the GT predicate on the "strategy" field.
func StrategyGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldStrategy, v))
}

// StrategyGTE applies the GTE predicate on the "strategy" field.
func StrategyGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldStrategy, v))
}

// StrategyLT applies the LT predicate on the "strategy" field.
func StrategyLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldStrategy, v))
}

// StrategyLTE applies the LTE predicate on the "strategy" field.
func StrategyLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldStrategy, v))
}

// StrategyContains applies the Contains predicate on the "strategy" field.
func StrategyContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldStrategy, v))
}

// StrategyHasPrefix applies the HasPrefix predicate on the "strategy" field.
func StrategyHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldStrategy, v))
}

// StrategyHasSuffix applies the HasSuffix predicate on the "strategy" field.
func StrategyHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldStrategy, v))
}

// StrategyEqualFold applies the EqualFold predicate on the "strategy" field.
func StrategyEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldStrategy, v))
}

// StrategyContainsFold applies the ContainsFold predicate on the "strategy" field.
func StrategyContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldStrategy, v))
}

// TopicCountEQ applies the EQ predicate on the "topic_count" field.
func TopicCountEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTopicCount, v))
}

// TopicCountNEQ applies the NEQ predicate on the "topic_count" field.
func TopicCountNEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldTopicCount, v))
}

// TopicCountIn applies the In predicate on the "topic_count" field.
func TopicCountIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldTopicCount, vs...))
}

// TopicCountNotIn applies the NotIn predicate on the "topic_count" field.
func TopicCountNotIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldTopicCount, vs...))
}

// TopicCountGT applies the GT predicate on the "topic_count" field.
func TopicCountGT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldTopicCount, v))
}

// TopicCountGTE applies the GTE predicate on the "topic_count" field.
func TopicCountGTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldTopicCount, v))
}

// TopicCountLT applies the LT predicate on the "topic_count" field.
func TopicCountLT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldTopicCount, v))
}

// TopicCountLTE applies the LTE predicate on the "topic_count" field.
func TopicCountLTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldTopicCount, v))
}

// MilestoneCountEQ applies the EQ predicate on the "milestone_count" field.
func MilestoneCountEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldMilestoneCount, v))
}

// MilestoneCountNEQ applies the NEQ predicate on the "milestone_count" field.
func MilestoneCountNEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldMilestoneCount, v))
}

// MilestoneCountIn applies the In predicate on the "milestone_count" field.
func MilestoneCountIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldMilestoneCount, vs...))
}

// MilestoneCountNotIn applies the NotIn predicate on the "milestone_count" field.
func MilestoneCountNotIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldMilestoneCount, vs...))
}

// MilestoneCountGT applies the GT predicate on the "milestone_count" field.
func MilestoneCountGT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldMilestoneCount, v))
}

// MilestoneCountGTE applies the GTE predicate on the "milestone_count" field.
func MilestoneCountGTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldMilestoneCount, v))
}

// MilestoneCountLT applies the LT predicate on the "milestone_count" field.
func MilestoneCountLT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldMilestoneCount, v))
}

// MilestoneCountLTE applies the LTE predicate on the "milestone_count" field.
func MilestoneCountLTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldMilestoneCount, v))
}

// EstimatedDaysEQ applies the EQ predicate on the "estimated_days" field.
func EstimatedDaysEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldEstimatedDays, v))
}

// EstimatedDaysNEQ applies the NEQ predicate on the "estimated_days" field.
func EstimatedDaysNEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldEstimatedDays, v))
}

// EstimatedDaysIn applies the In predicate on the "estimated_days" field.
func EstimatedDaysIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldEstimatedDays, vs...))
}

// EstimatedDaysNotIn applies the NotIn predicate on the "estimated_days" field.
func EstimatedDaysNotIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldEstimatedDays, vs...))
}

// EstimatedDaysGT applies the GT predicate on the "estimated_days" field.
func EstimatedDaysGT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldEstimatedDays, v))
}

// EstimatedDaysGTE applies the GTE predicate on the "estimated_days" field.
func EstimatedDaysGTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldEstimatedDays, v))
}

// EstimatedDaysLT applies the LT predicate on the "estimated_days" field.
func EstimatedDaysLT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldEstimatedDays, v))
}

// EstimatedDaysLTE applies the LTE predicate on the "estimated_days" field.
func EstimatedDaysLTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldEstimatedDays, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldConfidence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.NotPredicates(p))
}
