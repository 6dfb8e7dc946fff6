// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pathwise/ent/activityevent"
	"github.com/abhisek/pathwise/ent/pathevent"
	"github.com/abhisek/pathwise/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescStudentID is the schema descriptor for student_id field.
	activityeventDescStudentID := activityeventFields[0].Descriptor()
	// activityevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	activityevent.StudentIDValidator = activityeventDescStudentID.Validators[0].(func(string) error)
	// activityeventDescSubject is the schema descriptor for subject field.
	activityeventDescSubject := activityeventFields[1].Descriptor()
	// activityevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	activityevent.SubjectValidator = activityeventDescSubject.Validators[0].(func(string) error)
	// activityeventDescTopic is the schema descriptor for topic field.
	activityeventDescTopic := activityeventFields[2].Descriptor()
	// activityevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	activityevent.TopicValidator = activityeventDescTopic.Validators[0].(func(string) error)
	// activityeventDescScoreRatio is the schema descriptor for score_ratio field.
	activityeventDescScoreRatio := activityeventFields[3].Descriptor()
	// activityevent.ScoreRatioValidator is a validator for the "score_ratio" field. It is called by the builders before save.
	activityevent.ScoreRatioValidator = func() func(float64) error {
		validators := activityeventDescScoreRatio.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score_ratio float64) error {
			for _, fn := range fns {
				if err := fn(score_ratio); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	patheventMixin := schema.PathEvent{}.Mixin()
	patheventMixinFields0 := patheventMixin[0].Fields()
	_ = patheventMixinFields0
	patheventFields := schema.PathEvent{}.Fields()
	_ = patheventFields
	// patheventDescTimestamp is the schema descriptor for timestamp field.
	patheventDescTimestamp := patheventMixinFields0[1].Descriptor()
	// pathevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pathevent.DefaultTimestamp = patheventDescTimestamp.Default.(func() time.Time)
	// patheventDescStudentID is the schema descriptor for student_id field.
	patheventDescStudentID := patheventFields[0].Descriptor()
	// pathevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	pathevent.StudentIDValidator = patheventDescStudentID.Validators[0].(func(string) error)
	// patheventDescSubject is the schema descriptor for subject field.
	patheventDescSubject := patheventFields[1].Descriptor()
	// pathevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	pathevent.SubjectValidator = patheventDescSubject.Validators[0].(func(string) error)
	// patheventDescStrategy is the schema descriptor for strategy field.
	patheventDescStrategy := patheventFields[2].Descriptor()
	// pathevent.StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	pathevent.StrategyValidator = patheventDescStrategy.Validators[0].(func(string) error)
	// patheventDescConfidence is the schema descriptor for confidence field.
	patheventDescConfidence := patheventFields[7].Descriptor()
	// pathevent.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	pathevent.ConfidenceValidator = func() func(float64) error {
		validators := patheventDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
}
