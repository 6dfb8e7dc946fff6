package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records a single scored attempt by a student on a topic.
// These events are the raw performance signal the profile builder reads.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Student this attempt belongs to"),
		field.String("subject").
			NotEmpty().
			Comment("Subject the topic belongs to"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the attempt was scored against"),
		field.Float("score_ratio").
			Min(0).
			Max(1).
			Comment("Fraction of available points earned"),
		field.Time("occurred_at").
			Comment("When the attempt happened (distinct from insertion time)"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "subject"),
		index.Fields("topic"),
		index.Fields("occurred_at"),
	}
}
