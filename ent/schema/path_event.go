package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathEvent records each generated path, giving a durable trail of what
// was recommended to whom, when, and how confidently.
type PathEvent struct {
	ent.Schema
}

func (PathEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PathEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Student the path was generated for"),
		field.String("subject").
			NotEmpty(),
		field.String("strategy").
			NotEmpty().
			Comment("conservative, balanced, or aggressive"),
		field.Strings("topic_ids").
			Comment("Ordered topic IDs of the path"),
		field.Int("topic_count"),
		field.Int("milestone_count"),
		field.Int("estimated_days").
			Comment("Aggregate duration estimate"),
		field.Float("confidence").
			Min(0).
			Max(1).
			Comment("Confidence score when generated via recommendations, else 0"),
	}
}

func (PathEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("strategy"),
	}
}
