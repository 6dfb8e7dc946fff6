// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "score_ratio", Type: field.TypeFloat64},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2]},
			},
			{
				Name:    "activityevent_student_id_subject",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[3], ActivityEventsColumns[4]},
			},
			{
				Name:    "activityevent_topic",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[5]},
			},
			{
				Name:    "activityevent_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[7]},
			},
		},
	}
	// PathEventsColumns holds the columns for the "path_events" table.
	PathEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeString},
		{Name: "topic_ids", Type: field.TypeJSON},
		{Name: "topic_count", Type: field.TypeInt},
		{Name: "milestone_count", Type: field.TypeInt},
		{Name: "estimated_days", Type: field.TypeInt},
		{Name: "confidence", Type: field.TypeFloat64},
	}
	// PathEventsTable holds the schema information for the "path_events" table.
	PathEventsTable = &schema.Table{
		Name:       "path_events",
		Columns:    PathEventsColumns,
		PrimaryKey: []*schema.Column{PathEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[1]},
			},
			{
				Name:    "pathevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[2]},
			},
			{
				Name:    "pathevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[3]},
			},
			{
				Name:    "pathevent_strategy",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEventsTable,
		PathEventsTable,
	}
)

func init() {
}
