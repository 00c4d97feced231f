// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdjustmentEventsColumns holds the columns for the "adjustment_events" table.
	AdjustmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quest_title", Type: field.TypeString, Default: ""},
		{Name: "adjustment_type", Type: field.TypeString},
		{Name: "magnitude", Type: field.TypeString, Default: ""},
		{Name: "previous_difficulty", Type: field.TypeFloat64},
		{Name: "new_difficulty", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Default: ""},
		{Name: "rollback", Type: field.TypeBool, Default: false},
		{Name: "reverses_sequence", Type: field.TypeInt64, Default: 0},
		{Name: "completion_mark", Type: field.TypeInt, Default: 0},
	}
	// AdjustmentEventsTable holds the schema information for the "adjustment_events" table.
	AdjustmentEventsTable = &schema.Table{
		Name:       "adjustment_events",
		Columns:    AdjustmentEventsColumns,
		PrimaryKey: []*schema.Column{AdjustmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adjustmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdjustmentEventsColumns[1]},
			},
			{
				Name:    "adjustmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdjustmentEventsColumns[2]},
			},
			{
				Name:    "adjustmentevent_adjustment_type",
				Unique:  false,
				Columns: []*schema.Column{AdjustmentEventsColumns[4]},
			},
			{
				Name:    "adjustmentevent_rollback",
				Unique:  false,
				Columns: []*schema.Column{AdjustmentEventsColumns[10]},
			},
		},
	}
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_date", Type: field.TypeString},
		{Name: "quest_title", Type: field.TypeString},
		{Name: "pattern", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "planned_minutes", Type: field.TypeInt},
		{Name: "actual_minutes", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool},
		{Name: "rating", Type: field.TypeInt, Default: 0},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_plan_date",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3]},
			},
			{
				Name:    "completionevent_pattern",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[5]},
			},
			{
				Name:    "completionevent_completed",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PlanEventsColumns holds the columns for the "plan_events" table.
	PlanEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "plan_date", Type: field.TypeString},
		{Name: "day_type", Type: field.TypeString},
		{Name: "total_minutes", Type: field.TypeInt},
		{Name: "quest_count", Type: field.TypeInt},
		{Name: "quests", Type: field.TypeJSON},
		{Name: "rationale", Type: field.TypeJSON},
		{Name: "fallback_used", Type: field.TypeBool, Default: false},
	}
	// PlanEventsTable holds the schema information for the "plan_events" table.
	PlanEventsTable = &schema.Table{
		Name:       "plan_events",
		Columns:    PlanEventsColumns,
		PrimaryKey: []*schema.Column{PlanEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "planevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[1]},
			},
			{
				Name:    "planevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[2]},
			},
			{
				Name:    "planevent_plan_date",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[4]},
			},
			{
				Name:    "planevent_day_type",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdjustmentEventsTable,
		CompletionEventsTable,
		LlmRequestEventsTable,
		PlanEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
