package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdjustmentEvent records a difficulty adjustment decision, including
// rollbacks issued by the post-adjustment monitor.
type AdjustmentEvent struct {
	ent.Schema
}

func (AdjustmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdjustmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quest_title").
			Default("").
			Comment("Title of the quest the adjustment applied to"),
		field.String("adjustment_type").
			NotEmpty().
			Comment("increase, decrease, or maintain"),
		field.String("magnitude").
			Default("").
			Comment("minor, moderate, or significant; empty for maintain"),
		field.Float("previous_difficulty"),
		field.Float("new_difficulty"),
		field.Float("confidence").
			Comment("Decision confidence, 0.0-1.0"),
		field.String("reasoning").
			Default(""),
		field.Bool("rollback").
			Default(false).
			Comment("Whether this adjustment reverses a previous one"),
		field.Int64("reverses_sequence").
			Default(0).
			Comment("Sequence of the adjustment being rolled back, 0 if none"),
		field.Int("completion_mark").
			Default(0).
			Comment("Completion count at adjustment time, for rollback gating"),
	}
}

func (AdjustmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("adjustment_type"),
		index.Fields("rollback"),
	}
}
