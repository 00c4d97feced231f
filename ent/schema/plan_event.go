package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent records a finalized daily quest plan.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Comment("Opaque plan identifier, assigned at record time"),
		field.String("plan_date").
			NotEmpty().
			Comment("Calendar date of the plan, YYYY-MM-DD"),
		field.String("day_type").
			NotEmpty().
			Comment("Check-in day type: busy, normal, deep"),
		field.Int("total_minutes").
			Comment("Sum of quest minutes after reconciliation"),
		field.Int("quest_count"),
		field.JSON("quests", []map[string]any{}).
			Comment("Finalized quests as emitted by the policy engine"),
		field.JSON("rationale", []map[string]any{}).
			Comment("Policy trace entries explaining each transformation"),
		field.Bool("fallback_used").
			Default(false).
			Comment("Whether candidates came from the deterministic fallback"),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_date"),
		index.Fields("day_type"),
	}
}
