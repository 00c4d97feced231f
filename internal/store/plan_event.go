package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/questforge/ent"
	"github.com/abhisek/questforge/ent/planevent"
)

func (r *eventRepo) AppendPlan(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	quests, err := toMapSlice(data.Quests)
	if err != nil {
		return fmt.Errorf("marshal quests: %w", err)
	}
	rationale, err := toMapSlice(data.Rationale)
	if err != nil {
		return fmt.Errorf("marshal rationale: %w", err)
	}

	_, err = r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetPlanID(data.PlanID).
		SetPlanDate(data.PlanDate).
		SetDayType(data.DayType).
		SetTotalMinutes(data.TotalMinutes).
		SetQuestCount(data.QuestCount).
		SetQuests(quests).
		SetRationale(rationale).
		SetFallbackUsed(data.FallbackUsed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPlans(ctx context.Context, opts QueryOpts) ([]PlanEventRecord, error) {
	query := r.client.PlanEvent.Query().
		Order(ent.Desc(planevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(planevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(planevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(planevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(planevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan events: %w", err)
	}

	records := make([]PlanEventRecord, len(events))
	for i, e := range events {
		records[i] = planRecord(e)
	}
	return records, nil
}

func (r *eventRepo) PlanForDate(ctx context.Context, date string) (*PlanEventRecord, error) {
	e, err := r.client.PlanEvent.Query().
		Where(planevent.PlanDate(date)).
		Order(ent.Desc(planevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan for %s: %w", date, err)
	}
	rec := planRecord(e)
	return &rec, nil
}

func planRecord(e *ent.PlanEvent) PlanEventRecord {
	return PlanEventRecord{
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		PlanID:       e.PlanID,
		PlanDate:     e.PlanDate,
		DayType:      e.DayType,
		TotalMinutes: e.TotalMinutes,
		QuestCount:   e.QuestCount,
		Quests:       e.Quests,
		Rationale:    e.Rationale,
		FallbackUsed: e.FallbackUsed,
	}
}

// toMapSlice converts any JSON-serializable slice to the generic form
// ent stores in JSON columns.
func toMapSlice(v any) ([]map[string]any, error) {
	if v == nil {
		return []map[string]any{}, nil
	}
	if m, ok := v.([]map[string]any); ok {
		return m, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m []map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
