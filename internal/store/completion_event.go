package store

import (
	"context"
	"fmt"

	"github.com/abhisek/questforge/ent"
	"github.com/abhisek/questforge/ent/completionevent"
)

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetPlanDate(data.PlanDate).
		SetQuestTitle(data.QuestTitle).
		SetPattern(data.Pattern).
		SetDifficulty(data.Difficulty).
		SetPlannedMinutes(data.PlannedMinutes).
		SetActualMinutes(data.ActualMinutes).
		SetCompleted(data.Completed).
		SetRating(data.Rating).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionRecord, error) {
	query := r.client.CompletionEvent.Query().
		Order(ent.Desc(completionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(completionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(completionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(completionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(completionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	records := make([]CompletionRecord, len(events))
	for i, e := range events {
		records[i] = completionRecord(e)
	}
	return records, nil
}

func (r *eventRepo) CompletionsSince(ctx context.Context, after int64) ([]CompletionRecord, error) {
	events, err := r.client.CompletionEvent.Query().
		Where(completionevent.SequenceGT(after)).
		Order(ent.Asc(completionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completions since %d: %w", after, err)
	}

	records := make([]CompletionRecord, len(events))
	for i, e := range events {
		records[i] = completionRecord(e)
	}
	return records, nil
}

func completionRecord(e *ent.CompletionEvent) CompletionRecord {
	return CompletionRecord{
		Sequence:       e.Sequence,
		Timestamp:      e.Timestamp,
		PlanDate:       e.PlanDate,
		QuestTitle:     e.QuestTitle,
		Pattern:        e.Pattern,
		Difficulty:     e.Difficulty,
		PlannedMinutes: e.PlannedMinutes,
		ActualMinutes:  e.ActualMinutes,
		Completed:      e.Completed,
		Rating:         e.Rating,
	}
}
