package store

import (
	"context"
	"fmt"

	"github.com/abhisek/questforge/ent"
	"github.com/abhisek/questforge/ent/adjustmentevent"
)

func (r *eventRepo) AppendAdjustment(ctx context.Context, data AdjustmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AdjustmentEvent.Create().
		SetSequence(seqNum).
		SetQuestTitle(data.QuestTitle).
		SetAdjustmentType(data.Type).
		SetMagnitude(data.Magnitude).
		SetPreviousDifficulty(data.PreviousDifficulty).
		SetNewDifficulty(data.NewDifficulty).
		SetConfidence(data.Confidence).
		SetReasoning(data.Reasoning).
		SetRollback(data.Rollback).
		SetReversesSequence(data.ReversesSequence).
		SetCompletionMark(data.CompletionMark).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save adjustment event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAdjustments(ctx context.Context, opts QueryOpts) ([]AdjustmentRecord, error) {
	query := r.client.AdjustmentEvent.Query().
		Order(ent.Desc(adjustmentevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(adjustmentevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(adjustmentevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(adjustmentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(adjustmentevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query adjustment events: %w", err)
	}

	records := make([]AdjustmentRecord, len(events))
	for i, e := range events {
		records[i] = adjustmentRecord(e)
	}
	return records, nil
}

func (r *eventRepo) LatestAdjustment(ctx context.Context) (*AdjustmentRecord, error) {
	e, err := r.client.AdjustmentEvent.Query().
		Order(ent.Desc(adjustmentevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest adjustment: %w", err)
	}
	rec := adjustmentRecord(e)
	return &rec, nil
}

func adjustmentRecord(e *ent.AdjustmentEvent) AdjustmentRecord {
	return AdjustmentRecord{
		Sequence:           e.Sequence,
		Timestamp:          e.Timestamp,
		QuestTitle:         e.QuestTitle,
		Type:               e.AdjustmentType,
		Magnitude:          e.Magnitude,
		PreviousDifficulty: e.PreviousDifficulty,
		NewDifficulty:      e.NewDifficulty,
		Confidence:         e.Confidence,
		Reasoning:          e.Reasoning,
		Rollback:           e.Rollback,
		ReversesSequence:   e.ReversesSequence,
		CompletionMark:     e.CompletionMark,
	}
}
